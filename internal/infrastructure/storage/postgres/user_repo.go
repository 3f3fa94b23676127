package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kontora/internal/core/id"
	"kontora/internal/domain/user"
)

const usersTable = "users"

type userRow struct {
	UID          id.ID      `db:"uid"`
	Email        string     `db:"email"`
	Status       string     `db:"status"`
	PasswordHash string     `db:"password_hash"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
	LastLoginAt  *time.Time `db:"last_login_at"`
}

var userColumns = []string{
	"uid", "email", "status", "password_hash", "created_at", "updated_at", "last_login_at",
}

var _ user.Repository = (*UserRepo)(nil)

// UserRepo implements user.Repository on PostgreSQL.
type UserRepo struct {
	txm *TxManager
}

// NewUserRepo creates a new user repository.
func NewUserRepo(txm *TxManager) *UserRepo {
	return &UserRepo{txm: txm}
}

func (r *UserRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *UserRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(userColumns...).From(usersTable)
}

// FindByUID returns an account by uid, or (nil, nil) when absent.
func (r *UserRepo) FindByUID(ctx context.Context, uid id.ID) (*user.User, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"uid": uid}).Limit(1))
}

// FindByEmail returns an account by email, or (nil, nil) when absent.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"email": email}).Limit(1))
}

// FindAll returns every account ordered by creation time.
func (r *UserRepo) FindAll(ctx context.Context) ([]*user.User, error) {
	sql, args, err := r.baseSelect().OrderBy("created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []userRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", usersTable, err)
	}

	result := make([]*user.User, 0, len(rows))
	for _, row := range rows {
		result = append(result, restoreUser(row))
	}
	return result, nil
}

// Save upserts the account row.
func (r *UserRepo) Save(ctx context.Context, u *user.User) error {
	row := map[string]any{
		"uid":           u.UID(),
		"email":         u.Email().Value(),
		"status":        u.Status().String(),
		"password_hash": u.PasswordHash(),
		"created_at":    u.CreatedAt(),
		"updated_at":    u.UpdatedAt(),
		"last_login_at": u.LastLoginAt(),
	}

	sql, args, err := r.builder().
		Insert(usersTable).
		SetMap(row).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			email = EXCLUDED.email,
			status = EXCLUDED.status,
			password_hash = EXCLUDED.password_hash,
			updated_at = EXCLUDED.updated_at,
			last_login_at = EXCLUDED.last_login_at`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", usersTable, err)
	}
	return nil
}

// Delete removes an account, reporting whether a row was removed.
func (r *UserRepo) Delete(ctx context.Context, uid id.ID) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM "+usersTable+" WHERE uid = $1", uid)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", usersTable, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsByEmail reports whether any account holds the given email.
func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	var exists bool
	err := querier.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+usersTable+" WHERE email = $1)", email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by email: %w", err)
	}
	return exists, nil
}

func (r *UserRepo) findOne(ctx context.Context, q squirrel.SelectBuilder) (*user.User, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row userRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", usersTable, err)
	}
	return restoreUser(row), nil
}

func restoreUser(row userRow) *user.User {
	return user.Restore(user.State{
		UID:          row.UID,
		Email:        row.Email,
		Status:       user.Status(row.Status),
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
		LastLoginAt:  row.LastLoginAt,
	})
}
