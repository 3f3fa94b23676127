package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kontora/internal/core/id"
	"kontora/internal/domain/legalentity"
)

const legalEntitiesTable = "legal_entities"

type legalEntityRow struct {
	UID          id.ID     `db:"uid"`
	ShortName    string    `db:"short_name"`
	FullName     string    `db:"full_name"`
	OGRN         string    `db:"ogrn"`
	INN          string    `db:"inn"`
	KPP          string    `db:"kpp"`
	LegalAddress *string   `db:"legal_address"`
	PhoneNumber  *string   `db:"phone_number"`
	Email        *string   `db:"email"`
	CreatorUID   *id.ID    `db:"creator_uid"`
	CuratorUID   *id.ID    `db:"curator_uid"`
	CreatedAt    time.Time `db:"created_at"`
}

var legalEntityColumns = []string{
	"uid", "short_name", "full_name", "ogrn", "inn", "kpp",
	"legal_address", "phone_number", "email", "creator_uid", "curator_uid", "created_at",
}

var _ legalentity.Repository = (*LegalEntityRepo)(nil)

// LegalEntityRepo implements legalentity.Repository on PostgreSQL.
type LegalEntityRepo struct {
	txm *TxManager
}

// NewLegalEntityRepo creates a new legal entity repository.
func NewLegalEntityRepo(txm *TxManager) *LegalEntityRepo {
	return &LegalEntityRepo{txm: txm}
}

func (r *LegalEntityRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *LegalEntityRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(legalEntityColumns...).From(legalEntitiesTable)
}

// FindByUID returns a company by uid, or (nil, nil) when absent.
func (r *LegalEntityRepo) FindByUID(ctx context.Context, uid id.ID) (*legalentity.LegalEntity, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"uid": uid}).Limit(1))
}

// FindByINN returns a company by INN, or (nil, nil) when absent.
func (r *LegalEntityRepo) FindByINN(ctx context.Context, inn string) (*legalentity.LegalEntity, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"inn": inn}).Limit(1))
}

// FindAll returns every company ordered by creation time.
func (r *LegalEntityRepo) FindAll(ctx context.Context) ([]*legalentity.LegalEntity, error) {
	return r.findMany(ctx, r.baseSelect().OrderBy("created_at"))
}

// FindByFilters returns companies matching the filters.
func (r *LegalEntityRepo) FindByFilters(ctx context.Context, filters legalentity.Filters) ([]*legalentity.LegalEntity, error) {
	q := r.baseSelect().OrderBy("created_at")
	if filters.UID != "" {
		q = q.Where(squirrel.Eq{"uid": filters.UID})
	}
	if filters.ShortName != "" {
		q = q.Where(squirrel.ILike{"short_name": filters.ShortName + "%"})
	}
	if filters.INN != "" {
		q = q.Where(squirrel.Eq{"inn": filters.INN})
	}
	if filters.CuratorUID != "" {
		q = q.Where(squirrel.Eq{"curator_uid": filters.CuratorUID})
	}
	if filters.CreatorUID != "" {
		q = q.Where(squirrel.Eq{"creator_uid": filters.CreatorUID})
	}
	return r.findMany(ctx, q)
}

// FindByCurator returns companies assigned to the given curator.
func (r *LegalEntityRepo) FindByCurator(ctx context.Context, curatorUID id.ID) ([]*legalentity.LegalEntity, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"curator_uid": curatorUID}).OrderBy("created_at"))
}

// FindByCreator returns companies created by the given user.
func (r *LegalEntityRepo) FindByCreator(ctx context.Context, creatorUID id.ID) ([]*legalentity.LegalEntity, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"creator_uid": creatorUID}).OrderBy("created_at"))
}

// Save upserts the company row.
func (r *LegalEntityRepo) Save(ctx context.Context, e *legalentity.LegalEntity) error {
	row := map[string]any{
		"uid":           e.UID(),
		"short_name":    e.Name().ShortName(),
		"full_name":     e.Name().FullName(),
		"ogrn":          e.TaxNumber().OGRN(),
		"inn":           e.TaxNumber().INN(),
		"kpp":           e.TaxNumber().KPP(),
		"legal_address": e.LegalAddress(),
		"phone_number":  e.PhoneNumber(),
		"email":         e.Email(),
		"creator_uid":   e.CreatorUID(),
		"curator_uid":   e.CuratorUID(),
		"created_at":    e.CreatedAt(),
	}

	sql, args, err := r.builder().
		Insert(legalEntitiesTable).
		SetMap(row).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			short_name = EXCLUDED.short_name,
			full_name = EXCLUDED.full_name,
			ogrn = EXCLUDED.ogrn,
			inn = EXCLUDED.inn,
			kpp = EXCLUDED.kpp,
			legal_address = EXCLUDED.legal_address,
			phone_number = EXCLUDED.phone_number,
			email = EXCLUDED.email,
			curator_uid = EXCLUDED.curator_uid`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", legalEntitiesTable, err)
	}
	return nil
}

// Delete removes a company, reporting whether a row was removed.
func (r *LegalEntityRepo) Delete(ctx context.Context, uid id.ID) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM "+legalEntitiesTable+" WHERE uid = $1", uid)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", legalEntitiesTable, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsByINN reports whether any company is registered under the INN.
func (r *LegalEntityRepo) ExistsByINN(ctx context.Context, inn string) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	var exists bool
	err := querier.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+legalEntitiesTable+" WHERE inn = $1)", inn).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by inn: %w", err)
	}
	return exists, nil
}

func (r *LegalEntityRepo) findOne(ctx context.Context, q squirrel.SelectBuilder) (*legalentity.LegalEntity, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row legalEntityRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", legalEntitiesTable, err)
	}
	return restoreLegalEntity(row), nil
}

func (r *LegalEntityRepo) findMany(ctx context.Context, q squirrel.SelectBuilder) ([]*legalentity.LegalEntity, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []legalEntityRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", legalEntitiesTable, err)
	}

	result := make([]*legalentity.LegalEntity, 0, len(rows))
	for _, row := range rows {
		result = append(result, restoreLegalEntity(row))
	}
	return result, nil
}

func restoreLegalEntity(row legalEntityRow) *legalentity.LegalEntity {
	return legalentity.Restore(legalentity.State{
		UID:          row.UID,
		ShortName:    row.ShortName,
		FullName:     row.FullName,
		OGRN:         row.OGRN,
		INN:          row.INN,
		KPP:          row.KPP,
		LegalAddress: row.LegalAddress,
		PhoneNumber:  row.PhoneNumber,
		Email:        row.Email,
		CreatorUID:   row.CreatorUID,
		CuratorUID:   row.CuratorUID,
		CreatedAt:    row.CreatedAt,
	})
}
