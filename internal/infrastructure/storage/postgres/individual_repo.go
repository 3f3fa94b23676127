package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kontora/internal/core/id"
	"kontora/internal/domain/individual"
)

const (
	personsTable        = "persons"
	personContactsTable = "person_contacts"
)

// Person status is stored as the legacy integer code.
const (
	personStatusActiveCode   = 1
	personStatusArchivedCode = 2
)

func personStatusCode(s individual.Status) int {
	if s == individual.StatusArchived {
		return personStatusArchivedCode
	}
	return personStatusActiveCode
}

func personStatusFromCode(code int) individual.Status {
	if code == personStatusArchivedCode {
		return individual.StatusArchived
	}
	return individual.StatusActive
}

type personRow struct {
	UID               id.ID     `db:"uid"`
	FirstName         string    `db:"first_name"`
	LastName          string    `db:"last_name"`
	MiddleName        string    `db:"middle_name"`
	PositionID        *int      `db:"position_id"`
	Status            int       `db:"status"`
	Login             *string   `db:"login"`
	IsCompanyEmployee bool      `db:"is_company_employee"`
	CreatorUID        *id.ID    `db:"creator_uid"`
	CreatedAt         time.Time `db:"created_at"`
}

type personContactRow struct {
	PersonUID   id.ID      `db:"person_uid"`
	Phone       *string    `db:"phone"`
	Email       *string    `db:"email"`
	IsPrimary   bool       `db:"is_primary"`
	HasTelegram bool       `db:"has_telegram"`
	HasWhatsApp bool       `db:"has_whatsapp"`
	AddedBy     id.ID      `db:"added_by"`
	EditedBy    *id.ID     `db:"edited_by"`
	AddedAt     time.Time  `db:"added_at"`
	EditedAt    *time.Time `db:"edited_at"`
}

var personColumns = []string{
	"uid", "first_name", "last_name", "middle_name", "position_id",
	"status", "login", "is_company_employee", "creator_uid", "created_at",
}

var _ individual.Repository = (*IndividualRepo)(nil)

// IndividualRepo implements individual.Repository on PostgreSQL. Contacts
// live in a child table and are rewritten on every Save.
type IndividualRepo struct {
	txm *TxManager
}

// NewIndividualRepo creates a new individual repository.
func NewIndividualRepo(txm *TxManager) *IndividualRepo {
	return &IndividualRepo{txm: txm}
}

func (r *IndividualRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *IndividualRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(personColumns...).From(personsTable)
}

// FindByUID returns a person by uid, or (nil, nil) when absent.
func (r *IndividualRepo) FindByUID(ctx context.Context, uid id.ID) (*individual.Individual, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"uid": uid}).Limit(1))
}

// FindByLogin returns a person by login, or (nil, nil) when absent.
func (r *IndividualRepo) FindByLogin(ctx context.Context, login string) (*individual.Individual, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"login": login}).Limit(1))
}

// FindAll returns every person ordered by creation time.
func (r *IndividualRepo) FindAll(ctx context.Context) ([]*individual.Individual, error) {
	return r.findMany(ctx, r.baseSelect().OrderBy("created_at"))
}

// FindByFilters returns persons matching the filters.
func (r *IndividualRepo) FindByFilters(ctx context.Context, filters individual.Filters) ([]*individual.Individual, error) {
	q := r.baseSelect().OrderBy("created_at")
	if filters.UID != nil {
		q = q.Where(squirrel.Eq{"uid": *filters.UID})
	}
	if filters.FirstName != "" {
		q = q.Where(squirrel.ILike{"first_name": filters.FirstName + "%"})
	}
	if filters.LastName != "" {
		q = q.Where(squirrel.ILike{"last_name": filters.LastName + "%"})
	}
	if filters.Status != "" {
		status, err := individual.ParseStatus(filters.Status)
		if err != nil {
			return nil, err
		}
		q = q.Where(squirrel.Eq{"status": personStatusCode(status)})
	}
	if filters.Login != "" {
		q = q.Where(squirrel.Eq{"login": filters.Login})
	}
	if filters.IsCompanyEmployee != nil {
		q = q.Where(squirrel.Eq{"is_company_employee": *filters.IsCompanyEmployee})
	}
	if filters.CreatorUID != nil {
		q = q.Where(squirrel.Eq{"creator_uid": *filters.CreatorUID})
	}
	return r.findMany(ctx, q)
}

// FindCompanyEmployees returns persons flagged as company employees.
func (r *IndividualRepo) FindCompanyEmployees(ctx context.Context) ([]*individual.Individual, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"is_company_employee": true}).OrderBy("created_at"))
}

// FindByCreator returns persons created by the given user.
func (r *IndividualRepo) FindByCreator(ctx context.Context, creatorUID id.ID) ([]*individual.Individual, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"creator_uid": creatorUID}).OrderBy("created_at"))
}

// FindByStatus returns persons with the given status.
func (r *IndividualRepo) FindByStatus(ctx context.Context, status individual.Status) ([]*individual.Individual, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"status": personStatusCode(status)}).OrderBy("created_at"))
}

// Save upserts the person row and rewrites its contacts.
func (r *IndividualRepo) Save(ctx context.Context, p *individual.Individual) error {
	querier := r.txm.GetQuerier(ctx)

	row := map[string]any{
		"uid":                 p.UID(),
		"first_name":          p.Name().First(),
		"last_name":           p.Name().Last(),
		"middle_name":         p.Name().Middle(),
		"position_id":         p.PositionID(),
		"status":              personStatusCode(p.Status()),
		"login":               p.Login().Value(),
		"is_company_employee": p.IsCompanyEmployee(),
		"creator_uid":         p.CreatorUID(),
		"created_at":          p.CreatedAt(),
	}

	sql, args, err := r.builder().
		Insert(personsTable).
		SetMap(row).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			middle_name = EXCLUDED.middle_name,
			position_id = EXCLUDED.position_id,
			status = EXCLUDED.status,
			login = EXCLUDED.login,
			is_company_employee = EXCLUDED.is_company_employee`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", personsTable, err)
	}

	if _, err := querier.Exec(ctx, "DELETE FROM "+personContactsTable+" WHERE person_uid = $1", p.UID()); err != nil {
		return fmt.Errorf("delete contacts: %w", err)
	}
	for _, c := range p.Contacts() {
		var phone, email *string
		if c.Phone() != nil {
			v := c.Phone().Value()
			phone = &v
		}
		if c.Email() != nil {
			v := c.Email().Value()
			email = &v
		}
		sql, args, err := r.builder().
			Insert(personContactsTable).
			Columns("person_uid", "phone", "email", "is_primary", "has_telegram", "has_whatsapp",
				"added_by", "edited_by", "added_at", "edited_at").
			Values(p.UID(), phone, email, c.IsPrimary(), c.HasTelegram(), c.HasWhatsApp(),
				c.AddedBy(), c.EditedBy(), c.AddedAt(), c.EditedAt()).
			ToSql()
		if err != nil {
			return fmt.Errorf("build contact insert: %w", err)
		}
		if _, err := querier.Exec(ctx, sql, args...); err != nil {
			return fmt.Errorf("insert contact: %w", err)
		}
	}
	return nil
}

// Delete removes a person, reporting whether a row was removed. Contacts go
// with it via the foreign-key cascade.
func (r *IndividualRepo) Delete(ctx context.Context, uid id.ID) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM "+personsTable+" WHERE uid = $1", uid)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", personsTable, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsByLogin reports whether any person holds the given login.
func (r *IndividualRepo) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	var exists bool
	err := querier.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+personsTable+" WHERE login = $1)", login).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by login: %w", err)
	}
	return exists, nil
}

func (r *IndividualRepo) findOne(ctx context.Context, q squirrel.SelectBuilder) (*individual.Individual, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row personRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", personsTable, err)
	}

	contacts, err := r.loadContacts(ctx, []id.ID{row.UID})
	if err != nil {
		return nil, err
	}
	return restorePerson(row, contacts[row.UID]), nil
}

func (r *IndividualRepo) findMany(ctx context.Context, q squirrel.SelectBuilder) ([]*individual.Individual, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []personRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", personsTable, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	uids := make([]id.ID, 0, len(rows))
	for _, row := range rows {
		uids = append(uids, row.UID)
	}
	contacts, err := r.loadContacts(ctx, uids)
	if err != nil {
		return nil, err
	}

	result := make([]*individual.Individual, 0, len(rows))
	for _, row := range rows {
		result = append(result, restorePerson(row, contacts[row.UID]))
	}
	return result, nil
}

func (r *IndividualRepo) loadContacts(ctx context.Context, personUIDs []id.ID) (map[id.ID][]individual.ContactState, error) {
	sql, args, err := r.builder().
		Select("person_uid", "phone", "email", "is_primary", "has_telegram", "has_whatsapp",
			"added_by", "edited_by", "added_at", "edited_at").
		From(personContactsTable).
		Where(squirrel.Eq{"person_uid": personUIDs}).
		OrderBy("added_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contacts query: %w", err)
	}

	var rows []personContactRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", personContactsTable, err)
	}

	result := make(map[id.ID][]individual.ContactState, len(personUIDs))
	for _, row := range rows {
		result[row.PersonUID] = append(result[row.PersonUID], individual.ContactState{
			Phone:       row.Phone,
			Email:       row.Email,
			IsPrimary:   row.IsPrimary,
			HasTelegram: row.HasTelegram,
			HasWhatsApp: row.HasWhatsApp,
			AddedBy:     row.AddedBy,
			EditedBy:    row.EditedBy,
			AddedAt:     row.AddedAt,
			EditedAt:    row.EditedAt,
		})
	}
	return result, nil
}

func restorePerson(row personRow, contacts []individual.ContactState) *individual.Individual {
	return individual.Restore(individual.State{
		UID:               row.UID,
		FirstName:         row.FirstName,
		LastName:          row.LastName,
		MiddleName:        row.MiddleName,
		PositionID:        row.PositionID,
		Status:            personStatusFromCode(row.Status),
		Login:             row.Login,
		IsCompanyEmployee: row.IsCompanyEmployee,
		CreatorUID:        row.CreatorUID,
		CreatedAt:         row.CreatedAt,
		Contacts:          contacts,
	})
}
