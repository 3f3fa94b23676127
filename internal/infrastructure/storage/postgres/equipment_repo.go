package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kontora/internal/core/id"
	"kontora/internal/domain/equipment"
)

const equipmentTable = "equipment"

type equipmentRow struct {
	UID                id.ID      `db:"uid"`
	Name               string     `db:"name"`
	Status             string     `db:"status"`
	PreviousStatus     *string    `db:"prev_status"`
	TransportUID       *id.ID     `db:"transport_uid"`
	Warehouse          *string    `db:"warehouse"`
	IssuedToUID        *id.ID     `db:"issued_to_uid"`
	PurchaseInvoiceUID *id.ID     `db:"purchase_invoice_uid"`
	SupplierUID        *id.ID     `db:"supplier_uid"`
	IssueDocUID        *id.ID     `db:"issue_doc_uid"`
	MountingDate       *time.Time `db:"mounting_date"`
	ShipmentInvoiceUID *id.ID     `db:"shipment_invoice_uid"`
	CustomerUID        *id.ID     `db:"customer_uid"`
	SkziFrom           *time.Time `db:"skzi_from"`
	SkziTo             *time.Time `db:"skzi_to"`
	CreatorUID         *id.ID     `db:"creator_uid"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          *time.Time `db:"updated_at"`
	UpdatedByUID       *id.ID     `db:"updated_by_uid"`
}

var equipmentColumns = []string{
	"uid", "name", "status", "prev_status", "transport_uid", "warehouse",
	"issued_to_uid", "purchase_invoice_uid", "supplier_uid", "issue_doc_uid",
	"mounting_date", "shipment_invoice_uid", "customer_uid", "skzi_from", "skzi_to",
	"creator_uid", "created_at", "updated_at", "updated_by_uid",
}

var _ equipment.Repository = (*EquipmentRepo)(nil)

// EquipmentRepo implements equipment.Repository on PostgreSQL.
type EquipmentRepo struct {
	txm *TxManager
}

// NewEquipmentRepo creates a new equipment repository.
func NewEquipmentRepo(txm *TxManager) *EquipmentRepo {
	return &EquipmentRepo{txm: txm}
}

func (r *EquipmentRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *EquipmentRepo) baseSelect() squirrel.SelectBuilder {
	return r.builder().Select(equipmentColumns...).From(equipmentTable)
}

// FindByUID returns an equipment item by uid, or (nil, nil) when absent.
func (r *EquipmentRepo) FindByUID(ctx context.Context, uid id.ID) (*equipment.Equipment, error) {
	sql, args, err := r.baseSelect().Where(squirrel.Eq{"uid": uid}).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row equipmentRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", equipmentTable, err)
	}
	return restoreEquipment(row), nil
}

// FindAll returns every equipment item ordered by creation time.
func (r *EquipmentRepo) FindAll(ctx context.Context) ([]*equipment.Equipment, error) {
	return r.findMany(ctx, r.baseSelect().OrderBy("created_at"))
}

// FindByFilters returns equipment matching the filters.
func (r *EquipmentRepo) FindByFilters(ctx context.Context, filters equipment.Filters) ([]*equipment.Equipment, error) {
	q := r.baseSelect().OrderBy("created_at")
	if filters.UID != nil {
		q = q.Where(squirrel.Eq{"uid": *filters.UID})
	}
	if filters.Name != "" {
		q = q.Where(squirrel.ILike{"name": filters.Name + "%"})
	}
	if filters.Status != "" {
		q = q.Where(squirrel.Eq{"status": filters.Status})
	}
	if filters.TransportUID != nil {
		q = q.Where(squirrel.Eq{"transport_uid": *filters.TransportUID})
	}
	if filters.Warehouse != "" {
		q = q.Where(squirrel.Eq{"warehouse": filters.Warehouse})
	}
	if filters.IssuedToUID != nil {
		q = q.Where(squirrel.Eq{"issued_to_uid": *filters.IssuedToUID})
	}
	return r.findMany(ctx, q)
}

// Save upserts the equipment row.
func (r *EquipmentRepo) Save(ctx context.Context, e *equipment.Equipment) error {
	var prevStatus *string
	if e.PreviousStatus() != nil {
		v := e.PreviousStatus().String()
		prevStatus = &v
	}

	row := map[string]any{
		"uid":                  e.UID(),
		"name":                 e.Name().Value(),
		"status":               e.Status().String(),
		"prev_status":          prevStatus,
		"transport_uid":        e.TransportUID(),
		"warehouse":            e.Warehouse(),
		"issued_to_uid":        e.IssuedToUID(),
		"purchase_invoice_uid": e.PurchaseInvoiceUID(),
		"supplier_uid":         e.SupplierUID(),
		"issue_doc_uid":        e.IssueDocUID(),
		"mounting_date":        e.MountingDate(),
		"shipment_invoice_uid": e.ShipmentInvoiceUID(),
		"customer_uid":         e.CustomerUID(),
		"skzi_from":            e.SkziFrom(),
		"skzi_to":              e.SkziTo(),
		"creator_uid":          e.CreatorUID(),
		"created_at":           e.CreatedAt(),
		"updated_at":           e.UpdatedAt(),
		"updated_by_uid":       e.UpdatedByUID(),
	}

	sql, args, err := r.builder().
		Insert(equipmentTable).
		SetMap(row).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			prev_status = EXCLUDED.prev_status,
			transport_uid = EXCLUDED.transport_uid,
			warehouse = EXCLUDED.warehouse,
			issued_to_uid = EXCLUDED.issued_to_uid,
			purchase_invoice_uid = EXCLUDED.purchase_invoice_uid,
			supplier_uid = EXCLUDED.supplier_uid,
			issue_doc_uid = EXCLUDED.issue_doc_uid,
			mounting_date = EXCLUDED.mounting_date,
			shipment_invoice_uid = EXCLUDED.shipment_invoice_uid,
			customer_uid = EXCLUDED.customer_uid,
			skzi_from = EXCLUDED.skzi_from,
			skzi_to = EXCLUDED.skzi_to,
			updated_at = EXCLUDED.updated_at,
			updated_by_uid = EXCLUDED.updated_by_uid`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", equipmentTable, err)
	}
	return nil
}

// Delete removes an equipment item, reporting whether a row was removed.
func (r *EquipmentRepo) Delete(ctx context.Context, uid id.ID) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM "+equipmentTable+" WHERE uid = $1", uid)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", equipmentTable, err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *EquipmentRepo) findMany(ctx context.Context, q squirrel.SelectBuilder) ([]*equipment.Equipment, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []equipmentRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", equipmentTable, err)
	}

	result := make([]*equipment.Equipment, 0, len(rows))
	for _, row := range rows {
		result = append(result, restoreEquipment(row))
	}
	return result, nil
}

func restoreEquipment(row equipmentRow) *equipment.Equipment {
	var prevStatus *equipment.Status
	if row.PreviousStatus != nil {
		v := equipment.Status(*row.PreviousStatus)
		prevStatus = &v
	}
	return equipment.Restore(equipment.State{
		UID:                row.UID,
		Name:               row.Name,
		Status:             equipment.Status(row.Status),
		PreviousStatus:     prevStatus,
		TransportUID:       row.TransportUID,
		Warehouse:          row.Warehouse,
		IssuedToUID:        row.IssuedToUID,
		PurchaseInvoiceUID: row.PurchaseInvoiceUID,
		SupplierUID:        row.SupplierUID,
		IssueDocUID:        row.IssueDocUID,
		MountingDate:       row.MountingDate,
		ShipmentInvoiceUID: row.ShipmentInvoiceUID,
		CustomerUID:        row.CustomerUID,
		SkziFrom:           row.SkziFrom,
		SkziTo:             row.SkziTo,
		CreatorUID:         row.CreatorUID,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		UpdatedByUID:       row.UpdatedByUID,
	})
}
