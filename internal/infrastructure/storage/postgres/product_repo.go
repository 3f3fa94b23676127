package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"kontora/internal/core/id"
	"kontora/internal/domain/product"
)

const productsTable = "products"

type productRow struct {
	UID                 id.ID      `db:"uid"`
	Name                string     `db:"name"`
	Status              string     `db:"status"`
	Type                string     `db:"type"`
	Unit                string     `db:"unit"`
	GroupName           *string    `db:"group_name"`
	SubgroupName        *string    `db:"subgroup_name"`
	Code1C              *string    `db:"code_1c"`
	Sku                 string     `db:"sku"`
	SalePrice           *string    `db:"sale_price"`
	AvgPurchaseCostYear *string    `db:"avg_purchase_cost_year"`
	LastPurchaseCost    *string    `db:"last_purchase_cost"`
	CreatorUID          *id.ID     `db:"creator_uid"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at"`
	UpdatedByUID        *id.ID     `db:"updated_by_uid"`
}

var productColumns = []string{
	"uid", "name", "status", "type", "unit", "group_name", "subgroup_name",
	"code_1c", "sku", "sale_price", "avg_purchase_cost_year", "last_purchase_cost",
	"creator_uid", "created_at", "updated_at", "updated_by_uid",
}

var _ product.Repository = (*ProductRepo)(nil)

// ProductRepo implements product.Repository on PostgreSQL. Prices are stored
// as numeric(12,2) and read back in their canonical fixed-scale string form.
type ProductRepo struct {
	txm *TxManager
}

// NewProductRepo creates a new product repository.
func NewProductRepo(txm *TxManager) *ProductRepo {
	return &ProductRepo{txm: txm}
}

func (r *ProductRepo) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}

func (r *ProductRepo) baseSelect() squirrel.SelectBuilder {
	cols := make([]string, len(productColumns))
	copy(cols, productColumns)
	for i, c := range cols {
		switch c {
		case "sale_price", "avg_purchase_cost_year", "last_purchase_cost":
			cols[i] = c + "::text AS " + c
		}
	}
	return r.builder().Select(cols...).From(productsTable)
}

// FindByUID returns a product by uid, or (nil, nil) when absent.
func (r *ProductRepo) FindByUID(ctx context.Context, uid id.ID) (*product.Product, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"uid": uid}).Limit(1))
}

// FindBySKU returns a product by SKU, or (nil, nil) when absent.
func (r *ProductRepo) FindBySKU(ctx context.Context, sku string) (*product.Product, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"sku": sku}).Limit(1))
}

// FindByCode1C returns a product by 1C code, or (nil, nil) when absent.
func (r *ProductRepo) FindByCode1C(ctx context.Context, code1C string) (*product.Product, error) {
	return r.findOne(ctx, r.baseSelect().Where(squirrel.Eq{"code_1c": code1C}).Limit(1))
}

// FindAll returns every product ordered by creation time.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*product.Product, error) {
	return r.findMany(ctx, r.baseSelect().OrderBy("created_at"))
}

// FindByFilters returns products matching the filters.
func (r *ProductRepo) FindByFilters(ctx context.Context, filters product.Filters) ([]*product.Product, error) {
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
	if filters.Type != "" {
		q = q.Where(squirrel.Eq{"type": filters.Type})
	}
	if filters.Sku != "" {
		q = q.Where(squirrel.Eq{"sku": filters.Sku})
	}
	if filters.Code1C != "" {
		q = q.Where(squirrel.Eq{"code_1c": filters.Code1C})
	}
	if filters.GroupName != "" {
		q = q.Where(squirrel.Eq{"group_name": filters.GroupName})
	}
	if filters.CreatorUID != nil {
		q = q.Where(squirrel.Eq{"creator_uid": *filters.CreatorUID})
	}
	return r.findMany(ctx, q)
}

// FindByCreator returns products created by the given user.
func (r *ProductRepo) FindByCreator(ctx context.Context, creatorUID id.ID) ([]*product.Product, error) {
	return r.findMany(ctx, r.baseSelect().Where(squirrel.Eq{"creator_uid": creatorUID}).OrderBy("created_at"))
}

// Save upserts the product row.
func (r *ProductRepo) Save(ctx context.Context, p *product.Product) error {
	row := map[string]any{
		"uid":                    p.UID(),
		"name":                   p.Name().Value(),
		"status":                 p.Status().String(),
		"type":                   p.Type().String(),
		"unit":                   p.Unit().Value(),
		"group_name":             p.GroupName(),
		"subgroup_name":          p.SubgroupName(),
		"code_1c":                p.Code1C(),
		"sku":                    p.Sku().Value(),
		"sale_price":             priceValue(p.SalePrice()),
		"avg_purchase_cost_year": priceValue(p.AvgPurchaseCostYear()),
		"last_purchase_cost":     priceValue(p.LastPurchaseCost()),
		"creator_uid":            p.CreatorUID(),
		"created_at":             p.CreatedAt(),
		"updated_at":             p.UpdatedAt(),
		"updated_by_uid":         p.UpdatedByUID(),
	}

	sql, args, err := r.builder().
		Insert(productsTable).
		SetMap(row).
		Suffix(`ON CONFLICT (uid) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			type = EXCLUDED.type,
			unit = EXCLUDED.unit,
			group_name = EXCLUDED.group_name,
			subgroup_name = EXCLUDED.subgroup_name,
			code_1c = EXCLUDED.code_1c,
			sku = EXCLUDED.sku,
			sale_price = EXCLUDED.sale_price,
			avg_purchase_cost_year = EXCLUDED.avg_purchase_cost_year,
			last_purchase_cost = EXCLUDED.last_purchase_cost,
			updated_at = EXCLUDED.updated_at,
			updated_by_uid = EXCLUDED.updated_by_uid`).
		ToSql()
	if err != nil {
		return fmt.Errorf("build upsert: %w", err)
	}

	querier := r.txm.GetQuerier(ctx)
	if _, err := querier.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", productsTable, err)
	}
	return nil
}

// Delete removes a product, reporting whether a row was removed.
func (r *ProductRepo) Delete(ctx context.Context, uid id.ID) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	tag, err := querier.Exec(ctx, "DELETE FROM "+productsTable+" WHERE uid = $1", uid)
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", productsTable, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ExistsBySKU reports whether any product holds the given SKU.
func (r *ProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	return r.exists(ctx, "sku", sku)
}

// ExistsByCode1C reports whether any product holds the given 1C code.
func (r *ProductRepo) ExistsByCode1C(ctx context.Context, code1C string) (bool, error) {
	return r.exists(ctx, "code_1c", code1C)
}

func (r *ProductRepo) exists(ctx context.Context, column, value string) (bool, error) {
	querier := r.txm.GetQuerier(ctx)
	var exists bool
	err := querier.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM "+productsTable+" WHERE "+column+" = $1)", value).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by %s: %w", column, err)
	}
	return exists, nil
}

func (r *ProductRepo) findOne(ctx context.Context, q squirrel.SelectBuilder) (*product.Product, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var row productRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Get(ctx, querier, &row, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("select %s: %w", productsTable, err)
	}
	return restoreProduct(row), nil
}

func (r *ProductRepo) findMany(ctx context.Context, q squirrel.SelectBuilder) ([]*product.Product, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var rows []productRow
	querier := r.txm.GetQuerier(ctx)
	if err := pgxscan.Select(ctx, querier, &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("select %s: %w", productsTable, err)
	}

	result := make([]*product.Product, 0, len(rows))
	for _, row := range rows {
		result = append(result, restoreProduct(row))
	}
	return result, nil
}

func priceValue(p *product.Price) *string {
	if p == nil {
		return nil
	}
	v := p.Value()
	return &v
}

func restoreProduct(row productRow) *product.Product {
	return product.Restore(product.State{
		UID:                 row.UID,
		Name:                row.Name,
		Status:              product.Status(row.Status),
		Type:                product.Type(row.Type),
		Unit:                row.Unit,
		GroupName:           row.GroupName,
		SubgroupName:        row.SubgroupName,
		Code1C:              row.Code1C,
		Sku:                 row.Sku,
		SalePrice:           row.SalePrice,
		AvgPurchaseCostYear: row.AvgPurchaseCostYear,
		LastPurchaseCost:    row.LastPurchaseCost,
		CreatorUID:          row.CreatorUID,
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
		UpdatedByUID:        row.UpdatedByUID,
	})
}
