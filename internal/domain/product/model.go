// Package product provides the product-catalog bounded context: the Product
// aggregate, its value objects and repository contract.
package product

import (
	"strings"
	"time"

	"kontora/internal/core/id"
)

// Product is the catalog aggregate. SKU and 1C-code uniqueness are
// pre-checked by the creation handler against the repository; the aggregate
// itself only guards value-object invariants and the audit trail.
type Product struct {
	uid                 id.ID
	name                ProductName
	status              Status
	typ                 Type
	unit                UnitOfMeasure
	groupName           *string
	subgroupName        *string
	code1C              *string
	sku                 Sku
	salePrice           *Price
	avgPurchaseCostYear *Price
	lastPurchaseCost    *Price
	creatorUID          *id.ID
	createdAt           time.Time
	updatedAt           *time.Time
	updatedByUID        *id.ID
}

// NewProduct constructs a product with a fresh uid and createdAt = now.
func NewProduct(name ProductName, status Status, typ Type, unit UnitOfMeasure, sku Sku, creatorUID *id.ID) *Product {
	return &Product{
		uid:        id.New(),
		name:       name,
		status:     status,
		typ:        typ,
		unit:       unit,
		sku:        sku,
		creatorUID: creatorUID,
		createdAt:  time.Now().UTC(),
	}
}

// State is the flat persisted form of a Product.
type State struct {
	UID                 id.ID
	Name                string
	Status              Status
	Type                Type
	Unit                string
	GroupName           *string
	SubgroupName        *string
	Code1C              *string
	Sku                 string
	SalePrice           *string
	AvgPurchaseCostYear *string
	LastPurchaseCost    *string
	CreatorUID          *id.ID
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	UpdatedByUID        *id.ID
}

// Restore rehydrates a Product from its persisted state.
func Restore(s State) *Product {
	return &Product{
		uid:                 s.UID,
		name:                ProductName{value: s.Name},
		status:              s.Status,
		typ:                 s.Type,
		unit:                UnitOfMeasure{value: s.Unit},
		groupName:           s.GroupName,
		subgroupName:        s.SubgroupName,
		code1C:              s.Code1C,
		sku:                 Sku{value: s.Sku},
		salePrice:           priceFromStored(s.SalePrice),
		avgPurchaseCostYear: priceFromStored(s.AvgPurchaseCostYear),
		lastPurchaseCost:    priceFromStored(s.LastPurchaseCost),
		creatorUID:          s.CreatorUID,
		createdAt:           s.CreatedAt,
		updatedAt:           s.UpdatedAt,
		updatedByUID:        s.UpdatedByUID,
	}
}

func priceFromStored(v *string) *Price {
	if v == nil {
		return nil
	}
	return &Price{value: *v}
}

func (p *Product) UID() id.ID                  { return p.uid }
func (p *Product) Name() ProductName           { return p.name }
func (p *Product) Status() Status              { return p.status }
func (p *Product) Type() Type                  { return p.typ }
func (p *Product) Unit() UnitOfMeasure         { return p.unit }
func (p *Product) GroupName() *string          { return p.groupName }
func (p *Product) SubgroupName() *string       { return p.subgroupName }
func (p *Product) Code1C() *string             { return p.code1C }
func (p *Product) Sku() Sku                    { return p.sku }
func (p *Product) SalePrice() *Price           { return p.salePrice }
func (p *Product) AvgPurchaseCostYear() *Price { return p.avgPurchaseCostYear }
func (p *Product) LastPurchaseCost() *Price    { return p.lastPurchaseCost }
func (p *Product) CreatorUID() *id.ID          { return p.creatorUID }
func (p *Product) CreatedAt() time.Time        { return p.createdAt }
func (p *Product) UpdatedAt() *time.Time       { return p.updatedAt }
func (p *Product) UpdatedByUID() *id.ID        { return p.updatedByUID }

// SetName replaces the display name.
func (p *Product) SetName(name ProductName) { p.name = name }

// SetStatus replaces the lifecycle status.
func (p *Product) SetStatus(status Status) { p.status = status }

// SetType replaces the product type.
func (p *Product) SetType(typ Type) { p.typ = typ }

// SetUnit replaces the unit of measure.
func (p *Product) SetUnit(unit UnitOfMeasure) { p.unit = unit }

// SetGroupName replaces the catalog group; blank maps to nil.
func (p *Product) SetGroupName(groupName *string) { p.groupName = trimOptional(groupName) }

// SetSubgroupName replaces the catalog subgroup; blank maps to nil.
func (p *Product) SetSubgroupName(subgroupName *string) { p.subgroupName = trimOptional(subgroupName) }

// SetCode1C replaces the external accounting-system code; blank maps to nil.
func (p *Product) SetCode1C(code1C *string) { p.code1C = trimOptional(code1C) }

// SetSalePrice replaces the sale price.
func (p *Product) SetSalePrice(price *Price) { p.salePrice = price }

// SetAvgPurchaseCostYear replaces the yearly average purchase cost.
func (p *Product) SetAvgPurchaseCostYear(price *Price) { p.avgPurchaseCostYear = price }

// SetLastPurchaseCost replaces the last purchase cost.
func (p *Product) SetLastPurchaseCost(price *Price) { p.lastPurchaseCost = price }

// Touch stamps updatedAt and the acting user. Every handler that mutates
// the aggregate after construction must call it to keep the audit trail
// consistent.
func (p *Product) Touch(updaterUID *id.ID) {
	now := time.Now().UTC()
	p.updatedAt = &now
	p.updatedByUID = updaterUID
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
