package product

import (
	"strings"
	"unicode/utf8"

	"kontora/internal/core/apperror"
)

const (
	productNameMaxLen = 50
	skuMaxLen         = 50
	unitMaxLen        = 20
)

// ProductName is the catalog display name, trimmed, 1..50 characters.
type ProductName struct {
	value string
}

// NewProductName validates and constructs a ProductName.
func NewProductName(value string) (ProductName, error) {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > productNameMaxLen {
		return ProductName{}, apperror.NewValidation("Product name must be between 1 and 50 characters").
			WithDetail("field", "name")
	}
	return ProductName{value: value}, nil
}

// Value returns the name string.
func (n ProductName) Value() string { return n.value }

// Sku is the unique stock-keeping unit code, trimmed, 1..50 characters.
// Uniqueness across the catalog is checked by the creation handler, not here.
type Sku struct {
	value string
}

// NewSku validates and constructs a Sku.
func NewSku(value string) (Sku, error) {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > skuMaxLen {
		return Sku{}, apperror.NewValidation("SKU must be between 1 and 50 characters").
			WithDetail("field", "sku")
	}
	return Sku{value: value}, nil
}

// Value returns the SKU string.
func (s Sku) Value() string { return s.value }

// UnitOfMeasure is the sales/stock unit, trimmed, 1..20 characters.
type UnitOfMeasure struct {
	value string
}

// NewUnitOfMeasure validates and constructs a UnitOfMeasure.
func NewUnitOfMeasure(value string) (UnitOfMeasure, error) {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > unitMaxLen {
		return UnitOfMeasure{}, apperror.NewValidation("Unit of measure must be between 1 and 20 characters").
			WithDetail("field", "unit")
	}
	return UnitOfMeasure{value: value}, nil
}

// Value returns the unit string.
func (u UnitOfMeasure) Value() string { return u.value }
