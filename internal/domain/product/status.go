package product

import (
	"strings"

	"kontora/internal/core/apperror"
)

// Status is the catalog lifecycle state of a product.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// ParseStatus matches input case-insensitively against the allowed set.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	}
	return "", apperror.NewValidation("Invalid product status").
		WithDetail("field", "status").
		WithDetail("value", value)
}

// IsActive reports whether the product is sellable.
func (s Status) IsActive() bool { return s == StatusActive }

// String returns the canonical string form.
func (s Status) String() string { return string(s) }

// Type distinguishes physical items from services.
type Type string

const (
	TypeItem    Type = "item"
	TypeService Type = "service"
)

// ParseType matches input case-insensitively against the allowed set.
func ParseType(value string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(value))) {
	case TypeItem:
		return TypeItem, nil
	case TypeService:
		return TypeService, nil
	}
	return "", apperror.NewValidation("Invalid product type").
		WithDetail("field", "type").
		WithDetail("value", value)
}

// IsItem reports whether the product is a physical item.
func (t Type) IsItem() bool { return t == TypeItem }

// IsService reports whether the product is a service.
func (t Type) IsService() bool { return t == TypeService }

// String returns the canonical string form.
func (t Type) String() string { return string(t) }
