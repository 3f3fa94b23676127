package equipment

import (
	"strings"

	"kontora/internal/core/apperror"
)

// Status is the physical lifecycle state of an equipment item. Any status
// may follow any other; the aggregate only records the prior value.
type Status string

const (
	StatusWarehouse   Status = "warehouse"
	StatusIssued      Status = "issued"
	StatusInstalled   Status = "installed"
	StatusSold        Status = "sold"
	StatusReclamation Status = "reclamation"
	StatusUtil        Status = "util"
	StatusCustomer    Status = "customer"
)

// AllStatuses lists every allowed status in declaration order.
func AllStatuses() []Status {
	return []Status{
		StatusWarehouse,
		StatusIssued,
		StatusInstalled,
		StatusSold,
		StatusReclamation,
		StatusUtil,
		StatusCustomer,
	}
}

// ParseStatus matches input case-insensitively against the allowed set.
func ParseStatus(value string) (Status, error) {
	normalized := Status(strings.ToLower(strings.TrimSpace(value)))
	for _, s := range AllStatuses() {
		if normalized == s {
			return s, nil
		}
	}
	return "", apperror.NewValidation("Invalid equipment status").
		WithDetail("field", "status").
		WithDetail("value", value)
}

// String returns the canonical string form.
func (s Status) String() string { return string(s) }
