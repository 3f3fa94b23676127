// Package equipment provides the equipment bounded context: the Equipment
// aggregate with its status history, value objects and repository contract.
package equipment

import (
	"strings"
	"unicode/utf8"

	"kontora/internal/core/apperror"
)

const nameMaxLen = 100

// Name is the equipment display name, trimmed, 1..100 characters.
type Name struct {
	value string
}

// NewName validates and constructs a Name.
func NewName(value string) (Name, error) {
	value = strings.TrimSpace(value)
	if value == "" || utf8.RuneCountInString(value) > nameMaxLen {
		return Name{}, apperror.NewValidation("Equipment name must be between 1 and 100 characters").
			WithDetail("field", "name")
	}
	return Name{value: value}, nil
}

// Value returns the name string.
func (n Name) Value() string { return n.value }
