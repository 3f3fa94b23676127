package user

import (
	"strings"

	"kontora/internal/core/apperror"
)

// Status is the account lifecycle state.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// ParseStatus matches input case-insensitively against the allowed set.
func ParseStatus(value string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(value))) {
	case StatusActive:
		return StatusActive, nil
	case StatusArchived:
		return StatusArchived, nil
	}
	return "", apperror.NewValidation("Invalid user status").
		WithDetail("field", "status").
		WithDetail("value", value)
}

// IsActive reports whether the account may sign in.
func (s Status) IsActive() bool { return s == StatusActive }

// String returns the canonical string form.
func (s Status) String() string { return string(s) }
