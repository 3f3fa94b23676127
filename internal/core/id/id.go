// Package id provides UUID identity for all platform entities.
// Every aggregate is keyed by a UUID, and every cross-aggregate reference
// (creator, curator, issued-to, supplier, customer) carries one.
package id

import (
	"strings"

	"github.com/google/uuid"

	"kontora/internal/core/apperror"
)

// ID is a type alias for UUID, used across all entities.
type ID = uuid.UUID

// New generates a fresh random (version 4) UUID.
func New() ID {
	return uuid.New()
}

// Parse converts a string to ID, validating UUID grammar.
// Returns a validation error naming the field on malformed input.
func Parse(s string) (ID, error) {
	parsed, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, apperror.NewValidation("invalid UUID format").
			WithDetail("value", s).
			WithCause(err)
	}
	return parsed, nil
}

// ParseOptional converts a nullable string to a nullable ID.
// nil and empty input map to nil (null propagates to null).
func ParseOptional(s *string) (*ID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	parsed, err := Parse(*s)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

// MustParse converts string to ID, panics on error.
// Use only for constants and tests.
func MustParse(s string) ID {
	return uuid.MustParse(s)
}

// Nil returns zero-value UUID.
func Nil() ID {
	return uuid.Nil
}

// IsNil checks if ID is zero-value.
func IsNil(id ID) bool {
	return id == uuid.Nil
}

// String returns the canonical lowercase form, or "" for a nil pointer.
func String(id *ID) string {
	if id == nil {
		return ""
	}
	return id.String()
}

// StringPtr returns a pointer to the canonical form, or nil for a nil pointer.
func StringPtr(id *ID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
