package legalentity

import (
	"strings"
	"unicode/utf8"

	"kontora/internal/core/apperror"
)

const (
	shortNameMaxLen = 20
	fullNameMaxLen  = 255
)

// CompanyName is the registered name of a legal entity: a short display
// name (1..20 chars) and the full official name (1..255 chars).
type CompanyName struct {
	shortName string
	fullName  string
}

// NewCompanyName validates and constructs a CompanyName.
func NewCompanyName(shortName, fullName string) (CompanyName, error) {
	shortName = strings.TrimSpace(shortName)
	fullName = strings.TrimSpace(fullName)

	if shortName == "" || utf8.RuneCountInString(shortName) > shortNameMaxLen {
		return CompanyName{}, apperror.NewValidation("Short name must be between 1 and 20 characters").
			WithDetail("field", "shortName")
	}
	if fullName == "" || utf8.RuneCountInString(fullName) > fullNameMaxLen {
		return CompanyName{}, apperror.NewValidation("Full name must be between 1 and 255 characters").
			WithDetail("field", "fullName")
	}

	return CompanyName{shortName: shortName, fullName: fullName}, nil
}

// ShortName returns the short display name.
func (n CompanyName) ShortName() string { return n.shortName }

// FullName returns the full official name.
func (n CompanyName) FullName() string { return n.fullName }

// String returns the short name.
func (n CompanyName) String() string { return n.shortName }
