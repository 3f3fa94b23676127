// Package user provides the account bounded context: the User aggregate,
// its value objects and repository contract. Password hashing and token
// issuance live in the auth context; this package only stores the hash.
package user

import (
	"regexp"
	"strings"

	"kontora/internal/core/apperror"
)

var emailRE = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9\-]+\.[A-Za-z0-9.\-]+$`)

// EmailAddress is the account login identity, trimmed and format-checked.
type EmailAddress struct {
	value string
}

// NewEmailAddress validates and constructs an EmailAddress.
func NewEmailAddress(value string) (EmailAddress, error) {
	value = strings.TrimSpace(value)
	if value == "" || !emailRE.MatchString(value) {
		return EmailAddress{}, apperror.NewValidation("Invalid email address").
			WithDetail("field", "email")
	}
	return EmailAddress{value: value}, nil
}

// Value returns the email string.
func (e EmailAddress) Value() string { return e.value }
