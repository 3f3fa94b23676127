package individual

import (
	"strings"
	"unicode/utf8"

	"kontora/internal/core/apperror"
)

const loginMinLen = 6

// Login is an optional account login. An absent login is modeled as the
// empty value; a present login must be at least 6 characters long.
type Login struct {
	value string
}

// NewLogin validates and constructs a Login from a nullable string.
// nil and blank input produce an empty Login.
func NewLogin(value *string) (Login, error) {
	if value == nil {
		return Login{}, nil
	}
	v := strings.TrimSpace(*value)
	if v != "" && utf8.RuneCountInString(v) < loginMinLen {
		return Login{}, apperror.NewValidation("Login must be at least 6 characters long").
			WithDetail("field", "login")
	}
	return Login{value: v}, nil
}

// IsEmpty reports whether no login is set.
func (l Login) IsEmpty() bool { return l.value == "" }

// Value returns the login, or nil when absent.
func (l Login) Value() *string {
	if l.value == "" {
		return nil
	}
	v := l.value
	return &v
}

// String returns the login or empty string.
func (l Login) String() string { return l.value }
