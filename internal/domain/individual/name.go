package individual

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"kontora/internal/core/apperror"
)

const namePartMaxLen = 20

// Name is the personal name of a physical person: first, last and middle
// parts, each trimmed and 1..20 characters long.
type Name struct {
	first  string
	last   string
	middle string
}

// NewName validates and constructs a Name.
func NewName(first, last, middle string) (Name, error) {
	first = strings.TrimSpace(first)
	last = strings.TrimSpace(last)
	middle = strings.TrimSpace(middle)

	if first == "" || utf8.RuneCountInString(first) > namePartMaxLen {
		return Name{}, apperror.NewValidation("First name must be between 1 and 20 characters").
			WithDetail("field", "firstName")
	}
	if last == "" || utf8.RuneCountInString(last) > namePartMaxLen {
		return Name{}, apperror.NewValidation("Last name must be between 1 and 20 characters").
			WithDetail("field", "lastName")
	}
	if middle == "" || utf8.RuneCountInString(middle) > namePartMaxLen {
		return Name{}, apperror.NewValidation("Middle name must be between 1 and 20 characters").
			WithDetail("field", "middleName")
	}

	return Name{first: first, last: last, middle: middle}, nil
}

// First returns the first name.
func (n Name) First() string { return n.first }

// Last returns the last name.
func (n Name) Last() string { return n.last }

// Middle returns the middle (patronymic) name.
func (n Name) Middle() string { return n.middle }

// Full returns "Last First Middle".
func (n Name) Full() string {
	return fmt.Sprintf("%s %s %s", n.last, n.first, n.middle)
}

// Short returns "Last F.M.".
func (n Name) Short() string {
	f, _ := utf8.DecodeRuneInString(n.first)
	m, _ := utf8.DecodeRuneInString(n.middle)
	return fmt.Sprintf("%s %c.%c.", n.last, f, m)
}
