package product

import (
	"strings"

	"github.com/shopspring/decimal"

	"kontora/internal/core/apperror"
)

// Price is a non-negative monetary value normalized to a fixed-scale
// decimal string with exactly two fraction digits. The string form (never a
// binary float) is the canonical representation, so repeated normalization
// is idempotent and currency arithmetic never drifts.
type Price struct {
	value string
}

// NewPrice parses a decimal string, accepting comma or dot as the decimal
// separator, and normalizes to two fraction digits.
func NewPrice(value string) (Price, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(value), ",", ".")
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Price{}, apperror.NewValidation("Invalid price value").
			WithDetail("field", "price").
			WithDetail("value", value)
	}
	return newPriceFromDecimal(d)
}

// NewPriceFromFloat constructs a Price from a numeric input.
func NewPriceFromFloat(value float64) (Price, error) {
	return newPriceFromDecimal(decimal.NewFromFloat(value))
}

func newPriceFromDecimal(d decimal.Decimal) (Price, error) {
	d = d.Round(2)
	if d.IsNegative() {
		return Price{}, apperror.NewValidation("Price must be non-negative").
			WithDetail("field", "price")
	}
	return Price{value: d.StringFixed(2)}, nil
}

// Value returns the normalized decimal string, e.g. "10.00".
func (p Price) Value() string { return p.value }

// String returns the normalized decimal string.
func (p Price) String() string { return p.value }

// Decimal returns the value as a decimal for arithmetic at call sites.
func (p Price) Decimal() decimal.Decimal {
	d, _ := decimal.NewFromString(p.value)
	return d
}
