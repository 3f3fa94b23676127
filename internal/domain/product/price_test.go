package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/apperror"
)

func TestNewPrice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{"integer", "10", "10.00", ""},
		{"one fraction digit", "10.5", "10.50", ""},
		{"comma separator", "10,5", "10.50", ""},
		{"already normalized", "10.00", "10.00", ""},
		{"rounds half up", "10.005", "10.01", ""},
		{"rounds down", "10.004", "10.00", ""},
		{"zero", "0", "0.00", ""},
		{"large value", "9999999999.99", "9999999999.99", ""},
		{"leading whitespace", "  42.1", "42.10", ""},
		{"negative", "-1", "", "Price must be non-negative"},
		{"negative with comma", "-0,01", "", "Price must be non-negative"},
		{"not a number", "abc", "", "Invalid price value"},
		{"empty", "", "", "Invalid price value"},
		{"two separators", "1,2,3", "", "Invalid price value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPrice(tt.input)
			if tt.wantErr != "" {
				require.Error(t, err)
				appErr, ok := apperror.AsAppError(err)
				require.True(t, ok)
				assert.Equal(t, apperror.CodeValidation, appErr.Code)
				assert.Equal(t, tt.wantErr, appErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Value())
		})
	}
}

func TestNewPrice_Idempotent(t *testing.T) {
	p, err := NewPrice("10,5")
	require.NoError(t, err)

	again, err := NewPrice(p.Value())
	require.NoError(t, err)
	assert.Equal(t, p.Value(), again.Value())
}

func TestNewPriceFromFloat(t *testing.T) {
	p, err := NewPriceFromFloat(19.999)
	require.NoError(t, err)
	assert.Equal(t, "20.00", p.Value())

	_, err = NewPriceFromFloat(-0.01)
	require.Error(t, err)
}

func TestPrice_TinyNegativeRoundsToZero(t *testing.T) {
	// -0.001 rounds to zero at two fraction digits, so it is accepted.
	p, err := NewPrice("-0.001")
	require.NoError(t, err)
	assert.Equal(t, "0.00", p.Value())
}
