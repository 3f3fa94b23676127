package legalentity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompanyName(t *testing.T) {
	tests := []struct {
		name      string
		shortName string
		fullName  string
		wantErr   string
	}{
		{"valid", `ООО "Ромашка"`, `Общество с ограниченной ответственностью "Ромашка"`, ""},
		{"short name at limit", strings.Repeat("a", 20), "Full", ""},
		{"short name over limit", strings.Repeat("a", 21), "Full", "Short name must be between 1 and 20 characters"},
		{"short name blank", "   ", "Full", "Short name must be between 1 and 20 characters"},
		{"full name at limit", "Short", strings.Repeat("b", 255), ""},
		{"full name over limit", "Short", strings.Repeat("b", 256), "Full name must be between 1 and 255 characters"},
		{"full name blank", "Short", "", "Full name must be between 1 and 255 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := NewCompanyName(tt.shortName, tt.fullName)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, strings.TrimSpace(tt.shortName), n.ShortName())
		})
	}
}

func TestNewCompanyName_CountsRunesNotBytes(t *testing.T) {
	// 20 cyrillic characters occupy 40 bytes but are within the limit.
	n, err := NewCompanyName(strings.Repeat("я", 20), "Full")
	require.NoError(t, err)
	assert.Equal(t, strings.Repeat("я", 20), n.ShortName())
}
