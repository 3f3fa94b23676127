package individual

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		first   string
		last    string
		middle  string
		wantErr string
	}{
		{"valid", "Иван", "Иванов", "Иванович", ""},
		{"at limit", strings.Repeat("а", 20), strings.Repeat("б", 20), strings.Repeat("в", 20), ""},
		{"first over limit", strings.Repeat("а", 21), "Иванов", "Иванович", "First name must be between 1 and 20 characters"},
		{"last blank", "Иван", " ", "Иванович", "Last name must be between 1 and 20 characters"},
		{"middle blank", "Иван", "Иванов", "", "Middle name must be between 1 and 20 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewName(tt.first, tt.last, tt.middle)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestName_FullAndShort(t *testing.T) {
	n, err := NewName("Иван", "Иванов", "Иванович")
	require.NoError(t, err)

	assert.Equal(t, "Иванов Иван Иванович", n.Full())
	assert.Equal(t, "Иванов И.И.", n.Short())
}

func TestNewLogin(t *testing.T) {
	str := func(s string) *string { return &s }

	tests := []struct {
		name    string
		input   *string
		want    *string
		wantErr bool
	}{
		{"nil is absent", nil, nil, false},
		{"blank is absent", str("   "), nil, false},
		{"six characters", str("ivanov"), str("ivanov"), false},
		{"trimmed", str("  ivanov  "), str("ivanov"), false},
		{"too short", str("ivan"), nil, true},
		{"five characters", str("ivano"), nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			login, err := NewLogin(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "Login must be at least 6 characters long")
				return
			}
			require.NoError(t, err)
			if tt.want == nil {
				assert.True(t, login.IsEmpty())
				assert.Nil(t, login.Value())
			} else {
				require.NotNil(t, login.Value())
				assert.Equal(t, *tt.want, *login.Value())
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	s, err := ParseStatus("ACTIVE")
	require.NoError(t, err)
	assert.Equal(t, StatusActive, s)

	s, err = ParseStatus(" archived ")
	require.NoError(t, err)
	assert.Equal(t, StatusArchived, s)

	_, err = ParseStatus("deleted")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid person status")
}
