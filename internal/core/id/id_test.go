package id

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/apperror"
)

func TestParse(t *testing.T) {
	parsed, err := Parse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	require.NoError(t, err)
	assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", parsed.String())

	parsed, err = Parse("  6ba7b810-9dad-11d1-80b4-00c04fd430c8  ")
	require.NoError(t, err)
	assert.False(t, IsNil(parsed))
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "6ba7b810-9dad-11d1-80b4"} {
		_, err := Parse(input)
		require.Error(t, err, "input %q", input)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestParseOptional(t *testing.T) {
	got, err := ParseOptional(nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	blank := "   "
	got, err = ParseOptional(&blank)
	require.NoError(t, err)
	assert.Nil(t, got)

	valid := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	got, err = ParseOptional(&valid)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, valid, got.String())

	bad := "nope"
	_, err = ParseOptional(&bad)
	assert.Error(t, err)
}

func TestStringHelpers(t *testing.T) {
	assert.Equal(t, "", String(nil))
	assert.Nil(t, StringPtr(nil))

	v := New()
	assert.Equal(t, v.String(), String(&v))
	require.NotNil(t, StringPtr(&v))
	assert.Equal(t, v.String(), *StringPtr(&v))
}

func TestNewIsUnique(t *testing.T) {
	assert.NotEqual(t, New(), New())
	assert.True(t, IsNil(Nil()))
}
