package legalentity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/apperror"
)

func TestNewTaxNumber_Valid(t *testing.T) {
	tn, err := NewTaxNumber("1027700132195", "7707083893", "773601001")
	require.NoError(t, err)
	assert.Equal(t, "1027700132195", tn.OGRN())
	assert.Equal(t, "7707083893", tn.INN())
	assert.Equal(t, "773601001", tn.KPP())
}

func TestNewTaxNumber_TrimsInput(t *testing.T) {
	tn, err := NewTaxNumber(" 1107746232593 ", " 7701870742 ", " 770101001 ")
	require.NoError(t, err)
	assert.Equal(t, "1107746232593", tn.OGRN())
	assert.Equal(t, "7701870742", tn.INN())
	assert.Equal(t, "770101001", tn.KPP())
}

func TestValidateOGRN(t *testing.T) {
	tests := []struct {
		name    string
		ogrn    string
		wantErr string
	}{
		{"valid 13-digit", "1027700132195", ""},
		{"valid 13-digit sber", "1027700132195", ""},
		{"valid OGRNIP 15-digit", "304500116000157", ""},
		{"wrong control digit", "1027700132194", "Invalid OGRN: control digit check failed"},
		{"wrong OGRNIP control digit", "304500116000158", "Invalid OGRNIP: control digit check failed"},
		{"too short", "102770013219", "OGRN must contain exactly 13 digits, or OGRNIP must contain exactly 15 digits"},
		{"14 digits", "10277001321950", "OGRN must contain exactly 13 digits, or OGRNIP must contain exactly 15 digits"},
		{"non-digits", "10277001321AB", "OGRN must contain exactly 13 digits, or OGRNIP must contain exactly 15 digits"},
		{"empty", "", "OGRN must contain exactly 13 digits, or OGRNIP must contain exactly 15 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOGRN(tt.ogrn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestValidateINN(t *testing.T) {
	tests := []struct {
		name    string
		inn     string
		wantErr string
	}{
		{"valid 10-digit", "7707083893", ""},
		{"valid 10-digit another", "7701870742", ""},
		{"valid 12-digit", "500100732259", ""},
		{"wrong control digit 10", "7707083899", "Invalid INN: control digit check failed"},
		{"wrong first control digit 12", "500100732269", "Invalid INN: first control digit check failed"},
		{"wrong second control digit 12", "500100732258", "Invalid INN: second control digit check failed"},
		{"11 digits", "77070838930", "INN must contain exactly 10 digits for legal entities or 12 digits for individuals/IP"},
		{"non-digits", "77070838AB", "INN must contain exactly 10 digits for legal entities or 12 digits for individuals/IP"},
		{"empty", "", "INN must contain exactly 10 digits for legal entities or 12 digits for individuals/IP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateINN(tt.inn)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestValidateKPP(t *testing.T) {
	tests := []struct {
		name    string
		kpp     string
		wantErr string
	}{
		{"valid", "773601001", ""},
		{"valid moscow", "770101001", ""},
		{"valid largest taxpayer region 99", "997650001", ""},
		{"bad region 00", "003601001", "Invalid KPP: invalid region code"},
		{"bad region 80", "803601001", "Invalid KPP: invalid region code"},
		{"zero reason code", "770100001", "Invalid KPP: reason code must be between 01 and 99"},
		{"too short", "77360100", "KPP must contain exactly 9 digits"},
		{"non-digits", "7736O1001", "KPP must contain exactly 9 digits"},
		{"empty", "", "KPP must contain exactly 9 digits"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateKPP(tt.kpp)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantErr, appErr.Message)
		})
	}
}

func TestNewTaxNumber_FirstViolationWins(t *testing.T) {
	// Both OGRN and INN are broken; the OGRN error must surface.
	_, err := NewTaxNumber("123", "456", "789")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "ogrn", appErr.Details["field"])
}
