package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactories(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		code       string
		httpStatus int
	}{
		{"validation", NewValidation("bad input"), CodeValidation, http.StatusBadRequest},
		{"not found", NewNotFound("Product", "123"), CodeNotFound, http.StatusNotFound},
		{"conflict", NewConflict("Login already exists"), CodeConflict, http.StatusConflict},
		{"duplicate", NewDuplicate("User", "email"), CodeDuplicate, http.StatusConflict},
		{"unauthorized", NewUnauthorized("no token"), CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", NewForbidden("archived"), CodeForbidden, http.StatusForbidden},
		{"internal", NewInternal(errors.New("boom")), CodeInternal, http.StatusInternalServerError},
		{"database", NewDatabase(errors.New("conn refused")), CodeDatabase, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.httpStatus, tt.err.HTTPStatus)
		})
	}
}

func TestNewDuplicate_Message(t *testing.T) {
	err := NewDuplicate("Product", "SKU")
	assert.Equal(t, "Product with this SKU already exists", err.Message)
	assert.Equal(t, "Product", err.Details["entity"])
	assert.Equal(t, "SKU", err.Details["field"])
}

func TestWithDetailAndCause(t *testing.T) {
	cause := errors.New("underlying")
	err := NewValidation("bad").WithDetail("field", "name").WithCause(cause)

	assert.Equal(t, "name", err.Details["field"])
	assert.True(t, errors.Is(err, cause))
	assert.Contains(t, err.Error(), "caused by")
}

func TestAsAppError_Wrapped(t *testing.T) {
	inner := NewNotFound("Equipment", "abc")
	wrapped := fmt.Errorf("handling request: %w", inner)

	appErr, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.True(t, IsNotFound(wrapped))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(NewConflict("x")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
}

func TestIsDuplicate(t *testing.T) {
	assert.True(t, IsDuplicate(NewDuplicate("User", "email")))
	assert.True(t, IsDuplicate(NewConflict("Login already exists")))
	assert.False(t, IsDuplicate(NewValidation("bad")))
	assert.False(t, IsDuplicate(errors.New("plain")))
}
