package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/id"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	uid := id.New().String()
	token, expiresAt, err := svc.GenerateAccessToken(uid, "ivanov@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	userCtx, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uid, userCtx.UserUID)
	assert.Equal(t, "ivanov@example.com", userCtx.Email)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService(DefaultJWTConfig("secret-one"))
	verifier := NewJWTService(DefaultJWTConfig("secret-two"))

	token, _, err := issuer.GenerateAccessToken(id.New().String(), "ivanov@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	config := DefaultJWTConfig("test-secret")
	config.AccessTokenTTL = -time.Minute
	svc := NewJWTService(config)

	token, _, err := svc.GenerateAccessToken(id.New().String(), "ivanov@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_Garbage(t *testing.T) {
	svc := NewJWTService(DefaultJWTConfig("test-secret"))

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
