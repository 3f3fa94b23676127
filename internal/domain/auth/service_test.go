package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
	"kontora/internal/domain/user"
)

// stubUserRepo is an in-memory user.Repository for sign-in tests.
type stubUserRepo struct {
	accounts map[id.ID]*user.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{accounts: make(map[id.ID]*user.User)}
}

func (r *stubUserRepo) FindByUID(_ context.Context, uid id.ID) (*user.User, error) {
	return r.accounts[uid], nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.accounts {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.accounts))
	for _, u := range r.accounts {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubUserRepo) Save(_ context.Context, u *user.User) error {
	r.accounts[u.UID()] = u
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, uid id.ID) (bool, error) {
	if _, ok := r.accounts[uid]; !ok {
		return false, nil
	}
	delete(r.accounts, uid)
	return true, nil
}

func (r *stubUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func newTestService(t *testing.T) (*Service, *user.Service) {
	t.Helper()
	users := user.NewService(newStubUserRepo(), nil, nil)
	return NewService(users, NewJWTService(DefaultJWTConfig("test-secret"))), users
}

func TestService_Login(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, user.RegisterParams{
		Email:    "ivanov@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.Nil(t, registered.LastLoginAt())

	account, pair, err := svc.Login(ctx, "ivanov@example.com", "correct horse")
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEmpty(t, pair.AccessToken)
	assert.Equal(t, registered.UID(), account.UID())
	require.NotNil(t, account.LastLoginAt())
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	_, err := users.Register(ctx, user.RegisterParams{
		Email:    "ivanov@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ivanov@example.com", "wrong horse")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeUnauthorized, appErr.Code)
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	// Same message as the wrong-password case: the endpoint must not leak
	// which accounts exist.
	assert.Equal(t, "Invalid email or password", appErr.Message)
}

func TestService_Login_ArchivedAccount(t *testing.T) {
	svc, users := newTestService(t)
	ctx := context.Background()

	registered, err := users.Register(ctx, user.RegisterParams{
		Email:    "ivanov@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	_, err = users.SetStatus(ctx, registered.UID().String(), "archived")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ivanov@example.com", "correct horse")
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeForbidden, appErr.Code)
	assert.Equal(t, "Account is archived", appErr.Message)
}
