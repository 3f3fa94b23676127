package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
)

// stubRepo is an in-memory Repository for service tests.
type stubRepo struct {
	accounts map[id.ID]*User
}

func newStubRepo() *stubRepo {
	return &stubRepo{accounts: make(map[id.ID]*User)}
}

func (r *stubRepo) FindByUID(_ context.Context, uid id.ID) (*User, error) {
	return r.accounts[uid], nil
}

func (r *stubRepo) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.accounts {
		if u.Email().Value() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *stubRepo) FindAll(_ context.Context) ([]*User, error) {
	out := make([]*User, 0, len(r.accounts))
	for _, u := range r.accounts {
		out = append(out, u)
	}
	return out, nil
}

func (r *stubRepo) Save(_ context.Context, u *User) error {
	r.accounts[u.UID()] = u
	return nil
}

func (r *stubRepo) Delete(_ context.Context, uid id.ID) (bool, error) {
	if _, ok := r.accounts[uid]; !ok {
		return false, nil
	}
	delete(r.accounts, uid)
	return true, nil
}

func (r *stubRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	u, err := r.FindByEmail(ctx, email)
	return u != nil, err
}

func TestService_Register(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)

	account, err := svc.Register(context.Background(), RegisterParams{
		Email:    "ivanov@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, account)

	assert.Equal(t, "ivanov@example.com", account.Email().Value())
	assert.Equal(t, StatusActive, account.Status())
	assert.NotEqual(t, "correct horse", account.PasswordHash())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte("correct horse")))
}

func TestService_Register_ShortPassword(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	_, err := svc.Register(context.Background(), RegisterParams{
		Email:    "ivanov@example.com",
		Password: "1234567",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Password must be at least 8 characters long")
}

func TestService_Register_InvalidEmail(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	for _, email := range []string{"", "not-an-email", "a@b", "@example.com"} {
		_, err := svc.Register(context.Background(), RegisterParams{
			Email:    email,
			Password: "long enough",
		})
		require.Error(t, err, "email %q", email)
		assert.True(t, apperror.IsValidation(err))
	}
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	params := RegisterParams{Email: "ivanov@example.com", Password: "long enough"}
	_, err := svc.Register(ctx, params)
	require.NoError(t, err)

	_, err = svc.Register(ctx, params)
	require.Error(t, err)
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperror.CodeDuplicate, appErr.Code)
	assert.Equal(t, "User with this email already exists", appErr.Message)
	assert.Len(t, repo.accounts, 1)
}

func TestService_SetStatus(t *testing.T) {
	repo := newStubRepo()
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	account, err := svc.Register(ctx, RegisterParams{Email: "ivanov@example.com", Password: "long enough"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(ctx, account.UID().String(), "archived")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, StatusArchived, updated.Status())
	require.NotNil(t, updated.UpdatedAt())
}

func TestService_SetStatus_UnknownUID(t *testing.T) {
	svc := NewService(newStubRepo(), nil, nil)

	updated, err := svc.SetStatus(context.Background(), id.New().String(), "archived")
	require.NoError(t, err)
	assert.Nil(t, updated)
}
