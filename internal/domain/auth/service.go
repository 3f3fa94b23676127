package auth

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"kontora/internal/core/apperror"
	"kontora/internal/domain/user"
	"kontora/pkg/logger"
)

// TokenPair is the result of a successful sign-in.
type TokenPair struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Service verifies credentials against the User context and issues tokens.
type Service struct {
	users *user.Service
	jwt   *JWTService
}

// NewService creates a new auth service.
func NewService(users *user.Service, jwt *JWTService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies the email/password pair, stamps lastLoginAt on the account
// and issues an access token. A wrong email and a wrong password produce the
// same error so the endpoint does not leak which accounts exist.
func (s *Service) Login(ctx context.Context, email, password string) (*user.User, TokenPair, error) {
	account, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, TokenPair{}, err
	}
	if account == nil {
		return nil, TokenPair{}, apperror.NewUnauthorized("Invalid email or password")
	}
	if !account.Status().IsActive() {
		return nil, TokenPair{}, apperror.NewForbidden("Account is archived")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash()), []byte(password)); err != nil {
		return nil, TokenPair{}, apperror.NewUnauthorized("Invalid email or password")
	}

	token, expiresAt, err := s.jwt.GenerateAccessToken(account.UID().String(), account.Email().Value())
	if err != nil {
		return nil, TokenPair{}, apperror.NewInternal(err)
	}

	account.StampLogin(time.Now())
	if err := s.users.RecordLogin(ctx, account); err != nil {
		return nil, TokenPair{}, err
	}

	logger.Info(ctx, "user logged in", "uid", account.UID().String())
	return account, TokenPair{AccessToken: token, ExpiresAt: expiresAt}, nil
}
