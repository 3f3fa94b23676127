package user

import (
	"context"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
	"kontora/internal/core/tx"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

const (
	entityName     = "user"
	passwordMinLen = 8
)

// RegisterParams carries raw registration input.
type RegisterParams struct {
	Email    string
	Password string
}

// Service provides business logic for the User context.
type Service struct {
	repo    Repository
	txm     tx.Manager
	journal audit.Journal
}

// NewService creates a new User service.
func NewService(repo Repository, txm tx.Manager, journal audit.Journal) *Service {
	if journal == nil {
		journal = audit.Nop{}
	}
	return &Service{repo: repo, txm: txm, journal: journal}
}

// Register checks email uniqueness, hashes the password with bcrypt and
// persists a new active account. The unique index on email is the
// storage-level backstop for concurrent registrations.
func (s *Service) Register(ctx context.Context, p RegisterParams) (*User, error) {
	email, err := NewEmailAddress(p.Email)
	if err != nil {
		return nil, err
	}
	if utf8.RuneCountInString(p.Password) < passwordMinLen {
		return nil, apperror.NewValidation("Password must be at least 8 characters long").
			WithDetail("field", "password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	var account *User
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		exists, err := s.repo.ExistsByEmail(ctx, email.Value())
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewDuplicate("User", "email").WithDetail("email", email.Value())
		}
		account = NewUser(email, string(hash))
		return s.repo.Save(ctx, account)
	})
	if err != nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  account.UID().String(),
		Action:     audit.ActionCreate,
		// never the password, not even hashed
		Payload: map[string]string{"email": account.Email().Value()},
	})
	logger.Info(ctx, "user registered", "uid", account.UID().String(), "email", account.Email().Value())
	return account, nil
}

// Get returns an account by uid, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, uid string) (*User, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUID(ctx, parsed)
}

// GetByEmail returns an account by email, or (nil, nil) when absent.
func (s *Service) GetByEmail(ctx context.Context, email string) (*User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// List returns every account.
func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.FindAll(ctx)
}

// RecordLogin persists an account whose sign-in stamp was just updated.
func (s *Service) RecordLogin(ctx context.Context, account *User) error {
	return s.repo.Save(ctx, account)
}

// SetStatus replaces an account's lifecycle status. Returns (nil, nil) when
// the uid does not resolve.
func (s *Service) SetStatus(ctx context.Context, uid, status string) (*User, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	newStatus, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}

	var account *User
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		account, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || account == nil {
			return err
		}
		account.SetStatus(newStatus)
		return s.repo.Save(ctx, account)
	})
	if err != nil || account == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  account.UID().String(),
		Action:     audit.ActionStatusChange,
		Payload:    map[string]string{"status": account.Status().String()},
	})
	return account, nil
}

// Delete removes an account. Returns false when the uid did not resolve.
func (s *Service) Delete(ctx context.Context, uid string) (bool, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return false, err
	}
	deleted, err := s.repo.Delete(ctx, parsed)
	if err != nil {
		return false, err
	}
	if deleted {
		s.journal.Record(ctx, audit.Entry{
			EntityType: entityName,
			EntityUID:  parsed.String(),
			Action:     audit.ActionDelete,
		})
	}
	return deleted, nil
}
