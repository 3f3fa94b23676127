package individual

import (
	"context"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
	"kontora/internal/core/tx"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

const entityName = "individual"

// CreateParams carries raw creation input. Value objects are constructed
// here, after the uniqueness probe and before the aggregate.
type CreateParams struct {
	FirstName         string
	LastName          string
	MiddleName        string
	Status            string
	CreatorUID        *string
	PositionID        *int
	Login             *string
	IsCompanyEmployee bool
}

// Service provides business logic for the Individual context.
type Service struct {
	repo    Repository
	txm     tx.Manager
	journal audit.Journal
}

// NewService creates a new Individual service.
func NewService(repo Repository, txm tx.Manager, journal audit.Journal) *Service {
	if journal == nil {
		journal = audit.Nop{}
	}
	return &Service{repo: repo, txm: txm, journal: journal}
}

// Create checks login uniqueness, builds the value objects and persists a
// new person. The whole check-then-insert sequence runs in one transaction;
// the unique index on login is the storage-level backstop.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Individual, error) {
	login, err := NewLogin(p.Login)
	if err != nil {
		return nil, err
	}

	var person *Individual
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		if !login.IsEmpty() {
			exists, err := s.repo.ExistsByLogin(ctx, login.String())
			if err != nil {
				return err
			}
			if exists {
				return apperror.NewConflict("Login already exists").
					WithDetail("login", login.String())
			}
		}

		name, err := NewName(p.FirstName, p.LastName, p.MiddleName)
		if err != nil {
			return err
		}
		status, err := ParseStatus(p.Status)
		if err != nil {
			return err
		}
		creatorUID, err := id.ParseOptional(p.CreatorUID)
		if err != nil {
			return err
		}

		person = NewIndividual(name, status, creatorUID, p.PositionID, login, p.IsCompanyEmployee)
		return s.repo.Save(ctx, person)
	})
	if err != nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  person.UID().String(),
		Action:     audit.ActionCreate,
		ActorUID:   id.String(person.CreatorUID()),
		Payload:    p,
	})
	logger.Info(ctx, "individual created", "uid", person.UID().String())
	return person, nil
}

// UpdateParams carries mutable person attributes. Nil leaves a field as is.
type UpdateParams struct {
	Status            *string
	PositionID        *int
	Login             *string
	IsCompanyEmployee *bool
}

// Update applies mutable attributes to an existing person. A new login is
// checked for uniqueness the same way creation does. Returns (nil, nil)
// when the uid does not resolve.
func (s *Service) Update(ctx context.Context, uid string, p UpdateParams) (*Individual, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}

	var person *Individual
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		person, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || person == nil {
			return err
		}

		if p.Status != nil {
			status, err := ParseStatus(*p.Status)
			if err != nil {
				return err
			}
			person.SetStatus(status)
		}
		if p.PositionID != nil {
			person.SetPositionID(p.PositionID)
		}
		if p.Login != nil {
			login, err := NewLogin(p.Login)
			if err != nil {
				return err
			}
			if !login.IsEmpty() && login.String() != person.Login().String() {
				exists, err := s.repo.ExistsByLogin(ctx, login.String())
				if err != nil {
					return err
				}
				if exists {
					return apperror.NewConflict("Login already exists").
						WithDetail("login", login.String())
				}
			}
			person.SetLogin(login)
		}
		if p.IsCompanyEmployee != nil {
			person.SetIsCompanyEmployee(*p.IsCompanyEmployee)
		}

		return s.repo.Save(ctx, person)
	})
	if err != nil || person == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  person.UID().String(),
		Action:     audit.ActionUpdate,
		Payload:    p,
	})
	return person, nil
}

// ContactParams carries raw contact input.
type ContactParams struct {
	Phone       *string
	Email       *string
	IsPrimary   bool
	HasTelegram bool
	HasWhatsApp bool
	AddedBy     string
}

// AddContact validates and appends a contact to a person. When the new
// contact is primary, any existing primary one is demoted. Returns
// (nil, nil) when the uid does not resolve.
func (s *Service) AddContact(ctx context.Context, uid string, p ContactParams) (*Individual, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	if p.Phone == nil && p.Email == nil {
		return nil, apperror.NewValidation("Contact must have a phone or an email")
	}
	if p.AddedBy == "" {
		return nil, apperror.NewValidation("Contact author is required")
	}
	addedBy, err := id.Parse(p.AddedBy)
	if err != nil {
		return nil, err
	}

	var phone *PhoneNumber
	if p.Phone != nil {
		v, err := NewPhoneNumber(*p.Phone)
		if err != nil {
			return nil, err
		}
		phone = &v
	}
	var email *EmailAddress
	if p.Email != nil {
		v, err := NewEmailAddress(*p.Email)
		if err != nil {
			return nil, err
		}
		email = &v
	}

	var person *Individual
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		person, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || person == nil {
			return err
		}
		person.AddContact(NewContactInfo(phone, email, p.IsPrimary, p.HasTelegram, p.HasWhatsApp, addedBy))
		return s.repo.Save(ctx, person)
	})
	if err != nil || person == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  person.UID().String(),
		Action:     audit.ActionUpdate,
		ActorUID:   p.AddedBy,
		Payload:    p,
	})
	return person, nil
}

// Get returns a person by uid, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, uid string) (*Individual, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUID(ctx, parsed)
}

// List returns persons matching the filters, or all when filters are empty.
func (s *Service) List(ctx context.Context, filters Filters) ([]*Individual, error) {
	if filters.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByFilters(ctx, filters)
}

// CompanyEmployees returns persons flagged as company employees.
func (s *Service) CompanyEmployees(ctx context.Context) ([]*Individual, error) {
	return s.repo.FindCompanyEmployees(ctx)
}

// Delete removes a person. Returns false when the uid did not resolve.
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
