package legalentity

import (
	"context"
	"strings"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
	"kontora/internal/core/tx"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

const entityName = "legal_entity"

// CreateParams carries raw creation input.
type CreateParams struct {
	ShortName    string
	FullName     string
	OGRN         string
	INN          string
	KPP          string
	LegalAddress *string
	PhoneNumber  *string
	Email        *string
	CreatorUID   *string
}

// UpdateParams carries mutable company attributes. Nil leaves a field as is.
type UpdateParams struct {
	LegalAddress *string
	PhoneNumber  *string
	Email        *string
	CuratorUID   *string
}

// Service provides business logic for the LegalEntity context.
type Service struct {
	repo    Repository
	txm     tx.Manager
	journal audit.Journal
}

// NewService creates a new LegalEntity service.
func NewService(repo Repository, txm tx.Manager, journal audit.Journal) *Service {
	if journal == nil {
		journal = audit.Nop{}
	}
	return &Service{repo: repo, txm: txm, journal: journal}
}

// Create checks INN uniqueness, builds the value objects and persists a new
// company. The uniqueness check runs before construction; the unique index
// on inn is the storage-level backstop for concurrent creations.
func (s *Service) Create(ctx context.Context, p CreateParams) (*LegalEntity, error) {
	var entity *LegalEntity
	err := tx.Run(ctx, s.txm, func(ctx context.Context) error {
		// check uniqueness with the trimmed value the aggregate will actually store
		inn := strings.TrimSpace(p.INN)
		exists, err := s.repo.ExistsByINN(ctx, inn)
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewConflict("Legal entity with this INN already exists").
				WithDetail("inn", inn)
		}

		name, err := NewCompanyName(p.ShortName, p.FullName)
		if err != nil {
			return err
		}
		taxNumber, err := NewTaxNumber(p.OGRN, p.INN, p.KPP)
		if err != nil {
			return err
		}
		creatorUID, err := id.ParseOptional(p.CreatorUID)
		if err != nil {
			return err
		}

		entity = NewLegalEntity(name, taxNumber, creatorUID)
		entity.SetLegalAddress(p.LegalAddress)
		entity.SetPhoneNumber(p.PhoneNumber)
		entity.SetEmail(p.Email)

		return s.repo.Save(ctx, entity)
	})
	if err != nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  entity.UID().String(),
		Action:     audit.ActionCreate,
		ActorUID:   id.String(entity.CreatorUID()),
		Payload:    p,
	})
	logger.Info(ctx, "legal entity created", "uid", entity.UID().String(), "inn", entity.TaxNumber().INN())
	return entity, nil
}

// Update applies mutable attributes to an existing company.
// Returns (nil, nil) when the uid does not resolve.
func (s *Service) Update(ctx context.Context, uid string, p UpdateParams) (*LegalEntity, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}

	var entity *LegalEntity
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		entity, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || entity == nil {
			return err
		}

		if p.LegalAddress != nil {
			entity.SetLegalAddress(p.LegalAddress)
		}
		if p.PhoneNumber != nil {
			entity.SetPhoneNumber(p.PhoneNumber)
		}
		if p.Email != nil {
			entity.SetEmail(p.Email)
		}
		if p.CuratorUID != nil {
			curatorUID, err := id.ParseOptional(p.CuratorUID)
			if err != nil {
				return err
			}
			entity.SetCuratorUID(curatorUID)
		}

		return s.repo.Save(ctx, entity)
	})
	if err != nil || entity == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  entity.UID().String(),
		Action:     audit.ActionUpdate,
		Payload:    p,
	})
	return entity, nil
}

// Get returns a company by uid, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, uid string) (*LegalEntity, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUID(ctx, parsed)
}

// List returns companies matching the filters, or all when filters are empty.
func (s *Service) List(ctx context.Context, filters Filters) ([]*LegalEntity, error) {
	if filters.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByFilters(ctx, filters)
}

// Delete removes a company. Returns false when the uid did not resolve.
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
