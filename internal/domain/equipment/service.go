package equipment

import (
	"context"
	"time"

	"kontora/internal/core/id"
	"kontora/internal/core/tx"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

const entityName = "equipment"

// CreateParams carries raw creation input.
type CreateParams struct {
	Name       string
	Status     string
	Warehouse  *string
	CreatorUID *string
}

// UpdateParams carries the optional reference cluster. Nil leaves a field
// as is; a present pointer replaces it, including replacement with nil via
// a blank uid string.
type UpdateParams struct {
	TransportUID       *string
	Warehouse          *string
	IssuedToUID        *string
	PurchaseInvoiceUID *string
	SupplierUID        *string
	IssueDocUID        *string
	MountingDate       *time.Time
	ShipmentInvoiceUID *string
	CustomerUID        *string
	SkziFrom           *time.Time
	SkziTo             *time.Time
	UpdaterUID         *string
}

// Service provides business logic for the Equipment context.
type Service struct {
	repo    Repository
	txm     tx.Manager
	journal audit.Journal
}

// NewService creates a new Equipment service.
func NewService(repo Repository, txm tx.Manager, journal audit.Journal) *Service {
	if journal == nil {
		journal = audit.Nop{}
	}
	return &Service{repo: repo, txm: txm, journal: journal}
}

// Create builds the value objects and persists a new equipment item.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Equipment, error) {
	name, err := NewName(p.Name)
	if err != nil {
		return nil, err
	}
	status, err := ParseStatus(p.Status)
	if err != nil {
		return nil, err
	}
	creatorUID, err := id.ParseOptional(p.CreatorUID)
	if err != nil {
		return nil, err
	}

	entity := NewEquipment(name, status, creatorUID)
	entity.SetWarehouse(p.Warehouse)

	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  entity.UID().String(),
		Action:     audit.ActionCreate,
		ActorUID:   id.String(entity.CreatorUID()),
		Payload:    p,
	})
	logger.Info(ctx, "equipment created", "uid", entity.UID().String(), "status", entity.Status().String())
	return entity, nil
}

// ChangeStatus applies a new status, preserving the prior one on the
// aggregate. Any status may follow any other. Returns (nil, nil) when the
// uid does not resolve.
func (s *Service) ChangeStatus(ctx context.Context, uid, status string, authorUID *string) (*Equipment, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	newStatus, err := ParseStatus(status)
	if err != nil {
		return nil, err
	}
	author, err := id.ParseOptional(authorUID)
	if err != nil {
		return nil, err
	}

	var entity *Equipment
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		entity, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || entity == nil {
			return err
		}
		entity.ChangeStatus(newStatus, author)
		return s.repo.Save(ctx, entity)
	})
	if err != nil || entity == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  entity.UID().String(),
		Action:     audit.ActionStatusChange,
		ActorUID:   id.String(author),
		Payload: map[string]string{
			"from": statusString(entity.PreviousStatus()),
			"to":   entity.Status().String(),
		},
	})
	logger.Info(ctx, "equipment status changed",
		"uid", entity.UID().String(),
		"from", statusString(entity.PreviousStatus()),
		"to", entity.Status().String())
	return entity, nil
}

// Update applies the optional reference cluster to an existing item and
// stamps the acting user. Returns (nil, nil) when the uid does not resolve.
func (s *Service) Update(ctx context.Context, uid string, p UpdateParams) (*Equipment, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}

	var entity *Equipment
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		entity, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || entity == nil {
			return err
		}

		if p.TransportUID != nil {
			ref, err := id.ParseOptional(p.TransportUID)
			if err != nil {
				return err
			}
			entity.SetTransportUID(ref)
		}
		if p.Warehouse != nil {
			entity.SetWarehouse(p.Warehouse)
		}
		if p.IssuedToUID != nil {
			ref, err := id.ParseOptional(p.IssuedToUID)
			if err != nil {
				return err
			}
			entity.SetIssuedToUID(ref)
		}
		if p.PurchaseInvoiceUID != nil {
			ref, err := id.ParseOptional(p.PurchaseInvoiceUID)
			if err != nil {
				return err
			}
			entity.SetPurchaseInvoiceUID(ref)
		}
		if p.SupplierUID != nil {
			ref, err := id.ParseOptional(p.SupplierUID)
			if err != nil {
				return err
			}
			entity.SetSupplierUID(ref)
		}
		if p.IssueDocUID != nil {
			ref, err := id.ParseOptional(p.IssueDocUID)
			if err != nil {
				return err
			}
			entity.SetIssueDocUID(ref)
		}
		if p.MountingDate != nil {
			entity.SetMountingDate(p.MountingDate)
		}
		if p.ShipmentInvoiceUID != nil {
			ref, err := id.ParseOptional(p.ShipmentInvoiceUID)
			if err != nil {
				return err
			}
			entity.SetShipmentInvoiceUID(ref)
		}
		if p.CustomerUID != nil {
			ref, err := id.ParseOptional(p.CustomerUID)
			if err != nil {
				return err
			}
			entity.SetCustomerUID(ref)
		}
		if p.SkziFrom != nil {
			entity.SetSkziFrom(p.SkziFrom)
		}
		if p.SkziTo != nil {
			entity.SetSkziTo(p.SkziTo)
		}

		updaterUID, err := id.ParseOptional(p.UpdaterUID)
		if err != nil {
			return err
		}
		entity.Touch(updaterUID)

		return s.repo.Save(ctx, entity)
	})
	if err != nil || entity == nil {
		return nil, err
	}

	s.journal.Record(ctx, audit.Entry{
		EntityType: entityName,
		EntityUID:  entity.UID().String(),
		Action:     audit.ActionUpdate,
		ActorUID:   id.String(entity.UpdatedByUID()),
		Payload:    p,
	})
	return entity, nil
}

// Get returns an equipment item by uid, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, uid string) (*Equipment, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUID(ctx, parsed)
}

// List returns equipment matching the filters, or all when filters are empty.
func (s *Service) List(ctx context.Context, filters Filters) ([]*Equipment, error) {
	if filters.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByFilters(ctx, filters)
}

// Delete removes an equipment item. Returns false when the uid did not
// resolve.
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

func statusString(s *Status) string {
	if s == nil {
		return ""
	}
	return s.String()
}
