package product

import (
	"context"
	"strings"

	"kontora/internal/core/apperror"
	"kontora/internal/core/id"
	"kontora/internal/core/tx"
	"kontora/internal/domain/audit"
	"kontora/pkg/logger"
)

const entityName = "product"

// CreateParams carries raw creation input.
type CreateParams struct {
	Name                string
	Status              string
	Type                string
	Unit                string
	Sku                 string
	GroupName           *string
	SubgroupName        *string
	Code1C              *string
	SalePrice           *string
	AvgPurchaseCostYear *string
	LastPurchaseCost    *string
	CreatorUID          *string
}

// UpdateParams carries mutable product attributes. Nil leaves a field as is.
type UpdateParams struct {
	Name                *string
	Status              *string
	Type                *string
	Unit                *string
	GroupName           *string
	SubgroupName        *string
	Code1C              *string
	SalePrice           *string
	AvgPurchaseCostYear *string
	LastPurchaseCost    *string
	UpdaterUID          *string
}

// Service provides business logic for the Product context.
type Service struct {
	repo    Repository
	txm     tx.Manager
	journal audit.Journal
}

// NewService creates a new Product service.
func NewService(repo Repository, txm tx.Manager, journal audit.Journal) *Service {
	if journal == nil {
		journal = audit.Nop{}
	}
	return &Service{repo: repo, txm: txm, journal: journal}
}

// Create checks SKU and 1C-code uniqueness, builds the value objects and
// persists a new product. The unique indexes on sku and code_1c are the
// storage-level backstop for concurrent creations.
func (s *Service) Create(ctx context.Context, p CreateParams) (*Product, error) {
	var entity *Product
	err := tx.Run(ctx, s.txm, func(ctx context.Context) error {
		// check uniqueness with the trimmed value the aggregate will actually store
		sku, err := NewSku(p.Sku)
		if err != nil {
			return err
		}
		exists, err := s.repo.ExistsBySKU(ctx, sku.Value())
		if err != nil {
			return err
		}
		if exists {
			return apperror.NewDuplicate("Product", "SKU").WithDetail("sku", sku.Value())
		}
		if p.Code1C != nil {
			if code := strings.TrimSpace(*p.Code1C); code != "" {
				exists, err = s.repo.ExistsByCode1C(ctx, code)
				if err != nil {
					return err
				}
				if exists {
					return apperror.NewDuplicate("Product", "1C code").WithDetail("code_1c", code)
				}
			}
		}

		name, err := NewProductName(p.Name)
		if err != nil {
			return err
		}
		status, err := ParseStatus(p.Status)
		if err != nil {
			return err
		}
		typ, err := ParseType(p.Type)
		if err != nil {
			return err
		}
		unit, err := NewUnitOfMeasure(p.Unit)
		if err != nil {
			return err
		}
		creatorUID, err := id.ParseOptional(p.CreatorUID)
		if err != nil {
			return err
		}

		entity = NewProduct(name, status, typ, unit, sku, creatorUID)
		entity.SetGroupName(p.GroupName)
		entity.SetSubgroupName(p.SubgroupName)
		entity.SetCode1C(p.Code1C)
		if err := applyPrices(entity, p.SalePrice, p.AvgPurchaseCostYear, p.LastPurchaseCost); err != nil {
			return err
		}

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
	logger.Info(ctx, "product created", "uid", entity.UID().String(), "sku", entity.Sku().Value())
	return entity, nil
}

// Update applies mutable attributes to an existing product and stamps the
// acting user. Returns (nil, nil) when the uid does not resolve.
func (s *Service) Update(ctx context.Context, uid string, p UpdateParams) (*Product, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}

	var entity *Product
	err = tx.Run(ctx, s.txm, func(ctx context.Context) error {
		entity, err = s.repo.FindByUID(ctx, parsed)
		if err != nil || entity == nil {
			return err
		}

		if p.Name != nil {
			name, err := NewProductName(*p.Name)
			if err != nil {
				return err
			}
			entity.SetName(name)
		}
		if p.Status != nil {
			status, err := ParseStatus(*p.Status)
			if err != nil {
				return err
			}
			entity.SetStatus(status)
		}
		if p.Type != nil {
			typ, err := ParseType(*p.Type)
			if err != nil {
				return err
			}
			entity.SetType(typ)
		}
		if p.Unit != nil {
			unit, err := NewUnitOfMeasure(*p.Unit)
			if err != nil {
				return err
			}
			entity.SetUnit(unit)
		}
		if p.GroupName != nil {
			entity.SetGroupName(p.GroupName)
		}
		if p.SubgroupName != nil {
			entity.SetSubgroupName(p.SubgroupName)
		}
		if p.Code1C != nil {
			code := strings.TrimSpace(*p.Code1C)
			current := entity.Code1C()
			if code != "" && (current == nil || *current != code) {
				exists, err := s.repo.ExistsByCode1C(ctx, code)
				if err != nil {
					return err
				}
				if exists {
					return apperror.NewDuplicate("Product", "1C code").WithDetail("code_1c", code)
				}
			}
			entity.SetCode1C(p.Code1C)
		}
		if err := applyPrices(entity, p.SalePrice, p.AvgPurchaseCostYear, p.LastPurchaseCost); err != nil {
			return err
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

func applyPrices(entity *Product, sale, avgYear, last *string) error {
	if sale != nil {
		price, err := NewPrice(*sale)
		if err != nil {
			return err
		}
		entity.SetSalePrice(&price)
	}
	if avgYear != nil {
		price, err := NewPrice(*avgYear)
		if err != nil {
			return err
		}
		entity.SetAvgPurchaseCostYear(&price)
	}
	if last != nil {
		price, err := NewPrice(*last)
		if err != nil {
			return err
		}
		entity.SetLastPurchaseCost(&price)
	}
	return nil
}

// Get returns a product by uid, or (nil, nil) when absent.
func (s *Service) Get(ctx context.Context, uid string) (*Product, error) {
	parsed, err := id.Parse(uid)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByUID(ctx, parsed)
}

// GetBySKU returns a product by SKU, or (nil, nil) when absent.
func (s *Service) GetBySKU(ctx context.Context, sku string) (*Product, error) {
	return s.repo.FindBySKU(ctx, sku)
}

// List returns products matching the filters, or all when filters are empty.
func (s *Service) List(ctx context.Context, filters Filters) ([]*Product, error) {
	if filters.IsEmpty() {
		return s.repo.FindAll(ctx)
	}
	return s.repo.FindByFilters(ctx, filters)
}

// Delete removes a product. Returns false when the uid did not resolve.
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
