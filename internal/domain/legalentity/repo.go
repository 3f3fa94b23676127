package legalentity

import (
	"context"

	"kontora/internal/core/id"
)

// Filters narrows list queries. Zero-value fields are ignored.
type Filters struct {
	UID        string
	ShortName  string
	INN        string
	CuratorUID string
	CreatorUID string
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f == (Filters{})
}

// Repository defines persistence for the LegalEntity aggregate.
// Find methods return (nil, nil) when nothing matches the key.
type Repository interface {
	FindByUID(ctx context.Context, uid id.ID) (*LegalEntity, error)
	FindByINN(ctx context.Context, inn string) (*LegalEntity, error)
	FindAll(ctx context.Context) ([]*LegalEntity, error)
	FindByFilters(ctx context.Context, filters Filters) ([]*LegalEntity, error)
	Save(ctx context.Context, entity *LegalEntity) error
	Delete(ctx context.Context, uid id.ID) (bool, error)

	ExistsByINN(ctx context.Context, inn string) (bool, error)

	FindByCurator(ctx context.Context, curatorUID id.ID) ([]*LegalEntity, error)
	FindByCreator(ctx context.Context, creatorUID id.ID) ([]*LegalEntity, error)
}
