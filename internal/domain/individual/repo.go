package individual

import (
	"context"

	"kontora/internal/core/id"
)

// Filters narrows list queries. Zero-value fields are ignored.
type Filters struct {
	UID               *id.ID
	FirstName         string
	LastName          string
	Status            string
	Login             string
	IsCompanyEmployee *bool
	CreatorUID        *id.ID
}

// IsEmpty reports whether no filter is set.
func (f Filters) IsEmpty() bool {
	return f == (Filters{})
}

// Repository defines persistence for the Individual aggregate.
// Find methods return (nil, nil) when nothing matches the key.
type Repository interface {
	FindByUID(ctx context.Context, uid id.ID) (*Individual, error)
	FindByLogin(ctx context.Context, login string) (*Individual, error)
	FindAll(ctx context.Context) ([]*Individual, error)
	FindByFilters(ctx context.Context, filters Filters) ([]*Individual, error)
	Save(ctx context.Context, person *Individual) error
	Delete(ctx context.Context, uid id.ID) (bool, error)

	ExistsByLogin(ctx context.Context, login string) (bool, error)

	FindCompanyEmployees(ctx context.Context) ([]*Individual, error)
	FindByCreator(ctx context.Context, creatorUID id.ID) ([]*Individual, error)
	FindByStatus(ctx context.Context, status Status) ([]*Individual, error)
}
