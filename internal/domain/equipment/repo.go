package equipment

import (
	"context"

	"kontora/internal/core/id"
)

// Filters narrows equipment listings. Zero-valued fields are ignored.
type Filters struct {
	UID          *id.ID
	Name         string
	Status       string
	TransportUID *id.ID
	Warehouse    string
	IssuedToUID  *id.ID
}

// IsEmpty reports whether no filter field is set.
func (f Filters) IsEmpty() bool {
	return f.UID == nil &&
		f.Name == "" &&
		f.Status == "" &&
		f.TransportUID == nil &&
		f.Warehouse == "" &&
		f.IssuedToUID == nil
}

// Repository is the persistence contract for equipment. Find methods return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type Repository interface {
	FindByUID(ctx context.Context, uid id.ID) (*Equipment, error)
	FindAll(ctx context.Context) ([]*Equipment, error)
	FindByFilters(ctx context.Context, filters Filters) ([]*Equipment, error)
	Save(ctx context.Context, e *Equipment) error
	Delete(ctx context.Context, uid id.ID) (bool, error)
}
