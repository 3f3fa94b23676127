package product

import (
	"context"

	"kontora/internal/core/id"
)

// Filters narrows product listings. Zero-valued fields are ignored.
type Filters struct {
	UID        *id.ID
	Name       string
	Status     string
	Type       string
	Sku        string
	Code1C     string
	GroupName  string
	CreatorUID *id.ID
}

// IsEmpty reports whether no filter field is set.
func (f Filters) IsEmpty() bool {
	return f.UID == nil &&
		f.Name == "" &&
		f.Status == "" &&
		f.Type == "" &&
		f.Sku == "" &&
		f.Code1C == "" &&
		f.GroupName == "" &&
		f.CreatorUID == nil
}

// Repository is the persistence contract for products. Find methods return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type Repository interface {
	FindByUID(ctx context.Context, uid id.ID) (*Product, error)
	FindBySKU(ctx context.Context, sku string) (*Product, error)
	FindByCode1C(ctx context.Context, code1C string) (*Product, error)
	FindAll(ctx context.Context) ([]*Product, error)
	FindByFilters(ctx context.Context, filters Filters) ([]*Product, error)
	FindByCreator(ctx context.Context, creatorUID id.ID) ([]*Product, error)
	Save(ctx context.Context, p *Product) error
	Delete(ctx context.Context, uid id.ID) (bool, error)
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
	ExistsByCode1C(ctx context.Context, code1C string) (bool, error)
}
