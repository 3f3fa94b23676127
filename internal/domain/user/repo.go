package user

import (
	"context"

	"kontora/internal/core/id"
)

// Repository is the persistence contract for accounts. Find methods return
// (nil, nil) when no row matches; Delete reports whether a row was removed.
type Repository interface {
	FindByUID(ctx context.Context, uid id.ID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindAll(ctx context.Context) ([]*User, error)
	Save(ctx context.Context, u *User) error
	Delete(ctx context.Context, uid id.ID) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
