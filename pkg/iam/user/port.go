package user

import (
	"context"

	"github.com/vitaehq/vitae/pkg/kernel"
)

// Repository defines persistence operations for users
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id kernel.UserID) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
