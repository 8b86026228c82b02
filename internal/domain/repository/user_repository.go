package repository

import (
	"context"
	"errors"

	"github.com/checkpass/checkpass-server/internal/domain/entity"
)

// ErrNotFound is returned by lookups when no row matches the key. Callers
// use it to tell a missing record apart from a storage failure.
var ErrNotFound = errors.New("not found")

// ProfilePatch carries optional profile fields for a partial update.
// Nil pointers leave the stored value untouched.
type ProfilePatch struct {
	FirstName *string
	LastName  *string
	Phone     *string
	Avatar    *string
}

// UserRepository defines user persistence. FindOrCreate must be idempotent
// under concurrent calls for the same email: the storage layer enforces
// email uniqueness and the create path falls back to lookup on conflict.
type UserRepository interface {
	FindOrCreate(ctx context.Context, u *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*entity.User, error)
	TouchLastLogin(ctx context.Context, id string) error
}
