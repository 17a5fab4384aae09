package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// UserPatch carries the fields an update may merge into a user record.
type UserPatch struct {
	Name   *string
	Phone  *string
	Role   *string
	Status *domain.UserStatus
}

// UserService defines back-office account administration.
type UserService interface {
	ListUsers(ctx context.Context) []domain.User
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*domain.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// UserRepository defines persistence over the users partition. It doubles as
// the auth repository: dashboard accounts are user records with a password
// hash. Update reports not-found as (nil, false) and a rejected write as
// (record, false).
type UserRepository interface {
	List(ctx context.Context) []domain.User
	FindByEmail(ctx context.Context, email string) (*domain.User, bool)
	Add(ctx context.Context, u domain.User) (domain.User, bool)
	Update(ctx context.Context, id string, patch UserPatch) (*domain.User, bool)
	Delete(ctx context.Context, id string) bool
}
