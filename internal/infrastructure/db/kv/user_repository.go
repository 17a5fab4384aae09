package kv

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// UserRepository owns the users partition. It also serves as the auth
// repository: back-office accounts are ordinary user records carrying a
// password hash.
type UserRepository struct {
	store Store
}

func NewUserRepository(store Store) *UserRepository {
	return &UserRepository{store: store}
}

func (r *UserRepository) List(ctx context.Context) []domain.User {
	return Read(ctx, r.store, KeyUsers, []domain.User{})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, bool) {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, u := range r.List(ctx) {
		if strings.ToLower(u.Email) == email {
			clone := u
			return &clone, true
		}
	}
	return nil, false
}

func (r *UserRepository) Add(ctx context.Context, u domain.User) (domain.User, bool) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.Role == "" {
		u.Role = domain.RoleCustomer
	}
	if u.Status == "" {
		u.Status = domain.UserActive
	}
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	users := append(r.List(ctx), u)
	return u, Write(ctx, r.store, KeyUsers, users)
}

func (r *UserRepository) Update(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, bool) {
	users := r.List(ctx)
	for i := range users {
		if users[i].ID != id {
			continue
		}
		if patch.Name != nil {
			users[i].Name = *patch.Name
		}
		if patch.Phone != nil {
			users[i].Phone = *patch.Phone
		}
		if patch.Role != nil {
			users[i].Role = *patch.Role
		}
		if patch.Status != nil {
			users[i].Status = *patch.Status
		}
		clone := users[i]
		if !Write(ctx, r.store, KeyUsers, users) {
			return &clone, false
		}
		return &clone, true
	}
	return nil, false
}

func (r *UserRepository) Delete(ctx context.Context, id string) bool {
	users := r.List(ctx)
	kept := users[:0]
	for _, u := range users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	return Write(ctx, r.store, KeyUsers, kept)
}
