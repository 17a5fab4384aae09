package service

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// UserService implements back-office account administration over the users
// partition.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) ListUsers(ctx context.Context) []domain.User {
	return s.repo.List(ctx)
}

func (s *UserService) UpdateUser(ctx context.Context, id string, patch ports.UserPatch) (*domain.User, error) {
	updated, ok := s.repo.Update(ctx, id, patch)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return updated, nil
}

// DeleteUser removes the account. Deleting an unknown id is a no-op.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	s.repo.Delete(ctx, id)
	return nil
}
