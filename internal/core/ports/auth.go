package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// AuthService implements registration and login for dashboard accounts.
type AuthService interface {
	Register(ctx context.Context, name, email, password, role string) (*domain.User, error)
	// Login verifies credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
