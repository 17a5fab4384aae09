package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
)

func newAuthFixture() (*AuthService, *kv.UserRepository) {
	repo := kv.NewUserRepository(kv.NewMemory())
	return NewAuthService(repo, "secret", time.Hour), repo
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), "Bola", "bola@example.com", "pass12345", domain.RoleCustomer)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass12345" {
		t.Fatal("password must be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass12345")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleCustomer {
		t.Errorf("unexpected role: %s", user.Role)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _ := newAuthFixture()

	if _, err := svc.Register(context.Background(), "Bola", "", "pass", domain.RoleCustomer); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "Bola", "bola@example.com", "pass", "superuser"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad role, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Bola", "bola@example.com", "pass12345", domain.RoleCustomer); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(ctx, "Other", "bola@example.com", "pass12345", domain.RoleCustomer); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Register_WriteFailureSurfaces(t *testing.T) {
	mem := kv.NewMemory()
	svc := NewAuthService(kv.NewUserRepository(mem), "secret", time.Hour)

	mem.FailWrites = true
	if _, err := svc.Register(context.Background(), "Bola", "bola@example.com", "pass12345", domain.RoleCustomer); !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite, got %v", err)
	}
}

func TestAuthService_Login_ReturnsTokenWithClaims(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Bola", "bola@example.com", "pass12345", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, user, err := svc.Login(ctx, "bola@example.com", "pass12345")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if user.Email != "bola@example.com" {
		t.Errorf("unexpected user: %+v", user)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims["email"] != "bola@example.com" || claims["role"] != domain.RoleAdmin {
		t.Errorf("unexpected claims: %v", claims)
	}
}

func TestAuthService_Login_WrongCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	svc.Register(ctx, "Bola", "bola@example.com", "pass12345", domain.RoleCustomer)

	if _, _, err := svc.Login(ctx, "bola@example.com", "wrong"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, _, err := svc.Login(ctx, "nobody@example.com", "pass12345"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
