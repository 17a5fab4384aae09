package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

func TestStudentRepository_AddAssignsDefaults(t *testing.T) {
	repo := NewStudentRepository(NewMemory())

	stored, ok := repo.Add(context.Background(), domain.Student{Name: "Bola", Email: "bola@example.com"})
	require.True(t, ok)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, domain.RoleStudent, stored.Role)
	assert.Equal(t, domain.StudentActive, stored.Status)
	assert.Equal(t, 1, stored.CurrentLesson)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestStudentRepository_FindByEmailIsCaseInsensitive(t *testing.T) {
	repo := NewStudentRepository(NewMemory())
	ctx := context.Background()

	repo.Add(ctx, domain.Student{Name: "Bola", Email: "Bola@Example.com"})

	got, ok := repo.FindByEmail(ctx, "  bola@example.COM ")
	require.True(t, ok)
	assert.Equal(t, "Bola", got.Name)

	_, ok = repo.FindByEmail(ctx, "missing@example.com")
	assert.False(t, ok)
}

func TestStudentRepository_UpdateSetsAndClearsExpiry(t *testing.T) {
	repo := NewStudentRepository(NewMemory())
	ctx := context.Background()

	stored, _ := repo.Add(ctx, domain.Student{Name: "Bola", Email: "bola@example.com"})

	expires := time.Now().UTC().Add(24 * time.Hour)
	ptr := &expires
	updated, ok := repo.Update(ctx, stored.ID, ports.StudentPatch{ExpiresAt: &ptr})
	require.True(t, ok)
	require.NotNil(t, updated.ExpiresAt)

	// Outer pointer set, inner nil: clear the expiry rather than leave it.
	var cleared *time.Time
	updated, ok = repo.Update(ctx, stored.ID, ports.StudentPatch{ExpiresAt: &cleared})
	require.True(t, ok)
	assert.Nil(t, updated.ExpiresAt)
}
