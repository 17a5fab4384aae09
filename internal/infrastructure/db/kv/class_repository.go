package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// ClassRepository owns the training-class catalog partition.
type ClassRepository struct {
	store Store
}

func NewClassRepository(store Store) *ClassRepository {
	return &ClassRepository{store: store}
}

func (r *ClassRepository) List(ctx context.Context) []domain.Class {
	return Read(ctx, r.store, KeyClasses, []domain.Class{})
}

func (r *ClassRepository) Add(ctx context.Context, c domain.Class) (domain.Class, bool) {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	classes := append(r.List(ctx), c)
	return c, Write(ctx, r.store, KeyClasses, classes)
}

func (r *ClassRepository) Delete(ctx context.Context, id string) bool {
	classes := r.List(ctx)
	kept := classes[:0]
	for _, c := range classes {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	return Write(ctx, r.store, KeyClasses, kept)
}
