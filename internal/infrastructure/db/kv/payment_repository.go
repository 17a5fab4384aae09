package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// PaymentRepository owns the payments partition. Like the wallet ledger it is
// append-only; gateway callbacks are recorded and never rewritten.
type PaymentRepository struct {
	store Store
}

func NewPaymentRepository(store Store) *PaymentRepository {
	return &PaymentRepository{store: store}
}

func (r *PaymentRepository) List(ctx context.Context) []domain.Payment {
	return Read(ctx, r.store, KeyPayments, []domain.Payment{})
}

func (r *PaymentRepository) Add(ctx context.Context, p domain.Payment) (domain.Payment, bool) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	payments := append(r.List(ctx), p)
	return p, Write(ctx, r.store, KeyPayments, payments)
}
