package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// TransactionRepository owns the append-only transactions partition. There is
// no update or delete: the ledger only grows, and the balance is derived from
// the full log by the wallet service.
type TransactionRepository struct {
	store Store
}

func NewTransactionRepository(store Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

func (r *TransactionRepository) List(ctx context.Context) []domain.Transaction {
	return Read(ctx, r.store, KeyTransactions, []domain.Transaction{})
}

func (r *TransactionRepository) Add(ctx context.Context, t domain.Transaction) (domain.Transaction, bool) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = "active"
	}
	if t.Timestamp.IsZero() {
		t.Timestamp = time.Now().UTC()
	}
	transactions := append(r.List(ctx), t)
	return t, Write(ctx, r.store, KeyTransactions, transactions)
}
