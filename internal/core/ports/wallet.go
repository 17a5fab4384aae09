package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// TransactionRepository defines persistence over the append-only wallet ledger.
type TransactionRepository interface {
	List(ctx context.Context) []domain.Transaction
	Add(ctx context.Context, t domain.Transaction) (domain.Transaction, bool)
}

// WalletSummary is the wallet page view: the derived balance plus ledger
// aggregates and the most recent transactions newest-first.
type WalletSummary struct {
	Balance     float64
	TotalFunded float64
	TotalSpent  float64
	Count       int
	Recent      []domain.Transaction
}

// WalletService defines the wallet simulation use cases. The balance is
// always recomputed from the full transaction log.
type WalletService interface {
	Balance(ctx context.Context) float64
	Summary(ctx context.Context) WalletSummary
	Deposit(ctx context.Context, amount float64, method string) (domain.Transaction, error)
	Withdraw(ctx context.Context, amount float64, method string) (domain.Transaction, error)
	Transactions(ctx context.Context, filter TransactionFilter) []domain.Transaction
}
