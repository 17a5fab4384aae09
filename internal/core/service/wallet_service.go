package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

const walletRecentCount = 5

// WalletService implements the wallet simulation over the append-only
// transaction ledger. The balance is recomputed from the full log on every
// read; there is no stored seed value that could drift from the history.
type WalletService struct {
	repo      ports.TransactionRepository
	reporting ports.ReportingService
	logger    zerolog.Logger
}

func NewWalletService(repo ports.TransactionRepository, reporting ports.ReportingService, logger zerolog.Logger) *WalletService {
	return &WalletService{repo: repo, reporting: reporting, logger: logger}
}

// Balance derives the current balance: Σ credits − Σ debits.
func (s *WalletService) Balance(ctx context.Context) float64 {
	var balance float64
	for _, t := range s.repo.List(ctx) {
		switch t.Type {
		case domain.Credit:
			balance += t.Amount
		case domain.Debit:
			balance -= t.Amount
		}
	}
	return balance
}

// Summary builds the wallet page view: derived balance, ledger totals and
// the most recent transactions newest-first.
func (s *WalletService) Summary(ctx context.Context) ports.WalletSummary {
	all := s.repo.List(ctx)

	var balance, funded, spent float64
	for _, t := range all {
		switch t.Type {
		case domain.Credit:
			balance += t.Amount
			funded += t.Amount
		case domain.Debit:
			balance -= t.Amount
			spent += t.Amount
		}
	}

	n := len(all)
	count := walletRecentCount
	if n < count {
		count = n
	}
	recent := make([]domain.Transaction, 0, count)
	for i := n - 1; i >= n-count; i-- {
		recent = append(recent, all[i])
	}

	return ports.WalletSummary{
		Balance:     balance,
		TotalFunded: funded,
		TotalSpent:  spent,
		Count:       n,
		Recent:      recent,
	}
}

// Deposit appends a credit transaction.
func (s *WalletService) Deposit(ctx context.Context, amount float64, method string) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	t, ok := s.repo.Add(ctx, domain.Transaction{
		Type:        domain.Credit,
		Amount:      amount,
		Method:      method,
		Description: "Wallet funding",
	})
	if !ok {
		return domain.Transaction{}, domain.ErrStorageWrite
	}
	s.logger.Info().Float64("amount", amount).Str("method", method).Msg("wallet deposit")
	return t, nil
}

// Withdraw appends a debit transaction after checking the derived balance.
func (s *WalletService) Withdraw(ctx context.Context, amount float64, method string) (domain.Transaction, error) {
	if amount <= 0 {
		return domain.Transaction{}, domain.ErrInvalidAmount
	}
	if amount > s.Balance(ctx) {
		return domain.Transaction{}, domain.ErrInsufficientFunds
	}
	t, ok := s.repo.Add(ctx, domain.Transaction{
		Type:        domain.Debit,
		Amount:      amount,
		Method:      method,
		Description: "Wallet withdrawal",
	})
	if !ok {
		return domain.Transaction{}, domain.ErrStorageWrite
	}
	s.logger.Info().Float64("amount", amount).Str("method", method).Msg("wallet withdrawal")
	return t, nil
}

// Transactions lists ledger entries matching the filter, input order preserved.
func (s *WalletService) Transactions(ctx context.Context, filter ports.TransactionFilter) []domain.Transaction {
	return s.reporting.FilterTransactions(s.repo.List(ctx), filter)
}
