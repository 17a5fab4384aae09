package service

import (
	"context"
	"errors"
	"testing"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
)

func newWalletFixture() (*WalletService, *kv.TransactionRepository) {
	mem := kv.NewMemory()
	transactions := kv.NewTransactionRepository(mem)
	reporting := NewReportingService(
		kv.NewOrderRepository(mem),
		kv.NewStudentRepository(mem),
		kv.NewUserRepository(mem),
		transactions,
		kv.NewPaymentRepository(mem),
		discardLogger,
	)
	return NewWalletService(transactions, reporting, discardLogger), transactions
}

func TestWalletService_BalanceIsDerivedFromLedger(t *testing.T) {
	svc, _ := newWalletFixture()
	ctx := context.Background()

	if got := svc.Balance(ctx); got != 0 {
		t.Fatalf("empty ledger must read 0, got %v", got)
	}

	svc.Deposit(ctx, 1000, "card")
	svc.Deposit(ctx, 500, "transfer")
	svc.Withdraw(ctx, 300, "card")

	if got := svc.Balance(ctx); got != 1200 {
		t.Errorf("expected balance 1200, got %v", got)
	}
}

func TestWalletService_WithdrawRejectsOverdraft(t *testing.T) {
	svc, repo := newWalletFixture()
	ctx := context.Background()

	svc.Deposit(ctx, 100, "card")

	_, err := svc.Withdraw(ctx, 150, "card")
	if !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	// The rejected withdrawal must not reach the ledger.
	if got := len(repo.List(ctx)); got != 1 {
		t.Errorf("expected 1 ledger entry, got %d", got)
	}
}

func TestWalletService_RejectsNonPositiveAmounts(t *testing.T) {
	svc, _ := newWalletFixture()
	ctx := context.Background()

	if _, err := svc.Deposit(ctx, 0, "card"); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("deposit 0: expected ErrInvalidAmount, got %v", err)
	}
	if _, err := svc.Withdraw(ctx, -5, "card"); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Errorf("withdraw -5: expected ErrInvalidAmount, got %v", err)
	}
}

func TestWalletService_DepositWriteFailureSurfaces(t *testing.T) {
	mem := kv.NewMemory()
	transactions := kv.NewTransactionRepository(mem)
	reporting := NewReportingService(
		kv.NewOrderRepository(mem),
		kv.NewStudentRepository(mem),
		kv.NewUserRepository(mem),
		transactions,
		kv.NewPaymentRepository(mem),
		discardLogger,
	)
	svc := NewWalletService(transactions, reporting, discardLogger)
	ctx := context.Background()

	mem.FailWrites = true
	if _, err := svc.Deposit(ctx, 1000, "card"); !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("deposit: expected ErrStorageWrite, got %v", err)
	}

	mem.FailWrites = false
	svc.Deposit(ctx, 1000, "card")
	mem.FailWrites = true
	if _, err := svc.Withdraw(ctx, 100, "card"); !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("withdraw: expected ErrStorageWrite, got %v", err)
	}
}

func TestWalletService_SummaryRecentIsNewestFirst(t *testing.T) {
	svc, _ := newWalletFixture()
	ctx := context.Background()

	amounts := []float64{10, 20, 30, 40, 50, 60, 70}
	for _, a := range amounts {
		svc.Deposit(ctx, a, "card")
	}

	summary := svc.Summary(ctx)
	if summary.Count != len(amounts) {
		t.Errorf("expected count %d, got %d", len(amounts), summary.Count)
	}
	if summary.TotalFunded != 280 || summary.TotalSpent != 0 {
		t.Errorf("expected funded 280 / spent 0, got %v / %v", summary.TotalFunded, summary.TotalSpent)
	}
	if len(summary.Recent) != 5 {
		t.Fatalf("expected 5 recent entries, got %d", len(summary.Recent))
	}
	if summary.Recent[0].Amount != 70 || summary.Recent[4].Amount != 30 {
		t.Errorf("recent must be newest-first, got %v .. %v", summary.Recent[0].Amount, summary.Recent[4].Amount)
	}
}

func TestWalletService_TransactionsAppliesFilter(t *testing.T) {
	svc, _ := newWalletFixture()
	ctx := context.Background()

	svc.Deposit(ctx, 10, "card")
	svc.Deposit(ctx, 60, "card")
	svc.Deposit(ctx, 200, "card")

	min, max := 50.0, 100.0
	got := svc.Transactions(ctx, ports.TransactionFilter{MinAmount: &min, MaxAmount: &max})
	if len(got) != 1 || got[0].Amount != 60 {
		t.Fatalf("expected only the 60 entry, got %+v", got)
	}
}
