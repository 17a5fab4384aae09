package ports

import (
	"context"
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// DashboardStats is the master-dashboard view, computed fresh from repository
// contents on every request.
type DashboardStats struct {
	TotalStudents      int
	TotalUsers         int
	TotalRevenue       float64
	MonthlyRevenue     float64
	PendingOrders      int
	CompletedOrders    int
	ActiveTransactions int
}

// TransactionFilter holds optional predicates; a zero field imposes no
// constraint and supplied predicates are ANDed.
type TransactionFilter struct {
	DateFrom  time.Time
	DateTo    time.Time
	MinAmount *float64
	MaxAmount *float64
	Month     *time.Month
	Year      *int
}

// FinanceRow is one completed order viewed as a finance transaction.
type FinanceRow struct {
	ID       string
	Date     time.Time
	Amount   float64
	Customer string
	Status   string
	Method   string
}

// FinanceReport is the finance-dashboard view.
type FinanceReport struct {
	Rows              []FinanceRow
	TotalRevenue      float64
	MonthlyRevenue    float64
	AverageOrderValue float64
	TotalOrders       int
}

// ExportTable is a flat record set ready for CSV/JSON serialization. Columns
// carries the header order explicitly.
type ExportTable struct {
	Columns []string
	Rows    []map[string]any
}

// ReportingService computes derived statistics and export tables. It is
// read-only over repository contents.
type ReportingService interface {
	DashboardStats(ctx context.Context) DashboardStats
	FinanceReport(ctx context.Context, filter TransactionFilter) FinanceReport
	FilterTransactions(all []domain.Transaction, filter TransactionFilter) []domain.Transaction
	// ExportTable builds the flat table for the named entity
	// (orders, students, users, transactions, payments).
	ExportTable(ctx context.Context, entity string) (ExportTable, error)
}
