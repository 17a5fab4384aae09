package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// ReportingService computes dashboard statistics, finance views and export
// tables by scanning repository contents on demand. It holds no state and
// caches nothing, so every read reflects current storage contents.
type ReportingService struct {
	orders       ports.OrderRepository
	students     ports.StudentRepository
	users        ports.UserRepository
	transactions ports.TransactionRepository
	payments     ports.PaymentRepository
	logger       zerolog.Logger
	now          func() time.Time
}

func NewReportingService(
	orders ports.OrderRepository,
	students ports.StudentRepository,
	users ports.UserRepository,
	transactions ports.TransactionRepository,
	payments ports.PaymentRepository,
	logger zerolog.Logger,
) *ReportingService {
	return &ReportingService{
		orders:       orders,
		students:     students,
		users:        users,
		transactions: transactions,
		payments:     payments,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// DashboardStats computes the master-dashboard counters. Revenue sums treat a
// missing amount as zero; monthly revenue is restricted to completions in the
// current calendar month and year.
func (s *ReportingService) DashboardStats(ctx context.Context) ports.DashboardStats {
	completed := s.orders.ListByStatus(ctx, domain.OrderCompleted)
	now := s.now()

	var total, monthly float64
	for _, o := range completed {
		total += o.Amount
		if o.CompletedAt != nil &&
			o.CompletedAt.Month() == now.Month() &&
			o.CompletedAt.Year() == now.Year() {
			monthly += o.Amount
		}
	}

	active := 0
	for _, t := range s.transactions.List(ctx) {
		if t.Status == "active" {
			active++
		}
	}

	return ports.DashboardStats{
		TotalStudents:      len(s.students.List(ctx)),
		TotalUsers:         len(s.users.List(ctx)),
		TotalRevenue:       total,
		MonthlyRevenue:     monthly,
		PendingOrders:      len(s.orders.ListByStatus(ctx, domain.OrderPending)),
		CompletedOrders:    len(completed),
		ActiveTransactions: active,
	}
}

// FinanceReport views completed orders as finance transactions. Date falls
// back from completion to creation time, customer to "Unknown" and method to
// "N/A" when absent. The filter applies on top of the mapped rows.
func (s *ReportingService) FinanceReport(ctx context.Context, filter ports.TransactionFilter) ports.FinanceReport {
	completed := s.orders.ListByStatus(ctx, domain.OrderCompleted)

	rows := make([]ports.FinanceRow, 0, len(completed))
	var total float64
	for _, o := range completed {
		date := o.CreatedAt
		if o.CompletedAt != nil {
			date = *o.CompletedAt
		}
		customer := o.Customer
		if customer == "" {
			customer = "Unknown"
		}
		rows = append(rows, ports.FinanceRow{
			ID:       o.ID,
			Date:     date,
			Amount:   o.Amount,
			Customer: customer,
			Status:   "Completed",
			Method:   "N/A",
		})
		total += o.Amount
	}

	now := s.now()
	var monthly float64
	for _, r := range rows {
		if r.Date.Month() == now.Month() && r.Date.Year() == now.Year() {
			monthly += r.Amount
		}
	}

	filtered := filterFinanceRows(rows, filter)

	avg := 0.0
	if len(rows) > 0 {
		avg = total / float64(len(rows))
	}

	return ports.FinanceReport{
		Rows:              filtered,
		TotalRevenue:      total,
		MonthlyRevenue:    monthly,
		AverageOrderValue: avg,
		TotalOrders:       len(rows),
	}
}

// FilterTransactions returns the subset of transactions satisfying every
// supplied predicate. Predicates are ANDed; a zero filter field imposes no
// constraint. Input ordering is preserved.
func (s *ReportingService) FilterTransactions(all []domain.Transaction, filter ports.TransactionFilter) []domain.Transaction {
	out := make([]domain.Transaction, 0, len(all))
	for _, t := range all {
		if matchesFilter(t.Timestamp, t.Amount, filter) {
			out = append(out, t)
		}
	}
	return out
}

func filterFinanceRows(rows []ports.FinanceRow, filter ports.TransactionFilter) []ports.FinanceRow {
	out := make([]ports.FinanceRow, 0, len(rows))
	for _, r := range rows {
		if matchesFilter(r.Date, r.Amount, filter) {
			out = append(out, r)
		}
	}
	return out
}

func matchesFilter(ts time.Time, amount float64, f ports.TransactionFilter) bool {
	if !f.DateFrom.IsZero() && ts.Before(f.DateFrom) {
		return false
	}
	if !f.DateTo.IsZero() && ts.After(f.DateTo) {
		return false
	}
	if f.MinAmount != nil && amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && amount > *f.MaxAmount {
		return false
	}
	if f.Month != nil && ts.Month() != *f.Month {
		return false
	}
	if f.Year != nil && ts.Year() != *f.Year {
		return false
	}
	return true
}

// ExportTable builds a flat record table for the named entity. Column order
// is fixed per entity so exports are deterministic.
func (s *ReportingService) ExportTable(ctx context.Context, entity string) (ports.ExportTable, error) {
	switch strings.ToLower(entity) {
	case "orders":
		t := ports.ExportTable{Columns: []string{"id", "customer", "items", "quantity", "status", "amount", "created_at", "completed_at"}}
		for _, o := range s.orders.List(ctx) {
			completedAt := ""
			if o.CompletedAt != nil {
				completedAt = o.CompletedAt.Format(time.RFC3339)
			}
			t.Rows = append(t.Rows, map[string]any{
				"id":           o.ID,
				"customer":     o.Customer,
				"items":        strings.Join(o.Items, ", "),
				"quantity":     o.Quantity,
				"status":       string(o.Status),
				"amount":       o.Amount,
				"created_at":   o.CreatedAt.Format(time.RFC3339),
				"completed_at": completedAt,
			})
		}
		return t, nil
	case "students":
		t := ports.ExportTable{Columns: []string{"id", "name", "email", "phone", "role", "status", "current_lesson", "created_at"}}
		for _, st := range s.students.List(ctx) {
			t.Rows = append(t.Rows, map[string]any{
				"id":             st.ID,
				"name":           st.Name,
				"email":          st.Email,
				"phone":          st.Phone,
				"role":           string(st.Role),
				"status":         string(st.Status),
				"current_lesson": st.CurrentLesson,
				"created_at":     st.CreatedAt.Format(time.RFC3339),
			})
		}
		return t, nil
	case "users":
		t := ports.ExportTable{Columns: []string{"id", "name", "email", "phone", "role", "status", "created_at"}}
		for _, u := range s.users.List(ctx) {
			t.Rows = append(t.Rows, map[string]any{
				"id":         u.ID,
				"name":       u.Name,
				"email":      u.Email,
				"phone":      u.Phone,
				"role":       u.Role,
				"status":     string(u.Status),
				"created_at": u.CreatedAt.Format(time.RFC3339),
			})
		}
		return t, nil
	case "transactions":
		t := ports.ExportTable{Columns: []string{"id", "type", "amount", "method", "description", "status", "timestamp"}}
		for _, tx := range s.transactions.List(ctx) {
			t.Rows = append(t.Rows, map[string]any{
				"id":          tx.ID,
				"type":        string(tx.Type),
				"amount":      tx.Amount,
				"method":      tx.Method,
				"description": tx.Description,
				"status":      tx.Status,
				"timestamp":   tx.Timestamp.Format(time.RFC3339),
			})
		}
		return t, nil
	case "payments":
		t := ports.ExportTable{Columns: []string{"id", "reference", "email", "amount", "currency", "status", "created_at"}}
		for _, p := range s.payments.List(ctx) {
			t.Rows = append(t.Rows, map[string]any{
				"id":         p.ID,
				"reference":  p.Reference,
				"email":      p.Email,
				"amount":     p.Amount,
				"currency":   p.Currency,
				"status":     string(p.Status),
				"created_at": p.CreatedAt.Format(time.RFC3339),
			})
		}
		return t, nil
	default:
		return ports.ExportTable{}, fmt.Errorf("unknown export entity %q", entity)
	}
}
