package domain

import (
	"errors"
	"time"
)

// TransactionType distinguishes money in from money out.
type TransactionType string

const (
	Credit TransactionType = "credit"
	Debit  TransactionType = "debit"
)

var ErrInvalidAmount = errors.New("amount must be positive")
var ErrInsufficientFunds = errors.New("insufficient balance")

// Transaction is one append-only wallet ledger entry. The balance is always
// derived from the full log, never stored.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      float64         `json:"amount"`
	Method      string          `json:"method,omitempty"`
	Description string          `json:"description,omitempty"`
	Status      string          `json:"status"`
	Timestamp   time.Time       `json:"timestamp"`
}
