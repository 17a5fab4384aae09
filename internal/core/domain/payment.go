package domain

import (
	"errors"
	"time"
)

// PaymentStatus is the outcome reported by the payment gateway callback.
type PaymentStatus string

const (
	PaymentSuccess PaymentStatus = "success"
	PaymentFailed  PaymentStatus = "failed"
)

var ErrDuplicatePayment = errors.New("payment already processed")

// Payment is one gateway callback recorded in the payments partition.
// Reference is the gateway's transaction reference and the dedup key.
type Payment struct {
	ID        string        `json:"id"`
	Reference string        `json:"reference"`
	Email     string        `json:"email"`
	Amount    float64       `json:"amount"`
	Currency  string        `json:"currency"`
	Method    string        `json:"method,omitempty"`
	Status    PaymentStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}
