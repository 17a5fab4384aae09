package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
)

// SyncState records whether an order ever reached the remote order endpoint.
type SyncState string

const (
	// SyncLocalOnly marks a record created entirely through the local
	// fallback path. It is eligible for the reconciliation pass.
	SyncLocalOnly SyncState = "local-only"
	// SyncSynced marks a record the remote endpoint has acknowledged.
	SyncSynced SyncState = "synced"
)

var ErrOrderNotFound = errors.New("order not found")
var ErrOrderAlreadyCompleted = errors.New("order already completed")
var ErrForbidden = errors.New("access forbidden")

// Order is a customer order for packs/platters. An order lives in a single
// partition; the pending→completed transition is one-directional and stamps
// CompletedAt.
type Order struct {
	ID          string      `json:"id"`
	Customer    string      `json:"customer"`
	Items       []string    `json:"items"`
	Quantity    int         `json:"quantity"`
	Status      OrderStatus `json:"status"`
	Amount      float64     `json:"amount,omitempty"`
	SyncState   SyncState   `json:"sync_state"`
	CreatedAt   time.Time   `json:"created_at"`
	CompletedAt *time.Time  `json:"completed_at,omitempty"`
}

// Offline reports whether the order has never been persisted remotely.
func (o Order) Offline() bool {
	return o.SyncState == SyncLocalOnly
}
