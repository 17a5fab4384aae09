package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// CreateOrderInput carries all data needed to place a new order.
type CreateOrderInput struct {
	Customer string
	Items    []string
	Quantity int
	Amount   float64
}

// UpdateOrderInput carries the optional fields an order update may change.
type UpdateOrderInput struct {
	Customer *string
	Items    *[]string
	Quantity *int
	Amount   *float64
}

// OrderService defines the storefront order use cases. Fetch and Create go
// through the remote-fallback gateway; the remaining operations are local.
type OrderService interface {
	// FetchOrders lists orders, preferring the remote endpoint. On remote
	// failure the local partition contents are returned unmodified.
	FetchOrders(ctx context.Context) []domain.Order
	ListByStatus(ctx context.Context, status domain.OrderStatus) []domain.Order
	// CreateOrder persists the order remotely when possible, falling back to
	// the local partition. The returned order's SyncState tells callers
	// whether it was created offline.
	CreateOrder(ctx context.Context, input CreateOrderInput) (domain.Order, error)
	UpdateOrder(ctx context.Context, id string, input UpdateOrderInput) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	CompleteOrder(ctx context.Context, id string) error
}
