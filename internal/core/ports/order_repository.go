package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// OrderPatch carries the fields an update may merge into an existing order.
// Nil fields are left untouched.
type OrderPatch struct {
	Customer  *string
	Items     *[]string
	Quantity  *int
	Amount    *float64
	SyncState *domain.SyncState
}

// OrderRepository defines persistence operations over the local order
// partition. Not-found is signalled with ok=false, never an error. Storage
// write failures also surface as false; on Update the two are told apart by
// the record pointer, nil for not-found, non-nil for a rejected write.
type OrderRepository interface {
	List(ctx context.Context) []domain.Order
	ListByStatus(ctx context.Context, status domain.OrderStatus) []domain.Order
	Get(ctx context.Context, id string) (*domain.Order, bool)
	Add(ctx context.Context, o domain.Order) (domain.Order, bool)
	Update(ctx context.Context, id string, patch OrderPatch) (*domain.Order, bool)
	Delete(ctx context.Context, id string) bool
	// Complete flips a pending order to completed, stamping CompletedAt.
	// False when the id is not found in the pending set.
	Complete(ctx context.Context, id string) bool
	// Upsert mirrors a remote-assigned record into the local partition.
	Upsert(ctx context.Context, o domain.Order) bool
	// Replace swaps the partition contents with an authoritative remote list.
	Replace(ctx context.Context, orders []domain.Order) bool
}

// RemoteOrderClient targets the remote order endpoint. Every method performs
// exactly one attempt; any network error, non-success status, or malformed
// payload is reported uniformly as an error meaning "remote unavailable".
type RemoteOrderClient interface {
	List(ctx context.Context) ([]domain.Order, error)
	Create(ctx context.Context, o domain.Order) (domain.Order, error)
}
