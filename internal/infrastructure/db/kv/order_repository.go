package kv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// OrderRepository stores all orders in a single partition with a status
// field. The historical pending/completed two-key layout is folded in by
// MigrateLegacyPartitions so the pending→completed transition is a single
// write and an order can never exist in two partitions at once.
type OrderRepository struct {
	store Store
}

func NewOrderRepository(store Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// List returns the full partition contents in insertion order.
func (r *OrderRepository) List(ctx context.Context) []domain.Order {
	return Read(ctx, r.store, KeyOrders, []domain.Order{})
}

// ListByStatus returns orders with the given status, insertion order preserved.
func (r *OrderRepository) ListByStatus(ctx context.Context, status domain.OrderStatus) []domain.Order {
	var out []domain.Order
	for _, o := range r.List(ctx) {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// Get returns the order with the given id, or ok=false.
func (r *OrderRepository) Get(ctx context.Context, id string) (*domain.Order, bool) {
	for _, o := range r.List(ctx) {
		if o.ID == id {
			clone := o
			return &clone, true
		}
	}
	return nil, false
}

// Add assigns an id and creation timestamp, appends the order and persists.
// The stored record, including generated fields, is returned.
func (r *OrderRepository) Add(ctx context.Context, o domain.Order) (domain.Order, bool) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = domain.OrderPending
	}
	if o.SyncState == "" {
		o.SyncState = domain.SyncLocalOnly
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	orders := append(r.List(ctx), o)
	return o, Write(ctx, r.store, KeyOrders, orders)
}

// Update merges patch into the order with the given id. A missing id is a
// no-op signal (nil, false). A rejected partition write returns the merged
// record with false, so callers can tell the two apart.
func (r *OrderRepository) Update(ctx context.Context, id string, patch ports.OrderPatch) (*domain.Order, bool) {
	orders := r.List(ctx)
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if patch.Customer != nil {
			orders[i].Customer = *patch.Customer
		}
		if patch.Items != nil {
			orders[i].Items = *patch.Items
		}
		if patch.Quantity != nil {
			orders[i].Quantity = *patch.Quantity
		}
		if patch.Amount != nil {
			orders[i].Amount = *patch.Amount
		}
		if patch.SyncState != nil {
			orders[i].SyncState = *patch.SyncState
		}
		clone := orders[i]
		if !Write(ctx, r.store, KeyOrders, orders) {
			return &clone, false
		}
		return &clone, true
	}
	return nil, false
}

// Delete removes the order with the given id. Deleting an unknown id still
// succeeds (idempotent delete).
func (r *OrderRepository) Delete(ctx context.Context, id string) bool {
	orders := r.List(ctx)
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return Write(ctx, r.store, KeyOrders, kept)
}

// Complete flips a pending order to completed and stamps CompletedAt. The
// transition is one-directional; a missing or already-completed id returns
// false without modifying the partition.
func (r *OrderRepository) Complete(ctx context.Context, id string) bool {
	orders := r.List(ctx)
	for i := range orders {
		if orders[i].ID != id || orders[i].Status != domain.OrderPending {
			continue
		}
		now := time.Now().UTC()
		orders[i].Status = domain.OrderCompleted
		orders[i].CompletedAt = &now
		return Write(ctx, r.store, KeyOrders, orders)
	}
	return false
}

// Upsert inserts the order or overwrites the record with the same id,
// preserving its position. Used by the gateway to mirror remote records.
func (r *OrderRepository) Upsert(ctx context.Context, o domain.Order) bool {
	orders := r.List(ctx)
	for i := range orders {
		if orders[i].ID == o.ID {
			orders[i] = o
			return Write(ctx, r.store, KeyOrders, orders)
		}
	}
	return Write(ctx, r.store, KeyOrders, append(orders, o))
}

// Replace swaps the entire partition contents. Used after a successful remote
// list, where the remote result is authoritative.
func (r *OrderRepository) Replace(ctx context.Context, orders []domain.Order) bool {
	if orders == nil {
		orders = []domain.Order{}
	}
	return Write(ctx, r.store, KeyOrders, orders)
}

// MigrateLegacyPartitions folds records from the historical pendingOrders and
// completedOrders keys into the single partition, then removes the legacy
// keys. Records whose id already exists are skipped, which also repairs the
// both-copies state a crash mid-move could leave behind.
func (r *OrderRepository) MigrateLegacyPartitions(ctx context.Context) int {
	pending := Read(ctx, r.store, KeyPendingOrders, []domain.Order{})
	completed := Read(ctx, r.store, KeyCompletedOrders, []domain.Order{})
	if len(pending) == 0 && len(completed) == 0 {
		return 0
	}

	orders := r.List(ctx)
	known := make(map[string]struct{}, len(orders))
	for _, o := range orders {
		known[o.ID] = struct{}{}
	}

	migrated := 0
	migrate := func(records []domain.Order, status domain.OrderStatus) {
		for _, o := range records {
			if _, dup := known[o.ID]; dup {
				continue
			}
			o.Status = status
			if o.SyncState == "" {
				o.SyncState = domain.SyncLocalOnly
			}
			orders = append(orders, o)
			known[o.ID] = struct{}{}
			migrated++
		}
	}
	migrate(pending, domain.OrderPending)
	migrate(completed, domain.OrderCompleted)

	if !Write(ctx, r.store, KeyOrders, orders) {
		return 0
	}
	r.store.Del(ctx, KeyPendingOrders)
	r.store.Del(ctx, KeyCompletedOrders)
	return migrated
}
