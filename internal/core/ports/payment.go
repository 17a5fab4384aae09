package ports

import (
	"context"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

// PaymentRepository defines persistence over the append-only payments partition.
type PaymentRepository interface {
	List(ctx context.Context) []domain.Payment
	Add(ctx context.Context, p domain.Payment) (domain.Payment, bool)
}

// PaymentDeduper guards the gateway callback against replays. Seen marks the
// reference as processed as a side effect of the first check; Forget releases
// the marker when processing fails after the check, so the gateway's
// redelivery is not rejected as a replay.
type PaymentDeduper interface {
	Seen(ctx context.Context, reference string) (bool, error)
	Forget(ctx context.Context, reference string) error
}

// PaymentCallbackInput is the pass/fail callback delivered by the external
// payment gateway.
type PaymentCallbackInput struct {
	Reference string
	Email     string
	Amount    float64
	Currency  string
	Method    string
	Success   bool
}

// PaymentService processes payment gateway callbacks.
type PaymentService interface {
	// Confirm records the callback exactly once per reference. A successful
	// training-class payment extends the payer's registration by 30 days.
	Confirm(ctx context.Context, input PaymentCallbackInput) (*domain.Payment, error)
}

// ClassRepository defines persistence over the training-class catalog.
type ClassRepository interface {
	List(ctx context.Context) []domain.Class
	Add(ctx context.Context, c domain.Class) (domain.Class, bool)
	Delete(ctx context.Context, id string) bool
}
