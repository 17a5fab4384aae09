package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// PaymentDeduper guards the payment-gateway callback against replays.
// Key format: payment:dedup:<reference>
type PaymentDeduper struct {
	client *redis.Client
}

// NewPaymentDeduper creates a PaymentDeduper wrapping the given Redis client.
func NewPaymentDeduper(client *redis.Client) *PaymentDeduper {
	return &PaymentDeduper{client: client}
}

// Seen reports whether this payment reference has already been processed,
// atomically marking it as processed on first sight. The marker expires after
// dedupTTL; gateways do not redeliver callbacks beyond that window.
func (d *PaymentDeduper) Seen(ctx context.Context, reference string) (bool, error) {
	set, err := d.client.SetNX(ctx, d.key(reference), "1", dedupTTL).Result()
	if err != nil {
		return false, fmt.Errorf("payment dedup: %w", err)
	}
	return !set, nil
}

// Forget releases the marker set by Seen, re-opening the reference for the
// gateway's next delivery attempt.
func (d *PaymentDeduper) Forget(ctx context.Context, reference string) error {
	if err := d.client.Del(ctx, d.key(reference)).Err(); err != nil {
		return fmt.Errorf("payment dedup: %w", err)
	}
	return nil
}

func (d *PaymentDeduper) key(reference string) string {
	return fmt.Sprintf("payment:dedup:%s", reference)
}
