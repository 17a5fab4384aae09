// Package remote implements the client for the remote order endpoint. The
// endpoint is frequently unreachable in practice; callers are expected to
// treat every error from this package as "remote unavailable" and fall back
// to the local partition.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

const defaultTimeout = 3 * time.Second

// OrdersClient performs single-attempt requests against the remote order
// endpoint. No retries, no backoff: failing fast keeps the fallback path
// responsive.
type OrdersClient struct {
	base string
	http *http.Client
}

// NewOrdersClient builds a client for the given base URL. A timeout <= 0
// falls back to a bounded default so a dead remote can never stall a request
// indefinitely.
func NewOrdersClient(base string, timeout time.Duration) *OrdersClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &OrdersClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: timeout},
	}
}

// List fetches all orders from the remote endpoint.
func (c *OrdersClient) List(ctx context.Context) ([]domain.Order, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+"/orders", nil)
	if err != nil {
		return nil, fmt.Errorf("remote orders: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("remote orders: unexpected status %d", resp.StatusCode)
	}

	var orders []domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&orders); err != nil {
		return nil, fmt.Errorf("remote orders: decode: %w", err)
	}
	return orders, nil
}

// Create persists the order remotely and returns the record as stored by the
// remote, including its server-assigned id.
func (c *OrdersClient) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	body, err := json.Marshal(o)
	if err != nil {
		return domain.Order{}, fmt.Errorf("remote orders: encode: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/orders", bytes.NewReader(body))
	if err != nil {
		return domain.Order{}, fmt.Errorf("remote orders: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Order{}, fmt.Errorf("remote orders: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Order{}, fmt.Errorf("remote orders: unexpected status %d", resp.StatusCode)
	}

	var created domain.Order
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return domain.Order{}, fmt.Errorf("remote orders: decode: %w", err)
	}
	return created, nil
}
