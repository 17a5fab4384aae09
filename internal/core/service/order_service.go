package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/api/metrics"
	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
)

// OrderService is the remote-fallback order gateway. Fetch and Create try
// the remote order endpoint exactly once and degrade to the local partition
// on any failure; update, delete and complete are purely local operations.
type OrderService struct {
	repo   ports.OrderRepository
	remote ports.RemoteOrderClient
	logger zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, remote ports.RemoteOrderClient, logger zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, remote: remote, logger: logger}
}

// FetchOrders lists orders. On remote success the remote result is
// authoritative and replaces the local partition; before that replacement,
// any local-only records are pushed to the remote once (opportunistic
// reconciliation) so offline-created orders are neither lost nor duplicated.
// On remote failure the local contents are returned unmodified — one attempt,
// no retry.
func (s *OrderService) FetchOrders(ctx context.Context) []domain.Order {
	remoteOrders, err := s.remote.List(ctx)
	if err != nil {
		metrics.RemoteFallbackTotal.WithLabelValues("list").Inc()
		s.logger.Warn().Err(err).Msg("remote unavailable, serving local orders")
		return s.repo.List(ctx)
	}

	merged := s.reconcile(ctx, remoteOrders)
	s.repo.Replace(ctx, merged)
	return merged
}

// reconcile pushes each local-only record to the remote with a single
// attempt. Records the remote accepts become synced; the rest stay
// local-only and are appended behind the authoritative remote list.
func (s *OrderService) reconcile(ctx context.Context, remoteOrders []domain.Order) []domain.Order {
	merged := make([]domain.Order, 0, len(remoteOrders))
	for _, o := range remoteOrders {
		o.SyncState = domain.SyncSynced
		merged = append(merged, o)
	}

	for _, o := range s.repo.List(ctx) {
		if !o.Offline() {
			continue
		}
		pushed, err := s.remote.Create(ctx, o)
		if err != nil {
			s.logger.Warn().Err(err).Str("order_id", o.ID).Msg("reconcile push failed, order stays local-only")
			merged = append(merged, o)
			continue
		}
		pushed.SyncState = domain.SyncSynced
		merged = append(merged, pushed)
		metrics.OrdersReconciledTotal.Inc()
		s.logger.Info().Str("order_id", o.ID).Str("remote_id", pushed.ID).Msg("offline order reconciled")
	}
	return merged
}

// ListByStatus reads the local partition only; dashboards filter by status
// without touching the remote.
func (s *OrderService) ListByStatus(ctx context.Context, status domain.OrderStatus) []domain.Order {
	return s.repo.ListByStatus(ctx, status)
}

// CreateOrder places an order, preferring the remote endpoint. The stored
// record is returned either way; its SyncState tells the caller whether the
// offline fallback path was taken.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (domain.Order, error) {
	order := domain.Order{
		Customer:  input.Customer,
		Items:     input.Items,
		Quantity:  input.Quantity,
		Amount:    input.Amount,
		Status:    domain.OrderPending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.remote.Create(ctx, order)
	if err != nil {
		metrics.RemoteFallbackTotal.WithLabelValues("create").Inc()
		metrics.OrdersCreatedTotal.WithLabelValues("local").Inc()
		s.logger.Warn().Err(err).Str("customer", input.Customer).Msg("remote unavailable, creating order locally")

		order.SyncState = domain.SyncLocalOnly
		stored, ok := s.repo.Add(ctx, order)
		if !ok {
			return domain.Order{}, domain.ErrStorageWrite
		}
		return stored, nil
	}

	created.SyncState = domain.SyncSynced
	if !s.repo.Upsert(ctx, created) {
		// The remote holds the order; a failed local mirror degrades the
		// next fetch, not this request.
		s.logger.Warn().Str("order_id", created.ID).Msg("local mirror write failed")
	}
	metrics.OrdersCreatedTotal.WithLabelValues("remote").Inc()
	s.logger.Info().Str("order_id", created.ID).Str("customer", created.Customer).Msg("order created")
	return created, nil
}

// UpdateOrder merges the given fields into an existing local order.
func (s *OrderService) UpdateOrder(ctx context.Context, id string, input ports.UpdateOrderInput) (*domain.Order, error) {
	updated, ok := s.repo.Update(ctx, id, ports.OrderPatch{
		Customer: input.Customer,
		Items:    input.Items,
		Quantity: input.Quantity,
		Amount:   input.Amount,
	})
	if !ok {
		if updated != nil {
			return nil, domain.ErrStorageWrite
		}
		return nil, domain.ErrOrderNotFound
	}
	return updated, nil
}

// DeleteOrder removes an order. The repository delete is idempotent, so an
// unknown id is not an error.
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	s.repo.Delete(ctx, id)
	return nil
}

// CompleteOrder moves a pending order to the completed state.
func (s *OrderService) CompleteOrder(ctx context.Context, id string) error {
	if !s.repo.Complete(ctx, id) {
		order, ok := s.repo.Get(ctx, id)
		switch {
		case !ok:
			return domain.ErrOrderNotFound
		case order.Status == domain.OrderCompleted:
			return domain.ErrOrderAlreadyCompleted
		default:
			// Still pending, so the transition write itself was rejected.
			return domain.ErrStorageWrite
		}
	}
	metrics.OrdersCompletedTotal.Inc()
	s.logger.Info().Str("order_id", id).Msg("order completed")
	return nil
}
