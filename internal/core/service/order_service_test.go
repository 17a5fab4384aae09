package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/abikefoods/storefront-api/internal/core/domain"
	"github.com/abikefoods/storefront-api/internal/core/ports"
	"github.com/abikefoods/storefront-api/internal/infrastructure/db/kv"
)

// ---------------------------------------------------------------------------
// Stub remote client
// ---------------------------------------------------------------------------

type stubRemoteClient struct {
	orders    []domain.Order
	listErr   error
	createErr error
	created   []domain.Order // records passed to Create
}

func (c *stubRemoteClient) List(_ context.Context) ([]domain.Order, error) {
	if c.listErr != nil {
		return nil, c.listErr
	}
	out := make([]domain.Order, len(c.orders))
	copy(out, c.orders)
	return out, nil
}

func (c *stubRemoteClient) Create(_ context.Context, o domain.Order) (domain.Order, error) {
	if c.createErr != nil {
		return domain.Order{}, c.createErr
	}
	if o.ID == "" {
		o.ID = "remote-1"
	}
	c.created = append(c.created, o)
	c.orders = append(c.orders, o)
	return o, nil
}

var discardLogger = zerolog.Nop()

var errRemoteDown = errors.New("remote unavailable")

// ---------------------------------------------------------------------------
// FetchOrders
// ---------------------------------------------------------------------------

func TestOrderService_Fetch_RemoteWinsAndReplacesLocal(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	repo.Add(context.Background(), domain.Order{ID: "stale", Customer: "Old", SyncState: domain.SyncSynced})

	remote := &stubRemoteClient{orders: []domain.Order{
		{ID: "r1", Customer: "Ada", Status: domain.OrderPending},
	}}
	svc := NewOrderService(repo, remote, discardLogger)

	got := svc.FetchOrders(context.Background())
	if len(got) != 1 || got[0].ID != "r1" {
		t.Fatalf("expected only the remote order, got %+v", got)
	}
	if got[0].SyncState != domain.SyncSynced {
		t.Errorf("remote records must be marked synced, got %q", got[0].SyncState)
	}

	local := repo.List(context.Background())
	if len(local) != 1 || local[0].ID != "r1" {
		t.Errorf("local partition must mirror the remote list, got %+v", local)
	}
}

func TestOrderService_Fetch_FallsBackToLocalUnmodified(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	stored, _ := repo.Add(context.Background(), domain.Order{Customer: "Ada"})

	remote := &stubRemoteClient{listErr: errRemoteDown}
	svc := NewOrderService(repo, remote, discardLogger)

	got := svc.FetchOrders(context.Background())
	if len(got) != 1 || got[0].ID != stored.ID {
		t.Fatalf("expected the local order on fallback, got %+v", got)
	}
	if got[0].SyncState != domain.SyncLocalOnly {
		t.Errorf("fallback must not touch sync state, got %q", got[0].SyncState)
	}
}

func TestOrderService_Fetch_DeterministicFallback(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	repo.Add(context.Background(), domain.Order{Customer: "Ada"})

	remote := &stubRemoteClient{listErr: errRemoteDown}
	svc := NewOrderService(repo, remote, discardLogger)

	first := svc.FetchOrders(context.Background())
	second := svc.FetchOrders(context.Background())
	if len(first) != len(second) {
		t.Fatalf("identical failing calls must return identical results: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("order %d differs between calls: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestOrderService_Fetch_ReconcilesOfflineOrders(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	offline, _ := repo.Add(context.Background(), domain.Order{Customer: "Grace"})
	if !offline.Offline() {
		t.Fatal("precondition: locally added order must be local-only")
	}

	remote := &stubRemoteClient{orders: []domain.Order{
		{ID: "r1", Customer: "Ada"},
	}}
	svc := NewOrderService(repo, remote, discardLogger)

	got := svc.FetchOrders(context.Background())
	if len(got) != 2 {
		t.Fatalf("expected remote order plus reconciled local, got %d", len(got))
	}
	if len(remote.created) != 1 || remote.created[0].Customer != "Grace" {
		t.Fatalf("offline order must be pushed to the remote once, pushed: %+v", remote.created)
	}
	for _, o := range got {
		if o.Offline() {
			t.Errorf("order %q still local-only after successful reconciliation", o.ID)
		}
	}

	// Nothing left to push on the next fetch.
	remote.created = nil
	svc.FetchOrders(context.Background())
	if len(remote.created) != 0 {
		t.Errorf("reconciled order pushed again: %+v", remote.created)
	}
}

func TestOrderService_Fetch_FailedReconcileKeepsOrderLocal(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	repo.Add(context.Background(), domain.Order{Customer: "Grace"})

	remote := &stubRemoteClient{createErr: errRemoteDown}
	svc := NewOrderService(repo, remote, discardLogger)

	got := svc.FetchOrders(context.Background())
	if len(got) != 1 {
		t.Fatalf("offline order must survive a failed push, got %+v", got)
	}
	if !got[0].Offline() {
		t.Error("order must stay local-only when the push fails")
	}
}

// ---------------------------------------------------------------------------
// CreateOrder
// ---------------------------------------------------------------------------

func TestOrderService_Create_RemoteSuccessMirrorsLocally(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	remote := &stubRemoteClient{}
	svc := NewOrderService(repo, remote, discardLogger)

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Customer: "Ada", Items: []string{"Party Pack"}, Quantity: 2, Amount: 15000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Offline() {
		t.Error("remote-accepted order must not be flagged offline")
	}

	local := repo.List(context.Background())
	if len(local) != 1 || local[0].ID != created.ID {
		t.Fatalf("created order must be mirrored locally, got %+v", local)
	}
}

func TestOrderService_Create_FallsBackToLocal(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	remote := &stubRemoteClient{createErr: errRemoteDown}
	svc := NewOrderService(repo, remote, discardLogger)

	created, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Customer: "Ada", Items: []string{"Small Chops"}, Quantity: 1, Amount: 5000,
	})
	if err != nil {
		t.Fatalf("fallback creation must not error: %v", err)
	}
	if !created.Offline() {
		t.Error("fallback-created order must be flagged offline")
	}
	if created.ID == "" {
		t.Error("fallback-created order must get a generated id")
	}
	if created.Status != domain.OrderPending {
		t.Errorf("new order must be pending, got %q", created.Status)
	}
}

// ---------------------------------------------------------------------------
// Local operations
// ---------------------------------------------------------------------------

func TestOrderService_CompleteOrder(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	svc := NewOrderService(repo, &stubRemoteClient{}, discardLogger)

	stored, _ := repo.Add(context.Background(), domain.Order{Customer: "Ada"})

	if err := svc.CompleteOrder(context.Background(), stored.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := svc.CompleteOrder(context.Background(), stored.ID); !errors.Is(err, domain.ErrOrderAlreadyCompleted) {
		t.Errorf("expected ErrOrderAlreadyCompleted, got %v", err)
	}
	if err := svc.CompleteOrder(context.Background(), "missing"); !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_UpdateMissingOrder(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	svc := NewOrderService(repo, &stubRemoteClient{}, discardLogger)

	customer := "Ada"
	_, err := svc.UpdateOrder(context.Background(), "missing", ports.UpdateOrderInput{Customer: &customer})
	if !errors.Is(err, domain.ErrOrderNotFound) {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestOrderService_Create_FallbackWriteFailure(t *testing.T) {
	mem := kv.NewMemory()
	repo := kv.NewOrderRepository(mem)
	svc := NewOrderService(repo, &stubRemoteClient{createErr: errRemoteDown}, discardLogger)

	mem.FailWrites = true
	_, err := svc.CreateOrder(context.Background(), ports.CreateOrderInput{
		Customer: "Ada", Items: []string{"Jollof Tray"}, Quantity: 1, Amount: 8000,
	})
	if !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("expected ErrStorageWrite when the offline fallback cannot persist, got %v", err)
	}
}

func TestOrderService_Update_WriteFailureIsNotNotFound(t *testing.T) {
	mem := kv.NewMemory()
	repo := kv.NewOrderRepository(mem)
	svc := NewOrderService(repo, &stubRemoteClient{}, discardLogger)

	stored, _ := repo.Add(context.Background(), domain.Order{Customer: "Ada"})

	mem.FailWrites = true
	customer := "Grace"
	_, err := svc.UpdateOrder(context.Background(), stored.ID, ports.UpdateOrderInput{Customer: &customer})
	if !errors.Is(err, domain.ErrStorageWrite) {
		t.Fatalf("a failed write on an existing order must surface ErrStorageWrite, got %v", err)
	}
}

func TestOrderService_DeleteUnknownIsNoOp(t *testing.T) {
	repo := kv.NewOrderRepository(kv.NewMemory())
	svc := NewOrderService(repo, &stubRemoteClient{}, discardLogger)

	if err := svc.DeleteOrder(context.Background(), "missing"); err != nil {
		t.Errorf("deleting an unknown id must not error, got %v", err)
	}
}
