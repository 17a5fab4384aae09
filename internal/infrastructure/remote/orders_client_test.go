package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/abikefoods/storefront-api/internal/core/domain"
)

func TestOrdersClient_List(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]domain.Order{{ID: "r1", Customer: "Ada"}})
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, 0)
	orders, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != "r1" {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestOrdersClient_List_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, 0)
	if _, err := client.List(context.Background()); err == nil {
		t.Fatal("5xx must surface as an error")
	}
}

func TestOrdersClient_List_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, 0)
	if _, err := client.List(context.Background()); err == nil {
		t.Fatal("malformed payload must surface as an error")
	}
}

func TestOrdersClient_Create_ReturnsServerAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/orders" {
			t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var o domain.Order
		if err := json.NewDecoder(r.Body).Decode(&o); err != nil {
			t.Fatalf("bad request body: %v", err)
		}
		o.ID = "server-1"
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(o)
	}))
	defer srv.Close()

	client := NewOrdersClient(srv.URL, 0)
	created, err := client.Create(context.Background(), domain.Order{Customer: "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "server-1" {
		t.Fatalf("expected server-assigned id, got %q", created.ID)
	}
}

func TestOrdersClient_Create_DeadRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	client := NewOrdersClient(srv.URL, 0)
	if _, err := client.Create(context.Background(), domain.Order{Customer: "Ada"}); err == nil {
		t.Fatal("dead remote must surface as an error")
	}
}
