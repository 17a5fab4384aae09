// Package metrics defines and registers all custom Prometheus metrics for the
// storefront API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register with the default registry at init via
// promauto; the /metrics route exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "storefront"

// ── Order gateway metrics ─────────────────────────────────────────────────────

// OrdersCreatedTotal counts created orders.
// Label:
//   - source: "remote" when the remote endpoint accepted the order,
//     "local" when the offline fallback path stored it.
var OrdersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created, by persistence source.",
	},
	[]string{"source"},
)

// RemoteFallbackTotal counts gateway calls that degraded to local storage.
// Label:
//   - operation: "list" or "create"
var RemoteFallbackTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "remote_fallback_total",
		Help:      "Total number of gateway calls that fell back to the local partition.",
	},
	[]string{"operation"},
)

// OrdersReconciledTotal counts offline-created orders successfully pushed to
// the remote endpoint by the opportunistic reconciliation pass.
var OrdersReconciledTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_reconciled_total",
		Help:      "Total number of local-only orders pushed to the remote endpoint.",
	},
)

// OrdersCompletedTotal counts pending→completed transitions.
var OrdersCompletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_completed_total",
		Help:      "Total number of orders moved to the completed state.",
	},
)

// ── Payment metrics ───────────────────────────────────────────────────────────

// PaymentsProcessedTotal counts processed gateway callbacks.
// Label:
//   - status: "success" or "failed" as reported by the gateway
var PaymentsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_processed_total",
		Help:      "Total number of payment gateway callbacks processed.",
	},
	[]string{"status"},
)

// PaymentsDedupTotal counts dedup decisions on payment callbacks.
// Label:
//   - result: "hit" (replay, skipped) or "miss" (new reference, processed)
var PaymentsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_dedup_total",
		Help:      "Total number of payment dedup checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// ── Reporting metrics ─────────────────────────────────────────────────────────

// ExportsTotal counts dashboard exports.
// Labels:
//   - entity: exported record set (orders, students, users, transactions, payments)
//   - format: "csv" or "json"
var ExportsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "exports_total",
		Help:      "Total number of record exports served, by entity and format.",
	},
	[]string{"entity", "format"},
)
