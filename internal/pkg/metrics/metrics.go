// Package metrics exposes Prometheus instrumentation for the coordinator.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Operation metrics
	OperationsStarted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drover_operations_started_total",
			Help: "Total number of cluster operations started by kind",
		},
		[]string{"kind"},
	)

	OperationsCompleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drover_operations_completed_total",
			Help: "Total number of cluster operations completed by kind and result",
		},
		[]string{"kind", "result"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "drover_operation_duration_seconds",
			Help:    "Cluster operation duration in seconds by kind",
			Buckets: []float64{10, 30, 60, 120, 300, 600, 1200, 3600},
		},
		[]string{"kind"},
	)

	// Lock metrics
	LockConflicts = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "drover_lock_conflicts_total",
			Help: "Total number of operation lock acquisitions rejected as busy",
		},
	)

	// Guardrail metrics
	GuardrailRejections = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drover_guardrail_rejections_total",
			Help: "Total number of operations rejected by a guardrail, by rule",
		},
		[]string{"rule"},
	)

	// Reconciliation metrics
	ReconciliationUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drover_reconciliation_updates_total",
			Help: "Total number of node status updates applied by reconciliation",
		},
		[]string{"to"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drover_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(OperationsStarted)
	prometheus.MustRegister(OperationsCompleted)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(LockConflicts)
	prometheus.MustRegister(GuardrailRejections)
	prometheus.MustRegister(ReconciliationUpdates)
	prometheus.MustRegister(APIRequestsTotal)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
