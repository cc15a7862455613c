// Package metrics defines the Prometheus collectors exposed on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total HTTP requests by method, route and status code.",
		},
		[]string{"method", "route", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by method and route.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	rateLimitedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "http_rate_limited_total",
			Help: "Requests rejected by the rate limiter.",
		},
	)

	generationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_generations_total",
			Help: "Dataset generations by outcome.",
		},
		[]string{"outcome"},
	)

	generationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_generation_duration_seconds",
			Help:    "Time spent generating a dataset.",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	datasetEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_entities",
			Help: "Entities in the currently published dataset.",
		},
		[]string{"kind"},
	)

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_exports_total",
			Help: "Dataset exports by target and outcome.",
		},
		[]string{"target", "outcome"},
	)
)

// ObserveRequest records one served HTTP request.
func ObserveRequest(method, route, statusCode string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, route, statusCode).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RateLimited records a request rejected by the rate limiter.
func RateLimited() {
	rateLimitedTotal.Inc()
}

// ObserveGeneration records a dataset generation attempt.
func ObserveGeneration(duration time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	generationsTotal.WithLabelValues(outcome).Inc()
	generationDuration.Observe(duration.Seconds())
}

// SetDatasetSize publishes the entity counts of the current dataset.
func SetDatasetSize(customers, orders, shops int) {
	datasetEntities.WithLabelValues("customers").Set(float64(customers))
	datasetEntities.WithLabelValues("orders").Set(float64(orders))
	datasetEntities.WithLabelValues("shops").Set(float64(shops))
}

// ObserveExport records a snapshot or seed export.
func ObserveExport(target string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	exportsTotal.WithLabelValues(target, outcome).Inc()
}
