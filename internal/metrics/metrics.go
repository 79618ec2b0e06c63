package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "recipes_api",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipes_api",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "path", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recipes_api",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "path"},
	)

	recipeOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipes_api",
			Subsystem: "recipes",
			Name:      "operations_total",
			Help:      "Recipe operations by outcome.",
		},
		[]string{"operation", "outcome"},
	)

	rateLimitRejects = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "recipes_api",
			Subsystem: "http",
			Name:      "rate_limit_rejects_total",
			Help:      "Requests rejected by the write rate limiter.",
		},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		recipeOperations,
		rateLimitRejects,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted marks a request as in flight.
func RequestStarted() {
	httpInFlight.Inc()
}

// RequestFinished records a completed request. path should be the route
// template, not the raw URL, to keep label cardinality bounded.
func RequestFinished(method, path, status string, seconds float64) {
	httpInFlight.Dec()
	httpRequests.WithLabelValues(method, path, status).Inc()
	httpDuration.WithLabelValues(method, path).Observe(seconds)
}

// RecordRecipeOperation counts one service call. outcome is "success" or an
// error kind.
func RecordRecipeOperation(operation, outcome string) {
	recipeOperations.WithLabelValues(operation, outcome).Inc()
}

// RecordRateLimitReject counts a request refused by the rate limiter.
func RecordRateLimitReject() {
	rateLimitRejects.Inc()
}

// RecipeOperationCounter exposes the counter behind RecordRecipeOperation.
func RecipeOperationCounter(operation, outcome string) prometheus.Counter {
	return recipeOperations.WithLabelValues(operation, outcome)
}

// RateLimitRejects exposes the counter behind RecordRateLimitReject.
func RateLimitRejects() prometheus.Counter {
	return rateLimitRejects
}

// HTTPRequestCounter exposes the per-route request counter.
func HTTPRequestCounter(method, path, status string) prometheus.Counter {
	return httpRequests.WithLabelValues(method, path, status)
}
