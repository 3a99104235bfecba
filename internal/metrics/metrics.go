// Package metrics provides Prometheus metrics collection for the label service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label purchase outcomes.
const (
	OutcomeSuccess         = "success"
	OutcomeValidationError = "validation_error"
	OutcomeConfigError     = "configuration_error"
	OutcomeUpstreamError   = "upstream_error"
)

// Persisted log entry results.
const (
	LogEntryWritten = "written"
	LogEntryDropped = "dropped"
	LogEntryFailed  = "failed"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// LabelPurchasesTotal counts label requests by outcome.
	LabelPurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "label_purchases_total",
			Help: "Total number of label purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	// LabelPurchaseDuration tracks the end-to-end quote and buy duration.
	LabelPurchaseDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "label_purchase_duration_seconds",
			Help:    "Label purchase duration in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	// UpstreamCallDuration tracks shipping API call duration by operation and result.
	UpstreamCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_call_duration_seconds",
			Help:    "Shipping API call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"operation", "result"},
	)

	// CacheOperationsTotal tracks cache operations by cache name.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"cache", "operation", "result"},
	)

	// LogEntriesTotal counts persisted log entries by result.
	LogEntriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "log_entries_total",
			Help: "Total number of request and audit log entries by persistence result",
		},
		[]string{"result"},
	)

	// CircuitBreakerState exposes the breaker state per name (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0 closed, 1 open, 2 half-open)",
		},
		[]string{"name"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordLabelPurchase records the outcome of a label request.
// Duration is only observed for requests that reached the shipping API.
func RecordLabelPurchase(duration time.Duration, outcome string) {
	if outcome == OutcomeSuccess || outcome == OutcomeUpstreamError {
		LabelPurchaseDuration.Observe(duration.Seconds())
	}
	LabelPurchasesTotal.WithLabelValues(outcome).Inc()
}

// RecordUpstreamCall records the duration of a single shipping API call.
func RecordUpstreamCall(operation string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	UpstreamCallDuration.WithLabelValues(operation, result).Observe(duration.Seconds())
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(cache, operation, result string) {
	CacheOperationsTotal.WithLabelValues(cache, operation, result).Inc()
}

// SetCircuitBreakerState updates the breaker state gauge.
func SetCircuitBreakerState(name string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
}

// RecordLogEntries adds n entries with the given result.
func RecordLogEntries(result string, n int) {
	if n > 0 {
		LogEntriesTotal.WithLabelValues(result).Add(float64(n))
	}
}
