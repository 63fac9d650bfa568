// Package metrics defines the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTPRequests counts inbound API requests.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portal_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"method", "route"},
	)

	// GoodDataRequests counts remote API calls by operation and response status.
	GoodDataRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gooddata_requests_total",
			Help: "Total number of requests sent to the GoodData API",
		},
		[]string{"operation", "status"},
	)

	GoodDataRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "gooddata_request_duration_seconds",
			Help:    "Duration of GoodData API requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// ReportExecutions counts report executions by outcome:
	// completed, empty, timeout, error.
	ReportExecutions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gooddata_report_executions_total",
			Help: "Total number of report executions by outcome",
		},
		[]string{"outcome"},
	)

	ReportPollAttempts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "gooddata_report_poll_attempts",
			Help:    "Number of poll waits spent per report execution",
			Buckets: []float64{0, 1, 2, 3, 5, 10, 20, 30, 60},
		},
	)

	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)

	// LoginRejections counts logins refused before reaching the remote API.
	LoginRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portal_login_rejections_total",
			Help: "Total number of login attempts rejected locally",
		},
		[]string{"reason"}, // "throttled", "rate_limited"
	)
)

// RecordHTTPRequest records an inbound request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordGoodDataRequest records a remote API call. Status 0 means a transport error.
func RecordGoodDataRequest(operation string, status int, duration time.Duration) {
	label := "error"
	if status > 0 {
		label = strconv.Itoa(status)
	}
	GoodDataRequests.WithLabelValues(operation, label).Inc()
	GoodDataRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// RecordReportExecution records the outcome of a report execution.
func RecordReportExecution(outcome string, pollWaits int) {
	ReportExecutions.WithLabelValues(outcome).Inc()
	ReportPollAttempts.Observe(float64(pollWaits))
}
