// Package metrics holds the Prometheus collectors for the HTTP layer and the
// PostgreSQL stores. Collectors are registered on the default registry and
// exposed by promhttp on /metrics.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Database Metrics
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fithub_db_query_duration_seconds",
			Help:    "Duration of PostgreSQL store operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	DBQueryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fithub_db_query_errors_total",
			Help: "Total number of failed PostgreSQL store operations",
		},
		[]string{"operation", "table"},
	)

	DBConnectAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fithub_db_connect_attempts_total",
			Help: "Database connection attempts at startup, by outcome",
		},
		[]string{"outcome"},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fithub_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fithub_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "fithub_api_active_requests",
			Help: "Current number of in-flight API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fithub_api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"route"},
	)
)

// RecordDBQuery records the duration of a store operation and counts it as
// an error when err is non-nil.
func RecordDBQuery(operation, table string, duration time.Duration, err error) {
	DBQueryDuration.WithLabelValues(operation, table).Observe(duration.Seconds())
	if err != nil {
		DBQueryErrors.WithLabelValues(operation, table).Inc()
	}
}

// RecordAPIRequest records one completed API request.
func RecordAPIRequest(method, route string, statusCode int, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
		return
	}
	APIActiveRequests.Dec()
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(route string) {
	APIRateLimitHits.WithLabelValues(route).Inc()
}

// RecordConnectAttempt counts a startup connection attempt.
func RecordConnectAttempt(err error) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	DBConnectAttempts.WithLabelValues(outcome).Inc()
}
