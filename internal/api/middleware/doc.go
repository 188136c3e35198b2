// Package middleware holds the HTTP middleware shared by the API routes:
// caller identity, trace IDs, Prometheus instrumentation and rate limiting.
package middleware
