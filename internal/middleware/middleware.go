// Package middleware provides request-scoped HTTP middleware: request
// identification, timeouts, body limits, and Prometheus metrics.
package middleware

// contextKey is a private type for context keys to avoid collisions
type contextKey string
