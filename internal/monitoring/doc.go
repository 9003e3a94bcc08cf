// Package monitoring provides Prometheus metrics for the HTTP surface and
// tool executions, plus the Gin middleware that records them.
package monitoring
