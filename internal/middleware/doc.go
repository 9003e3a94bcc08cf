// Package middleware provides gin middleware for the HTTP surface:
// CORS handling and per-client rate limiting.
package middleware
