// Package server assembles the HTTP service: provider registration,
// middleware, routes, and the configured default operator system.
package server
