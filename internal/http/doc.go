// Package http implements the Gin handlers for the tool service: banner,
// health, service listing/discovery, and tool execution.
package http
