// Package types defines shared data structures for the service layer:
// service and tool definitions, execution context, and results.
package types
