// Package providers wires concrete tool providers for registration.
//
// Each provider implements the service.Provider interface:
//   - Definition(): Returns service metadata and tool definitions
//   - Execute(): Executes a tool with parameters and context
package providers

import (
	"github.com/planarkit/planarkit/internal/providers/vector"
)

// NewVector creates the vector math provider.
func NewVector() *vector.Provider {
	return vector.NewProvider()
}
