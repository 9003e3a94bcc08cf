package vec2

import (
	"errors"
	"sync"
)

// ErrDomain reports an operation outside a backend's domain: division by
// zero or the square root of a negative value on the precise system. The
// native system never returns it; it yields Inf/NaN instead.
var ErrDomain = errors.New("vec2: domain error")

// ErrOperand reports an input no system can normalize, such as malformed
// numeral text handed to the precise system.
var ErrOperand = errors.New("vec2: invalid operand")

// System supplies the arithmetic primitives for one numeric representation.
// Implementations must be pure: no per-call state, so a single instance is
// safe to share across any number of vectors and goroutines.
//
// Create normalizes any operand form to the system's backend value; the
// binary and unary operations accept raw operands and normalize internally.
// Format and Float are rendering hooks, not arithmetic: Format produces the
// textual component view, Float the float64 view fed to native trigonometry.
type System interface {
	Name() string
	Create(v Operand) (Operand, error)
	Plus(a, b Operand) (Operand, error)
	Minus(a, b Operand) (Operand, error)
	Multiply(a, b Operand) (Operand, error)
	Divide(a, b Operand) (Operand, error)
	Sqrt(v Operand) (Operand, error)
	Abs(v Operand) (Operand, error)
	Equal(a, b Operand) (bool, error)
	Format(v Operand) string
	Float(v Operand) (float64, error)
}

// Registered system names.
const (
	NameNative  = "native"
	NamePrecise = "precise"
)

var (
	regMu   sync.RWMutex
	systems = map[string]System{
		NameNative:  Native,
		NamePrecise: Precise,
	}
	defaultSystem System = Precise
)

// Default returns the process-wide default system used by New, FromArray
// and FromObject. It starts as the precise system.
func Default() System {
	regMu.RLock()
	defer regMu.RUnlock()
	return defaultSystem
}

// SetDefault replaces the process-wide default system. It affects only
// vectors constructed afterwards; existing vectors keep their system.
func SetDefault(s System) {
	if s == nil {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	defaultSystem = s
}

// RegisterSystem adds a custom system to the name registry, keyed by its
// Name. Registering under an existing name replaces the previous entry.
func RegisterSystem(s System) {
	if s == nil || s.Name() == "" {
		return
	}
	regMu.Lock()
	defer regMu.Unlock()
	systems[s.Name()] = s
}

// SystemByName resolves a registered system name. Unrecognized names
// resolve to the current default system rather than failing; use
// LookupSystem when a miss should be observable.
func SystemByName(name string) System {
	regMu.RLock()
	defer regMu.RUnlock()
	if s, ok := systems[name]; ok {
		return s
	}
	return defaultSystem
}

// LookupSystem resolves a registered system name, reporting whether the
// name was known.
func LookupSystem(name string) (System, bool) {
	regMu.RLock()
	defer regMu.RUnlock()
	s, ok := systems[name]
	return s, ok
}
