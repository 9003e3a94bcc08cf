package vec2

import (
	gomath "math"
	"math/big"
	"strconv"
	"strings"
)

// Native is the float64-backed operator system. All operations delegate to
// platform floating point: division by zero yields Inf (0/0 yields NaN),
// Sqrt of a negative yields NaN, and no operation ever returns an error.
// Equality is exact, with no epsilon tolerance.
var Native System = nativeSystem{}

type nativeSystem struct{}

func (nativeSystem) Name() string { return NameNative }

// Create coerces any operand form to float64. Unparseable text coerces to
// NaN rather than failing, mirroring the silent-invalid-value behavior of
// the rest of the system.
func (nativeSystem) Create(v Operand) (Operand, error) {
	return toFloat(v), nil
}

func (nativeSystem) Plus(a, b Operand) (Operand, error) {
	return toFloat(a) + toFloat(b), nil
}

func (nativeSystem) Minus(a, b Operand) (Operand, error) {
	return toFloat(a) - toFloat(b), nil
}

func (nativeSystem) Multiply(a, b Operand) (Operand, error) {
	return toFloat(a) * toFloat(b), nil
}

func (nativeSystem) Divide(a, b Operand) (Operand, error) {
	return toFloat(a) / toFloat(b), nil
}

func (nativeSystem) Sqrt(v Operand) (Operand, error) {
	return gomath.Sqrt(toFloat(v)), nil
}

func (nativeSystem) Abs(v Operand) (Operand, error) {
	return gomath.Abs(toFloat(v)), nil
}

func (nativeSystem) Equal(a, b Operand) (bool, error) {
	return toFloat(a) == toFloat(b), nil
}

func (nativeSystem) Format(v Operand) string {
	return strconv.FormatFloat(toFloat(v), 'f', -1, 64)
}

func (nativeSystem) Float(v Operand) (float64, error) {
	return toFloat(v), nil
}

// toFloat coerces the accepted operand forms to float64. Anything else
// becomes NaN.
func toFloat(v Operand) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return gomath.NaN()
		}
		return f
	case *big.Float:
		f, _ := n.Float64()
		return f
	default:
		return gomath.NaN()
	}
}
