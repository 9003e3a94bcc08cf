// Package vec2 implements immutable 2D vectors over pluggable arithmetic
// backends.
//
// Every vector delegates its arithmetic to a System, a fixed set of
// primitives (create, plus, minus, multiply, divide, sqrt, abs, equal) over
// one numeric representation. Two systems ship with the package:
//   - Native: float64 arithmetic. Division by zero and square roots of
//     negative values silently produce Inf/NaN, IEEE style.
//   - Precise: arbitrary-precision decimal arithmetic on math/big. Division
//     by zero and square roots of negative values return a domain error.
//
// The same vector algorithm produces correct results on either system;
// switching representations requires no change to vector code. Systems are
// stateless and safe to share across goroutines.
//
// Vectors are values: every manipulation method returns a new Vector and
// never mutates its receiver or its argument.
//
// Example Usage:
//
//	v, _ := vec2.New(100, 50)
//	w, _ := vec2.New(200, 60)
//	d, _ := v.Dot(w) // "23000" on the default precise system
//
//	n, _ := vec2.NewIn(vec2.Native, 3, 4)
//	l, _ := n.Length() // float64(5)
package vec2
