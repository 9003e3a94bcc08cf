package vec2

import (
	"fmt"
	"math/big"
	"strings"
)

// DefaultDigits is the decimal precision kept per component by the
// package-default precise system.
const DefaultDigits = 20

// Precise is the arbitrary-precision operator system backing the package
// default, carrying DefaultDigits decimal digits per value.
var Precise System = NewPrecise(DefaultDigits)

// PreciseSystem is a decimal operator system on *big.Float. Unlike Native,
// division by zero and square roots of negative values fail with ErrDomain
// instead of producing Inf/NaN. Equality is exact decimal equality.
type PreciseSystem struct {
	digits int
	prec   uint
}

// NewPrecise creates a precise system keeping the given number of decimal
// digits per value. Non-positive digits fall back to DefaultDigits.
func NewPrecise(digits int) *PreciseSystem {
	if digits <= 0 {
		digits = DefaultDigits
	}
	// Decimal digits to binary mantissa bits.
	return &PreciseSystem{digits: digits, prec: uint(float64(digits) * 3.32)}
}

// Digits reports the decimal precision carried per value.
func (s *PreciseSystem) Digits() int { return s.digits }

func (s *PreciseSystem) Name() string { return NamePrecise }

// Create normalizes any operand form to a *big.Float at the system's
// precision. Malformed numeral text fails with ErrOperand.
func (s *PreciseSystem) Create(v Operand) (Operand, error) {
	f := new(big.Float).SetPrec(s.prec)
	switch n := v.(type) {
	case nil:
		// zero
	case *big.Float:
		f.Set(n)
	case float64:
		f.SetFloat64(n)
	case float32:
		f.SetFloat64(float64(n))
	case int:
		f.SetInt64(int64(n))
	case int32:
		f.SetInt64(int64(n))
	case int64:
		f.SetInt64(n)
	case uint:
		f.SetUint64(uint64(n))
	case uint32:
		f.SetUint64(uint64(n))
	case uint64:
		f.SetUint64(n)
	case string:
		if _, ok := f.SetString(strings.TrimSpace(n)); !ok {
			return nil, fmt.Errorf("%w: invalid numeral %q", ErrOperand, n)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported type %T", ErrOperand, v)
	}
	return f, nil
}

func (s *PreciseSystem) Plus(a, b Operand) (Operand, error) {
	x, y, err := s.pair(a, b)
	if err != nil {
		return nil, err
	}
	return new(big.Float).SetPrec(s.prec).Add(x, y), nil
}

func (s *PreciseSystem) Minus(a, b Operand) (Operand, error) {
	x, y, err := s.pair(a, b)
	if err != nil {
		return nil, err
	}
	return new(big.Float).SetPrec(s.prec).Sub(x, y), nil
}

func (s *PreciseSystem) Multiply(a, b Operand) (Operand, error) {
	x, y, err := s.pair(a, b)
	if err != nil {
		return nil, err
	}
	return new(big.Float).SetPrec(s.prec).Mul(x, y), nil
}

// Divide fails with ErrDomain for a zero divisor; this is the observable
// difference from the native system, which yields Inf/NaN silently.
func (s *PreciseSystem) Divide(a, b Operand) (Operand, error) {
	x, y, err := s.pair(a, b)
	if err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, fmt.Errorf("%w: division by zero", ErrDomain)
	}
	return new(big.Float).SetPrec(s.prec).Quo(x, y), nil
}

// Sqrt fails with ErrDomain for negative input.
func (s *PreciseSystem) Sqrt(v Operand) (Operand, error) {
	x, err := s.value(v)
	if err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		return nil, fmt.Errorf("%w: square root of negative value %s", ErrDomain, s.Format(x))
	}
	return new(big.Float).SetPrec(s.prec).Sqrt(x), nil
}

func (s *PreciseSystem) Abs(v Operand) (Operand, error) {
	x, err := s.value(v)
	if err != nil {
		return nil, err
	}
	return new(big.Float).SetPrec(s.prec).Abs(x), nil
}

func (s *PreciseSystem) Equal(a, b Operand) (bool, error) {
	x, y, err := s.pair(a, b)
	if err != nil {
		return false, err
	}
	return x.Cmp(y) == 0, nil
}

// Format renders the shortest decimal form that reproduces the value
// exactly, so whole numbers come out without a fractional tail.
func (s *PreciseSystem) Format(v Operand) string {
	x, err := s.value(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return x.Text('f', -1)
}

func (s *PreciseSystem) Float(v Operand) (float64, error) {
	x, err := s.value(v)
	if err != nil {
		return 0, err
	}
	f, _ := x.Float64()
	return f, nil
}

func (s *PreciseSystem) value(v Operand) (*big.Float, error) {
	if f, ok := v.(*big.Float); ok && f.Prec() == s.prec {
		return f, nil
	}
	created, err := s.Create(v)
	if err != nil {
		return nil, err
	}
	return created.(*big.Float), nil
}

func (s *PreciseSystem) pair(a, b Operand) (*big.Float, *big.Float, error) {
	x, err := s.value(a)
	if err != nil {
		return nil, nil, err
	}
	y, err := s.value(b)
	if err != nil {
		return nil, nil, err
	}
	return x, y, nil
}
