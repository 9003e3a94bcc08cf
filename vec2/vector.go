package vec2

import (
	"fmt"
	gomath "math"
)

// Vector is an immutable 2-component value. Components are stored in the
// backend representation of the system chosen at construction time; every
// manipulation method returns a new Vector sharing that system and leaves
// the receiver and any Vector argument untouched.
//
// The zero Vector is usable and behaves as the origin on the default
// system.
type Vector struct {
	x, y Operand
	sys  System
}

// New creates a vector on the default system. Nil coordinates default to
// literal zero before normalization.
func New(x, y Operand) (Vector, error) {
	return NewIn(Default(), x, y)
}

// NewIn creates a vector on an explicit system.
func NewIn(sys System, x, y Operand) (Vector, error) {
	if sys == nil {
		sys = Default()
	}
	if x == nil {
		x = 0
	}
	if y == nil {
		y = 0
	}
	nx, err := sys.Create(x)
	if err != nil {
		return Vector{}, err
	}
	ny, err := sys.Create(y)
	if err != nil {
		return Vector{}, err
	}
	return Vector{x: nx, y: ny, sys: sys}, nil
}

// Zero returns the origin on the default system.
func Zero() Vector {
	v, _ := New(0, 0)
	return v
}

// FromArray creates a vector from the first two elements of arr; missing
// elements default to zero.
func FromArray(arr []Operand) (Vector, error) {
	return FromArrayIn(Default(), arr)
}

// FromArrayIn is FromArray on an explicit system.
func FromArrayIn(sys System, arr []Operand) (Vector, error) {
	var x, y Operand
	if len(arr) > 0 {
		x = arr[0]
	}
	if len(arr) > 1 {
		y = arr[1]
	}
	return NewIn(sys, x, y)
}

// FromObject creates a vector from an {x, y} object; nil fields default to
// zero.
func FromObject(obj Object) (Vector, error) {
	return FromObjectIn(Default(), obj)
}

// FromObjectIn is FromObject on an explicit system.
func FromObjectIn(sys System, obj Object) (Vector, error) {
	return NewIn(sys, obj.X, obj.Y)
}

// system returns the vector's system, falling back to the process default
// so the zero Vector stays usable.
func (v Vector) system() System {
	if v.sys == nil {
		return Default()
	}
	return v.sys
}

// System returns the operator system interpreting the components.
func (v Vector) System() System { return v.system() }

// WithSystem returns a copy of the vector re-normalized onto another
// system. Components cross the boundary in their textual form so the target
// system parses them with its own precision.
func (v Vector) WithSystem(sys System) (Vector, error) {
	if sys == nil {
		sys = Default()
	}
	if sys == v.system() {
		return v, nil
	}
	return NewIn(sys, v.X(), v.Y())
}

// WithSystemName is WithSystem through the name registry. Unrecognized
// names fall back to the default system.
func (v Vector) WithSystemName(name string) (Vector, error) {
	return v.WithSystem(SystemByName(name))
}

// X returns the textual rendering of the x component.
func (v Vector) X() string { return v.system().Format(v.x) }

// Y returns the textual rendering of the y component.
func (v Vector) Y() string { return v.system().Format(v.y) }

// SetX returns a copy with the x component replaced, re-normalized through
// the system's Create.
func (v Vector) SetX(x Operand) (Vector, error) {
	nx, err := v.system().Create(x)
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.x = nx
	out.sys = v.system()
	return out, nil
}

// SetY returns a copy with the y component replaced.
func (v Vector) SetY(y Operand) (Vector, error) {
	ny, err := v.system().Create(y)
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.y = ny
	out.sys = v.system()
	return out, nil
}

// LengthSq returns x*x + y*y as a backend value.
func (v Vector) LengthSq() (Operand, error) {
	sys := v.system()
	xx, err := sys.Multiply(v.x, v.x)
	if err != nil {
		return nil, err
	}
	yy, err := sys.Multiply(v.y, v.y)
	if err != nil {
		return nil, err
	}
	return sys.Plus(xx, yy)
}

// Length returns the vector's length as a backend value.
func (v Vector) Length() (Operand, error) {
	sq, err := v.LengthSq()
	if err != nil {
		return nil, err
	}
	return v.system().Sqrt(sq)
}

// Angle returns atan2(y, x) in radians. Trigonometry is always native
// float64, whichever system backs the components.
func (v Vector) Angle() (float64, error) {
	fx, fy, err := v.floats()
	if err != nil {
		return 0, err
	}
	return gomath.Atan2(fy, fx), nil
}

// AngleDegree returns Angle in degrees.
func (v Vector) AngleDegree() (float64, error) {
	a, err := v.Angle()
	if err != nil {
		return 0, err
	}
	return Radian2Degree(a), nil
}

// VerticalAngle returns atan2(x, y): the angle measured from the vertical
// axis.
func (v Vector) VerticalAngle() (float64, error) {
	fx, fy, err := v.floats()
	if err != nil {
		return 0, err
	}
	return gomath.Atan2(fx, fy), nil
}

// VerticalAngleDegree returns VerticalAngle in degrees.
func (v Vector) VerticalAngleDegree() (float64, error) {
	a, err := v.VerticalAngle()
	if err != nil {
		return 0, err
	}
	return Radian2Degree(a), nil
}

// operandX picks the operand a binary method applies on the x axis: the
// matching coordinate when arg is a Vector, the scalar itself otherwise.
func operandX(arg Operand) Operand {
	if w, ok := arg.(Vector); ok {
		return w.x
	}
	return arg
}

func operandY(arg Operand) Operand {
	if w, ok := arg.(Vector); ok {
		return w.y
	}
	return arg
}

// AddX returns a copy with arg added to the x component. arg may be a
// Vector (its x is used) or a scalar operand.
func (v Vector) AddX(arg Operand) (Vector, error) {
	nx, err := v.system().Plus(v.x, operandX(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.x = nx
	out.sys = v.system()
	return out, nil
}

// AddY returns a copy with arg added to the y component.
func (v Vector) AddY(arg Operand) (Vector, error) {
	ny, err := v.system().Plus(v.y, operandY(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.y = ny
	out.sys = v.system()
	return out, nil
}

// Add returns v + arg, applied as AddX then AddY.
func (v Vector) Add(arg Operand) (Vector, error) {
	out, err := v.AddX(arg)
	if err != nil {
		return Vector{}, err
	}
	return out.AddY(arg)
}

// SubtractX returns a copy with arg subtracted from the x component.
func (v Vector) SubtractX(arg Operand) (Vector, error) {
	nx, err := v.system().Minus(v.x, operandX(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.x = nx
	out.sys = v.system()
	return out, nil
}

// SubtractY returns a copy with arg subtracted from the y component.
func (v Vector) SubtractY(arg Operand) (Vector, error) {
	ny, err := v.system().Minus(v.y, operandY(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.y = ny
	out.sys = v.system()
	return out, nil
}

// Subtract returns v - arg, applied as SubtractX then SubtractY.
func (v Vector) Subtract(arg Operand) (Vector, error) {
	out, err := v.SubtractX(arg)
	if err != nil {
		return Vector{}, err
	}
	return out.SubtractY(arg)
}

// MultiplyX returns a copy with the x component multiplied by arg.
func (v Vector) MultiplyX(arg Operand) (Vector, error) {
	nx, err := v.system().Multiply(v.x, operandX(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.x = nx
	out.sys = v.system()
	return out, nil
}

// MultiplyY returns a copy with the y component multiplied by arg.
func (v Vector) MultiplyY(arg Operand) (Vector, error) {
	ny, err := v.system().Multiply(v.y, operandY(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.y = ny
	out.sys = v.system()
	return out, nil
}

// Multiply returns the componentwise (or scalar) product, applied as
// MultiplyX then MultiplyY.
func (v Vector) Multiply(arg Operand) (Vector, error) {
	out, err := v.MultiplyX(arg)
	if err != nil {
		return Vector{}, err
	}
	return out.MultiplyY(arg)
}

// DivideX returns a copy with the x component divided by arg. Division by
// zero follows the system: Inf/NaN on native, ErrDomain on precise.
func (v Vector) DivideX(arg Operand) (Vector, error) {
	nx, err := v.system().Divide(v.x, operandX(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.x = nx
	out.sys = v.system()
	return out, nil
}

// DivideY returns a copy with the y component divided by arg.
func (v Vector) DivideY(arg Operand) (Vector, error) {
	ny, err := v.system().Divide(v.y, operandY(arg))
	if err != nil {
		return Vector{}, err
	}
	out := v
	out.y = ny
	out.sys = v.system()
	return out, nil
}

// Divide returns the componentwise (or scalar) quotient, applied as
// DivideX then DivideY.
func (v Vector) Divide(arg Operand) (Vector, error) {
	out, err := v.DivideX(arg)
	if err != nil {
		return Vector{}, err
	}
	return out.DivideY(arg)
}

// InvertX returns a copy with the x component negated.
func (v Vector) InvertX() (Vector, error) {
	return v.MultiplyX(-1)
}

// InvertY returns a copy with the y component negated.
func (v Vector) InvertY() (Vector, error) {
	return v.MultiplyY(-1)
}

// Invert returns a copy with both components negated.
func (v Vector) Invert() (Vector, error) {
	out, err := v.InvertX()
	if err != nil {
		return Vector{}, err
	}
	return out.InvertY()
}

// Normalize returns the unit vector in v's direction by dividing v by its
// own length. A zero-length vector inherits the system's zero-division
// behavior: NaN components on native, ErrDomain on precise.
func (v Vector) Normalize() (Vector, error) {
	l, err := v.Length()
	if err != nil {
		return Vector{}, err
	}
	return v.Divide(l)
}

// Norm is an alias for Normalize.
func (v Vector) Norm() (Vector, error) {
	return v.Normalize()
}

// Rotate returns v rotated counter-clockwise by rad radians. cos/sin are
// native float64 and enter the system as scalar operands.
func (v Vector) Rotate(rad float64) (Vector, error) {
	sys := v.system()
	sin, cos := gomath.Sincos(rad)

	xcos, err := sys.Multiply(v.x, cos)
	if err != nil {
		return Vector{}, err
	}
	ysin, err := sys.Multiply(v.y, sin)
	if err != nil {
		return Vector{}, err
	}
	nx, err := sys.Minus(xcos, ysin)
	if err != nil {
		return Vector{}, err
	}

	xsin, err := sys.Multiply(v.x, sin)
	if err != nil {
		return Vector{}, err
	}
	ycos, err := sys.Multiply(v.y, cos)
	if err != nil {
		return Vector{}, err
	}
	ny, err := sys.Plus(xsin, ycos)
	if err != nil {
		return Vector{}, err
	}

	out := v
	out.x = nx
	out.y = ny
	out.sys = sys
	return out, nil
}

// RotateDegree rotates by an angle in degrees. The conversion to radians
// runs through the system's multiply and divide before delegating to
// Rotate.
func (v Vector) RotateDegree(deg Operand) (Vector, error) {
	sys := v.system()
	num, err := sys.Multiply(deg, gomath.Pi)
	if err != nil {
		return Vector{}, err
	}
	rad, err := sys.Divide(num, 180)
	if err != nil {
		return Vector{}, err
	}
	f, err := sys.Float(rad)
	if err != nil {
		return Vector{}, err
	}
	return v.Rotate(f)
}

// Dot returns the dot product x*w.x + y*w.y as a backend value.
func (v Vector) Dot(w Vector) (Operand, error) {
	sys := v.system()
	xx, err := sys.Multiply(v.x, w.x)
	if err != nil {
		return nil, err
	}
	yy, err := sys.Multiply(v.y, w.y)
	if err != nil {
		return nil, err
	}
	return sys.Plus(xx, yy)
}

// Cross returns the 2D cross product x*w.y - y*w.x. Negative means w lies
// clockwise from v, positive counter-clockwise, zero collinear.
func (v Vector) Cross(w Vector) (Operand, error) {
	sys := v.system()
	xy, err := sys.Multiply(v.x, w.y)
	if err != nil {
		return nil, err
	}
	yx, err := sys.Multiply(v.y, w.x)
	if err != nil {
		return nil, err
	}
	return sys.Minus(xy, yx)
}

// ProjectOnto returns the projection of v onto w: w scaled by
// dot(v, w) / lengthSq(w).
func (v Vector) ProjectOnto(w Vector) (Vector, error) {
	dot, err := v.Dot(w)
	if err != nil {
		return Vector{}, err
	}
	lsq, err := w.LengthSq()
	if err != nil {
		return Vector{}, err
	}
	coeff, err := v.system().Divide(dot, lsq)
	if err != nil {
		return Vector{}, err
	}
	return w.Multiply(coeff)
}

// CosAngleBetween returns the cosine of the angle between v and w. The dot
// product is divided by each length in sequence, not by their product; the
// extra rounding step is kept for parity with the original formulation.
func (v Vector) CosAngleBetween(w Vector) (Operand, error) {
	sys := v.system()
	dot, err := v.Dot(w)
	if err != nil {
		return nil, err
	}
	lv, err := v.Length()
	if err != nil {
		return nil, err
	}
	lw, err := w.Length()
	if err != nil {
		return nil, err
	}
	q, err := sys.Divide(dot, lv)
	if err != nil {
		return nil, err
	}
	return sys.Divide(q, lw)
}

// AngleBetween returns the angle between v and w in radians, via native
// acos of CosAngleBetween.
func (v Vector) AngleBetween(w Vector) (float64, error) {
	c, err := v.CosAngleBetween(w)
	if err != nil {
		return 0, err
	}
	f, err := v.system().Float(c)
	if err != nil {
		return 0, err
	}
	return gomath.Acos(f), nil
}

// DistanceX returns the signed difference x - w.x as a backend value.
func (v Vector) DistanceX(w Vector) (Operand, error) {
	return v.system().Minus(v.x, w.x)
}

// DistanceY returns the signed difference y - w.y.
func (v Vector) DistanceY(w Vector) (Operand, error) {
	return v.system().Minus(v.y, w.y)
}

// AbsDistanceX returns |x - w.x|.
func (v Vector) AbsDistanceX(w Vector) (Operand, error) {
	d, err := v.DistanceX(w)
	if err != nil {
		return nil, err
	}
	return v.system().Abs(d)
}

// AbsDistanceY returns |y - w.y|.
func (v Vector) AbsDistanceY(w Vector) (Operand, error) {
	d, err := v.DistanceY(w)
	if err != nil {
		return nil, err
	}
	return v.system().Abs(d)
}

// DistanceSq returns the squared distance between v and w.
func (v Vector) DistanceSq(w Vector) (Operand, error) {
	sys := v.system()
	dx, err := v.DistanceX(w)
	if err != nil {
		return nil, err
	}
	dy, err := v.DistanceY(w)
	if err != nil {
		return nil, err
	}
	dx2, err := sys.Multiply(dx, dx)
	if err != nil {
		return nil, err
	}
	dy2, err := sys.Multiply(dy, dy)
	if err != nil {
		return nil, err
	}
	return sys.Plus(dx2, dy2)
}

// Distance returns the distance between v and w.
func (v Vector) Distance(w Vector) (Operand, error) {
	sq, err := v.DistanceSq(w)
	if err != nil {
		return nil, err
	}
	return v.system().Sqrt(sq)
}

// IsZero reports whether both components equal zero under the system's
// equality.
func (v Vector) IsZero() (bool, error) {
	sys := v.system()
	zx, err := sys.Equal(v.x, 0)
	if err != nil || !zx {
		return false, err
	}
	return sys.Equal(v.y, 0)
}

// IsEqualTo reports per-axis equality with w under the system's equality.
func (v Vector) IsEqualTo(w Vector) (bool, error) {
	sys := v.system()
	ex, err := sys.Equal(v.x, w.x)
	if err != nil || !ex {
		return false, err
	}
	return sys.Equal(v.y, w.y)
}

// String renders "x:<x>, y:<y>".
func (v Vector) String() string {
	return fmt.Sprintf("x:%s, y:%s", v.X(), v.Y())
}

// ToArray returns the components as a two-element array of textual
// operands; FromArray round-trips it.
func (v Vector) ToArray() [2]Operand {
	return [2]Operand{v.X(), v.Y()}
}

// ToObject returns the components as an {x, y} object of textual operands;
// FromObject round-trips it.
func (v Vector) ToObject() Object {
	return Object{X: v.X(), Y: v.Y()}
}

func (v Vector) floats() (float64, float64, error) {
	sys := v.system()
	fx, err := sys.Float(v.x)
	if err != nil {
		return 0, 0, err
	}
	fy, err := sys.Float(v.y)
	if err != nil {
		return 0, 0, err
	}
	return fx, fy, nil
}
