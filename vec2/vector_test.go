package vec2

import (
	"errors"
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
)

const tol = 1e-9

func mustNew(t *testing.T, sys System, x, y Operand) Vector {
	t.Helper()
	v, err := NewIn(sys, x, y)
	require.NoError(t, err)
	return v
}

func mustFloat(t *testing.T, sys System, v Operand, err error) float64 {
	t.Helper()
	require.NoError(t, err)
	f, err := sys.Float(v)
	require.NoError(t, err)
	return f
}

func bothSystems(t *testing.T, fn func(t *testing.T, sys System)) {
	t.Helper()
	for _, sys := range []System{Native, Precise} {
		t.Run(sys.Name(), func(t *testing.T) {
			fn(t, sys)
		})
	}
}

func TestConstruction(t *testing.T) {
	t.Run("defaults missing components to zero", func(t *testing.T) {
		v, err := New(nil, nil)
		require.NoError(t, err)
		zero, err := v.IsZero()
		require.NoError(t, err)
		assert.True(t, zero)
	})

	t.Run("from array pads short input", func(t *testing.T) {
		v, err := FromArray([]Operand{7})
		require.NoError(t, err)
		assert.Equal(t, "7", v.X())
		assert.Equal(t, "0", v.Y())

		v, err = FromArray(nil)
		require.NoError(t, err)
		zero, err := v.IsZero()
		require.NoError(t, err)
		assert.True(t, zero)
	})

	t.Run("from object", func(t *testing.T) {
		v, err := FromObject(Object{X: "1.5", Y: 2})
		require.NoError(t, err)
		assert.Equal(t, "1.5", v.X())
		assert.Equal(t, "2", v.Y())

		v, err = FromObject(Object{})
		require.NoError(t, err)
		zero, err := v.IsZero()
		require.NoError(t, err)
		assert.True(t, zero)
	})

	t.Run("accepts numeral text", func(t *testing.T) {
		v, err := New("100", "50")
		require.NoError(t, err)
		assert.Equal(t, "100", v.X())
		assert.Equal(t, "50", v.Y())
	})

	t.Run("rejects malformed text on precise", func(t *testing.T) {
		_, err := NewIn(Precise, "not a number", 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOperand))
	})

	t.Run("zero value vector is usable", func(t *testing.T) {
		var v Vector
		zero, err := v.IsZero()
		require.NoError(t, err)
		assert.True(t, zero)
		assert.Equal(t, "x:0, y:0", v.String())
	})
}

func TestAccessors(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 100, 50)

		assert.Equal(t, "100", v.X())
		assert.Equal(t, "50", v.Y())

		w, err := v.SetX(7)
		require.NoError(t, err)
		assert.Equal(t, "7", w.X())
		assert.Equal(t, "100", v.X(), "receiver must not change")

		w, err = v.SetY("2.5")
		require.NoError(t, err)
		assert.Equal(t, "2.5", w.Y())
		assert.Equal(t, "50", v.Y(), "receiver must not change")
	})
}

func TestScenarios(t *testing.T) {
	// Concrete scenarios on the precise default system.
	t.Run("addX with vector argument", func(t *testing.T) {
		a := mustNew(t, Precise, 100, 50)
		b := mustNew(t, Precise, 20, 30)
		out, err := a.AddX(b)
		require.NoError(t, err)
		assert.Equal(t, "x:120, y:50", out.String())
	})

	t.Run("subtract", func(t *testing.T) {
		a := mustNew(t, Precise, 100, 50)
		b := mustNew(t, Precise, 20, 30)
		out, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Equal(t, "80", out.X())
		assert.Equal(t, "20", out.Y())
	})

	t.Run("dot", func(t *testing.T) {
		a := mustNew(t, Precise, 100, 50)
		b := mustNew(t, Precise, 200, 60)
		d, err := a.Dot(b)
		require.NoError(t, err)
		assert.Equal(t, "23000", Precise.Format(d))
	})

	t.Run("cross", func(t *testing.T) {
		a := mustNew(t, Precise, 100, 50)
		b := mustNew(t, Precise, 200, 60)
		c, err := a.Cross(b)
		require.NoError(t, err)
		assert.Equal(t, "-4000", Precise.Format(c))
	})

	t.Run("normalize", func(t *testing.T) {
		v := mustNew(t, Precise, 3, 4)
		out, err := v.Normalize()
		require.NoError(t, err)
		assert.Equal(t, "0.6", out.X())
		assert.Equal(t, "0.8", out.Y())
	})

	t.Run("rotate pi", func(t *testing.T) {
		v := mustNew(t, Precise, 100, 0)
		out, err := v.Rotate(gomath.Pi)
		require.NoError(t, err)

		fx, fy, err := outFloats(out)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(fx, -100, tol))
		assert.True(t, scalar.EqualWithinAbs(fy, 0, tol))
	})

	t.Run("divide by zero vector diverges per system", func(t *testing.T) {
		one := mustNew(t, Native, 1, 1)
		zero := mustNew(t, Native, 0, 0)
		out, err := one.Divide(zero)
		require.NoError(t, err, "native division by zero must not fail")
		fx, _, err := outFloats(out)
		require.NoError(t, err)
		assert.True(t, gomath.IsInf(fx, 1))

		pone := mustNew(t, Precise, 1, 1)
		pzero := mustNew(t, Precise, 0, 0)
		_, err = pone.Divide(pzero)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDomain))
	})
}

func TestAlgebraicIdentities(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 12, -7)

		t.Run("additive identity", func(t *testing.T) {
			out, err := v.Add(0)
			require.NoError(t, err)
			eq, err := out.IsEqualTo(v)
			require.NoError(t, err)
			assert.True(t, eq)
		})

		t.Run("multiplicative identity", func(t *testing.T) {
			out, err := v.Multiply(1)
			require.NoError(t, err)
			eq, err := out.IsEqualTo(v)
			require.NoError(t, err)
			assert.True(t, eq)
		})

		t.Run("multiply by zero annihilates", func(t *testing.T) {
			out, err := v.Multiply(0)
			require.NoError(t, err)
			zero, err := out.IsZero()
			require.NoError(t, err)
			assert.True(t, zero)
		})

		t.Run("double inversion is identity", func(t *testing.T) {
			once, err := v.Invert()
			require.NoError(t, err)
			twice, err := once.Invert()
			require.NoError(t, err)
			eq, err := twice.IsEqualTo(v)
			require.NoError(t, err)
			assert.True(t, eq)
		})

		t.Run("normalize yields unit length", func(t *testing.T) {
			n, err := v.Normalize()
			require.NoError(t, err)
			nl, err := n.Length()
			l := mustFloat(t, sys, nl, err)
			assert.True(t, scalar.EqualWithinAbs(l, 1, 1e-12))
		})

		t.Run("dot commutes", func(t *testing.T) {
			w := mustNew(t, sys, 3, 9)
			vw, err := v.Dot(w)
			ab := mustFloat(t, sys, vw, err)
			wv, err := w.Dot(v)
			ba := mustFloat(t, sys, wv, err)
			assert.Equal(t, ab, ba)
		})

		t.Run("cross anticommutes", func(t *testing.T) {
			w := mustNew(t, sys, 3, 9)
			vw, err := v.Cross(w)
			ab := mustFloat(t, sys, vw, err)
			wv, err := w.Cross(v)
			ba := mustFloat(t, sys, wv, err)
			assert.Equal(t, ab, -ba)
		})
	})
}

func TestRoundTrips(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, "123.25", -8)

		arr := v.ToArray()
		fromArr, err := FromArrayIn(sys, arr[:])
		require.NoError(t, err)
		eq, err := fromArr.IsEqualTo(v)
		require.NoError(t, err)
		assert.True(t, eq)

		fromObj, err := FromObjectIn(sys, v.ToObject())
		require.NoError(t, err)
		eq, err = fromObj.IsEqualTo(v)
		require.NoError(t, err)
		assert.True(t, eq)
	})
}

func TestBinaryOps(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 8, 6)
		w := mustNew(t, sys, 2, 3)

		t.Run("scalar argument applies to both axes", func(t *testing.T) {
			out, err := v.Add(10)
			require.NoError(t, err)
			assert.Equal(t, "18", out.X())
			assert.Equal(t, "16", out.Y())
		})

		t.Run("vector argument applies per axis", func(t *testing.T) {
			out, err := v.Multiply(w)
			require.NoError(t, err)
			assert.Equal(t, "16", out.X())
			assert.Equal(t, "18", out.Y())
		})

		t.Run("axis variants touch one axis", func(t *testing.T) {
			out, err := v.SubtractY(w)
			require.NoError(t, err)
			assert.Equal(t, "8", out.X())
			assert.Equal(t, "3", out.Y())
		})

		t.Run("divide", func(t *testing.T) {
			out, err := v.Divide(2)
			require.NoError(t, err)
			assert.Equal(t, "4", out.X())
			assert.Equal(t, "3", out.Y())
		})

		t.Run("arguments stay unmodified", func(t *testing.T) {
			_, err := v.Add(w)
			require.NoError(t, err)
			assert.Equal(t, "8", v.X())
			assert.Equal(t, "6", v.Y())
			assert.Equal(t, "2", w.X())
			assert.Equal(t, "3", w.Y())
		})
	})
}

func TestAngles(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 1, 1)

		a, err := v.Angle()
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(a, gomath.Pi/4, tol))

		deg, err := v.AngleDegree()
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(deg, 45, tol))

		right := mustNew(t, sys, 1, 0)
		va, err := right.VerticalAngle()
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(va, gomath.Pi/2, tol))

		vdeg, err := right.VerticalAngleDegree()
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(vdeg, 90, tol))
	})
}

func TestRotateDegree(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 100, 0)
		out, err := v.RotateDegree(90)
		require.NoError(t, err)

		fx, fy, err := outFloats(out)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(fx, 0, tol))
		assert.True(t, scalar.EqualWithinAbs(fy, 100, tol))
	})
}

func TestProjectOnto(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 3, 4)
		axis := mustNew(t, sys, 1, 0)

		out, err := v.ProjectOnto(axis)
		require.NoError(t, err)
		assert.Equal(t, "3", out.X())
		assert.Equal(t, "0", out.Y())
	})
}

func TestAngleBetween(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		x := mustNew(t, sys, 1, 0)
		y := mustNew(t, sys, 0, 1)

		cos, err := x.CosAngleBetween(y)
		c := mustFloat(t, sys, cos, err)
		assert.True(t, scalar.EqualWithinAbs(c, 0, tol))

		a, err := x.AngleBetween(y)
		require.NoError(t, err)
		assert.True(t, scalar.EqualWithinAbs(a, gomath.Pi/2, tol))
	})
}

func TestDistances(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		a := mustNew(t, sys, 0, 0)
		b := mustNew(t, sys, 3, 4)

		t.Run("signed per-axis distance", func(t *testing.T) {
			ox, err := a.DistanceX(b)
			assert.Equal(t, -3.0, mustFloat(t, sys, ox, err))
			oy, err := a.DistanceY(b)
			assert.Equal(t, -4.0, mustFloat(t, sys, oy, err))
		})

		t.Run("absolute per-axis distance", func(t *testing.T) {
			ox, err := a.AbsDistanceX(b)
			assert.Equal(t, 3.0, mustFloat(t, sys, ox, err))
			oy, err := a.AbsDistanceY(b)
			assert.Equal(t, 4.0, mustFloat(t, sys, oy, err))
		})

		t.Run("euclidean distance", func(t *testing.T) {
			sq, err := a.DistanceSq(b)
			assert.Equal(t, 25.0, mustFloat(t, sys, sq, err))
			d, err := a.Distance(b)
			assert.Equal(t, 5.0, mustFloat(t, sys, d, err))
		})
	})
}

func TestLength(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		v := mustNew(t, sys, 3, 4)

		sq, err := v.LengthSq()
		require.NoError(t, err)
		assert.Equal(t, "25", sys.Format(sq))

		l, err := v.Length()
		require.NoError(t, err)
		assert.Equal(t, "5", sys.Format(l))
	})
}

func TestEqualityPredicates(t *testing.T) {
	bothSystems(t, func(t *testing.T, sys System) {
		a := mustNew(t, sys, 2, 3)
		b := mustNew(t, sys, "2", "3")
		c := mustNew(t, sys, 2, 4)

		eq, err := a.IsEqualTo(b)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = a.IsEqualTo(c)
		require.NoError(t, err)
		assert.False(t, eq)

		zero := mustNew(t, sys, 0, 0)
		isZero, err := zero.IsZero()
		require.NoError(t, err)
		assert.True(t, isZero)

		isZero, err = a.IsZero()
		require.NoError(t, err)
		assert.False(t, isZero)
	})
}

func TestNormalizeZeroVector(t *testing.T) {
	t.Run("native yields NaN silently", func(t *testing.T) {
		v := mustNew(t, Native, 0, 0)
		out, err := v.Normalize()
		require.NoError(t, err)
		fx, fy, err := outFloats(out)
		require.NoError(t, err)
		assert.True(t, gomath.IsNaN(fx))
		assert.True(t, gomath.IsNaN(fy))
	})

	t.Run("precise fails with domain error", func(t *testing.T) {
		v := mustNew(t, Precise, 0, 0)
		_, err := v.Normalize()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDomain))
	})
}

func TestNativeInvalidValuesPropagate(t *testing.T) {
	v := mustNew(t, Native, 1, 1)
	zero := mustNew(t, Native, 0, 0)

	inf, err := v.Divide(zero)
	require.NoError(t, err)

	// Arithmetic with the invalid value stays invalid, comparisons are false.
	sum, err := inf.Add(1)
	require.NoError(t, err)
	fx, _, err := outFloats(sum)
	require.NoError(t, err)
	assert.True(t, gomath.IsInf(fx, 1))

	nan, err := zero.Divide(zero)
	require.NoError(t, err)
	eq, err := nan.IsEqualTo(nan)
	require.NoError(t, err)
	assert.False(t, eq, "NaN never compares equal")
}

func TestWithSystem(t *testing.T) {
	v := mustNew(t, Precise, "100.5", 50)

	moved, err := v.WithSystem(Native)
	require.NoError(t, err)
	assert.Equal(t, NameNative, moved.System().Name())
	assert.Equal(t, "100.5", moved.X())
	assert.Equal(t, NamePrecise, v.System().Name(), "receiver keeps its system")

	back, err := moved.WithSystemName(NamePrecise)
	require.NoError(t, err)
	eq, err := back.IsEqualTo(v)
	require.NoError(t, err)
	assert.True(t, eq)

	t.Run("unknown name falls back to default", func(t *testing.T) {
		out, err := v.WithSystemName("no-such-system")
		require.NoError(t, err)
		assert.Equal(t, Default().Name(), out.System().Name())
	})
}

func TestViews(t *testing.T) {
	v := mustNew(t, Precise, 120, 50)

	assert.Equal(t, "x:120, y:50", v.String())
	assert.Equal(t, [2]Operand{"120", "50"}, v.ToArray())
	assert.Equal(t, Object{X: "120", Y: "50"}, v.ToObject())
}

func outFloats(v Vector) (float64, float64, error) {
	return v.floats()
}
