package vec2

import (
	"errors"
	gomath "math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemRegistry(t *testing.T) {
	t.Run("known names resolve", func(t *testing.T) {
		assert.Equal(t, NameNative, SystemByName(NameNative).Name())
		assert.Equal(t, NamePrecise, SystemByName(NamePrecise).Name())
	})

	t.Run("unknown name falls back to default", func(t *testing.T) {
		sys := SystemByName("presice") // typo on purpose
		assert.Equal(t, Default().Name(), sys.Name())
	})

	t.Run("strict lookup reports misses", func(t *testing.T) {
		_, ok := LookupSystem("presice")
		assert.False(t, ok)

		sys, ok := LookupSystem(NameNative)
		require.True(t, ok)
		assert.Equal(t, NameNative, sys.Name())
	})

	t.Run("default starts precise", func(t *testing.T) {
		assert.Equal(t, NamePrecise, Default().Name())
	})

	t.Run("set default affects new vectors only", func(t *testing.T) {
		before := mustNew(t, nil, 1, 2)
		SetDefault(Native)
		defer SetDefault(Precise)

		after, err := New(1, 2)
		require.NoError(t, err)
		assert.Equal(t, NameNative, after.System().Name())
		assert.Equal(t, NamePrecise, before.System().Name())
	})

	t.Run("nil default is ignored", func(t *testing.T) {
		SetDefault(nil)
		assert.NotNil(t, Default())
	})
}

func TestNativeSystem(t *testing.T) {
	t.Run("create coerces all operand forms", func(t *testing.T) {
		for _, tc := range []struct {
			in   Operand
			want float64
		}{
			{nil, 0},
			{float64(2.5), 2.5},
			{float32(0.5), 0.5},
			{int(-3), -3},
			{int64(9), 9},
			{uint32(4), 4},
			{" 12.25 ", 12.25},
			{big.NewFloat(1.5), 1.5},
		} {
			got, err := Native.Create(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		}
	})

	t.Run("malformed text becomes NaN, not an error", func(t *testing.T) {
		got, err := Native.Create("twelve")
		require.NoError(t, err)
		assert.True(t, gomath.IsNaN(got.(float64)))
	})

	t.Run("division by zero yields infinity", func(t *testing.T) {
		got, err := Native.Divide(1, 0)
		require.NoError(t, err)
		assert.True(t, gomath.IsInf(got.(float64), 1))

		got, err = Native.Divide(0, 0)
		require.NoError(t, err)
		assert.True(t, gomath.IsNaN(got.(float64)))
	})

	t.Run("sqrt of negative yields NaN", func(t *testing.T) {
		got, err := Native.Sqrt(-4)
		require.NoError(t, err)
		assert.True(t, gomath.IsNaN(got.(float64)))
	})

	t.Run("exact equality", func(t *testing.T) {
		eq, err := Native.Equal("2.5", 2.5)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = Native.Equal(2.5, 2.5000001)
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("format renders plain decimal", func(t *testing.T) {
		assert.Equal(t, "120", Native.Format(120))
		assert.Equal(t, "-0.5", Native.Format(-0.5))
	})
}

func TestPreciseSystem(t *testing.T) {
	t.Run("create coerces all operand forms", func(t *testing.T) {
		for _, tc := range []struct {
			in   Operand
			want string
		}{
			{nil, "0"},
			{float64(2.5), "2.5"},
			{int(-3), "-3"},
			{int64(9), "9"},
			{uint64(4), "4"},
			{" 12.25 ", "12.25"},
			{big.NewFloat(1.5), "1.5"},
		} {
			got, err := Precise.Create(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, Precise.Format(got))
		}
	})

	t.Run("malformed text fails", func(t *testing.T) {
		_, err := Precise.Create("twelve")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOperand))
	})

	t.Run("unsupported type fails", func(t *testing.T) {
		_, err := Precise.Create(struct{}{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrOperand))
	})

	t.Run("arithmetic", func(t *testing.T) {
		sum, err := Precise.Plus("1.25", "2.75")
		require.NoError(t, err)
		assert.Equal(t, "4", Precise.Format(sum))

		diff, err := Precise.Minus(10, "2.5")
		require.NoError(t, err)
		assert.Equal(t, "7.5", Precise.Format(diff))

		prod, err := Precise.Multiply("1.5", 4)
		require.NoError(t, err)
		assert.Equal(t, "6", Precise.Format(prod))

		quot, err := Precise.Divide(10, 4)
		require.NoError(t, err)
		assert.Equal(t, "2.5", Precise.Format(quot))
	})

	t.Run("division by zero is a domain error", func(t *testing.T) {
		_, err := Precise.Divide(1, 0)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDomain))
	})

	t.Run("sqrt of negative is a domain error", func(t *testing.T) {
		_, err := Precise.Sqrt(-4)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDomain))

		root, err := Precise.Sqrt(16)
		require.NoError(t, err)
		assert.Equal(t, "4", Precise.Format(root))
	})

	t.Run("abs", func(t *testing.T) {
		got, err := Precise.Abs(-5)
		require.NoError(t, err)
		assert.Equal(t, "5", Precise.Format(got))
	})

	t.Run("exact decimal equality", func(t *testing.T) {
		eq, err := Precise.Equal("2.5", 2.5)
		require.NoError(t, err)
		assert.True(t, eq)

		eq, err = Precise.Equal("2.5", "2.25")
		require.NoError(t, err)
		assert.False(t, eq)
	})

	t.Run("configurable digits", func(t *testing.T) {
		s := NewPrecise(50)
		assert.Equal(t, 50, s.Digits())

		// Non-positive digit counts fall back to the default.
		s = NewPrecise(0)
		assert.Equal(t, DefaultDigits, s.Digits())
	})
}

func TestAngleHelpers(t *testing.T) {
	assert.InDelta(t, 180.0, Radian2Degree(gomath.Pi), 1e-12)
	assert.InDelta(t, gomath.Pi/2, Degree2Radian(90), 1e-12)
	assert.InDelta(t, 45.0, Radian2Degree(Degree2Radian(45)), 1e-12)
}
