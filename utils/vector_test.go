package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	N := 3
	v1 := NewVector(N).Set(1)
	require.Equal(t, 1., v1.V.RawVector().Data[N-1])
	v1.Set(2)
	require.Equal(t, 2., v1.V.RawVector().Data[N-1])

	// Linspace
	{
		req := NewVector(2).Linspace(-1, 1)
		assert.Equal(t, -1., req.AtVec(0))
		assert.Equal(t, 1., req.AtVec(1))
		req = NewVector(5).Linspace(0, 10.e3)
		assert.Equal(t, 0., req.AtVec(0))
		assert.Equal(t, 2500., req.AtVec(1))
		assert.Equal(t, 10.e3, req.AtVec(4))
		req = NewVector(1).Linspace(3, 7)
		assert.Equal(t, 3., req.AtVec(0))
	}
	// Scale, AddScalar, Subtract, Apply
	{
		v := NewVector(3, []float64{1, 2, 3})
		v.Scale(2)
		require.Equal(t, []float64{2, 4, 6}, v.RawVector().Data)
		v.AddScalar(-1)
		require.Equal(t, []float64{1, 3, 5}, v.RawVector().Data)
		v.Subtract(NewVector(3, []float64{1, 1, 1}))
		require.Equal(t, []float64{0, 2, 4}, v.RawVector().Data)
		v.Apply(func(val float64) float64 { return val * val })
		require.Equal(t, []float64{0, 4, 16}, v.RawVector().Data)
		assert.Equal(t, 0., v.Min())
		assert.Equal(t, 16., v.Max())
	}
	// Copy is independent of the source
	{
		v := NewVector(2, []float64{1, 2})
		w := v.Copy().Scale(10)
		require.Equal(t, []float64{1, 2}, v.RawVector().Data)
		require.Equal(t, []float64{10, 20}, w.RawVector().Data)
	}
	// ToMatrix is a column
	{
		m := NewVector(3, []float64{1, 2, 3}).ToMatrix()
		nr, nc := m.Dims()
		require.Equal(t, 3, nr)
		require.Equal(t, 1, nc)
		assert.Equal(t, 2., m.At(1, 0))
	}
	// allocation mismatch panics
	assert.Panics(t, func() { NewVector(2, []float64{1, 2, 3}) })
}

func TestMathHelpers(t *testing.T) {
	require.Equal(t, []float64{2, 2, 2}, ConstArray(3, 2))
	assert.Equal(t, 8., POW(2, 3))
	assert.Equal(t, 0.25, POW(2, -2))
	assert.Equal(t, 1., POW(5, 0))
}
