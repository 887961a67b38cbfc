package utils

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestMatrix(t *testing.T) {
	// Basics: construction, Set/At, Copy independence
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		assert.Equal(t, 1., A.At(0, 0))
		assert.Equal(t, 4., A.At(1, 1))
		B := A.Copy()
		B.Set(0, 0, 10)
		assert.Equal(t, 1., A.At(0, 0))
		assert.Equal(t, 10., B.At(0, 0))
		assert.Equal(t, 4., A.Max())
		assert.Equal(t, 1., A.Min())
	}
	// Mul and Transpose
	{
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		I := NewMatrix(2, 2, []float64{1, 0, 0, 1})
		AI := A.Mul(I)
		require.Equal(t, A.RawMatrix().Data, AI.RawMatrix().Data)
		At := A.Transpose()
		assert.Equal(t, 3., At.At(0, 1))
		assert.Equal(t, 2., At.At(1, 0))
	}
	// Row and Col views
	{
		A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		require.Equal(t, []float64{4, 5, 6}, A.Row(1).RawVector().Data)
		require.Equal(t, []float64{2, 5}, A.Col(1).RawVector().Data)
	}
	// Read only guard
	{
		A := NewMatrix(2, 2)
		A.SetReadOnly("A")
		assert.Panics(t, func() { A.Set(0, 0, 1) })
	}
}

func TestMatrixLUSolve(t *testing.T) {
	A := NewMatrix(2, 2, []float64{2, 1, 1, 3})
	b := NewVector(2, []float64{3, 5})
	x, err := A.LUSolve(b)
	require.NoError(t, err)
	fmt.Printf("x = \n%v\n", mat.Formatted(x, mat.Squeeze()))
	assert.True(t, nearVal(x.AtVec(0), 0.8))
	assert.True(t, nearVal(x.AtVec(1), 1.4))
	// receiver and rhs untouched
	assert.Equal(t, 2., A.At(0, 0))
	assert.Equal(t, 3., b.AtVec(0))

	// singular matrix is reported, not solved
	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.LUSolve(b)
	require.Error(t, err)

	// dimension mismatch
	_, err = A.LUSolve(NewVector(3))
	require.Error(t, err)
}

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	Ainv, err := A.Inverse()
	require.NoError(t, err)
	AAinv := A.Mul(Ainv)
	assert.True(t, nearVal(AAinv.At(0, 0), 1))
	assert.True(t, nearVal(AAinv.At(1, 1), 1))
	assert.True(t, math.Abs(AAinv.At(0, 1)) < 1.e-14)

	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.Inverse()
	require.Error(t, err)
}

func TestMatrixConditionNumber(t *testing.T) {
	I := NewMatrix(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
	assert.True(t, nearVal(I.ConditionNumber(), 1))

	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	assert.Greater(t, S.ConditionNumber(), 1.e15)
}

func nearVal(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*(math.Abs(a)+1) {
		l = true
	}
	return
}
