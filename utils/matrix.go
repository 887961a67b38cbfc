package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

type Matrix struct {
	M        *mat.Dense
	readOnly bool
	name     string
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var m *mat.Dense
	if len(dataO) != 0 {
		if len(dataO[0]) != nr*nc {
			err := fmt.Errorf("mismatch in allocation: NewMatrix nr,nc = %v,%v, len(data[0]) = %v\n", nr, nc, len(dataO[0]))
			panic(err)
		}
		m = mat.NewDense(nr, nc, dataO[0])
	} else {
		m = mat.NewDense(nr, nc, make([]float64, nr*nc))
	}
	R = Matrix{
		m,
		false,
		"unnamed - hint: pass a variable name to SetReadOnly()",
	}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m *Matrix) SetReadOnly(name ...string) Matrix {
	if len(name) != 0 {
		m.name = name[0]
	}
	m.readOnly = true
	return *m
}

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		data   = m.M.RawMatrix().Data
		nr, nc = m.Dims()
		dataR  = make([]float64, nr*nc)
	)
	copy(dataR, data)
	R = NewMatrix(nr, nc, dataR)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nc, nr)
	for j := 0; j < nc; j++ {
		for i := 0; i < nr; i++ {
			R.M.Set(j, i, m.M.At(i, j))
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.M.Dims()
		_, ncA = A.M.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return R
}

func (m Matrix) Set(i, j int, val float64) Matrix { // Changes receiver
	m.checkWritable()
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) Scale(a float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	m.checkWritable()
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix { // Changes receiver
	var (
		data = m.M.RawMatrix().Data
	)
	m.checkWritable()
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Row(i int) Vector {
	var (
		_, nc = m.M.Dims()
		vData = make([]float64, nc)
	)
	for j := range vData {
		vData[j] = m.M.At(i, j)
	}
	return NewVector(nc, vData)
}

func (m Matrix) Col(j int) Vector {
	var (
		nr, _ = m.M.Dims()
		vData = make([]float64, nr)
	)
	for i := range vData {
		vData[i] = m.M.At(i, j)
	}
	return NewVector(nr, vData)
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.M.RawMatrix().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// LUSolve solves m * x = b for x using dense LU factorization. The
// receiver is not modified. Returns an error when the factorization
// produces a zero pivot.
func (m Matrix) LUSolve(b Vector) (x Vector, err error) {
	var (
		nr, _ = m.Dims()
		LU    = m.Copy()
	)
	if b.Len() != nr {
		err = fmt.Errorf("dimension mismatch in LUSolve: matrix rows = %v, rhs length = %v", nr, b.Len())
		return
	}
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(LU.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to solve, matrix is singular")
		return
	}
	x = b.Copy()
	rhs := blas64.General{
		Rows:   nr,
		Cols:   1,
		Stride: 1,
		Data:   x.RawVector().Data,
	}
	lapack64.Getrs(blas.NoTrans, LU.RawMatrix(), rhs, iPiv)
	return
}

// ConditionNumber is the ratio of the largest to smallest singular value.
func (m Matrix) ConditionNumber() float64 {
	var svd mat.SVD
	if !svd.Factorize(m.M, mat.SVDThin) {
		return 1e16
	}
	values := svd.Values(nil)
	if len(values) == 0 {
		return 1e16
	}
	minVal := values[len(values)-1] // Singular values are in descending order
	maxVal := values[0]
	if minVal < 1e-16 {
		return 1e16
	}
	return maxVal / minVal
}

func (m Matrix) checkWritable() {
	if m.readOnly {
		err := fmt.Errorf("attempt to write to a read only matrix named: \"%v\"", m.name)
		panic(err)
	}
}
