package channelflow

import (
	"fmt"
	"math"

	"github.com/james-bowman/sparse"
	"gonum.org/v1/gonum/mat"

	"github.com/IntroGM-2024/day-3-exercises/utils"
)

// assembleSparse builds the same operator as assemble in CSR form. The
// matrix is banded with at most three nonzeros per row, so the sparse
// product gives a cheap independent check on the dense solve.
func (c *ChannelFlow) assembleSparse() *sparse.CSR {
	var (
		ny = c.Grid.Ny
	)
	dok := sparse.NewDOK(ny, ny)
	for i := 1; i < ny-1; i++ {
		dok.Set(i, i-1, 1)
		dok.Set(i, i, -2)
		dok.Set(i, i+1, 1)
	}
	switch c.Top.Type {
	case Velocity:
		dok.Set(0, 0, 1)
	case FreeSlip:
		dok.Set(0, 0, -1)
		dok.Set(0, 1, 1)
	}
	switch c.Bottom.Type {
	case Velocity:
		dok.Set(ny-1, ny-1, 1)
	case FreeSlip:
		dok.Set(ny-1, ny-2, -1)
		dok.Set(ny-1, ny-1, 1)
	}
	return dok.ToCSR()
}

// Residual returns the max norm of A*v - b for a candidate solution.
func (c *ChannelFlow) Residual(v utils.Vector) (res float64) {
	if c.B.V == nil {
		c.assemble()
	}
	Av := mat.NewVecDense(c.Grid.Ny, nil)
	Av.MulVec(c.assembleSparse(), v.V)
	for i := 0; i < c.Grid.Ny; i++ {
		if r := math.Abs(Av.AtVec(i) - c.B.AtVec(i)); r > res {
			res = r
		}
	}
	return
}

// Report prints post-solve diagnostics for a solution vector.
func (c *ChannelFlow) Report(v utils.Vector) {
	fmt.Printf("max residual |A*v - b| = %8.3e\n", c.Residual(v))
	fmt.Printf("condition number of A  = %8.3e\n", c.A.ConditionNumber())
}
