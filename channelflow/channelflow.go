package channelflow

import (
	"fmt"
	"math"
	"time"

	"github.com/IntroGM-2024/day-3-exercises/utils"
)

// SecondsPerYear converts velocities from m/s to m/yr for display.
const SecondsPerYear = 60 * 60 * 24 * 365.25

// ChannelFlow solves the 1-D Stokes equation for pressure driven flow in
// a viscous channel,
//
//	d²vx/dy² = (dP/dx) / eta
//
// discretized with the second order stencil [1, -2, 1] on an evenly
// spaced grid. Boundary rows encode either a fixed velocity or a
// free-slip condition at each end of the channel.
type ChannelFlow struct {
	Eta         float64 // dynamic viscosity [Pa s]
	DPdx        float64 // horizontal pressure gradient [Pa/m]
	Top, Bottom BoundaryCondition
	Grid        Grid

	// Assembled by Solve, retained for Residual and Report
	A utils.Matrix
	B utils.Vector
}

func NewChannelFlow(eta, dPdx, depth float64, ny int, top, bottom BoundaryCondition) (c *ChannelFlow, err error) {
	switch {
	case ny < 2:
		err = invalidConfigf("ny = %d, need at least the two boundary nodes", ny)
		return
	case depth <= 0:
		err = invalidConfigf("depth = %g, must be positive", depth)
		return
	case eta <= 0:
		err = invalidConfigf("eta = %g, must be positive", eta)
		return
	}
	if top.Type == FreeSlip && bottom.Type == FreeSlip {
		// dv/dy = 0 at both ends leaves the velocity determined only up
		// to an additive constant
		err = &SingularSystemError{Reason: "free-slip at both boundaries, no Dirichlet anchor"}
		return
	}
	c = &ChannelFlow{
		Eta:    eta,
		DPdx:   dPdx,
		Top:    top,
		Bottom: bottom,
		Grid:   NewGrid(depth, ny),
	}
	return
}

// assemble fills the dense coefficient matrix and right hand side.
func (c *ChannelFlow) assemble() {
	var (
		ny  = c.Grid.Ny
		dy  = c.Grid.Dy
		src = c.DPdx / c.Eta * dy * dy
	)
	c.A = utils.NewMatrix(ny, ny)
	c.B = utils.NewVector(ny, utils.ConstArray(ny, src))
	for i := 1; i < ny-1; i++ {
		c.A.Set(i, i-1, 1)
		c.A.Set(i, i, -2)
		c.A.Set(i, i+1, 1)
	}
	switch c.Top.Type {
	case Velocity:
		c.A.Set(0, 0, 1)
		c.B.V.SetVec(0, c.Top.Value)
	case FreeSlip:
		// one-sided (v1 - v0)/dy = 0
		c.A.Set(0, 0, -1)
		c.A.Set(0, 1, 1)
		c.B.V.SetVec(0, 0)
	}
	switch c.Bottom.Type {
	case Velocity:
		c.A.Set(ny-1, ny-1, 1)
		c.B.V.SetVec(ny-1, c.Bottom.Value)
	case FreeSlip:
		c.A.Set(ny-1, ny-2, -1)
		c.A.Set(ny-1, ny-1, 1)
		c.B.V.SetVec(ny-1, 0)
	}
}

// Solve assembles the linear system and returns the nodal velocities.
// No partial results: on error the returned vector is zero valued.
func (c *ChannelFlow) Solve() (v utils.Vector, err error) {
	c.assemble()
	if v, err = c.A.LUSolve(c.B); err != nil {
		v = utils.Vector{}
		err = &SingularSystemError{Reason: err.Error()}
	}
	return
}

// SolveChannelFlow is the one-call surface: validate, assemble, solve.
func SolveChannelFlow(eta, dPdx, depth float64, ny int, top, bottom BoundaryCondition) (v utils.Vector, g Grid, err error) {
	var c *ChannelFlow
	if c, err = NewChannelFlow(eta, dPdx, depth, ny, top, bottom); err != nil {
		return
	}
	if v, err = c.Solve(); err != nil {
		return
	}
	g = c.Grid
	return
}

// Run solves the channel and prints the velocity and strain rate
// profiles, optionally displaying them as line charts.
func (c *ChannelFlow) Run(graph bool, graphDelay ...time.Duration) {
	fmt.Printf("Orogenic channel flow\n")
	fmt.Printf("eta = %8.3g Pa s, dP/dx = %8.5g Pa/m, depth = %8.5g m, ny = %d\n",
		c.Eta, c.DPdx, c.Grid.Depth, c.Grid.Ny)
	fmt.Printf("top BC: %s (%g m/s), bottom BC: %s (%g m/s)\n\n",
		c.Top.Type, c.Top.Value, c.Bottom.Type, c.Bottom.Value)

	v, err := c.Solve()
	if err != nil {
		panic(err)
	}
	e, err := ComputeStrainRate(v, c.Grid)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%12s %16s %16s\n", "y [m]", "vx [m/s]", "vx [m/yr]")
	for i := 0; i < c.Grid.Ny; i++ {
		fmt.Printf("%12.2f %16.6e %16.6e\n",
			c.Grid.Y.AtVec(i), v.AtVec(i), v.AtVec(i)*SecondsPerYear)
	}
	fmt.Printf("\n%12s %16s\n", "y [m]", "dvx/dy [1/s]")
	for i := 0; i < e.Y.Len(); i++ {
		fmt.Printf("%12.2f %16.6e\n", e.Y.AtVec(i), e.Rate.AtVec(i))
	}
	fmt.Printf("\n")
	c.Report(v)

	if graph {
		delay := 2 * time.Second
		if len(graphDelay) != 0 {
			delay = graphDelay[0]
		}
		c.plot(v, e, delay)
	}
}

func (c *ChannelFlow) plot(v utils.Vector, e StrainRateField, delay time.Duration) {
	var (
		vyr  = v.Copy().Scale(SecondsPerYear)
		ymin = c.Grid.Y.AtVec(0)
		ymax = c.Grid.Y.AtVec(c.Grid.Ny - 1)
		pad  = 0.1 * math.Max(math.Abs(vyr.Min()), math.Abs(vyr.Max()))
	)
	if pad == 0 {
		pad = 1
	}
	lc := utils.NewLineChart(1920, 1280, ymin, ymax, vyr.Min()-pad, vyr.Max()+pad)
	lc.Plot(delay, c.Grid.Y.RawVector().Data, vyr.RawVector().Data, 0.7, "vx [m/yr]")

	ePad := 0.1 * math.Max(math.Abs(e.Rate.Min()), math.Abs(e.Rate.Max()))
	if ePad == 0 {
		ePad = 1
	}
	le := utils.NewLineChart(1920, 1280, ymin, ymax, e.Rate.Min()-ePad, e.Rate.Max()+ePad)
	le.Plot(delay, e.Y.RawVector().Data, e.Rate.RawVector().Data, -0.7, "dvx/dy [1/s]")
}
