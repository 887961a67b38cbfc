package channelflow

import (
	"github.com/IntroGM-2024/day-3-exercises/utils"
)

// StrainRateField holds the shear strain rate dvx/dy at the Ny-1 cell
// midpoints of a grid.
type StrainRateField struct {
	Y    utils.Vector // midpoint depth coordinates [m]
	Rate utils.Vector // strain rate [1/s]
}

// ComputeStrainRate differentiates a nodal velocity field with central
// differences between adjacent nodes.
func ComputeStrainRate(v utils.Vector, g Grid) (e StrainRateField, err error) {
	if v.Len() < 2 {
		err = invalidConfigf("velocity field has %d nodes, need at least 2 to differentiate", v.Len())
		return
	}
	if v.Len() != g.Ny {
		err = invalidConfigf("velocity field has %d nodes, grid has %d", v.Len(), g.Ny)
		return
	}
	e = StrainRateField{
		Y:    g.Midpoints(),
		Rate: utils.NewVector(g.Ny - 1),
	}
	data := e.Rate.RawVector().Data
	for i := range data {
		data[i] = (v.AtVec(i+1) - v.AtVec(i)) / g.Dy
	}
	return
}
