package channelflow

import (
	"github.com/IntroGM-2024/day-3-exercises/utils"
)

// Grid is an evenly spaced set of Ny depth coordinates over [0, Depth].
// Immutable once constructed.
type Grid struct {
	Ny    int
	Depth float64 // channel depth [m]
	Dy    float64 // node spacing [m]
	Y     utils.Vector
}

func NewGrid(depth float64, ny int) (g Grid) {
	g = Grid{
		Ny:    ny,
		Depth: depth,
		Dy:    depth / float64(ny-1),
		Y:     utils.NewVector(ny).Linspace(0, depth),
	}
	return
}

// Midpoints returns the Ny-1 coordinates halfway between adjacent nodes,
// where strain rates are located.
func (g Grid) Midpoints() (ym utils.Vector) {
	ym = utils.NewVector(g.Ny - 1)
	data := ym.RawVector().Data
	for i := range data {
		data[i] = 0.5 * (g.Y.AtVec(i) + g.Y.AtVec(i+1))
	}
	return
}
