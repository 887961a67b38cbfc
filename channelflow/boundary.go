package channelflow

import "fmt"

type BCType uint8

const (
	// Velocity fixes the boundary velocity to a prescribed value (no-slip
	// against a moving or stationary wall).
	Velocity BCType = iota
	// FreeSlip fixes the velocity gradient dv/dy to zero at the boundary,
	// discretized with a one-sided first order difference.
	FreeSlip
)

var bcNames = []string{
	"velocity",
	"freeslip",
}

func (t BCType) String() string {
	return bcNames[t]
}

func ParseBCType(label string) (t BCType, err error) {
	for i, name := range bcNames {
		if name == label {
			t = BCType(i)
			return
		}
	}
	err = fmt.Errorf("unknown boundary condition type %q, must be one of %v", label, bcNames)
	return
}

// BoundaryCondition describes one end of the channel. Value is the
// prescribed velocity [m/s] for Velocity conditions and is ignored for
// FreeSlip.
type BoundaryCondition struct {
	Type  BCType
	Value float64
}
