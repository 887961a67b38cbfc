package channelflow

import "github.com/IntroGM-2024/day-3-exercises/utils"

// Closed-form solutions of d²v/dy² = (dP/dx)/eta on [0, L], used to
// verify the discrete solver. The fixed-velocity/fixed-velocity channel
// is the superposition of linear Couette shear between the boundary
// velocities and the Poiseuille parabola.

// AnalyticVelocity evaluates the exact solution with velocities vSurf
// at y=0 and vBott at y=L.
func AnalyticVelocity(eta, dPdx, L, vSurf, vBott, y float64) float64 {
	return dPdx/(2*eta)*y*(y-L) + vSurf + (vBott-vSurf)*y/L
}

// AnalyticStrainRate is the derivative of AnalyticVelocity.
func AnalyticStrainRate(eta, dPdx, L, vSurf, vBott, y float64) float64 {
	return dPdx/(2*eta)*(2*y-L) + (vBott-vSurf)/L
}

// AnalyticVelocityFreeSlipTop evaluates the exact solution with dv/dy=0
// at y=0 and velocity vBott at y=L.
func AnalyticVelocityFreeSlipTop(eta, dPdx, L, vBott, y float64) float64 {
	s := dPdx / eta
	return s*y*y/2 + vBott - s*L*L/2
}

// PoiseuilleExtremum is the velocity at the channel midpoint for a
// channel with both walls held at zero, -(dP/dx / eta) * (L/2)^2 / 2.
func PoiseuilleExtremum(eta, dPdx, L float64) float64 {
	return -dPdx / eta * utils.POW(L/2, 2) / 2
}
