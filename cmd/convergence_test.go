package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IntroGM-2024/day-3-exercises/channelflow"
)

func TestConvergenceFreeSlipTop(t *testing.T) {
	// The one sided free-slip discretization is first order: halving dy
	// should roughly halve the error against the closed form solution
	var (
		top    = channelflow.BoundaryCondition{Type: channelflow.FreeSlip}
		bottom = channelflow.BoundaryCondition{Type: channelflow.Velocity, Value: -3.17e-10}
		eta    = 1.e19
		dPdx   = -0.05712
		depth  = 10.e3
	)
	vCoarse, gCoarse, err := channelflow.SolveChannelFlow(eta, dPdx, depth, 5, top, bottom)
	require.NoError(t, err)
	vFine, gFine, err := channelflow.SolveChannelFlow(eta, dPdx, depth, 9, top, bottom)
	require.NoError(t, err)
	eCoarse := MaxAnalyticError(eta, dPdx, depth, bottom.Value, vCoarse, gCoarse)
	eFine := MaxAnalyticError(eta, dPdx, depth, bottom.Value, vFine, gFine)
	assert.Greater(t, eCoarse, eFine)
	assert.Greater(t, eCoarse/eFine, 1.5)
	assert.Less(t, eCoarse/eFine, 3.)
}
