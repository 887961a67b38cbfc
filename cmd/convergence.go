/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/IntroGM-2024/day-3-exercises/channelflow"
	"github.com/IntroGM-2024/day-3-exercises/utils"
)

// ConvergenceCmd represents the convergence command
var ConvergenceCmd = &cobra.Command{
	Use:   "convergence",
	Short: "Grid refinement study against the analytic channel solution",
	Long: `
Solves the free-slip/fixed-velocity channel on a sequence of refined
grids and reports the max nodal error against the closed form solution
together with the observed convergence order,

channelflow convergence `,
	Run: func(cmd *cobra.Command, args []string) {
		eta, _ := cmd.Flags().GetFloat64("eta")
		dPdx, _ := cmd.Flags().GetFloat64("dPdx")
		depth, _ := cmd.Flags().GetFloat64("depth")
		ny, _ := cmd.Flags().GetInt("ny")
		levels, _ := cmd.Flags().GetInt("levels")
		vBott, _ := cmd.Flags().GetFloat64("bottomValue")
		if prof, _ := cmd.Flags().GetBool("cpuprofile"); prof {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		RunConvergence(eta, dPdx, depth, vBott, ny, levels)
	},
}

func init() {
	rootCmd.AddCommand(ConvergenceCmd)
	ConvergenceCmd.Flags().Float64("eta", 1.e19, "dynamic viscosity [Pa s]")
	ConvergenceCmd.Flags().Float64("dPdx", -0.05712, "horizontal pressure gradient [Pa/m]")
	ConvergenceCmd.Flags().Float64("depth", 10.e3, "channel depth [m]")
	ConvergenceCmd.Flags().Float64("bottomValue", -3.17e-10, "bottom boundary velocity [m/s]")
	ConvergenceCmd.Flags().IntP("ny", "n", 5, "node count of the coarsest grid")
	ConvergenceCmd.Flags().IntP("levels", "l", 6, "number of refinement levels, ny doubles per level")
	ConvergenceCmd.Flags().Bool("cpuprofile", false, "write a CPU profile of the study to the working directory")
}

func RunConvergence(eta, dPdx, depth, vBott float64, ny, levels int) {
	var (
		top    = channelflow.BoundaryCondition{Type: channelflow.FreeSlip}
		bottom = channelflow.BoundaryCondition{Type: channelflow.Velocity, Value: vBott}
		errs   = make([]float64, levels)
	)
	fmt.Printf("%8s %14s %10s\n", "ny", "max error", "order")
	for lev := 0; lev < levels; lev++ {
		v, g, err := channelflow.SolveChannelFlow(eta, dPdx, depth, ny, top, bottom)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		errs[lev] = MaxAnalyticError(eta, dPdx, depth, vBott, v, g)
		if lev == 0 {
			fmt.Printf("%8d %14.6e %10s\n", ny, errs[lev], "-")
		} else {
			order := math.Log2(errs[lev-1] / errs[lev])
			fmt.Printf("%8d %14.6e %10.3f\n", ny, errs[lev], order)
		}
		ny = 2*ny - 1 // refine, keeping the old nodes
	}
}

// MaxAnalyticError is the max norm of the nodal error against the
// free-slip-top closed form solution.
func MaxAnalyticError(eta, dPdx, depth, vBott float64, v utils.Vector, g channelflow.Grid) (e float64) {
	for i := 0; i < g.Ny; i++ {
		exact := channelflow.AnalyticVelocityFreeSlipTop(eta, dPdx, depth, vBott, g.Y.AtVec(i))
		if d := math.Abs(v.AtVec(i) - exact); d > e {
			e = d
		}
	}
	return
}
