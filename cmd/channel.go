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
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/IntroGM-2024/day-3-exercises/InputParameters"
	"github.com/IntroGM-2024/day-3-exercises/channelflow"
)

// ChannelCmd represents the channel command
var ChannelCmd = &cobra.Command{
	Use:   "channel",
	Short: "Solve a pressure driven viscous channel and its strain rate profile",
	Long: `
Assembles the [1,-2,1] finite difference system for d²vx/dy² = (dP/dx)/eta
with the requested boundary conditions, solves it and prints the velocity
and shear strain rate profiles,

channelflow channel `,
	Run: func(cmd *cobra.Command, args []string) {
		cp := &ChannelModel{}
		cp.Eta, _ = cmd.Flags().GetFloat64("eta")
		cp.DPdx, _ = cmd.Flags().GetFloat64("dPdx")
		cp.Depth, _ = cmd.Flags().GetFloat64("depth")
		cp.Ny, _ = cmd.Flags().GetInt("ny")
		cp.TopType, _ = cmd.Flags().GetString("topType")
		cp.TopValue, _ = cmd.Flags().GetFloat64("topValue")
		cp.BottomType, _ = cmd.Flags().GetString("bottomType")
		cp.BottomValue, _ = cmd.Flags().GetFloat64("bottomValue")
		cp.Graph, _ = cmd.Flags().GetBool("graph")
		delay, _ := cmd.Flags().GetInt("delay")
		cp.Delay = time.Duration(delay)
		if inputFile, _ := cmd.Flags().GetString("input"); inputFile != "" {
			if err := cp.LoadInputFile(inputFile); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}
		RunChannel(cp)
	},
}

func init() {
	rootCmd.AddCommand(ChannelCmd)
	ChannelCmd.Flags().Float64("eta", 1.e19, "dynamic viscosity [Pa s]")
	ChannelCmd.Flags().Float64("dPdx", -0.05712, "horizontal pressure gradient [Pa/m]")
	ChannelCmd.Flags().Float64("depth", 10.e3, "channel depth [m]")
	ChannelCmd.Flags().IntP("ny", "n", 5, "number of grid nodes")
	ChannelCmd.Flags().String("topType", "velocity", "top boundary condition: velocity or freeslip")
	ChannelCmd.Flags().Float64("topValue", 0, "top boundary velocity [m/s]")
	ChannelCmd.Flags().String("bottomType", "velocity", "bottom boundary condition: velocity or freeslip")
	ChannelCmd.Flags().Float64("bottomValue", -3.17e-10, "bottom boundary velocity [m/s]")
	ChannelCmd.Flags().StringP("input", "i", "", "YAML input parameter file, overrides the numeric flags")
	ChannelCmd.Flags().Bool("graph", false, "display a graph of the velocity profile")
	ChannelCmd.Flags().IntP("delay", "d", 2000, "milliseconds to keep the graph open")
}

type ChannelModel struct {
	Eta, DPdx, Depth      float64
	Ny                    int
	TopType, BottomType   string
	TopValue, BottomValue float64
	Graph                 bool
	Delay                 time.Duration
}

// LoadInputFile replaces the model parameters with those from a YAML
// parameter file.
func (cp *ChannelModel) LoadInputFile(fileName string) (err error) {
	var data []byte
	if data, err = os.ReadFile(fileName); err != nil {
		return
	}
	ip := &InputParameters.ChannelParameters{}
	if err = ip.Parse(data); err != nil {
		return
	}
	ip.Print()
	cp.Eta = ip.Eta
	cp.DPdx = ip.DPdx
	cp.Depth = ip.Depth
	cp.Ny = ip.Ny
	if bc, ok := ip.BCs["Top"]; ok {
		cp.TopType, cp.TopValue = bc.Type, bc.Value
	}
	if bc, ok := ip.BCs["Bottom"]; ok {
		cp.BottomType, cp.BottomValue = bc.Type, bc.Value
	}
	return
}

func (cp *ChannelModel) BoundaryConditions() (top, bottom channelflow.BoundaryCondition, err error) {
	var tt, bt channelflow.BCType
	if tt, err = channelflow.ParseBCType(cp.TopType); err != nil {
		return
	}
	if bt, err = channelflow.ParseBCType(cp.BottomType); err != nil {
		return
	}
	top = channelflow.BoundaryCondition{Type: tt, Value: cp.TopValue}
	bottom = channelflow.BoundaryCondition{Type: bt, Value: cp.BottomValue}
	return
}

func RunChannel(cp *ChannelModel) {
	top, bottom, err := cp.BoundaryConditions()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	c, err := channelflow.NewChannelFlow(cp.Eta, cp.DPdx, cp.Depth, cp.Ny, top, bottom)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	c.Run(cp.Graph, cp.Delay*time.Millisecond)
}
