// This file is part of Gopherboy.
//
// Gopherboy is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherboy is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherboy.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/monomyth/gopherboy/cartridgeloader"
	"github.com/monomyth/gopherboy/hardware"
	"github.com/monomyth/gopherboy/logger"
	"github.com/monomyth/gopherboy/monitor"
	"github.com/monomyth/gopherboy/statsview"
)

// prepare creates a console with the named cartridge attached.
func prepare(filename string) (*hardware.DMG, error) {
	dmg := hardware.NewDMG()

	cart := cartridgeloader.NewLoader(filename)
	if err := dmg.AttachCartridge(&cart); err != nil {
		return nil, err
	}

	return dmg, nil
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "gopherboy",
		Short:         "Gopherboy, a bus-level emulation of the Game Boy CPU",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// run command
	var runTicks int
	var runEchoLog bool
	var runStats bool

	runCmd := &cobra.Command{
		Use:   "run <cartridge>",
		Short: "Run a cartridge for a number of clock ticks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if runEchoLog {
				logger.SetEcho(os.Stderr, false)
			}
			if runStats {
				if statsview.Available() {
					statsview.Launch(os.Stdout)
				} else {
					fmt.Println("statsview not in this build (build with the statsview tag)")
				}
			}

			dmg, err := prepare(args[0])
			if err != nil {
				return err
			}

			for i := 0; i < runTicks; i++ {
				dmg.Step()
			}

			fmt.Println(dmg.CPU.String())

			return nil
		},
	}
	runCmd.Flags().IntVarP(&runTicks, "ticks", "t", 8_388_608, "number of clock ticks to run")
	runCmd.Flags().BoolVar(&runEchoLog, "log", false, "echo log entries to stderr")
	runCmd.Flags().BoolVar(&runStats, "stats", false, "launch the statsview server")
	rootCmd.AddCommand(runCmd)

	// trace command
	var traceTicks int

	traceCmd := &cobra.Command{
		Use:   "trace <cartridge>",
		Short: "Print the bus pin states for every clock tick",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dmg, err := prepare(args[0])
			if err != nil {
				return err
			}

			for i := 0; i < traceTicks; i++ {
				fmt.Printf("%06d hc=%d %s\n", i, dmg.CPU.HalfCycle(), dmg.Pins)
				dmg.Step()
			}

			fmt.Println(dmg.CPU.String())

			return nil
		},
	}
	traceCmd.Flags().IntVarP(&traceTicks, "ticks", "t", 64, "number of clock ticks to trace")
	rootCmd.AddCommand(traceCmd)

	// monitor command
	monitorCmd := &cobra.Command{
		Use:   "monitor <cartridge>",
		Short: "Step the console interactively, one half-cycle at a time",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dmg, err := prepare(args[0])
			if err != nil {
				return err
			}

			return monitor.NewMonitor(dmg, os.Stdout).Run()
		},
	}
	rootCmd.AddCommand(monitorCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
