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

// Package monitor is an interactive single-stepper for the emulated console.
// It advances the machine one half-cycle, one machine cycle or one
// instruction at a time, printing the bus pins and the CPU state after every
// step. It is the quickest way of watching the select lines and strobes move
// through a transaction.
package monitor

import (
	"fmt"
	"io"
	"os"

	"github.com/monomyth/gopherboy/curated"
	"github.com/monomyth/gopherboy/hardware"
	"github.com/monomyth/gopherboy/logger"
	"github.com/monomyth/gopherboy/monitor/easyterm"
)

// Error pattern for the monitor package.
const MonitorError = "monitor: %v"

// Monitor is the interactive single-stepper.
type Monitor struct {
	dmg    *hardware.DMG
	term   easyterm.Terminal
	output io.Writer
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(dmg *hardware.DMG, output io.Writer) *Monitor {
	return &Monitor{
		dmg:    dmg,
		output: output,
	}
}

// Run the monitor loop until the user quits or input fails.
func (m *Monitor) Run() error {
	if err := m.term.Initialise(os.Stdin, os.Stdout); err != nil {
		return curated.Errorf(MonitorError, err)
	}
	defer m.term.CleanUp()

	if err := m.term.CBreakMode(); err != nil {
		return curated.Errorf(MonitorError, err)
	}

	fmt.Fprintf(m.output, "[space] half-cycle  [m] machine cycle  [i] instruction  [r] reset  [l] log  [q] quit\r\n")
	m.status()

	for {
		k, err := m.term.ReadKey()
		if err != nil {
			return curated.Errorf(MonitorError, err)
		}

		switch k {
		case ' ':
			m.dmg.Step()
		case 'm':
			m.dmg.StepMachineCycle()
		case 'i':
			m.dmg.StepInstruction()
		case 'r':
			m.dmg.Reset()
		case 'l':
			logger.Tail(m.output, 10)
			continue
		case 'q', 0x03:
			fmt.Fprintf(m.output, "\r\n")
			return nil
		default:
			continue
		}

		m.status()
	}
}

func (m *Monitor) status() {
	fmt.Fprintf(m.output, "hc=%d %s | %s\r\n",
		m.dmg.CPU.HalfCycle(), m.dmg.Pins, m.dmg.CPU)
}
