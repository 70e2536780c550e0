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

package hardware

import (
	"github.com/monomyth/gopherboy/cartridgeloader"
	"github.com/monomyth/gopherboy/hardware/bus"
	"github.com/monomyth/gopherboy/hardware/cpu"
	"github.com/monomyth/gopherboy/hardware/memory"
	"github.com/monomyth/gopherboy/hardware/memory/memorymap"
	"github.com/monomyth/gopherboy/logger"
)

// DMG is the main container for the emulated components of the console. It
// owns the bus pins and the two bus coordination sets; the CPU and the
// memory model hold non-owning references.
type DMG struct {
	Pins *bus.Pins
	CPU  *cpu.CPU
	Mem  *memory.Model

	MainBus  *bus.Set
	VideoBus *bus.Set
}

// NewDMG creates a new console and everything associated with the hardware.
func NewDMG() *DMG {
	dmg := &DMG{
		Pins:     &bus.Pins{},
		Mem:      memory.NewModel(),
		MainBus:  bus.NewSet(),
		VideoBus: bus.NewSet(),
	}

	// NewCPU resets the CPU, which puts the pins into the idle bus state
	dmg.CPU = cpu.NewCPU(dmg.Pins, dmg.MainBus, dmg.VideoBus)

	return dmg
}

// AttachCartridge loads a cartridge into the memory model and resets the
// console.
func (dmg *DMG) AttachCartridge(cart *cartridgeloader.Loader) error {
	if err := cart.Load(); err != nil {
		return err
	}
	if err := dmg.Mem.AttachCartridge(cart.Data); err != nil {
		return err
	}

	dmg.Reset()

	return nil
}

// Reset emulates the power-on state of the console. The program counter is
// loaded with the cartridge entry point.
func (dmg *DMG) Reset() {
	dmg.CPU.Reset()
	dmg.CPU.PC.Load(memorymap.CartridgeEntry)

	logger.Log(logger.Allow, "hardware", "console reset")
}

// Step advances the console by one clock tick. The CPU drives the pins
// first; the other bus participants then respond to the new pin state
// within the same tick boundary.
func (dmg *DMG) Step() {
	dmg.CPU.Clock()
	dmg.Mem.Snoop(dmg.Pins)
}

// StepInstruction advances the console to the next instruction boundary,
// which is the tick in which the opcode of the next instruction is latched.
// Returns the number of ticks consumed.
func (dmg *DMG) StepInstruction() int {
	n := 0
	for {
		dmg.Step()
		n++
		if dmg.CPU.OpcodeFetched {
			return n
		}
	}
}

// StepMachineCycle advances the console by one machine cycle (eight ticks).
func (dmg *DMG) StepMachineCycle() {
	for i := 0; i < 8; i++ {
		dmg.Step()
	}
}
