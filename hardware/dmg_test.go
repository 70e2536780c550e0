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

package hardware_test

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/monomyth/gopherboy/cartridgeloader"
	"github.com/monomyth/gopherboy/hardware"
	"github.com/monomyth/gopherboy/hardware/memory/memorymap"
	"github.com/monomyth/gopherboy/test"
)

// poke a program into the cartridge area, starting at the entry point.
func pokeProgram(dmg *hardware.DMG, bytes ...uint8) {
	for i, b := range bytes {
		dmg.Mem.Poke(memorymap.CartridgeEntry+uint16(i), b)
	}
}

func TestResetState(t *testing.T) {
	dmg := hardware.NewDMG()
	dmg.Reset()

	test.Equate(t, dmg.CPU.PC.Address(), memorymap.CartridgeEntry)
	test.Equate(t, dmg.Pins.RD, true)
	test.Equate(t, dmg.Pins.WR, true)
	test.Equate(t, dmg.Pins.CS, true)
}

func TestProgramExecution(t *testing.T) {
	dmg := hardware.NewDMG()
	pokeProgram(dmg,
		0x3e, 0x42, // LD A,0x42
		0xea, 0x00, 0xc0, // LD (0xc000),A
		0x21, 0x00, 0xc0, // LD HL,0xc000
		0x46, // LD B,(HL)
	)
	dmg.Reset()

	dmg.StepInstruction() // initial fetch
	dmg.StepInstruction() // LD A,n
	test.Equate(t, dmg.CPU.A.Value(), 0x42)

	dmg.StepInstruction() // LD (nn),A
	test.Equate(t, dmg.Mem.Peek(0xc000), 0x42)

	dmg.StepInstruction() // LD HL,nn
	dmg.StepInstruction() // LD B,(HL)
	test.Equate(t, dmg.CPU.B.Value(), 0x42)
}

func TestStepMachineCycle(t *testing.T) {
	dmg := hardware.NewDMG()
	dmg.Reset()

	// a machine cycle returns the half-cycle counter to where it started
	test.Equate(t, dmg.CPU.HalfCycle(), 0)
	dmg.StepMachineCycle()
	test.Equate(t, dmg.CPU.HalfCycle(), 0)

	// the entry point opcode has been fetched after the first machine cycle
	test.Equate(t, dmg.CPU.PC.Address(), memorymap.CartridgeEntry+1)
}

func TestAttachCartridge(t *testing.T) {
	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "test.gb", []byte{0x00, 0x3e, 0x42}, 0644)
	test.ExpectedSuccess(t, err)

	dmg := hardware.NewDMG()
	cart := cartridgeloader.NewLoaderFs("test.gb", fs)
	test.ExpectedSuccess(t, dmg.AttachCartridge(&cart))

	test.Equate(t, dmg.Mem.Peek(0x0001), 0x3e)
	test.Equate(t, dmg.CPU.PC.Address(), memorymap.CartridgeEntry)
}
