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

package cpu

import (
	"fmt"

	"github.com/monomyth/gopherboy/hardware/bus"
	"github.com/monomyth/gopherboy/hardware/cpu/registers"
)

// State identifies the top-level state of the fetch/execute machine.
type State int

// List of valid State values.
const (
	// StateFetch reads the next opcode from the address in the program
	// counter. The CPU only passes through this state at reset; once
	// execution has started the opcode fetch overlaps the final machine
	// cycle of the preceding instruction.
	StateFetch State = iota

	// StateExecute invokes the instruction handler for the latched opcode
	// once per tick.
	StateExecute

	// StateTest suspends autonomous operation so that an external harness
	// can drive the pins and latches directly. The half-cycle counter still
	// advances.
	StateTest
)

// CPU implements the bus-level behaviour of the LR35902 found in the Game
// Boy. Register logic is implemented by the types in the registers
// sub-package.
//
// The emulation is cycle accurate at the half-cycle level. Rather than
// executing an instruction atomically, each call to Clock() advances the
// CPU by one half-cycle tick and updates the shared pins exactly as the real
// chip drives its package pins. Peripherals on the same bus observe every
// intermediate signal transition.
type CPU struct {
	pins *bus.Pins

	// bus mastership coordination. the CPU holds these references on behalf
	// of the instruction handlers and peripherals; it never inspects them
	MainBus  *bus.Set
	VideoBus *bus.Set

	PC registers.ProgramCounter
	SP registers.StackPointer
	A  registers.Register
	F  registers.Register
	B  registers.Register
	C  registers.Register
	D  registers.Register
	E  registers.Register
	H  registers.Register
	L  registers.Register

	// InstructionLatch the most recently fetched opcode. indexes the
	// dispatch table while the CPU is in StateExecute
	InstructionLatch uint8

	// OpcodeFetched is true for any tick in which a fetch completed and a
	// new value was loaded into InstructionLatch. external drivers can use
	// it to find instruction boundaries
	OpcodeFetched bool

	// operands staged for the in-flight bus transaction
	addressLatch uint16
	dataLatch    uint8

	// position within the current machine cycle. one machine cycle is eight
	// half-cycles
	halfCycle uint8

	// a transaction has been initiated but not yet completed. mutually
	// exclusive
	readInFlight  bool
	writeInFlight bool

	state State

	// the machine-cycle index within the current instruction. reset to zero
	// whenever a new opcode is latched. instruction handlers use it to
	// sequence their work
	cycle int

	// staging bytes for multi-byte operands
	operandLo uint8
	operandHi uint8
}

// NewCPU is the preferred method of initialisation for the CPU type. The
// pins are owned by the enclosing console; the CPU holds a non-owning
// reference and must not outlive it.
func NewCPU(pins *bus.Pins, mainBus *bus.Set, videoBus *bus.Set) *CPU {
	mc := &CPU{
		pins:     pins,
		MainBus:  mainBus,
		VideoBus: videoBus,
		PC:       registers.NewProgramCounter(0),
		SP:       registers.NewStackPointer(0),
		A:        registers.NewRegister(0, "A"),
		F:        registers.NewRegister(0, "F"),
		B:        registers.NewRegister(0, "B"),
		C:        registers.NewRegister(0, "C"),
		D:        registers.NewRegister(0, "D"),
		E:        registers.NewRegister(0, "E"),
		H:        registers.NewRegister(0, "H"),
		L:        registers.NewRegister(0, "L"),
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%s SP=%s AF=%#04x BC=%#04x DE=%#04x HL=%#04x",
		mc.PC, mc.SP, mc.AF(), mc.BC(), mc.DE(), mc.HL())
}

// Reset reinitialises the CPU to its power-on state and returns the pins to
// the idle bus state.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.SP.Load(0)
	mc.A.Load(0)
	mc.F.Load(0)
	mc.B.Load(0)
	mc.C.Load(0)
	mc.D.Load(0)
	mc.E.Load(0)
	mc.H.Load(0)
	mc.L.Load(0)

	mc.InstructionLatch = 0
	mc.OpcodeFetched = false
	mc.addressLatch = 0
	mc.dataLatch = 0
	mc.halfCycle = 0
	mc.readInFlight = false
	mc.writeInFlight = false
	mc.cycle = 0
	mc.operandLo = 0
	mc.operandHi = 0

	mc.pins.Idle()

	// phase is high for the first four half-cycles
	mc.pins.Phi = true

	mc.state = StateFetch
}

// Pins returns the non-owning reference to the shared bus pins.
func (mc *CPU) Pins() *bus.Pins {
	return mc.pins
}

// State returns the current top-level state.
func (mc *CPU) State() State {
	return mc.state
}

// HalfCycle returns the position within the current machine cycle.
func (mc *CPU) HalfCycle() uint8 {
	return mc.halfCycle
}

// ReadInFlight returns true while a read transaction has been initiated but
// not yet completed.
func (mc *CPU) ReadInFlight() bool {
	return mc.readInFlight
}

// WriteInFlight returns true while a write transaction has been initiated
// but not yet completed.
func (mc *CPU) WriteInFlight() bool {
	return mc.writeInFlight
}

// SetTestMode suspends autonomous operation. Used by harnesses that want to
// drive the bus transaction protocol in isolation. Reset() resumes normal
// operation.
func (mc *CPU) SetTestMode() {
	mc.state = StateTest
}

// beginFetch initiates the read for the next opcode, post-incrementing the
// program counter.
func (mc *CPU) beginFetch() {
	mc.BeginRead(mc.PC.Address())
	mc.PC.Add(1)
}

// Clock advances the CPU by one half-cycle tick. The half-cycle counter and
// the phase pin advance at the end of the tick regardless of state; no other
// pin changes happen in StateTest.
func (mc *CPU) Clock() {
	mc.OpcodeFetched = false

	switch mc.state {
	case StateFetch:
		if !mc.readInFlight {
			mc.beginFetch()
		}
		if !mc.StepRead(&mc.InstructionLatch) {
			mc.OpcodeFetched = true
			mc.cycle = 0
			mc.state = StateExecute
		}

	case StateExecute:
		if dispatchTable[mc.InstructionLatch](mc) == FinalCycle {
			// prefetch. the next opcode fetch overlaps the final machine
			// cycle of the current instruction
			if !mc.readInFlight {
				mc.beginFetch()
			}
			if !mc.StepRead(&mc.InstructionLatch) {
				mc.OpcodeFetched = true
				mc.cycle = 0
			}
		}

	case StateTest:
		// CPU is externally controlled
	}

	mc.advanceClocks()
}
