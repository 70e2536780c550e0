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

// Package cpu emulates the LR35902 found in the Game Boy, at the level of
// its external bus signals. Unlike an instruction-level emulation, which
// executes an opcode atomically, this emulation reproduces the timing of the
// pins on the edge of the chip package at half-cycle granularity. Attached
// peripherals observe the same signal transitions the real chip produces,
// including the overlap of the next opcode fetch with the final machine
// cycle of the current instruction.
//
// The bread-and-butter of the CPU type is the Clock() function. Each call
// advances the emulation by one half-cycle; eight half-cycles are one
// machine cycle. The CPU drives zero or one bus transaction per tick onto
// the shared bus.Pins instance, which is owned by the enclosing console.
//
// Let's assume pins and the two bus sets have been created by the enclosing
// console:
//
//	mc := cpu.NewCPU(pins, mainBus, videoBus)
//
//	for {
//		mc.Clock()
//		// other bus participants respond to the new pin state here
//	}
//
// Correctness relies on strict tick discipline. Every participant must see
// every tick, in order, exactly once; there is no internal concurrency and
// no locking.
//
// Instruction handlers are registered per opcode in the dispatch table. A
// handler is invoked once per tick while its opcode is latched and reports
// whether its instruction has more machine cycles to run. Opcodes without a
// handler fall back to a no-op that still participates correctly in the
// fetch overlap, so the timing of a program remains reproducible even where
// instruction semantics are not yet modelled.
//
// The test mode (SetTestMode()) suspends the fetch/execute machine so that a
// harness can drive the bus transaction protocol in isolation. The
// half-cycle counter and phase pin continue to advance on every tick.
package cpu
