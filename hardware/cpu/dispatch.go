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

// Status is returned by an instruction handler at the end of every tick.
type Status int

// List of valid Status values.
const (
	// MoreCycles indicates the instruction has machine cycles remaining
	// beyond the current one.
	MoreCycles Status = iota

	// FinalCycle indicates the current machine cycle is the last one of the
	// instruction. the fetch/execute driver overlaps the next opcode fetch
	// with it.
	FinalCycle
)

// Handler performs one tick's worth of work for a single opcode. A handler
// is invoked exactly once per tick while its opcode is latched and the CPU
// is executing.
type Handler func(mc *CPU) Status

// dispatchTable maps every opcode value to its handler. Opcodes without an
// implementation map to the nop handler so that bus timing remains
// reproducible for programs that use them.
var dispatchTable [256]Handler

func init() {
	// loads between 8-bit registers and through (HL) occupy the 0x40-0x7f
	// block, selected by bit fields of the opcode
	for op := 0x40; op <= 0x7f; op++ {
		dispatchTable[op] = ldRR
	}
	for op := 0x46; op <= 0x7e; op += 0x08 {
		dispatchTable[op] = ldRHL
	}
	for op := 0x70; op <= 0x77; op++ {
		dispatchTable[op] = ldHLR
	}

	// 0x76 would be LD (HL),(HL) by the encoding rules but is HALT on the
	// real chip. HALT is not yet modelled
	dispatchTable[0x76] = nop

	// 16-bit immediate loads
	dispatchTable[0x01] = ldRRNN
	dispatchTable[0x11] = ldRRNN
	dispatchTable[0x21] = ldRRNN
	dispatchTable[0x31] = ldRRNN

	// 8-bit immediate loads
	dispatchTable[0x06] = ldRN
	dispatchTable[0x0e] = ldRN
	dispatchTable[0x16] = ldRN
	dispatchTable[0x1e] = ldRN
	dispatchTable[0x26] = ldRN
	dispatchTable[0x2e] = ldRN
	dispatchTable[0x3e] = ldRN
	dispatchTable[0x36] = ldHLN

	// indirect loads through the register pairs
	dispatchTable[0x0a] = ldABC
	dispatchTable[0x1a] = ldADE
	dispatchTable[0x22] = ldHLIA
	dispatchTable[0x2a] = ldAHLI
	dispatchTable[0x32] = ldHLDA
	dispatchTable[0x3a] = ldAHLD

	// direct addressing
	dispatchTable[0x08] = ldNNSP
	dispatchTable[0xea] = ldNNA
	dispatchTable[0xfa] = ldANN

	// high area loads
	dispatchTable[0xe0] = ldhNA
	dispatchTable[0xe2] = ldhCA
	dispatchTable[0xf0] = ldhAN
	dispatchTable[0xf2] = ldhAC

	// stack operations
	dispatchTable[0xc1] = pop
	dispatchTable[0xd1] = pop
	dispatchTable[0xe1] = pop
	dispatchTable[0xf1] = pop
	dispatchTable[0xc5] = push
	dispatchTable[0xd5] = push
	dispatchTable[0xe5] = push
	dispatchTable[0xf5] = push
	dispatchTable[0xf9] = ldSPHL

	// jumps
	dispatchTable[0xc3] = jpNN

	// everything else is a no-op with the timing of a one machine cycle
	// instruction
	for i := range dispatchTable {
		if dispatchTable[i] == nil {
			dispatchTable[i] = nop
		}
	}
}
