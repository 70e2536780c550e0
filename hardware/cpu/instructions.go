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

// The instruction handlers. Each handler is called once per tick while its
// opcode is latched and sequences its work with the cycle field of the CPU,
// which counts machine cycles from the moment the opcode was latched.
// Machine cycle boundaries always coincide with half-cycle 0 because every
// bus transaction completes on half-cycle 7.
//
// A handler returns FinalCycle for every tick of its last machine cycle; the
// fetch of the next opcode overlaps that cycle. The simplest instruction,
// nop, consists only of that overlapped fetch.

// fetchOperand begins (if necessary) and steps a read of the byte at the
// program counter, post-incrementing the counter. Returns true on the tick
// the read completes.
func (mc *CPU) fetchOperand(dest *uint8) bool {
	if !mc.readInFlight {
		mc.BeginRead(mc.PC.Address())
		mc.PC.Add(1)
	}
	return !mc.StepRead(dest)
}

// readCycle begins (if necessary) and steps a read of the byte at the given
// address. Returns true on the tick the read completes.
func (mc *CPU) readCycle(address uint16, dest *uint8) bool {
	if !mc.readInFlight {
		mc.BeginRead(address)
	}
	return !mc.StepRead(dest)
}

// writeCycle begins (if necessary) and steps a write of a byte to the given
// address. Returns true on the tick the write completes.
func (mc *CPU) writeCycle(address uint16, data uint8) bool {
	if !mc.writeInFlight {
		mc.BeginWrite(address, data)
	}
	return !mc.StepWrite()
}

// internalCycle burns a machine cycle with no bus activity. Returns true on
// the tick the cycle completes.
func (mc *CPU) internalCycle() bool {
	return mc.halfCycle == 7
}

// nop does nothing except participate in the prefetch overlap. It is also
// the handler for every opcode without an implementation.
func nop(mc *CPU) Status {
	return FinalCycle
}

// ldRR copies one 8-bit register to another. 0x40 to 0x7f, excluding the
// (HL) column and row.
func ldRR(mc *CPU) Status {
	src := mc.reg8(mc.InstructionLatch)
	dst := mc.reg8(mc.InstructionLatch >> 3)
	dst.Load(src.Value())
	return FinalCycle
}

// ldRN loads an 8-bit register with an immediate byte.
func ldRN(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.fetchOperand(&mc.operandLo) {
			mc.reg8(mc.InstructionLatch >> 3).Load(mc.operandLo)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldRRNN loads a 16-bit register pair with an immediate word.
func ldRRNN(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.fetchOperand(&mc.operandHi) {
			mc.loadPair(mc.InstructionLatch>>4, uint16(mc.operandHi)<<8|uint16(mc.operandLo))
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldRHL loads an 8-bit register from the address in HL.
func ldRHL(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(mc.HL(), &mc.operandLo) {
			mc.reg8(mc.InstructionLatch >> 3).Load(mc.operandLo)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldHLR stores an 8-bit register to the address in HL.
func ldHLR(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.writeCycle(mc.HL(), mc.reg8(mc.InstructionLatch).Value()) {
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldHLN stores an immediate byte to the address in HL.
func ldHLN(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.writeCycle(mc.HL(), mc.operandLo) {
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldABC loads A from the address in BC.
func ldABC(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(mc.BC(), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldADE loads A from the address in DE.
func ldADE(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(mc.DE(), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldHLIA stores A to the address in HL and increments HL.
func ldHLIA(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.writeCycle(mc.HL(), mc.A.Value()) {
			mc.SetHL(mc.HL() + 1)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldHLDA stores A to the address in HL and decrements HL.
func ldHLDA(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.writeCycle(mc.HL(), mc.A.Value()) {
			mc.SetHL(mc.HL() - 1)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldAHLI loads A from the address in HL and increments HL.
func ldAHLI(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(mc.HL(), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.SetHL(mc.HL() + 1)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldAHLD loads A from the address in HL and decrements HL.
func ldAHLD(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(mc.HL(), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.SetHL(mc.HL() - 1)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldNNSP stores the stack pointer to a direct address, low byte first.
func ldNNSP(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.fetchOperand(&mc.operandHi) {
			mc.cycle++
		}
	case 2:
		if mc.writeCycle(uint16(mc.operandHi)<<8|uint16(mc.operandLo), uint8(mc.SP.Address())) {
			mc.cycle++
		}
	case 3:
		if mc.writeCycle((uint16(mc.operandHi)<<8|uint16(mc.operandLo))+1, uint8(mc.SP.Address()>>8)) {
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldNNA stores A to a direct address.
func ldNNA(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.fetchOperand(&mc.operandHi) {
			mc.cycle++
		}
	case 2:
		if mc.writeCycle(uint16(mc.operandHi)<<8|uint16(mc.operandLo), mc.A.Value()) {
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldANN loads A from a direct address.
func ldANN(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.fetchOperand(&mc.operandHi) {
			mc.cycle++
		}
	case 2:
		// reusing operandLo as the destination is safe. the address is
		// latched when the read begins, before the sample overwrites it
		if mc.readCycle(uint16(mc.operandHi)<<8|uint16(mc.operandLo), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldhNA stores A to the high area at 0xff00 plus an immediate byte.
func ldhNA(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.writeCycle(0xff00|uint16(mc.operandLo), mc.A.Value()) {
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldhAN loads A from the high area at 0xff00 plus an immediate byte.
func ldhAN(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.readCycle(0xff00|uint16(mc.operandLo), &mc.operandHi) {
			mc.A.Load(mc.operandHi)
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldhCA stores A to the high area at 0xff00 plus the C register.
func ldhCA(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.writeCycle(0xff00|mc.C.Address(), mc.A.Value()) {
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// ldhAC loads A from the high area at 0xff00 plus the C register.
func ldhAC(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.readCycle(0xff00|mc.C.Address(), &mc.operandLo) {
			mc.A.Load(mc.operandLo)
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// push stores a register pair on the stack, high byte first.
func push(mc *CPU) Status {
	hi, lo := mc.stackPair(mc.InstructionLatch >> 4)

	switch mc.cycle {
	case 0:
		// internal delay cycle while the stack pointer is decremented
		if mc.internalCycle() {
			mc.SP.Decrement()
			mc.cycle++
		}
	case 1:
		if mc.writeCycle(mc.SP.Address(), hi.Value()) {
			mc.SP.Decrement()
			mc.cycle++
		}
	case 2:
		if mc.writeCycle(mc.SP.Address(), lo.Value()) {
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// pop loads a register pair from the stack, low byte first. The low nibble
// of F does not exist on the real chip; popping into AF masks it off.
func pop(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.readCycle(mc.SP.Address(), &mc.operandLo) {
			mc.SP.Increment()
			mc.cycle++
		}
	case 1:
		if mc.readCycle(mc.SP.Address(), &mc.operandHi) {
			mc.SP.Increment()

			hi, lo := mc.stackPair(mc.InstructionLatch >> 4)
			hi.Load(mc.operandHi)
			if lo == &mc.F {
				lo.Load(mc.operandLo & 0xf0)
			} else {
				lo.Load(mc.operandLo)
			}
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}

// ldSPHL copies HL into the stack pointer. The copy happens over an internal
// cycle; there is no bus activity beyond the fetches.
func ldSPHL(mc *CPU) Status {
	if mc.cycle == 0 {
		if mc.internalCycle() {
			mc.SP.Load(mc.HL())
			mc.cycle++
		}
		return MoreCycles
	}
	return FinalCycle
}

// jpNN jumps to a direct address. The program counter is loaded during an
// internal cycle after both operand bytes have been read; the overlapped
// fetch of the final cycle then reads from the jump target.
func jpNN(mc *CPU) Status {
	switch mc.cycle {
	case 0:
		if mc.fetchOperand(&mc.operandLo) {
			mc.cycle++
		}
	case 1:
		if mc.fetchOperand(&mc.operandHi) {
			mc.cycle++
		}
	case 2:
		if mc.internalCycle() {
			mc.PC.Load(uint16(mc.operandHi)<<8 | uint16(mc.operandLo))
			mc.cycle++
		}
	default:
		return FinalCycle
	}
	return MoreCycles
}
