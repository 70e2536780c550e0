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

import "github.com/monomyth/gopherboy/hardware/cpu/registers"

// The 8-bit registers pair up to form 16-bit values. The pairing rules live
// here rather than in the registers package because they are a property of
// the instruction set, not of the registers themselves.

// AF returns the A and F registers as a 16-bit pair.
func (mc *CPU) AF() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.F.Value())
}

// BC returns the B and C registers as a 16-bit pair.
func (mc *CPU) BC() uint16 {
	return uint16(mc.B.Value())<<8 | uint16(mc.C.Value())
}

// DE returns the D and E registers as a 16-bit pair.
func (mc *CPU) DE() uint16 {
	return uint16(mc.D.Value())<<8 | uint16(mc.E.Value())
}

// HL returns the H and L registers as a 16-bit pair.
func (mc *CPU) HL() uint16 {
	return uint16(mc.H.Value())<<8 | uint16(mc.L.Value())
}

// SetHL loads a 16-bit value into the H and L registers.
func (mc *CPU) SetHL(v uint16) {
	mc.H.Load(uint8(v >> 8))
	mc.L.Load(uint8(v))
}

// reg8 returns the 8-bit register selected by a three-bit field of the
// opcode. Selector 6 refers to memory addressed by HL; it has no register
// and is handled by dedicated handlers, so reg8 returns nil for it.
func (mc *CPU) reg8(sel uint8) *registers.Register {
	switch sel & 0x07 {
	case 0:
		return &mc.B
	case 1:
		return &mc.C
	case 2:
		return &mc.D
	case 3:
		return &mc.E
	case 4:
		return &mc.H
	case 5:
		return &mc.L
	case 7:
		return &mc.A
	}
	return nil
}

// loadPair loads a 16-bit value into the register pair selected by bits 4
// and 5 of the opcode, using the encoding of the LD rr,nn group (BC, DE, HL,
// SP).
func (mc *CPU) loadPair(sel uint8, v uint16) {
	switch sel & 0x03 {
	case 0:
		mc.B.Load(uint8(v >> 8))
		mc.C.Load(uint8(v))
	case 1:
		mc.D.Load(uint8(v >> 8))
		mc.E.Load(uint8(v))
	case 2:
		mc.SetHL(v)
	case 3:
		mc.SP.Load(v)
	}
}

// stackPair returns the high and low registers of the pair selected by bits
// 4 and 5 of the opcode, using the encoding of the PUSH/POP group (BC, DE,
// HL, AF).
func (mc *CPU) stackPair(sel uint8) (hi, lo *registers.Register) {
	switch sel & 0x03 {
	case 0:
		return &mc.B, &mc.C
	case 1:
		return &mc.D, &mc.E
	case 2:
		return &mc.H, &mc.L
	}
	return &mc.A, &mc.F
}
