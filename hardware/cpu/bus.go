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
	"github.com/monomyth/gopherboy/hardware/memory/memorymap"
)

// The bus transaction protocol. A transaction occupies one machine cycle of
// eight half-cycles. BeginRead()/BeginWrite() latch the operands; the pin
// choreography happens over the following calls to StepRead()/StepWrite(),
// one call per tick.
//
// Select timing differs by address area:
//
//   - cartridge ROM (0000-7fff): A15 is pulled high on half-cycle 0 and
//     pulled low on half-cycle 2. CS stays high.
//   - external RAM (a000-fdff): CS is pulled high on half-cycle 0 and pulled
//     low on half-cycle 2. A15 stays high.
//   - high area (fe00-ffff): both A15 and CS stay at their idle levels. the
//     addressed device is inside the CPU package and needs no select.
//
// In all cases the fifteen low address bits are latched onto the pins on
// half-cycle 1. Writes commit data to the pins on half-cycle 3, one
// half-cycle before the WR pulse would suggest; reads sample the pins on
// half-cycle 6, one half-cycle before the transaction ends. The asymmetry
// models the setup and hold timing of the real chip and peripherals depend
// on it.

// BeginRead latches the address for a read transaction and marks the read as
// in flight. A read must not be begun while another read is in flight;
// callers are responsible for serialising transactions.
func (mc *CPU) BeginRead(address uint16) {
	assertNotInFlight(mc.readInFlight, "cpu: BeginRead() with read in flight")
	mc.readInFlight = true
	mc.addressLatch = address
}

// BeginWrite latches the address and data for a write transaction and marks
// the write as in flight. A write must not be begun while another write is
// in flight; callers are responsible for serialising transactions.
func (mc *CPU) BeginWrite(address uint16, data uint8) {
	assertNotInFlight(mc.writeInFlight, "cpu: BeginWrite() with write in flight")
	mc.writeInFlight = true
	mc.addressLatch = address
	mc.dataLatch = data
}

// StepRead drives the pin transitions of the in-flight read transaction for
// the current half-cycle. Returns true while the transaction continues and
// false on the half-cycle that completes it, at which point the sampled byte
// has been stored in dest and the transaction is no longer in flight.
func (mc *CPU) StepRead(dest *uint8) bool {
	switch mc.halfCycle {
	case 0:
		mc.pins.WR = true
		mc.pins.RD = false

		// deselect both interfaces while the address settles
		mc.pins.A |= 0x8000
		mc.pins.CS = true

	case 1:
		// keep A15, latch the low address bits onto the pins
		mc.pins.A &= 0x8000
		mc.pins.A |= mc.addressLatch & 0x7fff

	case 2:
		if memorymap.IsCartridge(mc.addressLatch) {
			mc.pins.A &= 0x7fff
		} else if memorymap.IsExternal(mc.addressLatch) {
			mc.pins.CS = false
		}

	case 6:
		// sample the data pins into the destination byte
		*dest = mc.pins.D

	case 7:
		mc.readInFlight = false
		return false

	default:
		// no pin change. the addressed device is given time to respond
	}

	return true
}

// StepWrite drives the pin transitions of the in-flight write transaction
// for the current half-cycle. Returns true while the transaction continues
// and false on the half-cycle that completes it.
func (mc *CPU) StepWrite() bool {
	rom := memorymap.IsCartridge(mc.addressLatch)
	ram := memorymap.IsExternal(mc.addressLatch)

	switch mc.halfCycle {
	case 0:
		mc.pins.WR = true
		mc.pins.RD = false

		// deselect both interfaces while the address settles
		mc.pins.A |= 0x8000
		mc.pins.CS = true

	case 1:
		// RD was asserted on half-cycle 0. for the externally selected areas
		// it returns to its idle level here
		if rom || ram {
			mc.pins.RD = true
		}

		// keep A15, latch the low address bits onto the pins
		mc.pins.A &= 0x8000
		mc.pins.A |= mc.addressLatch & 0x7fff

	case 2:
		if rom {
			mc.pins.A &= 0x7fff
		} else if ram {
			mc.pins.CS = false
		}

	case 3:
		if rom || ram {
			// WR goes low and data is committed to the pins. writes to the
			// high area never assert WR; those bytes move on the CPU's
			// internal bus
			mc.pins.WR = false
			mc.pins.D = mc.dataLatch
		}

	case 6:
		mc.pins.WR = true

	case 7:
		mc.writeInFlight = false
		return false

	default:
		// no pin change. the addressed device is given time to accept
	}

	return true
}

// advanceClocks increments the half-cycle counter and rederives the phase
// pin. Called exactly once at the end of every Clock() tick, after all other
// work; the transaction protocols branch on the half-cycle value before it
// is advanced.
func (mc *CPU) advanceClocks() {
	mc.halfCycle = (mc.halfCycle + 1) & 0x07
	mc.pins.Phi = (mc.halfCycle>>2)&0x01 == 0
}
