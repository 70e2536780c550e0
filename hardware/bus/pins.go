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

package bus

import "fmt"

// Pins is the bundle of electrical signals on the edge of the CPU package.
// The enclosing console owns the one instance of Pins; the CPU and every
// other bus participant holds a non-owning reference to it.
//
// The strobes and the chip select are active-low lines. They are represented
// here at their electrical level, so true means the line is at its idle
// (high) level and false means the line is asserted.
type Pins struct {
	// A carries the fifteen low address lines in its low bits. Bit 15
	// carries the A15 line, which doubles as the select signal for the
	// cartridge ROM interface.
	A uint16

	// D is the bidirectional data bus.
	D uint8

	// RD and WR are the read and write strobes.
	RD bool
	WR bool

	// CS is the chip select for the external RAM interface.
	CS bool

	// Phi is the clock phase signal. It is derived from the CPU's half-cycle
	// counter and is never set externally.
	Phi bool
}

// Idle returns the pins to the idle bus state: both strobes inactive, chip
// select at its idle level and A15 high.
func (p *Pins) Idle() {
	p.RD = true
	p.WR = true
	p.A = 0x8000
	p.CS = true
}

// level is a convenience for printing active-low lines.
func level(asserted bool) string {
	if asserted {
		return "1"
	}
	return "0"
}

func (p *Pins) String() string {
	return fmt.Sprintf("A=%#04x D=%#02x RD=%s WR=%s CS=%s PHI=%s",
		p.A, p.D, level(p.RD), level(p.WR), level(p.CS), level(p.Phi))
}
