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

package memory

import (
	"github.com/monomyth/gopherboy/curated"
	"github.com/monomyth/gopherboy/hardware/bus"
	"github.com/monomyth/gopherboy/hardware/memory/memorymap"
	"github.com/monomyth/gopherboy/logger"
)

// Error patterns for the memory package.
const (
	CartridgeError = "memory: cartridge image too large (%d bytes)"
)

// Model aggregates the memory areas attached to the buses of the console. It
// participates in bus transactions purely through the pins: select lines and
// strobes decide which area responds, exactly as the address decoding
// hardware would.
type Model struct {
	cart     [0x8000]uint8
	vram     [0x2000]uint8
	external [0x5e00]uint8
	high     [0x0200]uint8
}

// NewModel is the preferred method of initialisation for the Model type.
func NewModel() *Model {
	return &Model{}
}

// AttachCartridge copies a cartridge image into the ROM area. Any previous
// image is cleared first.
func (m *Model) AttachCartridge(data []byte) error {
	if len(data) > len(m.cart) {
		return curated.Errorf(CartridgeError, len(data))
	}

	for i := range m.cart {
		m.cart[i] = 0
	}
	copy(m.cart[:], data)

	logger.Logf(logger.Allow, "memory", "cartridge attached (%d bytes)", len(data))

	return nil
}

// Snoop responds to activity on the bus pins. Called once per clock tick,
// after the CPU has driven the pins for that tick.
//
// While the read strobe is asserted the selected area continuously drives
// the data pins; the CPU samples them late in the transaction. While the
// write strobe is asserted the selected area accepts the data pins. The
// write strobe is never asserted for the high area; those writes travel on
// the CPU's internal bus and never appear on the pins.
func (m *Model) Snoop(p *bus.Pins) {
	if !p.RD {
		if d, ok := m.read(p); ok {
			p.D = d
		}
	}
	if !p.WR {
		m.write(p)
	}
}

// read decodes the select lines and returns the byte the selected area
// drives onto the data pins. The second return value is false if no area is
// selected.
func (m *Model) read(p *bus.Pins) (uint8, bool) {
	if p.A&0x8000 == 0x0000 {
		return m.cart[p.A&0x7fff], true
	}
	if !p.CS {
		return m.external[p.A-memorymap.OriginExternal], true
	}
	if memorymap.IsHigh(p.A) {
		return m.high[p.A-memorymap.OriginHigh], true
	}
	return 0, false
}

// write decodes the select lines and commits the data pins to the selected
// area. Writes with A15 low land on the cartridge ROM and are ignored; a
// banking mapper would intercept them here.
func (m *Model) write(p *bus.Pins) {
	if p.A&0x8000 == 0x0000 {
		return
	}
	if !p.CS {
		m.external[p.A-memorymap.OriginExternal] = p.D
	}
}

// Peek returns the byte at the address without going through the bus
// protocol. For debuggers and tests.
func (m *Model) Peek(address uint16) uint8 {
	switch {
	case memorymap.IsCartridge(address):
		return m.cart[address]
	case memorymap.IsVRAM(address):
		return m.vram[address-memorymap.OriginVRAM]
	case memorymap.IsExternal(address):
		return m.external[address-memorymap.OriginExternal]
	}
	return m.high[address-memorymap.OriginHigh]
}

// Poke writes the byte at the address without going through the bus
// protocol. For debuggers and tests. Unlike bus writes, a Poke into the
// cartridge area succeeds.
func (m *Model) Poke(address uint16, data uint8) {
	switch {
	case memorymap.IsCartridge(address):
		m.cart[address] = data
	case memorymap.IsVRAM(address):
		m.vram[address-memorymap.OriginVRAM] = data
	case memorymap.IsExternal(address):
		m.external[address-memorymap.OriginExternal] = data
	default:
		m.high[address-memorymap.OriginHigh] = data
	}
}
