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

// Package memorymap records the address boundaries of the LR35902 memory
// map, as seen from the external bus.
//
// Three of the areas matter to the bus protocol because each has its own
// select timing. The cartridge ROM area is selected by pulling A15 low. The
// external area (cartridge RAM, work RAM and its echo) is selected by
// pulling CS low. The high area (OAM, hardware registers and high RAM) is
// internal to the CPU package and needs no external select at all.
//
// The video RAM area sits on its own bus and is never selected through
// either A15 or CS.
package memorymap

// The boundaries of the areas of the memory map.
const (
	OriginCart     uint16 = 0x0000
	MemtopCart     uint16 = 0x7fff
	OriginVRAM     uint16 = 0x8000
	MemtopVRAM     uint16 = 0x9fff
	OriginExternal uint16 = 0xa000
	MemtopExternal uint16 = 0xfdff
	OriginHigh     uint16 = 0xfe00
	MemtopHigh     uint16 = 0xffff
)

// CartridgeEntry is the address at which cartridge execution begins.
const CartridgeEntry uint16 = 0x0100

// IsCartridge returns true if the address falls inside the cartridge ROM
// area. Selected on the bus by pulling A15 low.
func IsCartridge(address uint16) bool {
	return address <= MemtopCart
}

// IsExternal returns true if the address falls inside the external RAM area.
// Selected on the bus by pulling CS low.
func IsExternal(address uint16) bool {
	return address >= OriginExternal && address <= MemtopExternal
}

// IsVRAM returns true if the address falls inside the video RAM area.
func IsVRAM(address uint16) bool {
	return address >= OriginVRAM && address <= MemtopVRAM
}

// IsHigh returns true if the address falls inside the high area. No external
// select line is asserted for these addresses.
func IsHigh(address uint16) bool {
	return address >= OriginHigh
}
