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

// Package memory implements the memory areas of the console as a single bus
// participant. The Model type contains the cartridge ROM, the video RAM, the
// external RAM area and the high area.
//
// During emulation the Model is driven exclusively through the Snoop()
// function, which observes the shared bus pins once per tick and responds
// the way the address decoding hardware of the console would: the select
// lines (A15 for the cartridge, CS for the external area, neither for the
// high area) decide which area drives or accepts the data pins.
//
// Peek() and Poke() provide direct access outside of the bus protocol, for
// debuggers and tests.
package memory
