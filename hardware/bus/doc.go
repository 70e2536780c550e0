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

// Package bus defines the shared electrical surface of the emulated machine.
//
// The Pins type is the passive bundle of signals on the edge of the CPU
// package. It has no behaviour of its own. The CPU is the sole mutator of
// the strobe and phase lines during its own transactions; other bus
// participants observe the pins and may drive the data lines in response.
// The Participant interface describes that observer role.
//
// The Set type coordinates mastership of a shared bus between multiple
// participants. There is one Set for the main bus and one for the video RAM
// bus.
package bus

// Participant is implemented by anything that responds to activity on the
// bus pins. Snoop() is called once per clock tick, after the CPU has driven
// the pins for that tick.
type Participant interface {
	Snoop(p *Pins)
}
