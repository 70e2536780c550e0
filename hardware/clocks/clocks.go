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

// Package clocks defines the constant values that describe the speed of the
// clocks in the DMG console.
package clocks

// Frequencies in MHz.
const (
	// Crystal is the frequency of the main oscillator.
	Crystal = 4.194304

	// Machine is the frequency of one machine cycle. One machine cycle is
	// four crystal periods.
	Machine = Crystal / 4

	// HalfCycle is the rate at which the bus state machine of the CPU is
	// ticked. One machine cycle is eight half-cycles.
	HalfCycle = Machine * 8
)
