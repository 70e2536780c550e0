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

// Package hardware is the container package for the emulated console. The
// DMG type gathers the shared bus pins, the CPU and the memory model, and
// enforces the tick-ordering discipline the emulation depends on: every
// component sees every tick, in order, exactly once. Use Step() for
// single-tick advancement and StepInstruction() or StepMachineCycle() for
// coarser stepping.
package hardware
