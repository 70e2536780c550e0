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

//go:build busassert
// +build busassert

package cpu

// assertNotInFlight panics if a transaction is begun while another of the
// same direction is still in flight. Such misuse is a caller contract
// violation; it is detected only in builds with the busassert tag and never
// alters the emulated electrical behaviour of release builds.
func assertNotInFlight(inFlight bool, msg string) {
	if inFlight {
		panic(msg)
	}
}
