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

package registers_test

import (
	"testing"

	"github.com/monomyth/gopherboy/hardware/cpu/registers"
	"github.com/monomyth/gopherboy/test"
)

func TestRegister(t *testing.T) {
	r := registers.NewRegister(0, "A")

	test.Equate(t, r.Value(), 0)
	test.Equate(t, r.IsZero(), true)
	test.Equate(t, r.Label(), "A")

	r.Load(0x42)
	test.Equate(t, r.Value(), 0x42)
	test.Equate(t, r.IsZero(), false)
	test.Equate(t, r.Address(), 0x0042)
	test.Equate(t, r.String(), "A=0x42")
}

func TestProgramCounter(t *testing.T) {
	pc := registers.NewProgramCounter(0x0100)

	test.Equate(t, pc.Address(), 0x0100)

	carry := pc.Add(1)
	test.Equate(t, pc.Address(), 0x0101)
	test.Equate(t, carry, false)

	// wraps modulo 2^16
	pc.Load(0xffff)
	carry = pc.Add(2)
	test.Equate(t, pc.Address(), 0x0001)
	test.Equate(t, carry, true)
}

func TestStackPointer(t *testing.T) {
	sp := registers.NewStackPointer(0x0000)

	sp.Decrement()
	test.Equate(t, sp.Address(), 0xffff)

	sp.Increment()
	test.Equate(t, sp.Address(), 0x0000)

	sp.Load(0xfffe)
	test.Equate(t, sp.Address(), 0xfffe)
	test.Equate(t, sp.String(), "0xfffe")
}
