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

package registers

import "fmt"

// Register is an 8-bit register in the LR35902.
type Register struct {
	value uint8
	label string
}

// NewRegister is the preferred method of initialisation for the Register
// type.
func NewRegister(val uint8, label string) Register {
	return Register{
		value: val,
		label: label,
	}
}

func (r Register) String() string {
	return fmt.Sprintf("%s=%#02x", r.label, r.value)
}

// Value returns the current value of the register.
func (r Register) Value() uint8 {
	return r.value
}

// Address returns the current value of the register as a uint16. Useful when
// the register value is used in an address context, as with the C register
// in the LDH instructions.
func (r Register) Address() uint16 {
	return uint16(r.value)
}

// IsZero checks if register is zero.
func (r Register) IsZero() bool {
	return r.value == 0
}

// Label returns the name of the register.
func (r Register) Label() string {
	return r.label
}

// Load value into register.
func (r *Register) Load(val uint8) {
	r.value = val
}
