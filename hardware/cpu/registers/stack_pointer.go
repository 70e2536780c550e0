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

// StackPointer is the 16-bit stack pointer of the LR35902. Unlike the 8-bit
// stack pointers of many contemporary CPUs, the LR35902 stack can sit
// anywhere in the address space.
type StackPointer struct {
	value uint16
}

// NewStackPointer is the preferred method of initialisation for the
// StackPointer type.
func NewStackPointer(val uint16) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#04x", sp.value)
}

// Address returns the current value of the SP as a value of type uint16.
func (sp StackPointer) Address() uint16 {
	return sp.value
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint16) {
	sp.value = val
}

// Increment the SP. Wraps modulo 2^16.
func (sp *StackPointer) Increment() {
	sp.value++
}

// Decrement the SP. Wraps modulo 2^16.
func (sp *StackPointer) Decrement() {
	sp.value--
}
