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

package bus

// Master identifies a participant that can take control of a shared bus.
type Master int

// List of valid Master values.
const (
	MasterNone Master = iota
	MasterCPU
	MasterDMA
	MasterVideo
)

func (m Master) String() string {
	switch m {
	case MasterNone:
		return "none"
	case MasterCPU:
		return "CPU"
	case MasterDMA:
		return "DMA"
	case MasterVideo:
		return "video"
	}
	return "unknown"
}

// Set coordinates mastership of one shared bus. The console creates one Set
// for the main bus and one for the video RAM bus. The CPU holds references to
// both but never inspects them; they exist so that instruction handlers and
// peripherals sharing the same Pins can resolve multi-master contention.
type Set struct {
	master Master
}

// NewSet is the preferred method of initialisation for the Set type.
func NewSet() *Set {
	return &Set{master: MasterNone}
}

// Claim the bus for the named master. Returns false if the bus is currently
// held by a different master.
func (s *Set) Claim(m Master) bool {
	if s.master != MasterNone && s.master != m {
		return false
	}
	s.master = m
	return true
}

// Release the bus. A release by a master that does not hold the bus has no
// effect.
func (s *Set) Release(m Master) {
	if s.master == m {
		s.master = MasterNone
	}
}

// Master currently holding the bus.
func (s *Set) Master() Master {
	return s.master
}
