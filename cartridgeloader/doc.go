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

// Package cartridgeloader is responsible for reading cartridge images from a
// filesystem before their attachment to the emulated console. Loading is
// through an afero filesystem so that tests and embedded environments can
// substitute an in-memory filesystem for the host one.
//
// Loaded data is hashed with SHA1. If a hash value is specified before
// loading, the loaded data is validated against it.
package cartridgeloader
