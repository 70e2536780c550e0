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

//go:build !statsview
// +build !statsview

package statsview

import (
	"io"
)

// Address of the statsview http server.
const Address = ""

// Launch is a no-op in builds without the statsview tag.
func Launch(output io.Writer) {
	output.Write([]byte("statsview not in this build (build with the statsview tag)\n"))
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
