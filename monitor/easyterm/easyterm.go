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

// Package easyterm is a wrapper for pkg/term/termios. It provides the modes
// the monitor needs: cbreak mode for single keypress input and restoration
// of the canonical mode on cleanup.
package easyterm

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal is the main container for posix terminals. Usually embedded in
// other struct types.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// Initialise the fields in the Terminal struct.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	if inputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an input file")
	}
	if outputFile == nil {
		return fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt.input = inputFile
	pt.output = outputFile

	// prepare the attributes for the terminal modes we'll be using
	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return err
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return nil
}

// CleanUp restores the terminal to the state it was in at Initialise().
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
}

// CanonicalMode puts terminal into normal, linebuffered mode.
func (pt *Terminal) CanonicalMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
}

// CBreakMode puts terminal into cbreak mode, delivering single keypresses
// without waiting for a line of input.
func (pt *Terminal) CBreakMode() error {
	return termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
}

// ReadKey returns the next single keypress.
func (pt *Terminal) ReadKey() (byte, error) {
	b := make([]byte, 1)
	if _, err := pt.input.Read(b); err != nil {
		return 0, err
	}
	return b[0], nil
}
