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

package logger_test

import (
	"strings"
	"testing"

	"github.com/monomyth/gopherboy/logger"
	"github.com/monomyth/gopherboy/test"
)

func TestCentralLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Write(w)
	test.Equate(t, w.String(), "")

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(w)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.Equate(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.Equate(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.Equate(t, w.String(), "")
}

func TestRepeatFolding(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Log(logger.Allow, "test", "same detail")
	logger.Log(logger.Allow, "test", "same detail")
	logger.Log(logger.Allow, "test", "same detail")
	logger.Write(w)
	test.Equate(t, w.String(), "test: same detail (repeat x3)\n")
}

type prohibitLogging struct{}

func (p prohibitLogging) AllowLogging() bool {
	return false
}

func TestPermissions(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Log(prohibitLogging{}, "test", "this should not appear")
	logger.Write(w)
	test.Equate(t, w.String(), "")
}
