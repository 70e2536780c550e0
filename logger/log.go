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

package logger

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	tag       string
	detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s: %s", e.tag, e.detail))
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// not exposing logger to outside of the package. the package level functions
// can be used to log to the central logger.
type logger struct {
	maxEntries int
	entries    []Entry

	// the echo writer, if set, receives every new entry as it arrives
	echo io.Writer
}

func newLogger(maxEntries int) *logger {
	return &logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

func (l *logger) log(tag, detail string) {
	// remove all newline characters from tag and detail strings
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	// fold the entry into the most recent one if it repeats it exactly
	if len(l.entries) > 0 {
		e := &l.entries[len(l.entries)-1]
		if detail == e.detail && tag == e.tag {
			e.repeated++
			e.Timestamp = time.Now()
			return
		}
	}

	l.entries = append(l.entries, Entry{Timestamp: time.Now(), tag: tag, detail: detail})

	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}

	if l.echo != nil {
		io.WriteString(l.echo, l.entries[len(l.entries)-1].String())
	}
}

func (l *logger) logf(tag, detail string, args ...interface{}) {
	l.log(tag, fmt.Sprintf(detail, args...))
}

func (l *logger) clear() {
	l.entries = l.entries[:0]
}

func (l *logger) write(output io.Writer) {
	if output == nil {
		return
	}
	for i := range l.entries {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) tail(output io.Writer, number int) {
	if output == nil {
		return
	}

	n := len(l.entries) - number
	if n < 0 {
		n = 0
	}

	for i := n; i < len(l.entries); i++ {
		io.WriteString(output, l.entries[i].String())
	}
}

func (l *logger) setEcho(output io.Writer, writeRecent bool) {
	l.echo = output
	if writeRecent {
		l.write(output)
	}
}

func (l *logger) borrowLog(f func([]Entry)) {
	f(l.entries)
}
