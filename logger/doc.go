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

// Package logger is the central log repository for the project. There is one
// log for the entire application and it can be accessed through the package
// level functions.
//
// New entries are associated with a short tag, by convention the name of the
// package making the entry. Identical consecutive entries are folded into a
// repeat count rather than flooding the log.
//
// The SetEcho() function is used to print log entries as they arrive. This is
// useful for command line operation. For retrieval after the fact use the
// Write() or Tail() functions.
package logger
