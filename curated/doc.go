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

// Package curated defines the error type used throughout the project. A
// curated error is created with a pattern string rather than a format string.
// The distinction matters because the pattern is also the identity of the
// error: the Is() and Has() functions compare patterns, not formatted
// messages.
//
// Packages that create errors should define their patterns as constants so
// that other packages can test for them:
//
//	const NotAttached = "cartridge: not attached"
//
//	if curated.Is(err, cartridgeloader.NotAttached) {
//		...
//	}
//
// Curated errors also normalise their messages when error values are chained
// through the pattern's format verbs, removing duplicate adjacent message
// parts.
package curated
