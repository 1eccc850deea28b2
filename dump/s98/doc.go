// This file is part of yasp.
//
// yasp is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// yasp is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with yasp.  If not, see <https://www.gnu.org/licenses/>.

// Package s98 decodes S98 chip-music dumps. Versions 1 and 3 of the format
// are supported.
//
// The header is parsed by NewDecoder(). Events are then decoded one opcode at
// a time with the Next() function. Only writes to the first device in the
// device table are decoded; writes to other devices are returned as
// dump.Unrecognised events, with their operands consumed so that the stream
// stays synchronised.
//
// The length of a Wait unit (a "sync") is given by the Step() function, in
// seconds.
package s98
