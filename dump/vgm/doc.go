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

// Package vgm decodes VGM chip-music dumps for the YM2151 (OPM) and YM2608
// (OPNA) sound chips.
//
// The header is parsed by NewDecoder(). Dumps for other chips, or for two
// instances of the same chip, are rejected with the faults.UnsupportedChip
// pattern. Events are then decoded one opcode at a time with the Next()
// function.
//
// Wait units are samples at 44100Hz, regardless of the sample rate recorded
// in the header.
//
// The decoder does not check the "Vgm " identifier. It is assumed that the
// format has already been determined with dump.Sniff().
package vgm
