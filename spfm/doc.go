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

// Package spfm implements the protocol of the SPFM Light, a device that hosts
// up to two sound chip modules and accepts register writes over a serial
// link.
//
// The Protocol type drives a Channel. The serial implementation of Channel is
// in the spfm/serial package. NullDevice is a Channel that behaves like an
// SPFM Light but discards all register writes, which is useful for testing
// and for dry runs.
//
// Protocol summary:
//
//	check interface:   0xff -> "LT"
//	reset:             0xfe -> "OK"
//	nop:               0x80 -> (no reply)
//	register write:    slot, command, address, data -> (no reply)
//
// The command byte of a register write selects the A1 line of the chip. For
// chips with an extended register bank (YM2608) this selects the bank.
package spfm
