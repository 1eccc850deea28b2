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

// Package faults declares the error patterns shared by the dump decoders, the
// SPFM protocol and the playback session. The patterns are intended for use
// with the curated package:
//
//	return curated.Errorf(faults.UnsupportedChip, "dual chip YM2151")
//
//	if curated.Has(err, faults.UnsupportedChip) {
//		...
//	}
//
// Only UnsupportedBlockType is recoverable. All other faults abort the parse
// step or the playback session that raised them.
package faults

import "github.com/yasp-player/yasp/curated"

// List of fault patterns.
const (
	// fewer bytes are available than a field requires. the first value is the
	// underlying read error and the second value is the stream offset
	Truncated = "truncated: %v at offset %#x"

	// the input is not a recognised dump format
	BadMagic = "bad magic: %q"

	// the dump requires a sound chip (or chip configuration) that can't be
	// played by the SPFM player
	UnsupportedChip = "unsupported chip: %v"

	// a field is larger than the capacity reserved for it
	BufferOverflow = "buffer overflow: %v"

	// the dump or the device did not follow the expected sequence of bytes
	ProtocolViolation = "protocol violation: %v"

	// the device did not reply as expected during the handshake. this is a
	// specific type of protocol violation
	HandshakeFailed = "handshake failed: %v"

	// a VGM data block type that can't be written to the hardware. playback can
	// continue
	UnsupportedBlockType = "unsupported block type: %#02x"

	// the underlying serial channel failed
	ChannelError = "channel error: %v"

	// an opcode that the decoder does not understand. only an error when the
	// player is configured to treat them as such
	UnrecognisedOpcode = "unrecognised opcode: %#02x at offset %#x"
)

var categories = []struct {
	pattern string
	name    string
}{
	{pattern: Truncated, name: "Truncated"},
	{pattern: BadMagic, name: "BadMagic"},
	{pattern: UnsupportedChip, name: "UnsupportedChip"},
	{pattern: BufferOverflow, name: "BufferOverflow"},
	{pattern: HandshakeFailed, name: "ProtocolViolation"},
	{pattern: ProtocolViolation, name: "ProtocolViolation"},
	{pattern: UnsupportedBlockType, name: "UnsupportedBlockType"},
	{pattern: ChannelError, name: "ChannelError"},
	{pattern: UnrecognisedOpcode, name: "UnrecognisedOpcode"},
}

// Category returns the name of the first fault found in the error chain.
// Returns the empty string if the error does not contain a fault.
func Category(err error) string {
	for _, c := range categories {
		if curated.Has(err, c.pattern) {
			return c.name
		}
	}
	return ""
}

// Recoverable returns true if the error can be logged and ignored.
func Recoverable(err error) bool {
	return curated.Has(err, UnsupportedBlockType)
}
