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

// Package cursor implements sequential reading of the primitive values found
// in chip-music dump files. All multi-byte values are little-endian.
//
// Fixed width reads fail with the faults.Truncated pattern when fewer bytes
// than required remain in the stream. Partial reads are never padded.
package cursor

import (
	"encoding/binary"
	"io"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/faults"
)

// Done is returned by ReadLine() when there are no more lines to read.
const Done = "cursor: done"

// the maximum number of bytes in a 7 bit variable length value. ten bytes is
// enough for a 64 bit value
const maxVarintLen = 10

// Cursor reads primitive values from a seekable stream.
type Cursor struct {
	r      io.ReadSeeker
	offset int64
	size   int64

	// a NUL byte terminates the current string field. ReadLine() returns Done
	// until the next SeekTo()
	terminated bool

	buf [4]byte
}

// NewCursor is the preferred method of initialisation for the Cursor type.
// The cursor starts at the current position of the stream.
func NewCursor(r io.ReadSeeker) (*Cursor, error) {
	offset, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, curated.Errorf("cursor: %v", err)
	}

	size, err := r.Seek(0, io.SeekEnd)
	if err != nil {
		return nil, curated.Errorf("cursor: %v", err)
	}

	_, err = r.Seek(offset, io.SeekStart)
	if err != nil {
		return nil, curated.Errorf("cursor: %v", err)
	}

	return &Cursor{
		r:      r,
		offset: offset,
		size:   size,
	}, nil
}

// Offset returns the position of the next byte to be read.
func (c *Cursor) Offset() int64 {
	return c.offset
}

// Size returns the total number of bytes in the stream.
func (c *Cursor) Size() int64 {
	return c.size
}

// Remaining returns the number of bytes between the current offset and the
// end of the stream.
func (c *Cursor) Remaining() int64 {
	if c.offset >= c.size {
		return 0
	}
	return c.size - c.offset
}

// SeekTo moves to an absolute offset in the stream. Seeking beyond the end
// of the stream is allowed but all subsequent reads will fail.
func (c *Cursor) SeekTo(offset int64) error {
	if offset < 0 {
		return curated.Errorf("cursor: negative seek offset (%d)", offset)
	}
	if _, err := c.r.Seek(offset, io.SeekStart); err != nil {
		return curated.Errorf("cursor: %v", err)
	}
	c.offset = offset
	c.terminated = false
	return nil
}

// read fills p completely or fails with the faults.Truncated pattern.
func (c *Cursor) read(p []byte) error {
	n, err := io.ReadFull(c.r, p)
	if err != nil {
		// the offset reported by the error is the start of the failed read
		start := c.offset
		c.offset += int64(n)
		return curated.Errorf(faults.Truncated, err, start)
	}
	c.offset += int64(n)
	return nil
}

// ReadU8 reads a single byte.
func (c *Cursor) ReadU8() (uint8, error) {
	if err := c.read(c.buf[:1]); err != nil {
		return 0, err
	}
	return c.buf[0], nil
}

// ReadU16LE reads a 16 bit little-endian value.
func (c *Cursor) ReadU16LE() (uint16, error) {
	if err := c.read(c.buf[:2]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(c.buf[:2]), nil
}

// ReadU32LE reads a 32 bit little-endian value.
func (c *Cursor) ReadU32LE() (uint32, error) {
	if err := c.read(c.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(c.buf[:4]), nil
}

// ReadBytes reads exactly n bytes. The length is checked against the size of
// the stream before any memory is allocated.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, curated.Errorf("cursor: negative read length (%d)", n)
	}
	if int64(n) > c.Remaining() {
		return nil, curated.Errorf(faults.Truncated, io.ErrUnexpectedEOF, c.offset)
	}
	b := make([]byte, n)
	if err := c.read(b); err != nil {
		return nil, err
	}
	return b, nil
}

// ReadVarint7LE reads a variable length value. Each byte holds seven bits of
// the value, least significant group first. The high bit of each byte
// indicates that another byte follows.
//
// A value that continues beyond ten bytes fails with the faults.BufferOverflow
// pattern.
func (c *Cursor) ReadVarint7LE() (uint64, error) {
	var v uint64
	for i := 0; i < maxVarintLen; i++ {
		b, err := c.ReadU8()
		if err != nil {
			return 0, err
		}
		v |= uint64(b&0x7f) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}
	return 0, curated.Errorf(faults.BufferOverflow, "variable length value longer than 10 bytes")
}

// ReadLine reads a string terminated by a newline or a NUL byte. The
// terminator is not included in the returned string. A NUL byte also ends the
// string field and later calls to ReadLine() return Done until the cursor is
// moved with SeekTo().
//
// Returns the Done pattern if the line is empty or if the end of the stream is
// reached before any bytes are read. A line of more than maxLen bytes fails
// with the faults.BufferOverflow pattern.
func (c *Cursor) ReadLine(maxLen int) (string, error) {
	if c.terminated {
		return "", curated.Errorf(Done)
	}

	line := make([]byte, 0, 64)
	for {
		if c.Remaining() == 0 {
			if len(line) == 0 {
				return "", curated.Errorf(Done)
			}
			return string(line), nil
		}

		b, err := c.ReadU8()
		if err != nil {
			return "", err
		}

		switch b {
		case 0x00:
			c.terminated = true
			fallthrough
		case '\n':
			if len(line) == 0 {
				return "", curated.Errorf(Done)
			}
			return string(line), nil
		}

		if len(line) >= maxLen {
			return "", curated.Errorf(faults.BufferOverflow, "line longer than maximum length")
		}
		line = append(line, b)
	}
}
