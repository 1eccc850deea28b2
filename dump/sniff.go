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

package dump

import (
	"bytes"
	"io"
)

// Format of a dump file.
type Format int

// List of valid Format values.
const (
	FormatUnknown Format = iota
	FormatS98
	FormatVGM
)

func (f Format) String() string {
	switch f {
	case FormatS98:
		return "S98"
	case FormatVGM:
		return "VGM"
	}
	return "unknown"
}

// the number of bytes inspected by Sniff()
const magicLen = 3

var (
	magicS98 = []byte("S98")
	magicVGM = []byte("Vgm")
)

// Sniff classifies the stream by its first three bytes. The stream is always
// rewound to the start, whatever the outcome.
//
// A stream of fewer than three bytes is FormatUnknown.
func Sniff(r io.ReadSeeker) Format {
	defer r.Seek(0, io.SeekStart)

	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return FormatUnknown
	}

	b := make([]byte, magicLen)
	if _, err := io.ReadFull(r, b); err != nil {
		return FormatUnknown
	}

	switch {
	case bytes.Equal(b, magicS98):
		return FormatS98
	case bytes.Equal(b, magicVGM):
		return FormatVGM
	}

	return FormatUnknown
}
