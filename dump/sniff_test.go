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

package dump_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/test"
)

func TestSniff(t *testing.T) {
	var tests = []struct {
		data     []byte
		expected dump.Format
	}{
		{data: nil, expected: dump.FormatUnknown},
		{data: []byte{}, expected: dump.FormatUnknown},
		{data: []byte("S"), expected: dump.FormatUnknown},
		{data: []byte("S9"), expected: dump.FormatUnknown},
		{data: []byte("Vg"), expected: dump.FormatUnknown},
		{data: []byte("S98"), expected: dump.FormatS98},
		{data: []byte("S983\x00\x00"), expected: dump.FormatS98},
		{data: []byte("Vgm "), expected: dump.FormatVGM},
		{data: []byte("vgm "), expected: dump.FormatUnknown},
		{data: []byte("RIFF"), expected: dump.FormatUnknown},
	}

	for _, tt := range tests {
		r := bytes.NewReader(tt.data)
		test.ExpectEquality(t, dump.Sniff(r), tt.expected, string(tt.data))

		// the stream is always rewound
		pos, err := r.Seek(0, io.SeekCurrent)
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, pos, int64(0), string(tt.data))
	}
}

func TestSniffRewinds(t *testing.T) {
	r := bytes.NewReader([]byte("Vgm \x00\x01"))

	// start part way through the stream
	_, err := r.Seek(4, io.SeekStart)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dump.Sniff(r), dump.FormatVGM)
	pos, _ := r.Seek(0, io.SeekCurrent)
	test.ExpectEquality(t, pos, int64(0))
}

func TestFormatString(t *testing.T) {
	test.ExpectEquality(t, dump.FormatS98.String(), "S98")
	test.ExpectEquality(t, dump.FormatVGM.String(), "VGM")
	test.ExpectEquality(t, dump.FormatUnknown.String(), "unknown")
}
