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

package adpcm_test

import (
	"math/rand"
	"testing"

	"github.com/yasp-player/yasp/adpcm"
	"github.com/yasp-player/yasp/test"
)

func TestLength(t *testing.T) {
	test.ExpectEquality(t, len(adpcm.Decode(nil)), 0)
	test.ExpectEquality(t, len(adpcm.Decode([]byte{0x00, 0x00, 0x00})), 6)
}

func TestFirstNibbles(t *testing.T) {
	// the initial step is 127. a delta of 0 adds 127/8. the high nibble is
	// decoded first
	s := adpcm.Decode([]byte{0x08})
	test.ExpectEquality(t, s[0], int16(15))
	test.ExpectEquality(t, s[1], int16(0))

	s = adpcm.Decode([]byte{0x80})
	test.ExpectEquality(t, s[0], int16(-15))
	test.ExpectEquality(t, s[1], int16(0))

	// a delta of 7 adds 15*127/8 and increases the step to 127*153/64
	s = adpcm.Decode([]byte{0x70})
	test.ExpectEquality(t, s[0], int16(238))
	test.ExpectEquality(t, s[1], int16(238+303/8))
}

func TestRising(t *testing.T) {
	// a long run of positive maximum deltas saturates
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0x77
	}
	s := adpcm.Decode(data)

	for i := 1; i < len(s); i++ {
		test.ExpectSuccess(t, s[i] >= s[i-1], i)
	}
	test.ExpectEquality(t, s[len(s)-1], int16(32767))
}

func TestFalling(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0xff
	}
	s := adpcm.Decode(data)
	test.ExpectEquality(t, s[len(s)-1], int16(-32768))
}

func TestReset(t *testing.T) {
	data := make([]byte, 256)
	rand.New(rand.NewSource(1)).Read(data)

	dec := adpcm.NewDecoder()
	a := dec.Decode(nil, data)
	dec.Reset()
	b := dec.Decode(nil, data)
	test.ExpectSliceEquality(t, a, b)
	test.ExpectSliceEquality(t, a, adpcm.Decode(data))
}
