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

package opna_test

import (
	"testing"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/opna"
	"github.com/yasp-player/yasp/test"
)

func TestDeltaTWrite(t *testing.T) {
	blk := dump.DataBlock{
		Device:    dump.DeviceOPNA,
		BlockType: 0x81,
		ROMSize:   0,
		StartAddr: 0,
		Payload:   []byte{0x01, 0x02},
	}

	w, err := opna.DeltaTWrite(blk)
	test.DemandSuccess(t, err)

	// address and data pairs, all on port 1
	expected := [][2]uint8{
		{0x10, 0x13},
		{0x10, 0x80},
		{0x00, 0x60},
		{0x01, 0x02},
		{0x02, 0x00},
		{0x03, 0x00},
		{0x04, 0x02},
		{0x05, 0x00},
		{0x0c, 0x02},
		{0x0d, 0x00},
		{0x08, 0x01},
		{0x10, 0x1b},
		{0x10, 0x13},
		{0x08, 0x02},
		{0x10, 0x1b},
		{0x10, 0x13},
		{0x00, 0x00},
		{0x10, 0x80},
	}

	// twelve setup and teardown writes plus three writes per byte
	test.DemandEquality(t, len(w), 12+3*len(blk.Payload))
	test.DemandEquality(t, len(w), len(expected))

	for i, e := range expected {
		test.ExpectEquality(t, w[i], dump.RegisterWrite{
			Device:  dump.DeviceOPNA,
			Port:    1,
			Address: e[0],
			Data:    e[1],
		}, i)
	}
}

func TestDeltaTAddresses(t *testing.T) {
	blk := dump.DataBlock{
		BlockType: 0x81,
		StartAddr: 0x12ff,
		Payload:   make([]byte, 0x101),
	}

	w, err := opna.DeltaTWrite(blk)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(w), 12+3*0x101)

	// start 0x12ff, stop 0x1400
	test.ExpectEquality(t, w[4].Data, uint8(0xff))
	test.ExpectEquality(t, w[5].Data, uint8(0x12))
	test.ExpectEquality(t, w[6].Data, uint8(0x00))
	test.ExpectEquality(t, w[7].Data, uint8(0x14))
	test.ExpectEquality(t, w[8].Data, uint8(0x00))
	test.ExpectEquality(t, w[9].Data, uint8(0x14))
}

func TestUnsupportedBlockType(t *testing.T) {
	w, err := opna.DeltaTWrite(dump.DataBlock{BlockType: 0x82, Payload: []byte{0x01}})
	test.ExpectSuccess(t, curated.Is(err, faults.UnsupportedBlockType))
	test.ExpectSuccess(t, faults.Recoverable(err))
	test.ExpectEquality(t, len(w), 0)
}

func TestRegion(t *testing.T) {
	var tests = []struct {
		port     uint8
		addr     uint8
		expected string
	}{
		{port: 0, addr: 0x07, expected: "SSG"},
		{port: 0, addr: 0x10, expected: "RHYTHM"},
		{port: 0, addr: 0x28, expected: "FM COMMON"},
		{port: 0, addr: 0xa4, expected: "FM (1-3ch)"},
		{port: 0, addr: 0xc0, expected: "unknown"},
		{port: 1, addr: 0x08, expected: "ADPCM"},
		{port: 1, addr: 0x10, expected: "ADPCM"},
		{port: 1, addr: 0x20, expected: "unknown"},
		{port: 1, addr: 0xb4, expected: "FM (4-6ch)"},
	}

	for _, tt := range tests {
		test.ExpectEquality(t, opna.Region(tt.port, tt.addr), tt.expected, tt.port, tt.addr)
	}
}
