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

package s98_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/s98"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/test"
)

// s98File builds an S98 file in memory. the dump data immediately follows the
// header and device table unless tags are specified, in which case the tags
// follow the dump data.
type s98File struct {
	version     byte
	numerator   uint32
	denominator uint32
	devices     []s98.Device
	deviceCount uint32
	tags        string
	data        []byte
}

func (f s98File) bytes() []byte {
	b := &bytes.Buffer{}

	b.WriteString("S98")
	b.WriteByte('0' + f.version)

	count := f.deviceCount
	if count == 0 {
		count = uint32(len(f.devices))
	}

	headerLen := uint32(0x20 + len(f.devices)*16)
	dumpOffset := headerLen
	var tagOffset uint32
	if len(f.tags) > 0 {
		tagOffset = dumpOffset + uint32(len(f.data))
	}

	for _, v := range []uint32{f.numerator, f.denominator, 0, tagOffset, dumpOffset, 0, count} {
		binary.Write(b, binary.LittleEndian, v)
	}

	for _, d := range f.devices {
		binary.Write(b, binary.LittleEndian, uint32(d.Type))
		binary.Write(b, binary.LittleEndian, d.Clock)
		binary.Write(b, binary.LittleEndian, d.Pan)
		binary.Write(b, binary.LittleEndian, uint32(0))
	}

	b.Write(f.data)
	b.WriteString(f.tags)

	return b.Bytes()
}

func newDecoder(t *testing.T, f s98File) *s98.Decoder {
	t.Helper()
	dec, err := s98.NewDecoder(bytes.NewReader(f.bytes()))
	test.DemandSuccess(t, err)
	return dec
}

func TestStepDuration(t *testing.T) {
	var tests = []struct {
		version     byte
		numerator   uint32
		denominator uint32
		expected    float64
	}{
		{version: 1, numerator: 0, denominator: 0, expected: 0.01},
		{version: 1, numerator: 0, denominator: 1000, expected: 0.01},
		{version: 1, numerator: 0, denominator: 12345, expected: 0.01},
		{version: 3, numerator: 0, denominator: 0, expected: 0.01},
		{version: 3, numerator: 441, denominator: 44100, expected: 0.01},
		{version: 3, numerator: 1, denominator: 0, expected: 0.001},
		{version: 3, numerator: 1, denominator: 60, expected: 1.0 / 60.0},
	}

	for _, tt := range tests {
		dec := newDecoder(t, s98File{version: tt.version, numerator: tt.numerator, denominator: tt.denominator})
		test.ExpectEquality(t, dec.Step(), tt.expected, tt.numerator, tt.denominator)
	}
}

func TestDefaultDevice(t *testing.T) {
	// version 1 never has a device table
	dec := newDecoder(t, s98File{version: 1})
	test.DemandEquality(t, len(dec.Header.Devices), 1)
	test.ExpectEquality(t, dec.Header.Devices[0].Type, s98.YM2608)
	test.ExpectEquality(t, dec.Header.Devices[0].Clock, uint32(7987200))
	test.ExpectEquality(t, dec.Header.Devices[0].Pan, uint32(0))

	// version 3 with an empty device table
	dec = newDecoder(t, s98File{version: 3})
	test.DemandEquality(t, len(dec.Header.Devices), 1)
	test.ExpectEquality(t, dec.Header.Devices[0].Type, s98.YM2608)
}

func TestDeviceTable(t *testing.T) {
	dec := newDecoder(t, s98File{
		version: 3,
		devices: []s98.Device{
			{Type: s98.YM2151, Clock: 4000000, Pan: 0},
			{Type: s98.YM2149, Clock: 2000000, Pan: 3},
		},
		data: []byte{0xfd},
	})

	// records are 16 bytes so the second device is read from 0x30
	test.DemandEquality(t, len(dec.Header.Devices), 2)
	test.ExpectEquality(t, dec.Header.Devices[0], s98.Device{Type: s98.YM2151, Clock: 4000000, Pan: 0})
	test.ExpectEquality(t, dec.Header.Devices[1], s98.Device{Type: s98.YM2149, Clock: 2000000, Pan: 3})

	// the decoder starts at the dump offset
	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.End{}))
}

func TestDeviceTableOverflow(t *testing.T) {
	_, err := s98.NewDecoder(bytes.NewReader(s98File{version: 3, deviceCount: 65}.bytes()))
	test.ExpectSuccess(t, curated.Has(err, faults.BufferOverflow))
	test.ExpectEquality(t, faults.Category(err), "BufferOverflow")
}

func TestDeviceRecordFailure(t *testing.T) {
	// device count claims more records than the file holds. the missing
	// records are skipped and the header is still usable
	f := s98File{
		version:     3,
		deviceCount: 3,
		devices:     []s98.Device{{Type: s98.YM2608, Clock: 7987200}},
	}

	dec, err := s98.NewDecoder(bytes.NewReader(f.bytes()))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(dec.Header.Devices), 1)
}

func TestBadHeader(t *testing.T) {
	_, err := s98.NewDecoder(bytes.NewReader([]byte("S981\x00\x00")))
	test.ExpectSuccess(t, curated.Has(err, faults.Truncated))

	_, err = s98.NewDecoder(bytes.NewReader([]byte("S9")))
	test.ExpectSuccess(t, curated.Has(err, faults.Truncated))

	b := s98File{version: 1}.bytes()
	copy(b, "XYZ")
	_, err = s98.NewDecoder(bytes.NewReader(b))
	test.ExpectSuccess(t, curated.Has(err, faults.BadMagic))
}

func TestTags(t *testing.T) {
	dec := newDecoder(t, s98File{
		version: 3,
		data:    []byte{0xfd},
		tags:    "[S98]title=song\nartist=someone\x00",
	})

	test.DemandEquality(t, len(dec.Header.Tags), 2)
	test.ExpectEquality(t, dec.Header.Tags[0], "[S98]title=song")
	test.ExpectEquality(t, dec.Header.Tags[1], "artist=someone")

	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.End{}))
}

func TestTagOverflow(t *testing.T) {
	// an overlong tag line aborts the tags but not the header
	dec := newDecoder(t, s98File{
		version: 3,
		data:    []byte{0xff, 0xfd},
		tags:    "short\n" + string(bytes.Repeat([]byte{'x'}, 200)) + "\n",
	})

	test.DemandEquality(t, len(dec.Header.Tags), 1)
	test.ExpectEquality(t, dec.Header.Tags[0], "short")

	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Wait{Units: 1}))
}

// encode a known sequence of events and check that decoding reproduces the
// sequence exactly
func TestRoundTrip(t *testing.T) {
	events := []dump.Event{
		dump.RegisterWrite{Device: 0, Port: 0, Address: 0x28, Data: 0xf0},
		dump.Wait{Units: 1},
		dump.RegisterWrite{Device: 0, Port: 1, Address: 0x10, Data: 0x1b},
		dump.Wait{Units: 1000},
		dump.Wait{Units: 5},
		dump.RegisterWrite{Device: 0, Port: 0, Address: 0x00, Data: 0x00},
		dump.End{},
	}

	data := &bytes.Buffer{}
	for _, ev := range events {
		switch ev := ev.(type) {
		case dump.RegisterWrite:
			data.Write([]byte{ev.Port, ev.Address, ev.Data})
		case dump.Wait:
			if ev.Units == 1 {
				data.WriteByte(0xff)
				continue
			}
			data.WriteByte(0xfe)
			n := ev.Units
			for {
				b := byte(n & 0x7f)
				n >>= 7
				if n > 0 {
					data.WriteByte(b | 0x80)
					continue
				}
				data.WriteByte(b)
				break
			}
		case dump.End:
			data.WriteByte(0xfd)
		}
	}

	dec := newDecoder(t, s98File{version: 3, numerator: 1, denominator: 1000, data: data.Bytes()})

	for i, expected := range events {
		ev, err := dec.Next()
		test.DemandSuccess(t, err, i)
		test.ExpectEquality(t, ev, expected, i)
	}

	// the End event is repeated
	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.End{}))
}

func TestEndOfStream(t *testing.T) {
	// no end opcode
	dec := newDecoder(t, s98File{version: 1, data: []byte{0xff}})

	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Wait{Units: 1}))

	ev, err = dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.End{}))

	// stream ends part way through an opcode
	dec = newDecoder(t, s98File{version: 1, data: []byte{0x00, 0x28}})
	_, err = dec.Next()
	test.ExpectSuccess(t, curated.Has(err, faults.Truncated))
}

func TestOtherDevices(t *testing.T) {
	// writes to device 2 consume their operands and are unrecognised. other
	// unknown opcodes consume nothing
	dec := newDecoder(t, s98File{
		version: 3,
		data:    []byte{0x02, 0x28, 0xf0, 0xff, 0x80, 0xff, 0xfd},
	})

	offset := int64(0x20)

	ev, err := dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Unrecognised{Opcode: 0x02, Offset: offset}))

	ev, err = dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Wait{Units: 1}))

	ev, err = dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Unrecognised{Opcode: 0x80, Offset: offset + 4}))

	ev, err = dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.Wait{Units: 1}))

	ev, err = dec.Next()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, ev, dump.Event(dump.End{}))
}

func TestFormat(t *testing.T) {
	dec := newDecoder(t, s98File{version: 1})
	test.ExpectEquality(t, dec.Format(), dump.FormatS98)
}
