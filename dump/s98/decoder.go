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

package s98

import (
	"errors"
	"io"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/cursor"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/logger"
)

const (
	// capacity of the device table
	maxDevices = 64

	// each device record is type, clock and pan followed by four reserved
	// bytes
	deviceRecordLen = 16

	// maximum length of a line in the tag section
	maxTagLen = 128

	// timer values used when the header leaves them as zero
	defaultNumerator   = 10
	defaultDenominator = 1000
)

// Opcodes in the dump data.
const (
	opWriteNormal   = 0x00
	opWriteExtended = 0x01
	opLastDevice    = 0x7f
	opEnd           = 0xfd
	opSyncN         = 0xfe
	opSync1         = 0xff
)

// Decoder of S98 event streams. Implements the dump.Decoder interface.
type Decoder struct {
	Header Header

	// length of one sync in seconds. fixed once the header has been parsed
	step float64

	c     *cursor.Cursor
	ended bool
}

// NewDecoder parses the header of the S98 stream and prepares the Decoder for
// the first call to Next(). The stream must be positioned at the start of the
// S98 data.
func NewDecoder(r io.ReadSeeker) (*Decoder, error) {
	c, err := cursor.NewCursor(r)
	if err != nil {
		return nil, curated.Errorf("s98: %v", err)
	}

	dec := &Decoder{c: c}

	if err := dec.parseHeader(); err != nil {
		return nil, curated.Errorf("s98: %v", err)
	}

	dec.step = stepDuration(dec.Header.Numerator, dec.Header.Denominator)
	logger.Logf(logger.Allow, "s98", "one sync is %fs", dec.step)

	return dec, nil
}

// stepDuration returns the length of one sync in seconds.
func stepDuration(numerator uint32, denominator uint32) float64 {
	if numerator != 0 && denominator != 0 {
		return float64(numerator) / float64(denominator)
	}
	if numerator != 0 {
		return float64(numerator) / defaultDenominator
	}
	return float64(defaultNumerator) / defaultDenominator
}

func (dec *Decoder) parseHeader() error {
	magic, err := dec.c.ReadBytes(4)
	if err != nil {
		return err
	}
	if string(magic[:3]) != "S98" {
		return curated.Errorf(faults.BadMagic, string(magic[:3]))
	}

	// the version is a single ASCII digit. values other than 1 and 3 are
	// accepted but are treated as version 1
	dec.Header.Version = magic[3] - '0'

	for _, v := range []*uint32{
		&dec.Header.Numerator,
		&dec.Header.Denominator,
		&dec.Header.Compressing,
		&dec.Header.TagOffset,
		&dec.Header.DumpOffset,
		&dec.Header.LoopOffset,
		&dec.Header.DeviceCount,
	} {
		*v, err = dec.c.ReadU32LE()
		if err != nil {
			return err
		}
	}

	if dec.Header.Version == 3 && dec.Header.DeviceCount > 0 {
		if dec.Header.DeviceCount > maxDevices {
			return curated.Errorf(faults.BufferOverflow, "too many devices in device table")
		}

		dec.Header.Devices = make([]Device, 0, dec.Header.DeviceCount)
		for i := uint32(0); i < dec.Header.DeviceCount; i++ {
			d, err := dec.readDevice()
			if err != nil {
				logger.Logf(logger.Allow, "s98", "skipping device %d: %v", i+1, err)
				continue
			}
			dec.Header.Devices = append(dec.Header.Devices, d)
		}
	}

	if len(dec.Header.Devices) == 0 {
		dec.Header.Devices = []Device{defaultDevice}
	}

	if dec.Header.TagOffset != 0 {
		dec.readTags()
	}

	return dec.c.SeekTo(int64(dec.Header.DumpOffset))
}

func (dec *Decoder) readDevice() (Device, error) {
	var d Device

	t, err := dec.c.ReadU32LE()
	if err != nil {
		return d, err
	}
	d.Type = DeviceType(t)

	d.Clock, err = dec.c.ReadU32LE()
	if err != nil {
		return d, err
	}

	d.Pan, err = dec.c.ReadU32LE()
	if err != nil {
		return d, err
	}

	_, err = dec.c.ReadBytes(deviceRecordLen - 12)
	if err != nil {
		return d, err
	}

	return d, nil
}

// the tags are for information only. a problem with the tag section is logged
// and the header continues to be parsed
func (dec *Decoder) readTags() {
	if err := dec.c.SeekTo(int64(dec.Header.TagOffset)); err != nil {
		logger.Logf(logger.Allow, "s98", "tags: %v", err)
		return
	}

	for {
		l, err := dec.c.ReadLine(maxTagLen)
		if err != nil {
			if !curated.Is(err, cursor.Done) {
				logger.Logf(logger.Allow, "s98", "tags: %v", err)
			}
			return
		}
		dec.Header.Tags = append(dec.Header.Tags, l)
	}
}

// Format implements the dump.Decoder interface.
func (dec *Decoder) Format() dump.Format {
	return dump.FormatS98
}

// Step returns the length of one sync in seconds.
func (dec *Decoder) Step() float64 {
	return dec.step
}

// Next implements the dump.Decoder interface.
func (dec *Decoder) Next() (dump.Event, error) {
	if dec.ended {
		return dump.End{}, nil
	}

	offset := dec.c.Offset()

	op, err := dec.c.ReadU8()
	if err != nil {
		// the end of the stream between opcodes is a normal end
		if errors.Is(err, io.EOF) {
			dec.ended = true
			return dump.End{}, nil
		}
		return nil, curated.Errorf("s98: %v", err)
	}

	switch {
	case op == opWriteNormal || op == opWriteExtended:
		ev := dump.RegisterWrite{Device: 0, Port: op}
		if ev.Address, err = dec.c.ReadU8(); err != nil {
			return nil, curated.Errorf("s98: %v", err)
		}
		if ev.Data, err = dec.c.ReadU8(); err != nil {
			return nil, curated.Errorf("s98: %v", err)
		}
		return ev, nil

	case op <= opLastDevice:
		// writes to the second and subsequent devices. the address and data
		// are consumed but the write is not decoded
		if _, err := dec.c.ReadBytes(2); err != nil {
			return nil, curated.Errorf("s98: %v", err)
		}
		return dump.Unrecognised{Opcode: op, Offset: offset}, nil

	case op == opEnd:
		dec.ended = true
		return dump.End{}, nil

	case op == opSyncN:
		n, err := dec.c.ReadVarint7LE()
		if err != nil {
			return nil, curated.Errorf("s98: %v", err)
		}
		return dump.Wait{Units: n}, nil

	case op == opSync1:
		return dump.Wait{Units: 1}, nil
	}

	return dump.Unrecognised{Opcode: op, Offset: offset}, nil
}
