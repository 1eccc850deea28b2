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

package vgm

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/cursor"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/logger"
)

// SampleRate is the rate of all VGM wait units.
const SampleRate = 44100

// Default values for the wait lengths of opcodes 0x62 and 0x63. These are the
// number of samples in an NTSC and in a PAL frame.
const (
	DefaultWait1 = 735
	DefaultWait2 = 882
)

const (
	// data starts here for early versions of the format
	defaultDataOffset = 0x40

	// the VGMDataOffset field is relative to its own position
	dataOffsetBase = 0x34

	// the GD3Offset field is relative to its own position
	gd3OffsetBase = 0x14

	// the first version to support YM2608
	versionYM2608 = 0x151

	// the first version to have the VGMDataOffset field
	versionDataOffset = 0x150
)

// Opcodes in the VGM data.
const (
	opYM2151        = 0x54
	opYM2608Port0   = 0x56
	opYM2608Port1   = 0x57
	opWaitN         = 0x61
	opWait1         = 0x62
	opWait2         = 0x63
	opSetWait       = 0x64
	opEnd           = 0x66
	opDataBlock     = 0x67
	opWaitShort     = 0x70
	opWaitShortLast = 0x7f
)

// data block types from 0x80 to 0xbf are ROM/RAM dumps. these blocks start
// with the size of the ROM and the start address of the data
const (
	romBlockFirst  = 0x80
	romBlockLast   = 0xbf
	romBlockHeader = 8
)

// the byte following the data block opcode. included so that players that
// don't understand data blocks see an end opcode
const dataBlockCompat = 0x66

// the top bit of the data block size indicates that the block is for the
// second chip of a dual chip dump
const dataBlockSecondChip = 0x80000000

// Decoder of VGM event streams. Implements the dump.Decoder interface.
type Decoder struct {
	Header Header

	// the offset of the first opcode in the stream
	DataOffset int64

	// waits for opcodes 0x62 and 0x63. changed by opcode 0x64
	wait1 uint16
	wait2 uint16

	c     *cursor.Cursor
	ended bool
}

// NewDecoder parses the header of the VGM stream and prepares the Decoder for
// the first call to Next(). The stream must be positioned at the start of the
// VGM data.
func NewDecoder(r io.ReadSeeker) (*Decoder, error) {
	c, err := cursor.NewCursor(r)
	if err != nil {
		return nil, curated.Errorf("vgm: %v", err)
	}

	dec := &Decoder{
		c:     c,
		wait1: DefaultWait1,
		wait2: DefaultWait2,
	}

	if err := dec.parseHeader(); err != nil {
		return nil, curated.Errorf("vgm: %v", err)
	}

	return dec, nil
}

func (dec *Decoder) parseHeader() error {
	b, err := dec.c.ReadBytes(headerLen)
	if err != nil {
		return err
	}

	err = binary.Read(bytes.NewReader(b), binary.LittleEndian, &dec.Header)
	if err != nil {
		return curated.Errorf(faults.Truncated, err, 0)
	}

	logger.Logf(logger.Allow, "vgm", "version %s", dec.Header.VersionString())

	if dec.Header.Version < versionYM2608 {
		dec.Header.YM2608Clock = 0
	}

	if dec.Header.YM2151Clock == 0 && dec.Header.YM2608Clock == 0 {
		return curated.Errorf(faults.UnsupportedChip, "only YM2151 and YM2608 dumps can be played")
	}

	if dec.Header.YM2151Clock&dualChip != 0 || dec.Header.YM2608Clock&dualChip != 0 {
		return curated.Errorf(faults.UnsupportedChip, "dual chip dumps can not be played")
	}

	if dec.Header.Version < versionDataOffset || dec.Header.VGMDataOffset == 0 {
		dec.DataOffset = defaultDataOffset
	} else {
		dec.DataOffset = dataOffsetBase + int64(dec.Header.VGMDataOffset)
	}

	logger.Logf(logger.Allow, "vgm", "YM2151 clock %d, YM2608 clock %d, data at %#x",
		dec.Header.YM2151Clock, dec.Header.YM2608Clock, dec.DataOffset)

	return dec.c.SeekTo(dec.DataOffset)
}

// Format implements the dump.Decoder interface.
func (dec *Decoder) Format() dump.Format {
	return dump.FormatVGM
}

// Next implements the dump.Decoder interface.
func (dec *Decoder) Next() (dump.Event, error) {
	ev, err := dec.next()
	if err != nil {
		return nil, curated.Errorf("vgm: %v", err)
	}
	return ev, nil
}

func (dec *Decoder) next() (dump.Event, error) {
	for !dec.ended {
		offset := dec.c.Offset()

		op, err := dec.c.ReadU8()
		if err != nil {
			// the end of the stream between opcodes is a normal end
			if errors.Is(err, io.EOF) {
				dec.ended = true
				break
			}
			return nil, err
		}

		switch {
		case op == opYM2151:
			return dec.registerWrite(dump.DeviceOPM, 0)

		case op == opYM2608Port0 || op == opYM2608Port1:
			return dec.registerWrite(dump.DeviceOPNA, op-opYM2608Port0)

		case op == opWaitN:
			n, err := dec.c.ReadU16LE()
			if err != nil {
				return nil, err
			}
			return dump.Wait{Units: uint64(n)}, nil

		case op == opWait1:
			return dump.Wait{Units: uint64(dec.wait1)}, nil

		case op == opWait2:
			return dump.Wait{Units: uint64(dec.wait2)}, nil

		case op == opSetWait:
			// no event. the next opcode is decoded immediately
			if err := dec.setWait(); err != nil {
				return nil, err
			}

		case op == opEnd:
			dec.ended = true

		case op == opDataBlock:
			return dec.dataBlock()

		case op >= opWaitShort && op <= opWaitShortLast:
			return dump.Wait{Units: uint64(op&0x0f) + 1}, nil

		default:
			return dump.Unrecognised{Opcode: op, Offset: offset}, nil
		}
	}

	return dump.End{}, nil
}

func (dec *Decoder) registerWrite(device uint8, port uint8) (dump.Event, error) {
	ev := dump.RegisterWrite{Device: device, Port: port}

	var err error
	if ev.Address, err = dec.c.ReadU8(); err != nil {
		return nil, err
	}
	if ev.Data, err = dec.c.ReadU8(); err != nil {
		return nil, err
	}

	return ev, nil
}

func (dec *Decoder) setWait() error {
	target, err := dec.c.ReadU8()
	if err != nil {
		return err
	}

	n, err := dec.c.ReadU16LE()
	if err != nil {
		return err
	}

	switch target {
	case opWait1:
		dec.wait1 = n
	case opWait2:
		dec.wait2 = n
	default:
		logger.Logf(logger.Allow, "vgm", "ignoring wait override for opcode %#02x", target)
	}

	return nil
}

// dataBlock decodes the data block that follows the 0x67 opcode. the entire
// block is always consumed, even if the block type isn't one that can be
// played.
func (dec *Decoder) dataBlock() (dump.Event, error) {
	offset := dec.c.Offset()

	compat, err := dec.c.ReadU8()
	if err != nil {
		return nil, err
	}

	blockType, err := dec.c.ReadU8()
	if err != nil {
		return nil, err
	}

	size, err := dec.c.ReadU32LE()
	if err != nil {
		return nil, err
	}

	if compat != dataBlockCompat {
		return nil, curated.Errorf(faults.ProtocolViolation,
			curated.Errorf("data block at %#x does not start with 0x67 0x66", offset-1))
	}

	size &^= dataBlockSecondChip

	data, err := dec.c.ReadBytes(int(size))
	if err != nil {
		return nil, err
	}

	ev := dump.DataBlock{
		Device:    dump.DeviceOPNA,
		BlockType: blockType,
	}

	if blockType >= romBlockFirst && blockType <= romBlockLast {
		if len(data) < romBlockHeader {
			return nil, curated.Errorf(faults.Truncated, io.ErrUnexpectedEOF, offset+6)
		}
		ev.ROMSize = binary.LittleEndian.Uint32(data[0:])
		ev.StartAddr = binary.LittleEndian.Uint32(data[4:])
		ev.Payload = data[romBlockHeader:]
	} else {
		ev.Payload = data
	}

	return ev, nil
}
