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
	"fmt"
	"strings"
)

// the size of the header block in bytes. the header is always read in full
// even for versions that define fewer fields
const headerLen = 0x100

// clock values with this bit set request two instances of the chip
const dualChip = 0x40000000

// Header of a VGM file. The layout matches the file exactly and is read with
// binary.Read(). Fields for chips that can't be played are not named.
type Header struct {
	Ident        [4]byte
	EOFOffset    uint32
	Version      uint32
	SN76489Clock uint32

	YM2413Clock  uint32
	GD3Offset    uint32
	TotalSamples uint32
	LoopOffset   uint32

	LoopSamples        uint32
	Rate               uint32
	SN76489Feedback    uint16
	SN76489ShiftWidth  uint8
	SN76489Flags       uint8
	YM2612Clock        uint32

	YM2151Clock   uint32
	VGMDataOffset uint32
	_             [8]byte

	_           [8]byte
	YM2608Clock uint32
	_           [4]byte

	_ [0x100 - 0x50]byte
}

// VersionString returns the version number in its usual form. eg. "1.51"
func (h Header) VersionString() string {
	return fmt.Sprintf("%x.%02x", h.Version>>8, h.Version&0xff)
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("VGM version %s\n", h.VersionString()))
	if h.YM2151Clock != 0 {
		s.WriteString(fmt.Sprintf("YM2151 (OPM) clock=%dHz\n", h.YM2151Clock))
	}
	if h.YM2608Clock != 0 {
		s.WriteString(fmt.Sprintf("YM2608 (OPNA) clock=%dHz\n", h.YM2608Clock))
	}
	s.WriteString(fmt.Sprintf("total samples: %d (%.2fs)\n", h.TotalSamples, float64(h.TotalSamples)/SampleRate))
	if h.LoopOffset != 0 {
		s.WriteString(fmt.Sprintf("loop: offset %#08x, %d samples\n", h.LoopOffset+0x1c, h.LoopSamples))
	}
	return s.String()
}
