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
	"fmt"
	"strings"
)

// DeviceType is the sound chip of an entry in the S98 device table.
type DeviceType uint32

// List of device types.
const (
	None     DeviceType = 0
	YM2149   DeviceType = 1
	YM2203   DeviceType = 2
	YM2612   DeviceType = 3
	YM2608   DeviceType = 4
	YM2151   DeviceType = 5
	YM2413   DeviceType = 6
	YM3526   DeviceType = 7
	YM3812   DeviceType = 8
	YMF262   DeviceType = 9
	AY38910  DeviceType = 15
	SN76489  DeviceType = 16
)

func (t DeviceType) String() string {
	switch t {
	case None:
		return "none"
	case YM2149:
		return "YM2149 (PSG)"
	case YM2203:
		return "YM2203 (OPN)"
	case YM2612:
		return "YM2612 (OPN2)"
	case YM2608:
		return "YM2608 (OPNA)"
	case YM2151:
		return "YM2151 (OPM)"
	case YM2413:
		return "YM2413 (OPLL)"
	case YM3526:
		return "YM3526 (OPL)"
	case YM3812:
		return "YM3812 (OPL2)"
	case YMF262:
		return "YMF262 (OPL3)"
	case AY38910:
		return "AY-3-8910 (PSG)"
	case SN76489:
		return "SN76489 (DCSG)"
	}
	return fmt.Sprintf("unknown (%d)", uint32(t))
}

// Device is an entry in the device table.
type Device struct {
	Type  DeviceType
	Clock uint32
	Pan   uint32
}

func (d Device) String() string {
	return fmt.Sprintf("%s clock=%dHz pan=%#08x", d.Type, d.Clock, d.Pan)
}

// the device used when the header does not have a device table
var defaultDevice = Device{
	Type:  YM2608,
	Clock: 7987200,
	Pan:   0x00,
}

// Header of an S98 file.
type Header struct {
	Version     uint8
	Numerator   uint32
	Denominator uint32

	// always zero in practice. not used
	Compressing uint32

	TagOffset   uint32
	DumpOffset  uint32
	LoopOffset  uint32
	DeviceCount uint32

	// never more than 64 entries. never empty after a successful parse
	Devices []Device

	// lines of the tag section. diagnostic only
	Tags []string
}

func (h Header) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("S98 version %d\n", h.Version))
	s.WriteString(fmt.Sprintf("timer: %d/%d\n", h.Numerator, h.Denominator))
	s.WriteString(fmt.Sprintf("dump offset: %#08x\n", h.DumpOffset))
	s.WriteString(fmt.Sprintf("loop offset: %#08x\n", h.LoopOffset))
	for i, d := range h.Devices {
		s.WriteString(fmt.Sprintf("device %d: %s\n", i+1, d))
	}
	for _, t := range h.Tags {
		s.WriteString(fmt.Sprintf("tag: %s\n", t))
	}
	return s.String()
}
