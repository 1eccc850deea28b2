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

import "fmt"

// Device numbers used by the VGM decoder. The S98 decoder uses the index of
// the device in the header's device table.
const (
	DeviceOPM  uint8 = 0
	DeviceOPNA uint8 = 1
)

// Event is implemented by all types returned by Decoder.Next().
type Event interface {
	fmt.Stringer
	isEvent()
}

// RegisterWrite is a single write to a sound chip register. Port selects the
// normal (0) or extended (1) register bank of chips that have one.
type RegisterWrite struct {
	Device  uint8
	Port    uint8
	Address uint8
	Data    uint8
}

func (RegisterWrite) isEvent() {}

func (ev RegisterWrite) String() string {
	return fmt.Sprintf("write dev=%d port=%d %02x <- %02x", ev.Device, ev.Port, ev.Address, ev.Data)
}

// Wait is a pause in format specific units. S98 units are sync ticks of a
// length specified by the header. VGM units are samples at 44100Hz.
type Wait struct {
	Units uint64
}

func (Wait) isEvent() {}

func (ev Wait) String() string {
	return fmt.Sprintf("wait %d", ev.Units)
}

// DataBlock is a block of data to be loaded into the memory of a sound chip.
// Only a BlockType of 0x81 (YM2608 delta-T ROM) can be written to the
// hardware.
type DataBlock struct {
	Device    uint8
	BlockType uint8
	ROMSize   uint32
	StartAddr uint32
	Payload   []byte
}

func (DataBlock) isEvent() {}

func (ev DataBlock) String() string {
	return fmt.Sprintf("data block type=%#02x start=%#06x len=%d", ev.BlockType, ev.StartAddr, len(ev.Payload))
}

// End is the final event in every event stream.
type End struct{}

func (End) isEvent() {}

func (End) String() string {
	return "end"
}

// Unrecognised is an opcode that the decoder can't interpret. Offset is the
// position of the opcode in the stream.
type Unrecognised struct {
	Opcode uint8
	Offset int64
}

func (Unrecognised) isEvent() {}

func (ev Unrecognised) String() string {
	return fmt.Sprintf("unrecognised opcode %#02x at %#x", ev.Opcode, ev.Offset)
}
