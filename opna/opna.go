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

// Package opna contains knowledge of the YM2608 (OPNA) register map that is
// needed to play back dumps. This is the sequence of register writes that
// loads delta-T ADPCM data into the chip's memory and a classification of
// register addresses, useful for logging.
package opna

import (
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/faults"
)

// DeltaTROM is the only VGM data block type that can be written to the
// YM2608.
const DeltaTROM = 0x81

// ADPCM (delta-T) registers. all in the extended register bank (port 1).
const (
	regControl1 = 0x00
	regControl2 = 0x01
	regStartLo  = 0x02
	regStartHi  = 0x03
	regStopLo   = 0x04
	regStopHi   = 0x05
	regData     = 0x08
	regLimitLo  = 0x0c
	regLimitHi  = 0x0d
	regFlags    = 0x10
)

// values written to the ADPCM registers
const (
	flagsEnable     = 0x13 // BRDY and EOS enabled
	flagsReset      = 0x80 // clear all flags
	flagsBRDYReset  = 0x1b // clear BRDY
	memoryWrite     = 0x60 // start memory write with external memory
	memoryType8Bit  = 0x02 // x8 bit DRAM
	control1Stopped = 0x00
)

func write(addr uint8, data uint8) dump.RegisterWrite {
	return dump.RegisterWrite{
		Device:  dump.DeviceOPNA,
		Port:    1,
		Address: addr,
		Data:    data,
	}
}

// DeltaTWrite returns the sequence of register writes that loads the payload
// of a delta-T ROM data block into the YM2608's ADPCM memory. The sequence is
// taken from the YM2608 application manual:
//
//	flags enable, flags reset, memory write mode, memory type
//	start, stop and limit addresses
//	for each byte: data, BRDY reset, flags enable
//	end of memory write, flags reset
//
// The stop address is the start address plus the length of the payload. Data
// blocks of any other type fail with the faults.UnsupportedBlockType pattern
// and no writes are returned.
func DeltaTWrite(blk dump.DataBlock) ([]dump.RegisterWrite, error) {
	if blk.BlockType != DeltaTROM {
		return nil, curated.Errorf(faults.UnsupportedBlockType, blk.BlockType)
	}

	start := blk.StartAddr
	stop := start + uint32(len(blk.Payload))

	w := make([]dump.RegisterWrite, 0, 12+len(blk.Payload)*3)

	w = append(w,
		write(regFlags, flagsEnable),
		write(regFlags, flagsReset),
		write(regControl1, memoryWrite),
		write(regControl2, memoryType8Bit),
		write(regStartLo, uint8(start)),
		write(regStartHi, uint8(start>>8)),
		write(regStopLo, uint8(stop)),
		write(regStopHi, uint8(stop>>8)),
		write(regLimitLo, uint8(stop)),
		write(regLimitHi, uint8(stop>>8)),
	)

	for _, b := range blk.Payload {
		w = append(w,
			write(regData, b),
			write(regFlags, flagsBRDYReset),
			write(regFlags, flagsEnable),
		)
	}

	w = append(w,
		write(regControl1, control1Stopped),
		write(regFlags, flagsReset),
	)

	return w, nil
}

// Region returns the name of the group of registers the address belongs to.
// The extended register bank is selected with port 1.
func Region(port uint8, addr uint8) string {
	if port == 0 {
		switch {
		case addr <= 0x0f:
			return "SSG"
		case addr <= 0x1f:
			return "RHYTHM"
		case addr <= 0x2f:
			return "FM COMMON"
		case addr <= 0xb6:
			return "FM (1-3ch)"
		}
		return "unknown"
	}

	switch {
	case addr <= 0x10:
		return "ADPCM"
	case addr >= 0x30 && addr <= 0xb6:
		return "FM (4-6ch)"
	}
	return "unknown"
}
