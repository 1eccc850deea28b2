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

package spfm

import (
	"sync"
	"time"
)

// NullDevice is a Channel that replies to the handshake like an SPFM Light
// but has no sound chips. Register writes are counted and then discarded.
type NullDevice struct {
	crit sync.Mutex

	// bytes waiting to be read
	reply []byte

	// position of the next byte in the current command. the device decodes
	// the stream in the same way as a real device
	cmdPos int

	// number of complete register writes received
	writes uint64
}

// NewNullDevice is the preferred method of initialisation for the NullDevice
// type.
func NewNullDevice() *NullDevice {
	return &NullDevice{}
}

// Read implements the io.Reader interface.
func (dev *NullDevice) Read(p []byte) (int, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	n := copy(p, dev.reply)
	dev.reply = dev.reply[n:]
	return n, nil
}

// Write implements the io.Writer interface.
func (dev *NullDevice) Write(p []byte) (int, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	for _, b := range p {
		if dev.cmdPos > 0 {
			dev.cmdPos++
			if dev.cmdPos == 4 {
				dev.cmdPos = 0
				dev.writes++
			}
			continue
		}

		switch b {
		case cmdCheck:
			dev.reply = append(dev.reply, replyCheck...)
		case cmdReset:
			dev.reply = append(dev.reply, replyReset...)
		case cmdNop:
		default:
			// first byte of a register write
			dev.cmdPos = 1
		}
	}

	return len(p), nil
}

// WaitWritable implements the Channel interface. The device is always
// writable.
func (dev *NullDevice) WaitWritable(_ time.Duration) (bool, error) {
	return true, nil
}

// WaitReadable implements the Channel interface. The device is readable only
// if there is a reply waiting.
func (dev *NullDevice) WaitReadable(timeout time.Duration) (bool, error) {
	dev.crit.Lock()
	ok := len(dev.reply) > 0
	dev.crit.Unlock()

	if !ok {
		time.Sleep(timeout)
	}
	return ok, nil
}

// Writes returns the number of register writes received.
func (dev *NullDevice) Writes() uint64 {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.writes
}
