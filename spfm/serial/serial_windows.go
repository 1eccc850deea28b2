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

//go:build windows

package serial

import (
	"time"

	"github.com/yasp-player/yasp/curated"
)

// DefaultBaud is the baud rate of the SPFM Light.
const DefaultBaud = 1500000

// Port is a serial device. Serial devices are not supported on windows.
type Port struct{}

// Open always fails on windows.
func Open(dev string, baud int) (*Port, error) {
	return nil, curated.Errorf("serial: %v", "serial devices are not supported on windows")
}

func (p *Port) String() string {
	return ""
}

// Read implements the io.Reader interface.
func (p *Port) Read(b []byte) (int, error) {
	return 0, curated.Errorf("serial: %v", "not supported")
}

// Write implements the io.Writer interface.
func (p *Port) Write(b []byte) (int, error) {
	return 0, curated.Errorf("serial: %v", "not supported")
}

// WaitWritable implements the spfm.Channel interface.
func (p *Port) WaitWritable(timeout time.Duration) (bool, error) {
	return false, curated.Errorf("serial: %v", "not supported")
}

// WaitReadable implements the spfm.Channel interface.
func (p *Port) WaitReadable(timeout time.Duration) (bool, error) {
	return false, curated.Errorf("serial: %v", "not supported")
}

// Close implements the io.Closer interface.
func (p *Port) Close() error {
	return nil
}
