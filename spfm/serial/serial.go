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

//go:build !windows

package serial

import (
	"time"

	"github.com/pkg/term"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/logger"
)

// DefaultBaud is the baud rate of the SPFM Light.
const DefaultBaud = 1500000

// the channel is considered writable while the number of bytes waiting in the
// output queue is below this value
const maxQueued = 64

// the interval between checks of the serial device's queues
const pollInterval = 250 * time.Microsecond

// Port is a serial device. Implements the spfm.Channel interface.
type Port struct {
	dev  string
	term *term.Term
}

// Open the serial device and configure it for use with the SPFM Light.
func Open(dev string, baud int) (*Port, error) {
	if baud <= 0 {
		baud = DefaultBaud
	}

	t, err := term.Open(dev, term.Speed(baud), term.RawMode, term.FlowControl(term.NONE))
	if err != nil {
		return nil, curated.Errorf("serial: %v", err)
	}

	// discard anything left in the queues from a previous session
	if err := t.Flush(); err != nil {
		t.Restore()
		t.Close()
		return nil, curated.Errorf("serial: %v", err)
	}

	logger.Logf(logger.Allow, "serial", "opened %s at %d baud", dev, baud)

	return &Port{
		dev:  dev,
		term: t,
	}, nil
}

func (p *Port) String() string {
	return p.dev
}

// Read implements the io.Reader interface.
func (p *Port) Read(b []byte) (int, error) {
	return p.term.Read(b)
}

// Write implements the io.Writer interface.
func (p *Port) Write(b []byte) (int, error) {
	return p.term.Write(b)
}

// poll calls the ready function until it returns true or until the timeout
// has elapsed. the ready function is always called at least once
func poll(timeout time.Duration, ready func() (bool, error)) (bool, error) {
	deadline := time.Now().Add(timeout)
	for {
		ok, err := ready()
		if err != nil || ok {
			return ok, err
		}
		if time.Now().After(deadline) {
			return false, nil
		}
		time.Sleep(pollInterval)
	}
}

// WaitWritable implements the spfm.Channel interface.
func (p *Port) WaitWritable(timeout time.Duration) (bool, error) {
	return poll(timeout, func() (bool, error) {
		n, err := p.term.Buffered()
		if err != nil {
			return false, curated.Errorf("serial: %v", err)
		}
		return n < maxQueued, nil
	})
}

// WaitReadable implements the spfm.Channel interface.
func (p *Port) WaitReadable(timeout time.Duration) (bool, error) {
	return poll(timeout, func() (bool, error) {
		n, err := p.term.Available()
		if err != nil {
			return false, curated.Errorf("serial: %v", err)
		}
		return n > 0, nil
	})
}

// Close restores the previous settings of the serial device and closes it.
func (p *Port) Close() error {
	if err := p.term.Restore(); err != nil {
		p.term.Close()
		return curated.Errorf("serial: %v", err)
	}
	if err := p.term.Close(); err != nil {
		return curated.Errorf("serial: %v", err)
	}
	logger.Logf(logger.Allow, "serial", "closed %s", p.dev)
	return nil
}
