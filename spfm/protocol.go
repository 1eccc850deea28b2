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
	"fmt"
	"time"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/logger"
)

// State of the Protocol.
type State int

// List of valid State values. Faulted is terminal.
const (
	Disconnected State = iota
	Handshaking
	Ready
	Faulted
)

func (s State) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Handshaking:
		return "handshaking"
	case Ready:
		return "ready"
	case Faulted:
		return "faulted"
	}
	return fmt.Sprintf("unknown state (%d)", int(s))
}

// Protocol bytes.
const (
	cmdCheck = 0xff
	cmdReset = 0xfe
	cmdNop   = 0x80

	// command byte of a register write. the extended bit sets A1
	cmdWrite         = 0x00
	cmdWriteExtended = 0x02
)

// Replies to the handshake commands.
const (
	replyCheck = "LT"
	replyReset = "OK"
)

// DefaultPoll is the timeout of each readiness poll of the channel.
const DefaultPoll = 15 * time.Millisecond

// Protocol is the state machine of the connection to the SPFM Light.
type Protocol struct {
	ch    Channel
	state State

	// timeout of each readiness poll
	poll time.Duration

	// permission for logging individual register writes
	trace logger.Permission

	// number of register writes sent
	writes uint64
}

// NewProtocol is the preferred method of initialisation for the Protocol
// type. The Protocol is Disconnected until Connect() is called.
func NewProtocol(ch Channel, poll time.Duration) *Protocol {
	if poll <= 0 {
		poll = DefaultPoll
	}
	return &Protocol{
		ch:    ch,
		state: Disconnected,
		poll:  poll,
		trace: logger.Deny,
	}
}

// SetTrace sets the permission for logging every register write.
func (p *Protocol) SetTrace(perm logger.Permission) {
	p.trace = perm
}

// State returns the current state of the protocol.
func (p *Protocol) State() State {
	return p.state
}

// Writes returns the number of register writes sent since the protocol was
// created.
func (p *Protocol) Writes() uint64 {
	return p.writes
}

// fault moves the protocol to the terminal Faulted state and returns the
// error unchanged.
func (p *Protocol) fault(err error) error {
	p.state = Faulted
	logger.Logf(logger.Allow, "spfm", "faulted: %v", err)
	return err
}

// Connect performs the handshake with the device. The device must reply "LT"
// to the check command and "OK" to the reset command. Any other reply fails
// with the faults.HandshakeFailed pattern and the protocol is Faulted.
//
// Calling Connect() when the protocol is Ready performs the handshake again.
// This resets the sound chips.
func (p *Protocol) Connect() error {
	if p.state == Faulted {
		return curated.Errorf("spfm: %v", "protocol is faulted")
	}

	p.state = Handshaking

	if err := p.handshake(cmdCheck, replyCheck); err != nil {
		return err
	}
	if err := p.handshake(cmdReset, replyReset); err != nil {
		return err
	}

	p.state = Ready
	logger.Log(logger.Allow, "spfm", "device ready")

	return nil
}

// Reset the sound chips on the device by repeating the handshake. The
// protocol must be Ready.
func (p *Protocol) Reset() error {
	if p.state != Ready {
		return curated.Errorf("spfm: %v", fmt.Sprintf("cannot reset when %s", p.state))
	}
	return p.Connect()
}

func (p *Protocol) handshake(cmd uint8, expected string) error {
	if err := p.send(cmd); err != nil {
		return err
	}

	reply, err := p.receive(len(expected))
	if err != nil {
		return err
	}

	if string(reply) != expected {
		return p.fault(curated.Errorf(faults.HandshakeFailed,
			fmt.Sprintf("expected %q after %#02x but got %q", expected, cmd, reply)))
	}

	return nil
}

// Nop sends the no-operation command. The device does not reply.
func (p *Protocol) Nop() error {
	if p.state != Ready {
		return curated.Errorf("spfm: %v", fmt.Sprintf("nop when %s", p.state))
	}
	return p.send(cmdNop)
}

// Write a value to a register of the sound chip in the slot. The port selects
// the extended register bank when it is not zero. Each byte of the command is
// sent with a separate write to the channel.
func (p *Protocol) Write(slot uint8, port uint8, addr uint8, data uint8) error {
	if p.state != Ready {
		return curated.Errorf("spfm: %v", fmt.Sprintf("write when %s", p.state))
	}

	cmd := uint8(cmdWrite)
	if port != 0 {
		cmd = cmdWriteExtended
	}

	for _, b := range [...]uint8{slot, cmd, addr, data} {
		if err := p.send(b); err != nil {
			return err
		}
	}

	p.writes++
	logger.Logf(p.trace, "spfm", "slot %d port %d: %02x <- %02x", slot, port, addr, data)

	return nil
}

// awaitWritable blocks until the channel can be written to. The channel is
// polled with a bounded timeout but the poll is repeated for as long as the
// channel is not ready: a device that never becomes ready blocks forever.
func (p *Protocol) awaitWritable() error {
	for {
		ok, err := p.ch.WaitWritable(p.poll)
		if err != nil {
			return p.fault(curated.Errorf(faults.ChannelError, err))
		}
		if ok {
			return nil
		}
	}
}

// awaitReadable blocks until the channel has data to read. Like
// awaitWritable() there is no limit to the number of polls.
func (p *Protocol) awaitReadable() error {
	for {
		ok, err := p.ch.WaitReadable(p.poll)
		if err != nil {
			return p.fault(curated.Errorf(faults.ChannelError, err))
		}
		if ok {
			return nil
		}
	}
}

func (p *Protocol) send(b uint8) error {
	if err := p.awaitWritable(); err != nil {
		return err
	}

	n, err := p.ch.Write([]byte{b})
	if err != nil {
		return p.fault(curated.Errorf(faults.ChannelError, err))
	}
	if n != 1 {
		return p.fault(curated.Errorf(faults.ChannelError, "short write"))
	}

	return nil
}

// receive reads exactly n bytes. replies from the device may arrive in more
// than one piece.
func (p *Protocol) receive(n int) ([]byte, error) {
	buf := make([]byte, n)

	for got := 0; got < n; {
		if err := p.awaitReadable(); err != nil {
			return nil, err
		}

		m, err := p.ch.Read(buf[got:])
		if err != nil {
			return nil, p.fault(curated.Errorf(faults.ChannelError, err))
		}
		got += m
	}

	return buf, nil
}
