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

package player

import (
	"context"
	"fmt"
	"time"

	"github.com/yasp-player/yasp/clock"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/s98"
	"github.com/yasp-player/yasp/dump/vgm"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/logger"
	"github.com/yasp-player/yasp/notifications"
	"github.com/yasp-player/yasp/opna"
	"github.com/yasp-player/yasp/spfm"
)

// Stats summarises a call to Play().
type Stats struct {
	Events     int
	Writes     int
	Waits      int
	DataBlocks int

	// unrecognised opcodes and data blocks that were skipped
	Skipped int

	// the total of all waits. this is the length of the dump that was played
	Elapsed time.Duration

	// the time taken by Play()
	Wall time.Duration

	// playback was stopped by the context before the end of the dump
	Cancelled bool
}

func (st Stats) String() string {
	s := fmt.Sprintf("%d events, %d writes, %d waits, %d data blocks. played %v in %v",
		st.Events, st.Writes, st.Waits, st.DataBlocks,
		st.Elapsed.Round(time.Millisecond), st.Wall.Round(time.Millisecond))
	if st.Skipped > 0 {
		s = fmt.Sprintf("%s. %d skipped", s, st.Skipped)
	}
	if st.Cancelled {
		s = fmt.Sprintf("%s. cancelled", s)
	}
	return s
}

// Session plays the events of a decoder.
type Session struct {
	dec   dump.Decoder
	clk   *clock.Clock
	proto *spfm.Protocol

	// the slot in the SPFM Light for each device number in the event stream
	slots []uint8

	skipUnrecognised bool

	// permission to log every event
	trace logger.Permission

	notify notifications.Notify

	stats Stats
}

// NewSession is the preferred method of initialisation for the Session type.
// The protocol should be Ready before Play() is called.
func NewSession(dec dump.Decoder, proto *spfm.Protocol, p *Preferences, sleeper clock.Sleeper) (*Session, error) {
	ses := &Session{
		dec:              dec,
		proto:            proto,
		skipUnrecognised: p.skipUnrecognised(),
		trace:            logger.Deny,
	}

	opmSlot := uint8(p.OPMSlot.Get().(int))
	opnaSlot := uint8(p.OPNASlot.Get().(int))

	switch d := dec.(type) {
	case *s98.Decoder:
		ses.clk = clock.NewS98(d.Step(), sleeper)

		// only the first device of the S98 device table is played. the
		// device type decides which slot it is sent to. data blocks are
		// always written to the OPNA slot
		if d.Header.Devices[0].Type == s98.YM2151 {
			ses.slots = []uint8{opmSlot, opnaSlot}
		} else {
			ses.slots = []uint8{opnaSlot, opnaSlot}
		}

	case *vgm.Decoder:
		ses.clk = clock.NewVGM(sleeper)
		ses.slots = []uint8{
			dump.DeviceOPM:  opmSlot,
			dump.DeviceOPNA: opnaSlot,
		}

	default:
		return nil, curated.Errorf("player: %v", fmt.Sprintf("unsupported decoder (%T)", dec))
	}

	ses.clk.SetCompensation(p.Compensate.Get().(bool))

	return ses, nil
}

// SetTrace sets the permission for logging every event.
func (ses *Session) SetTrace(perm logger.Permission) {
	ses.trace = perm
}

// SetNotify sets the recipient of playback notifications. Can be nil.
func (ses *Session) SetNotify(notify notifications.Notify) {
	ses.notify = notify
}

func (ses *Session) notice(notice notifications.Notice, args ...interface{}) {
	if ses.notify == nil {
		return
	}
	if err := ses.notify.Notify(notice, args...); err != nil {
		logger.Logf(logger.Allow, "player", "notification: %v", err)
	}
}

// Stats returns the statistics of the session so far.
func (ses *Session) Stats() Stats {
	st := ses.stats
	st.Elapsed = ses.clk.Total()
	return st
}

// Play the dump until the end is reached, an error occurs or the context is
// cancelled. Cancellation is not an error.
func (ses *Session) Play(ctx context.Context) (Stats, error) {
	start := time.Now()
	defer func() {
		ses.stats.Wall += time.Since(start)
	}()

	ses.notice(notifications.NotifyPlaybackStarted, ses.dec.Format())

	for {
		if ctx.Err() != nil {
			ses.stats.Cancelled = true
			logger.Logf(logger.Allow, "player", "cancelled after %d events", ses.stats.Events)
			ses.notice(notifications.NotifyPlaybackCancelled)
			return ses.Stats(), nil
		}

		ev, err := ses.dec.Next()
		if err != nil {
			return ses.Stats(), curated.Errorf("player: %v", err)
		}

		ses.stats.Events++
		logger.Log(ses.trace, "player", ev)

		switch ev := ev.(type) {
		case dump.RegisterWrite:
			if err := ses.write(ev); err != nil {
				return ses.Stats(), curated.Errorf("player: %v", err)
			}

		case dump.Wait:
			ses.stats.Waits++
			ses.clk.Wait(ev.Units)

		case dump.DataBlock:
			if err := ses.dataBlock(ev); err != nil {
				return ses.Stats(), curated.Errorf("player: %v", err)
			}

		case dump.Unrecognised:
			if !ses.skipUnrecognised {
				return ses.Stats(), curated.Errorf("player: %v", curated.Errorf(faults.UnrecognisedOpcode, ev.Opcode, ev.Offset))
			}
			ses.stats.Skipped++
			logger.Logf(logger.Allow, "player", "skipping %v", ev)
			ses.notice(notifications.NotifyOpcodeSkipped, ev.Opcode)

		case dump.End:
			logger.Logf(logger.Allow, "player", "end of dump after %d events", ses.stats.Events)
			ses.notice(notifications.NotifyPlaybackEnded)
			return ses.Stats(), nil
		}
	}
}

func (ses *Session) write(w dump.RegisterWrite) error {
	if int(w.Device) >= len(ses.slots) {
		return curated.Errorf("player: %v", fmt.Sprintf("no slot for device %d", w.Device))
	}

	slot := ses.slots[w.Device]
	if ses.trace.AllowLogging() {
		logger.Logf(ses.trace, "player", "slot %d %s", slot, opna.Region(w.Port, w.Address))
	}

	if err := ses.proto.Write(slot, w.Port, w.Address, w.Data); err != nil {
		return err
	}

	ses.stats.Writes++
	return nil
}

// dataBlock writes a delta-T data block to the YM2608. other block types are
// skipped with a warning.
func (ses *Session) dataBlock(blk dump.DataBlock) error {
	seq, err := opna.DeltaTWrite(blk)
	if err != nil {
		if faults.Recoverable(err) {
			ses.stats.Skipped++
			logger.Logf(logger.Allow, "player", "warning: %v", err)
			ses.notice(notifications.NotifyDataBlockSkipped, blk.BlockType)
			return nil
		}
		return err
	}

	for _, w := range seq {
		if err := ses.write(w); err != nil {
			return err
		}
	}

	ses.stats.DataBlocks++
	ses.notice(notifications.NotifyDataBlockLoaded, len(blk.Payload))

	return nil
}
