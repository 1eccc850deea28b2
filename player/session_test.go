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

package player_test

import (
	"bytes"
	"context"
	"encoding/binary"
	"path/filepath"
	"testing"
	"time"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/s98"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/notifications"
	"github.com/yasp-player/yasp/opna"
	"github.com/yasp-player/yasp/player"
	"github.com/yasp-player/yasp/spfm"
	"github.com/yasp-player/yasp/test"
)

// recorder is a NullDevice that keeps a copy of every byte written to it
type recorder struct {
	*spfm.NullDevice
	sent []byte
}

func (r *recorder) Write(p []byte) (int, error) {
	r.sent = append(r.sent, p...)
	return r.NullDevice.Write(p)
}

type fakeTime struct {
	now   time.Time
	slept time.Duration
}

func (f *fakeTime) Sleep(d time.Duration) {
	f.slept += d
	f.now = f.now.Add(d)
}

func (f *fakeTime) Now() time.Time {
	return f.now
}

func vgmFile(opm uint32, opna uint32, data ...byte) []byte {
	b := make([]byte, 0x100)
	copy(b, "Vgm ")
	binary.LittleEndian.PutUint32(b[0x08:], 0x151)
	binary.LittleEndian.PutUint32(b[0x30:], opm)
	binary.LittleEndian.PutUint32(b[0x34:], 0x100-0x34)
	binary.LittleEndian.PutUint32(b[0x48:], opna)
	return append(b, data...)
}

func s98File(device s98.DeviceType, data ...byte) []byte {
	b := &bytes.Buffer{}
	b.WriteString("S983")
	for _, v := range []uint32{10, 1000, 0, 0, 0x30, 0, 1} {
		binary.Write(b, binary.LittleEndian, v)
	}
	for _, v := range []uint32{uint32(device), 4000000, 0, 0} {
		binary.Write(b, binary.LittleEndian, v)
	}
	b.Write(data)
	return b.Bytes()
}

func newPreferences(t *testing.T) *player.Preferences {
	t.Helper()
	p, err := player.NewPreferencesFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	return p
}

// newSession opens the dump and connects to a recorder. the handshake bytes
// are removed from the recorder
func newSession(t *testing.T, b []byte, p *player.Preferences) (*player.Session, *recorder, *fakeTime) {
	t.Helper()

	dec, err := player.Open(bytes.NewReader(b))
	test.DemandSuccess(t, err)

	rec := &recorder{NullDevice: spfm.NewNullDevice()}
	proto := spfm.NewProtocol(rec, time.Millisecond)
	test.DemandSuccess(t, proto.Connect())
	rec.sent = rec.sent[:0]

	ft := &fakeTime{now: time.Date(1987, 10, 30, 0, 0, 0, 0, time.UTC)}
	ses, err := player.NewSession(dec, proto, p, ft)
	test.DemandSuccess(t, err)

	return ses, rec, ft
}

func TestOpen(t *testing.T) {
	dec, err := player.Open(bytes.NewReader(vgmFile(3579545, 0, 0x66)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Format(), dump.FormatVGM)

	dec, err = player.Open(bytes.NewReader(s98File(s98.YM2608, 0xfd)))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dec.Format(), dump.FormatS98)

	_, err = player.Open(bytes.NewReader([]byte("RIFF1234WAVE")))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, faults.BadMagic))

	_, err = player.Open(bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Has(err, faults.BadMagic))
}

func TestVGMRouting(t *testing.T) {
	ses, rec, ft := newSession(t, vgmFile(3579545, 7987200,
		0x54, 0x10, 0x20,
		0x56, 0x30, 0x40,
		0x57, 0x50, 0x60,
		0x61, 0x44, 0xac,
		0x66,
	), newPreferences(t))

	st, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)

	test.ExpectSliceEquality(t, rec.sent, []byte{
		0x00, 0x00, 0x10, 0x20,
		0x01, 0x00, 0x30, 0x40,
		0x01, 0x02, 0x50, 0x60,
	})

	test.ExpectEquality(t, st.Events, 5)
	test.ExpectEquality(t, st.Writes, 3)
	test.ExpectEquality(t, st.Waits, 1)
	test.ExpectEquality(t, st.Elapsed, time.Second)
	test.ExpectEquality(t, ft.slept, time.Second)
	test.ExpectEquality(t, st.Cancelled, false)
}

func TestSlotPreferences(t *testing.T) {
	p := newPreferences(t)
	test.DemandSuccess(t, p.OPMSlot.Set(1))
	test.DemandSuccess(t, p.OPNASlot.Set(0))

	ses, rec, _ := newSession(t, vgmFile(3579545, 7987200,
		0x54, 0x10, 0x20,
		0x56, 0x30, 0x40,
		0x66,
	), p)

	_, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)

	test.ExpectSliceEquality(t, rec.sent, []byte{
		0x01, 0x00, 0x10, 0x20,
		0x00, 0x00, 0x30, 0x40,
	})
}

func TestS98Routing(t *testing.T) {
	var tests = []struct {
		device s98.DeviceType
		slot   byte
	}{
		{s98.YM2151, 0},
		{s98.YM2608, 1},
		{s98.YM2203, 1},
	}

	for _, tc := range tests {
		ses, rec, ft := newSession(t, s98File(tc.device,
			0x00, 0x28, 0x01,
			0x01, 0x29, 0x80,
			0xff,
			0xfd,
		), newPreferences(t))

		st, err := ses.Play(context.Background())
		test.DemandSuccess(t, err, tc.device)

		test.ExpectSliceEquality(t, rec.sent, []byte{
			tc.slot, 0x00, 0x28, 0x01,
			tc.slot, 0x02, 0x29, 0x80,
		}, tc.device)

		test.ExpectEquality(t, st.Writes, 2, tc.device)
		test.ExpectEquality(t, st.Elapsed, 10*time.Millisecond, tc.device)
		test.ExpectEquality(t, ft.slept, 10*time.Millisecond, tc.device)
	}
}

func TestUnrecognisedFail(t *testing.T) {
	ses, rec, _ := newSession(t, vgmFile(3579545, 0,
		0x54, 0x10, 0x20,
		0x4f, 0x00,
		0x66,
	), newPreferences(t))

	st, err := ses.Play(context.Background())
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Has(err, faults.UnrecognisedOpcode))
	test.ExpectEquality(t, st.Writes, 1)
	test.ExpectEquality(t, len(rec.sent), 4)
}

func TestUnrecognisedSkip(t *testing.T) {
	p := newPreferences(t)
	test.DemandSuccess(t, p.Unrecognised.Set("skip"))

	ses, rec, _ := newSession(t, vgmFile(3579545, 0,
		0x54, 0x10, 0x20,
		0x4f,
		0x54, 0x11, 0x21,
		0x66,
	), p)

	var skipped []notifications.Notice
	ses.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice, args ...interface{}) error {
		if notice == notifications.NotifyOpcodeSkipped {
			skipped = append(skipped, notice)
			test.ExpectEquality(t, args[0], interface{}(uint8(0x4f)))
		}
		return nil
	}))

	st, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.Writes, 2)
	test.ExpectEquality(t, st.Skipped, 1)
	test.ExpectEquality(t, len(skipped), 1)
	test.ExpectEquality(t, len(rec.sent), 8)
}

func dataBlock(blockType byte, romSize uint32, start uint32, payload ...byte) []byte {
	b := []byte{0x67, 0x66, blockType, 0, 0, 0, 0}
	binary.LittleEndian.PutUint32(b[3:], uint32(8+len(payload)))
	b = binary.LittleEndian.AppendUint32(b, romSize)
	b = binary.LittleEndian.AppendUint32(b, start)
	return append(b, payload...)
}

func TestDataBlock(t *testing.T) {
	payload := []byte{0x01, 0x23, 0x45}
	data := append(dataBlock(opna.DeltaTROM, 0x40000, 0, payload...), 0x66)

	ses, rec, _ := newSession(t, vgmFile(0, 7987200, data...), newPreferences(t))

	var loaded int
	ses.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice, args ...interface{}) error {
		if notice == notifications.NotifyDataBlockLoaded {
			loaded = args[0].(int)
		}
		return nil
	}))

	st, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)

	seq, err := opna.DeltaTWrite(dump.DataBlock{
		Device:    dump.DeviceOPNA,
		BlockType: opna.DeltaTROM,
		ROMSize:   0x40000,
		Payload:   payload,
	})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, st.DataBlocks, 1)
	test.ExpectEquality(t, st.Writes, len(seq))
	test.ExpectEquality(t, len(rec.sent), len(seq)*4)
	test.ExpectEquality(t, loaded, len(payload))

	// every write is to the extended registers of the OPNA slot
	for i := 0; i < len(rec.sent); i += 4 {
		test.ExpectEquality(t, rec.sent[i], byte(1), i)
		test.ExpectEquality(t, rec.sent[i+1], byte(0x02), i)
	}
}

func TestUnsupportedDataBlock(t *testing.T) {
	data := append(dataBlock(0x82, 0x100, 0, 0xaa), 0x56, 0x10, 0x20, 0x66)

	ses, rec, _ := newSession(t, vgmFile(0, 7987200, data...), newPreferences(t))

	var skipped bool
	ses.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice, args ...interface{}) error {
		skipped = skipped || notice == notifications.NotifyDataBlockSkipped
		return nil
	}))

	st, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, skipped)
	test.ExpectEquality(t, st.DataBlocks, 0)
	test.ExpectEquality(t, st.Skipped, 1)
	test.ExpectSliceEquality(t, rec.sent, []byte{0x01, 0x00, 0x10, 0x20})
}

func TestCancel(t *testing.T) {
	ses, rec, _ := newSession(t, vgmFile(3579545, 0,
		0x54, 0x10, 0x20,
		0x66,
	), newPreferences(t))

	var notices []notifications.Notice
	ses.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice, args ...interface{}) error {
		notices = append(notices, notice)
		return nil
	}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st, err := ses.Play(ctx)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Cancelled)
	test.ExpectEquality(t, st.Events, 0)
	test.ExpectEquality(t, len(rec.sent), 0)
	test.ExpectSliceEquality(t, notices, []notifications.Notice{
		notifications.NotifyPlaybackStarted,
		notifications.NotifyPlaybackCancelled,
	})
}

func TestCancelDuringPlayback(t *testing.T) {
	ses, _, _ := newSession(t, vgmFile(3579545, 0,
		0x54, 0x10, 0x20,
		0x62,
		0x54, 0x11, 0x21,
		0x66,
	), newPreferences(t))

	ctx, cancel := context.WithCancel(context.Background())

	// cancel after the first event
	ses.SetTrace(&cancelAfter{cancel: cancel})

	st, err := ses.Play(ctx)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, st.Cancelled)
	test.ExpectEquality(t, st.Events, 1)
	test.ExpectEquality(t, st.Writes, 1)
}

// cancelAfter is a logging permission that cancels the context the first time
// it is asked for permission
type cancelAfter struct {
	cancel context.CancelFunc
}

func (c *cancelAfter) AllowLogging() bool {
	c.cancel()
	return false
}

func TestPlaybackNotices(t *testing.T) {
	ses, _, _ := newSession(t, vgmFile(3579545, 0, 0x62, 0x66), newPreferences(t))

	var notices []notifications.Notice
	ses.SetNotify(notifications.NotifyFunc(func(notice notifications.Notice, args ...interface{}) error {
		notices = append(notices, notice)
		return nil
	}))

	st, err := ses.Play(context.Background())
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, st.Elapsed, 735*time.Second/44100)
	test.ExpectSliceEquality(t, notices, []notifications.Notice{
		notifications.NotifyPlaybackStarted,
		notifications.NotifyPlaybackEnded,
	})
}
