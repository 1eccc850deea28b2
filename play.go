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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/yasp-player/yasp/clock"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dumploader"
	"github.com/yasp-player/yasp/logger"
	"github.com/yasp-player/yasp/modalflag"
	"github.com/yasp-player/yasp/notifications"
	"github.com/yasp-player/yasp/paths"
	"github.com/yasp-player/yasp/performance"
	"github.com/yasp-player/yasp/player"
	"github.com/yasp-player/yasp/prefs"
	"github.com/yasp-player/yasp/spfm"
	"github.com/yasp-player/yasp/spfm/serial"
	"github.com/yasp-player/yasp/statsview"
)

// number of log entries to show when playback fails
const tailOnFailure = 10

func play(ctx context.Context, md *modalflag.Modes, output io.Writer) (rerr error) {
	md.NewMode()

	log := md.AddBool("log", false, "echo log to stderr")
	trace := md.AddBool("trace", false, "log every register write (implies -log)")
	prefsArg := md.AddString("prefs", "", "preferences for this session only (eg. \"spfm.opnaslot::0; spfm.pollms::5\")")
	device := md.AddString("device", "", "serial device of the SPFM Light (overrides spfm.device preference)")
	dry := md.AddBool("dry", false, "decode and pace the dump without the SPFM Light")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM, TRACE, ALL (comma separated)")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return curated.Errorf(argsError, "dump file required for PLAY mode")
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return curated.Errorf(argsError, err)
	}

	if *log || *trace {
		logger.SetEcho(os.Stderr, false)
	} else {
		logger.SetEcho(nil, false)
		defer func() {
			if rerr != nil {
				logger.Tail(os.Stderr, tailOnFailure)
			}
		}()
	}

	if *prefsArg != "" {
		prefs.PushCommandLineStack(*prefsArg)
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "yasp", "unused preferences: %s", unused)
			}
		}()
	}

	prf, err := player.NewPreferences()
	if err != nil {
		return err
	}

	if *device != "" {
		if err := prf.Device.Set(*device); err != nil {
			return curated.Errorf(argsError, err)
		}
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	var ch spfm.Channel
	if *dry {
		ch = spfm.NewNullDevice()
	} else {
		port, err := serial.Open(prf.Device.String(), prf.Baud.Get().(int))
		if err != nil {
			return err
		}
		defer port.Close()
		ch = port
	}

	perm := logger.Toggle(*trace)

	proto := spfm.NewProtocol(ch, time.Duration(prf.PollMS.Get().(int))*time.Millisecond)
	proto.SetTrace(perm)
	if err := proto.Connect(); err != nil {
		return err
	}

	// leave the sound chips silent whatever happens
	defer func() {
		if proto.State() != spfm.Ready {
			return
		}
		if err := proto.Reset(); err != nil {
			logger.Logf(logger.Allow, "yasp", "reset: %v", err)
		}
	}()

	runner := func() error {
		for _, fn := range md.RemainingArgs() {
			if ctx.Err() != nil {
				return nil
			}
			if err := playFile(ctx, fn, proto, prf, perm, output); err != nil {
				return err
			}
		}
		return nil
	}

	return performance.RunProfiler(prof, paths.UniqueFilename("play", ""), runner)
}

func playFile(ctx context.Context, filename string, proto *spfm.Protocol, prf *player.Preferences, perm logger.Permission, output io.Writer) error {
	ld := dumploader.NewLoader(filename)
	if err := ld.Load(); err != nil {
		return err
	}

	dec, err := player.Open(ld.Reader())
	if err != nil {
		return err
	}

	ses, err := player.NewSession(dec, proto, prf, clock.RealTime)
	if err != nil {
		return err
	}
	ses.SetTrace(perm)
	ses.SetNotify(&progress{output: output, name: ld.ShortName()})

	st, err := ses.Play(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %s (%.1f%%)\n", ld.ShortName(), st, performance.CalcAccuracy(st.Elapsed, st.Wall))

	// silence the chips before the next dump
	return proto.Reset()
}

// progress prints playback notifications to the terminal.
type progress struct {
	output io.Writer
	name   string
}

// Notify implements the notifications.Notify interface.
func (p *progress) Notify(notice notifications.Notice, args ...interface{}) error {
	switch notice {
	case notifications.NotifyPlaybackStarted:
		fmt.Fprintf(p.output, "playing %s (%v)\n", p.name, args[0])
	case notifications.NotifyPlaybackCancelled:
		fmt.Fprintf(p.output, "%s: cancelled\n", p.name)
	case notifications.NotifyDataBlockLoaded:
		fmt.Fprintf(p.output, "%s: loaded %d bytes of ADPCM data\n", p.name, args[0])
	case notifications.NotifyDataBlockSkipped:
		fmt.Fprintf(p.output, "%s: skipped data block of type %#02x\n", p.name, args[0])
	}
	return nil
}
