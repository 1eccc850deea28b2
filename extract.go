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
	"path/filepath"

	"github.com/yasp-player/yasp/adpcm"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dumploader"
	"github.com/yasp-player/yasp/logger"
	"github.com/yasp-player/yasp/modalflag"
	"github.com/yasp-player/yasp/opna"
	"github.com/yasp-player/yasp/player"
	"github.com/yasp-player/yasp/wavwriter"
)

// the playback rate of ADPCM-B samples depends on the delta-N register, which
// is set by the dump after the data block is loaded. 16kHz is typical
const defaultExtractRate = 16000

func extract(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	rate := md.AddInt("rate", defaultExtractRate, "sample rate of the WAV files")
	outDir := md.AddString("out", ".", "directory for the WAV files")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(argsError, "one dump file required for EXTRACT mode")
	}

	if *rate <= 0 {
		return curated.Errorf(argsError, fmt.Sprintf("sample rate must be positive (%d)", *rate))
	}

	ld := dumploader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	dec, err := player.Open(ld.Reader())
	if err != nil {
		return err
	}

	if dec.Format() != dump.FormatVGM {
		return curated.Errorf("extract: %v", fmt.Sprintf("%s files do not have data blocks", dec.Format()))
	}

	var n int

	for ctx.Err() == nil {
		ev, err := dec.Next()
		if err != nil {
			return err
		}

		switch ev := ev.(type) {
		case dump.End:
			if n == 0 {
				fmt.Fprintf(output, "%s: no ADPCM data blocks\n", ld.ShortName())
			}
			return nil

		case dump.DataBlock:
			if ev.BlockType != opna.DeltaTROM {
				logger.Logf(logger.Allow, "extract", "skipping data block of type %#02x", ev.BlockType)
				continue // for loop
			}

			fn := filepath.Join(*outDir, fmt.Sprintf("%s_%02d_%06x.wav", ld.ShortName(), n, ev.StartAddr))

			aw, err := wavwriter.New(fn, *rate)
			if err != nil {
				return err
			}
			aw.Append(adpcm.Decode(ev.Payload))
			if err := aw.Close(); err != nil {
				return err
			}

			fmt.Fprintf(output, "%s: %d samples\n", fn, aw.Len())
			n++
		}
	}

	return nil
}
