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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/yasp-player/yasp/clock"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/s98"
	"github.com/yasp-player/yasp/dump/vgm"
	"github.com/yasp-player/yasp/dumploader"
	"github.com/yasp-player/yasp/modalflag"
	"github.com/yasp-player/yasp/player"
)

func info(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	memvizFile := md.AddString("memviz", "", "write a graphviz file of the decoded header")

	if ok, err := parseMode(md); !ok {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf(argsError, "one dump file required for INFO mode")
	}

	ld := dumploader.NewLoader(md.GetArg(0))
	if err := ld.Load(); err != nil {
		return err
	}

	dec, err := player.Open(ld.Reader())
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s: %s, %d bytes", ld.ShortName(), dec.Format(), len(ld.Data))
	if ld.Compressed {
		fmt.Fprint(output, " (compressed)")
	}
	fmt.Fprintf(output, "\nsha1: %s\n", ld.Hash)

	var hdr interface{}
	var clk *clock.Clock

	switch d := dec.(type) {
	case *s98.Decoder:
		hdr = &d.Header
		clk = clock.NewS98(d.Step(), clock.RealTime)
		fmt.Fprintln(output, d.Header)

	case *vgm.Decoder:
		hdr = &d.Header
		clk = clock.NewVGM(clock.RealTime)
		fmt.Fprintln(output, d.Header)

		gd3, err := d.GD3()
		if err != nil {
			fmt.Fprintf(output, "gd3: %v\n", err)
		} else if gd3 != nil {
			fmt.Fprintln(output, gd3)
		}
	}

	// scan the events for a summary
	var events, writes, blocks, unrecognised int
	var units uint64
	for done := false; !done; {
		ev, err := dec.Next()
		if err != nil {
			fmt.Fprintf(output, "scan stopped after %d events: %v\n", events, err)
			break // for loop
		}
		events++

		switch ev := ev.(type) {
		case dump.RegisterWrite:
			writes++
		case dump.Wait:
			units += ev.Units
		case dump.DataBlock:
			blocks++
		case dump.Unrecognised:
			unrecognised++
		case dump.End:
			done = true
		}
	}

	fmt.Fprintf(output, "events: %d (%d writes, %d data blocks, %d unrecognised)\n", events, writes, blocks, unrecognised)
	fmt.Fprintf(output, "playing time: %v\n", clk.Elapsed(units).Round(time.Millisecond))

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		defer f.Close()
		memviz.Map(f, hdr)
	}

	return nil
}
