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

package vgm

import (
	"encoding/binary"
	"fmt"
	"strings"
	"unicode/utf16"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/faults"
)

// GD3 is the metadata tag of a VGM file. Strings are in English and, where
// available, in the original language (usually Japanese).
type GD3 struct {
	Version uint32

	Track          string
	TrackOriginal  string
	Game           string
	GameOriginal   string
	System         string
	SystemOriginal string
	Author         string
	AuthorOriginal string
	Date           string
	Ripper         string
	Notes          string
}

func (g GD3) String() string {
	s := strings.Builder{}
	field := func(name string, en string, orig string) {
		if en == "" && orig == "" {
			return
		}
		if orig == "" || orig == en {
			s.WriteString(fmt.Sprintf("%s: %s\n", name, en))
			return
		}
		s.WriteString(fmt.Sprintf("%s: %s (%s)\n", name, en, orig))
	}
	field("track", g.Track, g.TrackOriginal)
	field("game", g.Game, g.GameOriginal)
	field("system", g.System, g.SystemOriginal)
	field("author", g.Author, g.AuthorOriginal)
	field("date", g.Date, "")
	field("ripper", g.Ripper, "")
	field("notes", g.Notes, "")
	return s.String()
}

// the number of strings in a GD3 tag
const gd3Strings = 11

// maximum length of the GD3 tag. real tags are much smaller than this
const maxGD3Len = 0x10000

// GD3 reads the metadata tag of the VGM file. Returns nil and no error if the
// file doesn't have a tag. The position of the decoder is unchanged.
func (dec *Decoder) GD3() (*GD3, error) {
	if dec.Header.GD3Offset == 0 {
		return nil, nil
	}

	restore := dec.c.Offset()
	defer dec.c.SeekTo(restore)

	if err := dec.c.SeekTo(gd3OffsetBase + int64(dec.Header.GD3Offset)); err != nil {
		return nil, curated.Errorf("gd3: %v", err)
	}

	ident, err := dec.c.ReadBytes(4)
	if err != nil {
		return nil, curated.Errorf("gd3: %v", err)
	}
	if string(ident) != "Gd3 " {
		return nil, curated.Errorf("gd3: %v", curated.Errorf(faults.BadMagic, string(ident)))
	}

	g := &GD3{}
	if g.Version, err = dec.c.ReadU32LE(); err != nil {
		return nil, curated.Errorf("gd3: %v", err)
	}

	n, err := dec.c.ReadU32LE()
	if err != nil {
		return nil, curated.Errorf("gd3: %v", err)
	}
	if n > maxGD3Len {
		return nil, curated.Errorf("gd3: %v", curated.Errorf(faults.BufferOverflow, "tag too long"))
	}

	data, err := dec.c.ReadBytes(int(n))
	if err != nil {
		return nil, curated.Errorf("gd3: %v", err)
	}

	s := decodeUTF16Strings(data)
	for len(s) < gd3Strings {
		s = append(s, "")
	}

	g.Track, g.TrackOriginal = s[0], s[1]
	g.Game, g.GameOriginal = s[2], s[3]
	g.System, g.SystemOriginal = s[4], s[5]
	g.Author, g.AuthorOriginal = s[6], s[7]
	g.Date, g.Ripper, g.Notes = s[8], s[9], s[10]

	return g, nil
}

// decodeUTF16Strings splits little-endian UTF-16 data into strings on each NUL
// character. an odd trailing byte is ignored
func decodeUTF16Strings(data []byte) []string {
	var s []string
	var u []uint16

	for i := 0; i+1 < len(data); i += 2 {
		c := binary.LittleEndian.Uint16(data[i:])
		if c == 0 {
			s = append(s, string(utf16.Decode(u)))
			u = u[:0]
			continue
		}
		u = append(u, c)
	}

	if len(u) > 0 {
		s = append(s, string(utf16.Decode(u)))
	}

	return s
}
