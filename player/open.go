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
	"io"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/dump"
	"github.com/yasp-player/yasp/dump/s98"
	"github.com/yasp-player/yasp/dump/vgm"
	"github.com/yasp-player/yasp/faults"
	"github.com/yasp-player/yasp/logger"
)

// Open determines the format of the dump and returns a decoder for it. The
// header of the dump is parsed before the function returns. A stream that is
// neither S98 nor VGM fails with the faults.BadMagic pattern.
func Open(r io.ReadSeeker) (dump.Decoder, error) {
	format := dump.Sniff(r)
	logger.Logf(logger.Allow, "player", "format is %s", format)

	switch format {
	case dump.FormatS98:
		return s98.NewDecoder(r)
	case dump.FormatVGM:
		return vgm.NewDecoder(r)
	}

	magic := make([]byte, 3)
	n, _ := io.ReadFull(r, magic)
	r.Seek(0, io.SeekStart)

	return nil, curated.Errorf("player: %v", curated.Errorf(faults.BadMagic, string(magic[:n])))
}
