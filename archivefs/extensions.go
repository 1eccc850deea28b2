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

package archivefs

import (
	"path/filepath"
	"strings"
)

// ArchiveExtensions lists the file extensions of the supported archive types.
var ArchiveExtensions = [...]string{".ZIP"}

// PlayableExtensions lists the file extensions of dumps that can be played.
var PlayableExtensions = [...]string{".S98", ".VGM", ".VGZ"}

func hasExt(name string, exts []string) bool {
	ext := strings.ToUpper(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

// IsArchive returns true if the filename has the extension of a supported
// archive type.
func IsArchive(name string) bool {
	return hasExt(name, ArchiveExtensions[:])
}

// IsPlayable returns true if the filename has the extension of a dump that can
// be played.
func IsPlayable(name string) bool {
	return hasExt(name, PlayableExtensions[:])
}
