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

package paths

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

const timestampLayout = "20060102_150405"

// UniqueFilename returns a base filename for output files. The result is of
// the form:
//
//	prepend_name_YYYYMMDD_HHMMSS
//
// or prepend_YYYYMMDD_HHMMSS if name is empty. Callers append their own
// suffixes (the profiler adds "_cpu.profile" etc.) so if any file in the
// working directory already begins with the base name a counter is added.
func UniqueFilename(prepend string, name string) string {
	parts := []string{prepend}
	if n := strings.TrimSpace(name); n != "" {
		parts = append(parts, n)
	}
	parts = append(parts, time.Now().Format(timestampLayout))
	base := strings.Join(parts, "_")

	fn := base
	for i := 1; taken(fn); i++ {
		fn = fmt.Sprintf("%s_%d", base, i)
	}
	return fn
}

func taken(base string) bool {
	m, err := filepath.Glob(base + "*")
	return err == nil && len(m) > 0
}
