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

package test

import "strings"

// CompareWriter captures output written to it so that it can be compared with
// an expected string.
type CompareWriter struct {
	strings.Builder
}

// Compare the captured output with the expected string.
func (tw *CompareWriter) Compare(expected string) bool {
	return tw.String() == expected
}

// Clear the captured output.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}
