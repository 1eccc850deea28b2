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

package performance

import "time"

// CalcAccuracy compares the length of the dump that was played with the wall
// clock time taken to play it, as a percentage. A value over 100 means that
// playback ran fast.
func CalcAccuracy(played time.Duration, wall time.Duration) float64 {
	if wall <= 0 {
		return 0
	}
	return 100 * played.Seconds() / wall.Seconds()
}
