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

package spfm

import (
	"io"
	"time"
)

// Channel is a duplex byte stream to the SPFM Light.
//
// The WaitWritable() and WaitReadable() functions block for no longer than
// the timeout and return true if the channel is ready.
type Channel interface {
	io.Reader
	io.Writer
	WaitWritable(timeout time.Duration) (bool, error)
	WaitReadable(timeout time.Duration) (bool, error)
}
