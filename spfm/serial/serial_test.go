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

//go:build !windows

package serial_test

import (
	"testing"

	"github.com/yasp-player/yasp/spfm"
	"github.com/yasp-player/yasp/spfm/serial"
	"github.com/yasp-player/yasp/test"
)

// the Port type must satisfy the Channel interface
var _ spfm.Channel = (*serial.Port)(nil)

func TestOpenMissingDevice(t *testing.T) {
	_, err := serial.Open("/dev/yasp-no-such-device", serial.DefaultBaud)
	test.ExpectFailure(t, err)
}
