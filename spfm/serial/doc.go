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

// Package serial implements the spfm.Channel interface for a serial device.
// The SPFM Light is connected with a USB serial adaptor and the device is
// configured as:
//
//	baud rate:    1500000
//	data size:    8 bits
//	parity:       none
//	flow control: none
//
// The baud rate can be changed with the spfm.baud preference.
package serial
