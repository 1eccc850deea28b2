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

// Package dump defines the events decoded from chip-music dump files and the
// Decoder interface implemented by the format specific packages (dump/s98 and
// dump/vgm).
//
// Events are decoded lazily, one opcode at a time, with the Next() function
// of the Decoder. The event stream always ends with an End event:
//
//	for {
//		ev, err := dec.Next()
//		if err != nil {
//			return err
//		}
//		switch ev := ev.(type) {
//		case dump.RegisterWrite:
//			...
//		case dump.End:
//			return nil
//		}
//	}
//
// The format of a file can be determined with Sniff().
package dump
