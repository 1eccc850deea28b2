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

package dump

// Decoder is implemented by the format specific decoders.
type Decoder interface {
	// Format of the dump being decoded
	Format() Format

	// Next decodes the next opcode in the stream and returns the resulting
	// event. Once End has been returned, all further calls will also return End
	Next() (Event, error)
}
