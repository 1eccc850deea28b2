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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. The Has() function is similar but checks if a pattern
// occurs somewhere in the error chain. For example:
//
//	e := curated.Errorf("truncated: %v at offset %#x", io.EOF, 0x1c)
//	f := curated.Errorf("s98: %v", e)
//
//	curated.Is(f, "truncated: %v at offset %#x") == false
//	curated.Has(f, "truncated: %v at offset %#x") == true
//
// Patterns used in this way act as sentinels. They should be stored as const
// strings, suitably named and commented. The faults package declares the
// patterns used by the dump decoders and the device protocol.
//
// The IsAny() function answers whether the error was created by
// curated.Errorf(). Put another way, it returns true if the error is 'curated'
// and false if the error is 'uncurated'.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts. For example, wrapping an error created with the
// pattern "vgm: %v" inside another "vgm: %v" error results in the message:
//
//	vgm: unsupported chip: dual chip
//
// and not:
//
//	vgm: vgm: unsupported chip: dual chip
//
// Curated errors also implement Unwrap(). The first value that is an error is
// returned, which means that errors.Is() from the standard library can find
// uncurated errors (io.EOF for example) that have been wrapped.
package curated
