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

// Package dumploader loads the data of a dump from a local file, from a file
// inside a zip archive, from standard input or over HTTP. The filename "-"
// indicates standard input. Standard input is refused if it is a terminal.
//
// Gzip compressed data (VGZ files are gzip compressed VGM files) is
// decompressed automatically, whatever the file extension.
//
// The loaded data is kept in memory. Dumps are small and both decoders need
// to seek in the data.
package dumploader
