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

// Package modalflag wraps the flag package of the standard library to handle
// program modes. A mode is a command line argument that selects a different
// mode of operation, each with its own set of flags. For example, the go
// command has the build, doc and test modes.
//
// Arguments are given to NewArgs() and flags are added before calling Parse().
// Parse() has no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("PLAY", "INFO")
//	log := md.AddBool("log", false, "echo log to stderr")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
// After parsing, Mode() returns the selected sub-mode. The first sub-mode in
// the list is the default and is selected if the first argument after the
// flags is not a sub-mode. Comparisons are case insensitive.
//
// Calling NewMode() prepares for the flags of the selected mode. The next call
// to Parse() continues from the argument after the mode:
//
//	switch md.Mode() {
//	case "PLAY":
//		md.NewMode()
//		dry := md.AddBool("dry", false, "play without hardware")
//		md.Parse()
//		play(md.RemainingArgs(), *dry)
//	}
//
// Path() returns all the modes selected so far, separated by a slash.
package modalflag
