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

// Package statsview offers runtime statistics for a playback session over a
// local HTTP server. The server is only compiled when the statsview build tag
// is present. Without the tag, Available() returns false and Launch() only
// reports that the server is missing.
//
// The server is useful for watching the garbage collector during playback of
// long dumps. Pauses in the collector delay register writes and are heard as
// stutters.
//
// After launch, graphical statistics will be viewable at:
//
//	localhost:12598/debug/statsview
//
// And standard Go pprof statistics available at:
//
//	localhost:12598/debug/pprof/
package statsview
