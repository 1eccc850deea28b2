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

// Package player drives the events of a dump through the playback clock and
// the SPFM protocol.
//
// A decoder for a dump is created with Open(). A Session is then created for
// the decoder and a connected spfm.Protocol:
//
//	dec, err := player.Open(r)
//	ses, err := player.NewSession(dec, proto, prefs, clock.RealTime)
//	stats, err := ses.Play(ctx)
//
// Play() returns when the end of the dump is reached, when an error occurs or
// when the context is cancelled. The context is checked once per event, so a
// long wait or a data block that is being written will not be interrupted.
//
// Errors during playback leave the sound chips in whatever state the last
// register write left them. It is the caller's responsibility to reset the
// device with spfm.Protocol.Reset().
package player
