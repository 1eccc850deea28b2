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

package notifications

// Notice describes events that happen during playback.
type Notice string

// List of defined notifications.
const (
	// the device handshake has completed and the first event is about to be
	// decoded
	NotifyPlaybackStarted Notice = "NotifyPlaybackStarted"

	// the end of the dump has been reached
	NotifyPlaybackEnded Notice = "NotifyPlaybackEnded"

	// playback was stopped before the end of the dump
	NotifyPlaybackCancelled Notice = "NotifyPlaybackCancelled"

	// a delta-T data block has been written to the YM2608's memory
	NotifyDataBlockLoaded Notice = "NotifyDataBlockLoaded"

	// a data block was skipped because it can't be written to the hardware
	NotifyDataBlockSkipped Notice = "NotifyDataBlockSkipped"

	// an unrecognised opcode was skipped
	NotifyOpcodeSkipped Notice = "NotifyOpcodeSkipped"
)

// Notify is implemented by types that want to be told about playback events.
// The args are specific to the notice. For example, NotifyDataBlockLoaded is
// sent with the number of bytes loaded.
type Notify interface {
	Notify(notice Notice, args ...interface{}) error
}

// NotifyFunc allows a function to be used as a Notify implementation.
type NotifyFunc func(notice Notice, args ...interface{}) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice, args ...interface{}) error {
	return f(notice, args...)
}
