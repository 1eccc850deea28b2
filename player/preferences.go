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

package player

import (
	"strings"

	"github.com/yasp-player/yasp/prefs"
	"github.com/yasp-player/yasp/spfm"
	"github.com/yasp-player/yasp/spfm/serial"
)

// Values of the playback.unrecognised preference.
const (
	// unrecognised opcodes end playback with an error
	UnrecognisedFail = "FAIL"

	// unrecognised opcodes are logged and skipped
	UnrecognisedSkip = "SKIP"
)

// Preferences for the playback session and the SPFM device.
type Preferences struct {
	dsk *prefs.Disk

	// serial device of the SPFM Light
	Device prefs.String

	// baud rate of the serial device
	Baud prefs.Int

	// timeout in milliseconds of each readiness poll of the serial device
	PollMS prefs.Int

	// the slots in the SPFM Light of the YM2151 and YM2608 modules
	OPMSlot  prefs.Int
	OPNASlot prefs.Int

	// how unrecognised opcodes are handled. UnrecognisedFail or
	// UnrecognisedSkip
	Unrecognised prefs.String

	// drift compensation of the playback clock
	Compensate prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default preferences file,
// which is created if it does not exist.
func NewPreferences() (*Preferences, error) {
	pth, err := prefs.DefaultPrefsPath()
	if err != nil {
		return nil, err
	}
	return NewPreferencesFile(pth)
}

// NewPreferencesFile is like NewPreferences() but loads the preferences from
// the named file.
func NewPreferencesFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.Unrecognised.SetChoices(UnrecognisedFail, UnrecognisedSkip)
	p.OPMSlot.SetRange(0, 1)
	p.OPNASlot.SetRange(0, 1)
	p.PollMS.SetRange(1, 1000)
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("spfm.device", &p.Device)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("spfm.baud", &p.Baud)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("spfm.pollms", &p.PollMS)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("spfm.opmslot", &p.OPMSlot)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("spfm.opnaslot", &p.OPNASlot)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playback.unrecognised", &p.Unrecognised)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("playback.compensate", &p.Compensate)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.Device.Set("/dev/ttyUSB0")
	p.Baud.Set(serial.DefaultBaud)
	p.PollMS.Set(int(spfm.DefaultPoll.Milliseconds()))
	p.OPMSlot.Set(0)
	p.OPNASlot.Set(1)
	p.Unrecognised.Set(UnrecognisedFail)
	p.Compensate.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// skipUnrecognised returns true if unrecognised opcodes should be skipped.
func (p *Preferences) skipUnrecognised() bool {
	return strings.EqualFold(p.Unrecognised.String(), UnrecognisedSkip)
}
