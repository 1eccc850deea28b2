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

package modalflag

import (
	"flag"
	"io"
	"os"
	"strings"
)

const modeSeparator = "/"

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with command line processing. if sub-modes were added then
	// Mode() will return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been printed
	ParseHelp

	// an error has occurred and is returned as the second return value
	ParseError
)

// Modes provides an easy way of handling command line arguments. The Output
// field should be specified before calling Parse() or help messages will be
// written to os.Stdout.
type Modes struct {
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	fs *flag.FlagSet

	args []string
	pos  int

	// sub-modes for the next call to Parse(). the first is the default
	choices []string

	// modes selected by previous calls to Parse()
	selected []string

	extraHelp string
}

func (m *Modes) String() string {
	return m.Path()
}

// Mode returns the most recently selected mode.
func (m *Modes) Mode() string {
	if len(m.selected) == 0 {
		return ""
	}
	return m.selected[len(m.selected)-1]
}

// Path returns all the modes selected by calls to Parse().
func (m *Modes) Path() string {
	return strings.Join(m.selected, modeSeparator)
}

// NewArgs starts command line processing with a new list of arguments.
func (m *Modes) NewArgs(args []string) {
	m.args = args
	m.pos = 0
	m.selected = m.selected[:0]
	m.NewMode()
}

// NewMode indicates that further arguments should be considered part of a new
// mode.
func (m *Modes) NewMode() {
	m.choices = m.choices[:0]
	m.extraHelp = ""
	m.fs = flag.NewFlagSet("", flag.ContinueOnError)
}

// AdditionalHelp adds text to be displayed after the help for the flags and
// sub-modes of the current mode.
func (m *Modes) AdditionalHelp(help string) {
	m.extraHelp = help
}

// AddSubModes adds to the list of sub-modes for the next call to Parse(). The
// first sub-mode is the default.
func (m *Modes) AddSubModes(subModes ...string) {
	for _, s := range subModes {
		m.choices = append(m.choices, strings.ToUpper(s))
	}
}

// AddBool flag for next call to Parse().
func (m *Modes) AddBool(name string, value bool, usage string) *bool {
	return m.fs.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (m *Modes) AddInt(name string, value int, usage string) *int {
	return m.fs.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (m *Modes) AddString(name string, value string, usage string) *string {
	return m.fs.String(name, value, usage)
}

// Parse the arguments for the current mode.
//
// Help is printed automatically when requested with -help or -h, in which
// case ParseHelp is returned. The caller should treat ParseHelp like an error
// that has already been reported.
//
// An unrecognised flag is an error unless sub-modes have been added. In that
// case the default sub-mode is selected and the flags are left for the next
// call to Parse().
func (m *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	m.fs.SetOutput(hw)

	err := m.fs.Parse(m.args[m.pos:])
	if err == flag.ErrHelp {
		out := m.Output
		if out == nil {
			out = os.Stdout
		}
		hw.help(out, m.Path(), m.choices, m.extraHelp)
		return ParseHelp, nil
	}

	if err != nil {
		if len(m.choices) == 0 {
			return ParseError, err
		}
		m.selected = append(m.selected, m.choices[0])
		return ParseContinue, nil
	}

	// flags are consumed by this mode
	m.pos = len(m.args) - m.fs.NArg()

	if len(m.choices) == 0 {
		return ParseContinue, nil
	}

	mode := m.choices[0]
	arg := strings.ToUpper(m.fs.Arg(0))
	for _, c := range m.choices {
		if c == arg {
			mode = c
			m.pos++
			break // for loop
		}
	}
	m.selected = append(m.selected, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments after the flags and the selected mode.
func (m *Modes) RemainingArgs() []string {
	return m.args[m.pos:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (m *Modes) GetArg(i int) string {
	rem := m.RemainingArgs()
	if i < 0 || i >= len(rem) {
		return ""
	}
	return rem[i]
}

// Visit calls fn for each flag that was set on the command line, in
// lexicographical order.
func (m *Modes) Visit(fn func(flag string)) {
	m.fs.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
