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

// Package version reports the version of the application. The version number
// is set at link time:
//
//	go build -ldflags "-X github.com/yasp-player/yasp/version.number=v0.1.0"
//
// Without a version number, the version is "unreleased" if the build has vcs
// information and "local" if it does not.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "yasp"

// set by the linker
var number string

var (
	version  string
	revision string
)

// Version returns the version string, the revision string and whether this is
// a numbered release.
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

// String returns the application name and version in a form suitable for
// printing to the terminal.
func String() string {
	if number != "" {
		return fmt.Sprintf("%s %s", ApplicationName, version)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, version, revision)
}

func init() {
	version, revision = fromBuildInfo(debug.ReadBuildInfo())
	if number != "" {
		version = number
	}
}

// fromBuildInfo returns the version and revision from the vcs settings of the
// build information.
func fromBuildInfo(info *debug.BuildInfo, ok bool) (string, string) {
	if !ok || info == nil {
		return "local", "no revision information"
	}

	var vcs bool
	var rev string
	var modified bool

	for _, s := range info.Settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	ver := "local"
	if vcs {
		ver = "unreleased"
	}

	if rev == "" {
		return ver, "no revision information"
	}
	if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	return ver, rev
}
