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

package main

import (
	"fmt"
	"io"

	"github.com/yasp-player/yasp/archivefs"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/modalflag"
)

func list(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	all := md.AddBool("all", false, "list all entries and not only playable dumps")

	if ok, err := parseMode(md); !ok {
		return err
	}

	pth := "."
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		pth = md.GetArg(0)
	default:
		return curated.Errorf(argsError, "too many arguments for LIST mode")
	}

	var afs archivefs.Path
	defer afs.Close()

	if err := afs.Set(pth); err != nil {
		return err
	}

	nodes, err := afs.List()
	if err != nil {
		return err
	}

	for _, n := range nodes {
		if n.IsPlayable || *all || n.IsDir {
			fmt.Fprintln(output, n)
		}
	}

	return nil
}
