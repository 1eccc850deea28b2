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

package archivefs

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/yasp-player/yasp/curated"
)

// Node represents a single entry in a directory or archive.
type Node struct {
	Name string

	// an archive is also a directory
	IsDir     bool
	IsArchive bool

	// the entry has the extension of a dump that can be played
	IsPlayable bool
}

func (n Node) String() string {
	if n.IsDir {
		return n.Name + "/"
	}
	return n.Name
}

func newNode(name string, isDir bool) Node {
	return Node{
		Name:       name,
		IsDir:      isDir,
		IsPlayable: !isDir && IsPlayable(name),
	}
}

// Path represents a single destination in the file system. The zero value is
// an empty path.
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// location inside the zip file. zip files always use forward slashes
	inZipDir  string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open the file at the current path.
//
// Returns an io.ReadSeeker, the size of the data behind the ReadSeeker and any
// errors. Files inside an archive are read into memory.
func (afs Path) Open() (io.ReadSeeker, int64, error) {
	if afs.isDir {
		return nil, 0, curated.Errorf("archivefs: open: %v", "path is a directory")
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipDir, afs.inZipFile))
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}
		defer f.Close()

		b, err := io.ReadAll(f)
		if err != nil {
			return nil, 0, curated.Errorf("archivefs: open: %v", err)
		}

		return bytes.NewReader(b), int64(len(b)), nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, curated.Errorf("archivefs: open: %v", err)
	}

	return f, info.Size(), nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipDir = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// List returns the entries at the current path. If the current path is a file
// then the entries are those of the containing directory.
func (afs *Path) List() ([]Node, error) {
	var nodes []Node

	if afs.zf != nil {
		for _, f := range afs.zf.File {
			name := strings.TrimSuffix(f.Name, "/")
			dir := path.Dir(name)
			if dir == "." {
				dir = ""
			}
			if dir != afs.inZipDir {
				continue
			}
			nodes = append(nodes, newNode(path.Base(name), f.FileInfo().IsDir()))
		}

		Sort(nodes)
		return nodes, nil
	}

	dir := afs.current
	if !afs.isDir {
		dir = filepath.Dir(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, curated.Errorf("archivefs: list: %v", err)
	}

	for _, d := range entries {
		// os.Stat() follows links to directories
		fi, err := os.Stat(filepath.Join(dir, d.Name()))
		if err != nil {
			continue
		}

		if fi.IsDir() {
			nodes = append(nodes, newNode(d.Name(), true))
			continue
		}

		if IsArchive(d.Name()) {
			nodes = append(nodes, Node{
				Name:      d.Name(),
				IsDir:     true,
				IsArchive: true,
			})
			continue
		}

		nodes = append(nodes, newNode(d.Name(), false))
	}

	Sort(nodes)
	return nodes, nil
}

// Set the path. Each element of the path is checked in turn. The first element
// that is a zip archive is opened and the remaining elements are looked for
// inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// restore the leading separator removed by strings.Split()
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipDir, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}
			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", err)
			}

			if afs.inZipFile != "" {
				afs.Close()
				return curated.Errorf("archivefs: set: %v", "path continues after a file")
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipDir = p
			} else {
				afs.inZipFile = l
			}

			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return curated.Errorf("archivefs: set: %v", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive is a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return curated.Errorf("archivefs: set: %v", err)
		}
	}

	afs.current = current

	return nil
}

// Open the named file, which can be inside an archive. The returned
// io.ReadSeeker should be closed if it implements io.Closer.
func Open(name string) (io.ReadSeeker, int64, error) {
	var p Path
	if err := p.Set(name); err != nil {
		return nil, 0, err
	}
	defer p.Close()
	return p.Open()
}
