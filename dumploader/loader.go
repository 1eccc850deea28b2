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

package dumploader

import (
	"bytes"
	"compress/gzip"
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/yasp-player/yasp/archivefs"
	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/logger"
	"golang.org/x/term"
)

// StdinFilename is the filename that indicates standard input.
const StdinFilename = "-"

// limit on the size of a dump. the largest VGM files with PCM data blocks are
// a few tens of megabytes
const maxSize = 64 * 1024 * 1024

var gzipMagic = []byte{0x1f, 0x8b}

// Loader is used to specify the dump to play.
type Loader struct {
	// filename of dump to load. can be a URL or a path inside a zip archive
	Filename string

	// expected hash of the loaded dump. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	//
	// for compressed data the hash is of the compressed data
	Hash string

	// the loaded data, decompressed if necessary
	Data []byte

	// the loaded data was gzip compressed
	Compressed bool

	// used when Filename is StdinFilename. defaults to os.Stdin
	Stdin *os.File
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: filename,
		Stdin:    os.Stdin,
	}
}

// ShortName returns the filename without the path or extension.
func (ld Loader) ShortName() string {
	if ld.Filename == StdinFilename {
		return "stdin"
	}
	name := filepath.Base(ld.Filename)
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Reader returns a new io.ReadSeeker for the loaded data.
func (ld Loader) Reader() io.ReadSeeker {
	return bytes.NewReader(ld.Data)
}

// Load the dump. Calling Load() after a successful load does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := ld.load()
	if err != nil {
		return curated.Errorf("dumploader: %v", err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf("dumploader: %v", "unexpected hash value")
	}
	ld.Hash = hash

	if bytes.HasPrefix(data, gzipMagic) {
		data, err = gunzip(data)
		if err != nil {
			return curated.Errorf("dumploader: %v", err)
		}
		ld.Compressed = true
	}

	ld.Data = data
	logger.Logf(logger.Allow, "loader", "%s: %d bytes (sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}

func (ld *Loader) load() ([]byte, error) {
	if ld.Filename == StdinFilename {
		stdin := ld.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		if term.IsTerminal(int(stdin.Fd())) {
			return nil, fmt.Errorf("will not read dump from a terminal")
		}
		return readAll(stdin)
	}

	scheme := "file"
	if u, err := url.Parse(ld.Filename); err == nil && len(u.Scheme) > 1 {
		scheme = strings.ToLower(u.Scheme)
	}

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s: %s", ld.Filename, resp.Status)
		}

		return readAll(resp.Body)

	case "file":
		r, _, err := archivefs.Open(ld.Filename)
		if err != nil {
			return nil, err
		}
		if c, ok := r.(io.Closer); ok {
			defer c.Close()
		}

		return readAll(r)
	}

	return nil, fmt.Errorf("unsupported URL scheme (%s)", scheme)
}

func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxSize+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxSize {
		return nil, fmt.Errorf("dump is larger than %d bytes", maxSize)
	}
	return data, nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	return readAll(zr)
}
