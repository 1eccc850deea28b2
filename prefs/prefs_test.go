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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/yasp-player/yasp/curated"
	"github.com/yasp-player/yasp/prefs"
	"github.com/yasp-player/yasp/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "yasp_prefs_test")
}

func cmpPrefsFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if !test.ExpectSuccess(t, err) {
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(1))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "foo :: bar\n")
}

func TestStringChoices(t *testing.T) {
	var v prefs.String
	v.SetChoices("FAIL", "SKIP")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "FAIL")

	// matching is case insensitive but the stored value is the choice
	test.ExpectSuccess(t, v.Set("skip"))
	test.ExpectEquality(t, v.String(), "SKIP")

	test.ExpectFailure(t, v.Set("IGNORE"))
	test.ExpectEquality(t, v.String(), "SKIP")
}

func TestInt(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))

	test.ExpectSuccess(t, v.Set(10))

	// test string conversion to int
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefsFile(t, fn, "number :: 10\nnumberB :: 99\n")

	// while we have a prefs.Int instance set up we'll test some failure
	// conditions
	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// and ranges
	v.SetRange(0, 1)
	test.ExpectFailure(t, v.Set(2))
	test.ExpectSuccess(t, v.Set(1))
	test.ExpectEquality(t, v.Get(), prefs.Value(1))
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(15))
	test.ExpectEquality(t, post, 15)

	// pre hook prevents the value changing
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get(), prefs.Value(15))
	test.ExpectEquality(t, post, 15)
}

// write bool and then a string from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndString(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// start a new disk instance using the same file
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var s prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &s))
	test.ExpectSuccess(t, s.Set("bar"))
	test.DemandSuccess(t, dsk.Save())

	// the file should contain contents set by both disk instances
	cmpPrefsFile(t, fn, "foo :: bar\ntest :: true\n")
}

func TestLoad(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("spfm.pollms", &v))

	// no file and no saveOnFail
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	// saveOnFail creates the file
	test.ExpectSuccess(t, v.Set(15))
	test.DemandSuccess(t, dsk.Load(true))
	cmpPrefsFile(t, fn, "spfm.pollms :: 15\n")

	// values in the file replace the current values
	test.DemandSuccess(t, os.WriteFile(fn, []byte(fmt.Sprintf("%s\nspfm.pollms :: 20\nunknown :: 1\n", prefs.WarningBoilerPlate)), 0600))
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get(), prefs.Value(20))

	// a file with the wrong boilerplate is rejected
	test.DemandSuccess(t, os.WriteFile(fn, []byte("something else\n"), 0600))
	test.ExpectFailure(t, dsk.Load(false))
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefsFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte(fmt.Sprintf("%s\nspfm.device :: /dev/ttyUSB0\n", prefs.WarningBoilerPlate)), 0600))

	prefs.PushCommandLineStack("spfm.device::/dev/ttyUSB3")
	defer prefs.PopCommandLineStack()

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("spfm.device", &v))
	test.ExpectEquality(t, v.String(), "/dev/ttyUSB3")

	// the command line takes precedence over the file
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "/dev/ttyUSB3")
}

func TestIllegalKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefsFile(t))
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectFailure(t, dsk.Add("bad key", &v))
}
