// Package testdata locates the font description fixtures used by tests.
package testdata

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// FontData is the font description fixture shared by the tests: font type
// testfont (aliases "Test Font S1", "TF S2") inheriting from the hidden
// type khbase, and the hidden type secret.
const FontData = "fontdata.xml"

// fixtures is the directory holding the fixture files, next to this file.
var fixtures = func() string {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		panic("testdata: cannot locate fixture directory")
	}
	return filepath.Join(filepath.Dir(self), "fonts")
}()

// Path returns the path of a fixture file.
func Path(name string) string {
	return filepath.Join(fixtures, name)
}

// Open opens a fixture file for reading.
func Open(name string) (io.ReadCloser, error) {
	return os.Open(Path(name))
}
