package testenv

import (
	"os"
	"path/filepath"
	"testing"
)

// TempName returns a filename in a fresh temporary directory.
// The directory and its contents are deleted during test cleanup.
func TempName(t testing.TB, name ...string) string {
	dir, e := os.MkdirTemp("", "awdl-test-*")
	if e != nil {
		t.Fatal(e)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	filename := "temp"
	if len(name) > 0 {
		filename = name[0]
	}
	return filepath.Join(dir, filename)
}
