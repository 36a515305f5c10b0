// fsx includes extensions to the stdlib fs package.
package fsx

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Exists returns true if the given path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns true if path exists and is a directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// AssertExistsAll ensures that all paths exist or returns an error naming the
// first missing one.
func AssertExistsAll(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); os.IsNotExist(err) {
			return errors.Errorf("could not find %s", p)
		} else if err != nil {
			return errors.Wrapf(err, "stat %s", p)
		}
	}
	return nil
}

// Find walks from dir up to the filesystem root looking for filename and
// returns the directory that contains it.
func Find(dir, filename string) (string, bool) {
	return FindUntil(dir, "", filename)
}

// FindUntil is Find, stopping after the end directory has been checked. An
// empty end searches up to the root.
func FindUntil(start, end, filename string) (string, bool) {
	dir := filepath.Clean(start)
	if end != "" {
		end = filepath.Clean(end)
	}
	for {
		if Exists(filepath.Join(dir, filename)) {
			return dir, true
		}
		if dir == end {
			return "", false
		}
		next := filepath.Dir(dir)
		if next == dir || next == "." {
			return "", false
		}
		dir = next
	}
}
