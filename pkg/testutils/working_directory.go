package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestWithWorkingDirectory runs work inside a fresh directory and, when work
// returns true, compares the directory against fixtureDir. An empty
// fixtureDir expects the directory to stay empty.
func TestWithWorkingDirectory(
	t *testing.T,
	fixtureDir string,
	work func(wd string) bool,
) {
	require := require.New(t)

	// The directory name can show up in generated files, so it matches the
	// fixture's.
	subdir := "empty"
	if fixtureDir != "" {
		abs, err := filepath.Abs(fixtureDir)
		require.NoError(err)
		fixtureDir = abs
		subdir = filepath.Base(fixtureDir)
	}
	wd := filepath.Join(t.TempDir(), subdir)
	require.NoError(os.MkdirAll(wd, 0755))

	cwd, err := os.Getwd()
	require.NoError(err)
	require.NoError(os.Chdir(wd))
	defer func() {
		require.NoError(os.Chdir(cwd))
	}()

	if !work(wd) {
		return
	}
	if fixtureDir == "" {
		entries, err := os.ReadDir(wd)
		require.NoError(err)
		require.Empty(entries, "expected %s to be empty", wd)
		return
	}
	CompareDirectories(t, fixtureDir, wd)
}
