package testutils

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// CompareDirectories checks that expected and actual hold the same files with
// equal content. JSON files are compared semantically.
func CompareDirectories(t *testing.T, expected, actual string) {
	t.Helper()
	require := require.New(t)

	expectedFiles := listFiles(t, expected)
	require.ElementsMatch(expectedFiles, listFiles(t, actual), "files in %s", actual)

	for _, rel := range expectedFiles {
		want, err := os.ReadFile(filepath.Join(expected, rel))
		require.NoError(err)
		got, err := os.ReadFile(filepath.Join(actual, rel))
		require.NoError(err)

		if strings.HasSuffix(rel, ".json") {
			require.JSONEq(string(want), string(got), rel)
		} else {
			require.Equal(string(want), string(got), rel)
		}
	}
}

func listFiles(t *testing.T, dir string) []string {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	return files
}
