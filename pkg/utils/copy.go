package utils

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// CopyFile copies srcPath into dstDirectory, keeping the file name, and
// returns the number of bytes written.
func CopyFile(srcPath string, dstDirectory string) (int64, error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return 0, errors.Wrapf(err, "opening %s", srcPath)
	}
	defer src.Close()

	if err := os.MkdirAll(dstDirectory, 0755); err != nil {
		return 0, errors.Wrapf(err, "creating %s", dstDirectory)
	}

	dstPath := filepath.Join(dstDirectory, filepath.Base(srcPath))
	dst, err := os.Create(dstPath)
	if err != nil {
		return 0, errors.Wrapf(err, "creating %s", dstPath)
	}
	n, err := io.Copy(dst, src)
	if err != nil {
		dst.Close()
		return n, errors.Wrapf(err, "writing %s", dstPath)
	}
	return n, errors.Wrapf(dst.Close(), "closing %s", dstPath)
}
