package scaffold

import (
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Response records the files a generator touched, relative to its working
// directory when possible.
type Response struct {
	WorkingDirectory string

	created  map[string]bool
	modified map[string]bool
}

func NewResponse(workingDir string) (*Response, error) {
	abs, err := filepath.Abs(workingDir)
	if err != nil {
		return nil, errors.Wrap(err, "resolving working directory")
	}
	return &Response{
		WorkingDirectory: abs,
		created:          map[string]bool{},
		modified:         map[string]bool{},
	}, nil
}

func (r *Response) rel(path string) string {
	if !filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	rel, err := filepath.Rel(r.WorkingDirectory, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// AddCreatedFile records path as created. A created file is never also
// reported as modified.
func (r *Response) AddCreatedFile(path string) {
	p := r.rel(path)
	r.created[p] = true
	delete(r.modified, p)
}

// AddModifiedFile records path as modified unless it was created by the same
// run.
func (r *Response) AddModifiedFile(path string) {
	p := r.rel(path)
	if r.created[p] {
		return
	}
	r.modified[p] = true
}

func (r *Response) CreatedFiles() []string {
	return sortedKeys(r.created)
}

func (r *Response) ModifiedFiles() []string {
	return sortedKeys(r.modified)
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	// Paths outside the working directory sort last.
	slices.SortFunc(keys, func(a, b string) bool {
		if filepath.IsAbs(a) != filepath.IsAbs(b) {
			return !filepath.IsAbs(a)
		}
		return a < b
	})
	return keys
}
