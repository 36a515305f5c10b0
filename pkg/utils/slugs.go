package utils

import (
	"github.com/gosimple/slug"
)

func init() {
	slug.MaxLength = 100
}

// MakeDirectoryName turns a free-text name into a lowercase, dash separated
// directory name, e.g. "Sample Driver" -> "sample-driver".
func MakeDirectoryName(s string) string {
	return slug.Make(s)
}

// IsDirectoryName reports whether s is already in MakeDirectoryName form.
func IsDirectoryName(s string) bool {
	return slug.IsSlug(s)
}
