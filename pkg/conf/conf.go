package conf

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrMissing is returned when the config file does not exist.
	ErrMissing = errors.New("conf: config file does not exist")
)

const (
	repositoriesEnvVar = "CMF_REPOSITORIES"
	noColorEnvVar      = "CMF_NO_COLOR"
)

// GetRepositories reads the repository directories listed in
// CMF_REPOSITORIES, separated by the OS path list separator.
func GetRepositories() []string {
	return splitList(os.Getenv(repositoriesEnvVar))
}

// GetNoColor reports whether coloured output was disabled via CMF_NO_COLOR.
func GetNoColor() bool {
	v := strings.ToLower(os.Getenv(noColorEnvVar))
	return v == "1" || v == "true"
}

func splitList(s string) []string {
	var out []string
	for _, item := range filepath.SplitList(s) {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// ResolveRepositories picks the repositories used to restore dependencies:
// explicit flags first, then CMF_REPOSITORIES, then the project config, then
// the user config. The first non-empty source wins.
func ResolveRepositories(flags []string, project ProjectConfig, user UserConfig) []string {
	for _, candidate := range [][]string{
		flags,
		GetRepositories(),
		project.absRepositories(),
		user.Repositories,
	} {
		if len(candidate) > 0 {
			return candidate
		}
	}
	return nil
}
