package conf

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"
)

// ProjectConfigFileName is the file marking the root of a project.
const ProjectConfigFileName = ".project-config.json"

// ProjectConfig is the per-repository configuration written when a project
// is initialised.
type ProjectConfig struct {
	ProjectName  string   `json:"ProjectName"`
	Tenant       string   `json:"Tenant"`
	MESVersion   string   `json:"MESVersion"`
	Repositories []string `json:"Repositories,omitempty"`

	// Root is the directory the file was loaded from.
	Root string `json:"-"`
}

// FindProjectConfig looks for .project-config.json in dir and its parents.
// It returns ErrMissing when no project root is found.
func FindProjectConfig(dir string) (ProjectConfig, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return ProjectConfig{}, errors.Wrapf(err, "absolute path of %s", dir)
	}
	root, ok := fsx.Find(abs, ProjectConfigFileName)
	if !ok {
		return ProjectConfig{}, ErrMissing
	}
	return ReadProjectConfig(filepath.Join(root, ProjectConfigFileName))
}

// ReadProjectConfig reads a project config file. Comments and trailing commas
// are tolerated.
func ReadProjectConfig(path string) (ProjectConfig, error) {
	var cfg ProjectConfig
	buf, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, ErrMissing
	} else if err != nil {
		return cfg, errors.Wrapf(err, "reading %s", path)
	}
	if err := json.Unmarshal(jsonc.ToJSON(buf), &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	cfg.Root = filepath.Dir(path)
	return cfg, nil
}

// absRepositories resolves repositories relative to the project root.
func (c ProjectConfig) absRepositories() []string {
	out := make([]string, 0, len(c.Repositories))
	for _, r := range c.Repositories {
		if !filepath.IsAbs(r) && c.Root != "" {
			r = filepath.Join(c.Root, r)
		}
		out = append(out, r)
	}
	return out
}
