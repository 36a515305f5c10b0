package conf

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestUserConfig(t *testing.T) {
	t.Run("read missing", func(t *testing.T) {
		var assert = require.New(t)
		var path = filepath.Join(t.TempDir(), ".cmf", "config")

		_, err := ReadUserConfig(path)

		assert.Error(err)
		assert.True(errors.Is(err, ErrMissing))
	})

	t.Run("write missing dir", func(t *testing.T) {
		var assert = require.New(t)
		var path = filepath.Join(t.TempDir(), ".cmf", "config")

		err := WriteUserConfig(path, UserConfig{Repositories: []string{"/repo"}})
		assert.NoError(err)

		cfg, err := ReadUserConfig(path)
		assert.NoError(err)
		assert.Equal([]string{"/repo"}, cfg.Repositories)
	})

	t.Run("invalid json", func(t *testing.T) {
		var assert = require.New(t)
		var path = filepath.Join(t.TempDir(), "config")
		assert.NoError(os.WriteFile(path, []byte("{"), 0600))

		_, err := ReadUserConfig(path)
		assert.Error(err)
		assert.False(errors.Is(err, ErrMissing))
	})
}

func TestFindProjectConfig(t *testing.T) {
	t.Run("found in parent with comments", func(t *testing.T) {
		var assert = require.New(t)
		root := t.TempDir()
		nested := filepath.Join(root, "Cmf.Custom.HTML", "src")
		assert.NoError(os.MkdirAll(nested, 0755))
		assert.NoError(os.WriteFile(filepath.Join(root, ProjectConfigFileName), []byte(`{
			// written by cmf init
			"ProjectName": "Demo",
			"Tenant": "DemoTenant",
			"MESVersion": "10.2.0",
			"Repositories": ["Libs", "/abs/repo"],
		}`), 0644))

		cfg, err := FindProjectConfig(nested)
		assert.NoError(err)
		assert.Equal("Demo", cfg.ProjectName)
		assert.Equal("DemoTenant", cfg.Tenant)
		assert.Equal("10.2.0", cfg.MESVersion)
		assert.Equal(root, cfg.Root)
		assert.Equal([]string{filepath.Join(root, "Libs"), "/abs/repo"}, cfg.absRepositories())
	})

	t.Run("missing", func(t *testing.T) {
		_, err := FindProjectConfig(t.TempDir())
		require.True(t, errors.Is(err, ErrMissing))
	})
}

func TestResolveRepositories(t *testing.T) {
	var assert = require.New(t)
	project := ProjectConfig{Repositories: []string{"/project"}}
	user := UserConfig{Repositories: []string{"/user"}}

	t.Setenv(repositoriesEnvVar, "")
	assert.Equal([]string{"/flag"}, ResolveRepositories([]string{"/flag"}, project, user))
	assert.Equal([]string{"/project"}, ResolveRepositories(nil, project, user))
	assert.Equal([]string{"/user"}, ResolveRepositories(nil, ProjectConfig{}, user))
	assert.Empty(ResolveRepositories(nil, ProjectConfig{}, UserConfig{}))

	t.Setenv(repositoriesEnvVar, strings.Join([]string{"/env/a", " ", "/env/b"}, string(os.PathListSeparator)))
	assert.Equal([]string{"/env/a", "/env/b"}, ResolveRepositories(nil, project, user))
}

func TestPlatform(t *testing.T) {
	var assert = require.New(t)
	assert.Equal("ng.cmd", Platform{OS: "windows"}.Executable("ng"))
	assert.Equal("ng", Platform{OS: "linux"}.Executable("ng"))
	assert.Equal("", Platform{OS: "darwin"}.ExecutableSuffix())
	assert.NotEmpty(HostPlatform().OS)
}
