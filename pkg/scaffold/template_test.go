package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSecurityPortalGenerateArgs(t *testing.T) {
	testCases := []struct {
		desc     string
		args     []string
		expected []string
	}{
		{
			desc:     "single pair",
			args:     []string{"--test", "value"},
			expected: []string{"--test", "value"},
		},
		{
			desc:     "empty",
			args:     []string{},
			expected: []string{},
		},
		{
			desc:     "nil",
			args:     nil,
			expected: []string{},
		},
		{
			desc:     "pairs and a flag",
			args:     []string{"--arg1", "value1", "--arg2", "value2", "--flag"},
			expected: []string{"--arg1", "value1", "--arg2", "value2", "--flag"},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			out, err := SecurityPortal{}.GenerateArgs("/project", "/project/working", tC.args)
			require.NoError(t, err)
			require.NotNil(t, out)
			require.Equal(t, tC.expected, out)
		})
	}
}

func TestParseTemplateArgs(t *testing.T) {
	require := require.New(t)

	data, err := ParseTemplateArgs([]string{"--package-id", "Cmf.Custom.Portal", "--flag", "--version=2.0.0"})
	require.NoError(err)
	require.Equal(map[string]interface{}{
		"packageId": "Cmf.Custom.Portal",
		"flag":      true,
		"version":   "2.0.0",
	}, data)

	_, err = ParseTemplateArgs([]string{"value"})
	var cliErr *utils.CLIError
	require.True(errors.As(err, &cliErr))
	require.Equal(utils.ErrorCodeInvalidArgument, cliErr.Code)
}

func TestSecurityPortalRender(t *testing.T) {
	require := require.New(t)

	root := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(root, conf.ProjectConfigFileName),
		[]byte(`{"ProjectName": "Acme", "Tenant": "AcmeTenant"}`), 0644))
	working := filepath.Join(root, "Features", "SecurityPortal")

	cmd := NewSecurityPortalCommand()
	resp, err := cmd.Render(RenderRequest{
		ProjectRoot: root,
		WorkingDir:  working,
		Args:        []string{"--version", "3.1.0"},
		Logger:      logger.NewTestLogger(t),
	})
	require.NoError(err)
	require.Equal([]string{"cmfpackage.json", filepath.Join("config", "config.json")}, resp.CreatedFiles())

	buf, err := os.ReadFile(filepath.Join(working, "cmfpackage.json"))
	require.NoError(err)
	require.Contains(string(buf), `"packageId": "Cmf.Custom.Acme.SecurityPortal"`)
	require.Contains(string(buf), `"version": "3.1.0"`)

	buf, err = os.ReadFile(filepath.Join(working, "config", "config.json"))
	require.NoError(err)
	require.Contains(string(buf), `"tenant": "AcmeTenant"`)

	// A second run refuses to overwrite.
	_, err = cmd.Render(RenderRequest{ProjectRoot: root, WorkingDir: working})
	require.ErrorContains(err, "refusing to overwrite cmfpackage.json")
	var explained utils.ErrorExplained
	require.True(errors.As(err, &explained))

	resp, err = cmd.Render(RenderRequest{ProjectRoot: root, WorkingDir: working, Force: true})
	require.NoError(err)
	require.Empty(resp.CreatedFiles())
	require.Len(resp.ModifiedFiles(), 2)
}

func TestSecurityPortalRenderWithoutProject(t *testing.T) {
	require := require.New(t)

	working := t.TempDir()
	_, err := NewSecurityPortalCommand().Render(RenderRequest{WorkingDir: working, DryRun: true})
	require.NoError(err)
	require.NoFileExists(filepath.Join(working, "cmfpackage.json"))

	_, err = NewSecurityPortalCommand().Render(RenderRequest{WorkingDir: working})
	require.NoError(err)
	buf, err := os.ReadFile(filepath.Join(working, "cmfpackage.json"))
	require.NoError(err)
	require.Contains(string(buf), `"packageId": "Cmf.Custom.SecurityPortal"`)
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, err := LayerTemplateCommand{Template: "nope"}.Render(RenderRequest{WorkingDir: t.TempDir()})
	require.EqualError(t, err, `unknown template "nope"`)
}
