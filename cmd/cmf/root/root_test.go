package root

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/packages"
	"github.com/criticalmanufacturing/cli/pkg/print"
	"github.com/criticalmanufacturing/cli/pkg/testutils"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/version"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	prevOut, prevLog, prevFormatter := print.Output, logger.Output, print.DefaultFormatter
	print.Output, logger.Output = &stdout, &stderr
	t.Cleanup(func() {
		print.Output, logger.Output, print.DefaultFormatter = prevOut, prevLog, prevFormatter
	})

	cmd := New()
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeHTMLPackage(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	testutils.WriteFiles(t, dir, map[string]string{
		packages.FileName: `{
			"packageId": "Cmf.Custom.Html",
			"version": "1.0.0",
			"packageType": "Html"
		}`,
		"angular.json": `{"version": 1, "projects": {}}`,
	})
	return dir
}

func TestBuildSteps(t *testing.T) {
	require := require.New(t)
	dir := writeHTMLPackage(t)

	stdout, _, err := execute(t, "build", "steps", dir, "-o", "json")
	require.NoError(err)

	var steps []build.ProcessBuildStep
	require.NoError(json.Unmarshal([]byte(stdout), &steps))
	require.Len(steps, 1)
	require.Equal([]string{"build"}, steps[0].Args)
	require.Equal(dir, steps[0].WorkingDirectory)
	require.Equal("--max-old-space-size=8192", steps[0].EnvironmentVariables["NODE_OPTIONS"])
}

func TestBuildDryRun(t *testing.T) {
	require := require.New(t)
	dir := writeHTMLPackage(t)

	_, stderr, err := execute(t, "build", dir, "--dry-run")
	require.NoError(err)
	require.Contains(stderr, "cmf restore (in-process)")
	require.Contains(stderr, "ng build (in "+dir+")")
}

func TestBuildUnsupportedPackage(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	require.NoError(os.WriteFile(filepath.Join(dir, packages.FileName), []byte(`{
		"packageId": "Cmf.Custom.Business",
		"version": "1.0.0",
		"packageType": "Business"
	}`), 0644))

	_, _, err := execute(t, "build", dir, "--dry-run")
	require.Error(err)
	require.Equal(int(utils.ErrorCodeInvalidArgument), utils.ExitCode(utils.HandleError(err)))
}

func TestRestoreMalformedProjectConfig(t *testing.T) {
	require := require.New(t)
	t.Setenv("HOME", t.TempDir())
	t.Setenv("CMF_REPOSITORIES", "")
	dir := writeHTMLPackage(t)
	testutils.WriteFiles(t, dir, map[string]string{
		conf.ProjectConfigFileName: `{"Repositories": ["/mnt/pkgs"],, oops`,
	})

	_, _, err := execute(t, "restore", dir)
	require.ErrorContains(err, "parsing")
	require.ErrorContains(err, conf.ProjectConfigFileName)
}

func TestNgDryRun(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	_, stderr, err := execute(t, "ng", "build", "--dir", dir, "-p", "app1", "-p", "app2", "--ng-args", `--configuration "production"`, "--dry-run")
	require.NoError(err)
	require.Contains(stderr, "ng build app1 --configuration production")
	require.Contains(stderr, "ng build app2 --configuration production")
}

func TestIoTTypes(t *testing.T) {
	require := require.New(t)

	stdout, _, err := execute(t, "iot", "types", "--family", "settings", "-o", "json")
	require.NoError(err)

	var rows []print.TypeMapping
	require.NoError(json.Unmarshal([]byte(stdout), &rows))
	require.Len(rows, 7)
	require.Equal(print.TypeMapping{Family: "setting", Type: "Enum", JSType: "<Declare your enum>"}, rows[6])

	_, _, err = execute(t, "iot", "types", "--family", "nope")
	var cliErr *utils.CLIError
	require.True(errors.As(err, &cliErr))
}

func TestIoTParams(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "params.json")
	require.NoError(os.WriteFile(path, []byte(`{"port": "Integer", "mode": {"dataType": "Enum", "enumValues": ["A"]}}`), 0644))
	stdout, _, err := execute(t, "iot", "params", path, "-o", "json")
	require.NoError(err)
	require.JSONEq(`{"mode": {"dataType": "Enum", "enumValues": ["A"]}, "port": "Integer"}`, stdout)

	require.NoError(os.WriteFile(path, []byte(`{"port": "Float"}`), 0644))
	_, _, err = execute(t, "iot", "params", path)
	require.ErrorContains(err, "params.json")
}

func TestNewSecurityPortal(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	_, stderr, err := execute(t, "new", "securityPortal", dir, "--", "--package-id", "Cmf.Custom.Portal")
	require.NoError(err)
	require.Contains(stderr, "Created cmfpackage.json")

	buf, err := os.ReadFile(filepath.Join(dir, "cmfpackage.json"))
	require.NoError(err)
	require.Contains(string(buf), `"packageId": "Cmf.Custom.Portal"`)
}

func TestNewIoTTask(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	_, stderr, err := execute(t, "new", "iot", "task", dir, "--yes")
	require.NoError(err)
	require.Contains(stderr, "Created library.json")
	require.FileExists(filepath.Join(dir, "src", "tasks", "blackBox", "blackBox.task.ts"))

	_, _, err = execute(t, "new", "iot", "task", dir, "--yes")
	require.ErrorContains(err, `task "blackBox" already exists`)
}

func TestNewDryRunRunsRootHook(t *testing.T) {
	require := require.New(t)
	t.Cleanup(func() { logger.EnableDebug = false })

	dir := t.TempDir()
	_, stderr, err := execute(t, "new", "iot", "driver", dir, "--yes", "--dry-run", "--debug")
	require.NoError(err)
	require.Contains(stderr, version.Version())
	require.Equal(1, strings.Count(stderr, "Dry run, no files will be written."))

	entries, err := os.ReadDir(dir)
	require.NoError(err)
	require.Empty(entries)
}

func TestFlagCompletion(t *testing.T) {
	testCases := []struct {
		desc string
		args []string
		want []string
	}{
		{
			desc: "output formats",
			args: []string{"version", "--output", ""},
			want: []string{"json", "yaml", "table"},
		},
		{
			desc: "type families",
			args: []string{"iot", "types", "--family", ""},
			want: []string{"io", "settings", "all"},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require := require.New(t)
			var out bytes.Buffer
			cmd := New()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(append([]string{cobra.ShellCompRequestCmd}, tC.args...))
			require.NoError(cmd.Execute())

			lines := strings.Split(strings.TrimSpace(out.String()), "\n")
			require.Equal(tC.want, lines[:len(lines)-1])
		})
	}
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "version", "-o", "yaml")
	require.NoError(t, err)
	require.Contains(t, stdout, "version: ")
}

func TestInvalidOutput(t *testing.T) {
	_, _, err := execute(t, "version", "-o", "xml")
	require.EqualError(t, err, "--output must be (json|yaml|table)")
}
