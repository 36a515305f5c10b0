package build

import (
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/stretchr/testify/require"
)

func TestNgSteps(t *testing.T) {
	linux := conf.Platform{OS: "linux"}
	nodeOptions := map[string]string{"NODE_OPTIONS": "--max-old-space-size=8192"}

	testCases := []struct {
		desc     string
		platform conf.Platform
		command  string
		args     []string
		projects []string
		expected []ProcessBuildStep
	}{
		{
			desc:     "whole workspace",
			platform: linux,
			command:  "build",
			args:     []string{"--prod"},
			expected: []ProcessBuildStep{
				{Command: "ng", Args: []string{"build", "--prod"}, WorkingDirectory: "/repo", EnvironmentVariables: nodeOptions},
			},
		},
		{
			desc:     "one step per project",
			platform: linux,
			command:  "build",
			args:     []string{"--prod"},
			projects: []string{"app1", "app2"},
			expected: []ProcessBuildStep{
				{Command: "ng", Args: []string{"build", "app1", "--prod"}, WorkingDirectory: "/repo", EnvironmentVariables: nodeOptions},
				{Command: "ng", Args: []string{"build", "app2", "--prod"}, WorkingDirectory: "/repo", EnvironmentVariables: nodeOptions},
			},
		},
		{
			desc:     "no args",
			platform: linux,
			command:  "build",
			expected: []ProcessBuildStep{
				{Command: "ng", Args: []string{"build"}, WorkingDirectory: "/repo", EnvironmentVariables: nodeOptions},
			},
		},
		{
			desc:     "windows shim",
			platform: conf.Platform{OS: "windows"},
			command:  "test",
			projects: []string{"lib"},
			expected: []ProcessBuildStep{
				{Command: "ng.cmd", Args: []string{"test", "lib"}, WorkingDirectory: "/repo", EnvironmentVariables: nodeOptions},
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require := require.New(t)
			steps := NgSteps(tC.platform, tC.command, tC.args, "/repo", tC.projects)
			require.Equal(tC.expected, steps)
		})
	}
}

func TestNgStepsDoNotShareState(t *testing.T) {
	require := require.New(t)

	args := []string{"--prod"}
	steps := NgSteps(conf.Platform{OS: "linux"}, "build", args, "/repo", []string{"a", "b"})
	require.Len(steps, 2)

	steps[0].EnvironmentVariables["EXTRA"] = "1"
	steps[0].Args[0] = "serve"
	require.NotContains(steps[1].EnvironmentVariables, "EXTRA")
	require.Equal("build", steps[1].Args[0])
	require.Equal([]string{"--prod"}, args)
}

func TestNgCommand(t *testing.T) {
	require := require.New(t)

	c := NgCommand{Command: "build", WorkingDirectory: "/repo/UI/Html", Platform: conf.Platform{OS: "darwin"}}
	require.Equal("ng build", c.DisplayName())
	require.Len(c.Steps(), 1)
	require.Equal("/repo/UI/Html", c.Steps()[0].WorkingDirectory)

	c.Name = "Build UI"
	require.Equal("Build UI", c.DisplayName())
}

func TestProcessBuildStepString(t *testing.T) {
	require := require.New(t)

	step := ProcessBuildStep{
		Command:              "ng",
		Args:                 []string{"build", "--configuration", "my app"},
		EnvironmentVariables: map[string]string{"B": "2", "A": "1"},
	}
	require.Equal("ng build --configuration 'my app'", step.CommandLine())
	require.Equal([]string{"A=1", "B=2"}, step.EnvironmentList())
	require.Equal("A=1 B=2 ng build --configuration 'my app'", step.String())
}
