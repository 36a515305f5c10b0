package build

import (
	"fmt"

	"github.com/criticalmanufacturing/cli/pkg/conf"
)

const (
	ngExecutable = "ng"

	// NodeOptionsEnvVar carries the heap limit given to every ng process.
	NodeOptionsEnvVar = "NODE_OPTIONS"
	// MaxOldSpaceSizeMB is the V8 old-space limit, in megabytes, that large
	// Angular workspaces need to build.
	MaxOldSpaceSizeMB = 8192
)

// NgCommand builds an Angular CLI workspace, either as a whole or one
// project at a time.
type NgCommand struct {
	Name             string
	Command          string
	Args             []string
	Projects         []string
	WorkingDirectory string
	Platform         conf.Platform
}

var _ ProcessCommand = NgCommand{}

func (c NgCommand) DisplayName() string {
	if c.Name != "" {
		return c.Name
	}
	return "ng " + c.Command
}

func (c NgCommand) Steps() []ProcessBuildStep {
	return NgSteps(c.Platform, c.Command, c.Args, c.WorkingDirectory, c.Projects)
}

// NgSteps composes the ng invocations for command. Without projects there is
// a single step, `ng <command> <args...>`. With projects there is one step per
// project, `ng <command> <project> <args...>`, in the given order.
func NgSteps(platform conf.Platform, command string, args []string, workingDir string, projects []string) []ProcessBuildStep {
	executable := platform.Executable(ngExecutable)

	step := func(project string) ProcessBuildStep {
		stepArgs := make([]string, 0, len(args)+2)
		stepArgs = append(stepArgs, command)
		if project != "" {
			stepArgs = append(stepArgs, project)
		}
		stepArgs = append(stepArgs, args...)
		return ProcessBuildStep{
			Command:          executable,
			Args:             stepArgs,
			WorkingDirectory: workingDir,
			EnvironmentVariables: map[string]string{
				NodeOptionsEnvVar: fmt.Sprintf("--max-old-space-size=%d", MaxOldSpaceSizeMB),
			},
		}
	}

	if len(projects) == 0 {
		return []ProcessBuildStep{step("")}
	}
	steps := make([]ProcessBuildStep, 0, len(projects))
	for _, project := range projects {
		steps = append(steps, step(project))
	}
	return steps
}
