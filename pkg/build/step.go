package build

import (
	"context"
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// ProcessBuildStep describes one external process invocation. It has no
// behaviour of its own; a StepRunner executes it.
type ProcessBuildStep struct {
	Command              string            `json:"command" yaml:"command"`
	Args                 []string          `json:"args" yaml:"args"`
	WorkingDirectory     string            `json:"workingDirectory" yaml:"workingDirectory"`
	EnvironmentVariables map[string]string `json:"environmentVariables,omitempty" yaml:"environmentVariables,omitempty"`
}

// CommandLine renders the step as a shell-quoted command line, for logs.
func (s ProcessBuildStep) CommandLine() string {
	return shellescape.QuoteCommand(append([]string{s.Command}, s.Args...))
}

// EnvironmentList returns the overrides as sorted KEY=VALUE pairs.
func (s ProcessBuildStep) EnvironmentList() []string {
	keys := maps.Keys(s.EnvironmentVariables)
	slices.Sort(keys)
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, fmt.Sprintf("%s=%s", k, s.EnvironmentVariables[k]))
	}
	return out
}

func (s ProcessBuildStep) String() string {
	env := s.EnvironmentList()
	if len(env) == 0 {
		return s.CommandLine()
	}
	return strings.Join(env, " ") + " " + s.CommandLine()
}

// Command is one entry of a build pipeline.
type Command interface {
	DisplayName() string
}

// ProcessCommand is a Command made of external process invocations.
type ProcessCommand interface {
	Command
	Steps() []ProcessBuildStep
}

// ExecuteCommand is a Command that runs in-process, e.g. restoring
// dependencies before the toolchain build.
type ExecuteCommand struct {
	Name    string
	Execute func(ctx context.Context) error
}

var _ Command = ExecuteCommand{}

func (c ExecuteCommand) DisplayName() string {
	return c.Name
}
