package testutils

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

// CommandTest specifies a test case for a scaffolding command.
type CommandTest struct {
	// Desc is a description of the test case.
	Desc string
	// Inputs are the Inputs that will be passed to any prompts, in order.
	Inputs []interface{}
	// Args are any arguments (and flags) that will be passed to the Cobra command.
	Args []string
	// FixtureDir is the directory that the test case should be compared against.
	FixtureDir string
}

// TestCommandAndCompare runs the given command in a fresh working directory
// and compares the result to the given fixture directory.
func TestCommandAndCompare(
	t *testing.T,
	cmd *cobra.Command,
	args []string,
	fixtureDir string,
) {
	TestWithWorkingDirectory(t, fixtureDir, func(wd string) bool {
		if args == nil {
			// By default, command is set to os.Args[1:]. We don't want this; instead, we want to pass no args so that we
			// can properly test directives like MaximumNArgs, etc. Setting it to nil does nothing, so we set it to the
			// empty slice.
			cmd.SetArgs([]string{})
		} else {
			cmd.SetArgs(args)
		}
		require.NoError(t, cmd.Execute())
		return true
	})
}
