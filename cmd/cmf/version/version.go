package version

import (
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/print"
	"github.com/criticalmanufacturing/cli/pkg/version"
	"github.com/spf13/cobra"
)

// New returns the version command.
func New(c *cli.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return print.PrintVersion(print.Version{
				Version: version.Get(),
				Commit:  version.Commit(),
				OS:      c.Platform.OS,
			})
		},
	}
}
