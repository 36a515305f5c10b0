package newcmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/scaffold"
	"github.com/spf13/cobra"
)

// writeOpts are the file-writing flags shared by every generator.
type writeOpts struct {
	force  bool
	dryRun bool
}

// New returns the new command group.
func New(c *cli.Config) *cobra.Command {
	var opts writeOpts
	cmd := &cobra.Command{
		Use:   "new",
		Short: "Scaffold a new layer or IoT component",
		Example: heredoc.Doc(`
			cmf new securityPortal ./Features -- --version 1.0.0
			cmf new iot driver
			cmf new iot task ./Libraries/my-tasks
		`),
		PersistentPreRunE: cli.WithParentPersistentPreRunE(func(cmd *cobra.Command, args []string) error {
			if opts.dryRun {
				logger.Log("Dry run, no files will be written.")
			}
			return nil
		}),
	}
	cmd.PersistentFlags().BoolVar(&opts.force, "force", false, "Overwrite existing files.")
	cmd.PersistentFlags().BoolVar(&opts.dryRun, "dry-run", false, "Print the files that would be written without writing them.")

	cmd.AddCommand(newSecurityPortalCmd(c, &opts))
	cmd.AddCommand(newIoTCmd(c, &opts))
	return cmd
}

func summarize(resp *scaffold.Response, req scaffold.SuggestRequest) {
	created, modified := resp.CreatedFiles(), resp.ModifiedFiles()
	if len(created) > 0 {
		logger.SuggestSteps("Created files in "+resp.WorkingDirectory+":", created...)
	}
	if len(modified) > 0 {
		logger.SuggestSteps("Updated files in "+resp.WorkingDirectory+":", modified...)
	}
	logger.SuggestSteps("✅ Next steps:", scaffold.NextSteps(req)...)
}
