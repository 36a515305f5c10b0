package newcmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/scaffold"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type securityPortalConfig struct {
	write      *writeOpts
	workingDir string
	args       []string
}

func newSecurityPortalCmd(c *cli.Config, write *writeOpts) *cobra.Command {
	var cfg = securityPortalConfig{write: write}
	cmd := &cobra.Command{
		Use:   "securityPortal [workingDir] [-- template args]",
		Short: "Generate the Security Portal customization package",
		Example: heredoc.Doc(`
			cmf new securityPortal
			cmf new securityPortal ./Features -- --package-id Cmf.Custom.Portal --version 2.0.0
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.workingDir = "."
			positional := args
			if dash := cmd.ArgsLenAtDash(); dash >= 0 {
				positional, cfg.args = args[:dash], args[dash:]
			}
			if len(positional) > 1 {
				return errors.Errorf("expected at most one working directory, got %d", len(positional))
			}
			if len(positional) == 1 {
				cfg.workingDir = positional[0]
			}
			return runSecurityPortal(cfg)
		},
	}
	return cmd
}

func runSecurityPortal(cfg securityPortalConfig) error {
	var projectRoot string
	if project, err := conf.FindProjectConfig(cfg.workingDir); err == nil {
		projectRoot = project.Root
	} else if !errors.Is(err, conf.ErrMissing) {
		return err
	} else {
		logger.Warning("No %s found, using default package metadata.", conf.ProjectConfigFileName)
	}

	resp, err := scaffold.NewSecurityPortalCommand().Render(scaffold.RenderRequest{
		ProjectRoot: projectRoot,
		WorkingDir:  cfg.workingDir,
		Args:        cfg.args,
		Force:       cfg.write.force,
		DryRun:      cfg.write.dryRun,
		Logger:      logger.NewStdErrLogger(logger.StdErrLoggerOpts{}),
	})
	if err != nil {
		return err
	}
	summarize(resp, scaffold.SuggestRequest{Kind: "securityPortal", Dir: cfg.workingDir})
	return nil
}
