package restore

import (
	"context"

	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/packages"
	"github.com/criticalmanufacturing/cli/pkg/restore"
	"github.com/spf13/cobra"
)

type config struct {
	path  string
	repos []string
	clean bool
}

func New(c *cli.Config) *cobra.Command {
	var cfg config

	cmd := &cobra.Command{
		Use:   "restore [path]",
		Short: "Restore the dependencies of a package",
		Long:  "Copies the archive of every dependency declared in cmfpackage.json from the repositories into the package's Dependencies directory.",
		Example: heredoc.Doc(`
			cmf restore
			cmf restore ./Features/UI --repo /mnt/packages
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.path = "."
			if len(args) > 0 {
				cfg.path = args[0]
			}
			return run(cmd.Root().Context(), cfg)
		},
	}
	cli.AddRepoFlag(cmd.Flags(), &cfg.repos)
	cmd.Flags().BoolVar(&cfg.clean, "clean", false, "Remove previously restored dependencies first.")

	return cmd
}

func run(ctx context.Context, cfg config) error {
	pkg, err := packages.Find(cfg.path)
	if err != nil {
		return err
	}
	l := logger.NewStdErrLogger(logger.StdErrLoggerOpts{})
	if cfg.clean {
		if err := restore.Clean(pkg); err != nil {
			return err
		}
	}
	return Func(l, cfg.repos)(ctx, pkg.Directory())
}

// Func returns the restore step used by package handlers. Repositories are
// resolved for each package, so flags win over the package's project config.
func Func(l logger.Logger, repoFlags []string) packages.RestoreFunc {
	return func(ctx context.Context, packageDir string) error {
		pkg, err := packages.Load(packageDir)
		if err != nil {
			return err
		}
		repos, err := cli.Repositories(repoFlags, packageDir)
		if err != nil {
			return err
		}
		resp, err := restore.Run(ctx, restore.Request{
			Package:      pkg,
			Repositories: repos,
			Logger:       l,
		})
		if err != nil {
			return err
		}
		l.Log("Restored %d %s for %s", len(resp.Restored), plural(len(resp.Restored), "dependency", "dependencies"), logger.Bold(pkg.PackageID))
		return nil
	}
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
