package build

import (
	"context"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/cmd/cmf/restore"
	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/packages"
	"github.com/criticalmanufacturing/cli/pkg/print"
	"github.com/spf13/cobra"
)

type config struct {
	root    *cli.Config
	path    string
	dryRun  bool
	envFile string
	repos   []string
}

// New returns the build command.
func New(c *cli.Config) *cobra.Command {
	var cfg = config{root: c}

	cmd := &cobra.Command{
		Use:   "build [path]",
		Short: "Build a package",
		Long:  "Runs the build pipeline of the package containing path. Steps run in order and the build stops at the first failing step.",
		Example: heredoc.Doc(`
			cmf build
			cmf build ./Features/UI/Html --dry-run
			cmf build --env-file .env.build --repo /mnt/packages
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.path = pathArg(args)
			return run(cmd.Root().Context(), cfg)
		},
	}
	cmd.Flags().BoolVar(&cfg.dryRun, "dry-run", false, "Print the steps instead of running them.")
	cmd.Flags().StringVar(&cfg.envFile, "env-file", "", "Dotenv file with variables for every build process.")
	cli.AddRepoFlag(cmd.Flags(), &cfg.repos)

	cmd.AddCommand(newStepsCmd(c))

	return cmd
}

func pathArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func loadHandler(c *cli.Config, l logger.Logger, path string, repos []string) (packages.Handler, error) {
	pkg, err := packages.Find(path)
	if err != nil {
		return nil, err
	}
	return packages.NewHandler(pkg, packages.HandlerOptions{
		Platform: c.Platform,
		Restore:  restore.Func(l, repos),
	})
}

func run(ctx context.Context, cfg config) error {
	l := logger.NewStdErrLogger(logger.StdErrLoggerOpts{WithLoader: !cfg.dryRun})
	defer l.StopLoader()

	h, err := loadHandler(cfg.root, l, cfg.path, cfg.repos)
	if err != nil {
		return err
	}
	env, err := build.LoadEnvFile(cfg.envFile)
	if err != nil {
		return err
	}

	pkg := h.Package()
	l.Log("Building %s %s", logger.Bold(pkg.PackageID), logger.Gray(pkg.Version))
	start := time.Now()
	executor := build.Executor{
		Runner: build.ProcessRunner{Logger: l, ExtraEnv: env},
		Logger: l,
		DryRun: cfg.dryRun,
	}
	if err := executor.Run(ctx, h.BuildSteps()); err != nil {
		return err
	}
	if !cfg.dryRun {
		l.Log("%s Built %s in %s", logger.Green("✓"), pkg.PackageID, time.Since(start).Round(time.Second))
	}
	return nil
}

func newStepsCmd(c *cli.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "steps [path]",
		Short: "Print the process steps a build would run",
		Example: heredoc.Doc(`
			cmf build steps
			cmf build steps ./Features/UI/Html -o yaml
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := loadHandler(c, logger.NoopLogger{}, pathArg(args), nil)
			if err != nil {
				return err
			}
			return print.Steps(h.BuildSteps().Steps())
		},
	}
	return cmd
}
