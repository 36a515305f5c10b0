package ng

import (
	"context"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/criticalmanufacturing/cli/pkg/utils/fsx"
	shlex "github.com/flynn/go-shlex"
	"github.com/spf13/cobra"
)

type config struct {
	root     *cli.Config
	command  string
	projects []string
	ngArgs   string
	dir      string
	dryRun   bool
	envFile  string
}

// New returns the ng command, which runs one Angular CLI command the same way
// package builds do.
func New(c *cli.Config) *cobra.Command {
	var cfg = config{root: c}

	cmd := &cobra.Command{
		Use:   "ng <command>",
		Short: "Run an Angular CLI command with the build environment",
		Example: heredoc.Doc(`
			cmf ng build
			cmf ng build --project app1 --project app2
			cmf ng test --ng-args "--watch=false --browsers ChromeHeadless"
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.command = args[0]
			return run(cmd.Root().Context(), cfg)
		},
	}
	cmd.Flags().StringArrayVarP(&cfg.projects, "project", "p", nil, "Workspace project to run the command for. Can be repeated; each project runs in turn.")
	cmd.Flags().StringVar(&cfg.ngArgs, "ng-args", "", "Arguments appended to every ng invocation, split like a shell would.")
	cmd.Flags().StringVar(&cfg.dir, "dir", ".", "Directory of the Angular workspace.")
	cmd.Flags().BoolVar(&cfg.dryRun, "dry-run", false, "Print the steps instead of running them.")
	cmd.Flags().StringVar(&cfg.envFile, "env-file", "", "Dotenv file with variables for every ng process.")

	return cmd
}

func run(ctx context.Context, cfg config) error {
	args, err := shlex.Split(cfg.ngArgs)
	if err != nil {
		return utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, "invalid --ng-args: "+err.Error())
	}
	dir, err := filepath.Abs(cfg.dir)
	if err != nil {
		return err
	}
	if !fsx.IsDir(dir) {
		return utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "%s is not a directory", cfg.dir)
	}
	if !fsx.Exists(filepath.Join(dir, "angular.json")) {
		logger.Warning("No angular.json in %s, ng will look for a workspace in its parents.", dir)
	}
	env, err := build.LoadEnvFile(cfg.envFile)
	if err != nil {
		return err
	}

	l := logger.NewStdErrLogger(logger.StdErrLoggerOpts{})
	executor := build.Executor{
		Runner: build.ProcessRunner{Logger: l, ExtraEnv: env},
		Logger: l,
		DryRun: cfg.dryRun,
	}
	return executor.Run(ctx, build.Pipeline{
		build.NgCommand{
			Command:          cfg.command,
			Args:             args,
			Projects:         cfg.projects,
			WorkingDirectory: dir,
			Platform:         cfg.root.Platform,
		},
	})
}
