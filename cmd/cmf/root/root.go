package root

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/airplanedev/trap"
	"github.com/criticalmanufacturing/cli/cmd/cmf/build"
	"github.com/criticalmanufacturing/cli/cmd/cmf/iot"
	"github.com/criticalmanufacturing/cli/cmd/cmf/newcmd"
	"github.com/criticalmanufacturing/cli/cmd/cmf/ng"
	"github.com/criticalmanufacturing/cli/cmd/cmf/restore"
	versioncmd "github.com/criticalmanufacturing/cli/cmd/cmf/version"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/print"
	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/criticalmanufacturing/cli/pkg/version"
	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// New returns a new root cobra command.
func New() *cobra.Command {
	var output string
	var cfg = &cli.Config{
		Platform: conf.HostPlatform(),
		Prompter: prompts.Surveyor{},
	}

	cmd := &cobra.Command{
		Use:   "cmf <command>",
		Short: "Critical Manufacturing CLI",
		Example: heredoc.Doc(`
			cmf build
			cmf build steps --output yaml
			cmf ng build --project app1 --project app2 --ng-args "--configuration production"
			cmf new iot task ./my-library
		`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, ok := print.NewFormatter(output)
			if !ok {
				return errors.New("--output must be (json|yaml|table)")
			}
			print.DefaultFormatter = f

			if conf.GetNoColor() {
				color.NoColor = true
			}
			logger.EnableDebug = cfg.DebugMode
			trap.Printf = logger.Log

			// Log the version every time the CLI is run with `--debug`. This aligns
			// debugging output with a specific release of the CLI.
			logger.Debug(version.Version())
			return nil
		},
	}

	// Silence usage and errors.
	//
	// Allows us to control how the output looks like.
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	cmd.Version = version.Get()
	cmd.SetVersionTemplate(version.Version() + "\n")

	// Persistent flags, set globally to all commands.
	defaultFormat := "table"
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		defaultFormat = "json"
	}
	cmd.PersistentFlags().StringVarP(&output, "output", "o", defaultFormat, "The format to use for output (json|yaml|table).")
	cli.Must(cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions([]string{"json", "yaml", "table"}, cobra.ShellCompDirectiveNoFileComp)))
	cmd.PersistentFlags().BoolVar(&cfg.DebugMode, "debug", false, "Whether to produce debugging output.")
	cmd.PersistentFlags().BoolVarP(&cfg.Version, "version", "v", false, "Print the CLI version.")

	cmd.AddCommand(build.New(cfg))
	cmd.AddCommand(restore.New(cfg))
	cmd.AddCommand(ng.New(cfg))
	cmd.AddCommand(newcmd.New(cfg))
	cmd.AddCommand(iot.New(cfg))
	cmd.AddCommand(versioncmd.New(cfg))

	return cmd
}
