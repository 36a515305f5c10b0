package newcmd

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/iot"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/criticalmanufacturing/cli/pkg/scaffold"
	"github.com/spf13/cobra"
)

type iotConfig struct {
	root  *cli.Config
	write *writeOpts
	dir   string
	yes   bool
}

func (cfg iotConfig) request() scaffold.IoTRequest {
	return scaffold.IoTRequest{
		Dir:    cfg.dir,
		Force:  cfg.write.force,
		DryRun: cfg.write.dryRun,
		Logger: logger.NewStdErrLogger(logger.StdErrLoggerOpts{}),
	}
}

// interactive reports whether the defaults should be reviewed with the user.
func (cfg iotConfig) interactive() bool {
	if cfg.yes {
		return false
	}
	if !prompts.CanPrompt() {
		logger.Debug("Not a terminal, using default values.")
		return false
	}
	return true
}

func newIoTCmd(c *cli.Config, write *writeOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iot",
		Short: "Scaffold Connect IoT drivers, converters and tasks",
		Example: heredoc.Doc(`
			cmf new iot driver
			cmf new iot converter ./Libraries/my-tasks --yes
			cmf new iot task ./Libraries/my-tasks
		`),
	}

	type generator struct {
		use, short string
		run        func(cfg iotConfig) error
	}
	for _, g := range []generator{
		{"driver [dir]", "Generate a driver package", runDriver},
		{"converter [libraryDir]", "Add a converter to a task library", runConverter},
		{"task [libraryDir]", "Add a task to a task library", runTask},
	} {
		g := g
		cfg := iotConfig{root: c, write: write}
		sub := &cobra.Command{
			Use:   g.use,
			Short: g.short,
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				cfg.dir = "."
				if len(args) > 0 {
					cfg.dir = args[0]
				}
				return g.run(cfg)
			},
		}
		sub.Flags().BoolVarP(&cfg.yes, "yes", "y", false, "Accept the default values without prompting.")
		cmd.AddCommand(sub)
	}
	return cmd
}

func runDriver(cfg iotConfig) error {
	values := iot.NewDriverValues()
	if cfg.interactive() {
		if err := iot.PromptDriverValues(cfg.root.Prompter, &values); err != nil {
			return err
		}
	}
	resp, err := scaffold.GenerateDriver(values, cfg.request())
	if err != nil {
		return err
	}
	summarize(resp, scaffold.SuggestRequest{Kind: "driver", Name: values.Identifier, Dir: resp.WorkingDirectory})
	return nil
}

func runConverter(cfg iotConfig) error {
	values := iot.NewConverterValues()
	if cfg.interactive() {
		if err := iot.PromptConverterValues(cfg.root.Prompter, &values); err != nil {
			return err
		}
	}
	resp, err := scaffold.GenerateConverter(values, cfg.request())
	if err != nil {
		return err
	}
	summarize(resp, scaffold.SuggestRequest{Kind: "converter", Name: values.Name, Dir: cfg.dir})
	return nil
}

func runTask(cfg iotConfig) error {
	values := iot.NewTaskValues()
	if cfg.interactive() {
		if err := iot.PromptTaskValues(cfg.root.Prompter, &values); err != nil {
			return err
		}
	}
	resp, err := scaffold.GenerateTask(values, cfg.request())
	if err != nil {
		return err
	}
	summarize(resp, scaffold.SuggestRequest{Kind: "task", Name: values.Name, Dir: cfg.dir})
	return nil
}
