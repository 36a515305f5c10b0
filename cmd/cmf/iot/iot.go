package iot

import (
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/iot"
	"github.com/criticalmanufacturing/cli/pkg/print"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// New returns the iot command group.
func New(c *cli.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iot",
		Short: "Inspect Connect IoT value types and parameters",
		Example: heredoc.Doc(`
			cmf iot types
			cmf iot types --family settings
			cmf iot params ./converter-parameters.json
		`),
	}
	cmd.AddCommand(newTypesCmd())
	cmd.AddCommand(newParamsCmd())
	return cmd
}

func newTypesCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Print how IoT value types map to JavaScript types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var families []iot.Family
			switch family {
			case "io":
				families = []iot.Family{iot.FamilyInputOutput}
			case "settings":
				families = []iot.Family{iot.FamilySetting}
			case "all":
				families = []iot.Family{iot.FamilyInputOutput, iot.FamilySetting}
			default:
				return utils.NewCLIErrorf(utils.ErrorCodeInvalidArgument, "--family must be (io|settings|all), got %q", family)
			}
			mappings, err := TypeMappings(families...)
			if err != nil {
				return err
			}
			return print.TypeMappings(mappings)
		},
	}
	cmd.Flags().StringVar(&family, "family", "all", "Type family to print (io|settings|all).")
	cli.Must(cmd.RegisterFlagCompletionFunc("family", cobra.FixedCompletions([]string{"io", "settings", "all"}, cobra.ShellCompDirectiveNoFileComp)))
	return cmd
}

// TypeMappings builds the lookup table rows for families.
func TypeMappings(families ...iot.Family) ([]print.TypeMapping, error) {
	var out []print.TypeMapping
	for _, f := range families {
		for _, name := range f.Names() {
			js, err := iot.ConvertToJSType(f, name)
			if err != nil {
				return nil, err
			}
			m := print.TypeMapping{Family: f.String(), Type: name, JSType: js}
			if f == iot.FamilyInputOutput {
				// Only some port types have a designer value type.
				if tv, err := iot.ToTaskValueType(name); err == nil {
					m.TaskValueType = tv
				}
			}
			out = append(out, m)
		}
	}
	return out, nil
}

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <file>",
		Short: "Validate a converter parameters file and print it normalised",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			buf, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "reading %s", args[0])
			}
			params, err := iot.UnmarshalParameters(buf)
			if err != nil {
				return utils.WrapCLIError(err, utils.ErrorCodeInvalidArgument, args[0]+": "+err.Error())
			}
			return print.Parameters(params)
		},
	}
}
