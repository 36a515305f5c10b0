package print

import (
	"fmt"
	"strings"

	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/iot"
	"github.com/olekukonko/tablewriter"
)

// Table implements a table formatter.
type Table struct{}

var _ Formatter = Table{}

func newTableWriter(header ...string) *tablewriter.Table {
	tw := tablewriter.NewWriter(Output)
	tw.SetBorder(false)
	tw.SetHeader(header)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	return tw
}

func (t Table) steps(steps []build.ProcessBuildStep) error {
	if len(steps) == 0 {
		fmt.Fprintln(Output, "There are no process steps.")
		return nil
	}
	tw := newTableWriter("#", "COMMAND", "WORKING DIRECTORY", "ENVIRONMENT")
	for i, s := range steps {
		tw.Append([]string{
			fmt.Sprint(i + 1),
			s.CommandLine(),
			s.WorkingDirectory,
			strings.Join(s.EnvironmentList(), " "),
		})
	}
	tw.Render()
	return nil
}

func (t Table) typeMappings(mappings []TypeMapping) error {
	tw := newTableWriter("FAMILY", "TYPE", "JS TYPE", "TASK VALUE TYPE")
	for _, m := range mappings {
		tw.Append([]string{m.Family, m.Type, m.JSType, m.TaskValueType})
	}
	tw.Render()
	return nil
}

func (t Table) parameters(params iot.Parameters) error {
	if len(params) == 0 {
		fmt.Fprintln(Output, "There are no parameters.")
		return nil
	}
	tw := newTableWriter("NAME", "TYPE", "OPTIONS")
	for _, name := range params.Names() {
		p := params[name]
		var options string
		if p.IsEnum() {
			options = strings.Join(p.EnumValues, ", ")
		}
		tw.Append([]string{name, p.ValueType.String(), options})
	}
	tw.Render()
	return nil
}

func (t Table) version(v Version) error {
	fmt.Fprintf(Output, "cmf %s", v.Version)
	if v.Commit != "" {
		fmt.Fprintf(Output, " (%s)", v.Commit)
	}
	fmt.Fprintf(Output, " %s\n", v.OS)
	return nil
}
