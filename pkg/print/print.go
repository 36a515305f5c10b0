package print

import (
	"io"
	"os"

	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/iot"
)

var (
	// DefaultFormatter is the default formatter to use.
	//
	// It defaults to the `table` formatter which prints
	// to the CLI using the tablewriter package.
	DefaultFormatter Formatter = Table{}

	// Output is where formatters write. Tests swap it for a buffer.
	Output io.Writer = os.Stdout
)

// Formatter represents an output formatter.
type Formatter interface {
	steps([]build.ProcessBuildStep) error
	typeMappings([]TypeMapping) error
	parameters(iot.Parameters) error
	version(Version) error
}

// NewFormatter returns the formatter registered under name.
func NewFormatter(name string) (Formatter, bool) {
	switch name {
	case "json":
		return NewJSONFormatter(), true
	case "yaml":
		return YAML{}, true
	case "table":
		return Table{}, true
	default:
		return nil, false
	}
}

// Steps prints the process steps of a build pipeline.
func Steps(steps []build.ProcessBuildStep) error {
	return DefaultFormatter.steps(steps)
}

// TypeMappings prints how IoT value types map to JavaScript types.
func TypeMappings(mappings []TypeMapping) error {
	return DefaultFormatter.typeMappings(mappings)
}

// Parameters prints a converter parameter map.
func Parameters(params iot.Parameters) error {
	return DefaultFormatter.parameters(params)
}

// PrintVersion prints build information.
func PrintVersion(v Version) error {
	return DefaultFormatter.version(v)
}

// Print outputs obj based on DefaultFormatter
// If JSON or YAML, uses that formatter to encode obj
// Otherwise, calls defaultPrintFunc to render the obj
func Print(obj interface{}, defaultPrintFunc func()) error {
	switch f := DefaultFormatter.(type) {
	case *JSON:
		return f.Encode(obj)
	case YAML:
		return f.Encode(obj)
	default:
		defaultPrintFunc()
	}
	return nil
}
