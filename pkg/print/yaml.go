package print

import (
	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/iot"
	"gopkg.in/yaml.v3"
)

// YAML implements a YAML formatter.
type YAML struct{}

var _ Formatter = YAML{}

// Encode allows external callers to use the same encoder
func (YAML) Encode(obj interface{}) error {
	enc := yaml.NewEncoder(Output)
	defer enc.Close()
	enc.SetIndent(2)
	return enc.Encode(obj)
}

func (y YAML) steps(steps []build.ProcessBuildStep) error {
	return y.Encode(steps)
}

func (y YAML) typeMappings(mappings []TypeMapping) error {
	return y.Encode(mappings)
}

func (y YAML) parameters(params iot.Parameters) error {
	out := map[string]interface{}{}
	for name, p := range params {
		if p.IsEnum() {
			values := p.EnumValues
			if len(values) == 0 {
				values = iot.SampleEnumValues
			}
			out[name] = map[string]interface{}{
				"dataType":   p.ValueType.String(),
				"enumValues": values,
			}
			continue
		}
		out[name] = p.ValueType.String()
	}
	return y.Encode(out)
}

func (y YAML) version(v Version) error {
	return y.Encode(v)
}
