package print

import (
	"encoding/json"

	"github.com/criticalmanufacturing/cli/pkg/build"
	"github.com/criticalmanufacturing/cli/pkg/iot"
)

// JSON implements a JSON formatter.
type JSON struct {
	enc *json.Encoder
}

var _ Formatter = &JSON{}

// NewJSONFormatter returns a new json formatter.
func NewJSONFormatter() *JSON {
	enc := json.NewEncoder(Output)
	enc.SetIndent("", "  ")
	return &JSON{enc: enc}
}

// Encode allows external callers to use the same encoder
func (j *JSON) Encode(obj interface{}) error {
	return j.enc.Encode(obj)
}

func (j *JSON) steps(steps []build.ProcessBuildStep) error {
	if steps == nil {
		steps = []build.ProcessBuildStep{}
	}
	return j.enc.Encode(steps)
}

func (j *JSON) typeMappings(mappings []TypeMapping) error {
	return j.enc.Encode(mappings)
}

// Parameters keep their own wire format so the output can be fed back in.
func (j *JSON) parameters(params iot.Parameters) error {
	buf, err := iot.MarshalParameters(params)
	if err != nil {
		return err
	}
	return j.enc.Encode(json.RawMessage(buf))
}

func (j *JSON) version(v Version) error {
	return j.enc.Encode(v)
}
