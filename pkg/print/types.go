package print

// TypeMapping is one row of the IoT type table.
type TypeMapping struct {
	Family        string `json:"family" yaml:"family"`
	Type          string `json:"type" yaml:"type"`
	JSType        string `json:"jsType" yaml:"jsType"`
	TaskValueType string `json:"taskValueType,omitempty" yaml:"taskValueType,omitempty"`
}

type Version struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit,omitempty" yaml:"commit,omitempty"`
	OS      string `json:"os" yaml:"os"`
}
