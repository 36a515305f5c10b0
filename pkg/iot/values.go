package iot

import (
	"fmt"

	"github.com/pkg/errors"
)

// TaskInputTypeType says whether a task port is declared statically in the
// task definition or added by the user at design time.
type TaskInputTypeType string

const (
	TaskInputTypeStatic  TaskInputTypeType = "Static"
	TaskInputTypeDynamic TaskInputTypeType = "Dynamic"
)

// Lifecycle is the maturity tag shown in the task library.
type Lifecycle string

const (
	LifecycleProductive   Lifecycle = "Productive"
	LifecycleExperimental Lifecycle = "Experimental"
	LifecycleDeprecated   Lifecycle = "Deprecated"
)

// Lifecycles lists the accepted lifecycle tags.
func Lifecycles() []string {
	return []string{string(LifecycleProductive), string(LifecycleExperimental), string(LifecycleDeprecated)}
}

// Task port names every generated task must expose.
const (
	InputActivate = "activate"
	OutputSuccess = "success"
	OutputError   = "error"
)

// TemplateTaskLibrary is the manifest of the converters and tasks a library
// package provides.
type TemplateTaskLibrary struct {
	Converters []ConverterValues `json:"converters"`
	Tasks      []TaskValues      `json:"tasks"`
}

// NewTemplateTaskLibrary returns an empty library.
func NewTemplateTaskLibrary() TemplateTaskLibrary {
	return TemplateTaskLibrary{
		Converters: []ConverterValues{},
		Tasks:      []TaskValues{},
	}
}

// AddConverter appends c, refusing duplicate names.
func (l *TemplateTaskLibrary) AddConverter(c ConverterValues) error {
	for _, existing := range l.Converters {
		if existing.Name == c.Name {
			return errors.Errorf("converter %q already exists in the library", c.Name)
		}
	}
	l.Converters = append(l.Converters, c)
	return nil
}

// AddTask appends t, refusing duplicate names.
func (l *TemplateTaskLibrary) AddTask(t TaskValues) error {
	for _, existing := range l.Tasks {
		if existing.Name == t.Name {
			return errors.Errorf("task %q already exists in the library", t.Name)
		}
	}
	l.Tasks = append(l.Tasks, t)
	return nil
}

// DriverValues seeds the scaffolding of a new driver package.
type DriverValues struct {
	Directory      string `json:"directory"`
	PackageVersion string `json:"packageVersion"`
	Identifier     string `json:"identifier"`
	PackageScope   string `json:"packageScope"`
	PackageName    string `json:"packageName"`
}

// NewDriverValues returns the defaults offered to the user.
func NewDriverValues() DriverValues {
	return DriverValues{
		Directory:      "driver-sample",
		PackageVersion: "0.0.0",
		Identifier:     "SampleDriver",
		PackageScope:   "@criticalmanufacturing",
		PackageName:    "connect-iot-driver-sample",
	}
}

// FullPackageName is the scoped npm name, e.g. @scope/name.
func (d DriverValues) FullPackageName() string {
	if d.PackageScope == "" {
		return d.PackageName
	}
	return fmt.Sprintf("%s/%s", d.PackageScope, d.PackageName)
}

// ConverterValues seeds the scaffolding of a new converter.
type ConverterValues struct {
	Name       string              `json:"name"`
	Title      string              `json:"title"`
	Input      DataTypeInputOutput `json:"input"`
	Output     DataTypeInputOutput `json:"output"`
	Parameters Parameters          `json:"parameters"`
}

func NewConverterValues() ConverterValues {
	return ConverterValues{
		Name:       "somethingToSomething",
		Title:      "Something To Something",
		Input:      DataTypeInputOutputAny,
		Output:     DataTypeInputOutputAny,
		Parameters: Parameters{},
	}
}

// TaskSetting is one setting of a task.
type TaskSetting struct {
	Name       string          `json:"name"`
	SettingKey string          `json:"settingKey"`
	DataType   DataTypeSetting `json:"dataType"`
	// EnumValues is only used when DataType is Enum.
	EnumValues []string `json:"enumValues,omitempty"`
}

func NewTaskSetting() TaskSetting {
	return TaskSetting{
		Name:       "settingName",
		SettingKey: "settingKey",
		DataType:   DataTypeSettingString,
	}
}

// TaskInputOutputType describes one input or output port of a task.
type TaskInputOutputType struct {
	Type     TaskInputTypeType   `json:"type"`
	DataType DataTypeInputOutput `json:"dataType"`
}

func NewTaskInputOutputType() TaskInputOutputType {
	return TaskInputOutputType{
		Type:     TaskInputTypeStatic,
		DataType: DataTypeInputOutputString,
	}
}

// TaskValues seeds the scaffolding of a new task.
type TaskValues struct {
	Name         string                         `json:"name"`
	Title        string                         `json:"title"`
	Icon         string                         `json:"icon"`
	IsProtocol   bool                           `json:"isProtocol"`
	IsController bool                           `json:"isController"`
	Lifecycle    Lifecycle                      `json:"lifecycle"`
	Inputs       map[string]TaskInputOutputType `json:"inputs"`
	Outputs      map[string]TaskInputOutputType `json:"outputs"`
	Settings     []TaskSetting                  `json:"settings"`
}

func NewTaskValues() TaskValues {
	return TaskValues{
		Name:         "blackBox",
		Title:        "Black Box",
		Icon:         "icon-core-tasks-connect-iot-lg-logmessage",
		IsProtocol:   false,
		IsController: true,
		Lifecycle:    LifecycleProductive,
		Inputs: map[string]TaskInputOutputType{
			InputActivate: {Type: TaskInputTypeDynamic, DataType: DataTypeInputOutputAny},
		},
		Outputs: map[string]TaskInputOutputType{
			OutputSuccess: {Type: TaskInputTypeStatic, DataType: DataTypeInputOutputBoolean},
			OutputError:   {Type: TaskInputTypeStatic, DataType: DataTypeInputOutputObject},
		},
		Settings: []TaskSetting{},
	}
}

// Validate checks the ports the task templates rely on.
func (t TaskValues) Validate() error {
	if t.Name == "" {
		return errors.New("task name is required")
	}
	if _, ok := t.Inputs[InputActivate]; !ok {
		return errors.Errorf("task %q must have an %q input", t.Name, InputActivate)
	}
	for _, out := range []string{OutputSuccess, OutputError} {
		if _, ok := t.Outputs[out]; !ok {
			return errors.Errorf("task %q must have a %q output", t.Name, out)
		}
	}
	return nil
}
