package iot

import (
	"fmt"
)

// Family selects which lookup table a conversion uses. The two tables do not
// share membership: DateTime, Buffer and Any only exist for inputs and
// outputs, Enum only for settings.
type Family int

const (
	FamilyInputOutput Family = iota
	FamilySetting
)

func (f Family) String() string {
	switch f {
	case FamilyInputOutput:
		return "input/output"
	case FamilySetting:
		return "setting"
	default:
		return fmt.Sprintf("Family(%d)", int(f))
	}
}

// EnumPlaceholder is emitted for settings of type Enum; the generated code
// must replace it with a concrete enum declaration.
const EnumPlaceholder = "<Declare your enum>"

var jsTypes = map[Family]map[string]string{
	FamilyInputOutput: {
		"String":   "string",
		"Integer":  "number",
		"Long":     "number",
		"Decimal":  "number",
		"Boolean":  "boolean",
		"Object":   "object",
		"DateTime": "Date",
		"Buffer":   "Buffer",
		"Any":      "any",
	},
	FamilySetting: {
		"String":  "string",
		"Integer": "number",
		"Long":    "number",
		"Decimal": "number",
		"Boolean": "boolean",
		"Object":  "object",
		"Enum":    EnumPlaceholder,
	},
}

var taskValueTypes = map[string]string{
	"String":  "Task.TaskValueType.String",
	"Integer": "Task.TaskValueType.Integer",
	"Boolean": "Task.TaskValueType.Boolean",
	"Any":     "undefined",
}

// UnsupportedValueError is returned when a value has no entry in the lookup
// table it was converted with.
type UnsupportedValueError struct {
	Family Family
	Value  string
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported %s value type %q", e.Family, e.Value)
}

// ConvertToJSType returns the TypeScript type name for the variant called
// name in the given family.
func ConvertToJSType(family Family, name string) (string, error) {
	table, ok := jsTypes[family]
	if !ok {
		return "", &UnsupportedValueError{Family: family, Value: name}
	}
	js, ok := table[name]
	if !ok {
		return "", &UnsupportedValueError{Family: family, Value: name}
	}
	return js, nil
}

// JSType converts t with the input/output table.
func (t DataTypeInputOutput) JSType() (string, error) {
	if !t.Valid() {
		return "", &UnsupportedValueError{Family: FamilyInputOutput, Value: t.String()}
	}
	return ConvertToJSType(FamilyInputOutput, t.String())
}

// JSType converts t with the settings table.
func (t DataTypeSetting) JSType() (string, error) {
	if !t.Valid() {
		return "", &UnsupportedValueError{Family: FamilySetting, Value: t.String()}
	}
	return ConvertToJSType(FamilySetting, t.String())
}

// ToTaskValueType returns the Task.TaskValueType expression for the variant
// called name. Only the variant name matters, so input/output data types and
// general value types map identically.
func ToTaskValueType(name string) (string, error) {
	v, ok := taskValueTypes[name]
	if !ok {
		return "", &UnsupportedValueError{Family: FamilyInputOutput, Value: name}
	}
	return v, nil
}

// TaskValueType converts t with ToTaskValueType.
func (t DataTypeInputOutput) TaskValueType() (string, error) {
	return ToTaskValueType(t.String())
}

// TaskValueType converts t with ToTaskValueType.
func (t IoTValueType) TaskValueType() (string, error) {
	return ToTaskValueType(t.String())
}

// Names returns the variant names a family's table accepts, in declaration
// order.
func (f Family) Names() []string {
	switch f {
	case FamilyInputOutput:
		return append([]string(nil), dataTypeInputOutputNames...)
	case FamilySetting:
		return append([]string(nil), dataTypeSettingNames...)
	default:
		return nil
	}
}
