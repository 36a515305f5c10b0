// Package iot models the data types of Connect IoT drivers, tasks and
// converters, and converts them to the names used by the generated
// TypeScript sources.
package iot

import (
	"fmt"

	"github.com/pkg/errors"
)

// DataTypeInputOutput is the data type of a task input or output.
type DataTypeInputOutput int

const (
	DataTypeInputOutputAny DataTypeInputOutput = iota
	DataTypeInputOutputString
	DataTypeInputOutputInteger
	DataTypeInputOutputLong
	DataTypeInputOutputDecimal
	DataTypeInputOutputBoolean
	DataTypeInputOutputObject
	DataTypeInputOutputDateTime
	DataTypeInputOutputBuffer
)

var dataTypeInputOutputNames = []string{
	DataTypeInputOutputAny:      "Any",
	DataTypeInputOutputString:   "String",
	DataTypeInputOutputInteger:  "Integer",
	DataTypeInputOutputLong:     "Long",
	DataTypeInputOutputDecimal:  "Decimal",
	DataTypeInputOutputBoolean:  "Boolean",
	DataTypeInputOutputObject:   "Object",
	DataTypeInputOutputDateTime: "DateTime",
	DataTypeInputOutputBuffer:   "Buffer",
}

// DataTypeSetting is the data type of a task or driver setting.
type DataTypeSetting int

const (
	DataTypeSettingString DataTypeSetting = iota
	DataTypeSettingInteger
	DataTypeSettingLong
	DataTypeSettingDecimal
	DataTypeSettingBoolean
	DataTypeSettingObject
	DataTypeSettingEnum
)

var dataTypeSettingNames = []string{
	DataTypeSettingString:  "String",
	DataTypeSettingInteger: "Integer",
	DataTypeSettingLong:    "Long",
	DataTypeSettingDecimal: "Decimal",
	DataTypeSettingBoolean: "Boolean",
	DataTypeSettingObject:  "Object",
	DataTypeSettingEnum:    "Enum",
}

// IoTValueType is the general value type used by converter parameters.
type IoTValueType int

const (
	IoTValueTypeAny IoTValueType = iota
	IoTValueTypeString
	IoTValueTypeInteger
	IoTValueTypeLong
	IoTValueTypeDecimal
	IoTValueTypeBoolean
	IoTValueTypeObject
	IoTValueTypeDateTime
	IoTValueTypeBuffer
	IoTValueTypeEnum
)

var iotValueTypeNames = []string{
	IoTValueTypeAny:      "Any",
	IoTValueTypeString:   "String",
	IoTValueTypeInteger:  "Integer",
	IoTValueTypeLong:     "Long",
	IoTValueTypeDecimal:  "Decimal",
	IoTValueTypeBoolean:  "Boolean",
	IoTValueTypeObject:   "Object",
	IoTValueTypeDateTime: "DateTime",
	IoTValueTypeBuffer:   "Buffer",
	IoTValueTypeEnum:     "Enum",
}

func nameOf(names []string, v int, kind string) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, v)
	}
	return names[v]
}

func indexOf(names []string, s string) (int, bool) {
	for i, n := range names {
		if n == s {
			return i, true
		}
	}
	return 0, false
}

func (t DataTypeInputOutput) String() string {
	return nameOf(dataTypeInputOutputNames, int(t), "DataTypeInputOutput")
}

// Valid reports whether t is one of the declared variants.
func (t DataTypeInputOutput) Valid() bool {
	return t >= 0 && int(t) < len(dataTypeInputOutputNames)
}

func (t DataTypeInputOutput) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnsupportedValueError{Family: FamilyInputOutput, Value: t.String()}
	}
	return []byte(t.String()), nil
}

func (t *DataTypeInputOutput) UnmarshalText(b []byte) error {
	v, err := ParseDataTypeInputOutput(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseDataTypeInputOutput resolves a variant by its exact name.
func ParseDataTypeInputOutput(s string) (DataTypeInputOutput, error) {
	i, ok := indexOf(dataTypeInputOutputNames, s)
	if !ok {
		return 0, errors.Errorf("unknown input/output data type %q", s)
	}
	return DataTypeInputOutput(i), nil
}

// DataTypeInputOutputs lists every variant in declaration order.
func DataTypeInputOutputs() []DataTypeInputOutput {
	out := make([]DataTypeInputOutput, len(dataTypeInputOutputNames))
	for i := range out {
		out[i] = DataTypeInputOutput(i)
	}
	return out
}

func (t DataTypeSetting) String() string {
	return nameOf(dataTypeSettingNames, int(t), "DataTypeSetting")
}

// Valid reports whether t is one of the declared variants.
func (t DataTypeSetting) Valid() bool {
	return t >= 0 && int(t) < len(dataTypeSettingNames)
}

func (t DataTypeSetting) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, &UnsupportedValueError{Family: FamilySetting, Value: t.String()}
	}
	return []byte(t.String()), nil
}

func (t *DataTypeSetting) UnmarshalText(b []byte) error {
	v, err := ParseDataTypeSetting(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// ParseDataTypeSetting resolves a variant by its exact name.
func ParseDataTypeSetting(s string) (DataTypeSetting, error) {
	i, ok := indexOf(dataTypeSettingNames, s)
	if !ok {
		return 0, errors.Errorf("unknown setting data type %q", s)
	}
	return DataTypeSetting(i), nil
}

// DataTypeSettings lists every variant in declaration order.
func DataTypeSettings() []DataTypeSetting {
	out := make([]DataTypeSetting, len(dataTypeSettingNames))
	for i := range out {
		out[i] = DataTypeSetting(i)
	}
	return out
}

func (t IoTValueType) String() string {
	return nameOf(iotValueTypeNames, int(t), "IoTValueType")
}

// Valid reports whether t is one of the declared variants.
func (t IoTValueType) Valid() bool {
	return t >= 0 && int(t) < len(iotValueTypeNames)
}

// ParseIoTValueType resolves a variant by its exact name.
func ParseIoTValueType(s string) (IoTValueType, error) {
	i, ok := indexOf(iotValueTypeNames, s)
	if !ok {
		return 0, errors.Errorf("unknown value type %q", s)
	}
	return IoTValueType(i), nil
}

// IoTValueTypes lists every variant in declaration order.
func IoTValueTypes() []IoTValueType {
	out := make([]IoTValueType, len(iotValueTypeNames))
	for i := range out {
		out[i] = IoTValueType(i)
	}
	return out
}
