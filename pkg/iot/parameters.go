package iot

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const enumDataType = "Enum"

// SampleEnumValues are written for Enum parameters that have no options yet,
// so the generated file shows the expected shape.
var SampleEnumValues = []string{"First Option", "Second Option", "etc"}

// ParameterType is the type of a single converter parameter: a plain value
// type or an Enum with its options.
type ParameterType struct {
	ValueType  IoTValueType
	EnumValues []string
}

// Plain returns a non-enum parameter type.
func Plain(v IoTValueType) ParameterType {
	return ParameterType{ValueType: v}
}

// Enum returns an Enum parameter type with the given options.
func Enum(values ...string) ParameterType {
	return ParameterType{ValueType: IoTValueTypeEnum, EnumValues: values}
}

// IsEnum reports whether p is an Enum parameter.
func (p ParameterType) IsEnum() bool {
	return p.ValueType == IoTValueTypeEnum
}

type enumDescriptor struct {
	DataType   string   `json:"dataType"`
	EnumValues []string `json:"enumValues"`
}

func (p ParameterType) MarshalJSON() ([]byte, error) {
	if p.IsEnum() {
		values := p.EnumValues
		if len(values) == 0 {
			values = SampleEnumValues
		}
		return json.Marshal(enumDescriptor{DataType: enumDataType, EnumValues: values})
	}
	if !p.ValueType.Valid() {
		return nil, &UnsupportedValueError{Family: FamilyInputOutput, Value: p.ValueType.String()}
	}
	return json.Marshal(p.ValueType.String())
}

func (p *ParameterType) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return &ParseError{Msg: "empty value"}
	}

	switch b[0] {
	case '"':
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return &ParseError{Msg: "invalid string", Err: err}
		}
		v, err := ParseIoTValueType(name)
		if err != nil {
			return &ParseError{Msg: fmt.Sprintf("unknown value type %q", name)}
		}
		*p = ParameterType{ValueType: v}
		return nil
	case '{':
		var d enumDescriptor
		if err := json.Unmarshal(b, &d); err != nil {
			return &ParseError{Msg: "invalid enum descriptor", Err: err}
		}
		if d.DataType != enumDataType {
			return &ParseError{Msg: fmt.Sprintf("unexpected dataType %q, only %q may be an object", d.DataType, enumDataType)}
		}
		*p = ParameterType{ValueType: IoTValueTypeEnum, EnumValues: d.EnumValues}
		return nil
	default:
		return &ParseError{Msg: fmt.Sprintf("expected a string or an object, got %s", b)}
	}
}

// Parameters maps a parameter name to its type.
type Parameters map[string]ParameterType

// ParseError is returned when parameters JSON has an unexpected shape or an
// unknown value type.
type ParseError struct {
	Key string
	Msg string
	Err error
}

func (e *ParseError) Error() string {
	msg := e.Msg
	if e.Key != "" {
		msg = fmt.Sprintf("parameter %q: %s", e.Key, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return "parsing parameters: " + msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// MarshalParameters writes params as a JSON object with sorted keys. A nil
// map is written as an empty object.
func MarshalParameters(params Parameters) ([]byte, error) {
	if params == nil {
		params = Parameters{}
	}
	return json.Marshal(map[string]ParameterType(params))
}

// UnmarshalParameters parses the output of MarshalParameters. "{}" gives an
// empty, non-nil map.
func UnmarshalParameters(b []byte) (Parameters, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, &ParseError{Msg: "expected a JSON object", Err: err}
	}
	if raw == nil {
		return nil, &ParseError{Msg: "expected a JSON object, got null"}
	}

	params := make(Parameters, len(raw))
	for key, value := range raw {
		var p ParameterType
		if err := p.UnmarshalJSON(value); err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Key = key
			}
			return nil, err
		}
		params[key] = p
	}
	return params, nil
}

func (p Parameters) MarshalJSON() ([]byte, error) {
	return MarshalParameters(p)
}

func (p *Parameters) UnmarshalJSON(b []byte) error {
	params, err := UnmarshalParameters(b)
	if err != nil {
		return err
	}
	*p = params
	return nil
}

// Names returns the parameter names in sorted order.
func (p Parameters) Names() []string {
	names := maps.Keys(p)
	slices.Sort(names)
	return names
}
