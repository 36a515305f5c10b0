package iot

import (
	"strconv"
	"strings"

	"github.com/blang/semver"
	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// AskChoice asks the user to pick one of choices.
func AskChoice(p prompts.Prompter, question string, choices []string, def string) (string, error) {
	if len(choices) == 0 {
		return "", errors.Errorf("%s: nothing to choose from", question)
	}
	if def == "" {
		def = choices[0]
	}
	answer := def
	if err := p.Input(question, &answer, prompts.WithSelectOptions(choices), prompts.WithDefault(def)); err != nil {
		return "", err
	}
	return answer, nil
}

// AskDynamicType asks question and stores the answer in target, which must
// be a *string, *bool or *int. The current value of target is the default.
func AskDynamicType(p prompts.Prompter, question string, target interface{}) error {
	switch v := target.(type) {
	case *string:
		answer := *v
		if err := p.Input(question, &answer, prompts.WithDefault(*v), prompts.WithRequired()); err != nil {
			return err
		}
		*v = answer
	case *bool:
		answer, err := p.Confirm(question, prompts.WithDefault(*v))
		if err != nil {
			return err
		}
		*v = answer
	case *int:
		answer := strconv.Itoa(*v)
		if err := p.Input(question, &answer, prompts.WithDefault(answer), prompts.WithValidator(isInteger)); err != nil {
			return err
		}
		n, err := strconv.Atoi(strings.TrimSpace(answer))
		if err != nil {
			return errors.Wrapf(err, "%s", question)
		}
		*v = n
	default:
		return errors.Errorf("cannot prompt for a value of type %T", target)
	}
	return nil
}

func isInteger(val interface{}) error {
	s, _ := val.(string)
	if _, err := strconv.Atoi(strings.TrimSpace(s)); err != nil {
		return errors.Errorf("%q is not a whole number", s)
	}
	return nil
}

func isSemver(val interface{}) error {
	s, _ := val.(string)
	if _, err := semver.Parse(s); err != nil {
		return errors.Errorf("%q is not a valid version (expected e.g. 1.0.0)", s)
	}
	return nil
}

// TitleFromName turns a camelCase identifier into a display title, e.g.
// "blackBox" -> "Black Box".
func TitleFromName(name string) string {
	return cases.Title(language.English).String(strcase.ToDelimited(name, ' '))
}

// PromptDriverValues lets the user review every field of d.
func PromptDriverValues(p prompts.Prompter, d *DriverValues) error {
	for _, q := range []struct {
		question string
		target   *string
	}{
		{"Directory name", &d.Directory},
		{"Package scope", &d.PackageScope},
		{"Package name", &d.PackageName},
		{"Driver identifier", &d.Identifier},
	} {
		if err := AskDynamicType(p, q.question, q.target); err != nil {
			return err
		}
	}
	version := d.PackageVersion
	if err := p.Input("Package version", &version, prompts.WithDefault(d.PackageVersion), prompts.WithValidator(isSemver)); err != nil {
		return err
	}
	d.PackageVersion = version
	return nil
}

// PromptConverterValues lets the user review c and add parameters.
func PromptConverterValues(p prompts.Prompter, c *ConverterValues) error {
	if err := AskDynamicType(p, "Converter name", &c.Name); err != nil {
		return err
	}
	c.Name = strcase.ToLowerCamel(c.Name)
	c.Title = TitleFromName(c.Name)
	if err := AskDynamicType(p, "Converter title", &c.Title); err != nil {
		return err
	}

	names := FamilyInputOutput.Names()
	input, err := AskChoice(p, "Input type", names, c.Input.String())
	if err != nil {
		return err
	}
	if c.Input, err = ParseDataTypeInputOutput(input); err != nil {
		return err
	}
	output, err := AskChoice(p, "Output type", names, c.Output.String())
	if err != nil {
		return err
	}
	if c.Output, err = ParseDataTypeInputOutput(output); err != nil {
		return err
	}

	if c.Parameters == nil {
		c.Parameters = Parameters{}
	}
	for {
		more, err := p.Confirm("Add a parameter?", prompts.WithDefault(false))
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		name, param, err := promptParameter(p)
		if err != nil {
			return err
		}
		c.Parameters[name] = param
	}
}

func promptParameter(p prompts.Prompter) (string, ParameterType, error) {
	var name string
	if err := p.Input("Parameter name", &name, prompts.WithRequired()); err != nil {
		return "", ParameterType{}, err
	}
	valueTypeNames := make([]string, 0, len(iotValueTypeNames))
	for _, t := range IoTValueTypes() {
		valueTypeNames = append(valueTypeNames, t.String())
	}
	typeName, err := AskChoice(p, "Parameter type", valueTypeNames, IoTValueTypeString.String())
	if err != nil {
		return "", ParameterType{}, err
	}
	valueType, err := ParseIoTValueType(typeName)
	if err != nil {
		return "", ParameterType{}, err
	}
	if valueType != IoTValueTypeEnum {
		return name, Plain(valueType), nil
	}

	options, err := promptEnumValues(p)
	if err != nil {
		return "", ParameterType{}, err
	}
	return name, Enum(options...), nil
}

func promptEnumValues(p prompts.Prompter) ([]string, error) {
	var raw string
	if err := p.Input("Enum options (comma separated)", &raw, prompts.WithRequired()); err != nil {
		return nil, err
	}
	var options []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			options = append(options, o)
		}
	}
	return options, nil
}

// PromptTaskValues lets the user review t and add settings. The fixed
// activate/success/error ports are never asked for.
func PromptTaskValues(p prompts.Prompter, t *TaskValues) error {
	if err := AskDynamicType(p, "Task name", &t.Name); err != nil {
		return err
	}
	t.Name = strcase.ToLowerCamel(t.Name)
	t.Title = TitleFromName(t.Name)
	for _, q := range []struct {
		question string
		target   interface{}
	}{
		{"Task title", &t.Title},
		{"Icon", &t.Icon},
		{"Is this a protocol task?", &t.IsProtocol},
		{"Is this a controller task?", &t.IsController},
	} {
		if err := AskDynamicType(p, q.question, q.target); err != nil {
			return err
		}
	}
	lifecycle, err := AskChoice(p, "Lifecycle", Lifecycles(), string(t.Lifecycle))
	if err != nil {
		return err
	}
	t.Lifecycle = Lifecycle(lifecycle)

	for {
		more, err := p.Confirm("Add a setting?", prompts.WithDefault(false))
		if err != nil {
			return err
		}
		if !more {
			return t.Validate()
		}
		s := NewTaskSetting()
		if err := AskDynamicType(p, "Setting name", &s.Name); err != nil {
			return err
		}
		s.SettingKey = strcase.ToLowerCamel(s.Name)
		if err := AskDynamicType(p, "Setting key", &s.SettingKey); err != nil {
			return err
		}
		dataType, err := AskChoice(p, "Setting type", FamilySetting.Names(), s.DataType.String())
		if err != nil {
			return err
		}
		if s.DataType, err = ParseDataTypeSetting(dataType); err != nil {
			return err
		}
		if s.DataType == DataTypeSettingEnum {
			if s.EnumValues, err = promptEnumValues(p); err != nil {
				return err
			}
		}
		t.Settings = append(t.Settings, s)
	}
}
