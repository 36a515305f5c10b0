package iot

import (
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/stretchr/testify/require"
)

func TestAskDynamicType(t *testing.T) {
	require := require.New(t)

	s := "default"
	require.NoError(AskDynamicType(prompts.NewMock("typed"), "q", &s))
	require.Equal("typed", s)

	s = "default"
	require.NoError(AskDynamicType(prompts.NewMock(nil), "q", &s))
	require.Equal("default", s)

	b := true
	require.NoError(AskDynamicType(prompts.NewMock(false), "q", &b))
	require.False(b)

	n := 3
	require.NoError(AskDynamicType(prompts.NewMock("42"), "q", &n))
	require.Equal(42, n)

	require.Error(AskDynamicType(prompts.NewMock("forty"), "q", &n))
	require.Equal(42, n)

	var f float64
	require.Error(AskDynamicType(prompts.NewMock("1.5"), "q", &f))
}

func TestAskChoice(t *testing.T) {
	require := require.New(t)

	choice, err := AskChoice(prompts.NewMock("Boolean"), "type", FamilySetting.Names(), "")
	require.NoError(err)
	require.Equal("Boolean", choice)

	choice, err = AskChoice(prompts.NewMock(nil), "type", FamilySetting.Names(), "")
	require.NoError(err)
	require.Equal("String", choice)

	_, err = AskChoice(prompts.NewMock("Buffer"), "type", FamilySetting.Names(), "")
	require.Error(err)

	_, err = AskChoice(prompts.NewMock(), "type", nil, "")
	require.Error(err)
}

func TestPromptDriverValuesKeepsDefaults(t *testing.T) {
	require := require.New(t)
	p := prompts.NewMock(nil, nil, "my-driver", "MyDriver", "1.2.3")
	d := NewDriverValues()
	require.NoError(PromptDriverValues(p, &d))
	require.True(p.Done())
	require.Equal("driver-sample", d.Directory)
	require.Equal("@criticalmanufacturing", d.PackageScope)
	require.Equal("my-driver", d.PackageName)
	require.Equal("MyDriver", d.Identifier)
	require.Equal("1.2.3", d.PackageVersion)
}

func TestPromptDriverValuesRejectsBadVersion(t *testing.T) {
	p := prompts.NewMock(nil, nil, nil, nil, "one")
	d := NewDriverValues()
	require.Error(t, PromptDriverValues(p, &d))
}

func TestPromptConverterValues(t *testing.T) {
	require := require.New(t)
	p := prompts.NewMock(
		"stringToNumber", // name
		nil,              // title, derived from the name
		"String",         // input
		"Decimal",        // output
		true, "precision", "Integer",
		true, "rounding", "Enum", "Up, Down ,",
		false,
	)
	c := NewConverterValues()
	require.NoError(PromptConverterValues(p, &c))
	require.True(p.Done())

	require.Equal("stringToNumber", c.Name)
	require.Equal("String To Number", c.Title)
	require.Equal(DataTypeInputOutputString, c.Input)
	require.Equal(DataTypeInputOutputDecimal, c.Output)
	require.Equal(Parameters{
		"precision": Plain(IoTValueTypeInteger),
		"rounding":  Enum("Up", "Down"),
	}, c.Parameters)
}

func TestPromptTaskValues(t *testing.T) {
	require := require.New(t)
	p := prompts.NewMock(
		"Read Tag", // name
		nil,        // title
		nil,        // icon
		nil,        // protocol
		nil,        // controller
		"Experimental",
		true, "Tag Name", nil, "String",
		true, "Mode", nil, "Enum", "A,B",
		false,
	)
	task := NewTaskValues()
	require.NoError(PromptTaskValues(p, &task))
	require.True(p.Done())

	require.Equal("readTag", task.Name)
	require.Equal("Read Tag", task.Title)
	require.False(task.IsProtocol)
	require.True(task.IsController)
	require.Equal(LifecycleExperimental, task.Lifecycle)
	require.Equal([]TaskSetting{
		{Name: "Tag Name", SettingKey: "tagName", DataType: DataTypeSettingString},
		{Name: "Mode", SettingKey: "mode", DataType: DataTypeSettingEnum, EnumValues: []string{"A", "B"}},
	}, task.Settings)
	require.Contains(task.Inputs, InputActivate)
	require.Contains(task.Outputs, OutputSuccess)
	require.Contains(task.Outputs, OutputError)
}
