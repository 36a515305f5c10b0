package logger

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	var buf bytes.Buffer
	prev := Output
	prevNoColor := color.NoColor
	Output = &buf
	color.NoColor = true
	t.Cleanup(func() {
		Output = prev
		color.NoColor = prevNoColor
	})
	return &buf
}

func TestLogDoesNotFormatWithoutArgs(t *testing.T) {
	buf := captureOutput(t)
	Log("100% done")
	require.Equal(t, "100% done\n", buf.String())
}

func TestDebugPrefixesEveryLine(t *testing.T) {
	buf := captureOutput(t)
	EnableDebug = false
	Debug("hidden")
	require.Empty(t, buf.String())

	EnableDebug = true
	defer func() { EnableDebug = false }()
	Debug("a\nb %d", 1)
	require.Equal(t, "[debug] a\n[debug] b 1\n", buf.String())
}

func TestStepAndError(t *testing.T) {
	buf := captureOutput(t)
	Step("Created %s", "file.txt")
	Error("boom")
	require.Equal(t, "- Created file.txt\nError: boom\n", buf.String())
}

func TestNoopLoaderLogger(t *testing.T) {
	buf := captureOutput(t)
	l := NewStdErrLogger(StdErrLoggerOpts{})
	require.False(t, l.StopLoader())
	l.Log("hello")
	require.Equal(t, "hello\n", buf.String())
}
