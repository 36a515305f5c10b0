package logger

// NoopLogger drops every message.
type NoopLogger struct{}

var _ Logger = NoopLogger{}

func (NoopLogger) Log(msg string, args ...interface{})                {}
func (NoopLogger) Step(msg string, args ...interface{})               {}
func (NoopLogger) Warning(msg string, args ...interface{})            {}
func (NoopLogger) Error(msg string, args ...interface{})              {}
func (NoopLogger) Debug(msg string, args ...interface{})              {}
func (NoopLogger) Suggest(title, command string, args ...interface{}) {}
