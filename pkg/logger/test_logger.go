package logger

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

var _ Logger = &TestLogger{}

// TestLogger forwards to t.Log and keeps every line so tests can assert on
// what was logged.
type TestLogger struct {
	t testing.TB

	mu    sync.Mutex
	lines []string
}

func NewTestLogger(t testing.TB) *TestLogger {
	return &TestLogger{t: t}
}

func (l *TestLogger) record(prefix, msg string, args ...interface{}) {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	l.mu.Lock()
	l.lines = append(l.lines, prefix+msg)
	l.mu.Unlock()
	l.t.Log(prefix + msg)
}

func (l *TestLogger) Log(msg string, args ...interface{})     { l.record("", msg, args...) }
func (l *TestLogger) Step(msg string, args ...interface{})    { l.record("- ", msg, args...) }
func (l *TestLogger) Warning(msg string, args ...interface{}) { l.record("[warning] ", msg, args...) }
func (l *TestLogger) Error(msg string, args ...interface{})   { l.record("Error: ", msg, args...) }
func (l *TestLogger) Debug(msg string, args ...interface{})   { l.record("[debug] ", msg, args...) }

func (l *TestLogger) Suggest(title, command string, args ...interface{}) {
	l.record("", title+" "+command, args...)
}

// Lines returns a copy of everything logged so far.
func (l *TestLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

// Contains reports whether any logged line contains substr.
func (l *TestLogger) Contains(substr string) bool {
	for _, line := range l.Lines() {
		if strings.Contains(line, substr) {
			return true
		}
	}
	return false
}
