package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"golang.org/x/term"
)

const TimeFormatNoDate = "15:04:05"

var (
	// EnableDebug determines if debug logs are emitted.
	EnableDebug bool

	// Output is where every log line is written. Tests swap it for a buffer.
	Output io.Writer = os.Stderr
)

// Logger is the logging surface handed to packages that should not write to
// the global logger directly, e.g. the build executor.
type Logger interface {
	Log(msg string, args ...interface{})
	Step(msg string, args ...interface{})
	Warning(msg string, args ...interface{})
	Error(msg string, args ...interface{})
	Debug(msg string, args ...interface{})
	Suggest(title, command string, args ...interface{})
}

type LoggerWithLoader interface {
	Logger
	StopLoader() bool
	StartLoader()
}

var _ LoggerWithLoader = &StdErrLogger{}

// StdErrLogger forwards to the package-level functions, pausing the loader
// while a line is written so the spinner never interleaves with output.
type StdErrLogger struct {
	loader Loader
}

type StdErrLoggerOpts struct {
	WithLoader bool
}

// NewStdErrLogger creates a new logger that logs to stderr.
// If created WithLoader, the loader must be stopped in a defer.
func NewStdErrLogger(opts StdErrLoggerOpts) LoggerWithLoader {
	var loader Loader = &NoopLoader{}
	if opts.WithLoader {
		loader = NewLoader()
	}
	loader.Start()
	return &StdErrLogger{loader: loader}
}

func (l *StdErrLogger) paused(fn func()) {
	if l.StopLoader() {
		defer l.StartLoader()
	}
	fn()
}

func (l *StdErrLogger) Log(msg string, args ...interface{}) {
	l.paused(func() { Log(msg, args...) })
}

func (l *StdErrLogger) Step(msg string, args ...interface{}) {
	l.paused(func() { Step(msg, args...) })
}

func (l *StdErrLogger) Warning(msg string, args ...interface{}) {
	l.paused(func() { Warning(msg, args...) })
}

func (l *StdErrLogger) Error(msg string, args ...interface{}) {
	l.paused(func() { Error(msg, args...) })
}

func (l *StdErrLogger) Debug(msg string, args ...interface{}) {
	l.paused(func() { Debug(msg, args...) })
}

func (l *StdErrLogger) Suggest(title, command string, args ...interface{}) {
	l.paused(func() { Suggest(title, command, args...) })
}

func (l *StdErrLogger) StopLoader() bool {
	if l.loader == nil {
		return false
	}
	active := l.loader.IsActive()
	l.loader.Stop()
	return active
}

func (l *StdErrLogger) StartLoader() {
	if l.loader != nil {
		l.loader.Start()
	}
}

// Log writes a log message followed by a newline. Printf-style formatting is
// applied to msg only when args are given.
func Log(msg string, args ...interface{}) {
	if len(args) == 0 {
		fmt.Fprint(Output, msg+"\n")
		return
	}
	fmt.Fprintf(Output, msg+"\n", args...)
}

// Step prints a step that was performed.
func Step(msg string, args ...interface{}) {
	Log("- "+msg, args...)
}

// Suggest suggests a command with title and args.
func Suggest(title, command string, args ...interface{}) {
	Log("\n"+Gray(title)+"\n  "+command, args...)
}

// SuggestSteps prints a titled list of follow-up steps.
func SuggestSteps(title string, steps ...string) {
	if len(steps) > 0 {
		Log("\n" + Gray(title) + "\n- " + strings.Join(steps, "\n- "))
	}
}

// Error logs an error message.
func Error(msg string, args ...interface{}) {
	fmt.Fprintf(Output, Red("Error: ")+msg+"\n", args...)
}

// Warning logs a warning message.
func Warning(msg string, args ...interface{}) {
	fmt.Fprint(Output, Yellow("[warning] "+msg+"\n", args...))
}

// Debug writes a log message when the CLI runs with --debug. Every line of a
// multi-line message gets the debug prefix.
func Debug(msg string, args ...interface{}) {
	if !EnableDebug {
		return
	}

	msgf := msg
	if len(args) > 0 {
		msgf = fmt.Sprintf(msg, args...)
	}

	prefix := "[" + Blue("debug") + "] "
	msgf = prefix + strings.Join(strings.Split(msgf, "\n"), "\n"+prefix)
	fmt.Fprint(Output, msgf+"\n")
}

type Loader interface {
	Start()
	Stop()
	IsActive() bool
}

// SpinnerLoader adds a spinner / progress indicator to stderr.
type SpinnerLoader struct {
	sync.Mutex
	spin *spinner.Spinner
}

// NewLoader returns a spinner when stderr is a terminal and a no-op loader
// otherwise.
func NewLoader() Loader {
	if !term.IsTerminal(int(os.Stderr.Fd())) {
		return &NoopLoader{}
	}
	return &SpinnerLoader{
		spin: spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(os.Stderr)),
	}
}

func (sp *SpinnerLoader) Start() {
	sp.Lock()
	defer sp.Unlock()
	sp.spin.Start()
}

func (sp *SpinnerLoader) Stop() {
	sp.Lock()
	defer sp.Unlock()
	sp.spin.Stop()
}

func (sp *SpinnerLoader) IsActive() bool {
	return sp.spin.Active()
}

// NoopLoader doesn't do anything.
type NoopLoader struct{}

func (*NoopLoader) Start()         {}
func (*NoopLoader) Stop()          {}
func (*NoopLoader) IsActive() bool { return false }
