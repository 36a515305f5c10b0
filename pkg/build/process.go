package build

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/sync/errgroup"
)

// StepRunner executes a single process step.
type StepRunner interface {
	RunStep(ctx context.Context, step ProcessBuildStep) error
}

// StepFailedError is returned when a step's process exits non-zero. No
// meaning is attached to the exit code other than failure.
type StepFailedError struct {
	Step     ProcessBuildStep
	ExitCode int
	Err      error
}

func (e StepFailedError) Error() string {
	return fmt.Sprintf("%s exited with code %d", e.Step.CommandLine(), e.ExitCode)
}

func (e StepFailedError) Unwrap() error {
	return e.Err
}

const (
	// DefaultWaitDelay bounds how long a step's output is still read after
	// the process exited or was killed. Grandchildren that inherited the
	// output pipes would otherwise keep the step alive.
	DefaultWaitDelay = 10 * time.Second

	// maxLogLine is the longest line logged as one entry. Longer lines are
	// logged in chunks.
	maxLogLine = bufio.MaxScanTokenSize
)

// ProcessRunner spawns steps as child processes and streams their output
// through Logger line by line.
type ProcessRunner struct {
	Logger logger.Logger
	// ExtraEnv is layered over the process environment and under the step's
	// own overrides, e.g. values read from an env file.
	ExtraEnv map[string]string
	// WaitDelay defaults to DefaultWaitDelay.
	WaitDelay time.Duration
}

var _ StepRunner = ProcessRunner{}

func (r ProcessRunner) RunStep(ctx context.Context, step ProcessBuildStep) error {
	l := r.Logger
	if l == nil {
		l = logger.NoopLogger{}
	}

	cmd := exec.CommandContext(ctx, step.Command, step.Args...)
	cmd.Dir = step.WorkingDirectory
	cmd.Env = MergeEnv(os.Environ(), r.ExtraEnv, step.EnvironmentVariables)
	cmd.WaitDelay = r.WaitDelay
	if cmd.WaitDelay == 0 {
		cmd.WaitDelay = DefaultWaitDelay
	}

	// exec copies the child's output into these writers until the child
	// exits, or until WaitDelay has passed once the child exited or ctx
	// was cancelled.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	l.Debug("Running %s in %s", step.String(), step.WorkingDirectory)
	start := time.Now()
	if err := cmd.Start(); err != nil {
		return errors.Wrapf(err, "starting %s", step.Command)
	}

	eg := errgroup.Group{}
	eg.Go(func() error {
		return streamLines(stdoutR, l.Log)
	})
	eg.Go(func() error {
		return streamLines(stderrR, l.Log)
	})

	waitErr := cmd.Wait()
	// Wait is done writing, so closing the writers ends both readers.
	stdoutW.Close()
	stderrW.Close()
	streamErr := eg.Wait()

	if waitErr != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return StepFailedError{Step: step, ExitCode: exitErr.ExitCode(), Err: waitErr}
		}
		return errors.Wrapf(waitErr, "running %s", step.Command)
	}
	if streamErr != nil {
		return streamErr
	}
	l.Debug("Finished %s in %s", step.Command, time.Since(start).Round(time.Millisecond))
	return nil
}

// streamLines logs every line read from r. It always reads r to the end so
// the writer never blocks on it.
func streamLines(r io.Reader, log func(string, ...interface{})) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), maxLogLine)
	scanner.Split(scanLogLines)
	for scanner.Scan() {
		log("%s", scanner.Text())
	}
	err := scanner.Err()
	if _, copyErr := io.Copy(io.Discard, r); err == nil {
		err = copyErr
	}
	return errors.Wrap(err, "reading output")
}

// scanLogLines is bufio.ScanLines, except that a line filling the whole
// buffer is returned as is instead of failing with bufio.ErrTooLong.
func scanLogLines(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanLines(data, atEOF)
	if advance == 0 && token == nil && err == nil && len(data) >= maxLogLine {
		return maxLogLine, data[:maxLogLine], nil
	}
	return advance, token, err
}

// MergeEnv layers KEY=VALUE overrides on top of base. Later maps win. Keys
// from the overrides are appended in sorted order so the result is stable.
func MergeEnv(base []string, overrides ...map[string]string) []string {
	merged := map[string]string{}
	for _, o := range overrides {
		for k, v := range o {
			merged[k] = v
		}
	}

	env := make([]string, 0, len(base)+len(merged))
	for _, kv := range base {
		k, _, _ := strings.Cut(kv, "=")
		if _, ok := merged[k]; ok {
			continue
		}
		env = append(env, kv)
	}
	keys := maps.Keys(merged)
	slices.Sort(keys)
	for _, k := range keys {
		env = append(env, k+"="+merged[k])
	}
	return env
}

// LoadEnvFile reads a dotenv file. An empty path yields no variables.
func LoadEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading env file %s", path)
	}
	return env, nil
}
