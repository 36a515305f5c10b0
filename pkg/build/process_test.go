package build

import (
	"context"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestProcessRunner(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses sh")
	}

	t.Run("streams output with merged env", func(t *testing.T) {
		require := require.New(t)
		l := logger.NewTestLogger(t)
		r := ProcessRunner{Logger: l, ExtraEnv: map[string]string{"FROM_FILE": "file", "SHARED": "file"}}

		err := r.RunStep(context.Background(), ProcessBuildStep{
			Command:              "sh",
			Args:                 []string{"-c", `echo "$FROM_FILE $SHARED"; echo oops >&2`},
			WorkingDirectory:     t.TempDir(),
			EnvironmentVariables: map[string]string{"SHARED": "step"},
		})
		require.NoError(err)
		require.True(l.Contains("file step"))
		require.True(l.Contains("oops"))
	})

	t.Run("non-zero exit", func(t *testing.T) {
		require := require.New(t)
		r := ProcessRunner{}

		step := ProcessBuildStep{Command: "sh", Args: []string{"-c", "exit 3"}, WorkingDirectory: t.TempDir()}
		err := r.RunStep(context.Background(), step)
		var stepErr StepFailedError
		require.True(errors.As(err, &stepErr))
		require.Equal(3, stepErr.ExitCode)
		require.Equal("sh -c 'exit 3' exited with code 3", err.Error())
	})

	t.Run("missing executable", func(t *testing.T) {
		require := require.New(t)
		err := ProcessRunner{}.RunStep(context.Background(), ProcessBuildStep{Command: "definitely-not-a-real-binary"})
		require.Error(err)
		require.False(errors.As(err, &StepFailedError{}))
	})

	t.Run("line longer than the scan buffer", func(t *testing.T) {
		require := require.New(t)
		l := logger.NewTestLogger(t)
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := ProcessRunner{Logger: l}.RunStep(ctx, ProcessBuildStep{
			Command:          "sh",
			Args:             []string{"-c", `head -c 200000 /dev/zero | tr '\0' a; echo; echo done >&2; echo done`},
			WorkingDirectory: t.TempDir(),
		})
		require.NoError(err)

		var long, done int
		for _, line := range l.Lines() {
			switch {
			case line == "done":
				done++
			case strings.Trim(line, "a") == "":
				require.LessOrEqual(len(line), maxLogLine)
				long += len(line)
			}
		}
		require.Equal(200000, long)
		require.Equal(2, done)
	})

	t.Run("cancel while a grandchild holds the output", func(t *testing.T) {
		require := require.New(t)
		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := ProcessRunner{WaitDelay: 100 * time.Millisecond}.RunStep(ctx, ProcessBuildStep{
			Command:          "sh",
			Args:             []string{"-c", "sleep 30; echo unreachable"},
			WorkingDirectory: t.TempDir(),
		})
		require.ErrorIs(err, context.DeadlineExceeded)
		require.Less(time.Since(start).Seconds(), 10.0)
	})
}
