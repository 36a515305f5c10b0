package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorCode is the process exit code reported for a failed command.
type ErrorCode int

const (
	ErrorCodeSuccess         ErrorCode = 0
	ErrorCodeDefault         ErrorCode = 1
	ErrorCodeInvalidArgument ErrorCode = 2
)

func (c ErrorCode) String() string {
	switch c {
	case ErrorCodeSuccess:
		return "Success"
	case ErrorCodeDefault:
		return "Default"
	case ErrorCodeInvalidArgument:
		return "InvalidArgument"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// CLIError is an error the CLI raised on purpose. Its message is shown to the
// user as-is and its code becomes the exit code.
type CLIError struct {
	Code ErrorCode
	Msg  string
	Err  error
}

// NewCLIError returns a CLIError with the given code and message. An empty
// message falls back to a generic one for the code.
func NewCLIError(code ErrorCode, msg string) *CLIError {
	return &CLIError{Code: code, Msg: msg}
}

// NewCLIErrorf is NewCLIError with printf-style formatting.
func NewCLIErrorf(code ErrorCode, format string, args ...interface{}) *CLIError {
	return &CLIError{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// WrapCLIError attaches msg and code to an underlying error.
func WrapCLIError(err error, code ErrorCode, msg string) *CLIError {
	return &CLIError{Code: code, Msg: msg, Err: err}
}

func (e *CLIError) Error() string {
	switch {
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	case e.Code == ErrorCodeInvalidArgument:
		return "invalid argument"
	default:
		return "the command failed"
	}
}

func (e *CLIError) Unwrap() error {
	return e.Err
}

// WrappedError marks an error the CLI did not anticipate.
type WrappedError struct {
	Err error
}

func (e *WrappedError) Error() string {
	return "unexpected error: " + e.Err.Error()
}

func (e *WrappedError) Unwrap() error {
	return e.Err
}

// HandleError normalises an error returned by a command. CLI errors are
// returned unchanged, even when wrapped; anything else becomes a
// WrappedError.
func HandleError(err error) error {
	if err == nil {
		return nil
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		return cliErr
	}
	var wrapped *WrappedError
	if errors.As(err, &wrapped) {
		return wrapped
	}
	return &WrappedError{Err: err}
}

// ExitCode returns the exit code the process should use for err.
func ExitCode(err error) int {
	if err == nil {
		return int(ErrorCodeSuccess)
	}
	var cliErr *CLIError
	if errors.As(err, &cliErr) {
		if cliErr.Code == ErrorCodeSuccess {
			return int(ErrorCodeDefault)
		}
		return int(cliErr.Code)
	}
	return int(ErrorCodeDefault)
}

// ErrorExplained is an error that carries a follow-up hint for the user.
type ErrorExplained interface {
	error
	ExplainError() string
}

type explainedError struct {
	error
	explanation string
}

func (e explainedError) ExplainError() string {
	return e.explanation
}

func (e explainedError) Unwrap() error {
	return e.error
}

// WithExplanation attaches a hint that main prints below the error.
func WithExplanation(err error, explanation string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return explainedError{error: err, explanation: fmt.Sprintf(explanation, args...)}
}
