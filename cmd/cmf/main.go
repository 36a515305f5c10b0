package main

import (
	"context"
	"os"
	"runtime/debug"
	"strings"

	"github.com/airplanedev/trap"
	"github.com/criticalmanufacturing/cli/cmd/cmf/root"
	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/criticalmanufacturing/cli/pkg/utils"
	"github.com/pkg/errors"
)

func main() {
	var cmd = root.New()
	var ctx = trap.Context()

	defer func() {
		if r := recover(); r != nil {
			logger.Error("The CLI unexpectedly crashed: %+v", r) // This does not print the stack trace.
			if logger.EnableDebug {
				logger.Debug(string(debug.Stack()))
			} else {
				logger.Log("An internal error occurred, run with --debug for more information")
			}
			os.Exit(int(utils.ErrorCodeDefault))
		}
	}()

	if err := cmd.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}

		logger.Debug("Error: %+v", err)
		logger.Log("")
		var explained utils.ErrorExplained
		handled := utils.HandleError(err)
		if errors.As(err, &explained) {
			logger.Error(capitalize(message(handled)))
			logger.Log("")
			logger.Log(capitalize(explained.ExplainError()))
		} else {
			logger.Error(capitalize(message(handled)))
		}
		logger.Log("")

		os.Exit(utils.ExitCode(handled))
	}
}

// message keeps the CLI's own wording for expected errors and shows the root
// cause of unexpected ones.
func message(err error) string {
	var cliErr *utils.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Error()
	}
	return errors.Cause(err).Error()
}

func capitalize(str string) string {
	if len(str) > 0 {
		return strings.ToUpper(str[0:1]) + str[1:]
	}
	return str
}
