package build

import (
	"context"
	"time"

	"github.com/criticalmanufacturing/cli/pkg/logger"
	"github.com/pkg/errors"
)

// Pipeline is an ordered list of commands. Handlers hand out copies, so a
// caller appending to one does not change the handler's pipeline.
type Pipeline []Command

// Clone returns a shallow copy of p.
func (p Pipeline) Clone() Pipeline {
	return append(Pipeline(nil), p...)
}

// Steps flattens every process step in p, skipping in-process commands.
func (p Pipeline) Steps() []ProcessBuildStep {
	var steps []ProcessBuildStep
	for _, c := range p {
		if pc, ok := c.(ProcessCommand); ok {
			steps = append(steps, pc.Steps()...)
		}
	}
	return steps
}

// Executor runs a pipeline in order and stops at the first failure. Failed
// steps are never retried.
type Executor struct {
	Runner StepRunner
	Logger logger.Logger
	// DryRun logs the steps instead of running them.
	DryRun bool
}

func (e Executor) Run(ctx context.Context, p Pipeline) error {
	l := e.Logger
	if l == nil {
		l = logger.NoopLogger{}
	}

	for i, c := range p {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Log("%s [%d/%d] %s", logger.Gray(time.Now().Format(logger.TimeFormatNoDate)), i+1, len(p), logger.Bold(c.DisplayName()))
		if err := e.run(ctx, l, c); err != nil {
			return errors.Wrapf(err, "running %s", c.DisplayName())
		}
	}
	return nil
}

func (e Executor) run(ctx context.Context, l logger.Logger, c Command) error {
	switch c := c.(type) {
	case ProcessCommand:
		for _, step := range c.Steps() {
			if e.DryRun {
				l.Step("%s (in %s)", step.String(), step.WorkingDirectory)
				continue
			}
			if e.Runner == nil {
				return errors.New("no step runner configured")
			}
			if err := e.Runner.RunStep(ctx, step); err != nil {
				return err
			}
		}
		return nil
	case ExecuteCommand:
		if e.DryRun {
			l.Step("%s (in-process)", c.Name)
			return nil
		}
		if c.Execute == nil {
			return nil
		}
		return c.Execute(ctx)
	default:
		return errors.Errorf("unsupported command %T", c)
	}
}
