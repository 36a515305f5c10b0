package prompts

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Prompter asks the user for input. Commands receive one through cli.Config
// so tests can swap in a Mock.
type Prompter interface {
	Confirm(question string, opts ...Opt) (bool, error)
	ConfirmWithAssumptions(question string, assumeYes, assumeNo bool, opts ...Opt) (bool, error)
	Input(question string, p *string, opts ...Opt) error
}

type opts struct {
	Required   bool
	Validators []func(interface{}) error
	Help       string
	Default    interface{}
	Select     []string
}

type Opt func(opts *opts)

// WithRequired marks the prompt required.
func WithRequired() Opt {
	return func(o *opts) {
		o.Required = true
	}
}

// WithHelp adds help text to the prompt.
func WithHelp(help string) Opt {
	return func(o *opts) {
		o.Help = help
	}
}

// WithSelectOptions turns the prompt into a choice between selectOpts.
func WithSelectOptions(selectOpts []string) Opt {
	return func(o *opts) {
		o.Select = selectOpts
	}
}

// WithValidator adds a validator for the user's input.
func WithValidator(validator func(interface{}) error) Opt {
	return func(o *opts) {
		o.Validators = append(o.Validators, validator)
	}
}

// WithDefault sets the value used when the user just presses enter.
func WithDefault(defaultValue interface{}) Opt {
	return func(o *opts) {
		o.Default = defaultValue
	}
}

// CanPrompt checks that both stdin and stderr are terminals.
func CanPrompt() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}
