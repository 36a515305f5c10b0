package prompts

import (
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

// Mock is a Prompter that replays canned responses in order.
//
// A nil response means "accept the default": Input stores the WithDefault
// value and Confirm returns it.
type Mock struct {
	responses []interface{}
	idx       int

	// Questions records every question asked, in order.
	Questions []string
}

var _ Prompter = &Mock{}

// NewMock returns a new Mock Prompter.
func NewMock(responses ...interface{}) *Mock {
	return &Mock{responses: responses}
}

func (m *Mock) next(question string) (interface{}, error) {
	m.Questions = append(m.Questions, question)
	if m.idx >= len(m.responses) {
		return nil, errors.Errorf("no response left for %q", question)
	}
	val := m.responses[m.idx]
	m.idx++
	return val, nil
}

func (m *Mock) Confirm(question string, o ...Opt) (bool, error) {
	promptOpts := &opts{Default: true}
	for _, opt := range o {
		opt(promptOpts)
	}

	val, err := m.next(question)
	if err != nil {
		return false, err
	}
	if val == nil {
		val = promptOpts.Default
	}
	v, ok := val.(bool)
	if !ok {
		return false, errors.New("value must be a bool")
	}
	return v, nil
}

func (m *Mock) ConfirmWithAssumptions(question string, assumeYes, assumeNo bool, o ...Opt) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if assumeNo {
		return false, nil
	}
	return m.Confirm(question, o...)
}

func (m *Mock) Input(question string, p *string, o ...Opt) error {
	promptOpts := &opts{}
	for _, opt := range o {
		opt(promptOpts)
	}

	val, err := m.next(question)
	if err != nil {
		return err
	}
	if val == nil {
		val = promptOpts.Default
	}
	v, ok := val.(string)
	if !ok {
		return errors.New("value must be a string")
	}
	if promptOpts.Select != nil && !slices.Contains(promptOpts.Select, v) {
		return errors.Errorf("%q is not one of %v", v, promptOpts.Select)
	}
	for _, validate := range promptOpts.Validators {
		if err := validate(v); err != nil {
			return err
		}
	}

	*p = v
	return nil
}

// Done reports whether every response has been consumed.
func (m *Mock) Done() bool {
	return m.idx == len(m.responses)
}
