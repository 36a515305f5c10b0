package prompts

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pkg/errors"
)

// Surveyor is a Prompter backed by the survey package.
type Surveyor struct{}

var _ Prompter = Surveyor{}

func (s Surveyor) Confirm(question string, o ...Opt) (bool, error) {
	promptOpts := &opts{Default: true}
	for _, opt := range o {
		opt(promptOpts)
	}

	d, ok := promptOpts.Default.(bool)
	if !ok {
		return false, errors.New("default value must be a bool")
	}

	var answer bool
	if err := survey.AskOne(
		&survey.Confirm{Message: question, Default: d, Help: promptOpts.Help},
		&answer,
		askOpts(promptOpts)...,
	); err != nil {
		return false, errors.Wrap(err, "confirming")
	}
	return answer, nil
}

func (s Surveyor) ConfirmWithAssumptions(question string, assumeYes, assumeNo bool, o ...Opt) (bool, error) {
	if assumeYes {
		return true, nil
	}
	if assumeNo {
		return false, nil
	}
	return s.Confirm(question, o...)
}

func (s Surveyor) Input(question string, p *string, o ...Opt) error {
	promptOpts := &opts{}
	for _, opt := range o {
		opt(promptOpts)
	}

	var prompt survey.Prompt
	if promptOpts.Select != nil {
		prompt = &survey.Select{
			Message: question,
			Options: promptOpts.Select,
			Default: promptOpts.Default,
			Help:    promptOpts.Help,
		}
	} else {
		var d string
		if promptOpts.Default != nil {
			var ok bool
			if d, ok = promptOpts.Default.(string); !ok {
				return errors.New("default value must be a string")
			}
		}
		prompt = &survey.Input{
			Message: question,
			Default: d,
			Help:    promptOpts.Help,
		}
	}

	if err := survey.AskOne(prompt, p, askOpts(promptOpts)...); err != nil {
		return errors.Wrap(err, "prompting for input")
	}
	return nil
}

func askOpts(promptOpts *opts) []survey.AskOpt {
	out := []survey.AskOpt{survey.WithStdio(os.Stdin, os.Stderr, os.Stderr)}
	if promptOpts.Required {
		out = append(out, survey.WithValidator(survey.Required))
	}
	for _, validator := range promptOpts.Validators {
		out = append(out, survey.WithValidator(validator))
	}
	return out
}
