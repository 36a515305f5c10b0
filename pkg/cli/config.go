package cli

import (
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Config represents command configuration.
//
// The config is passed down to all commands from
// the root command.
type Config struct {
	// DebugMode indicates if the CLI should produce additional
	// debug output to guide end-users through issues.
	DebugMode bool

	// Version indicates if the CLI version should be printed.
	Version bool

	// Platform is the host platform, resolved once at startup.
	Platform conf.Platform

	// Prompter represents the prompter to use to get user input.
	Prompter prompts.Prompter
}

// Must should be used for Cobra initialize commands that can return an error
// to enforce that they do not produce errors.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// WithParentPersistentPreRunE runs the PersistentPreRunE of the closest
// ancestor before fn, since cobra only runs the innermost one. fn may be set
// on a group; it still runs once per invocation.
func WithParentPersistentPreRunE(fn func(cmd *cobra.Command, args []string) error) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		// cobra ran the closest hook, so that command owns fn.
		owner := cmd
		for owner.PersistentPreRunE == nil && owner.HasParent() {
			owner = owner.Parent()
		}
		for p := owner.Parent(); p != nil; p = p.Parent() {
			if p.PersistentPreRunE != nil {
				if err := p.PersistentPreRunE(p, args); err != nil {
					return err
				}
				break
			}
		}
		return fn(cmd, args)
	}
}

// Repositories resolves the dependency repositories for dir from flags, the
// environment, the project config and the user config. Missing config files
// are skipped; unreadable ones are errors.
func Repositories(flags []string, dir string) ([]string, error) {
	project, err := conf.FindProjectConfig(dir)
	if err != nil && !errors.Is(err, conf.ErrMissing) {
		return nil, err
	}
	user, err := conf.ReadDefaultUserConfig()
	if err != nil && !errors.Is(err, conf.ErrMissing) {
		return nil, errors.Wrap(err, "reading user config")
	}
	return conf.ResolveRepositories(flags, project, user), nil
}

// AddRepoFlag registers the repeatable --repo flag on fs.
func AddRepoFlag(fs *pflag.FlagSet, p *[]string) {
	fs.StringArrayVar(p, "repo", nil, "Directory holding dependency archives. Can be repeated.")
}
