package newcmd

import (
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/cli"
	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/prompts"
	"github.com/criticalmanufacturing/cli/pkg/testutils"
)

func TestNew(t *testing.T) {
	for _, tC := range []testutils.CommandTest{
		{
			Desc:       "security portal with template args",
			Args:       []string{"securityPortal", ".", "--", "--version", "2.0.0"},
			FixtureDir: "./testdata/securityPortal",
		},
		{
			Desc:       "default converter",
			Args:       []string{"iot", "converter", "--yes"},
			FixtureDir: "./testdata/converter",
		},
		{
			Desc:       "dry run writes nothing",
			Args:       []string{"iot", "driver", "--yes", "--dry-run"},
			FixtureDir: "",
		},
	} {
		t.Run(tC.Desc, func(t *testing.T) {
			c := &cli.Config{
				Platform: conf.Platform{OS: "linux"},
				Prompter: prompts.NewMock(tC.Inputs...),
			}
			testutils.TestCommandAndCompare(t, New(c), tC.Args, tC.FixtureDir)
		})
	}
}
