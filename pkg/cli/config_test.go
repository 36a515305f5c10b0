package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/criticalmanufacturing/cli/pkg/conf"
	"github.com/criticalmanufacturing/cli/pkg/testutils"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestWithParentPersistentPreRunE(t *testing.T) {
	record := func(calls *[]string, name string) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			*calls = append(*calls, name)
			return nil
		}
	}
	noop := func(cmd *cobra.Command, args []string) error { return nil }

	testCases := []struct {
		desc  string
		setup func(calls *[]string, root, group, leaf *cobra.Command)
		want  []string
	}{
		{
			desc: "hook on the leaf",
			setup: func(calls *[]string, root, group, leaf *cobra.Command) {
				leaf.PersistentPreRunE = WithParentPersistentPreRunE(record(calls, "leaf"))
			},
			want: []string{"root", "leaf"},
		},
		{
			desc: "hook on the group",
			setup: func(calls *[]string, root, group, leaf *cobra.Command) {
				group.PersistentPreRunE = WithParentPersistentPreRunE(record(calls, "group"))
			},
			want: []string{"root", "group"},
		},
		{
			desc: "hooks on group and leaf",
			setup: func(calls *[]string, root, group, leaf *cobra.Command) {
				group.PersistentPreRunE = WithParentPersistentPreRunE(record(calls, "group"))
				leaf.PersistentPreRunE = WithParentPersistentPreRunE(record(calls, "leaf"))
			},
			want: []string{"root", "group", "leaf"},
		},
		{
			desc: "parent error stops the chain",
			setup: func(calls *[]string, root, group, leaf *cobra.Command) {
				root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
					return errors.New("boom")
				}
				leaf.PersistentPreRunE = WithParentPersistentPreRunE(record(calls, "leaf"))
			},
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require := require.New(t)
			var calls []string
			root := &cobra.Command{Use: "root", PersistentPreRunE: record(&calls, "root"), SilenceErrors: true, SilenceUsage: true}
			group := &cobra.Command{Use: "group"}
			leaf := &cobra.Command{Use: "leaf", RunE: noop}
			group.AddCommand(leaf)
			root.AddCommand(group)
			tC.setup(&calls, root, group, leaf)

			root.SetArgs([]string{"group", "leaf"})
			err := root.Execute()
			if tC.want == nil {
				require.EqualError(err, "boom")
				require.Empty(calls)
				return
			}
			require.NoError(err)
			require.Equal(tC.want, calls)
		})
	}
}

func TestRepositories(t *testing.T) {
	testCases := []struct {
		desc    string
		env     string
		flags   []string
		project string
		user    string
		want    []string
		wantErr string
	}{
		{
			desc:  "flags win",
			env:   "/from/env",
			flags: []string{"/from/flag"},
			want:  []string{"/from/flag"},
		},
		{
			desc: "environment",
			env:  "/from/env",
			want: []string{"/from/env"},
		},
		{
			desc:    "project config relative to its root",
			project: `{"Repositories": ["packages"]}`,
			user:    `{"repositories": ["/from/user"]}`,
			want:    []string{"packages"},
		},
		{
			desc: "user config",
			user: `{"repositories": ["/from/user"]}`,
			want: []string{"/from/user"},
		},
		{
			desc: "no config files",
		},
		{
			desc:    "malformed project config",
			project: `{"Repositories": ["/mnt/pkgs"],, oops`,
			wantErr: "parsing",
		},
		{
			desc:    "malformed user config",
			user:    `{"repositories": `,
			wantErr: "reading user config",
		},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			require := require.New(t)
			home, dir := t.TempDir(), t.TempDir()
			t.Setenv("HOME", home)
			t.Setenv("CMF_REPOSITORIES", tC.env)
			if tC.project != "" {
				testutils.WriteFiles(t, dir, map[string]string{conf.ProjectConfigFileName: tC.project})
			}
			if tC.user != "" {
				testutils.WriteFiles(t, home, map[string]string{".cmf/config": tC.user})
			}

			got, err := Repositories(tC.flags, dir)
			if tC.wantErr != "" {
				require.ErrorContains(err, tC.wantErr)
				return
			}
			require.NoError(err)
			if tC.project != "" {
				for i, r := range tC.want {
					tC.want[i] = filepath.Join(dir, r)
				}
			}
			require.Equal(tC.want, got)
		})
	}
}

func TestMust(t *testing.T) {
	require.NotPanics(t, func() { Must(nil) })
	require.Panics(t, func() { Must(errors.New("boom")) })
}
