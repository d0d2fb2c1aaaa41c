package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
	"tableflip.dev/goals/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}
	var watch bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List goals, oldest first.",
		Example: `
goals list
goals list -o table
goals list -o json
goals list --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return oo.HandleError(runList(cmd, fo, watch))
		},
	}

	options.AddFormatArgs(cmd, fo)
	cmd.Flags().BoolVarP(&watch, "watch", "w", false,
		"Keep running and list again whenever the goals file changes.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}

func runList(cmd *cobra.Command, fo *options.FormatOptions, watch bool) error {
	format, err := fo.Format()
	if err != nil {
		return err
	}
	s, err := openSession()
	if err != nil {
		return err
	}
	l := list.List{
		Format:  format,
		Service: s.Service,
		Out:     cmd.OutOrStdout(),
		Log:     s.Log,
	}
	if watch {
		l.Watcher = s.Backend
	}
	return l.Do(cmd.Context())
}
