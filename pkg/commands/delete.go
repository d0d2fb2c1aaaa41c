package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
	"tableflip.dev/goals/pkg/runner/del"
)

func addDelete(topLevel *cobra.Command) {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <number>",
		Aliases: []string{"rm"},
		Short:   "Delete a goal.",
		Example: `
goals delete 3
goals delete 3 --yes
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: goalNumberCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, err := options.ParseNumber(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			d := del.Delete{
				Index:   index,
				Service: s.Service,
				Out:     cmd.OutOrStdout(),
			}
			if !yes {
				d.Confirm = confirmDelete(cmd)
			}
			return oo.HandleError(d.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
