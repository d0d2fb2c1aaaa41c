package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
	"tableflip.dev/goals/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "edit <number>",
		Short: "Rename a goal or change when it started.",
		Example: `
goals edit 2 --name "run every evening"
goals edit 1 --on 2024-01-15
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: goalNumberCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, err := options.ParseNumber(args[0])
			if err != nil {
				return oo.HandleError(err)
			}
			if name == "" && !on.Set() {
				return oo.HandleError(errors.New("nothing to change, use --name or --on"))
			}

			e := edit.Edit{Index: index, Name: name}
			if on.Set() {
				if e.Date, err = on.GetOn(time.Now()); err != nil {
					return oo.HandleError(err)
				}
			}

			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			e.Service = s.Service
			e.Out = cmd.OutOrStdout()
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "New name for the goal.")
	options.AddOnArgs(cmd, on)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
