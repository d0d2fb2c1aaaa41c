package commands

import (
	"github.com/spf13/cobra"

	teaui "tableflip.dev/goals/pkg/runner/tea"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
goals ui
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			return teaui.Run(s.Service)
		},
	}

	topLevel.AddCommand(cmd)
}
