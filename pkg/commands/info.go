package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about where goals and settings are stored.",
		Example: `
goals info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			i := info.Info{
				Config:  s.Config,
				Service: s.Service,
				Backend: s.Backend,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(i.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
