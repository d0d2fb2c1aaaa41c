package commands

import (
	"strings"
	"time"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
	"tableflip.dev/goals/pkg/runner/elapsed"
)

func addElapsed(topLevel *cobra.Command) {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "elapsed <YYYY-MM-DD>",
		Short: "Show how long ago a date was, without storing anything.",
		Example: `
goals elapsed 2023-01-01
goals elapsed 2030-01-01 -o json
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			format, err := fo.Format()
			if err != nil {
				return oo.HandleError(err)
			}
			e := elapsed.Elapsed{
				Date:   strings.TrimSpace(args[0]),
				Format: format,
				Now:    time.Now(),
				Out:    cmd.OutOrStdout(),
			}
			return oo.HandleError(e.Do(cmd.Context()))
		},
	}

	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
