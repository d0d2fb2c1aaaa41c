package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/runner/mcp"
)

func addMCP(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "start the Model Context Protocol server",
		Long: `Launch an MCP server on stdin and stdout that exposes goals, the elapsed time
calculator, and the font size setting as tools.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := openSession()
			if err != nil {
				return err
			}
			runner := mcp.Runner{
				Service: s.Service,
				Name:    "goals",
				Version: version,
			}
			return runner.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
