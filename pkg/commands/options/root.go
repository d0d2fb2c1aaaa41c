package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/logging"
)

// RootOptions are the flags every goals command accepts.
type RootOptions struct {
	Path     string
	LogLevel string
	Verbose  bool
	Quiet    bool
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		`Directory holding goals_data.json and settings.json (default "~/.goals").`)
	cmd.PersistentFlags().StringVar(&o.LogLevel, "log-level", "",
		"Log level: trace, debug, info, warn, error or off.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log debug output.")
	cmd.PersistentFlags().BoolVarP(&o.Quiet, "quiet", "q", false,
		"Only log errors.")
}

func (o *RootOptions) Logging() logging.Config {
	return logging.Config{
		Level:   o.LogLevel,
		Verbose: o.Verbose,
		Quiet:   o.Quiet,
	}
}
