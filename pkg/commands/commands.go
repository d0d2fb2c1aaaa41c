package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/commands/options"
)

var (
	oo = &base.OutputOptions{}
	ro = &options.RootOptions{}
)

func New() *cobra.Command {
	fo := &options.FormatOptions{}

	cmd := &cobra.Command{
		Use:   "goals",
		Short: base.Wrap80("Track the goals you have kept and for how long."),
		Long: base.Wrap80("goals keeps a list of goals with the date each one started, " +
			"shows how long ago that was, and cheers you on. With no subcommand it lists every goal."),
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return oo.HandleError(runList(cmd, fo, false))
		},
	}

	options.AddRootArgs(cmd, ro)
	_ = viper.BindPFlag("path", cmd.PersistentFlags().Lookup("path"))
	options.AddFormatArgs(cmd, fo)
	base.AddOutputArg(cmd, oo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addList(topLevel)
	addAdd(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addElapsed(topLevel)
	addFont(topLevel)
	addInfo(topLevel)
	addUI(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}
