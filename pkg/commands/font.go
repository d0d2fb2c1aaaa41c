package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goals/pkg/runner/font"
	"tableflip.dev/goals/pkg/store"
)

func addFont(topLevel *cobra.Command) {
	f := &font.Font{}

	sizes := make([]string, 0, len(store.FontSizes()))
	for _, s := range store.FontSizes() {
		sizes = append(sizes, strconv.Itoa(s))
	}

	cmd := &cobra.Command{
		Use:   "font [size]",
		Short: "Show or change the display font size.",
		Long: base.Wrap80(fmt.Sprintf("The font size controls spacing in \"goals ui\". "+
			"Sizes run from %d to %d in steps of %d.", store.MinFontSize, store.MaxFontSize, store.FontSizeStep)),
		Example: `
goals font
goals font 20
goals font --increase
`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: sizes,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) == 1 {
				size, err := strconv.Atoi(args[0])
				if err != nil {
					return oo.HandleError(fmt.Errorf("%q is not a font size", args[0]))
				}
				f.Size = size
			}
			s, err := openSession()
			if err != nil {
				return oo.HandleError(err)
			}
			f.Service = s.Service
			f.Out = cmd.OutOrStdout()
			return oo.HandleError(f.Do(cmd.Context()))
		},
	}

	cmd.Flags().BoolVar(&f.Increase, "increase", false, "One size larger.")
	cmd.Flags().BoolVar(&f.Decrease, "decrease", false, "One size smaller.")
	base.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
