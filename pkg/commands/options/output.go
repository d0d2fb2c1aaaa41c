package options

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/printers"
)

// FormatOptions
type FormatOptions struct {
	Output string
}

func AddFormatArgs(cmd *cobra.Command, o *FormatOptions) {
	cmd.Flags().StringVarP(&o.Output, "output", "o", string(printers.FormatPretty),
		"Output format. One of "+strings.Join(printers.Formats(), ", ")+".")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return printers.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
}

func (o *FormatOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}
