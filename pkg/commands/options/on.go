package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/goals/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Start date, example: --on="2024-02-28", --on="28-02-2024" or --on=yesterday. Defaults to today.`)
}

// Set reports whether --on was given.
func (o *OnOptions) Set() bool {
	return o.OnString != ""
}

// GetOn returns the start date as YYYY-MM-DD.
func (o *OnOptions) GetOn(now time.Time) (string, error) {
	return timeutil.ParseInputDate(o.OnString, now)
}
