package elapsed

import (
	"context"
	"io"
	"time"

	"tableflip.dev/goals/pkg/printers"
	"tableflip.dev/goals/pkg/timeutil"
)

// Elapsed describes how long ago Date was.
type Elapsed struct {
	Date   string
	Format printers.Format
	Now    time.Time

	Out io.Writer
}

type result struct {
	Date    string `json:"date" yaml:"date"`
	Elapsed string `json:"elapsed" yaml:"elapsed"`
	Days    *int   `json:"days" yaml:"days"`
}

func (n *Elapsed) Do(ctx context.Context) error {
	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	text, days, ok := timeutil.Elapsed(n.Date, now)

	r := result{Date: n.Date, Elapsed: text}
	if ok {
		r.Days = &days
	}

	switch n.Format {
	case printers.FormatJSON:
		return printers.JSON(n.Out, r)
	case printers.FormatYAML:
		return printers.YAML(n.Out, r)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Elapsed(n.Date, text, ok)
	return nil
}
