package printers

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/goals/pkg/app"
)

// Table writes rows as aligned columns.
func Table(w io.Writer, rows []app.Row) error {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 40
	tbl.Wrap = true
	tbl.AddRow(bold.Sprint("#"), bold.Sprint("Goal"), bold.Sprint("Since"), bold.Sprint("Days"), bold.Sprint("Elapsed"))
	for _, r := range rows {
		days := "-"
		if r.Days != nil {
			days = strconv.Itoa(*r.Days)
		}
		tbl.AddRow(r.Number, r.Name, r.DisplayDate, days, r.Elapsed)
	}
	tbl.RightAlign(0)
	tbl.RightAlign(3)

	_, err := fmt.Fprintln(w, tbl)
	return err
}
