package add

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/printers"
)

type Add struct {
	Name string
	// Date is YYYY-MM-DD.
	Date string

	Service *app.Service
	Out     io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no goal store")
	}
	row, err := n.Service.Add(n.Name, n.Date)
	if row.Name == "" {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Added", 1)
	pp.Goals(row)
	return err
}
