package edit

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/printers"
)

// Edit changes the goal at Index. Empty Name or Date keep the current value.
type Edit struct {
	Index int
	Name  string
	Date  string

	Service *app.Service
	Out     io.Writer
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no goal store")
	}
	current, err := n.Service.Row(n.Index)
	if err != nil {
		return err
	}
	name, date := n.Name, n.Date
	if name == "" {
		name = current.Name
	}
	if date == "" {
		date = current.Date
	}

	row, err := n.Service.Update(n.Index, name, date)
	if row.Name == "" {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Title("Updated", 1)
	pp.Goals(row)
	return err
}
