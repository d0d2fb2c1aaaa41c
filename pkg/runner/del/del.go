package del

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/goals/pkg/app"
)

// Delete removes the goal at Index. Confirm, when set, is asked first and
// a false answer leaves the goal in place.
type Delete struct {
	Index   int
	Confirm func(row app.Row) (bool, error)

	Service *app.Service
	Out     io.Writer
}

func (n *Delete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not delete, no goal store")
	}
	row, err := n.Service.Row(n.Index)
	if err != nil {
		return err
	}

	if n.Confirm != nil {
		ok, err := n.Confirm(row)
		if err != nil {
			return err
		}
		if !ok {
			_, _ = fmt.Fprintln(n.out(), "Kept", row.Name)
			return nil
		}
	}

	removed, err := n.Service.Delete(n.Index)
	if removed.Name != "" {
		_, _ = color.New(color.Faint).Fprintf(n.out(), "Deleted %q\n", removed.Name)
	}
	return err
}

func (n *Delete) out() io.Writer {
	if n.Out == nil {
		return color.Output
	}
	return n.Out
}
