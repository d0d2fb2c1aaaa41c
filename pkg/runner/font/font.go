package font

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/store"
)

// Font shows or changes the display font size. With no Size and no step it
// only prints the current value.
type Font struct {
	Size     int
	Increase bool
	Decrease bool

	Service *app.Service
	Out     io.Writer
}

func (n *Font) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set font size, no settings store")
	}
	if n.Size != 0 && (n.Increase || n.Decrease) {
		return errors.New("give a size or a step, not both")
	}

	current := n.Service.FontSize()
	next := current
	switch {
	case n.Size != 0:
		next = n.Size
	case n.Increase && n.Decrease:
		return errors.New("can not increase and decrease at once")
	case n.Increase:
		next = store.NextFontSize(current)
	case n.Decrease:
		next = store.PrevFontSize(current)
	}

	if next != current || n.Size != 0 {
		if err := n.Service.SetFontSize(next); err != nil {
			return err
		}
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, err := fmt.Fprintf(out, "Font size: %d (%d-%d)\n", n.Service.FontSize(), store.MinFontSize, store.MaxFontSize)
	return err
}
