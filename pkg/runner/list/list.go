package list

import (
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/printers"
	"tableflip.dev/goals/pkg/store"
)

// Watcher reports changes to the files behind the service.
type Watcher interface {
	Watch(ctx context.Context) (<-chan store.Event, error)
}

type List struct {
	Format printers.Format
	// Watcher, when set, keeps Do running and re-renders after every change
	// until ctx is done.
	Watcher Watcher

	Service *app.Service
	Out     io.Writer
	Log     zerolog.Logger
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no goal store")
	}
	if err := n.render(); err != nil {
		return err
	}
	if n.Watcher == nil {
		return nil
	}

	events, err := n.Watcher.Watch(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Type != store.EventGoalsChanged {
				continue
			}
			n.Log.Debug().Str("path", ev.Path).Msg("goals changed, reloading")
			if err := n.Service.Reload(); err != nil {
				n.Log.Warn().Err(err).Msg("reload failed")
			}
			if err := n.render(); err != nil {
				return err
			}
		}
	}
}

func (n *List) render() error {
	return printers.Goals(n.Out, n.Format, n.Service.Rows())
}
