package info

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Backend store.Backend

	Out io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv("GOALS_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "GOALS_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, "GOALS_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}
	if n.Service == nil || n.Backend == nil {
		return errors.New("failed to open the goal store")
	}

	bold := color.New(color.Bold)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Path"), n.Config.BasePath())
	if f := store.ConfigFile(n.Config); f != "" {
		tbl.AddRow(bold.Sprint("Config"), f)
	}
	tbl.AddRow(bold.Sprint("Goals"), n.Backend.Path(store.GoalsKey))
	tbl.AddRow(bold.Sprint("Settings"), n.Backend.Path(store.SettingsKey))
	tbl.AddRow(bold.Sprint("Count"), len(n.Service.Rows()))
	tbl.AddRow(bold.Sprint("Font size"), n.Service.FontSize())
	tbl.RightAlign(0)

	_, err := fmt.Fprintln(out, tbl)
	return err
}
