package add

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/goal"
	"tableflip.dev/goals/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	b, err := store.NewDiskBackend(t.TempDir())
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	svc := app.NewService(b, zerolog.Nop())
	if err := svc.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	return svc
}

func TestAdd(t *testing.T) {
	svc := newService(t)
	var buf bytes.Buffer
	a := Add{Name: "  Walk the dog ", Date: "2024-01-01", Service: svc, Out: &buf}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if !strings.Contains(buf.String(), "Walk the dog") {
		t.Fatalf("expected goal in output, got %q", buf.String())
	}
	rows := svc.Rows()
	if len(rows) != 1 || rows[0].Name != "Walk the dog" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestAddDuplicate(t *testing.T) {
	svc := newService(t)
	a := Add{Name: "Read", Date: "2024-01-01", Service: svc, Out: &bytes.Buffer{}}
	if err := a.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	a.Name = "READ"
	if err := a.Do(context.Background()); !errors.Is(err, goal.ErrDuplicateName) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestAddNoService(t *testing.T) {
	a := Add{Name: "x"}
	if err := a.Do(context.Background()); err == nil {
		t.Fatalf("expected error without a service")
	}
}
