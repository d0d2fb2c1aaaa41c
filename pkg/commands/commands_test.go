package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/store"
)

func run(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	t.Setenv("GOALS_PATH", "")
	t.Setenv("LOG_LEVEL", "off")

	cmd := New()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs(append([]string{"--path", dir}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, dir string, args ...string) string {
	t.Helper()
	out, err := run(t, dir, args...)
	if err != nil {
		t.Fatalf("goals %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func listJSON(t *testing.T, dir string) []app.Row {
	t.Helper()
	var rows []app.Row
	out := mustRun(t, dir, "list", "-o", "json")
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	return rows
}

func TestAddListEditDelete(t *testing.T) {
	dir := t.TempDir()

	out := mustRun(t, dir, "add", "run", "every", "morning", "--on", "2024-02-01")
	if !strings.Contains(out, "run every morning") {
		t.Fatalf("unexpected add output %q", out)
	}
	mustRun(t, dir, "add", "quit sugar", "--on", "15-01-2024")

	rows := listJSON(t, dir)
	if len(rows) != 2 || rows[0].Name != "quit sugar" || rows[0].Date != "2024-01-15" {
		t.Fatalf("unexpected rows %+v", rows)
	}

	if _, err := os.Stat(filepath.Join(dir, store.GoalsKey)); err != nil {
		t.Fatalf("goals file not written: %v", err)
	}

	mustRun(t, dir, "edit", "2", "--name", "run every evening")
	rows = listJSON(t, dir)
	if rows[1].Name != "run every evening" || rows[1].Date != "2024-02-01" {
		t.Fatalf("unexpected edit %+v", rows[1])
	}

	out = mustRun(t, dir, "delete", "1", "--yes")
	if !strings.Contains(out, `Deleted "quit sugar"`) {
		t.Fatalf("unexpected delete output %q", out)
	}
	rows = listJSON(t, dir)
	if len(rows) != 1 || rows[0].Number != 1 {
		t.Fatalf("unexpected rows after delete %+v", rows)
	}
}

func TestAddDuplicateFails(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Read")
	if _, err := run(t, dir, "add", "read"); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestEditNeedsChange(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Read")
	if _, err := run(t, dir, "edit", "1"); err == nil {
		t.Fatalf("expected error with nothing to change")
	}
	if _, err := run(t, dir, "edit", "zero", "--name", "x"); err == nil {
		t.Fatalf("expected error for bad number")
	}
	if _, err := run(t, dir, "edit", "4", "--name", "x"); err == nil {
		t.Fatalf("expected error for out of range number")
	}
}

func TestDefaultIsList(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Read", "--on", "2024-01-01")
	out := mustRun(t, dir)
	if !strings.Contains(out, "Goals - 1 goal") || !strings.Contains(out, "Read") {
		t.Fatalf("unexpected default output %q", out)
	}
	out = mustRun(t, dir, "-o", "table")
	if !strings.Contains(out, "Since") {
		t.Fatalf("unexpected table output %q", out)
	}
}

func TestListYAML(t *testing.T) {
	dir := t.TempDir()
	mustRun(t, dir, "add", "Read", "--on", "2024-01-01")
	out := mustRun(t, dir, "list", "-o", "yaml")
	if !strings.Contains(out, "name: Read") {
		t.Fatalf("unexpected yaml %q", out)
	}
	if _, err := run(t, dir, "list", "-o", "xml"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestElapsedCommand(t *testing.T) {
	out := mustRun(t, t.TempDir(), "elapsed", "not-a-date")
	if !strings.Contains(out, "Invalid Stored Date Format") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestFontCommand(t *testing.T) {
	dir := t.TempDir()
	out := mustRun(t, dir, "font")
	if !strings.Contains(out, "Font size: 16") {
		t.Fatalf("unexpected output %q", out)
	}
	mustRun(t, dir, "font", "--increase")
	out = mustRun(t, dir, "font")
	if !strings.Contains(out, "Font size: 18") {
		t.Fatalf("increase not persisted: %q", out)
	}
	data, err := os.ReadFile(filepath.Join(dir, store.SettingsKey))
	if err != nil {
		t.Fatalf("read settings: %v", err)
	}
	if !strings.Contains(string(data), `"fontSize": 18`) {
		t.Fatalf("unexpected settings file %s", data)
	}
	if _, err := run(t, dir, "font", "13"); err == nil {
		t.Fatalf("expected error for off-step size")
	}
}

func TestCorruptFileStillWorks(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, store.GoalsKey), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if rows := listJSON(t, dir); len(rows) != 0 {
		t.Fatalf("expected empty list, got %+v", rows)
	}
	mustRun(t, dir, "add", "Fresh start")
	if rows := listJSON(t, dir); len(rows) != 1 {
		t.Fatalf("expected one goal, got %+v", rows)
	}
}

func TestInfoCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("GOALS_CONFIG_PATH", "")
	out := mustRun(t, dir, "info")
	if !strings.Contains(out, dir) || !strings.Contains(out, store.SettingsKey) {
		t.Fatalf("unexpected info %q", out)
	}
}

func TestCompletion(t *testing.T) {
	out := mustRun(t, t.TempDir(), "completion", "zsh")
	if !strings.Contains(out, "goals") {
		t.Fatalf("unexpected completion script")
	}
}
