package teaui

import (
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"
	"github.com/rs/zerolog"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/encourage"
	"tableflip.dev/goals/pkg/store"
)

var fixedNow = time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) *app.Service {
	t.Helper()
	b, err := store.NewDiskBackend(t.TempDir())
	if err != nil {
		t.Fatalf("backend: %v", err)
	}
	svc := app.NewService(b, zerolog.Nop())
	svc.Catalog = encourage.New(encourage.Phrases(), rand.NewPCG(7, 7))
	svc.Now = func() time.Time { return fixedNow }
	if err := svc.Open(); err != nil {
		t.Fatalf("open: %v", err)
	}
	return svc
}

func newTestModel(t *testing.T, svc *app.Service) Model {
	t.Helper()
	m := New(svc)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	}
	r := []rune(s)[0]
	return tea.KeyPressMsg{Code: r, Text: s}
}

func press(t *testing.T, m Model, keys ...string) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(Model)
	}
	return m, cmd
}

// messages runs cmd and flattens any batch into its messages.
func messages(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, messages(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func typeValue(t *testing.T, m Model, value string) Model {
	t.Helper()
	m.input.SetValue(value)
	m, _ = press(t, m, "enter")
	return m
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestAddFlow(t *testing.T) {
	svc := newTestService(t)
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a")
	if m.mode != modeInsert || m.action != actionAdd || m.step != stepName {
		t.Fatalf("expected add name prompt, got mode=%v action=%v step=%v", m.mode, m.action, m.step)
	}
	m = typeValue(t, m, "Walk daily")
	if m.step != stepDate {
		t.Fatalf("expected date step")
	}
	if !strings.Contains(stripANSI(m.View()), "Add start date") {
		t.Fatalf("expected date prompt in view: %q", stripANSI(m.View()))
	}
	m = typeValue(t, m, "2024-05-01")

	if m.mode != modeNormal {
		t.Fatalf("expected normal mode after add")
	}
	rows := svc.Rows()
	if len(rows) != 1 || rows[0].Name != "Walk daily" || rows[0].Date != "2024-05-01" {
		t.Fatalf("unexpected rows %+v", rows)
	}
	if m.status != `Added "Walk daily"` {
		t.Fatalf("unexpected status %q", m.status)
	}
	view := stripANSI(m.View())
	if !strings.Contains(view, "1. Walk daily") || !strings.Contains(view, "31 days ago") {
		t.Fatalf("expected goal in view: %q", view)
	}
}

func TestAddDefaultsToToday(t *testing.T) {
	svc := newTestService(t)
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a")
	m = typeValue(t, m, "Stretch")
	m = typeValue(t, m, "")

	rows := svc.Rows()
	if len(rows) != 1 || rows[0].Date != "2024-06-01" || rows[0].Elapsed != "Today is the day!" {
		t.Fatalf("unexpected rows %+v", rows)
	}
}

func TestAddRejectsEmptyAndDuplicate(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Add("Read", "2024-01-01"); err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a")
	m = typeValue(t, m, "   ")
	if m.step != stepName || !m.statusErr {
		t.Fatalf("empty name should stay on name step with an error, status=%q", m.status)
	}

	m = typeValue(t, m, "READ")
	m = typeValue(t, m, "2024-02-01")
	if m.mode != modeInsert || m.step != stepName || !m.statusErr {
		t.Fatalf("duplicate should return to the name step, mode=%v step=%v", m.mode, m.step)
	}
	if !strings.Contains(m.status, "already exists") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if len(svc.Rows()) != 1 {
		t.Fatalf("duplicate must not be added")
	}

	m, _ = press(t, m, "esc")
	if m.mode != modeNormal || m.status != "Add cancelled" {
		t.Fatalf("expected cancel, got mode=%v status=%q", m.mode, m.status)
	}
}

func TestAddRejectsBadDate(t *testing.T) {
	svc := newTestService(t)
	m := newTestModel(t, svc)

	m, _ = press(t, m, "a")
	m = typeValue(t, m, "Swim")
	m = typeValue(t, m, "next tuesday")
	if m.mode != modeInsert || m.step != stepDate || !m.statusErr {
		t.Fatalf("bad date should keep the date prompt open")
	}
	if len(svc.Rows()) != 0 {
		t.Fatalf("nothing should be added")
	}
}

func TestEditFlowKeepsEncouragement(t *testing.T) {
	svc := newTestService(t)
	added, err := svc.Add("Journal", "2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "e")
	if m.input.Value() != "Journal" {
		t.Fatalf("expected current name prefilled, got %q", m.input.Value())
	}
	m = typeValue(t, m, "Journal nightly")
	if m.input.Value() != "2024-01-01" {
		t.Fatalf("expected current date prefilled, got %q", m.input.Value())
	}
	m = typeValue(t, m, "02-01-2024")

	row, err := svc.Row(0)
	if err != nil {
		t.Fatal(err)
	}
	if row.Name != "Journal nightly" || row.Date != "2024-01-02" {
		t.Fatalf("unexpected row %+v", row)
	}
	if row.Encouragement != added.Encouragement {
		t.Fatalf("encouragement changed on edit")
	}
	if m.status != `Updated "Journal nightly"` {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestDeleteConfirm(t *testing.T) {
	svc := newTestService(t)
	for _, g := range [][2]string{{"A", "2024-01-01"}, {"B", "2024-02-01"}} {
		if _, err := svc.Add(g[0], g[1]); err != nil {
			t.Fatal(err)
		}
	}
	m := newTestModel(t, svc)

	m, _ = press(t, m, "d")
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode")
	}
	if !strings.Contains(stripANSI(m.View()), `Delete "A"? (y/n)`) {
		t.Fatalf("expected confirmation prompt: %q", stripANSI(m.View()))
	}
	m, _ = press(t, m, "n")
	if m.mode != modeNormal || len(svc.Rows()) != 2 || m.status != "Delete cancelled" {
		t.Fatalf("n should keep the goal")
	}

	m, _ = press(t, m, "d", "z")
	if m.mode != modeConfirm {
		t.Fatalf("other keys should keep asking")
	}
	m, _ = press(t, m, "y")
	rows := svc.Rows()
	if len(rows) != 1 || rows[0].Name != "B" {
		t.Fatalf("expected A deleted, got %+v", rows)
	}
	if m.status != `Deleted "A"` {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestDeleteWithNoGoals(t *testing.T) {
	m := newTestModel(t, newTestService(t))
	m, _ = press(t, m, "d")
	if m.mode != modeNormal {
		t.Fatalf("delete with no goals should do nothing")
	}
	if !strings.Contains(stripANSI(m.View()), "No goals yet") {
		t.Fatalf("expected empty message")
	}
}

func TestFontSizeKeys(t *testing.T) {
	svc := newTestService(t)
	m := newTestModel(t, svc)

	m, _ = press(t, m, "+")
	if m.fontSize != 18 || svc.FontSize() != 18 {
		t.Fatalf("expected 18, got model=%d svc=%d", m.fontSize, svc.FontSize())
	}
	m, _ = press(t, m, "+", "+", "+", "+")
	if m.fontSize != store.MaxFontSize {
		t.Fatalf("expected clamp at max, got %d", m.fontSize)
	}
	if m.status != "Font size already 24" {
		t.Fatalf("unexpected status %q", m.status)
	}
	m, _ = press(t, m, "-")
	if svc.FontSize() != 22 {
		t.Fatalf("expected 22 persisted, got %d", svc.FontSize())
	}
	if !strings.Contains(stripANSI(m.View()), "font 22") {
		t.Fatalf("expected font size in footer")
	}
}

func TestSpacingFor(t *testing.T) {
	tests := map[int]int{12: 0, 14: 0, 16: 1, 18: 1, 20: 2, 24: 3}
	for size, want := range tests {
		if got := spacingFor(size); got != want {
			t.Fatalf("spacingFor(%d) = %d, want %d", size, got, want)
		}
	}
}

func TestStatusTimeout(t *testing.T) {
	m := New(nil)
	m.setStatus("first")
	old := m.statusSeq
	m.setStatus("second")

	next, _ := m.Update(clearStatusMsg{seq: old})
	m = next.(Model)
	if m.status != "second" {
		t.Fatalf("stale timer cleared a newer status: %q", m.status)
	}
	next, _ = m.Update(clearStatusMsg{seq: m.statusSeq})
	m = next.(Model)
	if m.status != "" {
		t.Fatalf("expected status cleared, got %q", m.status)
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, newTestService(t))
	_, cmd := press(t, m, "q")
	found := false
	for _, msg := range messages(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected quit message")
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t, newTestService(t))
	m, _ = press(t, m, "?")
	if m.mode != modeHelp || !strings.Contains(stripANSI(m.View()), "+/- font size") {
		t.Fatalf("expected help view")
	}
	m, _ = press(t, m, "esc")
	if m.mode != modeNormal {
		t.Fatalf("expected help closed")
	}
}
