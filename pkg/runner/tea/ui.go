package teaui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/goals/pkg/app"
	"tableflip.dev/goals/pkg/runner/tea/internal/theme"
	"tableflip.dev/goals/pkg/store"
	"tableflip.dev/goals/pkg/timeutil"
)

// StatusTimeout is how long a status message stays on screen.
const StatusTimeout = 5 * time.Second

type mode int

const (
	modeNormal mode = iota
	modeInsert
	modeConfirm
	modeHelp
)

type action int

const (
	actionNone action = iota
	actionAdd
	actionEdit
)

// Add and edit ask for the name first, then the start date.
type step int

const (
	stepName step = iota
	stepDate
)

type goalItem struct{ row app.Row }

func (it goalItem) Title() string {
	return fmt.Sprintf("%d. %s", it.row.Number, it.row.Name)
}

func (it goalItem) Description() string {
	parts := []string{it.row.DisplayDate, it.row.Elapsed}
	if it.row.Encouragement != "" {
		parts = append(parts, it.row.Encouragement)
	}
	return strings.Join(parts, " · ")
}

func (it goalItem) FilterValue() string { return it.row.Name }

type clearStatusMsg struct{ seq int }

// Model contains UI state
type Model struct {
	svc   *app.Service
	theme theme.Theme

	mode   mode
	action action
	step   step

	goals list.Model
	input textinput.Model

	// Pending add/edit values and the row being edited or deleted.
	draftName string
	target    int

	status    string
	statusErr bool
	statusSeq int

	fontSize int

	termWidth  int
	termHeight int
}

// New creates a new UI model backed by the Service. svc may be nil in
// tests that only exercise layout.
func New(svc *app.Service) Model {
	d := list.NewDefaultDelegate()

	l := list.New([]list.Item{}, d, 60, 20)
	l.Title = "Goals"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Prompt = ""

	m := Model{
		svc:      svc,
		theme:    theme.Default(),
		mode:     modeNormal,
		goals:    l,
		input:    ti,
		target:   -1,
		fontSize: store.DefaultFontSize,
	}
	if svc != nil {
		m.fontSize = svc.FontSize()
	}
	m.applyFontSize()
	m.refresh()
	return m
}

// Init has nothing to load; the service was opened before the program
// started.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and keybindings
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
			m.statusErr = false
		}
	case tea.KeyPressMsg:
		skipListRouting = true
		switch m.mode {
		case modeHelp:
			switch msg.String() {
			case "q", "esc", "?", "enter":
				m.mode = modeNormal
			case "ctrl+c":
				cmds = append(cmds, tea.Quit)
			}
		case modeConfirm:
			switch msg.String() {
			case "y", "Y":
				cmds = append(cmds, m.deleteTarget())
			case "n", "N", "esc", "q":
				cmds = append(cmds, m.setStatus("Delete cancelled"))
			case "ctrl+c":
				cmds = append(cmds, tea.Quit)
			default:
				return m, nil
			}
			m.mode = modeNormal
			m.target = -1
		case modeInsert:
			switch msg.String() {
			case "enter":
				cmds = append(cmds, m.submitInput())
			case "esc":
				prev := m.action
				m.endInput()
				switch prev {
				case actionAdd:
					cmds = append(cmds, m.setStatus("Add cancelled"))
				case actionEdit:
					cmds = append(cmds, m.setStatus("Edit cancelled"))
				}
			case "ctrl+c":
				cmds = append(cmds, tea.Quit)
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
		case modeNormal:
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			case "a", "o":
				cmds = append(cmds, m.beginInput(actionAdd, -1))
			case "e", "i", "enter":
				if idx, ok := m.selectedIndex(); ok {
					cmds = append(cmds, m.beginInput(actionEdit, idx))
				}
			case "d", "x", "delete":
				if idx, ok := m.selectedIndex(); ok {
					m.mode = modeConfirm
					m.target = idx
				}
			case "+", "=":
				cmds = append(cmds, m.stepFontSize(store.NextFontSize))
			case "-", "_":
				cmds = append(cmds, m.stepFontSize(store.PrevFontSize))
			case "r":
				cmds = append(cmds, m.reload())
			case "?":
				m.mode = modeHelp
			default:
				skipListRouting = false
			}
		}
	}

	if m.mode == modeNormal && !skipListRouting {
		var cmd tea.Cmd
		m.goals, cmd = m.goals.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the goal list with any input, confirmation or help overlay
// and a status line.
func (m Model) View() string {
	body := m.goals.View()
	if len(m.goals.Items()) == 0 {
		body = m.theme.Header.Render("Goals") + "\n\n" +
			m.theme.Footer.Help.Render("No goals yet. Press a to add one.")
	}

	switch m.mode {
	case modeInsert:
		body += "\n\n" + m.inputLabel() + m.input.View()
	case modeConfirm:
		name := ""
		if it, ok := m.goals.Items()[m.target].(goalItem); ok {
			name = it.row.Name
		}
		body += "\n\n" + m.theme.Panel.Render(fmt.Sprintf("Delete %q? (y/n)", name))
	case modeHelp:
		help := "Keys: j/k move, a add, e edit, d delete, +/- font size, r reload, q quit"
		body += "\n\n" + lipgloss.NewStyle().Italic(true).Render(help)
	}

	modeStr := map[mode]string{modeNormal: "NORMAL", modeInsert: "INSERT", modeConfirm: "CONFIRM", modeHelp: "HELP"}[m.mode]
	status := m.theme.Footer.Status.Render(m.status)
	if m.statusErr {
		status = m.theme.Footer.Error.Render(m.status)
	}
	footer := fmt.Sprintf("%s %s %s",
		m.theme.Footer.Mode.Render("["+modeStr+"]"),
		m.theme.Footer.Help.Render(fmt.Sprintf("font %d", m.fontSize)),
		status)

	return body + "\n\n" + footer
}

// Run starts the Bubble Tea program on the alternate screen.
func Run(svc *app.Service) error {
	if svc == nil {
		return errors.New("can not start ui, no goal store")
	}
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refresh rebuilds list items from the service, keeping the cursor in range.
func (m *Model) refresh() {
	if m.svc == nil {
		return
	}
	rows := m.svc.Rows()
	items := make([]list.Item, len(rows))
	for i, r := range rows {
		items[i] = goalItem{row: r}
	}
	m.goals.SetItems(items)
	if idx := m.goals.Index(); idx >= len(items) && len(items) > 0 {
		m.goals.Select(len(items) - 1)
	}
	m.goals.Title = fmt.Sprintf("Goals (%d)", len(items))
}

func (m *Model) selectedIndex() (int, bool) {
	if len(m.goals.Items()) == 0 {
		return -1, false
	}
	return m.goals.Index(), true
}

func (m *Model) selectName(name string) {
	for i, it := range m.goals.Items() {
		if gi, ok := it.(goalItem); ok && gi.row.Name == name {
			m.goals.Select(i)
			return
		}
	}
}

func (m *Model) beginInput(a action, target int) tea.Cmd {
	m.mode = modeInsert
	m.action = a
	m.step = stepName
	m.target = target
	m.draftName = ""
	m.input.Reset()
	m.input.Placeholder = "Goal name"
	if a == actionEdit {
		if it, ok := m.goals.Items()[target].(goalItem); ok {
			m.input.SetValue(it.row.Name)
			m.input.CursorEnd()
		}
	}
	return tea.Batch(m.input.Focus(), textinput.Blink)
}

func (m *Model) endInput() {
	m.mode = modeNormal
	m.action = actionNone
	m.step = stepName
	m.target = -1
	m.draftName = ""
	m.input.Reset()
	m.input.Blur()
}

func (m *Model) inputLabel() string {
	verb := "Add"
	if m.action == actionEdit {
		verb = "Edit"
	}
	if m.step == stepDate {
		return verb + " start date (YYYY-MM-DD, DD-MM-YYYY, today, yesterday): "
	}
	return verb + " name: "
}

// submitInput advances from name to date, then saves.
func (m *Model) submitInput() tea.Cmd {
	value := strings.TrimSpace(m.input.Value())

	if m.step == stepName {
		if value == "" {
			return m.setError("Goal name cannot be empty")
		}
		m.draftName = value
		m.step = stepDate
		m.input.Reset()
		m.input.Placeholder = "today"
		if m.action == actionEdit {
			if it, ok := m.goals.Items()[m.target].(goalItem); ok {
				m.input.SetValue(it.row.Date)
				m.input.CursorEnd()
			}
		}
		return nil
	}

	date, err := timeutil.ParseInputDate(value, m.svc.Today())
	if err != nil {
		return m.setError(err.Error())
	}

	var row app.Row
	verb := "Added"
	switch m.action {
	case actionAdd:
		row, err = m.svc.Add(m.draftName, date)
	case actionEdit:
		verb = "Updated"
		row, err = m.svc.Update(m.target, m.draftName, date)
	}
	if row.Name == "" {
		// Validation failed: stay in the prompt so the name can be fixed.
		m.step = stepName
		m.input.SetValue(m.draftName)
		m.input.CursorEnd()
		return m.setError(err.Error())
	}

	m.endInput()
	m.refresh()
	m.selectName(row.Name)
	if err != nil {
		return m.setError(fmt.Sprintf("%s %q but could not save: %v", verb, row.Name, err))
	}
	return m.setStatus(fmt.Sprintf("%s %q", verb, row.Name))
}

func (m *Model) deleteTarget() tea.Cmd {
	removed, err := m.svc.Delete(m.target)
	if removed.Name == "" {
		return m.setError(err.Error())
	}
	m.refresh()
	if err != nil {
		return m.setError(fmt.Sprintf("Deleted %q but could not save: %v", removed.Name, err))
	}
	return m.setStatus(fmt.Sprintf("Deleted %q", removed.Name))
}

func (m *Model) stepFontSize(next func(int) int) tea.Cmd {
	size := next(m.fontSize)
	if size == m.fontSize {
		return m.setStatus(fmt.Sprintf("Font size already %d", size))
	}
	m.fontSize = size
	m.applyFontSize()
	if m.svc != nil {
		if err := m.svc.SetFontSize(size); err != nil {
			return m.setError(err.Error())
		}
	}
	return m.setStatus(fmt.Sprintf("Font size %d", size))
}

func (m *Model) reload() tea.Cmd {
	if m.svc == nil {
		return nil
	}
	err := m.svc.Reload()
	m.refresh()
	if err != nil {
		return m.setError(err.Error())
	}
	return m.setStatus("Reloaded")
}

// setStatus shows text until StatusTimeout passes or a newer message
// replaces it.
func (m *Model) setStatus(text string) tea.Cmd {
	m.status = text
	m.statusErr = false
	m.statusSeq++
	seq := m.statusSeq
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *Model) setError(text string) tea.Cmd {
	cmd := m.setStatus(text)
	m.statusErr = true
	return cmd
}

// applyFontSize turns the font size into row spacing: every two steps above
// the minimum adds a blank line between goals.
func (m *Model) applyFontSize() {
	d := list.NewDefaultDelegate()
	d.SetSpacing(spacingFor(m.fontSize))
	m.goals.SetDelegate(d)
}

func spacingFor(size int) int {
	if size < store.MinFontSize {
		return 0
	}
	return (size - store.MinFontSize) / (2 * store.FontSizeStep)
}

// applySizes recalculates the list size based on current terminal size.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	width := m.termWidth - 2
	if width < 20 {
		width = 20
	}
	// Leave room for the prompt and status lines.
	height := m.termHeight - 4
	if height < 5 {
		height = 5
	}
	m.goals.SetSize(width, height)
}
