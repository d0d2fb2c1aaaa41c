package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/goals/pkg/app"
)

const defaultWidth = 80

type PrettyPrint struct {
	Out   io.Writer
	Width int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) width() int {
	if pp.Width <= 0 {
		return defaultWidth
	}
	return pp.Width
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) Title(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " goal")
	default:
		_, _ = c.Fprintln(pp.out(), " goals")
	}
}

// Goals prints one block per row: the name, when it started and how long
// ago, then the encouragement.
func (pp *PrettyPrint) Goals(rows ...app.Row) {
	w := pp.out()
	if len(rows) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, " none\n\n")
		return
	}

	n := color.New(color.FgHiYellow, color.Faint)
	name := color.New(color.Bold)
	since := color.New(color.FgCyan)
	bad := color.New(color.FgRed)
	cheer := color.New(color.Italic, color.Faint)

	pad := len(fmt.Sprintf("%d. ", len(rows)))
	body := pp.width() - pad

	for _, r := range rows {
		_, _ = n.Fprintf(w, "%*d. ", pad-2, r.Number)
		_, _ = name.Fprintln(w, hang(wordwrap.String(r.Name, body), pad))

		_, _ = fmt.Fprint(w, strings.Repeat(" ", pad))
		if r.Days == nil {
			_, _ = bad.Fprintf(w, "%s: %s\n", r.DisplayDate, r.Elapsed)
		} else {
			_, _ = since.Fprintf(w, "since %s, %s\n", r.DisplayDate, r.Elapsed)
		}

		if r.Encouragement != "" {
			_, _ = cheer.Fprintln(w, indent.String(wordwrap.String(r.Encouragement, body), uint(pad)))
		}
	}
	_, _ = fmt.Fprintln(w)
}

// Elapsed prints the result of a single elapsed time calculation.
func (pp *PrettyPrint) Elapsed(date, text string, ok bool) {
	if !ok {
		_, _ = color.New(color.FgRed).Fprintf(pp.out(), "%s: %s\n", date, text)
		return
	}
	_, _ = color.New(color.Bold).Fprintln(pp.out(), text)
}

// hang indents every line after the first by n spaces.
func hang(s string, n int) string {
	lines := strings.Split(s, "\n")
	for i := 1; i < len(lines); i++ {
		lines[i] = strings.Repeat(" ", n) + lines[i]
	}
	return strings.Join(lines, "\n")
}
