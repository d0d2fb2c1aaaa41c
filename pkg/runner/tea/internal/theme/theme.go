package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header lipgloss.Style
	Footer FooterTheme
	Goal   GoalTheme
	Panel  lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Mode   lipgloss.Style
}

// GoalTheme styles the pieces of a goal row.
type GoalTheme struct {
	Elapsed       lipgloss.Style
	Invalid       lipgloss.Style
	Encouragement lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Mode: lipgloss.NewStyle().
				Foreground(lipgloss.Color("241")).
				Bold(true),
		},
		Goal: GoalTheme{
			Elapsed:       lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
			Invalid:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Encouragement: lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		},
		Panel: lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),
	}
}
