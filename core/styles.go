package core

import "github.com/charmbracelet/lipgloss"

var (
	statusBarStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Background(ColorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(ColorError).
				Background(ColorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(ColorMantle)

	// LinkStyle renders the call-to-action label.
	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Underline(true)
	// LinkFocusStyle renders the call-to-action while it has focus.
	LinkFocusStyle = lipgloss.NewStyle().
			Foreground(ColorBase).
			Background(ColorAccent).
			Bold(true)
)
