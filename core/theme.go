package core

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha subset.
const (
	ColorText     lipgloss.Color = "#cdd6f4"
	ColorMuted    lipgloss.Color = "#a6adc8"
	ColorBorder   lipgloss.Color = "#585b70"
	ColorBase     lipgloss.Color = "#1e1e2e"
	ColorMantle   lipgloss.Color = "#181825"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorAccent   lipgloss.Color = "#89b4fa"
	ColorFocus    lipgloss.Color = "#b4befe"
	ColorSuccess  lipgloss.Color = "#a6e3a1"
	ColorError    lipgloss.Color = "#f38ba8"
	ColorWarning  lipgloss.Color = "#f9e2af"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorMauve    lipgloss.Color = "#cba6f7"
	ColorTeal     lipgloss.Color = "#94e2d5"
)
