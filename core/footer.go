package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func RenderFooter(bindings []key.Binding, width int) string {
	bg := ColorMantle
	keyStyle := lipgloss.NewStyle().Foreground(ColorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(ColorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(ColorMuted).Background(bg).Render("Sin atajos")
	}
	return renderBar(footerStyle, max(1, width), line, bg)
}

func RenderStatusBar(msg string, isErr bool, width int) string {
	msg = strings.TrimSpace(msg)
	if msg == "" {
		msg = "Listo"
	}
	if isErr {
		return renderBar(statusErrBarStyle, max(1, width), msg, ColorSurface0)
	}
	return renderBar(statusBarStyle, max(1, width), msg, ColorSurface0)
}

func renderBar(style lipgloss.Style, width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.
		Background(bg).
		Width(width).
		MaxWidth(width).
		Render(line)
}

// FitHeight pads or clips s to exactly height lines.
func FitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
