package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/umss/ingreso/core"
)

// CardToggleRow is the line of a rendered card that holds the toggle control.
const CardToggleRow = 3

const (
	chevronCollapsed = "▼"
	chevronExpanded  = "▲"
)

// Card is the chrome around one catalog entry. Body is drawn only when it is
// non-empty; callers pass it only for the expanded card.
type Card struct {
	Icon     string
	Title    string
	Toggle   string
	Body     string
	Expanded bool
	Focused  bool
}

func (c Card) Render(width, height int) string {
	if width < 6 {
		width = 6
	}
	border := core.ColorBorder
	if c.Expanded {
		border = core.ColorAccent
	}
	if c.Focused {
		border = core.ColorFocus
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(core.ColorText).Bold(true)
	toggleStyle := lipgloss.NewStyle().Foreground(core.ColorAccent)
	bodyStyle := lipgloss.NewStyle().Foreground(core.ColorMuted)

	innerWidth := width - 2
	contentWidth := innerWidth - 2
	v := borderStyle.Render("│")
	row := func(s string) string {
		return v + " " + PadRight(s, contentWidth) + " " + v
	}

	title := strings.TrimSpace(c.Title)
	if c.Icon != "" {
		title = c.Icon + "  " + title
	}
	chevron := chevronCollapsed
	if c.Expanded {
		chevron = chevronExpanded
	}

	rows := []string{
		borderStyle.Render("╭" + strings.Repeat("─", innerWidth) + "╮"),
		row(titleStyle.Render(ansi.Truncate(title, contentWidth, "…"))),
		row(""),
		row(toggleStyle.Render(ansi.Truncate(c.Toggle+" "+chevron, contentWidth, ""))),
	}
	if strings.TrimSpace(c.Body) != "" {
		rows = append(rows, row(""))
		wrapped := lipgloss.NewStyle().Width(contentWidth).Render(c.Body)
		for _, line := range strings.Split(wrapped, "\n") {
			rows = append(rows, row(bodyStyle.Render(strings.TrimRight(line, " "))))
		}
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Banner is the page header: a full-width bar with a centered title.
type Banner struct {
	Title string
}

func (b Banner) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	style := lipgloss.NewStyle().
		Bold(true).
		Foreground(core.ColorBase).
		Background(core.ColorMauve).
		Padding(1, 0).
		Width(width).
		MaxWidth(width).
		Align(lipgloss.Center)
	return style.Render(ansi.Truncate(strings.TrimSpace(b.Title), width, "…"))
}
