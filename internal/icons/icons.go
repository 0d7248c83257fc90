// Package icons resolves catalog icon identifiers to terminal glyphs.
package icons

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/umss/ingreso/core"
	"github.com/umss/ingreso/internal/catalog"
)

// Icon is a single-width glyph and its color.
type Icon struct {
	Glyph string
	Color lipgloss.Color
}

// Fallback is drawn for identifiers missing from the table.
var Fallback = Icon{Glyph: "•", Color: core.ColorMuted}

// Table maps identifiers to icons.
type Table map[catalog.IconID]Icon

// Default is the icon set used by the page.
func Default() Table {
	return Table{
		catalog.IconExam:       {Glyph: "✎", Color: core.ColorPeach},
		catalog.IconCourse:     {Glyph: "▤", Color: core.ColorTeal},
		catalog.IconSpecial:    {Glyph: "★", Color: core.ColorWarning},
		catalog.IconExcellence: {Glyph: "✦", Color: core.ColorMauve},
		catalog.IconGraduate:   {Glyph: "◆", Color: core.ColorSuccess},
	}
}

// Lookup reports whether id has an icon of its own.
func (t Table) Lookup(id catalog.IconID) (Icon, bool) {
	icon, ok := t[id]
	return icon, ok
}

// Resolve returns the icon for id, or Fallback.
func (t Table) Resolve(id catalog.IconID) Icon {
	if icon, ok := t.Lookup(id); ok {
		return icon
	}
	return Fallback
}

// Render returns the styled glyph for id.
func (t Table) Render(id catalog.IconID) string {
	icon := t.Resolve(id)
	return lipgloss.NewStyle().Foreground(icon.Color).Render(icon.Glyph)
}
