package page

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/umss/ingreso/core"
	"github.com/umss/ingreso/internal/catalog"
	"github.com/umss/ingreso/internal/expansion"
	"github.com/umss/ingreso/internal/icons"
	"github.com/umss/ingreso/widgets"
)

const (
	// Title is shown in the banner.
	Title = "Modalidades de ingreso"
	// ToggleLabel is the label of every card's toggle control.
	ToggleLabel = "Más Información"

	gridGap        = 2
	rowSpacing     = 1
	wideGridWidth  = 100
	noFocus        = -1
	linkArrow      = "➜ "
	bodyTopPadding = 1
)

// Link is the call-to-action target.
type Link struct {
	URL   string
	Label string
}

// box is an area of the body in content coordinates. Lines are inclusive,
// columns are [left, right).
type box struct {
	top, bottom int
	left, right int
}

func (b box) contains(x, y int) bool {
	return y >= b.top && y <= b.bottom && x >= b.left && x < b.right
}

type layout struct {
	cards []box
	link  box
	lines int
}

// toggleRow returns the content line of card i's toggle control.
func (l layout) toggleRow(i int) int {
	return l.cards[i].top + widgets.CardToggleRow
}

// view is everything the body depends on. Rendering is a pure function of it.
type view struct {
	catalog catalog.Catalog
	icons   icons.Table
	state   expansion.State
	focus   int
	columns int
	link    Link
}

type rendered string

func (r rendered) Render(width, height int) string { return string(r) }

func columnsFor(configured, width, cards int) int {
	cols := configured
	if cols <= 0 {
		cols = 1
		if width >= wideGridWidth {
			cols = 2
		}
	}
	return max(1, min(cols, max(1, cards)))
}

func (v view) render(width int) (string, layout) {
	width = max(8, width)
	n := v.catalog.Len()
	state := v.state.Bound(n)
	cols := columnsFor(v.columns, width, n)

	grid := widgets.HStack{Widgets: make([]widgets.Widget, cols), Gap: gridGap}
	widths := grid.Widths(width)
	offsets := make([]int, cols)
	for c := 1; c < cols; c++ {
		offsets[c] = offsets[c-1] + widths[c-1] + gridGap
	}

	lay := layout{cards: make([]box, n)}
	rows := widgets.VStack{Spacing: rowSpacing}
	top := bodyTopPadding
	for rowStart := 0; rowStart < n; rowStart += cols {
		row := widgets.HStack{Widgets: make([]widgets.Widget, cols), Gap: gridGap}
		height := 0
		for c := 0; c < cols; c++ {
			i := rowStart + c
			if i >= n {
				row.Widgets[c] = rendered("")
				continue
			}
			card := v.card(i, state).Render(widths[c], 0)
			row.Widgets[c] = rendered(card)
			height = max(height, lipgloss.Height(card))
			lay.cards[i] = box{
				top:    top,
				bottom: top + lipgloss.Height(card) - 1,
				left:   offsets[c],
				right:  offsets[c] + widths[c],
			}
		}
		rows.Widgets = append(rows.Widgets, row)
		top += height + rowSpacing
	}

	cta := v.callToAction(width)
	lay.link = box{top: top, bottom: top, left: 0, right: max(1, ansi.StringWidth(cta))}
	stack := widgets.VStack{Widgets: []widgets.Widget{rendered(cta)}, Spacing: rowSpacing}
	if n > 0 {
		stack.Widgets = []widgets.Widget{rows, rendered(cta)}
	}

	body := strings.Repeat("\n", bodyTopPadding) + stack.Render(width, 0) + "\n"
	lay.lines = lipgloss.Height(body)
	return body, lay
}

func (v view) card(i int, state expansion.State) widgets.Card {
	r, _ := v.catalog.At(i)
	c := widgets.Card{
		Icon:     v.icons.Render(r.Icon),
		Title:    r.Title,
		Toggle:   ToggleLabel,
		Expanded: state.IsExpanded(i),
		Focused:  v.focus == i,
	}
	if c.Expanded {
		c.Body = r.Description
	}
	return c
}

func (v view) callToAction(width int) string {
	style := core.LinkStyle
	if v.focus == v.catalog.Len() {
		style = core.LinkFocusStyle
	}
	label := strings.TrimSpace(v.link.Label)
	if label == "" {
		label = v.link.URL
	}
	text := style.Render(linkArrow + label)
	if label != v.link.URL {
		text += lipgloss.NewStyle().Foreground(core.ColorMuted).Render("  " + v.link.URL)
	}
	text = ansi.Truncate(text, width, "…")
	return ansi.SetHyperlink(v.link.URL) + text + ansi.ResetHyperlink()
}

// RenderStatic renders the banner and body for a non-interactive terminal:
// no focus, expansion given by state.
func RenderStatic(c catalog.Catalog, table icons.Table, state expansion.State, link Link, columns, width int) string {
	if table == nil {
		table = icons.Default()
	}
	body, _ := view{
		catalog: c,
		icons:   table,
		state:   state,
		focus:   noFocus,
		columns: columns,
		link:    link,
	}.render(width)
	return widgets.VStack{Widgets: []widgets.Widget{widgets.Banner{Title: Title}, rendered(body)}}.Render(width, 0)
}
