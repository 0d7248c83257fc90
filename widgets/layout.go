package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, height))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				parts = append(parts, "")
			}
		}
	}
	return strings.Join(parts, "\n")
}

type HStack struct {
	Widgets []Widget
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 {
		return ""
	}
	widths := h.Widths(width)
	rendered := make([][]string, len(h.Widgets))
	maxLines := 0
	for i, w := range h.Widgets {
		part := strings.Split(w.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		if len(part) > maxLines {
			maxLines = len(part)
		}
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = PadRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// Widths returns the column width of each child for a given total width.
func (h HStack) Widths(width int) []int {
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	return SplitWidths(max(1, width-gapTotal), len(h.Widgets))
}

// SplitWidths divides total into n even parts. The first total%n parts get
// one extra column.
func SplitWidths(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = total / n
		if i < total%n {
			out[i]++
		}
	}
	return out
}

// PadRight truncates or pads s to exactly width cells.
func PadRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
