package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestCardCollapsedOmitsBody(t *testing.T) {
	out := Card{Icon: "*", Title: "Curso", Toggle: "Más Información"}.Render(30, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), out)
	}
	if !strings.Contains(lines[CardToggleRow], "Más Información ▼") {
		t.Fatalf("toggle row mismatch: %q", lines[CardToggleRow])
	}
	if !strings.Contains(lines[1], "Curso") {
		t.Fatalf("title row mismatch: %q", lines[1])
	}
}

func TestCardExpandedWrapsBodyAndFlipsChevron(t *testing.T) {
	body := strings.Repeat("palabra ", 12)
	out := Card{Title: "Curso", Toggle: "Más Información", Body: body, Expanded: true}.Render(24, 0)
	lines := strings.Split(out, "\n")
	if !strings.Contains(lines[CardToggleRow], "▲") {
		t.Fatalf("expected flipped chevron: %q", lines[CardToggleRow])
	}
	if len(lines) <= 6 {
		t.Fatalf("expected wrapped body, got %d lines", len(lines))
	}
	for _, l := range lines {
		if w := ansi.StringWidth(l); w != 24 {
			t.Fatalf("line width %d != 24: %q", w, l)
		}
	}
}

func TestBannerCentersTitle(t *testing.T) {
	out := Banner{Title: "Modalidades de ingreso"}.Render(40, 0)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected padded banner, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "Modalidades de ingreso") {
		t.Fatalf("title missing: %q", out)
	}
	if strings.HasPrefix(lines[1], "Modalidades") {
		t.Fatalf("expected centered title: %q", lines[1])
	}
}
