package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vovakirdan/tui-clicker/internal/core"
)

func TestPainterPlainText(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.Ascii)
	p := NewPainter(r)

	s := core.NewScreen(6, 2)
	s.FillRect(core.NewRect(1, 0, 3, 1), core.ColorTarget)
	s.DrawText(1, 0, "ok", core.ColorWhite)
	s.DrawText(0, 1, "bye", core.ColorText)

	want := " ok   \nbye   "
	if got := p.Render(s); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestPainterCachesStylesPerColourPair(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	p := NewPainter(r)

	s := core.NewScreen(8, 1)
	s.FillRect(core.NewRect(2, 0, 2, 1), core.ColorDecoy)
	out := p.Render(s)

	if len(p.styles) != 2 {
		t.Errorf("cached %d styles, want 2", len(p.styles))
	}
	if out == s.String() {
		t.Error("true colour output should carry escape sequences")
	}
	if lipgloss.Width(out) != 8 {
		t.Errorf("visible width = %d, want 8", lipgloss.Width(out))
	}
}
