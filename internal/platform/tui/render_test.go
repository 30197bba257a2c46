package tui

import (
	"io"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
)

func TestRenderScreenPlain(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "hello")
	s.DrawText(1, 1, "tui")

	if got, want := RenderScreen(nil, s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestRenderScreenColoredRuns(t *testing.T) {
	s := core.NewScreen(8, 1)
	s.DrawTextColor(0, 0, "ab", core.ColorNumber, core.ColorBackground)
	s.DrawTextColor(2, 0, "cd", core.ColorHurray, core.ColorBackground)
	s.DrawText(4, 0, "ef")

	// A renderer writing nowhere has no color profile, so only text remains.
	r := lipgloss.NewRenderer(io.Discard)
	if got, want := RenderScreen(r, s), s.String(); got != want {
		t.Errorf("RenderScreen = %q, want %q", got, want)
	}
}

func TestStyleColors(t *testing.T) {
	st := style(nil, core.ColorHurray, core.ColorDefault)
	if got := st.GetForeground(); got != lipgloss.Color("#ffff00") {
		t.Errorf("foreground = %v, want #ffff00", got)
	}
	if _, ok := st.GetBackground().(lipgloss.NoColor); !ok {
		t.Errorf("background = %v, want none", st.GetBackground())
	}
}
