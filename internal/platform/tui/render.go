package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/t2048/internal/core"
)

// style returns the lipgloss style for a cell's colors. A nil renderer
// uses the lipgloss default, which targets stdout.
func style(r *lipgloss.Renderer, fg, bg core.Color) lipgloss.Style {
	s := lipgloss.NewStyle()
	if r != nil {
		s = r.NewStyle()
	}
	if hex := fg.Hex(); hex != "" {
		s = s.Foreground(lipgloss.Color(hex))
	}
	if hex := bg.Hex(); hex != "" {
		s = s.Background(lipgloss.Color(hex))
	}
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// SSH sessions pass their own renderer so colors match the client terminal.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colors for efficiency
		x := 0
		for x < s.Width() {
			first := s.GetCell(x, y)

			// Collect consecutive cells with same colors
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != first.Fg || cell.Bg != first.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if first.Fg.IsDefault() && first.Bg.IsDefault() {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(style(r, first.Fg, first.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
