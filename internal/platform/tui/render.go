package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// styleCache memoizes lipgloss styles per color so hot frames do not
// rebuild them. Palettes in practice are a handful of colors.
var styleCache = map[core.Color]lipgloss.Style{}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := styleCache[c]; ok {
		return s
	}
	s := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache[c] = s
	return s
}

// RenderScreen converts a cell grid to a styled string for display.
// Adjacent cells with the same color are grouped into one styled run
// to keep the ANSI escape overhead down.
func RenderScreen(s *core.Screen) string {
	if s == nil {
		return ""
	}

	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start.Color).Render(run.String()))
		}
	}
	return sb.String()
}
