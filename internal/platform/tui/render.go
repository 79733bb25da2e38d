package tui

import (
	"strings"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells of one color share a single styled run to keep the number
// of escape sequences low.
func RenderScreen(s *core.Screen, theme Theme) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}

			if color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(theme.cell(color).Render(run.String()))
		}
	}
	return sb.String()
}
