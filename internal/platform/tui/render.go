package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/groove-run/internal/core"
)

// styleCache maps colours to lipgloss styles. SSH sessions render
// concurrently, so access is guarded.
var styleCache = struct {
	sync.RWMutex
	styles map[core.Color]lipgloss.Style
}{styles: map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
}}

// styleFor returns the foreground style for a colour.
func styleFor(c core.Color) lipgloss.Style {
	styleCache.RLock()
	style, ok := styleCache.styles[c]
	styleCache.RUnlock()
	if ok {
		return style
	}

	style = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	styleCache.Lock()
	styleCache.styles[c] = style
	styleCache.Unlock()
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
