package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy-hero/internal/core"
)

// colorStyles maps the game palette to terminal colours.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorSky:          lipgloss.NewStyle().Foreground(lipgloss.Color("153")),
	core.ColorGround:       lipgloss.NewStyle().Foreground(lipgloss.Color("94")),
	core.ColorObstacle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorObstacleEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("82")),
	core.ColorHero:         lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	core.ColorHeroShielded: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
	core.ColorHUD:          lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorAccent:       lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
	core.ColorMuted:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorDanger:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	core.ColorSlow:         lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
}

// styleFor returns the style for c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string.
// Adjacent cells with the same colour share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color
			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
