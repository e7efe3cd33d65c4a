package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dignitasium/Space-Hub/internal/core"
)

// LCD colors: dark ink on a green backlight.
var (
	inkColor       = lipgloss.Color("#1e2a14")
	backlightColor = lipgloss.Color("#c7d68e")
)

// Styles for the LCD and the host chrome around it.
var (
	lcdStyle    = lipgloss.NewStyle().Foreground(inkColor).Background(backlightColor)
	bezelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// halfBlocks maps a vertical pixel pair (top bit 1, bottom bit 2) to a glyph.
var halfBlocks = [4]rune{' ', '▀', '▄', '█'}

// lcdText draws the front buffer with two pixel rows per text line.
func lcdText(s *core.Screen) string {
	var sb strings.Builder
	lines := (s.Height() + 1) / 2
	sb.Grow(lines * (s.Width()*3 + 1))

	for line := range lines {
		if line > 0 {
			sb.WriteRune('\n')
		}
		y := line * 2
		for x := range s.Width() {
			idx := 0
			if s.Pixel(x, y) {
				idx |= 1
			}
			if y+1 < s.Height() && s.Pixel(x, y+1) {
				idx |= 2
			}
			sb.WriteRune(halfBlocks[idx])
		}
	}
	return sb.String()
}

// RenderLCD converts the front buffer to a styled panel inside a bezel.
func RenderLCD(s *core.Screen) string {
	return bezelStyle.Render(lcdStyle.Render(lcdText(s)))
}

// Minimum terminal size: the bezel around the LCD plus status and help lines.
const (
	MinTermWidth  = core.LCDWidth + 2
	MinTermHeight = core.LCDHeight/2 + 2 + 2
)
