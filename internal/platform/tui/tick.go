// Package tui hosts the Space Hub device in a terminal: the LCD is drawn
// with half-block glyphs and the joystick is mapped onto keys.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one hub frame. Ticks from an earlier
// generation are dropped after a device reset.
type TickMsg struct {
	Gen  int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that fires one tick after delay.
// The hub sets its own cadence, so every tick schedules the next.
func tickCmd(delay time.Duration, gen int) tea.Cmd {
	if delay <= 0 {
		delay = time.Millisecond
	}
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
