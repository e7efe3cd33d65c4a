package tui

import (
	"time"

	"github.com/dignitasium/Space-Hub/internal/core"
)

// DefaultHold is how long a key press reads as held.
const DefaultHold = 300 * time.Millisecond

// Control is one joystick line driven from the keyboard.
type Control int

const (
	ControlUp Control = iota
	ControlDown
	ControlLeft
	ControlRight
	ControlAction
	ControlSelect
)

// Latch turns key presses into joystick levels. Terminals report key
// presses but not releases, so a press holds its line for the hold window
// and key repeat keeps it held. It implements core.Input.
type Latch struct {
	hold time.Duration
	now  func() time.Time

	dir         core.Direction
	dirUntil    time.Time
	actionUntil time.Time
	selectUntil time.Time
	selectLock  bool
}

// NewLatch creates a latch with the given hold window.
// A non-positive window uses DefaultHold.
func NewLatch(hold time.Duration) *Latch {
	if hold <= 0 {
		hold = DefaultHold
	}
	return &Latch{hold: hold, now: time.Now}
}

// Hold returns the hold window.
func (l *Latch) Hold() time.Duration {
	return l.hold
}

// Press holds a control for one hold window from now.
// A direction replaces any other held direction.
func (l *Latch) Press(c Control) {
	until := l.now().Add(l.hold)
	switch c {
	case ControlUp:
		l.dir, l.dirUntil = core.DirN, until
	case ControlDown:
		l.dir, l.dirUntil = core.DirS, until
	case ControlLeft:
		l.dir, l.dirUntil = core.DirW, until
	case ControlRight:
		l.dir, l.dirUntil = core.DirE, until
	case ControlAction:
		l.actionUntil = until
	case ControlSelect:
		l.selectUntil = until
	}
}

// ToggleSelect pins the select line down until toggled again.
func (l *Latch) ToggleSelect() {
	l.selectLock = !l.selectLock
}

// SelectLocked reports whether select is pinned.
func (l *Latch) SelectLocked() bool {
	return l.selectLock
}

// Clear releases every line.
func (l *Latch) Clear() {
	l.dir = core.DirCenter
	l.dirUntil = time.Time{}
	l.actionUntil = time.Time{}
	l.selectUntil = time.Time{}
	l.selectLock = false
}

// PollDirection implements core.Input. An idle stick reads center.
func (l *Latch) PollDirection() core.Direction {
	if l.now().Before(l.dirUntil) {
		return l.dir
	}
	return core.DirCenter
}

// ActionPressed implements core.Input.
func (l *Latch) ActionPressed() bool {
	return l.now().Before(l.actionUntil)
}

// ReadSelect implements core.Input. The line is active low.
func (l *Latch) ReadSelect() int {
	if l.selectLock || l.now().Before(l.selectUntil) {
		return 0
	}
	return 1
}

var _ core.Input = (*Latch)(nil)
