package loop

import "github.com/dignitasium/Space-Hub/internal/core"

// ExitLabel is the menu entry that halts the device.
const ExitLabel = "   Exit   "

// Menu is the hub's mode picker: one entry per text line from line 1,
// moved with the stick and confirmed by a full select press and release.
type Menu struct {
	items   []string
	sel     int
	control bool // One move per stick deflection
	armed   bool
}

// NewMenu creates a menu over the given labels with the first selected.
func NewMenu(items []string) *Menu {
	return &Menu{items: items, control: true}
}

// Selected returns the highlighted index.
func (m *Menu) Selected() int {
	return m.sel
}

// Items returns the labels.
func (m *Menu) Items() []string {
	return m.items
}

// Reset returns the highlight to the first entry and drops any pending press.
func (m *Menu) Reset() {
	m.sel = 0
	m.control = true
	m.armed = false
}

// Step applies one input frame. It returns the chosen index and true once
// select is released after being pressed on the menu.
func (m *Menu) Step(in core.InputFrame) (int, bool) {
	n := len(m.items)
	if n == 0 {
		return 0, false
	}

	switch {
	case in.Dir == core.DirN && m.control:
		m.sel = (m.sel + n - 1) % n
		m.control = false
	case in.Dir == core.DirS && m.control:
		m.sel = (m.sel + 1) % n
		m.control = false
	case in.Dir.Neutral():
		m.control = true
	}

	if in.SelectPressed {
		m.armed = true
	}
	if m.armed && in.SelectReleased {
		m.armed = false
		return m.sel, true
	}
	return 0, false
}

// Render draws the entries with a transparent bar around the selection.
func (m *Menu) Render(dst core.Renderer) {
	dst.Clear()
	for i, item := range m.items {
		dst.PrintText(item, 0, i+1)
	}
	dst.DrawRect(0, (m.sel+1)*core.BankHeight, core.LCDWidth, core.BankHeight, core.FillTransparent)
	dst.Present()
}
