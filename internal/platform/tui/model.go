package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/loop"
)

// Options configures the terminal host.
type Options struct {
	Hold          time.Duration // Key hold window; zero uses DefaultHold
	Only          string        // Run a single mode instead of the menu
	ScreenshotDir string        // Where ctrl+s writes BMPs; empty disables
}

// Model is the Bubble Tea model hosting the device: the hub draws on an
// LCD framebuffer and reads a key latch as its joystick.
type Model struct {
	hub    *loop.Hub
	latch  *Latch
	screen *core.Screen
	log    core.Logger
	opts   Options

	keys KeyMap
	help help.Model

	gen       int
	last      loop.HubState
	haltShown bool
	notice    string
	width     int
	height    int
	quitting  bool
}

// NewModel creates the host model. A zero seed is replaced with the clock.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.ScreenW == 0 || cfg.ScreenH == 0 {
		cfg.ScreenW, cfg.ScreenH = core.LCDWidth, core.LCDHeight
	}

	latch := NewLatch(opts.Hold)
	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)

	var hubOpts []loop.HubOption
	if opts.Only != "" {
		hubOpts = append(hubOpts, loop.WithOnly(opts.Only))
	}
	hub := loop.NewHub(latch, screen, cfg, hubOpts...)

	return Model{
		hub:    hub,
		latch:  latch,
		screen: screen,
		log:    cfg.Log(),
		opts:   opts,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		last:   hub.State(),
	}
}

// Hub returns the device orchestrator.
func (m Model) Hub() *loop.Hub {
	return m.hub
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(0, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Reset):
		return m.reset()
	case key.Matches(msg, m.keys.Screenshot):
		m.notice = m.saveScreenshot()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.HoldSelect):
		m.latch.ToggleSelect()
	case key.Matches(msg, m.keys.Up):
		m.latch.Press(ControlUp)
	case key.Matches(msg, m.keys.Down):
		m.latch.Press(ControlDown)
	case key.Matches(msg, m.keys.Left):
		m.latch.Press(ControlLeft)
	case key.Matches(msg, m.keys.Right):
		m.latch.Press(ControlRight)
	case key.Matches(msg, m.keys.Action):
		m.latch.Press(ControlAction)
	case key.Matches(msg, m.keys.Select):
		m.latch.Press(ControlSelect)
	}
	return m, nil
}

// reset is the device reset button: back to the menu, new tick chain.
func (m Model) reset() (tea.Model, tea.Cmd) {
	m.hub.Reset()
	m.latch.Clear()
	m.gen++
	m.last = m.hub.State()
	m.haltShown = false
	m.notice = "reset"
	m.log.Info("device reset")
	return m, tickCmd(0, m.gen)
}

// handleTick runs one hub frame and schedules the next.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hub.State() == loop.HubHalted {
		if m.haltShown {
			m.quitting = true
			return m, tea.Quit
		}
		m.hub.Frame()
		m.haltShown = true
		return m, tickCmd(m.hub.Delay(), m.gen)
	}

	state := m.hub.Frame()
	if state != m.last {
		// Lines held from the previous screen must not leak into the next.
		m.latch.Clear()
		m.last = state
	}
	return m, tickCmd(m.hub.Delay(), m.gen)
}

// saveScreenshot writes the LCD to disk and returns a status line.
func (m Model) saveScreenshot() string {
	if m.opts.ScreenshotDir == "" {
		return "screenshots disabled"
	}
	path, err := SaveScreenshot(m.opts.ScreenshotDir, m.tag(), m.screen, time.Now())
	if err != nil {
		m.log.Warn("screenshot failed", "err", err)
		return "screenshot failed"
	}
	m.log.Info("screenshot saved", "path", path)
	return "saved " + path
}

// tag names what is on screen: the running mode or the menu.
func (m Model) tag() string {
	if r := m.hub.Runner(); r != nil {
		return r.Game().ID()
	}
	return "menu"
}

// status describes the hub state under the LCD.
func (m Model) status() string {
	r := m.hub.Runner()
	if r == nil {
		return m.hub.State().String()
	}
	s := fmt.Sprintf("%s · %s", r.Game().Title(), r.Phase())
	if st := r.Last().State; st.Level > 0 {
		s += fmt.Sprintf(" · level %d · score %d", st.Level, st.Score)
	}
	if m.latch.SelectLocked() {
		s += " · select held"
	}
	return s
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	line := statusStyle.Render(m.status())
	if m.notice != "" {
		line += "  " + noticeStyle.Render(m.notice)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		RenderLCD(m.screen),
		line,
		m.help.View(m.keys),
	)

	if m.width == 0 || m.height == 0 {
		return content
	}
	if m.width < MinTermWidth || m.height < MinTermHeight {
		return fmt.Sprintf("Terminal too small: need %dx%d, have %dx%d",
			MinTermWidth, MinTermHeight, m.width, m.height)
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program hosting the device.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(NewModel(cfg, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
