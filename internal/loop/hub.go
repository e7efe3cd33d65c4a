package loop

import (
	"time"

	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

// Hub pacing.
const (
	MenuPoll  = 100 * time.Millisecond
	HaltDelay = 2 * time.Second
)

// HubState is where the device is: the menu, a mode, or halted.
type HubState int

const (
	HubMenu HubState = iota
	HubMode
	HubHalted
)

// String returns a human-readable name for the state.
func (s HubState) String() string {
	switch s {
	case HubMenu:
		return "menu"
	case HubMode:
		return "mode"
	case HubHalted:
		return "halted"
	default:
		return "unknown"
	}
}

// HubOption configures a Hub.
type HubOption func(*Hub)

// WithOnly skips the menu and runs a single mode. Leaving it halts the hub.
func WithOnly(id string) HubOption {
	return func(h *Hub) {
		h.only = id
	}
}

// Hub is the device orchestrator: menu, then the chosen mode, then back
// to the menu. The Exit entry halts it.
type Hub struct {
	input core.Input
	out   core.Renderer
	cfg   core.RuntimeConfig
	log   core.Logger

	modes  []registry.GameInfo
	menu   *Menu
	poller core.Poller
	runner *Runner
	only   string

	state HubState
	runs  int
}

// NewHub creates a hub over the registered modes.
func NewHub(in core.Input, out core.Renderer, cfg core.RuntimeConfig, opts ...HubOption) *Hub {
	h := &Hub{
		input: in,
		out:   out,
		cfg:   cfg,
		log:   cfg.Log(),
		modes: registry.List(),
	}
	for _, opt := range opts {
		opt(h)
	}

	items := make([]string, 0, len(h.modes)+1)
	for _, m := range h.modes {
		items = append(items, m.Title)
	}
	h.menu = NewMenu(append(items, ExitLabel))
	h.Reset()
	return h
}

// Reset is a device reset: any running mode is abandoned and the hub
// returns to its menu, or restarts the single mode.
func (h *Hub) Reset() {
	h.runner = nil
	h.menu.Reset()
	h.poller.Reset()
	h.state = HubMenu
	if h.only != "" {
		h.enter(h.only)
	}
}

// State returns where the hub is.
func (h *Hub) State() HubState {
	return h.state
}

// Runner returns the active mode runner, or nil on the menu.
func (h *Hub) Runner() *Runner {
	return h.runner
}

// Menu returns the mode picker.
func (h *Hub) Menu() *Menu {
	return h.menu
}

// Frame runs one iteration of whatever is active.
func (h *Hub) Frame() HubState {
	switch h.state {
	case HubMenu:
		h.menuFrame()
	case HubMode:
		if h.runner.Frame() == PhaseExited {
			h.leave()
		}
	case HubHalted:
		h.out.Clear()
		h.out.PrintText("Exiting...", 0, 3)
		h.out.Present()
	}
	return h.state
}

func (h *Hub) menuFrame() {
	in := h.poller.Poll(h.input)
	choice, ok := h.menu.Step(in)
	h.menu.Render(h.out)
	if !ok {
		return
	}

	if choice >= len(h.modes) {
		h.state = HubHalted
		h.log.Info("hub halted")
		return
	}
	h.enter(h.modes[choice].ID)
}

// enter starts a mode. Unknown IDs halt the hub.
func (h *Hub) enter(id string) {
	g, err := registry.Create(id)
	if err != nil {
		h.log.Warn("hub: cannot start mode", "err", err)
		h.state = HubHalted
		return
	}

	cfg := h.cfg
	cfg.Seed += int64(h.runs)
	h.runs++

	h.runner = New(g, h.input, h.out)
	h.runner.Start(cfg)
	h.state = HubMode
}

func (h *Hub) leave() {
	h.runner = nil
	if h.only != "" {
		h.state = HubHalted
		return
	}
	h.menu.Reset()
	h.poller.Reset()
	h.state = HubMenu
}

// Delay returns the pause to take after the last frame.
func (h *Hub) Delay() time.Duration {
	switch h.state {
	case HubMode:
		return h.runner.Delay()
	case HubHalted:
		return HaltDelay
	default:
		return MenuPoll
	}
}
