// Package mapedit implements the map editor: a cursor over the Mars surface
// that paints tiles, cycles the brush on select, and dumps the grid as a
// Go literal when select is held.
package mapedit

import (
	"fmt"
	"time"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/registry"
	"github.com/dignitasium/Space-Hub/internal/tilemap"
)

// Package-level variables for config/difficulty, set by the CLI before
// modes are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets a custom config file path. The editor shares the
// exploration config.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements the map editor mode.
type Game struct {
	cfg     config.ExploreConfig
	runtime core.RuntimeConfig
	log     core.Logger

	ed       *Editor
	armed    bool // Select pressed during editing and not yet released
	held     int  // SelectHeld of the last frame select was down
	exported int
}

// New creates a new editor instance.
func New() *Game {
	return &Game{cfg: config.DefaultExploreConfig()}
}

func init() {
	registry.Register("mapedit", func() registry.Game {
		return New()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return "mapedit"
}

// Title returns the menu label.
func (g *Game) Title() string {
	return "Map Editor"
}

// Intro returns the instruction screen shown before editing.
func (g *Game) Intro() []string {
	return []string{"Map Editor", "Stick: move", "Button: paint", "Press select"}
}

// Reset loads the exploration config and opens the surface for editing.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.log = rc.Log()

	cfg, err := config.LoadExplore(configPath)
	if err != nil {
		g.log.Warn("mapedit: using default config", "err", err)
		cfg = config.DefaultExploreConfig()
	}
	config.ApplyExplorePreset(&cfg, difficultyPreset)
	g.Configure(cfg)
}

// Configure opens a fresh surface from an explicit configuration, with the
// cursor on the spawn tile.
func (g *Game) Configure(cfg config.ExploreConfig) {
	g.cfg = cfg
	if g.log == nil {
		g.log = g.runtime.Log()
	}

	m := cfg.Map
	grid := tilemap.MarsSurface(m.Width, m.Height)
	g.ed = NewEditor(grid, cfg.Player.SpawnX, cfg.Player.SpawnY, m.ViewportWidth, m.ViewportHeight)
	g.armed = false
	g.held = 0
	g.exported = 0

	g.log.Info("mapedit: surface open", "width", m.Width, "height", m.Height)
}

// OwnsSelect reports that the editor reads select itself: a tap cycles the
// brush, a hold exports, and a longer hold leaves.
func (g *Game) OwnsSelect() bool {
	return true
}

// Step moves the cursor, paints while the button is held, and handles the
// select gestures.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ed.Move(in.Dir)
	if in.Action {
		g.ed.Paint()
	}

	res := core.StepResult{State: g.State()}

	if in.SelectPressed {
		g.armed = true
	}
	if !g.armed {
		return res
	}
	if in.Select {
		g.held = in.SelectHeld
		switch g.held {
		case g.cfg.Timing.ExportHoldFrames:
			g.LongPress()
		case g.cfg.Timing.ExitHoldFrames:
			res.Exit = true
			g.log.Info("mapedit: leaving", "exported", g.exported)
		}
	}
	if in.SelectReleased {
		if g.held < g.cfg.Timing.ExportHoldFrames {
			g.ed.Cycle()
			g.log.Debug("mapedit: brush", "kind", g.ed.Selected())
		}
		g.armed = false
		g.held = 0
	}
	return res
}

// State returns the mode state. The editor has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{}
}

// FrameDelay returns the exploration cadence.
func (g *Game) FrameDelay() time.Duration {
	return g.cfg.Timing.FrameDelay()
}

// LongPressFrames returns how long select must be held to dump the map.
func (g *Game) LongPressFrames() int {
	return g.cfg.Timing.ExportHoldFrames
}

// LongPress writes the edited grid to the diagnostic sink.
func (g *Game) LongPress() {
	if err := g.ed.Map().Export(g.runtime.DiagWriter()); err != nil {
		g.log.Warn("mapedit: map export failed", "err", err)
		return
	}
	g.exported++
	g.log.Info("mapedit: map exported", "count", g.exported)
}

// Editor exposes the cursor and grid.
func (g *Game) Editor() *Editor {
	return g.ed
}

// Render draws the brush number, the visible tiles below the header band,
// and an outline on the cursor tile.
func (g *Game) Render(dst core.Renderer) {
	dst.Clear()

	ts := g.cfg.Map.TileSize
	top := g.cfg.Map.HUDOffset
	view := g.ed.Viewport()
	grid := g.ed.Map()

	dst.PrintText(fmt.Sprintf("Tile: %d", uint8(g.ed.Selected())), 0, 0)

	for row := 0; row < view.H; row++ {
		for col := 0; col < view.W; col++ {
			k := grid.At(view.X+col, view.Y+row)
			tilemap.DrawTile(dst, k, col*ts, row*ts+top, ts)
		}
	}

	sx, sy := view.ToScreen(g.ed.Cursor())
	dst.DrawRect(sx*ts, sy*ts+top, ts, ts, core.FillTransparent)

	dst.Present()
}
