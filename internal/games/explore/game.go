// Package explore implements the Mars exploration mode: a side-scrolling
// platformer over a walled tile map, with the window recentred on the rover
// driver every frame.
package explore

import (
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

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game implements the exploration mode.
type Game struct {
	cfg     config.ExploreConfig
	runtime core.RuntimeConfig
	log     core.Logger

	grid     *tilemap.Map
	habitat  tilemap.Feature
	ctrl     *Controller
	view     tilemap.Viewport
	frames   int
	exported int
}

// New creates a new exploration mode instance.
func New() *Game {
	return &Game{cfg: config.DefaultExploreConfig()}
}

func init() {
	registry.Register("explore", func() registry.Game {
		return New()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return "explore"
}

// Title returns the menu label.
func (g *Game) Title() string {
	return "Mars Explorer"
}

// Intro returns the instruction screen shown before play.
func (g *Game) Intro() []string {
	return []string{"Explore Mars", "Use joystick", "to move", "Press select"}
}

// Reset loads the tuning, rebuilds the surface, and respawns the character.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.log = rc.Log()

	cfg, err := config.LoadExplore(configPath)
	if err != nil {
		g.log.Warn("explore: using default config", "err", err)
		cfg = config.DefaultExploreConfig()
	}
	config.ApplyExplorePreset(&cfg, difficultyPreset)
	g.Configure(cfg)
}

// Configure rebuilds the mode from an explicit configuration.
func (g *Game) Configure(cfg config.ExploreConfig) {
	g.cfg = cfg
	if g.log == nil {
		g.log = g.runtime.Log()
	}

	m := cfg.Map
	features := tilemap.MarsFeatures(m.Height)
	g.grid = tilemap.Build(m.Width, m.Height, features)
	for _, f := range features {
		if f.Kind == tilemap.Habitat {
			g.habitat = f
		}
	}

	g.ctrl = NewController(g.grid, cfg.Physics, cfg.Player.SpawnX, cfg.Player.SpawnY)
	g.view = tilemap.NewViewport(m.ViewportWidth, m.ViewportHeight)
	g.view.Recenter(cfg.Player.SpawnX, cfg.Player.SpawnY, m.Width, m.Height)
	g.frames = 0
	g.exported = 0

	g.log.Info("explore: surface ready",
		"width", m.Width, "height", m.Height,
		"spawn_x", cfg.Player.SpawnX, "spawn_y", cfg.Player.SpawnY)
}

// Step advances the character one frame and recentres the window.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.ctrl.Step(in)
	b := g.ctrl.Body()
	g.view.Recenter(b.X, b.Y, g.grid.Width(), g.grid.Height())
	g.frames++
	return core.StepResult{State: g.State()}
}

// State returns the mode state. Exploration has no score and never ends.
func (g *Game) State() core.GameState {
	return core.GameState{}
}

// FrameDelay returns the fixed exploration cadence.
func (g *Game) FrameDelay() time.Duration {
	return g.cfg.Timing.FrameDelay()
}

// LongPressFrames returns how long select must be held to dump the map.
func (g *Game) LongPressFrames() int {
	return g.cfg.Timing.ExportHoldFrames
}

// LongPress writes the tile grid to the diagnostic sink.
func (g *Game) LongPress() {
	if err := g.grid.Export(g.runtime.DiagWriter()); err != nil {
		g.log.Warn("explore: map export failed", "err", err)
		return
	}
	g.exported++
	g.log.Info("explore: map exported", "count", g.exported)
}

// Controller exposes the physics state.
func (g *Game) Controller() *Controller {
	return g.ctrl
}

// Viewport returns the current window onto the map.
func (g *Game) Viewport() tilemap.Viewport {
	return g.view
}

// Map returns the surface grid.
func (g *Game) Map() *tilemap.Map {
	return g.grid
}

// Render draws the visible tiles below the header band, then the character.
func (g *Game) Render(dst core.Renderer) {
	dst.Clear()

	ts := g.cfg.Map.TileSize
	top := g.cfg.Map.HUDOffset

	for row := 0; row < g.view.H; row++ {
		for col := 0; col < g.view.W; col++ {
			mapX, mapY := g.view.X+col, g.view.Y+row
			g.drawTile(dst, g.grid.At(mapX, mapY), mapX, mapY, col*ts, row*ts+top)
		}
	}

	b := g.ctrl.Body()
	sx, sy := g.view.ToScreen(b.X, b.Y)
	dst.DrawRect(sx*ts+1, sy*ts+top+1, ts, ts, core.FillBlack)

	dst.Present()
}

// drawTile paints one tile with its top-left corner at pixel (px, py).
func (g *Game) drawTile(dst core.Renderer, k tilemap.Kind, mapX, mapY, px, py int) {
	ts := g.cfg.Map.TileSize

	if k != tilemap.Habitat {
		tilemap.DrawTile(dst, k, px, py, ts)
		return
	}
	// One dome spans the whole block, anchored on its centre tile and
	// rising from the tile's bottom edge.
	if mapX == g.habitat.CenterX() && mapY == g.habitat.Y {
		dst.DrawBitmap(px, py+ts-habitatH, habitatBitmap, habitatW, habitatH)
	}
}
