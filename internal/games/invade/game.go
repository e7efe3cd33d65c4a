// Package invade implements the Space Invader mode: a three-lane shooter
// where an enemy pair descends in lockstep and the player's single shot
// must clear it before it reaches the ship row.
package invade

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

// Playfield frame and HUD placement.
const (
	fieldRight = 50 // Vertical divider between playfield and HUD
	hudX       = 52
	bannerX    = 18
	bannerRow  = 2
	overX      = 10
	overRow    = 3
)

// Package-level variables for config/difficulty, set by the CLI before
// modes are created.
var (
	configPath         string
	difficultyPreset   config.DifficultyPreset
	selectedStartLevel int
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset applied on Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetStartLevel sets the starting level. 0 keeps the configured level.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// screen is the wrapper's display state.
type screen int

const (
	screenPlay   screen = iota
	screenFlash         // Level-up flashes
	screenBanner        // "LEVEL n"
	screenOver          // Frozen game over
)

// Game implements the lane shooter mode.
type Game struct {
	cfg    config.InvadeConfig
	log    core.Logger
	combat *Combat

	screen screen
	flash  int // Flash frame index while screen == screenFlash
	frames int
}

// New creates a new lane shooter instance.
func New() *Game {
	return &Game{cfg: config.DefaultInvadeConfig()}
}

func init() {
	registry.Register("invade", func() registry.Game {
		return New()
	})
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return "invade"
}

// Title returns the menu label.
func (g *Game) Title() string {
	return "Space Invader"
}

// Intro returns the instruction screen shown before play.
func (g *Game) Intro() []string {
	return []string{"Space Invaders", "Press select"}
}

// Reset loads the tuning and starts a fresh run.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.log = rc.Log()

	cfg, err := config.LoadInvade(configPath)
	if err != nil {
		g.log.Warn("invade: using default config", "err", err)
		cfg = config.DefaultInvadeConfig()
	}
	config.ApplyInvadePreset(&cfg, difficultyPreset)
	if selectedStartLevel > 0 {
		cfg.Progression.StartLevel = selectedStartLevel
	}
	g.Configure(cfg, rand.New(rand.NewSource(rc.Seed)))
}

// Configure starts a fresh run from an explicit configuration.
func (g *Game) Configure(cfg config.InvadeConfig, rng *rand.Rand) {
	g.cfg = cfg
	if g.log == nil {
		g.log = core.RuntimeConfig{}.Log()
	}
	g.combat = NewCombat(cfg, rng)
	g.screen = screenPlay
	g.flash = 0
	g.frames = 0

	f := g.combat.Field()
	g.log.Info("invade: run started", "level", f.Level, "speed", g.combat.Speed(),
		"miss_awards_point", cfg.Scoring.MissAwardsPoint)
}

// Combat exposes the simulation.
func (g *Game) Combat() *Combat {
	return g.combat
}

// Step advances one frame. Transition frames ignore input and leave the
// simulation paused.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++

	switch g.screen {
	case screenOver:
		return core.StepResult{State: g.State()}
	case screenFlash:
		g.flash++
		if g.flash >= g.cfg.Transition.FlashFrames {
			g.screen = screenBanner
		}
		return core.StepResult{State: g.State()}
	case screenBanner:
		g.screen = screenPlay
		return core.StepResult{State: g.State()}
	}

	ev := g.combat.Step(in)
	g.report(ev)

	switch {
	case ev.Has(EventGameOver):
		g.screen = screenOver
	case ev.Has(EventLevelUp):
		g.flash = 0
		g.screen = screenFlash
		if g.cfg.Transition.FlashFrames <= 0 {
			g.screen = screenBanner
		}
	}
	return core.StepResult{State: g.State()}
}

// report logs the notable events of a step.
func (g *Game) report(ev Events) {
	if ev == 0 {
		return
	}
	f := g.combat.Field()

	if ev.Has(EventKill) {
		g.log.Debug("invade: kill", "score", f.Score, "combo", f.Combo, "phase", f.Phase)
	}
	if ev.Has(EventMiss) {
		g.log.Debug("invade: enemies escaped", "score", f.Score)
	}
	if ev.Has(EventInvincibleOn) {
		g.log.Info("invade: invincible", "frames", g.cfg.Scoring.InvincibleFrames, "combo", f.Combo)
	}
	if ev.Has(EventLevelUp) {
		g.log.Info("invade: level up", "level", f.Level, "speed", g.combat.Speed())
	}
	if ev.Has(EventGameOver) {
		g.log.Info("invade: game over", "level", f.Level, "score", f.Score,
			"kills", f.Kills, "misses", f.Misses)
	}
}

// State returns the mode state.
func (g *Game) State() core.GameState {
	f := g.combat.Field()
	return core.GameState{
		Score:    f.Score,
		Level:    f.Level,
		GameOver: f.GameOver,
	}
}

// FrameDelay returns the pause after the current frame: the level's speed
// tier while playing, the transition timings otherwise.
func (g *Game) FrameDelay() time.Duration {
	switch g.screen {
	case screenFlash:
		return time.Duration(g.cfg.Transition.FlashMs) * time.Millisecond
	case screenBanner:
		return time.Duration(g.cfg.Transition.BannerMs) * time.Millisecond
	case screenOver:
		return time.Duration(g.cfg.GameOverDelayMs) * time.Millisecond
	default:
		return g.cfg.Progression.FrameDelay(g.combat.Field().Level)
	}
}

// Render draws the current screen.
func (g *Game) Render(dst core.Renderer) {
	dst.Clear()

	switch g.screen {
	case screenFlash:
		if g.flash%2 == 0 {
			dst.DrawRect(0, 0, core.LCDWidth, core.LCDHeight, core.FillBlack)
		}
	case screenBanner:
		dst.PrintText(fmt.Sprintf("LEVEL %d", g.combat.Field().Level), bannerX, bannerRow)
	case screenOver:
		dst.PrintText("GAME OVER", overX, overRow)
	default:
		g.drawField(dst)
	}

	dst.Present()
}

// drawField draws the projectile, ship, enemies, and HUD.
func (g *Game) drawField(dst core.Renderer) {
	f := g.combat.Field()
	lanes := g.cfg.Lanes

	if f.Shot.Active {
		dst.DrawRect(f.Shot.X, f.Shot.Y, g.cfg.Projectile.Width, g.cfg.Projectile.Height, core.FillBlack)
	}

	// The ship blinks while invincible.
	if !f.Invincible || f.InvincibleLeft%4 < 2 {
		dst.DrawBitmap(lanes.SpriteX[f.Lane-1], g.cfg.Player.Y, shipBitmap, spriteSize, spriteSize)
	}

	if !f.EnemiesDead {
		for _, lane := range f.Enemies {
			dst.DrawBitmap(lanes.SpriteX[lane-1], f.Phase, enemyBitmap, spriteSize, spriteSize)
		}
	}

	bottom := core.LCDHeight - 1
	dst.DrawLine(0, 0, 0, bottom, core.FillBlack)
	dst.DrawLine(fieldRight, 0, fieldRight, bottom, core.FillBlack)
	dst.DrawLine(0, bottom, fieldRight, bottom, core.FillBlack)

	dst.PrintText(fmt.Sprintf("Lv:%d", f.Level), hudX, 0)
	dst.PrintText(fmt.Sprintf("Sp:%d", g.combat.Speed()), hudX, 1)
	dst.PrintText(fmt.Sprintf("Sc:%d", f.Score), hudX, 2)
}
