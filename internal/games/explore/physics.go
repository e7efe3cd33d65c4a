package explore

import (
	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/tilemap"
)

// Phase is the character's vertical state.
type Phase int

const (
	Grounded Phase = iota
	Rising
	Falling
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case Grounded:
		return "grounded"
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	default:
		return "unknown"
	}
}

// Body is the character state the controller integrates.
type Body struct {
	X, Y      int     // Tile position
	VelY      float64 // Tiles per frame, negative is up
	OnGround  bool    // Supported at the start of the last step
	Jumping   bool    // A jump is being sustained
	JumpTimer int     // Sustain frames left
	Coyote    int     // Frames left in which a jump may still start
}

// Controller advances the platformer character one frame at a time.
// It owns the body; the map is read-only.
type Controller struct {
	cfg  config.ExplorePhysics
	grid *tilemap.Map
	body Body
}

// NewController places a resting character at (x, y) on grid.
// The spawn is clamped into the map.
func NewController(grid *tilemap.Map, cfg config.ExplorePhysics, x, y int) *Controller {
	return &Controller{
		cfg:  cfg,
		grid: grid,
		body: Body{
			X: core.Clamp(x, 0, grid.Width()-1),
			Y: core.Clamp(y, 0, grid.Height()-1),
		},
	}
}

// Body returns a copy of the character state.
func (c *Controller) Body() Body {
	return c.body
}

// Phase reports the vertical state after the last step.
func (c *Controller) Phase() Phase {
	b := c.body
	switch {
	case b.VelY < 0:
		return Rising
	case c.supported(b.X, b.Y):
		return Grounded
	default:
		return Falling
	}
}

// supported reports whether the tile below (x, y) holds the character up.
func (c *Controller) supported(x, y int) bool {
	return y+1 < c.grid.Height() && tilemap.Supports(c.grid.At(x, y+1))
}

// Step runs one frame: ground test, coyote timer, jump start and sustain,
// gravity, integration, then a single collision check on the combined
// horizontal and vertical candidate cell.
func (c *Controller) Step(in core.InputFrame) {
	b := &c.body
	w, h := c.grid.Width(), c.grid.Height()

	newX := b.X
	switch in.Dir {
	case core.DirE:
		newX++
	case core.DirW:
		newX--
	}
	newX = core.Clamp(newX, 0, w-1)

	b.OnGround = c.supported(b.X, b.Y)
	if b.OnGround {
		b.Coyote = c.cfg.CoyoteFrames
	} else {
		b.Coyote = core.SatDec(b.Coyote)
	}

	if !b.Jumping && b.Coyote > 0 && in.ActionPressed {
		b.Jumping = true
		b.JumpTimer = c.cfg.MaxJumpFrames
		b.VelY = c.cfg.JumpForce
	}

	// Held button re-pins the impulse; gravity skips pinned frames.
	pinned := false
	if b.Jumping {
		if b.JumpTimer > 0 && in.Action {
			b.VelY = c.cfg.JumpForce
			b.JumpTimer--
			pinned = true
		} else {
			b.Jumping = false
		}
	}
	if !in.Action {
		b.Jumping = false
		b.JumpTimer = 0
	}

	if !pinned && (!b.OnGround || b.VelY < 0) {
		b.VelY += c.cfg.Gravity
		if b.VelY > c.cfg.MaxFallSpeed {
			b.VelY = c.cfg.MaxFallSpeed
		}
	}

	newY := core.RoundHalfUp(float64(b.Y) + b.VelY)
	if newY < 0 {
		newY = 0
	}
	if newY >= h {
		newY = h - 1
		b.VelY = 0
		b.Jumping = false
	}

	if c.grid.At(newX, newY) != tilemap.Wall {
		b.X = newX
		b.Y = newY
	} else {
		b.VelY = 0
		b.Jumping = false
	}
}
