package invade

import (
	"math/rand"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/core"
)

// Lane bounds.
const (
	MinLane = 1
	MaxLane = 3
)

// Events reports what happened during one combat step.
type Events uint16

const (
	EventFired Events = 1 << iota
	EventKill
	EventInvincibleOn
	EventInvincibleOff
	EventMiss
	EventLevelUp
	EventGameOver
)

// Has reports whether all events in e are set.
func (ev Events) Has(e Events) bool {
	return ev&e == e
}

// Projectile is the player's single shot.
type Projectile struct {
	X, Y   int
	Active bool
}

// Field is the complete combat state after a step.
type Field struct {
	Lane int // Player lane, 1 to 3

	Enemies     [2]int // Enemy lanes, 1 to 3
	Phase       int    // Shared descent counter
	EnemiesDead bool   // Both enemies respawn on the next step

	Shot Projectile

	Score          int // Points toward the next level
	Level          int
	Combo          int // Kills since invincibility last ended
	Invincible     bool
	InvincibleLeft int
	GameOver       bool

	Kills  int // Run totals
	Misses int
}

// Combat advances the lane shooter one frame at a time.
type Combat struct {
	cfg     config.InvadeConfig
	rng     *rand.Rand
	f       Field
	control bool // A lane change is allowed; cleared until the stick is released
}

// NewCombat creates a fresh run. The enemy pair starts dead so the first
// step spawns it.
func NewCombat(cfg config.InvadeConfig, rng *rand.Rand) *Combat {
	return &Combat{
		cfg:     cfg,
		rng:     rng,
		control: true,
		f: Field{
			Lane:        2,
			Enemies:     [2]int{MinLane, MinLane},
			EnemiesDead: true,
			Level:       core.Max(1, cfg.Progression.StartLevel),
		},
	}
}

// Field returns a copy of the combat state.
func (c *Combat) Field() Field {
	return c.f
}

// Speed returns the speed tier for the current level.
func (c *Combat) Speed() int {
	return c.cfg.Progression.Speed(c.f.Level)
}

// Step runs one frame. The order is fixed: lane input, fire, projectile
// advance, respawn, descent, shot collision, invincibility decay, player
// collision, miss cleanup, level check. A finished run ignores input.
func (c *Combat) Step(in core.InputFrame) Events {
	if c.f.GameOver {
		return 0
	}

	var ev Events
	f := &c.f

	switch {
	case in.Dir == core.DirW && c.control:
		f.Lane = core.Clamp(f.Lane-1, MinLane, MaxLane)
		c.control = false
	case in.Dir == core.DirE && c.control:
		f.Lane = core.Clamp(f.Lane+1, MinLane, MaxLane)
		c.control = false
	case in.Dir.Neutral():
		c.control = true
	}

	if in.ActionPressed && !f.Shot.Active {
		f.Shot = Projectile{
			X:      c.cfg.Lanes.BulletX[f.Lane-1],
			Y:      c.cfg.Projectile.LaunchY,
			Active: true,
		}
		ev |= EventFired
	}

	if f.Shot.Active {
		f.Shot.Y -= c.cfg.Projectile.Step
		if f.Shot.Y <= 0 {
			f.Shot.Active = false
		}
	}

	if f.EnemiesDead {
		f.Enemies[0] = f.Lane
		f.Enemies[1] = MinLane + c.rng.Intn(MaxLane-MinLane+1)
		f.Phase = 0
		f.EnemiesDead = false
	}

	f.Phase++

	if f.Shot.Active && f.Phase <= f.Shot.Y+c.cfg.Enemies.HitWindow {
		lane := c.cfg.LaneOf(f.Shot.X)
		if lane == f.Enemies[0] || lane == f.Enemies[1] {
			f.Score++
			f.Combo++
			f.Kills++
			if f.Combo >= c.cfg.Scoring.ComboThreshold && !f.Invincible {
				f.Invincible = true
				f.InvincibleLeft = c.cfg.Scoring.InvincibleFrames
				ev |= EventInvincibleOn
			}
			f.EnemiesDead = true
			f.Shot.Active = false
			ev |= EventKill
		}
	}

	if f.Invincible {
		f.InvincibleLeft = core.SatDec(f.InvincibleLeft)
		if f.InvincibleLeft == 0 {
			f.Invincible = false
			f.Combo = 0
			ev |= EventInvincibleOff
		}
	}

	// A pair destroyed this frame can no longer reach the player.
	if !f.Invincible && !f.EnemiesDead && f.Phase > c.cfg.Enemies.ThreatPhase &&
		(f.Enemies[0] == f.Lane || f.Enemies[1] == f.Lane) {
		f.GameOver = true
		return ev | EventGameOver
	}

	if !f.EnemiesDead && f.Phase > c.cfg.Enemies.MaxPhase {
		f.EnemiesDead = true
		f.Misses++
		if c.cfg.Scoring.MissAwardsPoint {
			f.Score++
		}
		ev |= EventMiss
	}

	if c.cfg.Progression.Enabled && f.Score >= c.cfg.Scoring.LevelUpScore {
		f.Level++
		f.Score = 0
		ev |= EventLevelUp
	}

	return ev
}
