package config

import "fmt"

// Display bounds the lane geometry must fit inside.
const (
	lcdWidth   = 84
	lcdHeight  = 48
	spriteSize = 15
	hudColumn  = 50
)

// Minimum map size that still holds every surface landmark.
const (
	minMapWidth  = 40
	minMapHeight = 5
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func invalid(code, format string, args ...interface{}) error {
	return ValidationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Validate checks the exploration configuration for values the physics and
// renderer cannot work with.
func (c ExploreConfig) Validate() error {
	p := c.Physics
	switch {
	case p.Gravity <= 0:
		return invalid("BAD_GRAVITY", "gravity must be positive, got %v", p.Gravity)
	case p.JumpForce >= 0:
		return invalid("BAD_JUMP_FORCE", "jump_force must be negative (upward), got %v", p.JumpForce)
	case p.MaxFallSpeed <= 0:
		return invalid("BAD_FALL_SPEED", "max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	case p.MaxJumpFrames < 0 || p.CoyoteFrames < 0:
		return invalid("BAD_FRAME_COUNT", "max_jump_frames and coyote_frames must not be negative")
	}

	m := c.Map
	switch {
	case m.Width < minMapWidth || m.Height < minMapHeight:
		return invalid("MAP_TOO_SMALL", "map %dx%d is smaller than %dx%d", m.Width, m.Height, minMapWidth, minMapHeight)
	case m.ViewportWidth < 1 || m.ViewportHeight < 1:
		return invalid("BAD_VIEWPORT", "viewport %dx%d must be at least 1x1", m.ViewportWidth, m.ViewportHeight)
	case m.ViewportWidth > m.Width || m.ViewportHeight > m.Height:
		return invalid("VIEWPORT_TOO_LARGE", "viewport %dx%d exceeds map %dx%d", m.ViewportWidth, m.ViewportHeight, m.Width, m.Height)
	case m.TileSize < 1:
		return invalid("BAD_TILE_SIZE", "tile_size must be positive, got %d", m.TileSize)
	case m.ViewportWidth*m.TileSize > lcdWidth || m.HUDOffset+m.ViewportHeight*m.TileSize > lcdHeight:
		return invalid("VIEWPORT_OFF_SCREEN", "viewport does not fit the %dx%d display", lcdWidth, lcdHeight)
	}

	s := c.Player
	if s.SpawnX < 1 || s.SpawnX > m.Width-2 || s.SpawnY < 1 || s.SpawnY > m.Height-2 {
		return invalid("BAD_SPAWN", "spawn (%d, %d) must be inside the wall ring", s.SpawnX, s.SpawnY)
	}

	if c.Timing.FrameDelayMs < 0 {
		return invalid("BAD_FRAME_DELAY", "frame_delay_ms must not be negative")
	}
	if c.Timing.ExportHoldFrames < 1 {
		return invalid("BAD_EXPORT_HOLD", "export_hold_frames must be positive")
	}
	if c.Timing.ExitHoldFrames <= c.Timing.ExportHoldFrames {
		return invalid("BAD_EXIT_HOLD", "exit_hold_frames must exceed export_hold_frames")
	}
	return nil
}

// Validate checks the lane shooter configuration.
func (c InvadeConfig) Validate() error {
	for i, x := range c.Lanes.SpriteX {
		if x < 0 || x+spriteSize > hudColumn {
			return invalid("BAD_LANE", "lane %d sprite x %d leaves the playfield", i+1, x)
		}
	}
	for i, x := range c.Lanes.BulletX {
		if x < 0 || x+c.Projectile.Width > hudColumn {
			return invalid("BAD_LANE", "lane %d bullet x %d leaves the playfield", i+1, x)
		}
		if c.LaneOf(x) != i+1 {
			return invalid("BAD_BANDS", "lane %d bullet x %d falls in band %d", i+1, x, c.LaneOf(x))
		}
	}
	if c.Lanes.BandEdges[0] >= c.Lanes.BandEdges[1] {
		return invalid("BAD_BANDS", "band edges %v must increase", c.Lanes.BandEdges)
	}

	if c.Player.Y < 0 || c.Player.Y+spriteSize > lcdHeight {
		return invalid("BAD_PLAYER_ROW", "player y %d leaves the display", c.Player.Y)
	}

	pr := c.Projectile
	if pr.Step < 1 || pr.Width < 1 || pr.Height < 1 || pr.LaunchY < 1 {
		return invalid("BAD_PROJECTILE", "projectile launch_y, step, width and height must be positive")
	}

	e := c.Enemies
	if e.HitWindow < 0 || e.ThreatPhase < 0 || e.ThreatPhase >= e.MaxPhase {
		return invalid("BAD_PHASES", "need 0 <= threat_phase < max_phase, got %d and %d", e.ThreatPhase, e.MaxPhase)
	}

	s := c.Scoring
	if s.LevelUpScore < 1 || s.ComboThreshold < 1 || s.InvincibleFrames < 0 {
		return invalid("BAD_SCORING", "level_up_score and combo_threshold must be positive")
	}

	if len(c.Progression.FrameDelaysMs) == 0 {
		return invalid("NO_SPEED_TABLE", "frame_delays_ms must list at least one delay")
	}
	for _, d := range c.Progression.FrameDelaysMs {
		if d < 0 {
			return invalid("BAD_SPEED_TABLE", "frame delay %d must not be negative", d)
		}
	}
	if c.Progression.StartLevel < 1 {
		return invalid("BAD_START_LEVEL", "start_level must be at least 1, got %d", c.Progression.StartLevel)
	}

	t := c.Transition
	if t.FlashFrames < 0 || t.FlashMs < 0 || t.BannerMs < 0 || c.GameOverDelayMs < 0 {
		return invalid("BAD_TIMING", "transition and game over timings must not be negative")
	}
	return nil
}

// LaneOf maps a projectile column to its lane band, 1 to 3.
func (c InvadeConfig) LaneOf(x int) int {
	switch {
	case x < c.Lanes.BandEdges[0]:
		return 1
	case x < c.Lanes.BandEdges[1]:
		return 2
	default:
		return 3
	}
}
