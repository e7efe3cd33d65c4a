// Package config provides YAML-based mode configuration loading and
// difficulty presets for the Space Hub modes.
package config

// ExploreConfig contains all configuration for the Mars exploration mode.
type ExploreConfig struct {
	Physics ExplorePhysics `yaml:"physics"`
	Map     ExploreMap     `yaml:"map"`
	Player  ExplorePlayer  `yaml:"player"`
	Timing  ExploreTiming  `yaml:"timing"`
}

// ExplorePhysics defines the platformer tuning, in tiles and frames.
type ExplorePhysics struct {
	Gravity       float64 `yaml:"gravity"`         // Added to vertical velocity per airborne frame
	JumpForce     float64 `yaml:"jump_force"`      // Upward velocity while a jump is sustained
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`  // Downward velocity cap
	MaxJumpFrames int     `yaml:"max_jump_frames"` // Frames a held button may sustain a jump
	CoyoteFrames  int     `yaml:"coyote_frames"`   // Grace frames to jump after leaving ground
}

// ExploreMap defines the grid and the window shown on the display.
type ExploreMap struct {
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	ViewportWidth  int `yaml:"viewport_width"`
	ViewportHeight int `yaml:"viewport_height"`
	TileSize       int `yaml:"tile_size"`  // Pixels per tile edge
	HUDOffset      int `yaml:"hud_offset"` // Pixel rows above the map window
}

// ExplorePlayer defines where the character starts.
type ExplorePlayer struct {
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// ExploreTiming defines frame pacing and the map export gesture.
type ExploreTiming struct {
	FrameDelayMs     int `yaml:"frame_delay_ms"`
	ExportHoldFrames int `yaml:"export_hold_frames"` // Select held this long dumps the map
	ExitHoldFrames   int `yaml:"exit_hold_frames"`   // Map editor: held this long leaves
}

// InvadeConfig contains all configuration for the lane shooter mode.
type InvadeConfig struct {
	Lanes           InvadeLanes       `yaml:"lanes"`
	Player          InvadePlayer      `yaml:"player"`
	Projectile      InvadeProjectile  `yaml:"projectile"`
	Enemies         InvadeEnemies     `yaml:"enemies"`
	Scoring         InvadeScoring     `yaml:"scoring"`
	Progression     InvadeProgression `yaml:"progression"`
	Transition      InvadeTransition  `yaml:"transition"`
	GameOverDelayMs int               `yaml:"game_over_delay_ms"`
}

// InvadeLanes maps the three lanes to pixel columns.
type InvadeLanes struct {
	SpriteX   [3]int `yaml:"sprite_x"`   // Left edge of ship and enemy sprites
	BulletX   [3]int `yaml:"bullet_x"`   // Projectile column at launch
	BandEdges [2]int `yaml:"band_edges"` // Projectile x below edge i belongs to lane i+1
}

// InvadePlayer defines the ship row.
type InvadePlayer struct {
	Y int `yaml:"y"`
}

// InvadeProjectile defines the single projectile.
type InvadeProjectile struct {
	LaunchY int `yaml:"launch_y"`
	Step    int `yaml:"step"` // Pixels travelled upward per frame
	Width   int `yaml:"width"`
	Height  int `yaml:"height"`
}

// InvadeEnemies defines the descent thresholds, in phase units.
type InvadeEnemies struct {
	HitWindow   int `yaml:"hit_window"`   // Phase within this many pixels below a projectile counts as a hit
	ThreatPhase int `yaml:"threat_phase"` // Past this phase an enemy in the player's lane ends the run
	MaxPhase    int `yaml:"max_phase"`    // Past this phase an enemy is cleared as a miss
}

// InvadeScoring defines points, combos, and level advancement.
type InvadeScoring struct {
	LevelUpScore     int  `yaml:"level_up_score"`
	ComboThreshold   int  `yaml:"combo_threshold"`
	InvincibleFrames int  `yaml:"invincible_frames"` // Counts down from the grant frame, so one less frame is shielded
	MissAwardsPoint  bool `yaml:"miss_awards_point"` // An enemy escaping off the bottom still scores
}

// InvadeProgression defines levels and the speed table.
type InvadeProgression struct {
	Enabled       bool  `yaml:"enabled"` // Disabled keeps the start level forever
	StartLevel    int   `yaml:"start_level"`
	FrameDelaysMs []int `yaml:"frame_delays_ms"` // Indexed by speed, which is level-1 capped at the last entry
}

// InvadeTransition defines the level-up flash and banner.
type InvadeTransition struct {
	FlashFrames int `yaml:"flash_frames"`
	FlashMs     int `yaml:"flash_ms"`
	BannerMs    int `yaml:"banner_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// Presets lists the accepted preset names in display order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed}
}

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	if name == "" {
		return DifficultyNormal, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", ValidationError{
		Code:    "UNKNOWN_PRESET",
		Message: "difficulty must be one of easy, normal, hard, fixed; got " + name,
	}
}
