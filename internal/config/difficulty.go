package config

import "time"

// Speed returns the speed index for a level: level-1, never negative and
// capped at the last entry of the delay table.
func (p InvadeProgression) Speed(level int) int {
	last := len(p.FrameDelaysMs) - 1
	if last < 0 {
		return 0
	}
	speed := level - 1
	if speed < 0 {
		speed = 0
	}
	if speed > last {
		speed = last
	}
	return speed
}

// FrameDelay returns the pause between frames at the given level.
func (p InvadeProgression) FrameDelay(level int) time.Duration {
	if len(p.FrameDelaysMs) == 0 {
		return 0
	}
	return time.Duration(p.FrameDelaysMs[p.Speed(level)]) * time.Millisecond
}

// FrameDelay returns the pause between exploration frames.
func (t ExploreTiming) FrameDelay() time.Duration {
	return time.Duration(t.FrameDelayMs) * time.Millisecond
}

// ApplyExplorePreset modifies the config based on a difficulty preset.
// Easier presets widen the jump windows; fixed leaves the tuning alone.
func ApplyExplorePreset(cfg *ExploreConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.CoyoteFrames = 8
		cfg.Physics.MaxJumpFrames = 12
	case DifficultyHard:
		cfg.Physics.CoyoteFrames = 3
		cfg.Physics.MaxJumpFrames = 8
	}
}

// ApplyInvadePreset modifies the config based on a difficulty preset.
func ApplyInvadePreset(cfg *InvadeConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Progression.Enabled = false
	} else {
		cfg.Progression.Enabled = true
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Scoring.InvincibleFrames = 150
		cfg.Scoring.ComboThreshold = 2
	case DifficultyHard:
		cfg.Progression.StartLevel = 3
		cfg.Scoring.MissAwardsPoint = false
		cfg.Scoring.InvincibleFrames = 60
	}
}
