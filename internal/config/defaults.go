package config

import (
	_ "embed"
)

//go:embed defaults/explore.yaml
var defaultExploreYAML []byte

//go:embed defaults/invade.yaml
var defaultInvadeYAML []byte

// DefaultExploreConfig returns the default exploration configuration.
func DefaultExploreConfig() ExploreConfig {
	return ExploreConfig{
		Physics: ExplorePhysics{
			Gravity:       0.25,
			JumpForce:     -1.4,
			MaxFallSpeed:  2.0,
			MaxJumpFrames: 10,
			CoyoteFrames:  6,
		},
		Map: ExploreMap{
			Width:          60,
			Height:         8,
			ViewportWidth:  10,
			ViewportHeight: 4,
			TileSize:       8,
			HUDOffset:      8,
		},
		Player: ExplorePlayer{
			SpawnX: 2,
			SpawnY: 6,
		},
		Timing: ExploreTiming{
			FrameDelayMs:     100,
			ExportHoldFrames: 30,
			ExitHoldFrames:   60,
		},
	}
}

// DefaultInvadeConfig returns the default lane shooter configuration.
func DefaultInvadeConfig() InvadeConfig {
	return InvadeConfig{
		Lanes: InvadeLanes{
			SpriteX:   [3]int{2, 18, 34},
			BulletX:   [3]int{9, 25, 41},
			BandEdges: [2]int{15, 31},
		},
		Player: InvadePlayer{
			Y: 32,
		},
		Projectile: InvadeProjectile{
			LaunchY: 32,
			Step:    2,
			Width:   2,
			Height:  4,
		},
		Enemies: InvadeEnemies{
			HitWindow:   4,
			ThreatPhase: 22,
			MaxPhase:    40,
		},
		Scoring: InvadeScoring{
			LevelUpScore:     10,
			ComboThreshold:   3,
			InvincibleFrames: 100,
			MissAwardsPoint:  true,
		},
		Progression: InvadeProgression{
			Enabled:       true,
			StartLevel:    1,
			FrameDelaysMs: []int{80, 70, 60, 50, 40, 30},
		},
		Transition: InvadeTransition{
			FlashFrames: 6,
			FlashMs:     100,
			BannerMs:    1200,
		},
		GameOverDelayMs: 400,
	}
}

// GetDefaultYAML returns the embedded default YAML for a mode. The map
// editor reads the exploration config.
func GetDefaultYAML(modeID string) []byte {
	switch modeID {
	case "explore", "mapedit":
		return defaultExploreYAML
	case "invade":
		return defaultInvadeYAML
	default:
		return nil
	}
}
