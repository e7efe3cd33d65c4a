package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var explore ExploreConfig
	if err := yaml.Unmarshal(GetDefaultYAML("explore"), &explore); err != nil {
		t.Fatalf("explore.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(explore, DefaultExploreConfig()) {
		t.Errorf("explore.yaml drifted from DefaultExploreConfig:\n%+v\n%+v", explore, DefaultExploreConfig())
	}

	var invade InvadeConfig
	if err := yaml.Unmarshal(GetDefaultYAML("invade"), &invade); err != nil {
		t.Fatalf("invade.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(invade, DefaultInvadeConfig()) {
		t.Errorf("invade.yaml drifted from DefaultInvadeConfig:\n%+v\n%+v", invade, DefaultInvadeConfig())
	}

	if string(GetDefaultYAML("mapedit")) != string(GetDefaultYAML("explore")) {
		t.Error("the map editor should share the exploration defaults")
	}
	if GetDefaultYAML("pong") != nil {
		t.Error("unknown mode should have no default YAML")
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultExploreConfig().Validate(); err != nil {
		t.Errorf("default explore config invalid: %v", err)
	}
	if err := DefaultInvadeConfig().Validate(); err != nil {
		t.Errorf("default invade config invalid: %v", err)
	}
}

func TestExploreValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ExploreConfig)
		code   string
	}{
		{"zero gravity", func(c *ExploreConfig) { c.Physics.Gravity = 0 }, "BAD_GRAVITY"},
		{"downward jump", func(c *ExploreConfig) { c.Physics.JumpForce = 1 }, "BAD_JUMP_FORCE"},
		{"negative coyote", func(c *ExploreConfig) { c.Physics.CoyoteFrames = -1 }, "BAD_FRAME_COUNT"},
		{"narrow map", func(c *ExploreConfig) { c.Map.Width = 20 }, "MAP_TOO_SMALL"},
		{"viewport too tall", func(c *ExploreConfig) { c.Map.ViewportHeight = 9 }, "VIEWPORT_TOO_LARGE"},
		{"viewport off screen", func(c *ExploreConfig) { c.Map.ViewportWidth = 11 }, "VIEWPORT_OFF_SCREEN"},
		{"spawn in wall", func(c *ExploreConfig) { c.Player.SpawnY = 7 }, "BAD_SPAWN"},
		{"no export hold", func(c *ExploreConfig) { c.Timing.ExportHoldFrames = 0 }, "BAD_EXPORT_HOLD"},
		{"exit before export", func(c *ExploreConfig) { c.Timing.ExitHoldFrames = 30 }, "BAD_EXIT_HOLD"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultExploreConfig()
			tc.mutate(&cfg)

			var verr ValidationError
			if err := cfg.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestInvadeValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*InvadeConfig)
		code   string
	}{
		{"sprite into HUD", func(c *InvadeConfig) { c.Lanes.SpriteX[2] = 40 }, "BAD_LANE"},
		{"bullet in wrong band", func(c *InvadeConfig) { c.Lanes.BulletX[0] = 20 }, "BAD_BANDS"},
		{"phases inverted", func(c *InvadeConfig) { c.Enemies.ThreatPhase = 40 }, "BAD_PHASES"},
		{"no level threshold", func(c *InvadeConfig) { c.Scoring.LevelUpScore = 0 }, "BAD_SCORING"},
		{"empty speed table", func(c *InvadeConfig) { c.Progression.FrameDelaysMs = nil }, "NO_SPEED_TABLE"},
		{"level zero", func(c *InvadeConfig) { c.Progression.StartLevel = 0 }, "BAD_START_LEVEL"},
		{"still projectile", func(c *InvadeConfig) { c.Projectile.Step = 0 }, "BAD_PROJECTILE"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultInvadeConfig()
			tc.mutate(&cfg)

			var verr ValidationError
			if err := cfg.Validate(); !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, expected ValidationError", err)
			}
			if verr.Code != tc.code {
				t.Errorf("code = %s, expected %s", verr.Code, tc.code)
			}
		})
	}
}

func TestLaneOf(t *testing.T) {
	cfg := DefaultInvadeConfig()

	tests := []struct {
		x    int
		lane int
	}{
		{0, 1}, {9, 1}, {14, 1},
		{15, 2}, {25, 2}, {30, 2},
		{31, 3}, {41, 3}, {83, 3},
	}

	for _, tc := range tests {
		if got := cfg.LaneOf(tc.x); got != tc.lane {
			t.Errorf("LaneOf(%d) = %d, expected %d", tc.x, got, tc.lane)
		}
	}
}

func TestSpeedTable(t *testing.T) {
	p := DefaultInvadeConfig().Progression

	tests := []struct {
		level int
		speed int
		delay time.Duration
	}{
		{0, 0, 80 * time.Millisecond},
		{1, 0, 80 * time.Millisecond},
		{2, 1, 70 * time.Millisecond},
		{6, 5, 30 * time.Millisecond},
		{7, 5, 30 * time.Millisecond},
		{50, 5, 30 * time.Millisecond},
	}

	for _, tc := range tests {
		if got := p.Speed(tc.level); got != tc.speed {
			t.Errorf("Speed(%d) = %d, expected %d", tc.level, got, tc.speed)
		}
		if got := p.FrameDelay(tc.level); got != tc.delay {
			t.Errorf("FrameDelay(%d) = %v, expected %v", tc.level, got, tc.delay)
		}
	}
}

func TestParsePreset(t *testing.T) {
	p, err := ParsePreset("")
	if err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v; expected normal", p, err)
	}
	for _, want := range Presets() {
		if got, err := ParsePreset(string(want)); err != nil || got != want {
			t.Errorf("ParsePreset(%q) = %q, %v", want, got, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestApplyInvadePreset(t *testing.T) {
	fixed := DefaultInvadeConfig()
	ApplyInvadePreset(&fixed, DifficultyFixed)
	if fixed.Progression.Enabled {
		t.Error("fixed preset should disable progression")
	}

	hard := DefaultInvadeConfig()
	ApplyInvadePreset(&hard, DifficultyHard)
	if hard.Progression.StartLevel != 3 || hard.Scoring.MissAwardsPoint {
		t.Errorf("hard preset = %+v", hard.Progression)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset invalid: %v", err)
	}

	normal := DefaultInvadeConfig()
	ApplyInvadePreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, DefaultInvadeConfig()) {
		t.Error("normal preset should keep the defaults")
	}
}

func TestApplyExplorePreset(t *testing.T) {
	easy := DefaultExploreConfig()
	ApplyExplorePreset(&easy, DifficultyEasy)
	if easy.Physics.CoyoteFrames <= DefaultExploreConfig().Physics.CoyoteFrames {
		t.Error("easy preset should widen coyote time")
	}

	fixed := DefaultExploreConfig()
	ApplyExplorePreset(&fixed, DifficultyFixed)
	if !reflect.DeepEqual(fixed, DefaultExploreConfig()) {
		t.Error("fixed preset should keep the defaults")
	}
}

// isolate points HOME and the working directory at empty temp dirs so the
// loader only sees the files a test writes.
func isolate(t *testing.T) (home, wd string) {
	t.Helper()
	home = t.TempDir()
	wd = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(wd)
	return home, wd
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadInvade("")
	if err != nil {
		t.Fatalf("LoadInvade() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultInvadeConfig()) {
		t.Error("expected embedded defaults")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	_, wd := isolate(t)

	path := filepath.Join(wd, "mine.yaml")
	data := []byte("physics:\n  coyote_frames: 2\nmap:\n  width: 48\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadExplore(path)
	if err != nil {
		t.Fatalf("LoadExplore() failed: %v", err)
	}
	if cfg.Physics.CoyoteFrames != 2 || cfg.Map.Width != 48 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Physics.Gravity != 0.25 || cfg.Map.Height != 8 {
		t.Errorf("unspecified keys should keep defaults: %+v", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home, wd := isolate(t)

	local := filepath.Join(wd, "configs")
	if err := os.MkdirAll(local, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(local, "invade.yaml"), []byte("game_over_delay_ms: 500\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadInvade("")
	if err != nil {
		t.Fatalf("LoadInvade() failed: %v", err)
	}
	if cfg.GameOverDelayMs != 500 {
		t.Errorf("local config ignored: delay = %d", cfg.GameOverDelayMs)
	}

	user := filepath.Join(home, AppDir, "configs")
	if err := os.MkdirAll(user, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(user, "invade.yaml"), []byte("game_over_delay_ms: 600\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = LoadInvade("")
	if err != nil {
		t.Fatalf("LoadInvade() failed: %v", err)
	}
	if cfg.GameOverDelayMs != 600 {
		t.Errorf("user config should win over local: delay = %d", cfg.GameOverDelayMs)
	}
}

func TestLoadErrors(t *testing.T) {
	_, wd := isolate(t)

	if _, err := LoadExplore(filepath.Join(wd, "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(wd, "bad.yaml")
	if err := os.WriteFile(bad, []byte("physics: [1, 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadExplore(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	invalidCfg := filepath.Join(wd, "invalid.yaml")
	if err := os.WriteFile(invalidCfg, []byte("map:\n  viewport_width: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadExplore(invalidCfg)
	var verr ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected ValidationError, got %v", err)
	}
}
