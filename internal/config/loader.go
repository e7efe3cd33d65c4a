package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user directory holding configs, logs, and screenshots.
const AppDir = ".spacehub"

// LoadExplore loads exploration configuration.
// Search order: customPath -> ~/.spacehub/configs/explore.yaml -> ./configs/explore.yaml -> embedded default
func LoadExplore(customPath string) (ExploreConfig, error) {
	cfg, err := load("explore.yaml", customPath, defaultExploreYAML, DefaultExploreConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: explore: %w", err)
	}
	return cfg, nil
}

// LoadInvade loads lane shooter configuration.
// Search order: customPath -> ~/.spacehub/configs/invade.yaml -> ./configs/invade.yaml -> embedded default
func LoadInvade(customPath string) (InvadeConfig, error) {
	cfg, err := load("invade.yaml", customPath, defaultInvadeYAML, DefaultInvadeConfig)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invade: %w", err)
	}
	return cfg, nil
}

// load decodes the first readable source over the hardcoded defaults, so a
// file only needs the keys it changes. An explicit customPath must load;
// the other locations are skipped when missing or malformed.
func load[T any](filename, customPath string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := defaults()
		if err := yaml.Unmarshal(data, &candidate); err == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir("configs")
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, filename)
}

// UserDir returns ~/.spacehub/<sub>, or empty if home is unavailable.
func UserDir(sub string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, sub)
}
