package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/games/explore"
	"github.com/dignitasium/Space-Hub/internal/games/invade"
	"github.com/dignitasium/Space-Hub/internal/games/mapedit"
	"github.com/dignitasium/Space-Hub/internal/platform/tui"
)

// session holds what every command shares: the runtime config and the
// log file behind it.
type session struct {
	cfg  core.RuntimeConfig
	file io.Closer
}

// Close flushes the log file.
func (s *session) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

// openSession opens the log file and builds the runtime config from the
// global flags. configPath and configMode bind --config to one mode.
func openSession(configMode, configPath string) (*session, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}
	explore.SetDifficultyPreset(preset)
	invade.SetDifficultyPreset(preset)
	mapedit.SetDifficultyPreset(preset)
	invade.SetStartLevel(flagLevel)

	switch configMode {
	case "explore":
		explore.SetConfigPath(configPath)
	case "invade":
		invade.SetConfigPath(configPath)
	case "mapedit":
		mapedit.SetConfigPath(configPath)
	}

	w, closer, err := openLogFile(flagLogFile)
	if err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "spacehub",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := core.DefaultConfig()
	cfg.Seed = flagSeed
	cfg.Logger = logger
	cfg.Diag = w
	return &session{cfg: cfg, file: closer}, nil
}

// openLogFile opens path for appending, defaulting to ~/.spacehub/spacehub.log.
// Without a home directory logs are discarded.
func openLogFile(path string) (io.Writer, io.Closer, error) {
	if path == "" {
		dir := config.UserDir("")
		if dir == "" {
			return io.Discard, nil, nil
		}
		path = filepath.Join(dir, "spacehub.log")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log file: %w", err)
	}
	return f, f, nil
}

// checkTerminal refuses to start the host on a terminal too small for the LCD.
func checkTerminal() error {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return errors.New("stdout is not a terminal; try 'spacehub demo'")
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return fmt.Errorf("terminal size: %w", err)
	}
	if w < tui.MinTermWidth || h < tui.MinTermHeight {
		return fmt.Errorf("terminal is %dx%d, need at least %dx%d",
			w, h, tui.MinTermWidth, tui.MinTermHeight)
	}
	return nil
}
