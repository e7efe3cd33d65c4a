package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/platform/tui"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Run one mode without the menu",
	Long: `Start the specified mode directly. Leaving the mode quits.

Difficulty options:
  easy   - Longer coyote and jump windows, longer invincibility
  normal - Default tuning
  hard   - Arcade starts at level 3, dodges score nothing
  fixed  - Arcade speed never increases

Examples:
  spacehub play explore
  spacehub play invade --difficulty easy
  spacehub play invade --level 4
  spacehub play explore --config ./my-explore.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom mode config YAML")
}

func runHub(_ *cobra.Command, _ []string) error {
	return host("", "")
}

func runPlay(_ *cobra.Command, args []string) error {
	id := args[0]
	if !registry.Exists(id) {
		return fmt.Errorf("unknown mode %q; run 'spacehub list' to see available modes", id)
	}
	return host(id, flagConfig)
}

// host runs the terminal device, at its menu or on a single mode.
func host(only, configPath string) error {
	if err := checkTerminal(); err != nil {
		return err
	}

	s, err := openSession(only, configPath)
	if err != nil {
		return err
	}
	defer s.Close()

	opts := tui.Options{
		Hold:          time.Duration(flagHoldMs) * time.Millisecond,
		Only:          only,
		ScreenshotDir: config.UserDir("screenshots"),
	}
	s.cfg.Log().Info("device started", "mode", only, "seed", s.cfg.Seed, "hold", opts.Hold)

	if err := tui.Run(s.cfg, opts); err != nil {
		return fmt.Errorf("running device: %w", err)
	}
	return nil
}
