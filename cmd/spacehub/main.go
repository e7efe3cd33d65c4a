// spacehub runs the Space Hub handheld in a terminal: a menu of modes
// drawn on an emulated 84x48 LCD and driven by a keyboard joystick.
//
// Usage:
//
//	spacehub                 - Start the device at its menu
//	spacehub run             - Same as above
//	spacehub play <mode>     - Run one mode directly
//	spacehub list            - List available modes
//	spacehub demo <mode>     - Run a mode headless on autopilot
//	spacehub map             - Print the exploration map dump
//	spacehub config <mode>   - Print a mode's default YAML
//
// Global flags:
//
//	--seed <value>        - Set RNG seed for reproducible runs
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--level <n>           - Arcade start level
//	--log-file <path>     - Log destination (default: ~/.spacehub/spacehub.log)
//	--verbose             - Debug logging
//	--hold-ms <ms>        - How long a key press reads as held
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/dignitasium/Space-Hub/internal/games/explore"
	_ "github.com/dignitasium/Space-Hub/internal/games/invade"
	_ "github.com/dignitasium/Space-Hub/internal/games/mapedit"
)

var (
	// Global flags
	flagSeed       int64
	flagDifficulty string
	flagLevel      int
	flagLogFile    string
	flagVerbose    bool
	flagHoldMs     int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacehub",
	Short: "Space Hub - a handheld arcade on an emulated LCD",
	Long: `Space Hub emulates a small handheld with an 84x48 monochrome LCD,
a joystick, an action button and a select button.

The menu offers Mars Explorer, a side-scrolling walk across the Martian
surface, Space Invader, a three-lane shooter, and the Map Editor, which
paints tiles onto the surface and dumps the grid as a Go literal.

Controls:
  Arrows/WASD  - Joystick
  Space        - Action (jump, fire)
  Enter        - Select (start, exit a mode)
  V            - Hold select down (long press)
  Ctrl+R       - Device reset
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Examples:
  spacehub
  spacehub run --hold-ms 200
  spacehub play invade --difficulty hard
  spacehub demo explore --frames 120
  spacehub map`,
	Args: cobra.NoArgs,
	RunE: runHub,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the device at its menu (the default command)",
	Args:  cobra.NoArgs,
	RunE:  runHub,
}

func init() {
	rootCmd.SilenceUsage = true

	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 0, "Arcade start level (0 = preset default)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file path (default ~/.spacehub/spacehub.log)")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().IntVar(&flagHoldMs, "hold-ms", 300, "How long a key press reads as held, in milliseconds")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(configCmd)
}
