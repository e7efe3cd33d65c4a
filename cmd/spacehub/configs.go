package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dignitasium/Space-Hub/internal/config"
	"github.com/dignitasium/Space-Hub/internal/tilemap"
)

var configCmd = &cobra.Command{
	Use:   "config <mode>",
	Short: "Print a mode's default configuration",
	Long: `Prints the embedded default YAML for a mode. Save it to
~/.spacehub/configs/<mode>.yaml or ./configs/<mode>.yaml and edit it to
change the tuning; missing keys keep their defaults.

Examples:
  spacehub config invade > ~/.spacehub/configs/invade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Print the exploration map dump",
	Long: `Builds the Mars surface from the exploration config and prints it
in the same form the long press on select writes during exploration.`,
	Args: cobra.NoArgs,
	RunE: runMap,
}

var flagMapConfig string

func init() {
	mapCmd.Flags().StringVar(&flagMapConfig, "config", "", "Path to custom exploration config YAML")
}

func runConfig(cmd *cobra.Command, args []string) error {
	data := config.GetDefaultYAML(args[0])
	if data == nil {
		return fmt.Errorf("no config for mode %q", args[0])
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func runMap(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadExplore(flagMapConfig)
	if err != nil {
		return err
	}
	return tilemap.MarsSurface(cfg.Map.Width, cfg.Map.Height).Export(cmd.OutOrStdout())
}
