package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/loop"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

var (
	flagFrames     int
	flagDemoConfig string
)

var demoCmd = &cobra.Command{
	Use:   "demo <mode>",
	Short: "Run a mode headless on autopilot",
	Long: `Runs a mode through the same loop as the device, with a scripted
joystick and no real sleeping, then prints the last LCD frame as text.

The autopilot opens the intro gate, then walks east and jumps in
exploration, or sweeps the lanes firing in the arcade.

Examples:
  spacehub demo explore --frames 60
  spacehub demo invade --seed 7 --frames 500`,
	Args: cobra.ExactArgs(1),
	RunE: runDemo,
}

func init() {
	demoCmd.Flags().IntVar(&flagFrames, "frames", 200, "Number of loop frames to run")
	demoCmd.Flags().StringVar(&flagDemoConfig, "config", "", "Path to custom mode config YAML")
}

// autopilot is a scripted joystick. Each frame reads one sample.
type autopilot struct {
	mode  string
	frame int
}

func (a *autopilot) sample() core.Sample {
	switch a.frame {
	case 0:
		return core.Sample{Dir: core.DirCenter, Select: true}
	case 1:
		return core.Sample{Dir: core.DirCenter}
	}

	f := a.frame - 2
	switch a.mode {
	case "explore":
		return core.Sample{Dir: core.DirE, Action: f%20 < 6}
	case "invade":
		sweep := [4]core.Direction{core.DirW, core.DirCenter, core.DirE, core.DirCenter}
		return core.Sample{Dir: sweep[(f/10)%4], Action: f%2 == 0}
	case "mapedit":
		return core.Sample{Dir: core.DirE, Action: f%4 == 0}
	default:
		return core.Sample{Dir: core.DirCenter}
	}
}

func (a *autopilot) PollDirection() core.Direction { return a.sample().PollDirection() }
func (a *autopilot) ActionPressed() bool           { return a.sample().ActionPressed() }
func (a *autopilot) ReadSelect() int               { return a.sample().ReadSelect() }

func runDemo(cmd *cobra.Command, args []string) error {
	id := args[0]
	g, err := registry.Create(id)
	if err != nil {
		return err
	}
	if flagFrames <= 0 {
		return errors.New("--frames must be positive")
	}

	s, err := openSession(id, flagDemoConfig)
	if err != nil {
		return err
	}
	defer s.Close()
	if s.cfg.Seed == 0 {
		s.cfg.Seed = time.Now().UnixNano()
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pilot := &autopilot{mode: id}
	screen := core.NewScreen(s.cfg.ScreenW, s.cfg.ScreenH)
	var elapsed time.Duration

	r := loop.New(g, pilot, screen, loop.WithSleep(func(ctx context.Context, d time.Duration) error {
		elapsed += d
		pilot.frame++
		if pilot.frame >= flagFrames {
			cancel()
			return ctx.Err()
		}
		return nil
	}))
	r.Start(s.cfg)

	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, screen.String())
	st := r.Last().State
	fmt.Fprintf(out, "mode=%s seed=%d phase=%s frames=%d device_time=%s score=%d level=%d game_over=%v\n",
		id, s.cfg.Seed, r.Phase(), r.Frames(), elapsed, st.Score, st.Level, st.GameOver)
	return nil
}
