// Package loop drives the device. A Runner plays one mode at its own
// cadence: poll input once, step the mode, render, then check the select
// control for exit. The Hub moves between the menu and the runners.
package loop

import (
	"context"
	"time"

	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

// GatePoll is the pause between intro frames while waiting for select.
const GatePoll = 100 * time.Millisecond

// Phase is the runner's position in a mode's lifecycle.
type Phase int

const (
	PhaseGate     Phase = iota // Intro shown until select is pressed and released
	PhaseRunning               // Mode stepping every frame
	PhaseTerminal              // Game over: rendering only, input ignored
	PhaseExited                // Select confirmed; the mode is done
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseGate:
		return "gate"
	case PhaseRunning:
		return "running"
	case PhaseTerminal:
		return "terminal"
	case PhaseExited:
		return "exited"
	default:
		return "unknown"
	}
}

// SleepFunc pauses between frames. It returns early with the context's
// error when ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Option configures a Runner.
type Option func(*Runner)

// WithSleep replaces the inter-frame pause, typically in tests.
func WithSleep(fn SleepFunc) Option {
	return func(r *Runner) {
		r.sleep = fn
	}
}

// Runner owns one mode run. It is not safe for concurrent use.
type Runner struct {
	game  registry.Game
	input core.Input
	out   core.Renderer
	log   core.Logger
	sleep SleepFunc

	poller core.Poller
	phase  Phase
	opened bool // Gate saw the press; waiting for its release
	armed  bool // Exit press seen; the release completes it
	frames int
	last   core.StepResult
}

// New creates a runner for g reading in and drawing to out.
// Call Start before the first frame.
func New(g registry.Game, in core.Input, out core.Renderer, opts ...Option) *Runner {
	r := &Runner{
		game:  g,
		input: in,
		out:   out,
		log:   core.RuntimeConfig{}.Log(),
		sleep: sleepCtx,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start resets the mode and returns to the intro gate.
func (r *Runner) Start(cfg core.RuntimeConfig) {
	r.log = cfg.Log()
	r.game.Reset(cfg)
	r.poller.Reset()
	r.phase = PhaseGate
	r.opened = false
	r.armed = false
	r.frames = 0
	r.last = core.StepResult{State: r.game.State()}
	r.log.Info("mode started", "mode", r.game.ID())
}

// Game returns the mode being run.
func (r *Runner) Game() registry.Game {
	return r.game
}

// Phase returns the current lifecycle phase.
func (r *Runner) Phase() Phase {
	return r.phase
}

// Frames returns how many frames the mode has stepped.
func (r *Runner) Frames() int {
	return r.frames
}

// Last returns the result of the most recent step.
func (r *Runner) Last() core.StepResult {
	return r.last
}

// Frame runs one iteration and returns the phase after it.
func (r *Runner) Frame() Phase {
	switch r.phase {
	case PhaseGate:
		r.gate()
	case PhaseRunning:
		r.run()
	case PhaseTerminal:
		r.game.Render(r.out)
	}
	return r.phase
}

// gate shows the intro and waits for a full press and release of select.
func (r *Runner) gate() {
	in := r.poller.Poll(r.input)

	r.out.Clear()
	for i, line := range r.game.Intro() {
		r.out.PrintText(line, 0, i+1)
	}
	r.out.Present()

	if in.SelectPressed {
		r.opened = true
	}
	if r.opened && in.SelectReleased {
		r.phase = PhaseRunning
		r.log.Debug("gate opened", "mode", r.game.ID())
	}
}

// run steps the mode once and resolves the select control.
func (r *Runner) run() {
	in := r.poller.Poll(r.input)

	r.last = r.game.Step(in)
	r.frames++
	r.game.Render(r.out)

	if r.last.State.GameOver {
		r.phase = PhaseTerminal
		r.log.Info("game over", "mode", r.game.ID(),
			"level", r.last.State.Level, "score", r.last.State.Score, "frames", r.frames)
		return
	}

	if so, ok := r.game.(registry.SelectOwner); ok && so.OwnsSelect() {
		if r.last.Exit {
			r.phase = PhaseExited
			r.log.Info("mode exited", "mode", r.game.ID(), "frames", r.frames)
		}
		return
	}

	if in.SelectPressed {
		r.armed = true
	}
	if lp, ok := r.game.(registry.LongPresser); ok && r.armed && in.SelectHeld == lp.LongPressFrames() {
		// The long press consumes this press; its release does not exit.
		lp.LongPress()
		r.armed = false
		r.log.Debug("long press", "mode", r.game.ID(), "frames", in.SelectHeld)
	}
	if r.armed && in.SelectReleased {
		r.phase = PhaseExited
		r.log.Info("mode exited", "mode", r.game.ID(), "frames", r.frames)
	}
}

// Delay returns the pause to take after the last frame.
func (r *Runner) Delay() time.Duration {
	if r.phase == PhaseGate {
		return GatePoll
	}
	return r.game.FrameDelay()
}

// Run drives frames until the mode exits or ctx is done.
// A run that reaches game over keeps rendering until cancelled.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if r.Frame() == PhaseExited {
			return nil
		}
		if err := r.sleep(ctx, r.Delay()); err != nil {
			return err
		}
	}
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
