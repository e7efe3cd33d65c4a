package loop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dignitasium/Space-Hub/internal/core"
	"github.com/dignitasium/Space-Hub/internal/registry"
)

// stubMode counts calls and ends the run after gameOverAt steps (0 = never).
type stubMode struct {
	resets     int
	steps      int
	renders    int
	gameOverAt int
	delay      time.Duration
}

func (m *stubMode) ID() string                { return "stub" }
func (m *stubMode) Title() string             { return "Stub" }
func (m *stubMode) Reset(core.RuntimeConfig)  { m.resets++; m.steps = 0 }
func (m *stubMode) Intro() []string           { return []string{"Stub mode", "Press select"} }
func (m *stubMode) FrameDelay() time.Duration { return m.delay }

func (m *stubMode) Step(core.InputFrame) core.StepResult {
	m.steps++
	return core.StepResult{State: m.State()}
}

func (m *stubMode) Render(dst core.Renderer) {
	m.renders++
	dst.Clear()
	dst.Present()
}

func (m *stubMode) State() core.GameState {
	return core.GameState{Score: m.steps, GameOver: m.gameOverAt > 0 && m.steps >= m.gameOverAt}
}

// longStub adds a long-press handler.
type longStub struct {
	stubMode
	threshold int
	presses   int
}

func (m *longStub) LongPressFrames() int { return m.threshold }
func (m *longStub) LongPress()           { m.presses++ }

// ownerStub reads select itself and asks to leave after exitAt steps.
// It also offers a long press the loop must not dispatch.
type ownerStub struct {
	longStub
	exitAt int
}

func (m *ownerStub) OwnsSelect() bool { return true }

func (m *ownerStub) Step(in core.InputFrame) core.StepResult {
	res := m.stubMode.Step(in)
	res.Exit = m.exitAt > 0 && m.steps >= m.exitAt
	return res
}

// exitStub asks to leave every step without owning select.
type exitStub struct {
	stubMode
}

func (m *exitStub) Step(in core.InputFrame) core.StepResult {
	res := m.stubMode.Step(in)
	res.Exit = true
	return res
}

// fakeInput holds the level every poll reads.
type fakeInput struct {
	core.Sample
}

var (
	released = core.Sample{Dir: core.DirCenter}
	pressed  = core.Sample{Dir: core.DirCenter, Select: true}
)

// feed sets the input level and runs one frame per sample.
func feed(r *Runner, in *fakeInput, samples ...core.Sample) Phase {
	var p Phase
	for _, s := range samples {
		in.Sample = s
		p = r.Frame()
	}
	return p
}

func startedRunner(t *testing.T, m registry.Game) (*Runner, *fakeInput, *core.Screen) {
	t.Helper()
	in := &fakeInput{}
	screen := core.NewScreen(core.LCDWidth, core.LCDHeight)

	r := New(m, in, screen)
	r.Start(core.DefaultConfig())
	return r, in, screen
}

func TestGateWaitsForPressAndRelease(t *testing.T) {
	m := &stubMode{}
	r, in, screen := startedRunner(t, m)

	if m.resets != 1 {
		t.Fatalf("Start should reset the mode once, got %d", m.resets)
	}

	steps := []struct {
		in    core.Sample
		phase Phase
	}{
		{released, PhaseGate},
		{released, PhaseGate},
		{pressed, PhaseGate},
		{pressed, PhaseGate},
		{released, PhaseRunning},
	}
	for i, s := range steps {
		if got := feed(r, in, s.in); got != s.phase {
			t.Fatalf("frame %d: phase = %s, expected %s", i, got, s.phase)
		}
	}

	if m.steps != 0 {
		t.Errorf("mode stepped %d times during the gate", m.steps)
	}
	if screen.Frames() != len(steps) {
		t.Errorf("intro presented %d times, expected %d", screen.Frames(), len(steps))
	}
	lit := false
	for x := 0; x < core.LCDWidth; x++ {
		for y := 8; y < 16; y++ {
			lit = lit || screen.Pixel(x, y)
		}
	}
	if !lit {
		t.Error("intro text should be on line 1")
	}
}

func TestReleaseWithoutPressDoesNotOpenGate(t *testing.T) {
	m := &stubMode{}
	r, in, _ := startedRunner(t, m)

	// Held from before the mode started: the reset poller reads it as a
	// press, so the gate needs that press released and nothing else.
	if got := feed(r, in, pressed, released); got != PhaseRunning {
		t.Errorf("phase = %s, expected running", got)
	}

	m2 := &stubMode{}
	r2, in2, _ := startedRunner(t, m2)
	if got := feed(r2, in2, released, released, released); got != PhaseGate {
		t.Errorf("phase = %s, expected gate", got)
	}
}

func TestExitCompletesOnRelease(t *testing.T) {
	m := &stubMode{delay: 80 * time.Millisecond}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released)

	if r.Delay() != 80*time.Millisecond {
		t.Errorf("Delay() = %v, expected the mode's delay", r.Delay())
	}

	if got := feed(r, in, released, released, pressed, pressed); got != PhaseRunning {
		t.Fatalf("phase = %s while select held, expected running", got)
	}
	if got := feed(r, in, released); got != PhaseExited {
		t.Fatalf("phase = %s after release, expected exited", got)
	}
	if m.steps != 5 || r.Frames() != 5 {
		t.Errorf("steps = %d, frames = %d, expected 5", m.steps, r.Frames())
	}

	// An exited runner is inert.
	feed(r, in, pressed, released)
	if m.steps != 5 {
		t.Error("exited runner kept stepping")
	}
}

func TestLongPressConsumesPress(t *testing.T) {
	m := &longStub{threshold: 5}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released)

	for i := 0; i < 15; i++ {
		if got := feed(r, in, pressed); got != PhaseRunning {
			t.Fatalf("held frame %d: phase = %s", i, got)
		}
	}
	if m.presses != 1 {
		t.Fatalf("LongPress called %d times, expected 1", m.presses)
	}

	if got := feed(r, in, released); got != PhaseRunning {
		t.Fatalf("release after long press: phase = %s, expected running", got)
	}

	if got := feed(r, in, pressed, released); got != PhaseExited {
		t.Errorf("short press: phase = %s, expected exited", got)
	}
	if m.presses != 1 {
		t.Errorf("short press triggered LongPress")
	}
}

func TestShortPressBelowThresholdExits(t *testing.T) {
	m := &longStub{threshold: 5}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released)

	if got := feed(r, in, pressed, pressed, pressed, pressed, released); got != PhaseExited {
		t.Errorf("phase = %s, expected exited", got)
	}
	if m.presses != 0 {
		t.Errorf("LongPress called %d times below the threshold", m.presses)
	}
}

func TestSelectOwnerLeavesOnExit(t *testing.T) {
	m := &ownerStub{longStub: longStub{threshold: 3}, exitAt: 12}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released)

	// Presses, releases and long holds all belong to the mode.
	if got := feed(r, in, pressed, released, pressed, pressed, pressed, pressed, released); got != PhaseRunning {
		t.Fatalf("phase = %s after select use, expected running", got)
	}
	if m.presses != 0 {
		t.Errorf("LongPress dispatched %d times to a select owner", m.presses)
	}

	if got := feed(r, in, released, released, released, released); got != PhaseRunning {
		t.Fatalf("phase = %s before the mode asked to leave", got)
	}
	if got := feed(r, in, released); got != PhaseExited {
		t.Errorf("phase = %s, expected exited", got)
	}
	if r.Frames() != 12 {
		t.Errorf("frames = %d, expected 12", r.Frames())
	}
}

func TestExitIgnoredWithoutOwnership(t *testing.T) {
	m := &exitStub{}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released)

	if got := feed(r, in, released, released); got != PhaseRunning {
		t.Errorf("phase = %s, expected running", got)
	}
}

func TestGameOverFreezes(t *testing.T) {
	m := &stubMode{gameOverAt: 3, delay: 400 * time.Millisecond}
	r, in, screen := startedRunner(t, m)
	feed(r, in, pressed, released)

	if got := feed(r, in, released, released, released); got != PhaseTerminal {
		t.Fatalf("phase = %s, expected terminal", got)
	}
	if !r.Last().State.GameOver {
		t.Error("Last() should report game over")
	}

	presented := screen.Frames()
	renders := m.renders
	for i := 0; i < 5; i++ {
		if got := feed(r, in, pressed, released); got != PhaseTerminal {
			t.Fatalf("select left the terminal phase: %s", got)
		}
	}

	if m.steps != 3 {
		t.Errorf("terminal phase stepped the mode: steps = %d", m.steps)
	}
	if m.renders != renders+10 || screen.Frames() != presented+10 {
		t.Errorf("terminal phase should keep redrawing every frame")
	}
	if r.Delay() != 400*time.Millisecond {
		t.Errorf("Delay() = %v, expected 400ms", r.Delay())
	}
}

func TestStartRestartsRun(t *testing.T) {
	m := &stubMode{gameOverAt: 1}
	r, in, _ := startedRunner(t, m)
	feed(r, in, pressed, released, released)
	if r.Phase() != PhaseTerminal {
		t.Fatalf("phase = %s, expected terminal", r.Phase())
	}

	r.Start(core.DefaultConfig())
	if r.Phase() != PhaseGate || r.Frames() != 0 || m.resets != 2 {
		t.Errorf("Start did not reset: phase=%s frames=%d resets=%d", r.Phase(), r.Frames(), m.resets)
	}
}

func TestRunDrivesFramesUntilExit(t *testing.T) {
	m := &stubMode{delay: 30 * time.Millisecond}
	in := &fakeInput{}
	screen := core.NewScreen(core.LCDWidth, core.LCDHeight)

	script := []core.Sample{pressed, released, released, released, pressed, released}
	var delays []time.Duration
	sleep := func(ctx context.Context, d time.Duration) error {
		delays = append(delays, d)
		in.Sample = script[len(delays)]
		return nil
	}

	r := New(m, in, screen, WithSleep(sleep))
	r.Start(core.DefaultConfig())
	in.Sample = script[0]

	if err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	expected := []time.Duration{GatePoll, 30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond, 30 * time.Millisecond}
	if len(delays) != len(expected) {
		t.Fatalf("slept %d times, expected %d: %v", len(delays), len(expected), delays)
	}
	for i := range expected {
		if delays[i] != expected[i] {
			t.Errorf("sleep %d = %v, expected %v", i, delays[i], expected[i])
		}
	}
	if m.steps != 4 {
		t.Errorf("steps = %d, expected 4", m.steps)
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	m := &stubMode{gameOverAt: 2}
	in := &fakeInput{}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	script := []core.Sample{pressed, released}
	sleeps := 0
	sleep := func(ctx context.Context, d time.Duration) error {
		sleeps++
		if sleeps < len(script) {
			in.Sample = script[sleeps]
		}
		if sleeps == 20 {
			cancel()
		}
		return ctx.Err()
	}

	r := New(m, in, core.NewScreen(core.LCDWidth, core.LCDHeight), WithSleep(sleep))
	r.Start(core.DefaultConfig())
	in.Sample = script[0]

	err := r.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run() = %v, expected context.Canceled", err)
	}
	if r.Phase() != PhaseTerminal {
		t.Errorf("phase = %s, expected terminal", r.Phase())
	}
}

func TestSleepCtx(t *testing.T) {
	if err := sleepCtx(context.Background(), time.Millisecond); err != nil {
		t.Errorf("sleepCtx() = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := sleepCtx(ctx, time.Hour); !errors.Is(err, context.Canceled) {
		t.Errorf("sleepCtx() on a cancelled context = %v", err)
	}
}
