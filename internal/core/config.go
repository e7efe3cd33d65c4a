package core

import "io"

// Logger is the subset of a structured logger the modes write to.
// *log.Logger from charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg interface{}, keyvals ...interface{})
	Info(msg interface{}, keyvals ...interface{})
	Warn(msg interface{}, keyvals ...interface{})
}

// RuntimeConfig contains configuration passed to modes at initialization.
type RuntimeConfig struct {
	ScreenW int   // Display width in pixels
	ScreenH int   // Display height in pixels
	Seed    int64 // RNG seed for deterministic gameplay

	Logger Logger    // Diagnostic log; nil means discard
	Diag   io.Writer // Diagnostic text sink (map dumps); nil means discard
}

// DefaultConfig returns a RuntimeConfig for the 84x48 LCD.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: LCDWidth,
		ScreenH: LCDHeight,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Log returns the configured logger, or a no-op logger.
func (c RuntimeConfig) Log() Logger {
	if c.Logger == nil {
		return nopLogger{}
	}
	return c.Logger
}

// DiagWriter returns the diagnostic sink, or io.Discard.
func (c RuntimeConfig) DiagWriter() io.Writer {
	if c.Diag == nil {
		return io.Discard
	}
	return c.Diag
}

type nopLogger struct{}

func (nopLogger) Debug(interface{}, ...interface{}) {}
func (nopLogger) Info(interface{}, ...interface{})  {}
func (nopLogger) Warn(interface{}, ...interface{})  {}

// GameState represents the current state of a mode.
// Returned by Game.State() to communicate status to the loop.
type GameState struct {
	Score    int  // Current score (per-level in the arcade mode)
	Level    int  // Current level, 0 for modes without levels
	GameOver bool // Terminal state reached; the loop freezes on it
}

// StepResult is returned by Game.Step() after each simulation frame.
type StepResult struct {
	State GameState
	Exit  bool // Mode asks the loop to leave; honored for select owners only
}
