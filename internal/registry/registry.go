// Package registry provides a global registry for mode factories.
// Modes register themselves in init() functions, allowing the hub menu
// and the CLI to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dignitasium/Space-Hub/internal/core"
)

// Game is the interface every hub mode implements.
// Modes contain pure logic with no terminal dependencies; the loop owns
// input polling, exit handling, and frame pacing.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "explore", "invade").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns the menu label (e.g., "Mars Explorer").
	Title() string

	// Reset initializes or resets the mode state.
	// Called every time the mode is entered from the menu.
	Reset(cfg core.RuntimeConfig)

	// Intro returns the instruction lines shown before play starts,
	// one per text row starting at row 1.
	Intro() []string

	// Step advances the simulation by one frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame, including Clear and Present.
	Render(dst core.Renderer)

	// State returns the current mode state (score, level, game over).
	State() core.GameState

	// FrameDelay returns the pause the loop sleeps after the current frame.
	FrameDelay() time.Duration
}

// LongPresser is implemented by modes that react to the select button
// being held, instead of exiting on its release.
type LongPresser interface {
	// LongPressFrames returns how many consecutive held frames trigger LongPress.
	LongPressFrames() int

	// LongPress is called once per hold that reaches the threshold.
	LongPress()
}

// SelectOwner is implemented by modes that read the select button
// themselves. The loop never exits on select for them and skips the
// long-press dispatch; they leave by setting StepResult.Exit.
type SelectOwner interface {
	OwnsSelect() bool
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from a mode's init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered modes, sorted by ID.
// The IDs are chosen so this is also the hub menu order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new mode by its ID.
// Returns an error if the mode ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
