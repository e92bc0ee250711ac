// Package registry provides a global registry for game mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/settings"
)

// Game is the interface every mode's session controller implements.
// Games contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns the mode identifier (e.g., "classic", "quick").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh session sized to the screen and shows the start overlay.
	Reset(cfg core.RuntimeConfig)

	// Step advances the session by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current session into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current session state.
	State() core.GameState

	// Settings returns the active settings snapshot.
	Settings() settings.Settings

	// ApplySettings replaces the settings snapshot. It only takes effect
	// while the overlay is shown and reports whether it did.
	ApplySettings(s settings.Settings) bool
}

// Options configure a new game instance.
type Options struct {
	Settings      settings.Settings    // The player's own settings; modes may layer a preset on top
	Tuning        config.ClickerConfig // Timing, layout and scoring
	HighScorePath string               // Empty disables high score persistence
	Notice        string               // Shown on the start overlay until the first round
	Logger        *log.Logger          // Nil discards log output
}

// ModeInfo contains metadata about a registered mode.
type ModeInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a mode.
type Factory func(opts Options) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Typically called from an init() function.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f(Options{Settings: settings.Defaults(), Tuning: config.DefaultClickerConfig()})
	titles[id] = g.Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []ModeInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ModeInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ModeInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its mode ID.
// Returns an error if the mode ID is not registered.
func Create(id string, opts Options) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}

	return f(opts), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
