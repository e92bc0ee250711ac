package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the coarse session state reported to the platform.
type Phase string

const (
	PhaseOverlay     Phase = "overlay"
	PhaseHelp        Phase = "help"
	PhaseCountdown   Phase = "countdown"
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseQuitConfirm Phase = "quit-confirm"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int   // Current score
	HighScore int   // Best score known to this session
	TimeLeft  int   // Seconds remaining
	Phase     Phase // Where the session state machine is
	GameOver  bool  // Whether the last round has ended and its summary is shown
	Paused    bool  // Whether the round is paused
}

// EventKind identifies a side effect the platform must carry out.
type EventKind int

const (
	EventSoundClick EventKind = iota
	EventSoundFake
	EventSoundGameOver
	EventGameOver         // Round ended; Score and Duration are set
	EventSettingsChanged  // Settings snapshot changed in-game (mute); persist it
	EventSettingsRequest  // Player asked to edit settings from the overlay
	EventQuit             // Player confirmed quitting
	EventAchievement      // Achievement unlocked; Text is set
)

// Event is a side effect produced by a simulation step.
type Event struct {
	Kind     EventKind
	Score    int
	Duration int
	Text     string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
