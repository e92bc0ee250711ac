// Package settings holds the player's gameplay preferences as an immutable
// snapshot, plus persistence to a properties-style file in the home directory.
package settings

import (
	"fmt"
	"strings"
	"time"
)

// FileName is the settings file created in the user's home directory.
const FileName = ".ctb_settings"

// Limits applied by Normalize.
const (
	MinDurationSeconds = 10
	MaxFakeButtons     = 10
	MinMoveIntervalMs  = 200
	MinButtonWidth     = 40
	MinButtonHeight    = 20
)

// Settings is a snapshot of gameplay options. It is a value type: edits
// produce a new snapshot that replaces the active one as a whole.
type Settings struct {
	GameDurationSeconds   int
	NumFakeButtons        int
	MoveIntervalMs        int
	SoundEnabled          bool
	MainButtonStartWidth  int // Pixels; converted to cells by the layout
	MainButtonStartHeight int
}

// Defaults returns the out-of-the-box settings.
func Defaults() Settings {
	return Settings{
		GameDurationSeconds:   30,
		NumFakeButtons:        3,
		MoveIntervalMs:        1000,
		SoundEnabled:          true,
		MainButtonStartWidth:  140,
		MainButtonStartHeight: 60,
	}
}

// Option tweaks a snapshot under construction.
type Option func(*Settings)

// New builds a normalized snapshot from the defaults and the given options.
func New(opts ...Option) Settings {
	s := Defaults()
	for _, opt := range opts {
		opt(&s)
	}
	return s.Normalize()
}

// With returns a normalized copy of s with the options applied.
func (s Settings) With(opts ...Option) Settings {
	for _, opt := range opts {
		opt(&s)
	}
	return s.Normalize()
}

// WithDuration sets the round length in seconds.
func WithDuration(seconds int) Option {
	return func(s *Settings) { s.GameDurationSeconds = seconds }
}

// WithFakeButtons sets the number of decoys.
func WithFakeButtons(n int) Option {
	return func(s *Settings) { s.NumFakeButtons = n }
}

// WithMoveInterval sets how often buttons move on their own, in milliseconds.
func WithMoveInterval(ms int) Option {
	return func(s *Settings) { s.MoveIntervalMs = ms }
}

// WithSound turns sound effects on or off.
func WithSound(enabled bool) Option {
	return func(s *Settings) { s.SoundEnabled = enabled }
}

// WithMainButtonSize sets the target button's starting size in pixels.
func WithMainButtonSize(width, height int) Option {
	return func(s *Settings) {
		s.MainButtonStartWidth = width
		s.MainButtonStartHeight = height
	}
}

// Normalize clamps every field into its playable range.
func (s Settings) Normalize() Settings {
	if s.GameDurationSeconds < MinDurationSeconds {
		s.GameDurationSeconds = MinDurationSeconds
	}
	if s.NumFakeButtons < 0 {
		s.NumFakeButtons = 0
	}
	if s.NumFakeButtons > MaxFakeButtons {
		s.NumFakeButtons = MaxFakeButtons
	}
	if s.MoveIntervalMs < MinMoveIntervalMs {
		s.MoveIntervalMs = MinMoveIntervalMs
	}
	if s.MainButtonStartWidth < MinButtonWidth {
		s.MainButtonStartWidth = MinButtonWidth
	}
	if s.MainButtonStartHeight < MinButtonHeight {
		s.MainButtonStartHeight = MinButtonHeight
	}
	return s
}

// MoveInterval returns the move interval as a duration.
func (s Settings) MoveInterval() time.Duration {
	return time.Duration(s.MoveIntervalMs) * time.Millisecond
}

// Preset names a registered settings variant.
type Preset string

const (
	PresetClassic   Preset = "classic"
	PresetQuick     Preset = "quick"
	PresetChallenge Preset = "challenge"
)

// ParsePreset converts a name to a Preset.
func ParsePreset(name string) (Preset, error) {
	switch p := Preset(strings.ToLower(strings.TrimSpace(name))); p {
	case "", PresetClassic:
		return PresetClassic, nil
	case PresetQuick, PresetChallenge:
		return p, nil
	default:
		return "", fmt.Errorf("settings: unknown preset %q", name)
	}
}

// ApplyPreset layers a preset over the player's own settings. Classic keeps
// them untouched; the other presets override pacing but keep sound.
func ApplyPreset(base Settings, p Preset) Settings {
	switch p {
	case PresetQuick:
		return base.With(
			WithDuration(15),
			WithFakeButtons(1),
			WithMoveInterval(1500),
		)
	case PresetChallenge:
		return base.With(
			WithDuration(60),
			WithFakeButtons(5),
			WithMoveInterval(800),
			WithMainButtonSize(80, 40),
		)
	default:
		return base.Normalize()
	}
}
