package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/vovakirdan/tui-clicker/internal/settings"
)

// Ranges offered by the settings form.
const (
	maxFormDuration = 120
	maxFormInterval = 3000
	minFormWidth    = 60
	maxFormWidth    = 300
	minFormHeight   = 30
	maxFormHeight   = 150
)

// SettingsForm edits a settings snapshot. It is a sub-model driven by the
// game model while the start overlay asks for it.
type SettingsForm struct {
	form *huh.Form
	base settings.Settings

	duration string
	fakes    string
	interval string
	width    string
	height   string
	sound    bool
}

// NewSettingsForm creates a form prefilled from s.
func NewSettingsForm(s settings.Settings, width int) *SettingsForm {
	f := &SettingsForm{
		base:     s,
		duration: strconv.Itoa(s.GameDurationSeconds),
		fakes:    strconv.Itoa(s.NumFakeButtons),
		interval: strconv.Itoa(s.MoveIntervalMs),
		width:    strconv.Itoa(s.MainButtonStartWidth),
		height:   strconv.Itoa(s.MainButtonStartHeight),
		sound:    s.SoundEnabled,
	}

	keys := huh.NewDefaultKeyMap()
	keys.Quit = key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))

	f.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Game duration (seconds)").
				CharLimit(4).
				Value(&f.duration).
				Validate(intIn(settings.MinDurationSeconds, maxFormDuration)),
			huh.NewInput().
				Title("Fake buttons").
				CharLimit(2).
				Value(&f.fakes).
				Validate(intIn(0, settings.MaxFakeButtons)),
			huh.NewInput().
				Title("Move interval (ms)").
				CharLimit(5).
				Value(&f.interval).
				Validate(intIn(settings.MinMoveIntervalMs, maxFormInterval)),
			huh.NewInput().
				Title("Target width (px)").
				CharLimit(3).
				Value(&f.width).
				Validate(intIn(minFormWidth, maxFormWidth)),
			huh.NewInput().
				Title("Target height (px)").
				CharLimit(3).
				Value(&f.height).
				Validate(intIn(minFormHeight, maxFormHeight)),
			huh.NewConfirm().
				Title("Sound").
				Affirmative("On").
				Negative("Off").
				Value(&f.sound),
		).Title("Settings"),
	).
		WithKeyMap(keys).
		WithShowHelp(true).
		WithWidth(formWidth(width))

	return f
}

func formWidth(screenW int) int {
	if screenW <= 0 || screenW > 50 {
		return 50
	}
	return screenW
}

// intIn validates that the input is an integer in [lo, hi].
func intIn(lo, hi int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.New("enter a whole number")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

// Init starts the form.
func (f *SettingsForm) Init() tea.Cmd {
	return f.form.Init()
}

// Update forwards a message to the form.
func (f *SettingsForm) Update(msg tea.Msg) tea.Cmd {
	m, cmd := f.form.Update(msg)
	if form, ok := m.(*huh.Form); ok {
		f.form = form
	}
	return cmd
}

// View renders the form.
func (f *SettingsForm) View() string {
	return f.form.View()
}

// Submitted reports whether the player confirmed the form.
func (f *SettingsForm) Submitted() bool {
	return f.form.State == huh.StateCompleted
}

// Cancelled reports whether the player backed out of the form.
func (f *SettingsForm) Cancelled() bool {
	return f.form.State == huh.StateAborted
}

// Result returns the edited snapshot. Fields that don't parse keep their
// previous values.
func (f *SettingsForm) Result() settings.Settings {
	return f.base.With(
		settings.WithDuration(atoiOr(f.duration, f.base.GameDurationSeconds)),
		settings.WithFakeButtons(atoiOr(f.fakes, f.base.NumFakeButtons)),
		settings.WithMoveInterval(atoiOr(f.interval, f.base.MoveIntervalMs)),
		settings.WithMainButtonSize(
			atoiOr(f.width, f.base.MainButtonStartWidth),
			atoiOr(f.height, f.base.MainButtonStartHeight),
		),
		settings.WithSound(f.sound),
	)
}

func atoiOr(v string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return fallback
	}
	return n
}
