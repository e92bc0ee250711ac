package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/settings"
	"github.com/vovakirdan/tui-clicker/internal/storage"
)

// Deps is what game sessions need from their host. The local program and
// each SSH session own one; models share it by pointer so settings edits
// made in one game carry over to the next one picked from the menu.
type Deps struct {
	Store        *storage.Store     // Nil disables score history
	Options      registry.Options   // Settings, tuning and high score file for new games
	SettingsPath string             // Empty keeps settings edits in memory
	SessionID    string             // Recorded with every finished round
	Bell         io.Writer          // Receives the terminal bell; nil silences sound
	Renderer     *lipgloss.Renderer // Nil uses the process default
}

func (d *Deps) logger() *log.Logger {
	if d.Options.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Options.Logger
}

// NewGame creates a game for the given mode with the host's options.
func (d *Deps) NewGame(mode string) (registry.Game, error) {
	return registry.Create(mode, d.Options)
}

// GameModel is the Bubble Tea model that runs one game session. It maps
// input, drives the fixed tick and carries out the events the game emits.
type GameModel struct {
	game    registry.Game
	deps    *Deps
	screen  *core.Screen
	painter *Painter
	config  core.RuntimeConfig
	input   core.InputFrame
	keys    *KeyMapper
	state   core.GameState
	form    *SettingsForm

	embedded      bool // Quitting the game returns to a menu instead of exiting
	pendingResize bool // Rebuild the layout next time the start overlay is up
	quitting      bool
	backToMenu    bool
}

// NewGameModel creates a new Bubble Tea model for the given game.
func NewGameModel(game registry.Game, deps *Deps, cfg core.RuntimeConfig, embedded bool) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:     game,
		deps:     deps,
		screen:   core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		painter:  NewPainter(deps.Renderer),
		config:   cfg,
		input:    core.NewInputFrame(),
		keys:     NewKeyMapper(),
		embedded: embedded,
	}
}

// Init initializes the model and starts the game.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.form == nil {
			m.keys.MapMouseToFrame(msg, &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	// The settings form drives itself with its own messages.
	if m.form != nil {
		cmd := m.form.Update(msg)
		return m.checkForm(cmd)
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if m.form != nil {
		cmd := m.form.Update(msg)
		return m.checkForm(cmd)
	}

	m.keys.MapKeyToFrame(msg, &m.input)
	return m, nil
}

// handleResize resizes the screen buffer. A round in progress keeps its
// layout; the session is rebuilt for the new size once the overlay is back.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.config.ScreenW && msg.Height == m.config.ScreenH {
		return m, nil
	}
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.pendingResize = true
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}

	if m.pendingResize && m.form == nil && m.game.State().Phase == core.PhaseOverlay {
		m.game.Reset(m.config)
		m.pendingResize = false
	}

	// Input is ignored while the settings form has focus.
	if m.form != nil {
		m.input.Clear()
	}

	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	for _, e := range result.Events {
		cmds = append(cmds, m.handleEvent(e))
	}

	if m.quitting {
		return m, tea.Quit
	}
	if m.backToMenu {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}

// handleEvent carries out one side effect requested by the game.
func (m *GameModel) handleEvent(e core.Event) tea.Cmd {
	switch e.Kind {
	case core.EventSoundClick, core.EventSoundFake, core.EventSoundGameOver:
		return bellCmd(m.deps.Bell)

	case core.EventGameOver:
		m.saveScore(e)

	case core.EventSettingsChanged:
		m.persistSettings(m.game.Settings())

	case core.EventSettingsRequest:
		m.form = NewSettingsForm(m.game.Settings(), m.config.ScreenW)
		return m.form.Init()

	case core.EventAchievement:
		m.deps.logger().Info("achievement", "mode", m.game.ID(), "text", e.Text)

	case core.EventQuit:
		if m.embedded {
			m.backToMenu = true
		} else {
			m.quitting = true
		}
	}
	return nil
}

// checkForm applies or drops the settings form once the player is done with it.
func (m GameModel) checkForm(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	switch {
	case m.form.Submitted():
		s := m.form.Result()
		m.form = nil
		if m.game.ApplySettings(s) {
			m.persistSettings(m.game.Settings())
		}
		return m, nil
	case m.form.Cancelled():
		m.form = nil
		return m, nil
	}
	return m, cmd
}

// saveScore records a finished round in the history.
func (m *GameModel) saveScore(e core.Event) {
	if m.deps.Store == nil {
		return
	}
	_, err := m.deps.Store.SaveScore(storage.ScoreEntry{
		Mode:      m.game.ID(),
		Score:     e.Score,
		SessionID: m.deps.SessionID,
		Duration:  e.Duration,
	})
	if err != nil {
		m.deps.logger().Error("could not record round", "mode", m.game.ID(), "err", err)
	}
}

// persistSettings folds an edited snapshot into the player's settings and
// writes them out. Only classic plays the player's own settings, so other
// modes contribute the sound toggle alone.
func (m *GameModel) persistSettings(s settings.Settings) {
	base := s
	if m.game.ID() != string(settings.PresetClassic) {
		base = m.deps.Options.Settings.With(settings.WithSound(s.SoundEnabled))
	}
	m.deps.Options.Settings = base

	if m.deps.SettingsPath == "" {
		return
	}
	if err := settings.Save(m.deps.SettingsPath, base); err != nil {
		m.deps.logger().Error("could not save settings", "path", m.deps.SettingsPath, "err", err)
		return
	}
	m.deps.logger().Debug("settings saved", "path", m.deps.SettingsPath)
}

// bellCmd rings the terminal bell.
func bellCmd(w io.Writer) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		_, _ = io.WriteString(w, "\a")
		return nil
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	if m.form != nil {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, m.form.View())
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	return m.painter.Render(m.screen)
}

// State returns the game state seen on the last tick.
func (m GameModel) State() core.GameState {
	return m.state
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// SettingsOpen reports whether the settings form has focus.
func (m GameModel) SettingsOpen() bool {
	return m.form != nil
}

// Run starts the Bubble Tea program for a single game.
func Run(game registry.Game, deps *Deps, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, deps, cfg, false)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks are the main input
	)

	_, err := p.Run()
	return err
}
