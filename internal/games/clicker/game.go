// Package clicker implements the click-the-moving-button game.
// The player clicks a target that keeps jumping around the board while
// decoys take points away. Each registered mode is the same session
// controller with different settings layered on top.
package clicker

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-clicker/internal/anim"
	"github.com/vovakirdan/tui-clicker/internal/buttons"
	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/gamestate"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/sched"
	"github.com/vovakirdan/tui-clicker/internal/settings"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

// Captions and messages.
const (
	TargetText          = "Click me!"
	TargetTooltip       = "Click me to score points!"
	AchievementText     = "Achievement: Quick Clicker!"
	achievementShowTime = 2 * time.Second
)

// HUD text size bounds. Terminals have one font size, so the setting widens
// the padding around the target's caption instead.
const (
	MinFontSize     = 10
	MaxFontSize     = 28
	DefaultFontSize = 16
	FontSizeStep    = 2
	fontPerPadding  = 6
)

// Game is a single player session.
type Game struct {
	id     string
	title  string
	preset settings.Preset
	opts   registry.Options
	log    *log.Logger

	cfg      core.RuntimeConfig
	tuning   config.ClickerConfig
	sizer    *config.Sizer
	settings settings.Settings
	tick     time.Duration
	rng      *rand.Rand

	sched  *sched.Scheduler
	anim   *anim.Manager
	panel  *widget.Panel
	decoys *buttons.Manager
	state  *gamestate.State

	target    *widget.Button
	countdown *widget.Label

	startBtn    *widget.Button
	settingsBtn *widget.Button
	helpBtn     *widget.Button
	resumeBtn   *widget.Button
	yesBtn      *widget.Button
	noBtn       *widget.Button
	muteBtn     *widget.Button

	phase       core.Phase
	returnPhase core.Phase // Where a rejected quit confirmation goes back to
	over        bool       // The overlay shows the summary of a finished round
	lastScore   int
	achieved    bool
	fontSize    int
	notice      string // Overlay notice, e.g. unreadable settings
	hudNote     string // Transient HUD message
	hudTimer    *sched.Timer

	gameTimer *sched.Timer
	moveTimer *sched.Timer

	events []core.Event
}

// New creates a session for a mode. The preset is layered over the
// player's settings.
func New(id, title string, preset settings.Preset, opts registry.Options) *Game {
	if opts.Settings == (settings.Settings{}) {
		opts.Settings = settings.Defaults()
	}
	if opts.Tuning == (config.ClickerConfig{}) {
		opts.Tuning = config.DefaultClickerConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		id:       id,
		title:    title,
		preset:   preset,
		opts:     opts,
		log:      logger.With("mode", id),
		tuning:   opts.Tuning,
		sizer:    config.NewSizer(opts.Tuning),
		settings: settings.ApplyPreset(opts.Settings, preset),
		fontSize: DefaultFontSize,
	}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name of the mode.
func (g *Game) Title() string {
	return g.title
}

// Settings returns the active snapshot.
func (g *Game) Settings() settings.Settings {
	return g.settings
}

// Reset builds a fresh session for the given screen and shows the start overlay.
// Called again while the overlay is up, it is a re-layout and the summary of
// the last round stays on screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	relayout := g.state != nil && g.phase == core.PhaseOverlay
	over, lastScore := g.over, g.lastScore

	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.cfg = cfg
	g.tick = time.Second / time.Duration(cfg.TickRate)
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.sched = sched.New()
	g.anim = anim.New(g.sched, g.tuning, g.rng)
	g.panel = widget.NewPanel(core.NewRect(0, 0, cfg.ScreenW, cfg.ScreenH), core.ColorBackground)

	g.target = widget.NewButton(TargetText, core.Rect{}, core.ColorTarget)
	g.target.Tooltip = TargetTooltip
	g.target.OnClick(g.onTargetClick)
	g.panel.AddButton(g.target)

	g.decoys = buttons.New(g.panel, g.tuning.Layout, g.rng, g.onDecoyClick)
	g.countdown = widget.NewLabel("", 0, 0, core.ColorText)
	g.buildControls()

	g.phase = core.PhaseOverlay
	g.returnPhase = core.PhaseOverlay
	g.over, g.lastScore = false, 0
	if relayout {
		g.over, g.lastScore = over, lastScore
	}
	g.achieved = false
	g.notice = g.opts.Notice
	g.hudNote = ""
	g.hudTimer = nil
	g.gameTimer, g.moveTimer = nil, nil
	g.events = nil

	g.newState()
	g.decoys.CreateButtons(g.settings.NumFakeButtons)
	g.resizeTarget()
	g.anim.Place(g.target, g.board())
	g.decoys.MoveButtons()
	g.decoys.Recolor()
	g.applyVisibility()
}

// Step handles one tick of input, then advances every timer by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	g.handleActions(in)
	for _, p := range in.Clicks {
		g.handleClick(p.X, p.Y)
	}
	g.sched.Advance(g.tick)

	return core.StepResult{State: g.State(), Events: g.events}
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Phase:    g.phase,
		GameOver: g.over,
		Paused:   g.phase == core.PhasePaused,
	}
	if g.state != nil {
		st.Score = g.state.Score()
		st.HighScore = g.state.HighScore()
		st.TimeLeft = g.state.TimeLeft()
	}
	return st
}

// ApplySettings replaces the settings snapshot while the overlay is shown:
// a new round state with the new duration, the high score reloaded, the
// decoys rebuilt and the target back at its starting size.
func (g *Game) ApplySettings(s settings.Settings) bool {
	if g.phase != core.PhaseOverlay {
		return false
	}
	g.settings = s.Normalize()
	g.anim.CancelAll()
	g.newState()
	g.decoys.CreateButtons(g.settings.NumFakeButtons)
	g.decoys.MoveButtons()
	g.decoys.Recolor()
	g.resizeTarget()
	g.moveTimer.Reset(g.settings.MoveInterval())
	g.applyVisibility()
	g.log.Info("settings applied",
		"duration", g.settings.GameDurationSeconds,
		"decoys", g.settings.NumFakeButtons,
		"move_interval_ms", g.settings.MoveIntervalMs)
	return true
}

// newState replaces the round state and reloads the stored high score.
func (g *Game) newState() {
	g.state = gamestate.New(g.settings.GameDurationSeconds)
	g.state.Subscribe(gamestate.Listener{
		OnScoreChanged: func(score, _ int) { g.checkAchievement(score) },
	})
	g.loadHighScore()
}

func (g *Game) loadHighScore() {
	if g.opts.HighScorePath == "" {
		return
	}
	if err := g.state.LoadHighScore(g.opts.HighScorePath); err != nil {
		g.log.Warn("high score unavailable, starting from 0", "err", err)
	}
}

func (g *Game) saveHighScore() {
	if g.opts.HighScorePath == "" {
		return
	}
	if err := g.state.SaveHighScore(g.opts.HighScorePath); err != nil {
		g.log.Error("could not save high score", "err", err)
	}
	g.loadHighScore()
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

func (g *Game) sound(kind core.EventKind) {
	if g.settings.SoundEnabled {
		g.emit(core.Event{Kind: kind})
	}
}

// board is the area under the HUD where buttons live.
func (g *Game) board() core.Rect {
	return g.panel.Bounds.Inset(g.tuning.Layout.TopMarginRows, 0, g.tuning.Layout.BottomMarginRows, 0)
}

// captionPadding is the space kept on each side of the target's caption.
func (g *Game) captionPadding() int {
	return (g.fontSize - MinFontSize) / fontPerPadding
}

// resizeTarget sizes the target for the current score, keeping it on the board.
func (g *Game) resizeTarget() {
	board := g.board()
	minW := g.target.MinWidth() + 2*g.captionPadding()
	w, h := g.sizer.TargetCells(g.settings.MainButtonStartWidth, g.settings.MainButtonStartHeight, g.state.Score(), minW)
	w = core.Clamp(w, 1, core.Max(1, board.W))
	h = core.Clamp(h, 1, core.Max(1, board.H))

	r := g.target.Rect
	r.W, r.H = w, h
	r.X = core.Clamp(r.X, board.X, core.Max(board.X, board.Right()-w))
	r.Y = core.Clamp(r.Y, board.Y, core.Max(board.Y, board.Bottom()-h))
	g.target.Rect = r
}
