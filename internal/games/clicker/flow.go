package clicker

import (
	"time"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/sched"
	"github.com/vovakirdan/tui-clicker/internal/settings"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

func (g *Game) handleActions(in core.InputFrame) {
	if in.Has(core.ActionQuit) {
		g.emit(core.Event{Kind: core.EventQuit})
		return
	}
	if in.Has(core.ActionFontUp) {
		g.adjustFont(FontSizeStep)
	}
	if in.Has(core.ActionFontDown) {
		g.adjustFont(-FontSizeStep)
	}

	switch g.phase {
	case core.PhaseQuitConfirm:
		switch {
		case in.Has(core.ActionYes), in.Has(core.ActionConfirm):
			g.emit(core.Event{Kind: core.EventQuit})
		case in.Has(core.ActionNo), in.Has(core.ActionBack):
			g.cancelQuit()
		}
		return
	case core.PhaseHelp:
		if in.Has(core.ActionBack) || in.Has(core.ActionConfirm) || in.Has(core.ActionHelp) {
			g.closeHelp()
		}
		return
	}

	if in.Has(core.ActionBack) {
		g.askQuit()
		return
	}
	if in.Has(core.ActionMute) {
		g.toggleMute()
	}

	switch g.phase {
	case core.PhaseOverlay:
		switch {
		case in.Has(core.ActionConfirm):
			g.startRound()
		case in.Has(core.ActionSettings):
			g.requestSettings()
		case in.Has(core.ActionHelp):
			g.openHelp()
		}
	case core.PhasePlaying:
		if in.Has(core.ActionPause) {
			g.pause()
		}
	case core.PhasePaused:
		if in.Has(core.ActionPause) || in.Has(core.ActionConfirm) {
			g.resume()
		}
	}
}

// handleClick dispatches a click to the top-most button under it. Overlay
// controls sit above the board.
func (g *Game) handleClick(x, y int) {
	for _, b := range g.controls() {
		if b.Clickable() && b.Rect.Contains(x, y) {
			b.Click()
			return
		}
	}
	if g.phase != core.PhasePlaying {
		return
	}
	if b := g.panel.ButtonAt(x, y); b != nil {
		b.Click()
	}
}

// startRound resets the round and runs the countdown.
func (g *Game) startRound() {
	g.anim.CancelAll()
	sched.StopAll(g.gameTimer, g.moveTimer)
	g.gameTimer, g.moveTimer = nil, nil

	g.state.Reset(g.settings.GameDurationSeconds)
	g.over = false
	g.achieved = false
	g.notice = ""

	g.resizeTarget()
	g.anim.Place(g.target, g.board())
	g.decoys.MoveButtons()
	g.recolor()

	g.phase = core.PhaseCountdown
	g.panel.RemoveLabel(g.countdown)
	g.panel.AddLabel(g.countdown)
	g.applyVisibility()
	g.anim.AnimateCountdown(g.countdown, g.beginPlay)
}

// beginPlay starts the game and move timers once the countdown is over.
func (g *Game) beginPlay() {
	g.panel.RemoveLabel(g.countdown)
	g.phase = core.PhasePlaying
	g.gameTimer = g.sched.Every(time.Duration(g.tuning.Timing.GameTickMs)*time.Millisecond, g.onGameTick)
	g.moveTimer = g.sched.Every(g.settings.MoveInterval(), g.onMoveTick)
	g.applyVisibility()
	g.log.Debug("round started", "duration", g.settings.GameDurationSeconds)
}

func (g *Game) onGameTick() {
	g.state.DecrementTime()
	if g.state.TimeLeft() <= 0 {
		g.gameOver()
	}
}

func (g *Game) onMoveTick() {
	g.moveAll()
	g.recolor()
}

// moveAll sends the target to a new spot and scatters the decoys.
func (g *Game) moveAll() {
	g.anim.FadeAndMove(g.target, g.board(), nil)
	g.decoys.MoveButtons()
}

// recolor picks a new board background and decoy shades. The target keeps
// its colour so it stays recognizable.
func (g *Game) recolor() {
	g.panel.Background = core.Pastel[g.rng.Intn(len(core.Pastel))].Blend(core.ColorBackground, 0.35)
	g.decoys.Recolor()
}

func (g *Game) onTargetClick() {
	hit := g.tuning.Scoring.HitPoints
	for i := 0; i < hit; i++ {
		g.state.IncrementScore()
	}
	g.sound(core.EventSoundClick)
	g.anim.Highlight(g.target)
	g.showFloating(g.target, hit)
	g.resizeTarget()
	g.moveAll()
	g.recolor()
}

func (g *Game) onDecoyClick(decoy *widget.Button) {
	penalty := g.tuning.Scoring.DecoyPenalty
	g.state.DecrementScore(penalty)
	g.sound(core.EventSoundFake)
	g.showFloating(decoy, -penalty)
	g.moveAll()
	g.recolor()
}

// showFloating puts a score label just above b.
func (g *Game) showFloating(b *widget.Button, delta int) {
	cx, _ := b.Rect.Center()
	y := b.Rect.Y - 1
	if y < g.board().Y {
		y = b.Rect.Y
	}
	g.anim.ShowFloatingScore(g.panel, delta, cx, y)
}

func (g *Game) checkAchievement(score int) {
	if g.achieved || score < g.tuning.Scoring.AchievementThreshold {
		return
	}
	g.achieved = true
	g.emit(core.Event{Kind: core.EventAchievement, Text: AchievementText})
	g.flash(AchievementText)
}

// flash shows a message in the HUD for a moment.
func (g *Game) flash(text string) {
	g.hudNote = text
	g.hudTimer.Stop()
	g.hudTimer = g.sched.After(achievementShowTime, func() {
		g.hudNote = ""
	})
}

// gameOver ends the round, persists the high score and shows the summary.
func (g *Game) gameOver() {
	sched.StopAll(g.gameTimer, g.moveTimer)
	g.gameTimer, g.moveTimer = nil, nil
	g.anim.CancelAll()

	g.lastScore = g.state.Score()
	g.saveHighScore()

	g.sound(core.EventSoundGameOver)
	g.emit(core.Event{
		Kind:     core.EventGameOver,
		Score:    g.lastScore,
		Duration: g.settings.GameDurationSeconds,
	})
	g.log.Info("round over", "score", g.lastScore, "high_score", g.state.HighScore())
	g.log.Debug("timers after round", "scheduled", g.sched.Len())

	g.over = true
	g.phase = core.PhaseOverlay
	g.applyVisibility()
}

// freeze stops everything that moves on the board, keeping elapsed time.
func (g *Game) freeze() {
	sched.PauseAll(g.gameTimer, g.moveTimer, g.hudTimer)
	g.anim.PauseAll()
}

func (g *Game) thaw() {
	sched.ResumeAll(g.gameTimer, g.moveTimer, g.hudTimer)
	g.anim.ResumeAll()
}

func (g *Game) pause() {
	g.phase = core.PhasePaused
	g.freeze()
	g.applyVisibility()
}

func (g *Game) resume() {
	g.phase = core.PhasePlaying
	g.thaw()
	g.applyVisibility()
}

// askQuit shows the quit confirmation, freezing a live round meanwhile.
func (g *Game) askQuit() {
	g.returnPhase = g.phase
	switch g.phase {
	case core.PhasePlaying, core.PhaseCountdown:
		g.freeze()
	}
	g.phase = core.PhaseQuitConfirm
	g.applyVisibility()
}

func (g *Game) cancelQuit() {
	g.phase = g.returnPhase
	switch g.phase {
	case core.PhasePlaying, core.PhaseCountdown:
		g.thaw()
	}
	g.applyVisibility()
}

func (g *Game) openHelp() {
	g.phase = core.PhaseHelp
	g.applyVisibility()
}

func (g *Game) closeHelp() {
	g.phase = core.PhaseOverlay
	g.applyVisibility()
}

func (g *Game) requestSettings() {
	g.emit(core.Event{Kind: core.EventSettingsRequest})
}

func (g *Game) toggleMute() {
	g.settings = g.settings.With(settings.WithSound(!g.settings.SoundEnabled))
	g.emit(core.Event{Kind: core.EventSettingsChanged})
	g.applyVisibility()
}

func (g *Game) adjustFont(delta int) {
	g.fontSize = core.Clamp(g.fontSize+delta, MinFontSize, MaxFontSize)
	g.resizeTarget()
}

// FontSize returns the HUD text size setting.
func (g *Game) FontSize() int {
	return g.fontSize
}
