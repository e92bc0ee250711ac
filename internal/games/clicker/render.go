package clicker

import (
	"fmt"

	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

// Overlay texts.
const (
	appTitle        = "Click the Button Game"
	startText       = "Start Game"
	playAgainText   = "Play Again"
	settingsText    = "Settings"
	helpText        = "?"
	resumeText      = "Resume"
	pausedText      = "Paused"
	gameOverText    = "Game Over!"
	quitQuestion    = "Are you sure you want to quit?"
	soundOnText     = "Sound: on"
	soundOffText    = "Sound: off"
	hudRows         = 2
	overlayMaxWidth = 60
)

var helpLines = []string{
	"Click the blue button as many times as you can",
	"before time runs out!",
	"Avoid the fake buttons, they subtract points.",
	"",
	"Enter  start / resume      Esc  quit",
	"P      pause / resume      S    settings",
	"M      mute                +/-  text size",
	"",
	"Press Enter or Esc to return",
}

func (g *Game) buildControls() {
	mk := func(text, tooltip string, color core.Color, onClick func()) *widget.Button {
		b := widget.NewButton(text, core.Rect{}, color)
		b.Tooltip = tooltip
		b.OnClick(onClick)
		return b
	}
	g.startBtn = mk(startText, "Start or restart the game", core.ColorTargetDark, g.startRound)
	g.settingsBtn = mk(settingsText, "Change game settings", core.ColorOverlay.Brighter(), g.requestSettings)
	g.helpBtn = mk(helpText, "How to play", core.ColorOverlay.Brighter(), g.openHelp)
	g.resumeBtn = mk(resumeText, "Continue the round", core.ColorTargetDark, g.resume)
	g.yesBtn = mk("Yes", "", core.ColorDecoy, func() { g.emit(core.Event{Kind: core.EventQuit}) })
	g.noBtn = mk("No", "", core.ColorTargetDark, g.cancelQuit)
	g.muteBtn = mk(soundOnText, "Toggle sound effects", core.ColorOverlay.Brighter(), g.toggleMute)
}

// controls returns the buttons drawn above the board, top-most first.
func (g *Game) controls() []*widget.Button {
	return []*widget.Button{g.yesBtn, g.noBtn, g.resumeBtn, g.startBtn, g.settingsBtn, g.helpBtn, g.muteBtn}
}

// boardVisible reports whether the target and decoys are drawn.
func (g *Game) boardVisible() bool {
	phase := g.phase
	if phase == core.PhaseQuitConfirm {
		phase = g.returnPhase
	}
	switch phase {
	case core.PhaseCountdown, core.PhasePlaying, core.PhasePaused:
		return true
	}
	return false
}

// applyVisibility shows, enables and lays out every button for the phase.
func (g *Game) applyVisibility() {
	shown := g.boardVisible()
	live := g.phase == core.PhasePlaying
	g.target.Hidden = !shown
	g.target.Enabled = live
	g.decoys.SetHidden(!shown)
	g.decoys.SetEnabled(live)

	for _, b := range g.controls() {
		b.Hidden = true
	}

	w := g.panel.Bounds.W
	g.muteBtn.Text = soundOnText
	if !g.settings.SoundEnabled {
		g.muteBtn.Text = soundOffText
	}
	g.muteBtn.Rect = core.NewRect(core.Max(0, w-len(soundOffText)-3), 1, len(soundOffText)+2, 1)
	g.muteBtn.Hidden = false
	g.muteBtn.Enabled = g.phase != core.PhaseQuitConfirm

	box := g.overlayBox()
	row := box.Bottom() - 2
	switch g.phase {
	case core.PhaseOverlay:
		g.startBtn.Text = startText
		if g.over {
			g.startBtn.Text = playAgainText
		}
		layoutRow(box, row, g.startBtn, g.settingsBtn, g.helpBtn)
	case core.PhasePaused:
		layoutRow(box, row, g.resumeBtn)
	case core.PhaseQuitConfirm:
		layoutRow(box, row, g.yesBtn, g.noBtn)
	}
}

// layoutRow centres buttons on one row of box and makes them visible.
func layoutRow(box core.Rect, y int, bs ...*widget.Button) {
	const gap = 2
	total := -gap
	for _, b := range bs {
		total += b.MinWidth() + 2 + gap
	}
	x := box.X + (box.W-total)/2
	for _, b := range bs {
		bw := b.MinWidth() + 2
		b.Rect = core.NewRect(x, y, bw, 1)
		b.Hidden = false
		b.Enabled = true
		x += bw + gap
	}
}

// overlayBox is the dialog rectangle for the current phase.
func (g *Game) overlayBox() core.Rect {
	w, h := g.panel.Bounds.W, g.panel.Bounds.H
	var bh int
	switch g.phase {
	case core.PhaseHelp:
		bh = len(helpLines) + 6
	case core.PhasePaused, core.PhaseQuitConfirm:
		bh = 6
	default:
		bh = 12
	}
	bw := core.Min(overlayMaxWidth, w-4)
	bh = core.Min(bh, h-hudRows-1)
	x := (w - bw) / 2
	y := core.Max(hudRows+1, (h-bh)/2)
	return core.NewRect(x, y, core.Max(0, bw), core.Max(0, bh))
}

// Render draws the board, the HUD and whatever dialog the phase needs.
func (g *Game) Render(dst *core.Screen) {
	if g.phase == core.PhaseCountdown {
		board := g.board()
		cx, cy := board.Center()
		g.countdown.X = cx - len([]rune(g.countdown.Text))/2
		g.countdown.Y = cy
	}
	g.panel.Render(dst)
	g.renderHUD(dst)

	switch g.phase {
	case core.PhaseOverlay:
		g.renderOverlay(dst)
	case core.PhaseHelp:
		g.renderDialog(dst, "How to Play", helpLines)
	case core.PhasePaused:
		g.renderDialog(dst, pausedText, nil)
	case core.PhaseQuitConfirm:
		g.renderDialog(dst, quitQuestion, nil)
	}

	for i := len(g.controls()) - 1; i >= 0; i-- {
		g.controls()[i].Render(dst)
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	w := dst.Width()
	dst.FillRect(core.NewRect(0, 0, w, hudRows), core.ColorOverlay)

	left := core.Max(1, w*25/1000)
	dst.DrawText(left, 0, fmt.Sprintf("Score: %d", g.state.Score()), core.ColorHUD)
	dst.DrawText(w*35/100, 0, fmt.Sprintf("Time: %d", core.Max(0, g.state.TimeLeft())), core.ColorHUD)
	dst.DrawText(w*675/1000, 0, fmt.Sprintf("High Score: %d", g.state.HighScore()), core.ColorHUD)

	switch {
	case g.hudNote != "":
		dst.DrawText(left, 1, g.hudNote, core.ColorGain.Brighter())
	default:
		dst.DrawText(left, 1, fmt.Sprintf("%s  ·  text %d", g.title, g.fontSize), core.ColorHUD.Darker())
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	var lines []string
	if g.over {
		lines = []string{
			gameOverText,
			fmt.Sprintf("Your score: %d", g.lastScore),
			fmt.Sprintf("High Score: %d", g.state.HighScore()),
		}
	} else {
		lines = []string{
			"Click the blue button as many times as you can",
			fmt.Sprintf("in %d seconds!", g.settings.GameDurationSeconds),
			"Avoid the red fake buttons.",
		}
	}
	if g.notice != "" {
		lines = append(lines, "", g.notice)
	}
	g.renderDialog(dst, appTitle, lines)
}

// renderDialog draws a framed box with a title and centred lines.
func (g *Game) renderDialog(dst *core.Screen, title string, lines []string) {
	box := g.overlayBox()
	if box.Empty() {
		return
	}
	dst.FillRect(box, core.ColorOverlay)
	dst.DrawBox(box, core.ColorHUD)

	inner := box.Inset(0, 1, 0, 1)
	dst.DrawTextCentered(inner, box.Y+1, title, core.ColorTarget)
	for i, line := range lines {
		y := box.Y + 3 + i
		if y >= box.Bottom()-2 {
			break
		}
		fg := core.ColorHUD
		if line == g.notice && g.notice != "" {
			fg = core.ColorPenalty.Brighter()
		}
		dst.DrawTextCentered(inner, y, line, fg)
	}
}
