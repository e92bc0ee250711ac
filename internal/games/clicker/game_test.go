package clicker

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/registry"
	"github.com/vovakirdan/tui-clicker/internal/settings"
)

func newTestGame(t *testing.T, s settings.Settings, tune func(*config.ClickerConfig)) *Game {
	t.Helper()
	tuning := config.DefaultClickerConfig()
	if tune != nil {
		tune(&tuning)
	}
	g := New(ModeClassic, "Classic", settings.PresetClassic, registry.Options{
		Settings:      s,
		Tuning:        tuning,
		HighScorePath: filepath.Join(t.TempDir(), ".ctb_highscore"),
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	return g
}

func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func clickAt(g *Game, x, y int) core.StepResult {
	in := core.NewInputFrame()
	in.Click(x, y)
	return g.Step(in)
}

// run steps the game for at least d and collects the events.
func run(g *Game, d time.Duration) []core.Event {
	var events []core.Event
	for n := int(d/g.tick) + 1; n > 0; n-- {
		events = append(events, g.Step(core.NewInputFrame()).Events...)
	}
	return events
}

func startPlaying(t *testing.T, g *Game) {
	t.Helper()
	press(g, core.ActionConfirm)
	if g.phase != core.PhaseCountdown {
		t.Fatalf("phase after Enter = %s, expected countdown", g.phase)
	}
	run(g, 3*time.Second)
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase after countdown = %s, expected playing", g.phase)
	}
}

func clickTarget(t *testing.T, g *Game) core.StepResult {
	t.Helper()
	for i := 0; i < 200 && !g.target.Clickable(); i++ {
		g.Step(core.NewInputFrame())
	}
	x, y := g.target.Rect.Center()
	return clickAt(g, x, y)
}

func countEvents(events []core.Event, kind core.EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestInitialOverlay(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	st := g.State()

	if st.Phase != core.PhaseOverlay || st.GameOver {
		t.Errorf("initial state = %+v", st)
	}
	if st.Score != 0 || st.TimeLeft != 30 {
		t.Errorf("score=%d time=%d, expected 0/30", st.Score, st.TimeLeft)
	}
	if !g.target.Hidden {
		t.Error("target should be hidden behind the overlay")
	}
	if len(g.decoys.Buttons()) != 3 {
		t.Errorf("got %d decoys, expected 3", len(g.decoys.Buttons()))
	}
	if g.startBtn.Hidden || g.startBtn.Text != startText {
		t.Errorf("start button = %+v", g.startBtn)
	}
}

func TestCountdownThenPlaying(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)

	press(g, core.ActionConfirm)
	if g.target.Hidden {
		t.Error("target should show during the countdown")
	}
	if g.target.Enabled {
		t.Error("target should not be clickable during the countdown")
	}
	if g.countdown.Text != "3" {
		t.Errorf("countdown = %q", g.countdown.Text)
	}

	run(g, 3*time.Second)
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase = %s", g.phase)
	}
	if !g.target.Clickable() {
		t.Error("target should be clickable while playing")
	}
	if !g.gameTimer.Active() || !g.moveTimer.Active() {
		t.Error("game and move timers should run")
	}
}

func TestStartButtonClick(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	x, y := g.startBtn.Rect.Center()
	clickAt(g, x, y)
	if g.phase != core.PhaseCountdown {
		t.Errorf("phase after clicking start = %s", g.phase)
	}
}

func TestRoundSavesHighScore(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithDuration(10), settings.WithFakeButtons(0)), nil)
	startPlaying(t, g)

	var events []core.Event
	for i := 0; i < 3; i++ {
		events = append(events, clickTarget(t, g).Events...)
	}
	if g.State().Score != 3 {
		t.Fatalf("score = %d, expected 3", g.State().Score)
	}
	if countEvents(events, core.EventSoundClick) != 3 {
		t.Errorf("expected 3 click sounds, got %d", countEvents(events, core.EventSoundClick))
	}

	events = run(g, 12*time.Second)
	if countEvents(events, core.EventGameOver) != 1 {
		t.Fatalf("expected one game over event, got %d", countEvents(events, core.EventGameOver))
	}
	for _, e := range events {
		if e.Kind == core.EventGameOver && (e.Score != 3 || e.Duration != 10) {
			t.Errorf("game over event = %+v", e)
		}
	}
	if countEvents(events, core.EventSoundGameOver) != 1 {
		t.Error("expected a game over sound")
	}

	st := g.State()
	if st.Phase != core.PhaseOverlay || !st.GameOver {
		t.Errorf("state after round = %+v", st)
	}
	if g.startBtn.Text != playAgainText {
		t.Errorf("start button = %q", g.startBtn.Text)
	}
	if g.gameTimer != nil || g.moveTimer != nil {
		t.Error("timers should be stopped")
	}

	data, err := os.ReadFile(g.opts.HighScorePath)
	if err != nil {
		t.Fatalf("high score file: %v", err)
	}
	if strings.TrimSpace(string(data)) != "3" {
		t.Errorf("stored high score = %q", data)
	}
}

func TestHighScoreLoadedAndNeverLowered(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".ctb_highscore")
	if err := os.WriteFile(path, []byte("50"), 0o600); err != nil {
		t.Fatal(err)
	}
	g := New(ModeClassic, "Classic", settings.PresetClassic, registry.Options{
		Settings:      settings.New(settings.WithDuration(10), settings.WithFakeButtons(0)),
		HighScorePath: path,
	})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3})

	if g.State().HighScore != 50 {
		t.Fatalf("high score = %d, expected 50", g.State().HighScore)
	}

	startPlaying(t, g)
	clickTarget(t, g)
	run(g, 12*time.Second)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "50" {
		t.Errorf("stored high score = %q, expected 50", data)
	}
	if g.State().HighScore != 50 {
		t.Errorf("high score = %d after reload", g.State().HighScore)
	}
}

func TestPauseStopsBothTimers(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	startPlaying(t, g)
	run(g, 1500*time.Millisecond)

	before := g.State().TimeLeft
	press(g, core.ActionPause)
	if g.phase != core.PhasePaused || !g.State().Paused {
		t.Fatalf("phase = %s", g.phase)
	}
	if !g.gameTimer.Paused() || !g.moveTimer.Paused() {
		t.Fatal("both timers should be paused")
	}
	gameLeft := g.gameTimer.Remaining()
	moveLeft := g.moveTimer.Remaining()
	if g.target.Enabled {
		t.Error("target should not be clickable while paused")
	}

	run(g, 5*time.Second)
	if g.State().TimeLeft != before {
		t.Errorf("time moved while paused: %d -> %d", before, g.State().TimeLeft)
	}
	if g.gameTimer.Remaining() != gameLeft || g.moveTimer.Remaining() != moveLeft {
		t.Error("remaining time should be preserved while paused")
	}

	press(g, core.ActionConfirm)
	if g.phase != core.PhasePlaying {
		t.Fatalf("Enter should resume, phase = %s", g.phase)
	}
	run(g, gameLeft+50*time.Millisecond)
	if g.State().TimeLeft != before-1 {
		t.Errorf("time after resume = %d, expected %d", g.State().TimeLeft, before-1)
	}
}

func TestDecoyClickPenalty(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(1)), nil)
	startPlaying(t, g)

	// Keep the decoy clear of the target for the hits
	decoy := g.decoys.Buttons()[0]
	decoy.Rect = decoy.Rect.MoveTo(0, g.board().Bottom()-decoy.Rect.H)
	g.target.Rect = g.target.Rect.MoveTo(g.board().Right()-g.target.Rect.W, g.board().Y)
	clickTarget(t, g)
	if g.State().Score != 1 {
		t.Fatalf("score = %d", g.State().Score)
	}

	for i := 0; i < 200 && !decoy.Clickable(); i++ {
		g.Step(core.NewInputFrame())
	}
	x, y := decoy.Rect.Center()
	res := clickAt(g, x, y)

	if res.State.Score != 0 {
		t.Errorf("score after decoy = %d, expected 0 (clamped)", res.State.Score)
	}
	if res.State.HighScore != 1 {
		t.Errorf("high score = %d, expected 1", res.State.HighScore)
	}
	if countEvents(res.Events, core.EventSoundFake) != 1 {
		t.Error("expected a penalty sound")
	}
	found := false
	for _, l := range g.panel.Labels() {
		if l.Text == "-2" {
			found = true
		}
	}
	if !found {
		t.Error("expected a floating -2 label")
	}
}

func TestTargetShrinksWithScore(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), func(c *config.ClickerConfig) {
		c.Scoring.ShrinkWidthPerPoint = 16
	})
	startPlaying(t, g)

	startW := g.target.Rect.W
	clickTarget(t, g)
	if g.target.Rect.W != startW-2 {
		t.Errorf("width after one hit = %d, expected %d", g.target.Rect.W, startW-2)
	}

	for i := 0; i < 10; i++ {
		clickTarget(t, g)
	}
	minW := g.target.MinWidth() + 2*g.captionPadding()
	if g.target.Rect.W != minW {
		t.Errorf("width = %d, expected the caption minimum %d", g.target.Rect.W, minW)
	}
}

func TestAchievementAnnouncedOnce(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), func(c *config.ClickerConfig) {
		c.Scoring.AchievementThreshold = 2
	})
	startPlaying(t, g)

	var events []core.Event
	for i := 0; i < 4; i++ {
		events = append(events, clickTarget(t, g).Events...)
	}
	if n := countEvents(events, core.EventAchievement); n != 1 {
		t.Errorf("achievement announced %d times", n)
	}
	if g.hudNote != AchievementText {
		t.Errorf("HUD note = %q", g.hudNote)
	}
}

func TestMoveTimerRelocatesTarget(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), nil)
	startPlaying(t, g)

	run(g, 1100*time.Millisecond)
	if g.target.Alpha >= 1 {
		t.Error("target should be fading after the move interval")
	}
	board := g.board()
	r := g.target.Rect
	if r.X < board.X || r.Right() > board.Right() || r.Y < board.Y || r.Bottom() > board.Bottom() {
		t.Errorf("target %+v left the board %+v", r, board)
	}
}

func TestApplySettingsOnlyOnOverlay(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)

	next := settings.New(settings.WithDuration(45), settings.WithFakeButtons(5))
	if !g.ApplySettings(next) {
		t.Fatal("settings should apply on the overlay")
	}
	if len(g.decoys.Buttons()) != 5 {
		t.Errorf("decoys = %d, expected 5", len(g.decoys.Buttons()))
	}
	if g.State().TimeLeft != 45 {
		t.Errorf("time = %d, expected 45", g.State().TimeLeft)
	}
	if g.Settings() != next {
		t.Errorf("settings = %+v", g.Settings())
	}

	startPlaying(t, g)
	if g.ApplySettings(settings.Defaults()) {
		t.Error("settings must not apply mid-round")
	}
	if len(g.decoys.Buttons()) != 5 {
		t.Error("decoys changed mid-round")
	}
}

func TestQuitConfirmation(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	startPlaying(t, g)

	press(g, core.ActionBack)
	if g.phase != core.PhaseQuitConfirm {
		t.Fatalf("phase = %s", g.phase)
	}
	if !g.gameTimer.Paused() || !g.moveTimer.Paused() {
		t.Error("round should freeze while asking")
	}

	press(g, core.ActionNo)
	if g.phase != core.PhasePlaying {
		t.Fatalf("phase after No = %s", g.phase)
	}
	if !g.gameTimer.Active() {
		t.Error("round should continue after No")
	}

	press(g, core.ActionBack)
	res := press(g, core.ActionYes)
	if countEvents(res.Events, core.EventQuit) != 1 {
		t.Error("Yes should quit")
	}
}

func TestQuitFromPausedStaysPaused(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	startPlaying(t, g)
	press(g, core.ActionPause)
	press(g, core.ActionBack)
	press(g, core.ActionBack)

	if g.phase != core.PhasePaused {
		t.Errorf("phase = %s, expected paused", g.phase)
	}
	if !g.gameTimer.Paused() {
		t.Error("timers should stay paused")
	}
}

func TestMuteSuppressesSounds(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), nil)

	res := press(g, core.ActionMute)
	if countEvents(res.Events, core.EventSettingsChanged) != 1 {
		t.Error("mute should report a settings change")
	}
	if g.Settings().SoundEnabled {
		t.Fatal("sound should be off")
	}
	if g.muteBtn.Text != soundOffText {
		t.Errorf("mute button = %q", g.muteBtn.Text)
	}

	startPlaying(t, g)
	res = clickTarget(t, g)
	if countEvents(res.Events, core.EventSoundClick) != 0 {
		t.Error("muted game should not emit sounds")
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d", res.State.Score)
	}
}

func TestSettingsAndHelpFromOverlay(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)

	res := press(g, core.ActionSettings)
	if countEvents(res.Events, core.EventSettingsRequest) != 1 {
		t.Error("S should request the settings form")
	}

	press(g, core.ActionHelp)
	if g.phase != core.PhaseHelp {
		t.Fatalf("phase = %s", g.phase)
	}
	press(g, core.ActionConfirm)
	if g.phase != core.PhaseOverlay {
		t.Errorf("phase after closing help = %s", g.phase)
	}
}

func TestFontSizeBounds(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)

	for i := 0; i < 20; i++ {
		press(g, core.ActionFontUp)
	}
	if g.FontSize() != MaxFontSize {
		t.Errorf("font size = %d, expected %d", g.FontSize(), MaxFontSize)
	}
	for i := 0; i < 20; i++ {
		press(g, core.ActionFontDown)
	}
	if g.FontSize() != MinFontSize {
		t.Errorf("font size = %d, expected %d", g.FontSize(), MinFontSize)
	}
}

func TestApplySettingsResizesTarget(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), nil)

	if !g.ApplySettings(g.Settings().With(settings.WithMainButtonSize(60, 30))) {
		t.Fatal("settings should apply on the overlay")
	}
	small := g.target.Rect

	g.ApplySettings(g.Settings().With(settings.WithMainButtonSize(300, 150)))
	big := g.target.Rect
	if big.W <= small.W || big.H <= small.H {
		t.Errorf("target %dx%d should be larger than %dx%d", big.W, big.H, small.W, small.H)
	}
	if w, h := g.sizer.Cells(300, 150); big.W != w || big.H != h {
		t.Errorf("target = %dx%d, expected %dx%d", big.W, big.H, w, h)
	}
}

func TestResizeKeepsRoundSummary(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithDuration(10), settings.WithFakeButtons(0)), nil)
	startPlaying(t, g)
	clickTarget(t, g)
	run(g, 12*time.Second)
	if !g.State().GameOver {
		t.Fatal("round should be over")
	}

	g.Reset(core.RuntimeConfig{ScreenW: 100, ScreenH: 30, TickRate: 60, Seed: 2})

	if !g.State().GameOver || g.lastScore != 1 {
		t.Errorf("summary lost on re-layout: over=%v last=%d", g.State().GameOver, g.lastScore)
	}
	screen := core.NewScreen(100, 30)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Your score: 1") {
		t.Error("re-laid out overlay should still show the last score")
	}
	if g.panel.Bounds.W != 100 {
		t.Errorf("board width = %d, expected 100", g.panel.Bounds.W)
	}

	press(g, core.ActionConfirm)
	if g.State().GameOver {
		t.Error("starting the next round should clear the summary")
	}
}

func TestRenderOverlay(t *testing.T) {
	g := newTestGame(t, settings.Defaults(), nil)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{appTitle, startText, settingsText, "Score: 0", "Time: 30", soundOnText} {
		if !strings.Contains(out, want) {
			t.Errorf("overlay render is missing %q", want)
		}
	}
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, settings.New(settings.WithFakeButtons(0)), nil)
	startPlaying(t, g)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, TargetText) {
		t.Error("target caption missing")
	}
	if strings.Contains(out, appTitle) {
		t.Error("overlay should be gone while playing")
	}
}

func TestModesRegistered(t *testing.T) {
	for _, id := range []string{ModeClassic, ModeQuick, ModeChallenge} {
		if !registry.Exists(id) {
			t.Errorf("mode %q not registered", id)
		}
	}

	g, err := registry.Create(ModeQuick, registry.Options{Settings: settings.Defaults()})
	if err != nil {
		t.Fatal(err)
	}
	if g.Settings().GameDurationSeconds != 15 || g.Settings().NumFakeButtons != 1 {
		t.Errorf("quick settings = %+v", g.Settings())
	}
}
