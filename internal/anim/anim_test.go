package anim

import (
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/sched"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

const step = 50 * time.Millisecond

func newTestManager() (*Manager, *sched.Scheduler) {
	s := sched.New()
	return New(s, config.DefaultClickerConfig(), rand.New(rand.NewSource(1))), s
}

func TestFadeAndMovePhases(t *testing.T) {
	m, s := newTestManager()
	b := widget.NewButton("Click me!", core.NewRect(0, 0, 11, 3), core.ColorTarget)
	area := core.NewRect(0, 3, 60, 20)

	done := 0
	m.FadeAndMove(b, area, func() { done++ })
	if m.Phase(b) != FadingOut {
		t.Fatalf("phase = %v, expected FadingOut", m.Phase(b))
	}

	s.Advance(step)
	if b.Alpha >= 1 {
		t.Errorf("alpha should drop after one step, got %v", b.Alpha)
	}

	s.Advance(9 * step)
	if m.Phase(b) != FadeMoved {
		t.Fatalf("phase = %v, expected Moved", m.Phase(b))
	}
	if b.Alpha != 0 {
		t.Errorf("alpha at move = %v, expected 0", b.Alpha)
	}
	if b.Rect.X < area.X || b.Rect.Right() > area.Right() || b.Rect.Y < area.Y || b.Rect.Bottom() > area.Bottom() {
		t.Errorf("button %+v landed outside %+v", b.Rect, area)
	}

	s.Advance(step)
	if m.Phase(b) != FadingIn {
		t.Fatalf("phase = %v, expected FadingIn", m.Phase(b))
	}

	s.Advance(9 * step)
	if m.Phase(b) != FadeIdle {
		t.Errorf("phase = %v, expected Idle", m.Phase(b))
	}
	if b.Alpha != 1 {
		t.Errorf("alpha after fade in = %v", b.Alpha)
	}
	if done != 1 {
		t.Errorf("onDone called %d times", done)
	}
}

func TestFadeAndMoveReentryCancels(t *testing.T) {
	m, s := newTestManager()
	b := widget.NewButton("Click me!", core.NewRect(0, 0, 11, 3), core.ColorTarget)
	area := core.NewRect(0, 3, 60, 20)

	first, second := 0, 0
	m.FadeAndMove(b, area, func() { first++ })
	s.Advance(3 * step)
	m.FadeAndMove(b, area, func() { second++ })

	s.Advance(2 * time.Second)
	if first != 0 {
		t.Errorf("cancelled animation completed %d times", first)
	}
	if second != 1 {
		t.Errorf("second animation completed %d times", second)
	}
	if b.Alpha != 1 {
		t.Errorf("alpha = %v", b.Alpha)
	}
	if s.Len() != 0 {
		t.Errorf("%d timers left behind", s.Len())
	}
}

func TestPlaceKeepsButtonWhenTooBig(t *testing.T) {
	m, _ := newTestManager()
	b := widget.NewButton("x", core.NewRect(5, 5, 30, 3), core.ColorTarget)

	m.Place(b, core.NewRect(0, 0, 10, 10))
	if b.Rect.X != 5 || b.Rect.Y != 5 {
		t.Errorf("oversized button moved to %+v", b.Rect)
	}
}

func TestHighlight(t *testing.T) {
	m, s := newTestManager()
	b := widget.NewButton("x", core.NewRect(0, 0, 5, 1), core.ColorTarget)

	m.Highlight(b)
	if b.Color == core.ColorTarget {
		t.Fatal("highlight should change the colour")
	}
	s.Advance(60 * time.Millisecond)
	m.Highlight(b) // replaces the pending revert

	s.Advance(100 * time.Millisecond)
	if b.Color == core.ColorTarget {
		t.Error("revert should have been pushed back by the second highlight")
	}
	s.Advance(30 * time.Millisecond)
	if b.Color != core.ColorTarget {
		t.Errorf("colour = %v, expected original", b.Color)
	}
}

func TestHighlightKeepsRecolour(t *testing.T) {
	m, s := newTestManager()
	b := widget.NewButton("x", core.NewRect(0, 0, 5, 1), core.ColorTarget)

	m.Highlight(b)
	b.Color = core.Pastel[0]
	s.Advance(time.Second)
	if b.Color != core.Pastel[0] {
		t.Errorf("recolour was overwritten by the highlight revert")
	}
}

func TestFloatingScoreRemovedAfterCompletion(t *testing.T) {
	m, s := newTestManager()
	panel := widget.NewPanel(core.NewRect(0, 0, 80, 24), core.ColorBackground)

	label := m.ShowFloatingScore(panel, -2, 20, 10)
	if label.Text != "-2" {
		t.Errorf("text = %q", label.Text)
	}
	if label.Color != core.ColorPenalty {
		t.Error("penalty should be drawn in the penalty colour")
	}
	if len(panel.Labels()) != 1 {
		t.Fatalf("label not added")
	}

	s.Advance(10 * step)
	if label.Y > 10 {
		t.Errorf("label should rise, y = %d", label.Y)
	}
	if label.Alpha >= 1 || label.Alpha <= 0 {
		t.Errorf("alpha halfway = %v", label.Alpha)
	}

	s.Advance(10 * step)
	if len(panel.Labels()) != 0 {
		t.Error("label should be removed after the last step")
	}
	if m.Floating() != 0 {
		t.Errorf("%d floaters still tracked", m.Floating())
	}
}

func TestFloatingScorePositive(t *testing.T) {
	m, _ := newTestManager()
	panel := widget.NewPanel(core.NewRect(0, 0, 80, 24), core.ColorBackground)

	label := m.ShowFloatingScore(panel, 1, 20, 10)
	if label.Text != "+1" || label.Color != core.ColorGain {
		t.Errorf("got %q in %v", label.Text, label.Color)
	}
}

func TestAnimateCountdown(t *testing.T) {
	m, s := newTestManager()
	label := widget.NewLabel("", 0, 0, core.ColorText)

	completed := 0
	m.AnimateCountdown(label, func() { completed++ })

	countdownStep := 700 * time.Millisecond
	for _, want := range CountdownFrames {
		if label.Text != want {
			t.Errorf("frame = %q, expected %q", label.Text, want)
		}
		if completed != 0 {
			t.Fatal("completed early")
		}
		s.Advance(countdownStep)
	}
	if completed != 1 {
		t.Errorf("onComplete called %d times", completed)
	}

	s.Advance(5 * time.Second)
	if completed != 1 {
		t.Errorf("onComplete called again: %d", completed)
	}
	if m.CountingDown() {
		t.Error("countdown should be over")
	}
}

func TestPauseResumeAll(t *testing.T) {
	m, s := newTestManager()
	b := widget.NewButton("x", core.NewRect(0, 0, 5, 1), core.ColorTarget)

	m.FadeAndMove(b, core.NewRect(0, 0, 40, 20), nil)
	s.Advance(2 * step)
	alpha := b.Alpha

	m.PauseAll()
	s.Advance(time.Second)
	if b.Alpha != alpha {
		t.Errorf("alpha changed while paused: %v -> %v", alpha, b.Alpha)
	}

	m.ResumeAll()
	s.Advance(step)
	if b.Alpha == alpha {
		t.Error("animation should continue after resume")
	}
}

func TestCancelAll(t *testing.T) {
	m, s := newTestManager()
	panel := widget.NewPanel(core.NewRect(0, 0, 80, 24), core.ColorBackground)
	b := widget.NewButton("x", core.NewRect(0, 0, 5, 1), core.ColorTarget)
	label := widget.NewLabel("", 0, 0, core.ColorText)

	completed := false
	m.FadeAndMove(b, core.NewRect(0, 0, 40, 20), nil)
	m.Highlight(b)
	m.ShowFloatingScore(panel, 1, 5, 5)
	m.AnimateCountdown(label, func() { completed = true })
	s.Advance(3 * step)

	m.CancelAll()
	if b.Alpha != 1 {
		t.Errorf("alpha = %v, expected 1", b.Alpha)
	}
	if b.Color != core.ColorTarget {
		t.Errorf("colour not restored")
	}
	if len(panel.Labels()) != 0 {
		t.Error("floating labels should be removed")
	}
	if s.Len() != 0 {
		t.Errorf("%d timers still scheduled", s.Len())
	}

	s.Advance(5 * time.Second)
	if completed {
		t.Error("cancelled countdown completed")
	}
}
