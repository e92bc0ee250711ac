// Package anim runs the game's visual effects on a cooperative scheduler:
// fading the target out and back in at a new spot, brief highlights,
// floating score labels and the pre-round countdown.
package anim

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/sched"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

// FadePhase is where a fade-and-move animation currently is.
type FadePhase int

const (
	FadeIdle FadePhase = iota
	FadingOut
	FadeMoved
	FadingIn
)

func (p FadePhase) String() string {
	switch p {
	case FadingOut:
		return "FadingOut"
	case FadeMoved:
		return "Moved"
	case FadingIn:
		return "FadingIn"
	default:
		return "Idle"
	}
}

// CountdownFrames are shown in order before a round starts.
var CountdownFrames = []string{"3", "2", "1", "GO!"}

type fade struct {
	timer  *sched.Timer
	phase  FadePhase
	level  int // Alpha in steps, 0..fadeSteps
	area   core.Rect
	onDone func()
}

type highlight struct {
	timer    *sched.Timer
	original core.Color
	bright   core.Color
}

type floater struct {
	timer *sched.Timer
	panel *widget.Panel
	label *widget.Label
}

// Manager owns every running animation. It must only be used from the
// goroutine advancing its scheduler.
type Manager struct {
	s   *sched.Scheduler
	rng *rand.Rand

	fadeStep      time.Duration
	fadeSteps     int
	floatSteps    int
	floatRise     int
	highlightFor  time.Duration
	countdownStep time.Duration

	fades      map[*widget.Button]*fade
	highlights map[*widget.Button]*highlight
	floaters   map[*widget.Label]*floater
	countdown  *sched.Timer
}

// New creates a manager driven by s.
func New(s *sched.Scheduler, cfg config.ClickerConfig, rng *rand.Rand) *Manager {
	return &Manager{
		s:             s,
		rng:           rng,
		fadeStep:      time.Duration(cfg.Timing.FadeStepMs) * time.Millisecond,
		fadeSteps:     cfg.Animation.FadeSteps,
		floatSteps:    cfg.Animation.FloatSteps,
		floatRise:     cfg.Animation.FloatRise,
		highlightFor:  time.Duration(cfg.Timing.HighlightMs) * time.Millisecond,
		countdownStep: time.Duration(cfg.Timing.CountdownStepMs) * time.Millisecond,
		fades:         make(map[*widget.Button]*fade),
		highlights:    make(map[*widget.Button]*highlight),
		floaters:      make(map[*widget.Label]*floater),
	}
}

// FadeAndMove fades target out, moves it to a random spot inside area and
// fades it back in, then calls onDone. Starting again on the same target
// cancels the running animation; its onDone is dropped.
func (m *Manager) FadeAndMove(target *widget.Button, area core.Rect, onDone func()) {
	m.cancelFade(target)

	f := &fade{
		phase:  FadingOut,
		level:  int(math.Round(core.ClampF(target.Alpha, 0, 1) * float64(m.fadeSteps))),
		area:   area,
		onDone: onDone,
	}
	f.timer = m.s.Every(m.fadeStep, func() { m.stepFade(target, f) })
	m.fades[target] = f
}

func (m *Manager) stepFade(target *widget.Button, f *fade) {
	switch f.phase {
	case FadingOut:
		f.level--
		if f.level <= 0 {
			f.level = 0
			m.place(target, f.area)
			f.phase = FadeMoved
		}
	case FadeMoved:
		f.phase = FadingIn
		f.level++
	case FadingIn:
		f.level++
	}
	target.Alpha = float64(f.level) / float64(m.fadeSteps)

	if f.phase == FadingIn && f.level >= m.fadeSteps {
		target.Alpha = 1
		f.timer.Stop()
		delete(m.fades, target)
		if f.onDone != nil {
			f.onDone()
		}
	}
}

// place moves b to a uniformly random position fully inside area. When the
// button does not fit, it stays where it is.
func (m *Manager) place(b *widget.Button, area core.Rect) {
	maxX := area.W - b.Rect.W
	maxY := area.H - b.Rect.H
	if maxX < 0 || maxY < 0 {
		return
	}
	b.Rect = b.Rect.MoveTo(area.X+m.rng.Intn(maxX+1), area.Y+m.rng.Intn(maxY+1))
}

// Place moves b to a random spot inside area right away.
func (m *Manager) Place(b *widget.Button, area core.Rect) {
	m.place(b, area)
}

// Phase reports the fade phase of target.
func (m *Manager) Phase(target *widget.Button) FadePhase {
	if f, ok := m.fades[target]; ok {
		return f.phase
	}
	return FadeIdle
}

func (m *Manager) cancelFade(target *widget.Button) {
	if f, ok := m.fades[target]; ok {
		f.timer.Stop()
		delete(m.fades, target)
	}
}

// Highlight brightens b for a moment. A new highlight replaces a pending
// one and reverts to the colour from before the first.
func (m *Manager) Highlight(b *widget.Button) {
	original := b.Color
	if h, ok := m.highlights[b]; ok {
		h.timer.Stop()
		if b.Color == h.bright {
			original = h.original
		}
	}
	h := &highlight{original: original, bright: original.Brighter()}
	b.Color = h.bright
	h.timer = m.s.After(m.highlightFor, func() {
		// A recolour since the highlight wins
		if b.Color == h.bright {
			b.Color = h.original
		}
		delete(m.highlights, b)
	})
	m.highlights[b] = h
}

// ShowFloatingScore adds a signed label centred on x that rises from y while
// fading, and removes it from panel when done.
func (m *Manager) ShowFloatingScore(panel *widget.Panel, delta, x, y int) *widget.Label {
	text := fmt.Sprintf("%+d", delta)
	color := core.ColorGain
	if delta < 0 {
		color = core.ColorPenalty
	}
	label := widget.NewLabel(text, x-len(text)/2, y, color)
	panel.AddLabel(label)

	fps := int(time.Second / m.fadeStep)
	if fps < 1 {
		fps = 1
	}
	spring := harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0)
	var pos, vel float64
	step := 0

	fl := &floater{panel: panel, label: label}
	fl.timer = m.s.Every(m.fadeStep, func() {
		step++
		pos, vel = spring.Update(pos, vel, float64(m.floatRise))
		label.Y = y - int(math.Round(pos))
		label.Alpha = 1 - float64(step)/float64(m.floatSteps)
		if step >= m.floatSteps {
			fl.timer.Stop()
			panel.RemoveLabel(label)
			delete(m.floaters, label)
		}
	})
	m.floaters[label] = fl
	return label
}

// Floating returns the number of floating labels still on screen.
func (m *Manager) Floating() int {
	return len(m.floaters)
}

// AnimateCountdown shows each countdown frame on label in turn, then calls
// onComplete once. A running countdown is replaced.
func (m *Manager) AnimateCountdown(label *widget.Label, onComplete func()) {
	m.countdown.Stop()

	label.Text = CountdownFrames[0]
	label.Alpha = 1
	next := 1
	var t *sched.Timer
	t = m.s.Every(m.countdownStep, func() {
		if next < len(CountdownFrames) {
			label.Text = CountdownFrames[next]
			next++
			return
		}
		t.Stop()
		if m.countdown == t {
			m.countdown = nil
		}
		if onComplete != nil {
			onComplete()
		}
	})
	m.countdown = t
}

// CountingDown reports whether a countdown is running.
func (m *Manager) CountingDown() bool {
	return m.countdown.Active()
}

// PauseAll freezes every running animation.
func (m *Manager) PauseAll() {
	for _, t := range m.timers() {
		t.Pause()
	}
}

// ResumeAll continues animations frozen by PauseAll.
func (m *Manager) ResumeAll() {
	for _, t := range m.timers() {
		t.Resume()
	}
}

// CancelAll stops every animation. Faded buttons become opaque again,
// highlighted ones get their colour back and floating labels disappear.
func (m *Manager) CancelAll() {
	for b, f := range m.fades {
		f.timer.Stop()
		b.Alpha = 1
	}
	for b, h := range m.highlights {
		h.timer.Stop()
		if b.Color == h.bright {
			b.Color = h.original
		}
	}
	for l, fl := range m.floaters {
		fl.timer.Stop()
		fl.panel.RemoveLabel(l)
	}
	m.countdown.Stop()
	m.countdown = nil

	clear(m.fades)
	clear(m.highlights)
	clear(m.floaters)
}

func (m *Manager) timers() []*sched.Timer {
	var ts []*sched.Timer
	for _, f := range m.fades {
		ts = append(ts, f.timer)
	}
	for _, h := range m.highlights {
		ts = append(ts, h.timer)
	}
	for _, fl := range m.floaters {
		ts = append(ts, fl.timer)
	}
	if m.countdown != nil {
		ts = append(ts, m.countdown)
	}
	return ts
}
