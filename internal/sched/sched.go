// Package sched provides a cooperative timer scheduler driven by the UI tick
// loop. Nothing here runs on its own goroutine: the owner advances the
// scheduler's clock once per frame and due callbacks run inline, in due order.
package sched

import (
	"time"
)

// minInterval keeps repeating timers from spinning inside a single Advance.
const minInterval = time.Millisecond

type timerState int

const (
	stateActive timerState = iota
	statePaused
	stateStopped
)

// Timer is a handle to a scheduled callback.
// A nil *Timer is valid and behaves like a stopped timer.
type Timer struct {
	s         *Scheduler
	id        uint64
	interval  time.Duration
	repeat    bool
	dueAt     time.Duration
	remaining time.Duration // Valid while paused
	state     timerState
	fn        func()
}

// Scheduler owns a virtual clock and the timers hanging off it.
type Scheduler struct {
	now    time.Duration
	nextID uint64
	timers []*Timer
}

// New creates a scheduler whose clock starts at zero.
func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the scheduler's virtual clock.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every schedules fn to run each interval until the timer is stopped.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Timer {
	return s.add(interval, true, fn)
}

// After schedules fn to run once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) *Timer {
	return s.add(delay, false, fn)
}

func (s *Scheduler) add(d time.Duration, repeat bool, fn func()) *Timer {
	if d < minInterval {
		d = minInterval
	}
	s.nextID++
	t := &Timer{
		s:        s,
		id:       s.nextID,
		interval: d,
		repeat:   repeat,
		dueAt:    s.now + d,
		state:    stateActive,
		fn:       fn,
	}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves the clock forward by dt, running every callback that falls
// due on the way. Repeating timers fire once per elapsed interval.
// Callbacks may schedule or stop timers; new timers are measured from the
// instant their creator fired.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	target := s.now + dt
	for {
		t := s.nextDue(target)
		if t == nil {
			break
		}
		s.now = t.dueAt
		if t.repeat {
			t.dueAt += t.interval
		} else {
			t.state = stateStopped
		}
		if t.fn != nil {
			t.fn()
		}
	}
	s.now = target
	s.compact()
}

func (s *Scheduler) nextDue(limit time.Duration) *Timer {
	var best *Timer
	for _, t := range s.timers {
		if t.state != stateActive || t.dueAt > limit {
			continue
		}
		if best == nil || t.dueAt < best.dueAt || (t.dueAt == best.dueAt && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if t.state != stateStopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.timers); i++ {
		s.timers[i] = nil
	}
	s.timers = live
}

// Len returns the number of timers that are active or paused.
func (s *Scheduler) Len() int {
	n := 0
	for _, t := range s.timers {
		if t.state != stateStopped {
			n++
		}
	}
	return n
}

// StopAll cancels every timer.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.state = stateStopped
	}
	s.compact()
}

// Stop cancels the timer. Stopping twice is a no-op.
func (t *Timer) Stop() {
	if t == nil {
		return
	}
	t.state = stateStopped
}

// Pause freezes the timer, keeping the time left until its next firing.
func (t *Timer) Pause() {
	if t == nil || t.state != stateActive {
		return
	}
	t.remaining = t.dueAt - t.s.now
	t.state = statePaused
}

// Resume continues a paused timer with the time it had left.
func (t *Timer) Resume() {
	if t == nil || t.state != statePaused {
		return
	}
	t.dueAt = t.s.now + t.remaining
	t.remaining = 0
	t.state = stateActive
}

// Reset changes the interval and restarts the countdown from now.
// A stopped timer is not revived.
func (t *Timer) Reset(interval time.Duration) {
	if t == nil || t.state == stateStopped {
		return
	}
	if interval < minInterval {
		interval = minInterval
	}
	t.interval = interval
	if t.state == statePaused {
		t.remaining = interval
		return
	}
	t.dueAt = t.s.now + interval
}

// Active reports whether the timer is scheduled and not paused.
func (t *Timer) Active() bool {
	return t != nil && t.state == stateActive
}

// Paused reports whether the timer is paused.
func (t *Timer) Paused() bool {
	return t != nil && t.state == statePaused
}

// Stopped reports whether the timer has been cancelled or has fired (one-shot).
func (t *Timer) Stopped() bool {
	return t == nil || t.state == stateStopped
}

// Remaining returns the time left until the next firing.
func (t *Timer) Remaining() time.Duration {
	switch {
	case t == nil || t.state == stateStopped:
		return 0
	case t.state == statePaused:
		return t.remaining
	default:
		return t.dueAt - t.s.now
	}
}

// PauseAll pauses the given timers together.
func PauseAll(timers ...*Timer) {
	for _, t := range timers {
		t.Pause()
	}
}

// ResumeAll resumes the given timers together.
func ResumeAll(timers ...*Timer) {
	for _, t := range timers {
		t.Resume()
	}
}

// StopAll stops the given timers together.
func StopAll(timers ...*Timer) {
	for _, t := range timers {
		t.Stop()
	}
}
