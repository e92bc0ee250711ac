// Package gamestate tracks score, best score and remaining time for a single
// round, and persists the best score between runs.
package gamestate

// Listener is told about state changes right after they happen.
// Any field may be nil.
type Listener struct {
	OnScoreChanged func(score, highScore int)
	OnTimeChanged  func(timeLeft int)
	OnReset        func()
}

// State is the mutable round state. The zero value is a finished round with
// no score.
type State struct {
	score     int
	highScore int
	timeLeft  int

	listeners []Listener
}

// New creates a state with initialTime seconds on the clock.
func New(initialTime int) *State {
	return &State{timeLeft: initialTime}
}

// Score returns the current score.
func (s *State) Score() int { return s.score }

// HighScore returns the best score known, including the current round.
func (s *State) HighScore() int { return s.highScore }

// TimeLeft returns the remaining seconds. It may go negative if the caller
// keeps decrementing after time ran out.
func (s *State) TimeLeft() int { return s.timeLeft }

// Subscribe registers a listener.
func (s *State) Subscribe(l Listener) {
	s.listeners = append(s.listeners, l)
}

// IncrementScore adds one point, raising the high score along with it.
func (s *State) IncrementScore() {
	s.score++
	if s.score > s.highScore {
		s.highScore = s.score
	}
	s.notifyScore()
}

// DecrementScore subtracts amount, never dropping below zero.
func (s *State) DecrementScore(amount int) {
	s.score -= amount
	if s.score < 0 {
		s.score = 0
	}
	s.notifyScore()
}

// DecrementTime takes one second off the clock. Callers check TimeLeft() <= 0.
func (s *State) DecrementTime() {
	s.timeLeft--
	for _, l := range s.listeners {
		if l.OnTimeChanged != nil {
			l.OnTimeChanged(s.timeLeft)
		}
	}
}

// Reset starts a new round. The high score survives.
func (s *State) Reset(initialTime int) {
	s.score = 0
	s.timeLeft = initialTime
	for _, l := range s.listeners {
		if l.OnReset != nil {
			l.OnReset()
		}
	}
}

// setHighScore replaces the best score, keeping it at or above the score.
func (s *State) setHighScore(v int) {
	if v < 0 {
		v = 0
	}
	if v < s.score {
		v = s.score
	}
	s.highScore = v
}

func (s *State) notifyScore() {
	for _, l := range s.listeners {
		if l.OnScoreChanged != nil {
			l.OnScoreChanged(s.score, s.highScore)
		}
	}
}
