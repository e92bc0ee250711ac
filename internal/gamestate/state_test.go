package gamestate

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIncrementRaisesHighScore(t *testing.T) {
	s := New(30)
	for i := 0; i < 5; i++ {
		s.IncrementScore()
		if s.HighScore() < s.Score() {
			t.Fatalf("high score %d fell below score %d", s.HighScore(), s.Score())
		}
	}
	if s.Score() != 5 || s.HighScore() != 5 {
		t.Errorf("got score=%d high=%d, expected 5/5", s.Score(), s.HighScore())
	}
}

func TestDecrementScoreClampsAtZero(t *testing.T) {
	s := New(30)
	s.IncrementScore()
	s.DecrementScore(2)

	if s.Score() != 0 {
		t.Errorf("score should clamp to 0, got %d", s.Score())
	}
	if s.HighScore() != 1 {
		t.Errorf("high score should stay 1, got %d", s.HighScore())
	}
}

func TestDecrementTimeDoesNotClamp(t *testing.T) {
	s := New(1)
	s.DecrementTime()
	s.DecrementTime()
	if s.TimeLeft() != -1 {
		t.Errorf("expected -1, got %d", s.TimeLeft())
	}
}

func TestResetKeepsHighScore(t *testing.T) {
	s := New(30)
	for i := 0; i < 7; i++ {
		s.IncrementScore()
	}
	s.DecrementTime()
	s.Reset(45)

	if s.Score() != 0 {
		t.Errorf("score after reset = %d", s.Score())
	}
	if s.TimeLeft() != 45 {
		t.Errorf("time after reset = %d", s.TimeLeft())
	}
	if s.HighScore() != 7 {
		t.Errorf("high score after reset = %d", s.HighScore())
	}
}

func TestRoundScenario(t *testing.T) {
	// Duration 3, high score 0: hit, hit, decoy, tick x3
	s := New(3)
	s.IncrementScore()
	s.IncrementScore()
	s.DecrementScore(2)
	for i := 0; i < 3; i++ {
		s.DecrementTime()
	}

	if s.Score() != 0 || s.HighScore() != 2 || s.TimeLeft() != 0 {
		t.Errorf("got score=%d high=%d time=%d, expected 0/2/0", s.Score(), s.HighScore(), s.TimeLeft())
	}
}

func TestListeners(t *testing.T) {
	s := New(10)
	var scores, times, resets int
	var lastScore, lastHigh, lastTime int
	s.Subscribe(Listener{
		OnScoreChanged: func(score, high int) { scores++; lastScore, lastHigh = score, high },
		OnTimeChanged:  func(left int) { times++; lastTime = left },
		OnReset:        func() { resets++ },
	})
	s.Subscribe(Listener{}) // nil callbacks are skipped

	s.IncrementScore()
	s.IncrementScore()
	s.DecrementScore(1)
	s.DecrementTime()
	s.Reset(10)

	if scores != 3 || lastScore != 1 || lastHigh != 2 {
		t.Errorf("score notifications = %d, last %d/%d", scores, lastScore, lastHigh)
	}
	if times != 1 || lastTime != 9 {
		t.Errorf("time notifications = %d, last %d", times, lastTime)
	}
	if resets != 1 {
		t.Errorf("reset notifications = %d", resets)
	}
}

func TestHighScoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), HighScoreFile)

	s := New(30)
	for i := 0; i < 12; i++ {
		s.IncrementScore()
	}
	if err := s.SaveHighScore(path); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	loaded := New(30)
	if err := loaded.LoadHighScore(path); err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if loaded.HighScore() != 12 {
		t.Errorf("loaded high score = %d, expected 12", loaded.HighScore())
	}
}

func TestLoadHighScoreFallsBackToZero(t *testing.T) {
	dir := t.TempDir()

	s := New(30)
	if err := s.LoadHighScore(filepath.Join(dir, "missing")); err != nil {
		t.Errorf("missing file should not be reported: %v", err)
	}
	if s.HighScore() != 0 {
		t.Errorf("missing file: high score = %d", s.HighScore())
	}

	bad := filepath.Join(dir, "bad")
	if err := os.WriteFile(bad, []byte("not a number"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := s.LoadHighScore(bad); err == nil {
		t.Error("malformed file should be reported")
	}
	if s.HighScore() != 0 {
		t.Errorf("malformed file: high score = %d", s.HighScore())
	}
}

func TestLoadHighScoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), HighScoreFile)
	if err := os.WriteFile(path, []byte("  42\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	s := New(30)
	if err := s.LoadHighScore(path); err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}
	if s.HighScore() != 42 {
		t.Errorf("high score = %d, expected 42", s.HighScore())
	}
}

// Over SSH every session shares one high score file. A session that loaded
// the file before another session saved 50 must not overwrite it with 1.
func TestSaveHighScoreNeverLowers(t *testing.T) {
	path := filepath.Join(t.TempDir(), HighScoreFile)
	s := New(30)
	if err := s.LoadHighScore(path); err != nil {
		t.Fatalf("LoadHighScore() failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("50"), 0o600); err != nil {
		t.Fatal(err)
	}

	s.IncrementScore()
	if err := s.SaveHighScore(path); err != nil {
		t.Fatalf("SaveHighScore() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "50" {
		t.Errorf("file = %q, expected the larger stored value", data)
	}
}
