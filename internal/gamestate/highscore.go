package gamestate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile is the file created in the user's home directory.
const HighScoreFile = ".ctb_highscore"

// HighScorePath returns the high score location inside home.
func HighScorePath(home string) string {
	return filepath.Join(home, HighScoreFile)
}

// fileMu serializes read-compare-write cycles between sessions sharing a
// process (SSH mode).
var fileMu sync.Mutex

// LoadHighScore reads the stored best score. On any failure the high score
// becomes 0 and the cause is returned for logging; a missing file is not a
// failure.
func (s *State) LoadHighScore(path string) error {
	fileMu.Lock()
	defer fileMu.Unlock()

	v, err := readHighScore(path)
	if err != nil {
		s.setHighScore(0)
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	s.setHighScore(v)
	return nil
}

// SaveHighScore writes the best score, replacing the file. A larger value
// already on disk is kept.
func (s *State) SaveHighScore(path string) error {
	fileMu.Lock()
	defer fileMu.Unlock()

	v := s.highScore
	if onDisk, err := readHighScore(path); err == nil && onDisk > v {
		return nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("gamestate: cannot create directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, []byte(strconv.Itoa(v)), 0o644); err != nil {
		return fmt.Errorf("gamestate: cannot save high score: %w", err)
	}
	return nil
}

func readHighScore(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("gamestate: cannot read high score: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("gamestate: malformed high score %q: %w", strings.TrimSpace(string(data)), err)
	}
	if v < 0 {
		return 0, fmt.Errorf("gamestate: negative high score %d", v)
	}
	return v, nil
}
