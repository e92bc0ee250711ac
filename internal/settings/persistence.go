package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/ini.v1"
)

// Recognized keys in the settings file.
const (
	keyDuration     = "gameDurationSeconds"
	keyFakeButtons  = "numFakeButtons"
	keyMoveInterval = "moveIntervalMs"
	keySound        = "soundEnabled"
	keyWidth        = "mainButtonStartWidth"
	keyHeight       = "mainButtonStartHeight"
)

// Path returns the settings file location inside home.
func Path(home string) string {
	return filepath.Join(home, FileName)
}

// Load reads a settings file. Missing keys keep their defaults, and a
// missing file yields the defaults with no error. Malformed values are
// skipped and reported together in the returned error, while the snapshot
// still carries every value that did parse.
func Load(path string) (Settings, error) {
	s := Defaults()

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return s, fmt.Errorf("settings: cannot read %s: %w", path, err)
	}

	f, err := ini.LoadSources(ini.LoadOptions{
		SkipUnrecognizableLines: true,
		IgnoreInlineComment:     true,
	}, data)
	if err != nil {
		return s, fmt.Errorf("settings: cannot parse %s: %w", path, err)
	}
	sec := f.Section(ini.DefaultSection)

	var errs []error
	readInt := func(key string, dst *int) {
		if !sec.HasKey(key) {
			return
		}
		v, err := strconv.Atoi(sec.Key(key).String())
		if err != nil {
			errs = append(errs, fmt.Errorf("settings: invalid %s %q", key, sec.Key(key).String()))
			return
		}
		*dst = v
	}

	readInt(keyDuration, &s.GameDurationSeconds)
	readInt(keyFakeButtons, &s.NumFakeButtons)
	readInt(keyMoveInterval, &s.MoveIntervalMs)
	readInt(keyWidth, &s.MainButtonStartWidth)
	readInt(keyHeight, &s.MainButtonStartHeight)
	if sec.HasKey(keySound) {
		v, err := strconv.ParseBool(sec.Key(keySound).String())
		if err != nil {
			errs = append(errs, fmt.Errorf("settings: invalid %s %q", keySound, sec.Key(keySound).String()))
		} else {
			s.SoundEnabled = v
		}
	}

	return s.Normalize(), errors.Join(errs...)
}

// Save writes the snapshot, replacing the whole file.
func Save(path string, s Settings) error {
	f := ini.Empty()
	sec := f.Section(ini.DefaultSection)

	values := []struct {
		key, value string
	}{
		{keyDuration, strconv.Itoa(s.GameDurationSeconds)},
		{keyFakeButtons, strconv.Itoa(s.NumFakeButtons)},
		{keyMoveInterval, strconv.Itoa(s.MoveIntervalMs)},
		{keySound, strconv.FormatBool(s.SoundEnabled)},
		{keyWidth, strconv.Itoa(s.MainButtonStartWidth)},
		{keyHeight, strconv.Itoa(s.MainButtonStartHeight)},
	}
	for i, kv := range values {
		k, err := sec.NewKey(kv.key, kv.value)
		if err != nil {
			return fmt.Errorf("settings: cannot set %s: %w", kv.key, err)
		}
		if i == 0 {
			k.Comment = "ClickTheButtonGame User Settings"
		}
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("settings: cannot create directory %s: %w", dir, err)
		}
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("settings: cannot save %s: %w", path, err)
	}
	return nil
}
