package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the tuning file name looked up in each config directory.
const ConfigFile = "clicker.yaml"

// LoadClicker loads the game tuning.
// Search order: customPath -> ~/.ctb/configs/clicker.yaml -> ./configs/clicker.yaml -> embedded default
// Values missing from a file keep their defaults.
func LoadClicker(customPath string) (ClickerConfig, error) {
	cfg := DefaultClickerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultClickerConfig(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg.normalize(), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg.normalize(), nil
			}
			cfg = DefaultClickerConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg.normalize(), nil
		}
		cfg = DefaultClickerConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultClickerYAML, &cfg); err != nil {
		return DefaultClickerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg.normalize(), nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ctb", "configs", filename)
}

// normalize replaces nonsensical values with the defaults.
func (c ClickerConfig) normalize() ClickerConfig {
	d := DefaultClickerConfig()

	positive := func(v *int, def int) {
		if *v <= 0 {
			*v = def
		}
	}
	nonNegative := func(v *int, def int) {
		if *v < 0 {
			*v = def
		}
	}
	ratio := func(v *float64, def float64) {
		if *v <= 0 || *v > 1 {
			*v = def
		}
	}

	positive(&c.Timing.GameTickMs, d.Timing.GameTickMs)
	positive(&c.Timing.CountdownStepMs, d.Timing.CountdownStepMs)
	positive(&c.Timing.HighlightMs, d.Timing.HighlightMs)
	positive(&c.Timing.FadeStepMs, d.Timing.FadeStepMs)
	positive(&c.Animation.FadeSteps, d.Animation.FadeSteps)
	positive(&c.Animation.FloatSteps, d.Animation.FloatSteps)
	nonNegative(&c.Animation.FloatRise, d.Animation.FloatRise)
	nonNegative(&c.Layout.TopMarginRows, d.Layout.TopMarginRows)
	nonNegative(&c.Layout.BottomMarginRows, d.Layout.BottomMarginRows)
	ratio(&c.Layout.DecoyWidthRatio, d.Layout.DecoyWidthRatio)
	ratio(&c.Layout.DecoyHeightRatio, d.Layout.DecoyHeightRatio)
	positive(&c.Layout.DecoyWidth, d.Layout.DecoyWidth)
	positive(&c.Layout.DecoyHeight, d.Layout.DecoyHeight)
	positive(&c.Layout.CellWidthPx, d.Layout.CellWidthPx)
	positive(&c.Layout.CellHeightPx, d.Layout.CellHeightPx)
	positive(&c.Layout.MinButtonWidthPx, d.Layout.MinButtonWidthPx)
	positive(&c.Layout.MinButtonHeightPx, d.Layout.MinButtonHeightPx)
	nonNegative(&c.Scoring.HitPoints, d.Scoring.HitPoints)
	nonNegative(&c.Scoring.DecoyPenalty, d.Scoring.DecoyPenalty)
	positive(&c.Scoring.AchievementThreshold, d.Scoring.AchievementThreshold)
	nonNegative(&c.Scoring.ShrinkWidthPerPoint, d.Scoring.ShrinkWidthPerPoint)
	nonNegative(&c.Scoring.ShrinkHeightPerPoint, d.Scoring.ShrinkHeightPerPoint)
	return c
}
