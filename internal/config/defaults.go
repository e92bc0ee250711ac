package config

import (
	_ "embed"
)

//go:embed defaults/clicker.yaml
var defaultClickerYAML []byte

// DefaultClickerConfig returns the built-in tuning.
func DefaultClickerConfig() ClickerConfig {
	return ClickerConfig{
		Timing: TimingConfig{
			GameTickMs:      1000,
			CountdownStepMs: 700,
			HighlightMs:     120,
			FadeStepMs:      50,
		},
		Animation: AnimationConfig{
			FadeSteps:  10,
			FloatSteps: 20,
			FloatRise:  3,
		},
		Layout: LayoutConfig{
			TopMarginRows:     3,
			BottomMarginRows:  2,
			DecoyWidthRatio:   0.8,
			DecoyHeightRatio:  0.6,
			DecoyWidth:        9,
			DecoyHeight:       3,
			CellWidthPx:       8,
			CellHeightPx:      16,
			MinButtonWidthPx:  40,
			MinButtonHeightPx: 20,
		},
		Scoring: ScoringConfig{
			HitPoints:            1,
			DecoyPenalty:         2,
			AchievementThreshold: 20,
			ShrinkWidthPerPoint:  2,
			ShrinkHeightPerPoint: 1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultClickerYAML
}
