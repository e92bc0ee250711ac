// Package config provides YAML-based tuning for the clicker game and the
// environment overrides for paths and logging.
package config

// ClickerConfig contains all tuning for the clicker game.
type ClickerConfig struct {
	Timing    TimingConfig    `yaml:"timing"`
	Animation AnimationConfig `yaml:"animation"`
	Layout    LayoutConfig    `yaml:"layout"`
	Scoring   ScoringConfig   `yaml:"scoring"`
}

// TimingConfig holds timer periods in milliseconds.
type TimingConfig struct {
	GameTickMs      int `yaml:"game_tick_ms"`      // One second of game time
	CountdownStepMs int `yaml:"countdown_step_ms"` // Delay between countdown frames
	HighlightMs     int `yaml:"highlight_ms"`      // How long a hit target stays brightened
	FadeStepMs      int `yaml:"fade_step_ms"`      // Period of fade and float frames
}

// AnimationConfig defines how many frames each animation takes.
type AnimationConfig struct {
	FadeSteps  int `yaml:"fade_steps"`  // Frames from opaque to invisible
	FloatSteps int `yaml:"float_steps"` // Frames a floating score stays visible
	FloatRise  int `yaml:"float_rise"`  // Rows a floating score climbs
}

// LayoutConfig places buttons on the board. Sizes in pixels are converted to
// cells with CellWidthPx and CellHeightPx.
type LayoutConfig struct {
	TopMarginRows     int     `yaml:"top_margin_rows"`    // Rows reserved for the HUD
	BottomMarginRows  int     `yaml:"bottom_margin_rows"` // Rows kept free under buttons
	DecoyWidthRatio   float64 `yaml:"decoy_width_ratio"`  // Share of the width decoys spread over
	DecoyHeightRatio  float64 `yaml:"decoy_height_ratio"` // Share of the height decoys spread over
	DecoyWidth        int     `yaml:"decoy_width"`        // Cells
	DecoyHeight       int     `yaml:"decoy_height"`       // Cells
	CellWidthPx       int     `yaml:"cell_width_px"`
	CellHeightPx      int     `yaml:"cell_height_px"`
	MinButtonWidthPx  int     `yaml:"min_button_width_px"`
	MinButtonHeightPx int     `yaml:"min_button_height_px"`
}

// ScoringConfig defines points and target shrinking.
type ScoringConfig struct {
	HitPoints            int `yaml:"hit_points"`
	DecoyPenalty         int `yaml:"decoy_penalty"`
	AchievementThreshold int `yaml:"achievement_threshold"`
	ShrinkWidthPerPoint  int `yaml:"shrink_width_per_point"`  // Pixels
	ShrinkHeightPerPoint int `yaml:"shrink_height_per_point"` // Pixels
}
