package config

import "math"

// Sizer turns pixel sizes from the settings into board cells and shrinks the
// target as the score grows.
type Sizer struct {
	layout  LayoutConfig
	scoring ScoringConfig
}

// NewSizer creates a sizer from the tuning.
func NewSizer(cfg ClickerConfig) *Sizer {
	return &Sizer{layout: cfg.Layout, scoring: cfg.Scoring}
}

// TargetPixels returns the target size in pixels for a score:
// start minus the per-point shrink, never below the minimum.
func (s *Sizer) TargetPixels(startW, startH, score int) (int, int) {
	if score < 0 {
		score = 0
	}
	w := startW - s.scoring.ShrinkWidthPerPoint*score
	h := startH - s.scoring.ShrinkHeightPerPoint*score
	if w < s.layout.MinButtonWidthPx {
		w = s.layout.MinButtonWidthPx
	}
	if h < s.layout.MinButtonHeightPx {
		h = s.layout.MinButtonHeightPx
	}
	return w, h
}

// TargetCells returns the target size in cells for a score. The width never
// drops below minW so the caption stays readable.
func (s *Sizer) TargetCells(startW, startH, score, minW int) (int, int) {
	pw, ph := s.TargetPixels(startW, startH, score)
	w, h := s.Cells(pw, ph)
	if w < minW {
		w = minW
	}
	return w, h
}

// Cells converts a pixel size to cells, rounding to nearest, at least 1x1.
func (s *Sizer) Cells(pw, ph int) (int, int) {
	w := int(math.Round(float64(pw) / float64(s.layout.CellWidthPx)))
	h := int(math.Round(float64(ph) / float64(s.layout.CellHeightPx)))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return w, h
}
