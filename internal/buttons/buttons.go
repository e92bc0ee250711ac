// Package buttons manages the decoy buttons scattered around the board.
package buttons

import (
	"math/rand"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/widget"
)

// Decoy captions.
const (
	DecoyText    = "Fake!"
	DecoyTooltip = "Don't click! These are fake buttons."
)

// Manager owns the decoy collection. The collection is only ever rebuilt as
// a whole.
type Manager struct {
	panel   *widget.Panel
	layout  config.LayoutConfig
	rng     *rand.Rand
	onClick func(decoy *widget.Button)

	decoys []*widget.Button
}

// New creates a manager placing decoys on panel. onClick runs when a decoy
// is clicked.
func New(panel *widget.Panel, layout config.LayoutConfig, rng *rand.Rand, onClick func(decoy *widget.Button)) *Manager {
	return &Manager{
		panel:   panel,
		layout:  layout,
		rng:     rng,
		onClick: onClick,
	}
}

// CreateButtons replaces the current decoys with count fresh ones.
func (m *Manager) CreateButtons(count int) {
	for _, d := range m.decoys {
		m.panel.RemoveButton(d)
	}
	if count < 0 {
		count = 0
	}

	m.decoys = make([]*widget.Button, count)
	for i := range m.decoys {
		d := widget.NewButton(DecoyText, core.NewRect(0, 0, m.layout.DecoyWidth, m.layout.DecoyHeight), core.ColorDecoy)
		d.Tooltip = DecoyTooltip
		d.OnClick(func() {
			if m.onClick != nil {
				m.onClick(d)
			}
		})
		m.decoys[i] = d
		m.panel.AddButton(d)
	}
}

// MoveButtons scatters every decoy over the configured share of the board,
// below the HUD.
func (m *Manager) MoveButtons() {
	board := m.Board()
	for _, d := range m.decoys {
		x := board.X + int(float64(board.W)*m.rng.Float64()*m.layout.DecoyWidthRatio)
		y := board.Y + int(float64(board.H)*m.rng.Float64()*m.layout.DecoyHeightRatio)
		x = core.Clamp(x, board.X, core.Max(board.X, board.Right()-d.Rect.W))
		y = core.Clamp(y, board.Y, core.Max(board.Y, board.Bottom()-d.Rect.H))
		d.Rect = d.Rect.MoveTo(x, y)
	}
}

// Board returns the part of the panel buttons may occupy.
func (m *Manager) Board() core.Rect {
	return m.panel.Bounds.Inset(m.layout.TopMarginRows, 0, m.layout.BottomMarginRows, 0)
}

// Buttons returns the current decoys.
func (m *Manager) Buttons() []*widget.Button {
	return m.decoys
}

// HitTest returns the top-most clickable decoy under (x, y), or nil.
func (m *Manager) HitTest(x, y int) *widget.Button {
	for i := len(m.decoys) - 1; i >= 0; i-- {
		d := m.decoys[i]
		if d.Clickable() && d.Rect.Contains(x, y) {
			return d
		}
	}
	return nil
}

// SetEnabled turns every decoy on or off.
func (m *Manager) SetEnabled(enabled bool) {
	for _, d := range m.decoys {
		d.Enabled = enabled
	}
}

// SetHidden shows or hides every decoy.
func (m *Manager) SetHidden(hidden bool) {
	for _, d := range m.decoys {
		d.Hidden = hidden
	}
}

// Recolor gives every decoy a shade of the decoy colour so they stand apart
// from each other without losing their warning hue.
func (m *Manager) Recolor() {
	for _, d := range m.decoys {
		d.Color = core.ColorDecoy.Blend(core.Pastel[m.rng.Intn(len(core.Pastel))], 0.75)
	}
}
