// Package widget holds the small set of retained UI elements the game draws:
// buttons, transient labels and the panel that contains them.
package widget

import (
	"github.com/vovakirdan/tui-clicker/internal/core"
)

// Button is a clickable coloured rectangle with a centred caption.
type Button struct {
	Text      string
	Rect      core.Rect
	Color     core.Color
	TextColor core.Color
	Alpha     float64 // 0 = invisible, 1 = opaque
	Enabled   bool
	Hidden    bool
	Tooltip   string

	onClick func()
}

// NewButton creates an enabled, opaque button.
func NewButton(text string, r core.Rect, color core.Color) *Button {
	return &Button{
		Text:      text,
		Rect:      r,
		Color:     color,
		TextColor: core.ColorWhite,
		Alpha:     1,
		Enabled:   true,
	}
}

// OnClick sets the click handler, replacing any previous one.
func (b *Button) OnClick(fn func()) {
	b.onClick = fn
}

// Click runs the handler if the button can currently be clicked.
// It reports whether the click was handled.
func (b *Button) Click() bool {
	if !b.Clickable() || b.onClick == nil {
		return false
	}
	b.onClick()
	return true
}

// Clickable reports whether the button reacts to the mouse right now.
// A fully faded button cannot be hit.
func (b *Button) Clickable() bool {
	return b.Enabled && !b.Hidden && b.Alpha > 0
}

// MinWidth is the narrowest the button can be while still showing its caption.
func (b *Button) MinWidth() int {
	return len([]rune(b.Text)) + 2
}

// Render draws the button over whatever is already on the screen.
func (b *Button) Render(dst *core.Screen) {
	if b.Hidden || b.Alpha <= 0 || b.Rect.Empty() {
		return
	}
	bg := dst.Background()
	fill := b.Color
	if !b.Enabled {
		fill = fill.Blend(core.ColorHUD, 0.4)
	}
	fill = fill.Blend(bg, b.Alpha)
	dst.FillRect(b.Rect, fill)

	text := []rune(b.Text)
	if len(text) > b.Rect.W {
		text = text[:b.Rect.W]
	}
	fg := b.TextColor.Blend(fill, b.Alpha)
	x := b.Rect.X + (b.Rect.W-len(text))/2
	y := b.Rect.Y + b.Rect.H/2
	dst.DrawText(x, y, string(text), fg)
}

// Label is a piece of text that can fade against its background.
type Label struct {
	Text  string
	X, Y  int
	Color core.Color
	Alpha float64
}

// NewLabel creates an opaque label.
func NewLabel(text string, x, y int, color core.Color) *Label {
	return &Label{Text: text, X: x, Y: y, Color: color, Alpha: 1}
}

// Render draws the label, blending each rune with the cell underneath.
func (l *Label) Render(dst *core.Screen) {
	if l.Alpha <= 0 {
		return
	}
	i := 0
	for _, r := range l.Text {
		x := l.X + i
		i++
		if x < 0 || x >= dst.Width() || l.Y < 0 || l.Y >= dst.Height() {
			continue
		}
		cell := dst.GetCell(x, l.Y)
		cell.Rune = r
		cell.FG = l.Color.Blend(cell.BG, l.Alpha)
		dst.SetCell(x, l.Y, cell)
	}
}
