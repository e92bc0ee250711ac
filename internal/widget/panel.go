package widget

import (
	"github.com/vovakirdan/tui-clicker/internal/core"
)

// Panel is the container buttons and labels live in. Later additions are
// drawn on top and win hit tests.
type Panel struct {
	Bounds     core.Rect
	Background core.Color

	buttons []*Button
	labels  []*Label
}

// NewPanel creates an empty panel.
func NewPanel(bounds core.Rect, bg core.Color) *Panel {
	return &Panel{Bounds: bounds, Background: bg}
}

// AddButton puts a button on the panel. Adding it twice is a no-op.
func (p *Panel) AddButton(b *Button) {
	if p.HasButton(b) {
		return
	}
	p.buttons = append(p.buttons, b)
}

// RemoveButton takes a button off the panel. Unknown buttons are ignored.
func (p *Panel) RemoveButton(b *Button) {
	for i, existing := range p.buttons {
		if existing == b {
			p.buttons = append(p.buttons[:i], p.buttons[i+1:]...)
			return
		}
	}
}

// HasButton reports whether b is on the panel.
func (p *Panel) HasButton(b *Button) bool {
	for _, existing := range p.buttons {
		if existing == b {
			return true
		}
	}
	return false
}

// Buttons returns the buttons in drawing order.
func (p *Panel) Buttons() []*Button {
	return p.buttons
}

// AddLabel puts a label on the panel.
func (p *Panel) AddLabel(l *Label) {
	p.labels = append(p.labels, l)
}

// RemoveLabel takes a label off the panel. Unknown labels are ignored.
func (p *Panel) RemoveLabel(l *Label) {
	for i, existing := range p.labels {
		if existing == l {
			p.labels = append(p.labels[:i], p.labels[i+1:]...)
			return
		}
	}
}

// Labels returns the labels in drawing order.
func (p *Panel) Labels() []*Label {
	return p.labels
}

// ButtonAt returns the top-most clickable button under (x, y), or nil.
func (p *Panel) ButtonAt(x, y int) *Button {
	for i := len(p.buttons) - 1; i >= 0; i-- {
		b := p.buttons[i]
		if b.Clickable() && b.Rect.Contains(x, y) {
			return b
		}
	}
	return nil
}

// Render clears the panel area and draws buttons, then labels.
func (p *Panel) Render(dst *core.Screen) {
	dst.ClearWith(p.Background)
	for _, b := range p.buttons {
		if b.Rect.Intersects(p.Bounds) {
			b.Render(dst)
		}
	}
	for _, l := range p.labels {
		l.Render(dst)
	}
}
