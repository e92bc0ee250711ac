package core

import colorful "github.com/lucasb-eyer/go-colorful"

// Color is a 24-bit RGB colour. Terminals without truecolor support get the
// nearest match from lipgloss.
type Color struct {
	R, G, B uint8
}

// RGB builds a colour from its components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Predefined colours for game elements.
var (
	ColorBlack      = RGB(0, 0, 0)
	ColorWhite      = RGB(255, 255, 255)
	ColorText       = RGB(33, 33, 33)
	ColorHUD        = RGB(250, 250, 250)
	ColorTarget     = RGB(100, 181, 246)
	ColorTargetDark = RGB(33, 150, 243)
	ColorDecoy      = RGB(244, 67, 54)
	ColorGain       = RGB(46, 160, 67)
	ColorPenalty    = RGB(211, 47, 47)
	ColorBackground = RGB(240, 248, 255)
	ColorOverlay    = RGB(38, 50, 56)
)

// Pastel is the palette the background and buttons are recoloured from.
var Pastel = []Color{
	RGB(197, 225, 165), // green
	RGB(255, 224, 178), // orange
	RGB(178, 235, 242), // cyan
	RGB(255, 205, 210), // pink
	RGB(248, 187, 208), // magenta
	RGB(255, 245, 157), // yellow
	RGB(206, 147, 216), // purple
	RGB(144, 202, 249), // blue
}

const colorFactor = 0.7

func (c Color) toColorful() colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return Color{R: r, G: g, B: b}
}

// Darker scales every component down by a fixed factor.
func (c Color) Darker() Color {
	cc := c.toColorful()
	return fromColorful(colorful.Color{R: cc.R * colorFactor, G: cc.G * colorFactor, B: cc.B * colorFactor})
}

// Brighter scales every component up by the inverse factor, saturating at 255.
// Pure black components are lifted to a small floor so black can brighten.
func (c Color) Brighter() Color {
	const floor = 3.0 / 255
	up := func(v float64) float64 {
		return max(v, floor) / colorFactor
	}
	cc := c.toColorful()
	return fromColorful(colorful.Color{R: up(cc.R), G: up(cc.G), B: up(cc.B)})
}

// Blend mixes c over bg with the given opacity in [0, 1].
func (c Color) Blend(bg Color, alpha float64) Color {
	return fromColorful(bg.toColorful().BlendRgb(c.toColorful(), ClampF(alpha, 0, 1)))
}

// Hex returns the colour as a "#rrggbb" string.
func (c Color) Hex() string {
	return c.toColorful().Hex()
}
