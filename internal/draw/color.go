package draw

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ANSI color sequences for text overlays.
const (
	ColorReset      = "\033[0m"
	ColorBrightCyan = "\033[96m"
	ColorDim        = "\033[2m"
)

// Color is a 24-bit RGB color.
type Color struct {
	R, G, B uint8
}

// Palette used by both programs.
var (
	ColorBlack   = Color{}
	ColorWhite   = MustHex("#ffffff")
	ColorNight   = MustHex("#000033")
	ColorGreen   = MustHex("#00ff00")
	ColorRed     = MustHex("#ff0000")
	ColorOrange  = MustHex("#ff6600")
	ColorYellow  = MustHex("#ffff00")
	ColorCyan    = MustHex("#00ffff")
	ColorGuide   = MustHex("#2a2a44")
	ColorDimGray = MustHex("#808080")
)

// MustHex parses a "#rrggbb" color and panics on malformed input.
// Only used for package-level palette constants.
func MustHex(s string) Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("draw: bad color %q: %v", s, err))
	}
	return fromColorful(c)
}

// HSV builds a color from hue (degrees), saturation and value (0..1).
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return fromColorful(colorful.Hsv(h, s, v).Clamped())
}

// Blend mixes c toward other by t (0 = c, 1 = other) in RGB space.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	return fromColorful(c.colorful().BlendRgb(other.colorful(), t).Clamped())
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// RGBA implements image/color.Color so palette colors can be used with image APIs.
func (c Color) RGBA() (r, g, b, a uint32) {
	r, g, b = uint32(c.R), uint32(c.G), uint32(c.B)
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

// appendFg appends a truecolor foreground SGR parameter list ("38;2;r;g;b").
func (c Color) appendFg(buf []byte) []byte {
	return fmt.Appendf(buf, "38;2;%d;%d;%d", c.R, c.G, c.B)
}

// appendBg appends a truecolor background SGR parameter list ("48;2;r;g;b").
func (c Color) appendBg(buf []byte) []byte {
	return fmt.Appendf(buf, "48;2;%d;%d;%d", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

var _ color.Color = Color{}

func fromColorful(c colorful.Color) Color {
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b}
}
