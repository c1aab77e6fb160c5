package core

import (
	"fmt"
	"image/color"
)

// Color is a non-premultiplied 8-bit RGBA colour.
type Color struct {
	R, G, B, A uint8
}

// RGBA creates a colour from its components.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Palette colours used by the default scene.
var (
	ColorBackground = RGBA(24, 24, 24, 255)
	ColorText       = RGBA(255, 255, 255, 255)
	ColorSquare     = RGBA(255, 209, 220, 255)
)

// NRGBA converts to the standard library colour type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the colour as #rrggbb, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp blends c toward o by t in [0, 1].
func (c Color) Lerp(o Color, t float64) Color {
	t = ClampF(t, 0, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return Color{R: mix(c.R, o.R), G: mix(c.G, o.G), B: mix(c.B, o.B), A: mix(c.A, o.A)}
}
