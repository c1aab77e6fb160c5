package font

import (
	"math"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// DrawChar blits one glyph with its top-left corner at (x, y), scaled by
// scale. c must be printable ASCII.
func DrawChar(dst core.Canvas, f *Font, c byte, x, y, scale float64) {
	src := f.Glyph(c)
	dst.Blit(f.texture, src, core.Rect{
		X: int(math.Floor(x)),
		Y: int(math.Floor(y)),
		W: int(math.Floor(float64(f.CharWidth()) * scale)),
		H: int(math.Floor(float64(f.CharHeight()) * scale)),
	})
}

// DrawText draws text left to right starting at (x, y). The colour is applied
// to the whole atlas, so two differently coloured strings cannot be drawn
// from the same font at once. Every byte is drawn as one glyph; there is no
// kerning, wrapping or newline handling.
func DrawText(dst core.Canvas, f *Font, text string, color core.Color, x, y, scale float64) error {
	if err := f.texture.SetColorMod(color); err != nil {
		return err
	}

	advance := float64(f.CharWidth()) * scale
	for i := 0; i < len(text); i++ {
		DrawChar(dst, f, text[i], x, y, scale)
		x += advance
	}
	return nil
}

// TextWidth returns the width DrawText covers for text at scale.
func TextWidth(f *Font, text string, scale float64) float64 {
	return float64(f.CharWidth()) * scale * float64(len(text))
}
