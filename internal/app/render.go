package app

import (
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
)

// counterMargin is the FPS counter's distance from the top-right corner.
const counterMargin = 16

// Render draws the current frame: background, square, then the FPS counter
// right-aligned in the top-right corner.
func (l *Loop) Render(dst core.Canvas) error {
	dst.Clear(l.palette.Background)

	squareColor := l.palette.Square
	if t := l.flash.value(); t > 0 {
		squareColor = squareColor.Lerp(l.palette.Flash, t)
	}
	dst.FillRect(l.square.Rect(), squareColor)

	text := l.fps.Text()
	x := l.width - counterMargin - font.TextWidth(l.font, text, l.scale)
	return font.DrawText(dst, l.font, text, l.palette.Text, x, counterMargin, l.scale)
}
