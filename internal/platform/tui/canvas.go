package tui

import (
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
)

// blockRune fills the cells covered by a rectangle.
const blockRune = '█'

// cellCanvas rasterises the pixel scene onto a terminal screen. Pixel
// coordinates are scaled from the scene size to the screen's cell grid, and
// glyph blits are mapped back from their atlas cell to the character they
// show. Glyphs of one DrawText call stay on adjacent cells.
type cellCanvas struct {
	screen *core.Screen
	grid   font.Grid
	sceneW int
	sceneH int

	last     core.Rect // destination of the previous glyph
	lastX    int
	lastY    int
	haveLast bool
}

func newCellCanvas(screen *core.Screen, grid font.Grid, sceneW, sceneH int) *cellCanvas {
	return &cellCanvas{
		screen: screen,
		grid:   grid,
		sceneW: max(sceneW, 1),
		sceneH: max(sceneH, 1),
	}
}

func (c *cellCanvas) cellX(px int) int {
	return px * c.screen.Width() / c.sceneW
}

func (c *cellCanvas) cellY(py int) int {
	return py * c.screen.Height() / c.sceneH
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

func (c *cellCanvas) Clear(col core.Color) {
	c.screen.Clear(col)
	c.haveLast = false
}

func (c *cellCanvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	x0, y0 := c.cellX(r.X), c.cellY(r.Y)
	x1 := ceilDiv(r.Right()*c.screen.Width(), c.sceneW)
	y1 := ceilDiv(r.Bottom()*c.screen.Height(), c.sceneH)
	c.screen.FillRect(core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1)), blockRune, col)
}

func (c *cellCanvas) Blit(tex core.Texture, src, dst core.Rect) {
	ch, ok := c.grid.CharAt(src.X, src.Y)
	if !ok {
		return
	}
	fg := core.RGBA(255, 255, 255, 255)
	if t, ok := tex.(*recorder.Texture); ok {
		fg = t.Mod
	}

	x, y := c.cellX(dst.X), c.cellY(dst.Y)
	if c.haveLast && dst.Y == c.last.Y && abs(dst.X-c.last.Right()) <= 1 {
		x, y = c.lastX+1, c.lastY
	}
	c.screen.SetRune(x, y, rune(ch), fg)

	c.last, c.lastX, c.lastY, c.haveLast = dst, x, y, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
