package tui

import (
	"testing"

	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
)

func newTestCanvas() (*cellCanvas, *core.Screen) {
	screen := core.NewScreen(80, 24)
	return newCellCanvas(screen, font.DefaultGrid(), 800, 600), screen
}

func TestCellCanvasFillRect(t *testing.T) {
	c, screen := newTestCanvas()
	c.Clear(core.ColorBackground)
	c.FillRect(core.NewRect(400, 300, 40, 40), core.ColorSquare)

	// 400..440 px -> cells 40..43, 300..340 px -> rows 12..13
	for y := 0; y < screen.Height(); y++ {
		for x := 0; x < screen.Width(); x++ {
			inside := x >= 40 && x < 44 && y >= 12 && y < 14
			cell := screen.Get(x, y)
			if inside && (cell.Rune != blockRune || cell.FG != core.ColorSquare) {
				t.Fatalf("expected block at (%d, %d), got %+v", x, y, cell)
			}
			if !inside && cell.Rune != ' ' {
				t.Fatalf("unexpected %q at (%d, %d)", cell.Rune, x, y)
			}
		}
	}
}

func TestCellCanvasFillRectMinimumCell(t *testing.T) {
	c, screen := newTestCanvas()
	c.Clear(core.ColorBackground)
	c.FillRect(core.NewRect(5, 5, 2, 2), core.ColorSquare)

	if screen.Get(0, 0).Rune != blockRune {
		t.Error("a rectangle smaller than a cell should still cover one cell")
	}
}

func TestCellCanvasGlyphs(t *testing.T) {
	c, screen := newTestCanvas()
	grid := font.DefaultGrid()
	tex := recorder.NewTexture(grid.AtlasWidth, grid.AtlasHeight)
	if err := tex.SetColorMod(core.ColorText); err != nil {
		t.Fatal(err)
	}

	c.Clear(core.ColorBackground)
	c.Blit(tex, grid.GlyphRect('6'), core.NewRect(733, 16, 25, 32))
	c.Blit(tex, grid.GlyphRect('0'), core.NewRect(758, 16, 25, 32))
	c.Blit(tex, grid.GlyphRect('x'), core.NewRect(100, 300, 25, 32))

	tests := []struct {
		x, y int
		want rune
	}{
		{73, 0, '6'},
		{74, 0, '0'}, // adjacent to the previous glyph
		{10, 12, 'x'},
	}
	for _, tc := range tests {
		cell := screen.Get(tc.x, tc.y)
		if cell.Rune != tc.want {
			t.Errorf("cell (%d, %d) = %q, expected %q", tc.x, tc.y, cell.Rune, tc.want)
		}
		if cell.FG != core.ColorText {
			t.Errorf("cell (%d, %d) colour = %+v, expected text colour", tc.x, tc.y, cell.FG)
		}
	}
}

func TestCellCanvasIgnoresOffAtlasBlit(t *testing.T) {
	c, screen := newTestCanvas()
	c.Clear(core.ColorBackground)
	c.Blit(recorder.NewTexture(256, 128), core.NewRect(1000, 1000, 14, 18), core.NewRect(0, 0, 25, 32))

	if screen.Get(0, 0).Rune != ' ' {
		t.Error("a source outside the atlas grid should draw nothing")
	}
}
