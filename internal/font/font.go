// Package font implements fixed-grid bitmap fonts: an atlas image split into
// equally sized cells, one per printable ASCII character, and a monospace
// text renderer that blits those cells onto a core.Canvas.
package font

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // atlas files are PNG
	"io"
	"os"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// Printable ASCII range covered by every atlas.
const (
	ASCIILow   = 32
	ASCIIHigh  = 126
	GlyphCount = ASCIIHigh - ASCIILow + 1
)

// Grid describes the atlas layout.
type Grid struct {
	AtlasWidth  int
	AtlasHeight int
	Cols        int
	Rows        int
}

// DefaultGrid is the layout of the bundled charmap.png: 256x128 pixels,
// 18 columns by 7 rows.
func DefaultGrid() Grid {
	return Grid{AtlasWidth: 256, AtlasHeight: 128, Cols: 18, Rows: 7}
}

// CharWidth is the cell width, truncated.
func (g Grid) CharWidth() int {
	return g.AtlasWidth / g.Cols
}

// CharHeight is the cell height, truncated.
func (g Grid) CharHeight() int {
	return g.AtlasHeight / g.Rows
}

// Validate checks that the grid is usable and can hold every glyph.
func (g Grid) Validate() error {
	if g.AtlasWidth <= 0 || g.AtlasHeight <= 0 {
		return fmt.Errorf("font: atlas size %dx%d must be positive", g.AtlasWidth, g.AtlasHeight)
	}
	if g.Cols <= 0 || g.Rows <= 0 {
		return fmt.Errorf("font: grid %dx%d must be positive", g.Cols, g.Rows)
	}
	if g.Cols*g.Rows < GlyphCount {
		return fmt.Errorf("font: grid %dx%d holds %d cells, need %d", g.Cols, g.Rows, g.Cols*g.Rows, GlyphCount)
	}
	if g.CharWidth() == 0 || g.CharHeight() == 0 {
		return fmt.Errorf("font: atlas %dx%d too small for a %dx%d grid", g.AtlasWidth, g.AtlasHeight, g.Cols, g.Rows)
	}
	return nil
}

// GlyphRect returns the atlas rectangle of character c. Cells are assigned in
// row-major order starting at ASCIILow.
func (g Grid) GlyphRect(c byte) core.Rect {
	index := int(c) - ASCIILow
	col := index % g.Cols
	row := index / g.Cols
	return core.NewRect(col*g.CharWidth(), row*g.CharHeight(), g.CharWidth(), g.CharHeight())
}

// CharAt maps an atlas position back to the character whose cell contains it.
// ok is false for positions outside the glyph cells.
func (g Grid) CharAt(x, y int) (c byte, ok bool) {
	if x < 0 || y < 0 {
		return 0, false
	}
	col := x / g.CharWidth()
	row := y / g.CharHeight()
	if col >= g.Cols || row >= g.Rows {
		return 0, false
	}
	index := row*g.Cols + col
	if index >= GlyphCount {
		return 0, false
	}
	return byte(ASCIILow + index), true
}

// Font is an atlas texture plus the glyph rectangle of every character.
type Font struct {
	texture core.Texture
	grid    Grid
	glyphs  [GlyphCount]core.Rect
}

// New wraps an uploaded atlas texture. The texture size is not checked
// against the grid; see Mismatch.
func New(texture core.Texture, grid Grid) *Font {
	f := &Font{texture: texture, grid: grid}
	for c := ASCIILow; c <= ASCIIHigh; c++ {
		f.glyphs[c-ASCIILow] = grid.GlyphRect(byte(c))
	}
	return f
}

// Load decodes the atlas at path and uploads it through loader.
func Load(loader core.TextureLoader, path string, grid Grid) (*Font, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("font: cannot open atlas %s: %w", path, err)
	}
	defer file.Close()

	f, err := Decode(loader, file, grid)
	if err != nil {
		return nil, fmt.Errorf("font: %s: %w", path, err)
	}
	return f, nil
}

// Decode reads an atlas image from r and uploads it through loader.
func Decode(loader core.TextureLoader, r io.Reader, grid Grid) (*Font, error) {
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("cannot decode atlas: %w", err)
	}
	return FromImage(loader, img, grid)
}

// FromImage uploads an already decoded atlas through loader.
func FromImage(loader core.TextureLoader, img image.Image, grid Grid) (*Font, error) {
	if loader == nil {
		return nil, errors.New("font: no texture loader")
	}
	tex, err := loader.NewTexture(img)
	if err != nil {
		return nil, fmt.Errorf("cannot create atlas texture: %w", err)
	}
	return New(tex, grid), nil
}

// Glyph returns the atlas rectangle for c. Characters outside the printable
// ASCII range are a programming error.
func (f *Font) Glyph(c byte) core.Rect {
	if c < ASCIILow || c > ASCIIHigh {
		panic(fmt.Sprintf("font: character %#x outside [%d, %d]", c, ASCIILow, ASCIIHigh))
	}
	return f.glyphs[c-ASCIILow]
}

// Texture returns the atlas texture.
func (f *Font) Texture() core.Texture {
	return f.texture
}

// Grid returns the atlas layout.
func (f *Font) Grid() Grid {
	return f.grid
}

// CharWidth is the unscaled advance of every glyph.
func (f *Font) CharWidth() int {
	return f.grid.CharWidth()
}

// CharHeight is the unscaled height of every glyph.
func (f *Font) CharHeight() int {
	return f.grid.CharHeight()
}

// Mismatch reports whether the texture size differs from the grid's declared
// atlas size. Glyph lookup still works but renders the wrong pixels.
func (f *Font) Mismatch() bool {
	w, h := f.texture.Size()
	return w != f.grid.AtlasWidth || h != f.grid.AtlasHeight
}

// Close releases the atlas texture. Safe to call more than once.
func (f *Font) Close() error {
	if f.texture == nil {
		return nil
	}
	err := f.texture.Close()
	f.texture = nil
	return err
}
