package font

import (
	"image"
	"image/color"
	"image/draw"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// GenerateAtlas rasterises the printable ASCII range into an atlas that
// matches grid, using the 7x13 fixed face. Glyphs are white on transparent
// so colour modulation tints them.
func GenerateAtlas(grid Grid) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, grid.AtlasWidth, grid.AtlasHeight))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	faceH := metrics.Height.Ceil()
	faceW := face.Advance

	d := &xfont.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}

	for c := ASCIILow; c <= ASCIIHigh; c++ {
		cell := grid.GlyphRect(byte(c))
		x := cell.X + max(cell.W-faceW, 0)/2
		y := cell.Y + max(cell.H-faceH, 0)/2 + ascent
		d.Dot = fixed.P(x, y)
		d.DrawString(string(rune(c)))
	}
	return img
}
