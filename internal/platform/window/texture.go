package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// texture is an ebiten image with a colour modulation applied at draw time.
type texture struct {
	img *ebiten.Image
	mod core.Color
}

func (t *texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

func (t *texture) SetColorMod(c core.Color) error {
	t.mod = c
	return nil
}

func (t *texture) Close() error {
	t.img.Deallocate()
	return nil
}

// loader uploads decoded images as ebiten images.
type loader struct{}

func (loader) NewTexture(img image.Image) (core.Texture, error) {
	return &texture{
		img: ebiten.NewImageFromImage(img),
		mod: core.RGBA(255, 255, 255, 255),
	}, nil
}

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
// Solid rectangles are drawn by scaling it.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
