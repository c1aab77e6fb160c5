package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// canvas draws onto the ebiten screen image.
type canvas struct {
	dst *ebiten.Image
	op  ebiten.DrawImageOptions
}

func (c *canvas) Clear(col core.Color) {
	c.dst.Fill(col.NRGBA())
}

func (c *canvas) FillRect(r core.Rect, col core.Color) {
	if r.Empty() {
		return
	}
	c.op.GeoM = fillGeoM(r)
	c.op.ColorScale = tint(col)
	c.dst.DrawImage(ensureWhitePixel(), &c.op)
}

func (c *canvas) Blit(tex core.Texture, src, dst core.Rect) {
	t, ok := tex.(*texture)
	if !ok || src.Empty() || dst.Empty() {
		return
	}

	sub := t.img.SubImage(bounds(src)).(*ebiten.Image)
	c.op.GeoM = blitGeoM(src, dst)
	c.op.ColorScale = tint(t.mod)
	c.dst.DrawImage(sub, &c.op)
}

// fillGeoM stretches the 1x1 white pixel over r.
func fillGeoM(r core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(r.W), float64(r.H))
	m.Translate(float64(r.X), float64(r.Y))
	return m
}

// blitGeoM maps a sub-image of src's size onto dst. The sub-image keeps its
// atlas bounds but DrawImage draws it from the origin.
func blitGeoM(src, dst core.Rect) ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(float64(dst.W)/float64(src.W), float64(dst.H)/float64(src.H))
	m.Translate(float64(dst.X), float64(dst.Y))
	return m
}

func tint(col core.Color) ebiten.ColorScale {
	var s ebiten.ColorScale
	s.ScaleWithColor(col.NRGBA())
	return s
}

func bounds(r core.Rect) image.Rectangle {
	return image.Rect(r.X, r.Y, r.Right(), r.Bottom())
}
