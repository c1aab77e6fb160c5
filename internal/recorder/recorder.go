// Package recorder implements core.Canvas and core.Texture without any
// graphics backend. Every draw call is kept as an Op so headless runs and
// tests can inspect exactly what a frame would have drawn.
package recorder

import (
	"errors"
	"image"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// OpKind identifies a recorded draw call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpBlit
)

// Op is one recorded draw call.
type Op struct {
	Kind    OpKind
	Color   core.Color // Clear/fill colour, or the texture modulation at blit time
	Src     core.Rect  // Blit source
	Dst     core.Rect  // Fill or blit destination
	Texture core.Texture
}

// Canvas records draw calls.
type Canvas struct {
	Ops []Op
}

// Clear records a clear.
func (c *Canvas) Clear(color core.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpClear, Color: color})
}

// FillRect records a filled rectangle.
func (c *Canvas) FillRect(r core.Rect, color core.Color) {
	c.Ops = append(c.Ops, Op{Kind: OpFill, Dst: r, Color: color})
}

// Blit records a texture copy along with the texture's current modulation.
func (c *Canvas) Blit(tex core.Texture, src, dst core.Rect) {
	op := Op{Kind: OpBlit, Src: src, Dst: dst, Texture: tex}
	if t, ok := tex.(*Texture); ok {
		op.Color = t.Mod
	}
	c.Ops = append(c.Ops, op)
}

// Reset discards all recorded ops, keeping capacity.
func (c *Canvas) Reset() {
	c.Ops = c.Ops[:0]
}

// Filter returns the recorded ops of the given kind.
func (c *Canvas) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range c.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// ErrClosed is returned by operations on a closed texture.
var ErrClosed = errors.New("recorder: texture closed")

// Texture is an in-memory texture that remembers its modulation.
type Texture struct {
	W, H   int
	Mod    core.Color
	Closed bool

	// ModErr, when set, is returned by SetColorMod.
	ModErr error
}

// NewTexture creates a texture of the given size with white modulation.
func NewTexture(w, h int) *Texture {
	return &Texture{W: w, H: h, Mod: core.RGBA(255, 255, 255, 255)}
}

// Size returns the texture dimensions.
func (t *Texture) Size() (int, int) {
	return t.W, t.H
}

// SetColorMod stores c as the current modulation.
func (t *Texture) SetColorMod(c core.Color) error {
	if t.Closed {
		return ErrClosed
	}
	if t.ModErr != nil {
		return t.ModErr
	}
	t.Mod = c
	return nil
}

// Close marks the texture closed.
func (t *Texture) Close() error {
	if t.Closed {
		return ErrClosed
	}
	t.Closed = true
	return nil
}

// Loader creates recorder textures sized from the uploaded image.
type Loader struct {
	// Err, when set, fails every upload.
	Err error

	Textures []*Texture
}

// NewTexture implements core.TextureLoader.
func (l *Loader) NewTexture(img image.Image) (core.Texture, error) {
	if l.Err != nil {
		return nil, l.Err
	}
	b := img.Bounds()
	t := NewTexture(b.Dx(), b.Dy())
	l.Textures = append(l.Textures, t)
	return t, nil
}
