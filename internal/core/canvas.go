package core

import "image"

// Texture is an image uploaded to a backend, used as a blit source.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)

	// SetColorMod sets the colour and alpha multiplied into every subsequent
	// blit from this texture. The modulation applies to the texture as a
	// whole, not per draw call.
	SetColorMod(c Color) error

	// Close releases the backend resources held by the texture.
	Close() error
}

// TextureLoader uploads decoded images to a backend.
type TextureLoader interface {
	NewTexture(img image.Image) (Texture, error)
}

// Canvas is the drawing surface a backend hands to the renderer each frame.
type Canvas interface {
	// Clear fills the whole surface with c.
	Clear(c Color)

	// FillRect fills r with c.
	FillRect(r Rect, c Color)

	// Blit copies the src region of tex to the dst region, scaling as needed.
	Blit(tex Texture, src, dst Rect)
}
