package app

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// flash fades the square from the flash colour back to its own colour after
// a bounce. A zero duration disables it.
type flash struct {
	duration float32 // seconds
	tween    *gween.Tween
	current  float32
}

func newFlash(d time.Duration) *flash {
	return &flash{duration: float32(d.Seconds())}
}

func (f *flash) trigger() {
	if f.duration <= 0 {
		return
	}
	f.tween = gween.New(1, 0, f.duration, ease.OutQuad)
	f.current = 1
}

func (f *flash) advance(deltaMs float64) {
	if f.tween == nil {
		return
	}
	value, done := f.tween.Update(float32(deltaMs / 1000))
	f.current = value
	if done {
		f.tween = nil
		f.current = 0
	}
}

// value is the blend factor toward the flash colour, in [0, 1].
func (f *flash) value() float64 {
	return float64(f.current)
}
