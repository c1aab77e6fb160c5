package window

import (
	"image"
	"math"
	"testing"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

const eps = 1e-6

func TestFillGeoM(t *testing.T) {
	tests := []struct {
		name           string
		r              core.Rect
		wantX0, wantY0 float64
		wantX1, wantY1 float64
	}{
		{"square", core.NewRect(400, 300, 40, 40), 400, 300, 440, 340},
		{"origin", core.NewRect(0, 0, 800, 600), 0, 0, 800, 600},
		{"wide", core.NewRect(10, 20, 30, 5), 10, 20, 40, 25},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := fillGeoM(tc.r)
			// The white pixel spans (0,0)-(1,1)
			x0, y0 := m.Apply(0, 0)
			x1, y1 := m.Apply(1, 1)
			if math.Abs(x0-tc.wantX0) > eps || math.Abs(y0-tc.wantY0) > eps {
				t.Errorf("top-left = (%f, %f), expected (%f, %f)", x0, y0, tc.wantX0, tc.wantY0)
			}
			if math.Abs(x1-tc.wantX1) > eps || math.Abs(y1-tc.wantY1) > eps {
				t.Errorf("bottom-right = (%f, %f), expected (%f, %f)", x1, y1, tc.wantX1, tc.wantY1)
			}
		})
	}
}

func TestBlitGeoM(t *testing.T) {
	tests := []struct {
		name           string
		src, dst       core.Rect
		wantX1, wantY1 float64
	}{
		{"unscaled", core.NewRect(28, 18, 14, 18), core.NewRect(100, 50, 14, 18), 114, 68},
		{"doubled glyph", core.NewRect(28, 18, 14, 18), core.NewRect(100, 50, 28, 36), 128, 86},
		{"uneven axes", core.NewRect(0, 0, 10, 20), core.NewRect(5, 5, 15, 10), 20, 15},
		{"shrunk", core.NewRect(0, 0, 20, 20), core.NewRect(0, 0, 5, 10), 5, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := blitGeoM(tc.src, tc.dst)
			x0, y0 := m.Apply(0, 0)
			if math.Abs(x0-float64(tc.dst.X)) > eps || math.Abs(y0-float64(tc.dst.Y)) > eps {
				t.Errorf("top-left = (%f, %f), expected (%d, %d)", x0, y0, tc.dst.X, tc.dst.Y)
			}
			x1, y1 := m.Apply(float64(tc.src.W), float64(tc.src.H))
			if math.Abs(x1-tc.wantX1) > eps || math.Abs(y1-tc.wantY1) > eps {
				t.Errorf("bottom-right = (%f, %f), expected (%f, %f)", x1, y1, tc.wantX1, tc.wantY1)
			}
		})
	}
}

func TestTint(t *testing.T) {
	tests := []struct {
		name       string
		col        core.Color
		r, g, b, a float32
	}{
		{"white keeps the texture", core.ColorText, 1, 1, 1, 1},
		{"opaque square colour", core.ColorSquare, 1, 209.0 / 255, 220.0 / 255, 1},
		{"black", core.RGBA(0, 0, 0, 255), 0, 0, 0, 1},
		// Components are premultiplied by alpha
		{"half transparent red", core.RGBA(255, 0, 0, 128), 128.0 / 255, 0, 0, 128.0 / 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := tint(tc.col)
			got := [4]float32{s.R(), s.G(), s.B(), s.A()}
			want := [4]float32{tc.r, tc.g, tc.b, tc.a}
			for i := range got {
				if math.Abs(float64(got[i]-want[i])) > 1e-3 {
					t.Errorf("scale = %v, expected %v", got, want)
					break
				}
			}
		})
	}
}

func TestBounds(t *testing.T) {
	got := bounds(core.NewRect(14, 18, 14, 18))
	if want := image.Rect(14, 18, 28, 36); got != want {
		t.Errorf("bounds() = %v, expected %v", got, want)
	}
}
