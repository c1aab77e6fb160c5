package font

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
)

func TestDefaultGridCellSize(t *testing.T) {
	g := DefaultGrid()
	if g.CharWidth() != 14 {
		t.Errorf("CharWidth() = %d, expected 14", g.CharWidth())
	}
	if g.CharHeight() != 18 {
		t.Errorf("CharHeight() = %d, expected 18", g.CharHeight())
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestGlyphRectForEveryCharacter(t *testing.T) {
	f := New(recorder.NewTexture(256, 128), DefaultGrid())

	for c := ASCIILow; c <= ASCIIHigh; c++ {
		col := (c - 32) % 18
		row := (c - 32) / 18
		want := core.NewRect(col*14, row*18, 14, 18)

		if got := f.Glyph(byte(c)); got != want {
			t.Errorf("Glyph(%q) = %+v, expected %+v", rune(c), got, want)
		}
	}
}

func TestGlyphSpotChecks(t *testing.T) {
	f := New(recorder.NewTexture(256, 128), DefaultGrid())

	tests := []struct {
		c    byte
		want core.Rect
	}{
		{' ', core.NewRect(0, 0, 14, 18)},
		{'1', core.NewRect(17*14, 0, 14, 18)}, // index 17, last column of row 0
		{'2', core.NewRect(0, 18, 14, 18)},    // wraps to row 1
		{'~', core.NewRect(4*14, 5*18, 14, 18)},
	}
	for _, tc := range tests {
		if got := f.Glyph(tc.c); got != tc.want {
			t.Errorf("Glyph(%q) = %+v, expected %+v", tc.c, got, tc.want)
		}
	}
}

func TestGlyphOutOfRangePanics(t *testing.T) {
	f := New(recorder.NewTexture(256, 128), DefaultGrid())

	for _, c := range []byte{'\n', 31, 127, 200} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Glyph(%#x) should panic", c)
				}
			}()
			f.Glyph(c)
		}()
	}
}

func TestCharAtInvertsGlyphRect(t *testing.T) {
	g := DefaultGrid()
	for c := ASCIILow; c <= ASCIIHigh; c++ {
		r := g.GlyphRect(byte(c))
		got, ok := g.CharAt(r.X, r.Y)
		if !ok || got != byte(c) {
			t.Errorf("CharAt(%d, %d) = %q/%v, expected %q", r.X, r.Y, got, ok, rune(c))
		}
	}

	// The unused cells after '~' map to nothing
	if _, ok := g.CharAt(5*14, 5*18); ok {
		t.Error("CharAt on an unused cell should fail")
	}
	if _, ok := g.CharAt(-1, 0); ok {
		t.Error("CharAt on a negative position should fail")
	}
}

func TestGridValidate(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
	}{
		{"zero atlas", Grid{AtlasWidth: 0, AtlasHeight: 128, Cols: 18, Rows: 7}},
		{"zero cols", Grid{AtlasWidth: 256, AtlasHeight: 128, Cols: 0, Rows: 7}},
		{"too few cells", Grid{AtlasWidth: 256, AtlasHeight: 128, Cols: 10, Rows: 9}},
		{"cells smaller than a pixel", Grid{AtlasWidth: 10, AtlasHeight: 128, Cols: 18, Rows: 7}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.grid.Validate(); err == nil {
				t.Error("Validate() should fail")
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charmap.png")
	var buf bytes.Buffer
	if err := png.Encode(&buf, GenerateAtlas(DefaultGrid())); err != nil {
		t.Fatalf("png.Encode() failed: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	loader := &recorder.Loader{}
	f, err := Load(loader, path, DefaultGrid())
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if len(loader.Textures) != 1 {
		t.Fatalf("expected one uploaded texture, got %d", len(loader.Textures))
	}
	if f.Mismatch() {
		t.Error("generated atlas should match the default grid")
	}

	if err := f.Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
	if !loader.Textures[0].Closed {
		t.Error("Close() should release the atlas texture")
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() should be a no-op, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(&recorder.Loader{}, filepath.Join(dir, "missing.png"), DefaultGrid()); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load() of missing file = %v, expected ErrNotExist", err)
	}

	junk := filepath.Join(dir, "junk.png")
	if err := os.WriteFile(junk, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(&recorder.Loader{}, junk, DefaultGrid()); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Errorf("Load() of junk file = %v, expected decode error", err)
	}

	uploadErr := errors.New("no gpu")
	img := image.NewRGBA(image.Rect(0, 0, 256, 128))
	if _, err := FromImage(&recorder.Loader{Err: uploadErr}, img, DefaultGrid()); !errors.Is(err, uploadErr) {
		t.Errorf("FromImage() = %v, expected wrapped upload error", err)
	}
}

func TestMismatch(t *testing.T) {
	f := New(recorder.NewTexture(512, 128), DefaultGrid())
	if !f.Mismatch() {
		t.Error("Mismatch() should report a 512x128 texture against a 256x128 grid")
	}
}

func TestGenerateAtlas(t *testing.T) {
	img := GenerateAtlas(DefaultGrid())
	if b := img.Bounds(); b.Dx() != 256 || b.Dy() != 128 {
		t.Fatalf("atlas size = %dx%d, expected 256x128", b.Dx(), b.Dy())
	}

	inked := func(r core.Rect) bool {
		for y := r.Y; y < r.Bottom(); y++ {
			for x := r.X; x < r.Right(); x++ {
				if img.RGBAAt(x, y).A != 0 {
					return true
				}
			}
		}
		return false
	}

	g := DefaultGrid()
	if inked(g.GlyphRect(' ')) {
		t.Error("space cell should be empty")
	}
	for _, c := range []byte("0123456789AZaz~") {
		if !inked(g.GlyphRect(c)) {
			t.Errorf("cell for %q has no pixels", c)
		}
	}
}
