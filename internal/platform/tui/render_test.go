package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.Clear(core.ColorBackground)
	s.DrawText(0, 0, "fps", core.ColorText)
	s.SetRune(4, 1, blockRune, core.ColorSquare)

	out := RenderScreen(s, nil)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "fps") {
		t.Errorf("line 0 = %q, expected it to contain the text", lines[0])
	}
	if !strings.Contains(lines[1], string(blockRune)) {
		t.Errorf("line 1 = %q, expected the block", lines[1])
	}
}

func TestStyleCacheReuses(t *testing.T) {
	cache := make(styleCache)
	cache.style(core.ColorText, core.ColorBackground)
	cache.style(core.ColorText, core.ColorBackground)
	cache.style(core.ColorSquare, core.ColorBackground)

	if len(cache) != 2 {
		t.Errorf("expected 2 cached styles, got %d", len(cache))
	}
}
