package config

import (
	_ "embed"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

//go:embed defaults/demo.yaml
var defaultDemoYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "fps",
			Width:  800,
			Height: 600,
		},
		Font: FontConfig{
			Path:        "charmap.png",
			AtlasWidth:  256,
			AtlasHeight: 128,
			Cols:        18,
			Rows:        7,
			Scale:       1.8,
		},
		Colors: ColorConfig{
			Background: HexOf(core.ColorBackground),
			Text:       HexOf(core.ColorText),
			Square:     HexOf(core.ColorSquare),
			Flash:      HexOf(core.ColorText),
		},
		Square: SquareConfig{
			X:       400,
			Y:       300,
			DX:      0.4,
			DY:      0.4,
			Size:    40,
			Physics: "pause",
		},
		Loop: LoopConfig{
			CapFrameRate: false,
			TargetFPS:    60,
			FlashMillis:  0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultDemoYAML
}
