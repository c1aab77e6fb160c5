// Package config provides YAML-based configuration for the demo: window,
// font atlas, colours, the square's initial state and loop options.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/fpsdemo/internal/core"
)

// Config is the complete demo configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorConfig  `yaml:"colors"`
	Square SquareConfig `yaml:"square"`
	Loop   LoopConfig   `yaml:"loop"`
}

// WindowConfig defines the window and the logical scene size.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// FontConfig defines the bitmap font atlas.
type FontConfig struct {
	Path        string  `yaml:"path"` // Generated in memory when the file does not exist
	AtlasWidth  int     `yaml:"atlas_width"`
	AtlasHeight int     `yaml:"atlas_height"`
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	Scale       float64 `yaml:"scale"`
}

// ColorConfig defines the scene colours as #rrggbb strings.
type ColorConfig struct {
	Background Hex `yaml:"background"`
	Text       Hex `yaml:"text"`
	Square     Hex `yaml:"square"`
	Flash      Hex `yaml:"flash"` // Tint the square fades from after a bounce
}

// SquareConfig defines the moving square's initial state.
type SquareConfig struct {
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	DX      float64 `yaml:"dx"` // Pixels per millisecond
	DY      float64 `yaml:"dy"`
	Size    int     `yaml:"size"`
	Physics string  `yaml:"physics"` // "pause" or "clamp"
}

// LoopConfig defines frame pacing.
type LoopConfig struct {
	CapFrameRate bool `yaml:"cap_frame_rate"`
	TargetFPS    int  `yaml:"target_fps"`
	FlashMillis  int  `yaml:"flash_ms"` // 0 disables the bounce flash
}

// Hex is a colour written as #rgb or #rrggbb. Colours are always opaque.
type Hex string

// Color parses the hex string.
func (h Hex) Color() (core.Color, error) {
	c, err := colorful.Hex(string(h))
	if err != nil {
		return core.Color{}, fmt.Errorf("config: invalid colour %q: %w", string(h), err)
	}
	r, g, b := c.RGB255()
	return core.RGBA(r, g, b, 255), nil
}

// HexOf formats a colour for a config file.
func HexOf(c core.Color) Hex {
	return Hex(c.Hex())
}

// Palette is the parsed form of ColorConfig.
type Palette struct {
	Background core.Color
	Text       core.Color
	Square     core.Color
	Flash      core.Color
}

// Palette parses every colour.
func (c ColorConfig) Palette() (Palette, error) {
	var p Palette
	var err error
	if p.Background, err = c.Background.Color(); err != nil {
		return p, err
	}
	if p.Text, err = c.Text.Color(); err != nil {
		return p, err
	}
	if p.Square, err = c.Square.Color(); err != nil {
		return p, err
	}
	if p.Flash, err = c.Flash.Color(); err != nil {
		return p, err
	}
	return p, nil
}

// Validate reports every problem with the configuration.
func (c Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Font.AtlasWidth <= 0 || c.Font.AtlasHeight <= 0 || c.Font.Cols <= 0 || c.Font.Rows <= 0 {
		errs = append(errs, errors.New("font atlas size and grid must be positive"))
	} else if c.Font.Cols*c.Font.Rows < 95 {
		errs = append(errs, fmt.Errorf("font grid %dx%d cannot hold 95 glyphs", c.Font.Cols, c.Font.Rows))
	}
	if c.Font.Scale <= 0 {
		errs = append(errs, fmt.Errorf("font scale %v must be positive", c.Font.Scale))
	}
	if _, err := c.Colors.Palette(); err != nil {
		errs = append(errs, err)
	}
	if c.Square.Size <= 0 {
		errs = append(errs, fmt.Errorf("square size %d must be positive", c.Square.Size))
	} else if c.Square.Size > c.Window.Width || c.Square.Size > c.Window.Height {
		errs = append(errs, fmt.Errorf("square size %d does not fit the window", c.Square.Size))
	} else if !c.squareInWindow() {
		errs = append(errs, fmt.Errorf("square at (%g, %g) size %d lies outside the %dx%d window",
			c.Square.X, c.Square.Y, c.Square.Size, c.Window.Width, c.Window.Height))
	}
	switch c.Square.Physics {
	case "", "pause", "clamp":
	default:
		errs = append(errs, fmt.Errorf("unknown physics mode %q", c.Square.Physics))
	}
	if c.Loop.TargetFPS <= 0 {
		errs = append(errs, fmt.Errorf("target fps %d must be positive", c.Loop.TargetFPS))
	}
	if c.Loop.FlashMillis < 0 {
		errs = append(errs, fmt.Errorf("flash duration %dms must not be negative", c.Loop.FlashMillis))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// squareInWindow reports whether the start position keeps the whole square
// inside the window. A square starting outside never bounces back in.
func (c Config) squareInWindow() bool {
	maxX := float64(c.Window.Width - c.Square.Size)
	maxY := float64(c.Window.Height - c.Square.Size)
	return c.Square.X >= 0 && c.Square.X <= maxX && c.Square.Y >= 0 && c.Square.Y <= maxY
}
