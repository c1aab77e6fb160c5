package app

import (
	"errors"
	"io/fs"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fpsdemo/internal/config"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
)

// FontGrid converts the font section of cfg.
func FontGrid(cfg config.FontConfig) font.Grid {
	return font.Grid{
		AtlasWidth:  cfg.AtlasWidth,
		AtlasHeight: cfg.AtlasHeight,
		Cols:        cfg.Cols,
		Rows:        cfg.Rows,
	}
}

// LoadFont loads the configured atlas through loader. When the atlas file
// does not exist a matching atlas is generated instead; any other failure is
// returned.
func LoadFont(cfg config.FontConfig, loader core.TextureLoader, logger *log.Logger) (*font.Font, error) {
	grid := FontGrid(cfg)
	if err := grid.Validate(); err != nil {
		return nil, err
	}

	var (
		f   *font.Font
		err error
	)
	if cfg.Path != "" {
		f, err = font.Load(loader, cfg.Path, grid)
	}
	if cfg.Path == "" || errors.Is(err, fs.ErrNotExist) {
		if logger != nil {
			logger.Warn("font atlas unavailable, using built-in atlas", "path", cfg.Path)
		}
		f, err = font.FromImage(loader, font.GenerateAtlas(grid), grid)
	}
	if err != nil {
		return nil, err
	}

	if f.Mismatch() && logger != nil {
		w, h := f.Texture().Size()
		logger.Warn("font atlas size does not match the configured grid",
			"path", cfg.Path,
			"size", [2]int{w, h},
			"grid", [2]int{grid.AtlasWidth, grid.AtlasHeight},
		)
	}
	return f, nil
}

// Open loads the font through loader and creates a loop around it. The font
// is released if the loop cannot be created.
func Open(cfg config.Config, loader core.TextureLoader, clock monotime.Source, logger *log.Logger) (*Loop, error) {
	f, err := LoadFont(cfg.Font, loader, logger)
	if err != nil {
		return nil, err
	}
	l, err := New(cfg, f, clock, logger)
	if err != nil {
		f.Close()
		return nil, err
	}
	return l, nil
}
