package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/font"
)

var flagAtlasOut string

var atlasCmd = &cobra.Command{
	Use:   "atlas",
	Short: "Write the built-in font atlas as a PNG",
	Long: `Rasterise printable ASCII into an atlas laid out on the configured grid
and write it as a PNG. The result can be edited and used with --font.

Examples:
  fpsdemo atlas
  fpsdemo atlas --out assets/charmap.png`,
	Run: runAtlas,
}

func init() {
	atlasCmd.Flags().StringVarP(&flagAtlasOut, "out", "o", "charmap.png", "Output path")
}

func runAtlas(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	grid := app.FontGrid(cfg.Font)
	if err := grid.Validate(); err != nil {
		fail("%v", err)
	}

	f, err := os.Create(flagAtlasOut)
	if err != nil {
		fail("%v", err)
	}
	if err := png.Encode(f, font.GenerateAtlas(grid)); err != nil {
		f.Close()
		fail("encoding atlas: %v", err)
	}
	if err := f.Close(); err != nil {
		fail("%v", err)
	}

	fmt.Printf("Wrote %dx%d atlas (%dx%d cells of %dx%d) to %s\n",
		grid.AtlasWidth, grid.AtlasHeight, grid.Cols, grid.Rows,
		grid.CharWidth(), grid.CharHeight(), flagAtlasOut)
}
