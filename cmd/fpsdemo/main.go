// fpsdemo is a bouncing-square frame-rate demo with a bitmap-font FPS
// counter. It runs in a desktop window, in the terminal, headless or over SSH.
//
// Usage:
//
//	fpsdemo run              - Run the demo (window backend by default)
//	fpsdemo serve            - Start SSH server for remote viewing
//	fpsdemo history          - Show recorded runs
//	fpsdemo list             - List available backends
//	fpsdemo atlas            - Write the built-in font atlas as a PNG
//	fpsdemo config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file
//	--fps-cap           - Skip frames arriving sooner than 1/target-fps
//	--target-fps <rate> - Frame rate used by the cap and by tick-driven backends
//	--db <path>         - Set database path (default: ~/.fpsdemo/history.db)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import backends to register them
	_ "github.com/vovakirdan/fpsdemo/internal/platform/headless"
	_ "github.com/vovakirdan/fpsdemo/internal/platform/tui"
	_ "github.com/vovakirdan/fpsdemo/internal/platform/window"
)

var (
	// Global flags
	flagConfig    string
	flagFPSCap    bool
	flagTargetFPS int
	flagFont      string
	flagPhysics   string
	flagDBPath    string
	flagLogLevel  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fpsdemo",
	Short: "Bouncing square with a bitmap-font FPS counter",
	Long: `fpsdemo moves a square around the screen, bouncing it off the edges,
and shows the number of frames produced in the last second in the top-right
corner using a fixed-grid bitmap font.

Available commands:
  run      - Run the demo on a backend
  serve    - Start SSH server for remote viewing
  history  - Show recorded runs
  list     - Show all available backends
  atlas    - Write the built-in font atlas
  config   - Print the effective configuration

Examples:
  fpsdemo run
  fpsdemo run --fps-cap --target-fps 30
  fpsdemo run --backend terminal
  fpsdemo run --backend headless --frames 600
  fpsdemo serve --ssh :2222
  fpsdemo history --tui`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&flagFPSCap, "fps-cap", false, "Cap the frame rate at --target-fps")
	rootCmd.PersistentFlags().IntVar(&flagTargetFPS, "target-fps", 0, "Target frame rate (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagFont, "font", "", "Path to font atlas PNG (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPhysics, "physics", "", "Edge handling: pause or clamp (empty = from config)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.fpsdemo/history.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(atlasCmd)
	rootCmd.AddCommand(configCmd)
}
