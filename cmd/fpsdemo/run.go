package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fpsdemo/internal/registry"
	"github.com/vovakirdan/fpsdemo/internal/storage"
)

var (
	flagBackend  string
	flagFrames   int
	flagRealtime bool
	flagNoSave   bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the demo",
	Long: `Run the bouncing square demo until it is quit.

The window backend stops when its window is closed; the terminal backend on
q, Esc or Ctrl+C. Each finished run is recorded in the history database.

Examples:
  fpsdemo run                                # Desktop window, uncapped
  fpsdemo run --fps-cap --target-fps 60      # Cap at 60 frames per second
  fpsdemo run --backend terminal             # Render into this terminal
  fpsdemo run --backend headless --frames 1200 --realtime`,
	Run: runRun,
}

func init() {
	runCmd.Flags().StringVarP(&flagBackend, "backend", "b", "window", "Backend to run (see 'fpsdemo list')")
	runCmd.Flags().IntVar(&flagFrames, "frames", 0, "Stop after this many frames (0 = until quit)")
	runCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Headless only: use the system clock instead of a fixed step")
	runCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run in the history database")
}

func runRun(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fail("%v", err)
	}

	backend, err := registry.Create(flagBackend)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown backend %q\n", flagBackend)
		fmt.Fprintln(os.Stderr, "Run 'fpsdemo list' to see available backends.")
		os.Exit(1)
	}

	logger := newLogger("fpsdemo")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	started := time.Now()
	stats, err := backend.Run(ctx, registry.Env{
		Config:   cfg,
		Logger:   logger,
		Frames:   flagFrames,
		Realtime: flagRealtime,
	})
	if err != nil {
		stop()
		fail("%v", err)
	}

	logger.Info("run finished",
		"backend", backend.Name(),
		"frames", stats.Frames,
		"bounces", stats.Bounces,
		"duration", stats.Duration.Round(time.Millisecond),
		"fps", fmt.Sprintf("%.1f", stats.AvgFPS()),
	)

	if flagNoSave || stats.Frames == 0 {
		return
	}
	store := openStore(logger)
	if store == nil {
		return
	}
	defer store.Close()

	_, err = store.SaveSession(storage.Session{
		Backend:   backend.Name(),
		StartedAt: started,
		Duration:  stats.Duration,
		Frames:    stats.Frames,
		Bounces:   stats.Bounces,
		AvgFPS:    stats.AvgFPS(),
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
	}
}
