// Package headless runs the demo without any display. Frames are drawn into
// a recording canvas, which makes the backend usable in CI and for
// benchmarking the loop itself.
package headless

import (
	"context"
	"time"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
	"github.com/vovakirdan/fpsdemo/internal/registry"
)

// DefaultFrames bounds a run when Env.Frames is zero.
const DefaultFrames = 600

func init() {
	registry.Register("headless", func() registry.Backend { return &Backend{} })
}

// Backend drives the loop against a recorder.Canvas.
type Backend struct {
	// Canvas, when set, receives the draw calls of the last produced frame.
	Canvas *recorder.Canvas
}

func (*Backend) Name() string { return "headless" }

func (*Backend) Description() string { return "No display; records draw calls (CI, benchmarks)" }

// Run produces env.Frames frames (DefaultFrames when zero). Without
// env.Realtime the clock advances by exactly one frame period per pass, so
// runs are deterministic.
func (b *Backend) Run(ctx context.Context, env registry.Env) (app.Stats, error) {
	frames := env.Frames
	if frames <= 0 {
		frames = DefaultFrames
	}

	var (
		clock  monotime.Source
		manual *monotime.Manual
	)
	if env.Realtime {
		clock = monotime.System()
	} else {
		manual = monotime.NewManual(monotime.NanosPerSecond)
		clock = manual
	}
	step := frameStep(env.Config.Loop.TargetFPS)

	loop, err := app.Open(env.Config, &recorder.Loader{}, clock, env.Logger)
	if err != nil {
		return app.Stats{}, err
	}

	canvas := b.Canvas
	if canvas == nil {
		canvas = &recorder.Canvas{}
	}

	for loop.Running() && loop.Stats().Frames < frames {
		if ctx.Err() != nil {
			loop.Events().Quit()
		}
		if manual != nil {
			manual.Advance(step)
		}
		if !loop.Iterate() {
			continue
		}
		canvas.Reset()
		if err := loop.Render(canvas); err != nil {
			loop.Close()
			return loop.Stats(), err
		}
	}

	loop.Stop()
	stats := loop.Stats()
	if env.Logger != nil {
		env.Logger.Info("headless run finished",
			"frames", stats.Frames,
			"bounces", stats.Bounces,
			"duration", stats.Duration,
			"fps", stats.AvgFPS(),
		)
	}
	return stats, loop.Close()
}

// frameStep is one nanosecond longer than a frame period at fps. A capped
// loop only runs once the delta exceeds its period.
func frameStep(fps int) time.Duration {
	if fps <= 0 {
		fps = 60
	}
	return time.Second/time.Duration(fps) + 1
}
