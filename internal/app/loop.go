// Package app drives the demo: it owns the simulation, the frame clock and
// the font, and runs the measure -> poll -> update -> render cycle that every
// backend calls into.
package app

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fpsdemo/internal/config"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
	"github.com/vovakirdan/fpsdemo/internal/frameclock"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
	"github.com/vovakirdan/fpsdemo/internal/sim"
)

// State is the loop's lifecycle state.
type State int

const (
	Running State = iota
	Stopped
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Options control frame pacing.
type Options struct {
	// CapFrameRate skips iterations until more than one frame period has
	// passed since the last produced frame.
	CapFrameRate bool
	TargetFPS    int
}

// FramePeriod returns one frame period in milliseconds.
func (o Options) FramePeriod() float64 {
	if o.TargetFPS <= 0 {
		return 0
	}
	return 1000.0 / float64(o.TargetFPS)
}

// Stats summarise a run.
type Stats struct {
	Frames   int
	Bounces  int
	Duration time.Duration
}

// AvgFPS returns the mean frame rate over the run.
func (s Stats) AvgFPS() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Frames) / s.Duration.Seconds()
}

// Loop is one running instance of the demo.
type Loop struct {
	opts    Options
	palette config.Palette
	width   float64
	scale   float64

	clock  monotime.Source
	fps    *frameclock.Clock
	square *sim.State
	font   *font.Font
	flash  *flash
	events core.EventQueue
	logger *log.Logger

	state State
	start uint64
	last  uint64
	stats Stats
}

// New creates a loop from cfg. The loop takes ownership of fnt and closes it
// in Close.
func New(cfg config.Config, fnt *font.Font, clock monotime.Source, logger *log.Logger) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	palette, err := cfg.Colors.Palette()
	if err != nil {
		return nil, err
	}
	mode, err := sim.ParseMode(cfg.Square.Physics)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	square := sim.New(cfg.Square.X, cfg.Square.Y, cfg.Square.DX, cfg.Square.DY, cfg.Square.Size,
		sim.Bounds{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)})
	square.Mode = mode

	now := clock.Counter()
	l := &Loop{
		opts: Options{
			CapFrameRate: cfg.Loop.CapFrameRate,
			TargetFPS:    cfg.Loop.TargetFPS,
		},
		palette: palette,
		width:   float64(cfg.Window.Width),
		scale:   cfg.Font.Scale,
		clock:   clock,
		fps:     frameclock.New(clock.Frequency(), now),
		square:  square,
		font:    fnt,
		flash:   newFlash(time.Duration(cfg.Loop.FlashMillis) * time.Millisecond),
		logger:  logger,
		state:   Running,
		start:   now,
		last:    now,
	}
	return l, nil
}

// Events returns the queue backends push input events into.
func (l *Loop) Events() *core.EventQueue {
	return &l.events
}

// Iterate runs one pass of the loop: measure the time since the last frame,
// roll the frame clock, drain events, then advance the square. It returns
// true when a frame was produced and should be rendered; false when the loop
// stopped or the frame-rate cap skipped this pass.
func (l *Loop) Iterate() bool {
	if l.state != Running {
		return false
	}

	now := l.clock.Counter()
	delta := monotime.Millis(l.last, now, l.clock.Frequency())

	windows := l.fps.Windows()
	l.fps.Tick(now)
	if l.fps.Windows() != windows {
		l.logger.Debug("fps", "frames", l.fps.Text())
	}

	for _, ev := range l.events.Drain() {
		if ev.Kind == core.EventQuit {
			l.stop()
			return false
		}
	}

	if l.opts.CapFrameRate && delta <= l.opts.FramePeriod() {
		return false
	}

	bounce := l.square.Update(delta)
	if bounce.Any() {
		l.stats.Bounces++
		l.flash.trigger()
	}
	l.flash.advance(delta)

	l.last = now
	l.fps.Frame()
	l.stats.Frames++
	return true
}

func (l *Loop) stop() {
	l.state = Stopped
	l.stats.Duration = monotime.Duration(l.start, l.clock.Counter(), l.clock.Frequency())
	l.logger.Debug("loop stopped", "frames", l.stats.Frames, "bounces", l.stats.Bounces)
}

// Stop moves the loop to Stopped as if a quit event had arrived.
func (l *Loop) Stop() {
	if l.state == Running {
		l.stop()
	}
}

// State returns the lifecycle state.
func (l *Loop) State() State {
	return l.state
}

// Running reports whether the loop has not yet stopped.
func (l *Loop) Running() bool {
	return l.state == Running
}

// Square returns the simulation state.
func (l *Loop) Square() *sim.State {
	return l.square
}

// FPSText returns the frame counter as displayed.
func (l *Loop) FPSText() string {
	return l.fps.Text()
}

// Options returns the pacing options.
func (l *Loop) Options() Options {
	return l.opts
}

// Stats returns the run summary so far.
func (l *Loop) Stats() Stats {
	s := l.stats
	if l.state == Running {
		s.Duration = monotime.Duration(l.start, l.clock.Counter(), l.clock.Frequency())
	}
	return s
}

// Close releases the font atlas. Backends release their own window or
// terminal afterwards.
func (l *Loop) Close() error {
	l.Stop()
	if l.font == nil {
		return nil
	}
	if err := l.font.Close(); err != nil {
		return fmt.Errorf("app: cannot release font: %w", err)
	}
	return nil
}
