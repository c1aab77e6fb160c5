// Package window presents the demo in a desktop window through ebiten.
package window

import (
	"context"
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
	"github.com/vovakirdan/fpsdemo/internal/registry"
)

func init() {
	registry.Register("window", func() registry.Backend { return Backend{} })
}

// Backend opens a native window sized and titled from the config.
type Backend struct{}

func (Backend) Name() string { return "window" }

func (Backend) Description() string { return "Desktop window (ebiten)" }

// Run blocks on the ebiten main loop until the window is closed, ctx is
// cancelled or env.Frames frames have been produced.
func (Backend) Run(ctx context.Context, env registry.Env) (app.Stats, error) {
	cfg := env.Config

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(ebiten.SyncWithFPS)
	ebiten.SetVsyncEnabled(cfg.Loop.CapFrameRate)

	g := &game{ctx: ctx, env: env}
	err := ebiten.RunGame(g)

	var stats app.Stats
	if g.loop != nil {
		stats = g.loop.Stats()
		if cerr := g.loop.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	if err != nil {
		return stats, fmt.Errorf("window: %w", err)
	}
	return stats, nil
}

// game adapts app.Loop to ebiten.Game. One Update is one loop iteration.
type game struct {
	ctx  context.Context
	env  registry.Env
	loop *app.Loop
	keys []ebiten.Key
	err  error
}

// start creates the loop on the first Update, once the graphics driver is up.
func (g *game) start() error {
	l, err := app.Open(g.env.Config, loader{}, monotime.System(), g.env.Logger)
	if err != nil {
		return err
	}
	g.loop = l
	if g.env.Logger != nil {
		g.env.Logger.Info("window opened",
			"title", g.env.Config.Window.Title,
			"size", [2]int{g.env.Config.Window.Width, g.env.Config.Window.Height},
			"cap", g.env.Config.Loop.CapFrameRate,
		)
	}
	return nil
}

func (g *game) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.loop == nil {
		if err := g.start(); err != nil {
			return err
		}
	}

	events := g.loop.Events()
	if ebiten.IsWindowBeingClosed() || g.ctx.Err() != nil {
		events.Quit()
	}
	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		events.Push(keyEvent(k))
	}

	g.loop.Iterate()
	if !g.loop.Running() {
		return ebiten.Termination
	}
	if g.env.Frames > 0 && g.loop.Stats().Frames >= g.env.Frames {
		g.loop.Stop()
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.loop == nil {
		return
	}
	if err := g.loop.Render(&canvas{dst: screen}); err != nil {
		g.err = err
	}
}

// Layout keeps the logical scene size; the window scales it on resize.
func (g *game) Layout(_, _ int) (int, int) {
	return g.env.Config.Window.Width, g.env.Config.Window.Height
}

// keyEvent converts an ebiten key press. Keys carry no meaning for the demo;
// they are delivered so the loop drains real input.
func keyEvent(k ebiten.Key) core.Event {
	return core.Event{Kind: core.EventKey, Key: strings.ToLower(k.String())}
}
