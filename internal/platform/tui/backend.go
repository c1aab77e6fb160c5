package tui

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
	"github.com/vovakirdan/fpsdemo/internal/registry"
)

func init() {
	registry.Register("terminal", func() registry.Backend { return Backend{} })
}

// Backend runs the demo in the current terminal.
type Backend struct{}

func (Backend) Name() string { return "terminal" }

func (Backend) Description() string { return "Current terminal (Bubble Tea)" }

// Run takes over the terminal until the user quits, ctx is cancelled or
// env.Frames frames have been produced.
func (Backend) Run(ctx context.Context, env registry.Env) (app.Stats, error) {
	rc := runtimeConfig(env)
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		rc.ScreenW, rc.ScreenH = w, h
	}

	loop, err := app.Open(env.Config, &recorder.Loader{}, monotime.System(), env.Logger)
	if err != nil {
		return app.Stats{}, err
	}

	model := NewModel(loop, app.FontGrid(env.Config.Font),
		env.Config.Window.Width, env.Config.Window.Height, rc, env.Frames)
	p := tea.NewProgram(model, tea.WithAltScreen())

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.Send(ctxDoneMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	close(done)

	stats := loop.Stats()
	if cerr := loop.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if err != nil {
		return stats, fmt.Errorf("terminal: %w", err)
	}
	if m, ok := final.(Model); ok && m.Err() != nil {
		return stats, fmt.Errorf("terminal: %w", m.Err())
	}
	return stats, nil
}

// runtimeConfig ticks the terminal at the configured target rate.
func runtimeConfig(env registry.Env) core.RuntimeConfig {
	rc := core.DefaultConfig()
	if env.Config.Loop.TargetFPS > 0 {
		rc.TickRate = env.Config.Loop.TargetFPS
	}
	return rc
}
