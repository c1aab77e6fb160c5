package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/font"
)

// helpRows is the number of terminal rows reserved below the scene.
const helpRows = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// ctxDoneMsg asks the model to stop because the caller was cancelled.
type ctxDoneMsg struct{}

// Model is the Bubble Tea model that drives one demo loop. Every tick runs
// one loop iteration; produced frames are rasterised into the screen buffer.
type Model struct {
	loop     *app.Loop
	screen   *core.Screen
	canvas   *cellCanvas
	styles   styleCache
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	frames   int // stop after this many frames; 0 runs until quit
	shotDir  string
	quitting bool
	err      error
}

// NewModel creates a model around loop. The scene of sceneW x sceneH pixels
// is scaled onto a terminal of cfg.ScreenW x cfg.ScreenH cells.
func NewModel(loop *app.Loop, grid font.Grid, sceneW, sceneH int, cfg core.RuntimeConfig, frames int) Model {
	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 1))
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		loop:    loop,
		screen:  screen,
		canvas:  newCellCanvas(screen, grid, sceneW, sceneH),
		styles:  make(styleCache),
		keys:    DefaultKeyMap(),
		help:    h,
		config:  cfg,
		frames:  frames,
		shotDir: defaultScreenshotDir(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
		m.help.Width = msg.Width
		m.loop.Events().Push(core.Event{Kind: core.EventResize})
		return m, nil

	case ctxDoneMsg:
		m.loop.Events().Quit()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		//nolint:errcheck // Best-effort save, the demo continues regardless
		m.saveScreenshot()
		return m, nil
	}

	m.loop.Events().Push(m.keys.Event(msg))
	return m, nil
}

// handleTick runs one loop iteration.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.loop.Iterate() {
		if err := m.loop.Render(m.canvas); err != nil {
			m.err = err
			m.loop.Stop()
		}
	}
	if m.frames > 0 && m.loop.Stats().Frames >= m.frames {
		m.loop.Stop()
	}
	if !m.loop.Running() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen as plain text.
func (m Model) saveScreenshot() (string, error) {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		return "", err
	}
	name := fmt.Sprintf("fpsdemo_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func defaultScreenshotDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "screenshots"
	}
	return filepath.Join(home, ".fpsdemo", "screenshots")
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen, m.styles) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Err returns the render error that stopped the loop, if any.
func (m Model) Err() error {
	return m.err
}
