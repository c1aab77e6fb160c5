package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/fpsdemo/internal/app"
	"github.com/vovakirdan/fpsdemo/internal/config"
	"github.com/vovakirdan/fpsdemo/internal/core"
	"github.com/vovakirdan/fpsdemo/internal/monotime"
	"github.com/vovakirdan/fpsdemo/internal/recorder"
	"github.com/vovakirdan/fpsdemo/internal/storage"
)

// SSHBackend is the backend name stored with SSH sessions.
const SSHBackend = "ssh"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.fpsdemo/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves the terminal demo over SSH. Every session gets its own
// loop; finished sessions are recorded in the store when one is set.
type SSHServer struct {
	config SSHServerConfig
	demo   config.Config
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger

	mu       sync.Mutex
	sessions map[string]*demoSession
}

type demoSession struct {
	loop    *app.Loop
	started time.Time
}

// NewSSHServer creates a new SSH server. store may be nil.
func NewSSHServer(cfg SSHServerConfig, demo config.Config, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "fpsdemo-ssh",
		})
	}

	srv := &SSHServer{
		config:   cfg,
		demo:     demo,
		store:    store,
		logger:   logger,
		sessions: make(map[string]*demoSession),
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".fpsdemo", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if err := os.MkdirAll(hostKeyDir, 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a loop and a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	rc := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.demo.Loop.TargetFPS,
	}

	logger := s.logger.With("user", sshSession.User())
	loop, err := app.Open(s.demo, &recorder.Loader{}, monotime.System(), logger)
	if err != nil {
		logger.Error("cannot start demo", "error", err)
		return nil, nil
	}

	s.mu.Lock()
	s.sessions[sshSession.Context().SessionID()] = &demoSession{loop: loop, started: time.Now()}
	s.mu.Unlock()

	model := NewModel(loop, app.FontGrid(s.demo.Font), s.demo.Window.Width, s.demo.Window.Height, rc, 0)
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// finish stops and records the loop of a session that has ended.
func (s *SSHServer) finish(sshSession ssh.Session) (app.Stats, bool) {
	id := sshSession.Context().SessionID()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()
	if !ok {
		return app.Stats{}, false
	}

	sess.loop.Stop()
	stats := sess.loop.Stats()
	if err := sess.loop.Close(); err != nil {
		s.logger.Warn("cannot release session", "error", err)
	}

	if s.store != nil && stats.Frames > 0 {
		_, err := s.store.SaveSession(storage.Session{
			Backend:   SSHBackend,
			StartedAt: sess.started,
			Duration:  stats.Duration,
			Frames:    stats.Frames,
			Bounces:   stats.Bounces,
			AvgFPS:    stats.AvgFPS(),
		})
		if err != nil {
			s.logger.Warn("could not save session", "error", err)
		}
	}
	return stats, true
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)

		stats, _ := s.finish(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"frames", stats.Frames,
			"fps", fmt.Sprintf("%.1f", stats.AvgFPS()),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until ctx is cancelled or
// the server fails.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		if err != nil {
			s.logger.Error("server error", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
