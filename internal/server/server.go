// Package server hosts one independent game per SSH connection.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"git.lost.host/meutraa/lanes/internal/audio"
	"git.lost.host/meutraa/lanes/internal/config"
	"git.lost.host/meutraa/lanes/internal/input"
	"git.lost.host/meutraa/lanes/internal/program"
	"git.lost.host/meutraa/lanes/internal/render"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
)

type Server struct {
	cfg    *config.Config
	logger *log.Logger
	ssh    *ssh.Server
	active atomic.Int64
}

func New(cfg *config.Config, logger *log.Logger) (*Server, error) {
	s := &Server{cfg: cfg, logger: logger}

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.Host, cfg.Port)),
		// Key presses are tiny and late ones are misses
		ssh.WrapConn(noDelay),
	}
	if cfg.HostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.HostKey))
	}
	// The last middleware wraps the others
	opts = append(opts, wish.WithMiddleware(
		s.gameMiddleware,
		activeterm.Middleware(),
		logging.Middleware(),
	))

	srv, err := wish.NewServer(opts...)
	if nil != err {
		return nil, fmt.Errorf("unable to create ssh server: %w", err)
	}
	s.ssh = srv
	return s, nil
}

func (s *Server) Addr() string {
	return s.ssh.Addr
}

// ListenAndServe blocks until Shutdown, which is not reported as an error.
func (s *Server) ListenAndServe() error {
	if err := s.ssh.ListenAndServe(); nil != err && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting players and waits for the running games, which
// end when their connection context is cancelled.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down", "players", s.active.Load())
	return s.ssh.Shutdown(ctx)
}

func (s *Server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "A PTY is required, connect with: ssh -t")
			next(sess)
			return
		}

		id := uuid.New().String()
		logger := s.logger.With("session", id, "user", sess.User())
		logger.Info("player joined", "term", pty.Term, "columns", pty.Window.Width, "rows", pty.Window.Height)
		s.active.Add(1)
		defer s.active.Add(-1)

		win := &window{size: pty.Window}
		go win.follow(winCh)

		src := input.NewStream(sess, 128)
		defer src.Close()

		p := program.New(program.Options{
			Config:   s.cfg,
			Source:   src,
			Renderer: render.NewDefaultRenderer(sess),
			Size:     win.Size,
			Feedback: audio.Silent{},
			Logger:   logger,
		})
		err := p.Run(sess.Context())
		switch {
		case nil == err:
			logger.Info("player quit")
		case errors.Is(err, input.ErrClosed), errors.Is(err, context.Canceled):
			logger.Info("player disconnected")
		default:
			logger.Error("game failed", "err", err)
		}
		next(sess)
	}
}

// window holds the latest PTY size of one session.
type window struct {
	mu   sync.Mutex
	size ssh.Window
}

// follow applies window change requests until the session ends.
func (w *window) follow(changes <-chan ssh.Window) {
	for win := range changes {
		w.mu.Lock()
		w.size = win
		w.mu.Unlock()
	}
}

func (w *window) Size() (int, int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size.Width, w.size.Height, nil
}

func noDelay(ctx ssh.Context, conn net.Conn) net.Conn {
	if tcp, ok := conn.(*net.TCPConn); ok {
		tcp.SetNoDelay(true)
	}
	return conn
}
