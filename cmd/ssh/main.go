package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/muesli/termenv"

	"github.com/tomz197/catcher/internal/audio"
	"github.com/tomz197/catcher/internal/config"
	"github.com/tomz197/catcher/internal/draw"
	"github.com/tomz197/catcher/internal/loop"
	"github.com/tomz197/catcher/internal/store"
)

// server holds what every SSH session shares.
type server struct {
	cfg    config.Config
	logger *log.Logger
	hub    *loop.Hub
	scores *store.File
}

func main() {
	cfgPath := flag.String("config", "", "path to the TOML config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal("failed to load config", "err", err)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "ssh")

	workingDir, workErr := os.Getwd()
	if workErr != nil {
		logger.Warn("failed to get working directory", "err", workErr)
	}
	logger.Info("ssh config",
		"host", cfg.SSH.Host, "port", cfg.SSH.Port,
		"hostKeyPath", cfg.SSH.HostKeyPath, "workingDir", workingDir)

	srv := &server{
		cfg:    cfg,
		logger: logger,
		hub:    loop.NewHub(),
		scores: store.NewFile(cfg.StorePath()),
	}

	logger.Info("best score store", "path", srv.scores.Path())

	opts := []ssh.Option{
		wish.WithAddress(net.JoinHostPort(cfg.SSH.Host, cfg.SSH.Port)),
		wish.WithMiddleware(
			srv.gameMiddleware,
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if cfg.SSH.HostKeyPath != "" {
		opts = append(opts, wish.WithHostKeyPath(cfg.SSH.HostKeyPath))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		logger.Fatal("failed to create server", "err", err)
	}

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("starting ssh server", "addr", s.Addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			logger.Fatal("server error", "err", err)
		}
	}()

	<-done
	logger.Info("shutting down server, notifying players", "sessions", srv.hub.Count())
	srv.hub.Shutdown(15 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown error", "err", err)
	}
}

// gameMiddleware runs one solo game per SSH session.
func (srv *server) gameMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		pty, winCh, ok := sess.Pty()
		if !ok {
			fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
			return
		}

		user := sess.User()
		srv.logger.Info("new game session", "user", user, "terminal", pty.Term,
			"width", pty.Window.Width, "height", pty.Window.Height)

		sizeTracker := newSizeTracker(pty.Window.Width, pty.Window.Height)
		go func() {
			for win := range winCh {
				sizeTracker.update(win.Width, win.Height)
			}
		}()

		exportDir := store.UserDir(srv.cfg.ExportDir, user)
		opts := loop.Options{
			TermSizeFunc: sizeTracker.getSize,
			Profile:      profileFor(pty.Term, sess.Environ()),
			Scores:       store.BestScore{KV: store.Prefixed{KV: srv.scores, Prefix: user}},
			Exporter:     store.DirExporter{Dir: exportDir},
			Cues:         audio.Bell{W: sess},
			Logger:       srv.logger,
			Rand:         srv.cfg.NewRand(),
			Hub:          srv.hub,
			Username:     user,
			IdleTimeout:  time.Duration(srv.cfg.SSH.IdleMinutes) * time.Minute,
			ExportHint:   downloadHint(srv.cfg.Web, user),
		}

		if err := loop.Run(bufio.NewReader(sess), sess, opts); err != nil {
			srv.logger.Error("game error", "user", user, "err", err)
		}
		next(sess)
	}
}

// profileFor picks a colour profile from the client's TERM and COLORTERM.
func profileFor(term string, environ []string) termenv.Profile {
	for _, kv := range environ {
		if kv == "COLORTERM=truecolor" || kv == "COLORTERM=24bit" {
			return termenv.TrueColor
		}
	}
	switch {
	case term == "dumb":
		return termenv.Ascii
	case strings.Contains(term, "direct"), strings.Contains(term, "kitty"):
		return termenv.TrueColor
	case strings.Contains(term, "256color"):
		return termenv.ANSI256
	default:
		return termenv.ANSI
	}
}

func downloadHint(web config.Web, user string) string {
	return fmt.Sprintf("download at http://%s:%s/scores/%s", web.SSHDisplayHost, web.Port, store.UserDir("", user))
}

// sizeTracker tracks terminal size from SSH window change events.
type sizeTracker struct {
	mu     sync.RWMutex
	width  int
	height int
}

func newSizeTracker(width, height int) *sizeTracker {
	return &sizeTracker{width: width, height: height}
}

func (s *sizeTracker) update(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width = width
	s.height = height
}

func (s *sizeTracker) getSize() (int, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.width, s.height, nil
}

// Ensure sizeTracker.getSize satisfies draw.TermSizeFunc
var _ draw.TermSizeFunc = (*sizeTracker)(nil).getSize
