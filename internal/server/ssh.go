// Package server lets players run termrex over SSH. Every session gets its
// own game on its own terminal; the high score table is shared.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"sync/atomic"

	"github.com/gliderlabs/ssh"

	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/game"
	"github.com/shvbsle/termrex/internal/log"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/terminal"
)

const anonymous = "anonymous"

// SSHServer wraps the SSH listener and hands each session a game.
type SSHServer struct {
	addr     string
	hostKey  string
	settings game.Settings
	store    *scores.Store
	logger   *slog.Logger

	srv      *ssh.Server
	sessions atomic.Int64
}

// NewSSHServer creates a server for cfg. settings is the template for every
// session's game; the player name comes from the SSH user.
func NewSSHServer(cfg config.ServerConfig, settings game.Settings, store *scores.Store) *SSHServer {
	s := &SSHServer{
		addr:     cfg.Listen,
		hostKey:  cfg.HostKey,
		settings: settings,
		store:    store,
		logger:   log.Server(),
	}
	s.srv = &ssh.Server{
		Addr:    s.addr,
		Handler: s.handleSession,
	}
	return s
}

func (s *SSHServer) setHostKey() error {
	if s.hostKey == "" {
		s.logger.Warn("no host key configured, using a generated one")
		return nil
	}
	if err := s.srv.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}
	return nil
}

// ListenAndServe accepts connections until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.Serve(ctx, l)
}

// Serve accepts connections on l until ctx is done.
func (s *SSHServer) Serve(ctx context.Context, l net.Listener) error {
	if err := s.setHostKey(); err != nil {
		return err
	}

	stop := context.AfterFunc(ctx, func() {
		if err := s.srv.Close(); err != nil {
			s.logger.Debug("closing server", "error", err)
		}
	})
	defer stop()

	s.logger.Info("SSH server listening", "addr", l.Addr().String())
	err := s.srv.Serve(l)
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

// Sessions is how many players are connected.
func (s *SSHServer) Sessions() int {
	return int(s.sessions.Load())
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		_, _ = io.WriteString(sess, "Error: PTY required. Use: ssh -t ...\n")
		_ = sess.Exit(1)
		return
	}

	player := sess.User()
	if player == "" {
		player = anonymous
	}
	logger := s.logger.With("player", player, "remote", sess.RemoteAddr().String())

	n := s.sessions.Add(1)
	logger.Info("player connected", "sessions", n, "term", ptyReq.Term)
	defer func() {
		n := s.sessions.Add(-1)
		logger.Info("player disconnected", "sessions", n)
	}()

	term := terminal.New(sess, sess, ptyReq.Window.Width, ptyReq.Window.Height)
	go func() {
		for win := range winCh {
			term.NotifyResize(win.Width, win.Height)
		}
	}()

	settings := s.settings
	settings.Player = player
	if err := game.New(term, s.store, settings).Run(sess.Context()); err != nil {
		logger.Warn("session ended with error", "error", err)
		_ = sess.Exit(1)
		return
	}
	_ = sess.Exit(0)
}
