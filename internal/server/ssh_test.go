package server

import (
	"context"
	"io"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	gossh "golang.org/x/crypto/ssh"

	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/game"
	"github.com/shvbsle/termrex/internal/scores"
)

func startServer(t *testing.T) (string, *SSHServer) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}

	srv := NewSSHServer(config.ServerConfig{Listen: l.Addr().String()},
		game.Settings{ASCIIOnly: true, SkipIntro: true, Seed: 1}, scores.Memory())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, l) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			if err != nil {
				t.Errorf("Serve returned %v", err)
			}
		case <-time.After(5 * time.Second):
			t.Error("Serve did not stop")
		}
	})
	return l.Addr().String(), srv
}

func dial(t *testing.T, addr, user string) *gossh.Client {
	t.Helper()
	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
		User:            user,
		HostKeyCallback: gossh.InsecureIgnoreHostKey(),
		Timeout:         5 * time.Second,
	})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestSessionPlaysAndQuits(t *testing.T) {
	addr, _ := startServer(t)
	client := dial(t, addr, "ada")

	sess, err := client.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	if err := sess.RequestPty("xterm-256color", 60, 200, gossh.TerminalModes{}); err != nil {
		t.Fatalf("pty: %v", err)
	}
	stdin, err := sess.StdinPipe()
	if err != nil {
		t.Fatal(err)
	}
	stdout, err := sess.StdoutPipe()
	if err != nil {
		t.Fatal(err)
	}
	if err := sess.Shell(); err != nil {
		t.Fatalf("shell: %v", err)
	}

	output := make(chan string, 1)
	go func() {
		b, _ := io.ReadAll(stdout)
		output <- string(b)
	}()

	time.Sleep(100 * time.Millisecond)
	if _, err := stdin.Write([]byte("q")); err != nil {
		t.Fatal(err)
	}

	select {
	case out := <-output:
		if !strings.Contains(out, ansi.SetAltScreenSaveCursorMode) {
			t.Error("Expected the game to enter the alternate screen")
		}
		if !strings.Contains(out, ansi.ResetAltScreenSaveCursorMode) {
			t.Error("Expected the game to leave the alternate screen")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("session did not end after q")
	}
}

func TestSessionWithoutPty(t *testing.T) {
	addr, srv := startServer(t)
	client := dial(t, addr, "bob")

	sess, err := client.NewSession()
	if err != nil {
		t.Fatal(err)
	}
	defer sess.Close()

	out, err := sess.CombinedOutput("")
	if err == nil {
		t.Error("Expected a non-zero exit without a PTY")
	}
	if !strings.Contains(string(out), "PTY required") {
		t.Errorf("Unexpected output %q", out)
	}
	if srv.Sessions() != 0 {
		t.Errorf("Expected no sessions, got %d", srv.Sessions())
	}
}
