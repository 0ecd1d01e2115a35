//go:build unix

package terminal

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/shvbsle/termrex/internal/log"
)

const (
	pollInterval = 50 * time.Millisecond
	kittyTimeout = 100 * time.Millisecond
)

// OpenLocal puts the controlling terminal into raw mode and returns a
// Terminal over stdin and stdout. Size changes are reported through
// Resizes. Close restores the original terminal state.
func OpenLocal() (*Terminal, error) {
	inFd := int(os.Stdin.Fd())
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(inFd) {
		return nil, ErrNotTerminal
	}

	cols, rows, err := term.GetSize(outFd)
	if err != nil {
		return nil, fmt.Errorf("get terminal size: %w", err)
	}

	state, err := term.MakeRaw(inFd)
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}

	t := New(&pollReader{fd: inFd, f: os.Stdin}, os.Stdout, cols, rows)
	t.closers = append(t.closers, func() error { return term.Restore(inFd, state) })

	t.KittyKeyboard = detectKittyKeyboard(inFd, os.Stdout)
	log.G().Debug("local terminal opened", "cols", cols, "rows", rows, "kitty_keyboard", t.KittyKeyboard)

	w := newResizeWatcher(outFd, t.NotifyResize)
	w.start()
	t.closers = append(t.closers, func() error { w.stop(); return nil })

	return t, nil
}

// pollReader reads from a tty without blocking forever, so the input loop
// can notice cancellation. A read with no pending input returns 0, nil.
type pollReader struct {
	fd int
	f  *os.File
}

func (r *pollReader) Read(p []byte) (int, error) {
	ready, err := poll(r.fd, pollInterval)
	if err != nil || !ready {
		return 0, err
	}
	return r.f.Read(p)
}

func poll(fd int, timeout time.Duration) (bool, error) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, int(timeout.Milliseconds()))
	if errors.Is(err, unix.EINTR) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("poll terminal: %w", err)
	}
	return n > 0 && fds[0].Revents&unix.POLLIN != 0, nil
}

// detectKittyKeyboard asks the terminal for its kitty keyboard flags
// followed by its primary device attributes. Terminals without the protocol
// answer only the second query.
func detectKittyKeyboard(fd int, out *os.File) bool {
	if _, err := out.WriteString(ansi.RequestKittyKeyboard + ansi.RequestPrimaryDeviceAttributes); err != nil {
		return false
	}

	var reply []byte
	buf := make([]byte, 256)
	deadline := time.Now().Add(kittyTimeout)
	for time.Now().Before(deadline) {
		ready, err := poll(fd, pollInterval)
		if err != nil {
			return false
		}
		if !ready {
			continue
		}
		n, err := unix.Read(fd, buf)
		if err != nil || n <= 0 {
			continue
		}
		reply = append(reply, buf[:n]...)
		if supported, done := parseKittyReply(reply); done {
			return supported
		}
	}
	return false
}

// resizeWatcher turns SIGWINCH into size notifications.
type resizeWatcher struct {
	fd     int
	notify func(cols, rows int)
	sigCh  chan os.Signal
	stopCh chan struct{}
	doneCh chan struct{}
}

func newResizeWatcher(fd int, notify func(cols, rows int)) *resizeWatcher {
	return &resizeWatcher{
		fd:     fd,
		notify: notify,
		sigCh:  make(chan os.Signal, 1),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}
}

func (r *resizeWatcher) start() {
	signal.Notify(r.sigCh, syscall.SIGWINCH)
	go r.watchLoop()
}

func (r *resizeWatcher) stop() {
	signal.Stop(r.sigCh)
	close(r.stopCh)
	<-r.doneCh
}

func (r *resizeWatcher) watchLoop() {
	defer close(r.doneCh)

	for {
		select {
		case <-r.stopCh:
			return
		case <-r.sigCh:
			ws, err := unix.IoctlGetWinsize(r.fd, unix.TIOCGWINSZ)
			if err != nil {
				log.G().Warn("could not read terminal size", "error", err)
				continue
			}
			if ws.Col > 0 && ws.Row > 0 {
				r.notify(int(ws.Col), int(ws.Row))
			}
		}
	}
}
