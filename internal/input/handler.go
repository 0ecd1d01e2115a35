package input

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/shvbsle/termrex/internal/log"
)

// Handler tracks whether the down key is held. Most terminals only send
// repeated presses while a key is held, so the key counts as released once
// no press has arrived for KeyRepeat. Kitty keyboard terminals send an
// explicit release instead.
type Handler struct {
	KeyRepeat time.Duration

	last     Key
	downHeld bool
	pressed  time.Time
}

func NewHandler(keyRepeat time.Duration) *Handler {
	return &Handler{KeyRepeat: keyRepeat}
}

// Feed records a key event received at now.
func (h *Handler) Feed(k Key, now time.Time) {
	h.last = k
	switch k {
	case KeyDown:
		h.downHeld = true
		h.pressed = now
	case KeyQuit:
	default:
		h.downHeld = false
	}
}

// Tick releases the down key when no repeat arrived in time.
func (h *Handler) Tick(now time.Time) {
	if h.downHeld && now.Sub(h.pressed) >= h.KeyRepeat {
		h.downHeld = false
	}
}

func (h *Handler) DownActive() bool {
	return h.downHeld
}

// Last returns the most recently fed key.
func (h *Handler) Last() Key {
	return h.last
}

func (h *Handler) Reset() {
	h.last = KeyNone
	h.downHeld = false
}

// Read decodes keys from r and sends them on the returned channel until ctx
// is done or r fails. A read returning no data is retried, which lets
// polling readers give the context a chance to end the loop. The channel is
// closed on exit.
func Read(ctx context.Context, r io.Reader) <-chan Key {
	keys := make(chan Key, 16)

	go func() {
		defer close(keys)
		buf := make([]byte, 64)
		for {
			if ctx.Err() != nil {
				return
			}
			n, err := r.Read(buf)
			for _, seq := range Split(buf[:n]) {
				select {
				case keys <- Decode(seq):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.G().Debug("input reader stopped", "error", err)
				}
				return
			}
		}
	}()

	return keys
}
