package input

import (
	"strconv"
	"strings"
)

// Key is a decoded key event the game reacts to.
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyDown
	KeyDownRelease
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeySpace:
		return "space"
	case KeyDown:
		return "down"
	case KeyDownRelease:
		return "down-release"
	case KeyQuit:
		return "quit"
	default:
		return "none"
	}
}

const (
	esc   = 0x1b
	ctrlC = 0x03
)

// Decode maps one key sequence to a Key. It understands plain bytes, legacy
// arrow sequences and kitty keyboard protocol sequences, where a ":3" event
// type marks a key release.
func Decode(seq []byte) Key {
	switch len(seq) {
	case 0:
		return KeyNone
	case 1:
		switch seq[0] {
		case ' ':
			return KeySpace
		case 'q', esc, ctrlC:
			return KeyQuit
		}
		return KeyNone
	}

	if seq[0] != esc || seq[1] != '[' || len(seq) < 3 {
		return KeyNone
	}
	params := string(seq[2 : len(seq)-1])
	event := eventType(params)

	switch seq[len(seq)-1] {
	case 'A':
		if event == "3" {
			return KeyNone
		}
		return KeySpace
	case 'B':
		if event == "3" {
			return KeyDownRelease
		}
		return KeyDown
	case 'u':
		if event == "3" {
			return KeyNone
		}
		code, _, _ := strings.Cut(params, ";")
		code, _, _ = strings.Cut(code, ":")
		switch n, _ := strconv.Atoi(code); n {
		case ' ':
			return KeySpace
		case 'q', esc, ctrlC:
			return KeyQuit
		}
	}
	return KeyNone
}

// eventType returns the kitty event type of a parameter list such as "1;1:3",
// or "" when the sequence carries none.
func eventType(params string) string {
	_, mods, ok := strings.Cut(params, ";")
	if !ok {
		return ""
	}
	_, event, ok := strings.Cut(mods, ":")
	if !ok {
		return ""
	}
	return event
}

// Split cuts a chunk read from the terminal into individual key sequences.
// A CSI sequence runs up to its final byte; any other byte stands alone.
func Split(buf []byte) [][]byte {
	var seqs [][]byte
	for i := 0; i < len(buf); {
		if buf[i] == esc && i+1 < len(buf) && buf[i+1] == '[' {
			j := i + 2
			for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
				j++
			}
			if j < len(buf) {
				j++
			}
			seqs = append(seqs, buf[i:j])
			i = j
			continue
		}
		seqs = append(seqs, buf[i:i+1])
		i++
	}
	return seqs
}
