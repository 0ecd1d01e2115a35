package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestFlushWritesOnce(t *testing.T) {
	var out countingWriter
	term := New(strings.NewReader(""), &out, 80, 24)

	term.MoveTo(3, 2)
	_, _ = term.WriteString("abc")
	_, _ = term.Write([]byte("def"))
	if out.writes != 0 {
		t.Fatal("Expected nothing to reach the sink before Flush")
	}

	if err := term.Flush(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if out.writes != 1 {
		t.Errorf("Expected a single write, got %d", out.writes)
	}
	if got := out.buf.String(); got != "\x1b[2;3Habcdef" {
		t.Errorf("Unexpected output %q", got)
	}

	if err := term.Flush(); err != nil || out.writes != 1 {
		t.Error("Expected empty flush to skip the sink")
	}
}

func TestMinSizeAndResize(t *testing.T) {
	var out bytes.Buffer
	term := New(nil, &out, 100, 30)

	resized := 0
	term.OnResize = func() { resized++ }

	term.SetMinSize(80, 20)
	if !term.BigEnough() {
		t.Error("Expected 100x30 to fit 80x20")
	}

	term.Resize(60, 30)
	if term.BigEnough() {
		t.Error("Expected 60x30 to be too small")
	}
	if resized != 1 {
		t.Errorf("Expected OnResize once, got %d", resized)
	}
	_ = term.Flush()
	if !strings.Contains(out.String(), "warning") || !strings.Contains(out.String(), "Minimum: 80 x 20") {
		t.Errorf("Expected resize warning, got %q", out.String())
	}

	term.Resize(80, 20)
	if !term.BigEnough() {
		t.Error("Expected exact minimum to fit")
	}
	if term.Size() != (Size{Cols: 80, Rows: 20}) {
		t.Errorf("Unexpected size %+v", term.Size())
	}

	term.SetMinSize(-1, -1)
	term.Resize(1, 1)
	if !term.BigEnough() {
		t.Error("Expected a disabled minimum to always fit")
	}
}

func TestResizeWarningGeometry(t *testing.T) {
	term := New(nil, &bytes.Buffer{}, 50, 15)
	term.minCols, term.minRows = 90, 30
	term.DrawResizeWarning()

	out := term.buf.String()
	lines := 0
	for _, part := range strings.Split(out, "\x1b[") {
		if strings.HasSuffix(strings.SplitN(part, "H", 2)[0], ";10") {
			lines++
		}
	}
	if lines != 6 {
		t.Errorf("Expected six box rows at column 10, got %d in %q", lines, out)
	}

	for _, row := range []string{"Current:", "Minimum: 90 x 30"} {
		if !strings.Contains(ansi.Strip(out), row) {
			t.Errorf("Expected %q in warning", row)
		}
	}
}

func TestNotifyResizeKeepsLatest(t *testing.T) {
	term := New(nil, &bytes.Buffer{}, 80, 24)

	term.NotifyResize(100, 40)
	term.NotifyResize(120, 50)

	select {
	case s := <-term.Resizes():
		if s != (Size{Cols: 120, Rows: 50}) {
			t.Errorf("Expected latest size, got %+v", s)
		}
	default:
		t.Fatal("Expected a pending resize")
	}

	select {
	case s := <-term.Resizes():
		t.Errorf("Expected a single pending resize, got %+v", s)
	default:
	}
}

func TestEnterLeave(t *testing.T) {
	var out bytes.Buffer
	term := New(nil, &out, 80, 24)
	term.KittyKeyboard = true

	if err := term.Enter(); err != nil {
		t.Fatal(err)
	}
	entered := out.String()
	if !strings.Contains(entered, ansi.SetAltScreenSaveCursorMode) || !strings.Contains(entered, ansi.HideCursor) {
		t.Errorf("Expected alt screen and hidden cursor, got %q", entered)
	}
	if !strings.Contains(entered, "\x1b[>") {
		t.Errorf("Expected kitty keyboard push, got %q", entered)
	}

	out.Reset()
	if err := term.Leave(); err != nil {
		t.Fatal(err)
	}
	left := out.String()
	if !strings.HasSuffix(left, ansi.ResetAltScreenSaveCursorMode) || !strings.Contains(left, ansi.ShowCursor) {
		t.Errorf("Expected main screen and visible cursor, got %q", left)
	}
}

func TestClose(t *testing.T) {
	term := New(nil, &bytes.Buffer{}, 80, 24)
	var order []int
	term.closers = append(term.closers,
		func() error { order = append(order, 1); return nil },
		func() error { order = append(order, 2); return nil },
	)

	if err := term.Close(); err != nil {
		t.Fatal(err)
	}
	if len(order) != 2 || order[0] != 2 || order[1] != 1 {
		t.Errorf("Expected closers in reverse order, got %v", order)
	}
	if err := term.Close(); err != nil {
		t.Error("Expected second Close to be a no-op")
	}
}

func TestParseKittyReply(t *testing.T) {
	tests := []struct {
		name      string
		reply     string
		supported bool
		done      bool
	}{
		{"kitty flags then attributes", "\x1b[?0u\x1b[?62;22c", true, true},
		{"attributes only", "\x1b[?62;22c", false, true},
		{"partial", "\x1b[?6", false, false},
		{"noise", "abc", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			supported, done := parseKittyReply([]byte(tt.reply))
			if supported != tt.supported || done != tt.done {
				t.Errorf("parseKittyReply(%q) = %v, %v; expected %v, %v", tt.reply, supported, done, tt.supported, tt.done)
			}
		})
	}
}

type countingWriter struct {
	buf    bytes.Buffer
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return w.buf.Write(p)
}
