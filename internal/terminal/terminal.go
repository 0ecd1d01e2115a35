package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/shvbsle/termrex/internal/grid"
)

// ErrNotTerminal is returned when the local standard input is not a tty.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Size is a terminal size in cells.
type Size struct {
	Cols int
	Rows int
}

// Terminal is one interactive screen: the local tty or an SSH session.
// Drawing is buffered and sent with Flush so a frame reaches the sink in a
// single write. A Terminal is driven from one goroutine; only NotifyResize
// may be called from others.
type Terminal struct {
	in  io.Reader
	out io.Writer
	buf bytes.Buffer

	cols, rows       int
	minCols, minRows int
	paused           bool

	// KittyKeyboard enables the kitty keyboard protocol on Enter so the
	// terminal reports key releases.
	KittyKeyboard bool
	// OnResize runs after Resize has updated the size.
	OnResize func()

	resizes chan Size
	closers []func() error
}

// New wraps an input and output stream of the given size.
func New(in io.Reader, out io.Writer, cols, rows int) *Terminal {
	return &Terminal{
		in:      in,
		out:     out,
		cols:    cols,
		rows:    rows,
		minCols: -1,
		minRows: -1,
		resizes: make(chan Size, 1),
	}
}

// Write buffers p until the next Flush.
func (t *Terminal) Write(p []byte) (int, error) {
	return t.buf.Write(p)
}

// WriteString buffers s until the next Flush.
func (t *Terminal) WriteString(s string) (int, error) {
	return t.buf.WriteString(s)
}

// Flush sends everything buffered since the last Flush in one write.
func (t *Terminal) Flush() error {
	if t.buf.Len() == 0 {
		return nil
	}
	_, err := t.out.Write(t.buf.Bytes())
	t.buf.Reset()
	if err != nil {
		return fmt.Errorf("flush terminal: %w", err)
	}
	return nil
}

// Input returns the key input stream.
func (t *Terminal) Input() io.Reader {
	return t.in
}

func (t *Terminal) Size() Size {
	return Size{Cols: t.cols, Rows: t.rows}
}

// NotifyResize queues a size change for the goroutine driving the terminal.
// Only the latest pending size is kept.
func (t *Terminal) NotifyResize(cols, rows int) {
	s := Size{Cols: cols, Rows: rows}
	select {
	case t.resizes <- s:
	default:
		select {
		case <-t.resizes:
		default:
		}
		select {
		case t.resizes <- s:
		default:
		}
	}
}

// Resizes delivers sizes queued by NotifyResize.
func (t *Terminal) Resizes() <-chan Size {
	return t.resizes
}

// Resize applies a new size, pausing the game behind a warning while the
// terminal is smaller than the minimum, and then runs OnResize.
func (t *Terminal) Resize(cols, rows int) {
	t.cols, t.rows = cols, rows
	t.pauseIfTooSmall()
	if t.OnResize != nil {
		t.OnResize()
	}
}

// SetMinSize sets the smallest size the game can be drawn in. Negative
// values disable the check.
func (t *Terminal) SetMinSize(cols, rows int) {
	t.minCols, t.minRows = cols, rows
	t.pauseIfTooSmall()
}

func (t *Terminal) MinSize() Size {
	return Size{Cols: t.minCols, Rows: t.minRows}
}

// BigEnough reports whether the terminal fits the minimum size.
func (t *Terminal) BigEnough() bool {
	return !t.paused
}

func (t *Terminal) pauseIfTooSmall() {
	if t.minCols < 0 || t.minRows < 0 {
		t.paused = false
		return
	}
	t.paused = t.cols < t.minCols || t.rows < t.minRows
	t.Clear()
	if t.paused {
		t.DrawResizeWarning()
	}
}

// Enter switches to the alternate screen and hides the cursor.
func (t *Terminal) Enter() error {
	t.buf.WriteString(ansi.SetAltScreenSaveCursorMode)
	t.buf.WriteString(ansi.HideCursor)
	if t.KittyKeyboard {
		t.buf.WriteString(ansi.PushKittyKeyboard(ansi.KittyReportEventTypes))
	}
	t.Clear()
	return t.Flush()
}

// Leave undoes Enter.
func (t *Terminal) Leave() error {
	if t.KittyKeyboard {
		t.buf.WriteString(ansi.PopKittyKeyboard(1))
	}
	t.buf.WriteString(grid.ResetStyle)
	t.buf.WriteString(ansi.ShowCursor)
	t.buf.WriteString(ansi.ResetAltScreenSaveCursorMode)
	return t.Flush()
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.buf.WriteString(ansi.EraseEntireScreen)
	t.buf.WriteString(ansi.CursorHomePosition)
}

// MoveTo places the cursor at column x, row y (1-indexed).
func (t *Terminal) MoveTo(x, y int) {
	t.buf.WriteString(grid.MoveTo(y, x))
}

// Close releases whatever the terminal holds, such as raw mode or a resize
// watcher. It does not close the underlying streams.
func (t *Terminal) Close() error {
	var errs []error
	for i := len(t.closers) - 1; i >= 0; i-- {
		if err := t.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	t.closers = nil
	return errors.Join(errs...)
}

const (
	warningWidth  = 30
	warningHeight = 7
	warningTitle  = "warning"
	yellow        = "\x1b[33m"
	red           = "\x1b[31m"
)

// DrawResizeWarning draws a box in the middle of the screen showing the
// current and the minimum terminal size.
func (t *Terminal) DrawResizeWarning() {
	x := max((t.cols-warningWidth)/2, 1)
	y := max((t.rows-warningHeight)/2, 1)
	inner := warningWidth - 2

	dashes := (inner - len(warningTitle)) / 2
	rest := inner - dashes - len(warningTitle)

	t.buf.WriteString(yellow)
	t.MoveTo(x, y)
	t.buf.WriteString("╭" + strings.Repeat("─", dashes-1) + "┤" + warningTitle + "├" + strings.Repeat("─", rest-1) + "╮")
	t.MoveTo(x, y+1)
	t.buf.WriteString("│" + strings.Repeat(" ", inner) + "│")

	t.MoveTo(x, y+2)
	t.buf.WriteString("│" + grid.ResetStyle)
	t.buf.WriteString(centered(fmt.Sprintf("Current: %s%d x %d%s", red, t.cols, t.rows, yellow), inner))
	t.buf.WriteString(yellow + "│")

	t.MoveTo(x, y+3)
	t.buf.WriteString("│" + grid.ResetStyle)
	t.buf.WriteString(centered(fmt.Sprintf("Minimum: %d x %d", t.minCols, t.minRows), inner))
	t.buf.WriteString(yellow + "│")

	t.MoveTo(x, y+4)
	t.buf.WriteString("│" + strings.Repeat(" ", inner) + "│")
	t.MoveTo(x, y+5)
	t.buf.WriteString("╰" + strings.Repeat("─", inner) + "╯")
	t.buf.WriteString(grid.ResetStyle)
}

// centered pads s with spaces to width cells, ignoring escape sequences.
func centered(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}
