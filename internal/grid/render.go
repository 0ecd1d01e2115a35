package grid

import "io"

// RenderFull draws g with its top-left corner at (originRow, originCol).
//
// Transparent cells are never painted: runs of them become a single
// cursor-forward, and a style sequence is only written when the next painted
// glyph needs a different one. Output therefore grows with the number of
// glyphs and style transitions, not with the grid area.
func RenderFull(w io.Writer, g Grid, originRow, originCol int) error {
	if g.Empty() {
		return nil
	}

	enc := encoder{buf: make([]byte, 0, g.Rows()*g.Cols()*2)}
	for r, row := range g.cells {
		enc.buf = appendMoveTo(enc.buf, originRow+r, originCol)
		enc.row(row, true)
	}
	enc.buf = append(enc.buf, ResetStyle...)

	_, err := w.Write(enc.buf)
	return err
}

// RenderLeftSlice draws columns [clipCol, cols) of g starting at
// (originRow, originCol). It is used for sprites sliding out past the left
// edge of the play field, so every glyph carries its own style and the
// cursor walks down with relative moves.
func RenderLeftSlice(w io.Writer, g Grid, originRow, originCol, clipCol int) error {
	if g.Empty() {
		return nil
	}
	clip := clamp(clipCol, 0, g.cols)
	width := g.cols - clip
	if width == 0 {
		return nil
	}

	buf := make([]byte, 0, g.Rows()*width*4)
	buf = appendMoveTo(buf, originRow, originCol)
	for _, row := range g.cells {
		for _, c := range row[clip:] {
			if c.Empty() {
				buf = appendForward(buf, 1)
				continue
			}
			if c.Style == "" {
				buf = append(buf, ResetStyle...)
			} else {
				buf = append(buf, c.Style...)
			}
			buf = append(buf, c.Ch...)
		}
		buf = append(buf, CursorBack(width)...)
		buf = append(buf, CursorDown(1)...)
	}
	buf = append(buf, ResetStyle...)

	_, err := w.Write(buf)
	return err
}

// RenderRightSlice draws columns [0, visibleCols) of g at (originRow,
// originCol), for sprites entering from the right edge. Each row starts from
// a reset style so nothing bleeds in from whatever was drawn there before.
func RenderRightSlice(w io.Writer, g Grid, originRow, originCol, visibleCols int) error {
	if g.Empty() {
		return nil
	}
	visible := clamp(visibleCols, 0, g.cols)
	if visible == 0 {
		return nil
	}

	enc := encoder{buf: make([]byte, 0, g.Rows()*visible*2)}
	for r, row := range g.cells {
		enc.buf = appendMoveTo(enc.buf, originRow+r, originCol)
		enc.buf = append(enc.buf, ResetStyle...)
		enc.last = ""
		enc.row(row[:visible], true)
	}
	enc.buf = append(enc.buf, ResetStyle...)

	_, err := w.Write(enc.buf)
	return err
}

// Lines encodes g back into escape-laden art lines: style sequences where
// the painted style changes and cursor-forward runs for transparent cells.
// Parsing the result with g.Cols() yields g again as long as no unstyled
// glyph follows a styled one.
func Lines(g Grid) []string {
	lines := make([]string, 0, g.Rows())
	enc := encoder{}
	for _, row := range g.cells {
		enc.buf = enc.buf[:0]
		enc.row(row, false)
		lines = append(lines, string(enc.buf))
	}
	return lines
}

// encoder run-length encodes rows of cells. The last emitted style is kept
// across rows because the terminal keeps it too.
type encoder struct {
	buf  []byte
	last string
}

func (e *encoder) row(cells []Cell, resetToDefault bool) {
	pending := 0
	for _, c := range cells {
		if c.Empty() {
			pending++
			continue
		}
		if pending > 0 {
			e.buf = appendForward(e.buf, pending)
			pending = 0
		}
		if c.Style != e.last {
			switch {
			case c.Style != "":
				e.buf = append(e.buf, c.Style...)
			case resetToDefault:
				e.buf = append(e.buf, ResetStyle...)
			}
			e.last = c.Style
		}
		e.buf = append(e.buf, c.Ch...)
	}
	if pending > 0 {
		e.buf = appendForward(e.buf, pending)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
