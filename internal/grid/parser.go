package grid

import (
	"regexp"
	"strconv"
)

// escapePattern matches the CSI sequences found in sprite art: style setting
// sequences and the cursor-forward jump used for transparent runs.
var escapePattern = regexp.MustCompile("\x1b\\[[0-9;]*[A-Za-z]")

// Cell is one terminal column of a parsed sprite. An empty Ch is a
// transparent cell: the renderer skips over it instead of painting a space.
type Cell struct {
	Ch    string
	Style string
}

// Empty reports whether the cell is transparent.
func (c Cell) Empty() bool {
	return c.Ch == ""
}

// Grid is an immutable rectangle of cells. Every row holds exactly Cols()
// cells.
type Grid struct {
	cells [][]Cell
	cols  int
}

// Rows returns the number of rows.
func (g Grid) Rows() int {
	return len(g.cells)
}

// Cols returns the fixed row width.
func (g Grid) Cols() int {
	return g.cols
}

// Empty reports whether the grid has nothing to draw.
func (g Grid) Empty() bool {
	return len(g.cells) == 0 || g.cols == 0
}

// At returns the cell at row r, column c. Out of range lookups return a
// transparent cell.
func (g Grid) At(r, c int) Cell {
	if r < 0 || r >= len(g.cells) || c < 0 || c >= g.cols {
		return Cell{}
	}
	return g.cells[r][c]
}

// New builds a grid of cols columns from rows of cells. Short rows are padded
// with transparent cells and long rows are cut. The cells are copied.
func New(rows [][]Cell, cols int) Grid {
	if cols < 0 {
		cols = 0
	}
	g := Grid{cells: make([][]Cell, len(rows)), cols: cols}
	for r, src := range rows {
		row := make([]Cell, cols)
		copy(row, src)
		g.cells[r] = row
	}
	return g
}

// Parse converts escape-laden art lines into a grid of cols columns.
//
// The active style carries over from one line to the next, so art that sets
// a colour once keeps it until another style sequence appears. A
// cursor-forward sequence leaves transparent cells behind and never touches
// the active style. Anything past the last column is dropped.
func Parse(lines []string, cols int) Grid {
	if cols < 0 {
		cols = 0
	}
	g := Grid{cells: make([][]Cell, 0, len(lines)), cols: cols}

	activeStyle := ""
	for _, line := range lines {
		row := make([]Cell, cols)
		col := 0
		pos := 0

		for _, m := range escapePattern.FindAllStringIndex(line, -1) {
			if col >= cols {
				break
			}
			col, pos = fillText(row, line, pos, m[0], col, activeStyle)
			if col >= cols {
				break
			}

			seq := line[m[0]:m[1]]
			if seq[len(seq)-1] == 'C' {
				if n := forwardCount(seq); n >= cols-col {
					col = cols
				} else {
					col += n
				}
			} else {
				activeStyle = seq
			}
			pos = m[1]
		}
		fillText(row, line, pos, len(line), col, activeStyle)

		g.cells = append(g.cells, row)
	}
	return g
}

// fillText writes the visual units of line[pos:end] into row starting at col.
func fillText(row []Cell, line string, pos, end, col int, style string) (int, int) {
	for pos < end && col < len(row) {
		u := NextUnit(line[:end], pos)
		if u == "" {
			break
		}
		row[col] = Cell{Ch: u, Style: style}
		col++
		pos += len(u)
	}
	return col, pos
}

// forwardCount extracts N from ESC [ N C. A missing or malformed count means
// one column; an explicit zero does not move.
func forwardCount(seq string) int {
	digits := seq[2 : len(seq)-1]
	if digits == "" {
		return 1
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 1
	}
	return n
}
