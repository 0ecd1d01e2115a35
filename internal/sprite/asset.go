package sprite

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/shvbsle/termrex/internal/grid"
)

// Filler marks a cell in plain art that is painted as a space and counts as
// solid, e.g. the inside of a cactus.
const Filler = "$"

// Mask marks the solid cells of an asset. It may be smaller than the asset;
// missing cells are not solid.
type Mask [][]bool

// Solid reports whether the cell at row r, column c is solid.
func (m Mask) Solid(r, c int) bool {
	if r < 0 || r >= len(m) || c < 0 || c >= len(m[r]) {
		return false
	}
	return m[r][c]
}

// Asset is a piece of sprite art: its escape-laden lines, declared size and
// collision mask. The parsed grid is built once and shared by every Sprite
// that points at the asset.
type Asset struct {
	Name  string
	Rows  int
	Cols  int
	Lines []string
	Mask  Mask

	grid grid.Grid
}

// NewAsset parses lines into an asset of rows x cols. Missing lines are
// treated as blank and extra lines are dropped so the grid always matches
// the declared shape.
func NewAsset(name string, rows, cols int, lines []string, mask Mask) *Asset {
	if rows < 0 {
		rows = 0
	}
	fitted := make([]string, rows)
	copy(fitted, lines)

	return &Asset{
		Name:  name,
		Rows:  rows,
		Cols:  cols,
		Lines: fitted,
		Mask:  mask,
		grid:  grid.Parse(fitted, cols),
	}
}

// Grid returns the parsed art.
func (a *Asset) Grid() grid.Grid {
	return a.grid
}

// Compile turns plain art into an asset. Spaces become transparent
// cursor-forward runs and are not solid; Filler is painted as a space and is
// solid; everything else is painted with style and is solid. The width is
// the longest line, counted in visual units.
func Compile(name string, plain []string, style string) *Asset {
	cols := 0
	units := make([][]string, len(plain))
	for r, line := range plain {
		units[r] = grid.SplitUnits(line)
		if len(units[r]) > cols {
			cols = len(units[r])
		}
	}

	cells := make([][]grid.Cell, len(plain))
	mask := make(Mask, len(plain))
	for r, row := range units {
		cells[r] = make([]grid.Cell, len(row))
		mask[r] = make([]bool, cols)
		for c, u := range row {
			switch u {
			case " ":
				continue
			case Filler:
				u = " "
			}
			cells[r][c] = grid.Cell{Ch: u, Style: style}
			mask[r][c] = true
		}
	}

	return NewAsset(name, len(plain), cols, grid.Lines(grid.New(cells, cols)), mask)
}

// Validate checks that every glyph of the asset occupies exactly one
// terminal column and that the mask does not exceed the declared shape.
// Wide glyphs would shift the rest of the row on screen.
func Validate(a *Asset) error {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false

	g := a.Grid()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			ch := g.At(r, c).Ch
			if ch == "" {
				continue
			}
			if w := cond.StringWidth(ch); w != 1 {
				return fmt.Errorf("asset %s: glyph %q at %d,%d is %d columns wide", a.Name, ch, r, c, w)
			}
		}
	}
	if len(a.Mask) > a.Rows {
		return fmt.Errorf("asset %s: mask has %d rows, asset has %d", a.Name, len(a.Mask), a.Rows)
	}
	for r, row := range a.Mask {
		if len(row) > a.Cols {
			return fmt.Errorf("asset %s: mask row %d has %d columns, asset has %d", a.Name, r, len(row), a.Cols)
		}
	}
	return nil
}

// Plain returns the asset as plain text, one line per row, with transparent
// cells as spaces.
func Plain(a *Asset) []string {
	g := a.Grid()
	lines := make([]string, g.Rows())
	for r := range lines {
		var sb strings.Builder
		for c := 0; c < g.Cols(); c++ {
			ch := g.At(r, c).Ch
			if ch == "" {
				ch = " "
			}
			sb.WriteString(ch)
		}
		lines[r] = sb.String()
	}
	return lines
}
