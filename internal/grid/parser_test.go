package grid

import (
	"math/rand"
	"strings"
	"testing"
	"testing/quick"
)

func cellsOf(g Grid, r int) []Cell {
	row := make([]Cell, g.Cols())
	for c := range row {
		row[c] = g.At(r, c)
	}
	return row
}

func TestParseStylePersistsAcrossLines(t *testing.T) {
	g := Parse([]string{"\x1b[1mAB", "CD"}, 2)

	if g.Rows() != 2 || g.Cols() != 2 {
		t.Fatalf("Expected 2x2 grid, got %dx%d", g.Rows(), g.Cols())
	}

	want := []string{"A", "B", "C", "D"}
	for i, ch := range want {
		c := g.At(i/2, i%2)
		if c.Ch != ch {
			t.Errorf("Cell %d: expected %q, got %q", i, ch, c.Ch)
		}
		if c.Style != "\x1b[1m" {
			t.Errorf("Cell %d: expected bold style, got %q", i, c.Style)
		}
	}
}

func TestParseForwardJump(t *testing.T) {
	g := Parse([]string{"\x1b[33mA\x1b[3CB"}, 6)

	row := cellsOf(g, 0)
	if row[0].Ch != "A" {
		t.Errorf("Expected 'A' at column 0, got %q", row[0].Ch)
	}
	for c := 1; c <= 3; c++ {
		if !row[c].Empty() {
			t.Errorf("Expected transparent cell at column %d, got %q", c, row[c].Ch)
		}
		if row[c].Style != "" {
			t.Errorf("Expected jump to leave no style at column %d, got %q", c, row[c].Style)
		}
	}
	if row[4].Ch != "B" {
		t.Errorf("Expected 'B' at column 4, got %q", row[4].Ch)
	}
	if row[0].Style != row[4].Style || row[4].Style != "\x1b[33m" {
		t.Errorf("Expected the jump to keep the active style, got %q and %q", row[0].Style, row[4].Style)
	}
	if !row[5].Empty() {
		t.Errorf("Expected trailing transparent cell, got %q", row[5].Ch)
	}
}

func TestParseForwardJumpClamps(t *testing.T) {
	g := Parse([]string{"A\x1b[99CB"}, 4)

	row := cellsOf(g, 0)
	if row[0].Ch != "A" {
		t.Errorf("Expected 'A', got %q", row[0].Ch)
	}
	for c := 1; c < 4; c++ {
		if !row[c].Empty() {
			t.Errorf("Expected column %d to stay empty, got %q", c, row[c].Ch)
		}
	}
}

func TestParseMalformedForwardCount(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"missing count", "A\x1b[CB"},
		{"compound count", "A\x1b[1;2CB"},
		{"overflowing count", "A\x1b[99999999999999999999999CB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse([]string{tt.line}, 4)
			if g.At(0, 0).Ch != "A" || !g.At(0, 1).Empty() || g.At(0, 2).Ch != "B" {
				t.Errorf("Expected A, blank, B; got %q %q %q", g.At(0, 0).Ch, g.At(0, 1).Ch, g.At(0, 2).Ch)
			}
		})
	}
}

func TestParseZeroForwardCount(t *testing.T) {
	g := Parse([]string{"A\x1b[0CB"}, 4)
	if g.At(0, 0).Ch != "A" || g.At(0, 1).Ch != "B" || !g.At(0, 2).Empty() {
		t.Errorf("Expected a zero jump not to move; got %q %q %q", g.At(0, 0).Ch, g.At(0, 1).Ch, g.At(0, 2).Ch)
	}
}

func TestParseHugeForwardCount(t *testing.T) {
	tests := []struct {
		name string
		line string
		cols int
	}{
		{"max int", "A\x1b[9223372036854775807CB", 4},
		{"max int minus one", "A\x1b[9223372036854775806CB", 4},
		{"max int at the last column", "ABC\x1b[9223372036854775807CD", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Parse([]string{tt.line}, tt.cols)
			if g.Rows() != 1 || g.Cols() != tt.cols {
				t.Fatalf("Expected 1x%d grid, got %dx%d", tt.cols, g.Rows(), g.Cols())
			}
			if g.At(0, 0).Ch != "A" {
				t.Errorf("Expected A first, got %q", g.At(0, 0).Ch)
			}
			last := g.At(0, tt.cols-1)
			if !last.Empty() {
				t.Errorf("Expected the jump to clamp at the row end, got %q in the last column", last.Ch)
			}
		})
	}
}

func TestParseMultiByte(t *testing.T) {
	g := Parse([]string{"\x1b[7m▄█▀"}, 3)

	want := []string{"▄", "█", "▀"}
	for c, ch := range want {
		if got := g.At(0, c).Ch; got != ch {
			t.Errorf("Column %d: expected %q, got %q", c, ch, got)
		}
	}
}

func TestParseShortLineAndOverflow(t *testing.T) {
	g := Parse([]string{"ab", "abcdef"}, 4)

	if g.At(0, 1).Ch != "b" || !g.At(0, 2).Empty() || !g.At(0, 3).Empty() {
		t.Error("Expected short line to be padded with transparent cells")
	}
	if g.At(1, 3).Ch != "d" {
		t.Errorf("Expected 'd' in last column, got %q", g.At(1, 3).Ch)
	}
}

func TestParseSpaceIsNotTransparent(t *testing.T) {
	g := Parse([]string{"a b"}, 3)

	if g.At(0, 1).Empty() || g.At(0, 1).Ch != " " {
		t.Errorf("Expected a painted space, got %q", g.At(0, 1).Ch)
	}
}

func TestParseDegenerate(t *testing.T) {
	if g := Parse(nil, 5); !g.Empty() {
		t.Error("Expected grid without lines to be empty")
	}
	g := Parse([]string{"abc"}, 0)
	if !g.Empty() || g.Rows() != 1 {
		t.Errorf("Expected one zero-width row, got %dx%d", g.Rows(), g.Cols())
	}
	if g := Parse([]string{"abc"}, -3); g.Cols() != 0 {
		t.Errorf("Expected negative width to clamp to 0, got %d", g.Cols())
	}
}

func TestParseShapeProperty(t *testing.T) {
	alphabet := []string{"a", " ", "█", "é", "\x1b[1m", "\x1b[0m", "\x1b[3C", "\x1b[C", "\x1b[31;1m", "\xe2", "\x1b["}

	f := func(seed int64, nLines, cols uint8) bool {
		r := rand.New(rand.NewSource(seed))
		lines := make([]string, int(nLines%12))
		for i := range lines {
			var sb strings.Builder
			for j := r.Intn(20); j > 0; j-- {
				sb.WriteString(alphabet[r.Intn(len(alphabet))])
			}
			lines[i] = sb.String()
		}

		g := Parse(lines, int(cols%40))
		if g.Rows() != len(lines) || g.Cols() != int(cols%40) {
			return false
		}
		for row := range g.cells {
			if len(g.cells[row]) != g.Cols() {
				return false
			}
		}
		return true
	}

	if err := quick.Check(f, nil); err != nil {
		t.Error(err)
	}
}

func TestParseIsPure(t *testing.T) {
	lines := []string{"\x1b[1m/\\\x1b[2C", "\x1b[2m||"}

	a := Parse(lines, 4)
	b := Parse(lines, 4)
	for r := 0; r < a.Rows(); r++ {
		for c := 0; c < a.Cols(); c++ {
			if a.At(r, c) != b.At(r, c) {
				t.Fatalf("Expected identical grids, differ at %d,%d", r, c)
			}
		}
	}
}

func TestNewPadsAndCopies(t *testing.T) {
	src := [][]Cell{{{Ch: "a"}}, {{Ch: "b"}, {Ch: "c"}, {Ch: "d"}}}
	g := New(src, 2)

	src[0][0].Ch = "z"
	if g.At(0, 0).Ch != "a" {
		t.Error("Expected New to copy the cells")
	}
	if !g.At(0, 1).Empty() {
		t.Error("Expected short row to be padded")
	}
	if g.At(1, 2).Ch != "" {
		t.Error("Expected long row to be cut")
	}
}
