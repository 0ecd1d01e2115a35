package sprite

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadPlain reads plain art from r, one line per row. Trailing carriage
// returns are dropped and so are trailing blank lines.
func ReadPlain(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read art: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// WriteGo writes a Go declaration of a as a variable named ident, ready to
// paste into a theme.
func WriteGo(w io.Writer, a *Asset, ident string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s is %d rows by %d columns.\n", ident, a.Rows, a.Cols)
	fmt.Fprintf(&b, "var %s = sprite.NewAsset(%q, %d, %d, []string{\n", ident, a.Name, a.Rows, a.Cols)
	for _, line := range a.Lines {
		fmt.Fprintf(&b, "\t%s,\n", strconv.Quote(line))
	}
	b.WriteString("}, sprite.Mask{\n")
	for _, row := range a.Mask {
		b.WriteString("\t{")
		for c, solid := range row {
			if c > 0 {
				b.WriteString(", ")
			}
			b.WriteString(strconv.FormatBool(solid))
		}
		b.WriteString("},\n")
	}
	b.WriteString("})\n")

	_, err := io.WriteString(w, b.String())
	return err
}
