package grid

import "strconv"

const (
	ESC = "\x1b"
	CSI = ESC + "["

	// ResetStyle clears every attribute set by a style sequence.
	ResetStyle = CSI + "0m"
)

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return CSI + strconv.Itoa(row) + ";" + strconv.Itoa(col) + "H"
}

// CursorForward moves the cursor n columns right without painting.
func CursorForward(n int) string {
	return CSI + strconv.Itoa(n) + "C"
}

// CursorBack moves the cursor n columns left.
func CursorBack(n int) string {
	return CSI + strconv.Itoa(n) + "D"
}

// CursorDown moves the cursor n rows down.
func CursorDown(n int) string {
	return CSI + strconv.Itoa(n) + "B"
}

func appendMoveTo(b []byte, row, col int) []byte {
	b = append(b, CSI...)
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

func appendForward(b []byte, n int) []byte {
	b = append(b, CSI...)
	b = strconv.AppendInt(b, int64(n), 10)
	return append(b, 'C')
}
