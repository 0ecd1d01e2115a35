package game

// Point is a terminal position, 1-based.
type Point struct {
	X int
	Y int
}

// World is the play field: a box sized from the T-rex height and centred in
// the terminal. BottomRight is one past the last column and row of the box.
type World struct {
	Width  int
	Height int

	TopLeft     Point
	BottomRight Point
	Ground      int
}

func NewWorld(trexHeight int) World {
	return World{
		Width:  trexHeight * 20,
		Height: trexHeight * 4,
	}
}

// Center places the box in a cols x rows terminal and returns how far the
// box and its ground moved.
func (w *World) Center(cols, rows int) (dx, dy int) {
	left := max((cols-w.Width)/2, 0) + 1
	top := max((rows-w.Height)/2, 0) + 1

	oldLeft, oldGround := w.TopLeft.X, w.Ground
	w.TopLeft = Point{X: left, Y: top}
	w.BottomRight = Point{X: left + w.Width, Y: top + w.Height}
	w.Ground = w.BottomRight.Y - 1

	return w.TopLeft.X - oldLeft, w.Ground - oldGround
}

// Left and Right are the border columns used for clipping sprites.
func (w World) Left() int {
	return w.TopLeft.X
}

func (w World) Right() int {
	return w.BottomRight.X
}
