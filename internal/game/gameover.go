package game

import (
	"io"
	"math"

	"github.com/shvbsle/termrex/internal/grid"
)

// Timeline of the retry animation, in seconds.
const (
	retryFirstHold  = 0.6
	retryBlinkStep  = 0.05
	retryBlinks     = 12
	retrySwipeStep  = 0.008
	retrySwipeSteps = 90
	retrySwipeHold  = 0.3

	retryPrompt = "Hit Space to try again, Q or Esc to exit"
	inverse     = "\x1b[7m"
	noInverse   = "\x1b[27m"
)

var (
	retryBlinkEnd = retryFirstHold + retryBlinks*retryBlinkStep
	retrySwipeEnd = retryBlinkEnd + retrySwipeSteps*retrySwipeStep
	retryDone     = retrySwipeEnd + retrySwipeHold
)

// GameOver is the screen shown after a collision: the frozen scene with a
// dead T-rex, the banner and a retry icon that morphs from its first frame
// into its second.
type GameOver struct {
	g *Game

	elapsed float64
	first   [][]string
	second  [][]string
	cols    int
}

func newGameOver(g *Game) *GameOver {
	over := &GameOver{g: g}
	art := g.theme.Retry
	first, cols := splitArt(art.First, 0)
	over.second, over.cols = splitArt(art.Second, cols)
	if over.cols > cols {
		first, _ = splitArt(art.First, over.cols)
	}
	over.first = first
	return over
}

// splitArt cuts lines into glyph units, padding every row to at least cols.
func splitArt(lines []string, cols int) ([][]string, int) {
	rows := make([][]string, len(lines))
	for i, line := range lines {
		rows[i] = grid.SplitUnits(line)
		cols = max(cols, len(rows[i]))
	}
	for i := range rows {
		for len(rows[i]) < cols {
			rows[i] = append(rows[i], " ")
		}
	}
	return rows, cols
}

func (over *GameOver) Update(dt float64) {
	over.elapsed += dt
}

// Animating reports whether the retry icon is still changing. Input other
// than quit is ignored until it settles.
func (over *GameOver) Animating() bool {
	return over.elapsed < retryDone
}

func (over *GameOver) Reset() {
	over.elapsed = 0
}

func (over *GameOver) Draw(w io.Writer) error {
	g := over.g
	world := g.world

	if err := g.drawScene(w); err != nil {
		return err
	}
	if err := g.trex.DrawDeadFace(w); err != nil {
		return err
	}

	banner := g.theme.GameOverBanner
	if err := grid.RenderFull(w, banner.Grid(), world.TopLeft.Y+5, world.TopLeft.X+(world.Width-banner.Cols)/2); err != nil {
		return err
	}

	x := world.TopLeft.X + (world.Width-over.cols)/2
	y := world.TopLeft.Y + (world.Height-7)/2 + 2
	over.drawArt(w, x, y)

	if !over.Animating() {
		g.text(w, world.TopLeft.X+(world.Width-len(retryPrompt))/2, y+len(over.first)+1, dim, retryPrompt)
	}
	return nil
}

func (over *GameOver) drawArt(w io.Writer, x, y int) {
	g := over.g
	blinkOff := false
	if t := over.elapsed; t >= retryFirstHold && t < retryBlinkEnd {
		blinkOff = int((t-retryFirstHold)/retryBlinkStep)%2 == 1
	}
	blinking := make(map[[2]int]bool, len(g.theme.Retry.Blink))
	for _, p := range g.theme.Retry.Blink {
		blinking[[2]int{p.Row, p.Col}] = true
	}

	theta := -1.0
	switch {
	case over.elapsed >= retrySwipeEnd:
		theta = 2 * math.Pi
	case over.elapsed >= retryBlinkEnd:
		step := int((over.elapsed - retryBlinkEnd) / retrySwipeStep)
		theta = float64(step) / retrySwipeSteps * 2 * math.Pi
	}

	cy := float64(len(over.first)-1) / 2
	cx := float64(over.cols-1) / 2

	var buf []byte
	for r := range over.first {
		buf = append(buf, grid.MoveTo(y+r, x)...)
		switch {
		case !g.theme.Retry.Inverse:
			buf = append(buf, bold...)
		case r == 0:
			buf = append(buf, noInverse...)
		default:
			buf = append(buf, inverse...)
		}
		for c := 0; c < over.cols; c++ {
			glyph := over.first[r][c]
			if r < len(over.second) && sweptBy(float64(c)-cx, float64(r)-cy, theta) {
				glyph = over.second[r][c]
			} else if blinkOff && blinking[[2]int{r, c}] {
				glyph = " "
			}
			buf = append(buf, glyph...)
		}
	}
	buf = append(buf, grid.ResetStyle...)
	_, _ = w.Write(buf)
}

// sweptBy reports whether a clock hand turned theta radians clockwise from
// twelve o'clock has passed the cell at (dx, dy) from the centre.
func sweptBy(dx, dy, theta float64) bool {
	if theta < 0 {
		return false
	}
	ang := math.Atan2(dx, -dy)
	if ang < 0 {
		ang += 2 * math.Pi
	}
	return ang <= theta
}
