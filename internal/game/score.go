package game

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/grid"
	"github.com/shvbsle/termrex/internal/scores"
)

const (
	MaxScore        = 999999
	scorePerColumn  = 0.08
	hudDigits       = 5
	hudNumberGap    = 3
	hudLabelGap     = 3
	hudPaddingRight = 4

	dim  = "\x1b[2m"
	bold = "\x1b[1m"
)

// Score counts points for distance run and keeps the best score from the
// high score table.
type Score struct {
	Current float64
	High    float64

	font  assets.Font
	store *scores.Store
}

func NewScore(font assets.Font, store *scores.Store) *Score {
	return &Score{font: font, store: store, High: float64(store.Best())}
}

func (s *Score) Update(dt, speed float64) {
	s.Current = min(s.Current+speed*dt*scorePerColumn, MaxScore)
}

func (s *Score) Points() int {
	return int(s.Current)
}

// Record adds the current score to the table and saves it. It reports
// whether the score made the table.
func (s *Score) Record(player string) (bool, error) {
	points := s.Points()
	if float64(points) >= s.High {
		s.High = float64(points)
	}
	if points == 0 || !s.store.Add(scores.Entry{Score: points, Player: player}) {
		return false, nil
	}
	if err := s.store.Save(); err != nil {
		return true, fmt.Errorf("saving score %d: %w", points, err)
	}
	return true, nil
}

func (s *Score) Reset() {
	s.Current = 0
	s.High = float64(s.store.Best())
}

// Width is how many columns the HUD takes, padding included.
func (s *Score) Width() int {
	dw := s.font.Width()
	return hudDigits*dw*2 + s.font.Hi.Cols + hudLabelGap + hudNumberGap + hudPaddingRight
}

// Draw paints "HI <high> <current>" in big digits in the top right corner
// of the play field.
func (s *Score) Draw(w io.Writer, world World) error {
	row := world.TopLeft.Y + 1
	col := world.BottomRight.X - 1 - s.Width()
	dw := s.font.Width()

	if _, err := io.WriteString(w, dim); err != nil {
		return err
	}
	if err := grid.RenderFull(w, s.font.Hi.Grid(), row, col); err != nil {
		return err
	}

	highEnd := col + s.font.Hi.Cols + hudLabelGap + hudDigits*dw
	if err := s.drawNumber(w, int(s.High), row, highEnd, dim); err != nil {
		return err
	}
	return s.drawNumber(w, s.Points(), row, highEnd+hudNumberGap+hudDigits*dw, bold)
}

// drawNumber draws n zero-padded and right-aligned so its last digit ends
// just before column end.
func (s *Score) drawNumber(w io.Writer, n, row, end int, style string) error {
	digits := strconv.Itoa(min(max(n, 0), MaxScore))
	for len(digits) < hudDigits {
		digits = "0" + digits
	}
	dw := s.font.Width()
	col := end - len(digits)*dw
	for i := 0; i < len(digits); i++ {
		if _, err := io.WriteString(w, style); err != nil {
			return err
		}
		d := s.font.Digits[digits[i]-'0']
		if err := grid.RenderFull(w, d.Grid(), row, col+i*dw); err != nil {
			return err
		}
	}
	return nil
}
