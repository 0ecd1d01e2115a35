package sprite

import (
	"io"

	"github.com/shvbsle/termrex/internal/grid"
)

// Unset is the position of a sprite that has not been placed yet.
const Unset = -1

// Sprite is an asset placed on screen. Top and Left are 1-indexed terminal
// coordinates of the top-left cell. Sprites sharing an asset share its grid.
type Sprite struct {
	asset *Asset
	Top   int
	Left  int
}

func New(asset *Asset, top, left int) *Sprite {
	return &Sprite{asset: asset, Top: top, Left: left}
}

func (s *Sprite) Asset() *Asset {
	return s.asset
}

// SetAsset swaps the art and keeps the position, e.g. for animation frames.
func (s *Sprite) SetAsset(a *Asset) {
	s.asset = a
}

func (s *Sprite) Grid() grid.Grid {
	if s.asset == nil {
		return grid.Grid{}
	}
	return s.asset.Grid()
}

func (s *Sprite) Rows() int {
	if s.asset == nil {
		return 0
	}
	return s.asset.Rows
}

func (s *Sprite) Cols() int {
	if s.asset == nil {
		return 0
	}
	return s.asset.Cols
}

// Bottom is the last occupied row.
func (s *Sprite) Bottom() int {
	return s.Top + s.Rows() - 1
}

// Right is the last occupied column.
func (s *Sprite) Right() int {
	return s.Left + s.Cols() - 1
}

func (s *Sprite) SetPos(top, left int) {
	s.Top, s.Left = top, left
}

func (s *Sprite) MoveBy(dRows, dCols int) {
	s.Top += dRows
	s.Left += dCols
}

// Positioned reports whether the sprite can be drawn. Rows above the first
// terminal line are never visible.
func (s *Sprite) Positioned() bool {
	return s.Top >= 1
}

// Render draws the sprite into the play field whose left and right borders
// sit at columns gameLeft and gameRight. Sprites crossing a border are
// clipped to the columns strictly between the borders; sprites entirely
// outside draw nothing.
func (s *Sprite) Render(w io.Writer, gameLeft, gameRight int) error {
	if s.asset == nil || !s.Positioned() {
		return nil
	}
	g := s.asset.Grid()
	if g.Empty() {
		return nil
	}

	switch {
	case s.Right() < gameLeft+1 || s.Left > gameRight-1:
		return nil
	case s.Left+g.Cols() > gameRight-1:
		return grid.RenderRightSlice(w, g, s.Top, s.Left, gameRight-s.Left-1)
	case s.Left < gameLeft+1:
		return grid.RenderLeftSlice(w, g, s.Top, gameLeft+1, gameLeft-s.Left+1)
	default:
		return grid.RenderFull(w, g, s.Top, s.Left)
	}
}

// Collide reports whether two sprites overlap on at least one cell that is
// solid in both masks. Only the intersection of the bounding boxes is
// inspected.
func Collide(a, b *Sprite) bool {
	if a == nil || b == nil || a.asset == nil || b.asset == nil {
		return false
	}
	if a.Right() < b.Left || b.Right() < a.Left || a.Bottom() < b.Top || b.Bottom() < a.Top {
		return false
	}

	top := max(a.Top, b.Top)
	bottom := min(a.Bottom(), b.Bottom())
	left := max(a.Left, b.Left)
	right := min(a.Right(), b.Right())

	for r := top; r <= bottom; r++ {
		for c := left; c <= right; c++ {
			if a.asset.Mask.Solid(r-a.Top, c-a.Left) && b.asset.Mask.Solid(r-b.Top, c-b.Left) {
				return true
			}
		}
	}
	return false
}
