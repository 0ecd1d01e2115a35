package assets

import (
	"strconv"
	"sync"

	"github.com/shvbsle/termrex/internal/sprite"
)

// Offset is a cell position relative to a sprite's top-left corner.
type Offset struct {
	Row int
	Col int
}

// Physics is the T-rex jump model, in rows per second.
type Physics struct {
	Gravity     float64
	JumpImpulse float64
	MaxFall     float64
}

// Face is the dead-face overlay drawn over the T-rex on game over.
type Face struct {
	Eye       Offset
	EyeDown   Offset
	Mouth     Offset
	MouthDown Offset
	EyeGlyph  string
	// MouthLines are drawn one below the other starting at the mouth
	// offset.
	MouthLines []string
}

// TrexPack holds every frame of the T-rex. Idle, Jump, Run1 and Run2 share
// one shape; the Down frames are lower and longer.
type TrexPack struct {
	Idle  *sprite.Asset
	Jump  *sprite.Asset
	Run1  *sprite.Asset
	Run2  *sprite.Asset
	Down1 *sprite.Asset
	Down2 *sprite.Asset

	Face    Face
	Physics Physics
}

// Height is the standing height, which also sizes the world.
func (p TrexPack) Height() int {
	return p.Idle.Rows
}

// Font is a big-digit font for the score display.
type Font struct {
	Digits [10]*sprite.Asset
	Hi     *sprite.Asset
}

// Width of one digit.
func (f Font) Width() int {
	return f.Digits[0].Cols
}

// Height of one digit.
func (f Font) Height() int {
	return f.Digits[0].Rows
}

// RetryArt is the two-frame picture shown on the game over screen. Blink
// marks cells of the first frame that flash before the swipe.
type RetryArt struct {
	First   []string
	Second  []string
	Blink   []Offset
	Inverse bool
}

// Theme is a complete set of art for one character set.
type Theme struct {
	Name string

	Trex         TrexPack
	Cacti        []*sprite.Asset
	Pterodactyls [][2]*sprite.Asset
	// PteroLift shifts pterodactyls down relative to the T-rex head.
	PteroLift int

	IntroBanner    *sprite.Asset
	GameOverBanner *sprite.Asset
	Font           Font
	Retry          RetryArt
}

// All returns every sprite asset of the theme in a stable order.
func (t *Theme) All() []*sprite.Asset {
	all := []*sprite.Asset{
		t.Trex.Idle, t.Trex.Jump, t.Trex.Run1, t.Trex.Run2, t.Trex.Down1, t.Trex.Down2,
	}
	all = append(all, t.Cacti...)
	for _, p := range t.Pterodactyls {
		all = append(all, p[0], p[1])
	}
	all = append(all, t.IntroBanner, t.GameOverBanner, t.Font.Hi)
	all = append(all, t.Font.Digits[:]...)
	return all
}

var (
	asciiTheme   = sync.OnceValue(newASCII)
	unicodeTheme = sync.OnceValue(newUnicode)
)

// ASCII returns the plain ASCII theme. Assets are compiled once and shared.
func ASCII() *Theme {
	return asciiTheme()
}

// Unicode returns the block-character theme.
func Unicode() *Theme {
	return unicodeTheme()
}

// For picks the theme for the ascii-only setting.
func For(asciiOnly bool) *Theme {
	if asciiOnly {
		return ASCII()
	}
	return Unicode()
}

// Themes lists every theme, ASCII first.
func Themes() []*Theme {
	return []*Theme{ASCII(), Unicode()}
}

func compileAll(prefix, style string, arts ...[]string) []*sprite.Asset {
	out := make([]*sprite.Asset, len(arts))
	for i, art := range arts {
		out[i] = sprite.Compile(prefix+strconv.Itoa(i+1), art, style)
	}
	return out
}
