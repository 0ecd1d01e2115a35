// Package gallery is an interactive viewer for the sprite art of every
// theme, with the collision masks laid over it.
package gallery

import (
	"fmt"
	"strings"

	tl "github.com/JoelOtter/termloop"
	"github.com/atotto/clipboard"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/log"
	"github.com/shvbsle/termrex/internal/sprite"
)

const (
	galleryFPS = 30
	// maskGlyph marks solid cells that paint nothing.
	maskGlyph = '░'
)

// Viewer shows one asset at a time. It is a termloop Drawable.
type Viewer struct {
	themes []*assets.Theme
	theme  int
	index  int

	showMask bool
	status   string

	// copy puts text on the system clipboard.
	copy func(text string) error
}

// NewViewer opens on the first asset of the ASCII or Unicode theme.
func NewViewer(asciiOnly bool) *Viewer {
	v := &Viewer{
		themes: assets.Themes(),
		copy:   clipboard.WriteAll,
	}
	want := assets.For(asciiOnly)
	for i, t := range v.themes {
		if t == want {
			v.theme = i
		}
	}
	return v
}

// Run takes over the terminal until Ctrl-C.
func (v *Viewer) Run() error {
	g := tl.NewGame()
	g.Screen().SetFps(galleryFPS)
	g.SetEndKey(tl.KeyCtrlC)

	level := tl.NewBaseLevel(tl.Cell{Bg: tl.ColorDefault, Fg: tl.ColorDefault, Ch: ' '})
	level.AddEntity(v)
	g.Screen().SetLevel(level)

	log.G().Info("gallery opened", "theme", v.Theme().Name)
	g.Start()
	return nil
}

func (v *Viewer) Theme() *assets.Theme {
	return v.themes[v.theme]
}

func (v *Viewer) assets() []*sprite.Asset {
	return v.Theme().All()
}

// Asset is the asset on screen.
func (v *Viewer) Asset() *sprite.Asset {
	return v.assets()[v.index]
}

func (v *Viewer) Next() {
	v.index = (v.index + 1) % len(v.assets())
	v.status = ""
}

func (v *Viewer) Prev() {
	n := len(v.assets())
	v.index = (v.index - 1 + n) % n
	v.status = ""
}

func (v *Viewer) ToggleMask() {
	v.showMask = !v.showMask
}

// SwitchTheme moves to the next theme, keeping the position in the asset
// list where the new theme has as many assets.
func (v *Viewer) SwitchTheme() {
	v.theme = (v.theme + 1) % len(v.themes)
	v.index = min(v.index, len(v.assets())-1)
	v.status = "theme: " + v.Theme().Name
}

// Copy puts the plain art of the asset on the clipboard.
func (v *Viewer) Copy() {
	a := v.Asset()
	if err := v.copy(strings.Join(sprite.Plain(a), "\n")); err != nil {
		v.status = "copy failed: " + err.Error()
		log.G().Warn("clipboard copy failed", "asset", a.Name, "error", err)
		return
	}
	v.status = "copied " + a.Name
}

func (v *Viewer) Tick(event tl.Event) {
	if event.Type != tl.EventKey {
		return
	}
	switch event.Key {
	case tl.KeyArrowRight, tl.KeySpace:
		v.Next()
		return
	case tl.KeyArrowLeft:
		v.Prev()
		return
	}
	switch event.Ch {
	case 'l', 'n':
		v.Next()
	case 'h', 'p':
		v.Prev()
	case 'm':
		v.ToggleMask()
	case 'c':
		v.Copy()
	case 't':
		v.SwitchTheme()
	}
}

// placed is one termloop cell at an offset from the asset's top left.
type placed struct {
	x, y int
	cell tl.Cell
}

// cells converts the asset grid to termloop cells. With mask on, solid
// cells are drawn reversed and solid blanks get a shade glyph.
func cells(a *sprite.Asset, mask bool) []placed {
	g := a.Grid()
	out := make([]placed, 0, g.Rows()*g.Cols())
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			gc := g.At(r, c)
			solid := mask && a.Mask.Solid(r, c)
			if gc.Empty() && !solid {
				continue
			}

			fg, bg := styleAttrs(gc.Style)
			ch := maskGlyph
			if !gc.Empty() {
				ch = []rune(gc.Ch)[0]
			}
			if solid {
				fg |= tl.AttrReverse
			}
			out = append(out, placed{x: c, y: r, cell: tl.Cell{Fg: fg, Bg: bg, Ch: ch}})
		}
	}
	return out
}

func (v *Viewer) Draw(screen *tl.Screen) {
	w, h := screen.Size()
	a := v.Asset()

	header := fmt.Sprintf("%s theme  %d/%d  %s  %dx%d", v.Theme().Name, v.index+1, len(v.assets()), a.Name, a.Rows, a.Cols)
	if v.showMask {
		header += "  [mask]"
	}
	text(screen, 1, 0, header, tl.ColorDefault|tl.AttrBold)

	x0 := max((w-a.Cols)/2, 0)
	y0 := max((h-a.Rows)/2, 2)
	for _, p := range cells(a, v.showMask) {
		cell := p.cell
		screen.RenderCell(x0+p.x, y0+p.y, &cell)
	}

	text(screen, 1, h-2, v.status, tl.ColorYellow)
	text(screen, 1, h-1, "←/→ page  m mask  c copy  t theme  ctrl+c back", tl.ColorDefault)
}

func text(screen *tl.Screen, x, y int, s string, fg tl.Attr) {
	for i, ch := range []rune(s) {
		screen.RenderCell(x+i, y, &tl.Cell{Fg: fg, Ch: ch})
	}
}
