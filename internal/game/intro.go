package game

import (
	"io"
	"strings"

	"github.com/shvbsle/termrex/internal/grid"
	"github.com/shvbsle/termrex/internal/input"
)

const (
	blinkInterval  = 0.5
	zFrameInterval = 0.5
	posePause      = 0.2
	jumpStep       = 0.045
	landPause      = 0.055
	walkStep       = 0.1
)

var helpScroll = []string{
	" ___________________________________________   ",
	"/\\                 " + bold + "How to Play?" + grid.ResetStyle + "             \\  ",
	"\\_|------------------------------------------| ",
	"  |                                          | ",
	"  | SPACE / UP  :     JUMP                   | ",
	"  | DOWN        :     DUCK / FAST DROP       | ",
	"  | Q / ESC     :     QUIT GAME              | ",
	"  |                                          | ",
	"  |   _______________________________________|_",
	"   \\_/________________________________________/",
}

const (
	helpScrollWidth = 47
	startPrompt     = "[ PRESS SPACE TO START ]"
	yellow          = "\x1b[33m"
)

var introGround = [2]string{"_____,-.______", "_   . -  -    ."}

type introPhase int

const (
	introWaiting introPhase = iota
	introPose
	introJump
	introLand
	introWalk
	introDone
)

// Intro is the title screen: a sleeping T-rex that jumps up and walks to
// its start position once the player presses space.
type Intro struct {
	g *Game

	phase introPhase
	timer float64

	blink      bool
	blinkTimer float64
	z          zAnimation

	// jump steps in whole rows, like a flip book
	y, peak, floor int
	vy             float64
	rising         bool
	walked         int
}

func newIntro(g *Game) *Intro {
	return &Intro{g: g, blink: true}
}

func (in *Intro) Done() bool {
	return in.phase == introDone
}

// place parks the idle T-rex against the left border.
func (in *Intro) place() {
	w := in.g.world
	in.g.trex.SetAsset(in.g.theme.Trex.Idle)
	in.g.trex.Place(w.Ground, w.TopLeft.X+1)
}

// relayout keeps the T-rex in step with the play field after a resize.
func (in *Intro) relayout(dx, dy int) {
	t := in.g.trex
	switch in.phase {
	case introWaiting, introPose:
		t.Place(in.g.world.Ground, in.g.world.TopLeft.X+1)
	default:
		t.Shift(dx, dy)
		in.y += dy
		in.peak += dy
		in.floor += dy
	}
}

func (in *Intro) Update(dt float64, keys []input.Key) {
	in.blinkTimer += dt
	if in.blinkTimer > blinkInterval {
		in.blinkTimer = 0
		in.blink = !in.blink
	}
	in.z.update(dt)

	t := in.g.trex
	switch in.phase {
	case introWaiting:
		for _, k := range keys {
			if k == input.KeySpace {
				in.phase = introPose
				in.timer = 0
				t.SetAsset(in.g.theme.Trex.Jump)
				return
			}
		}

	case introPose:
		in.timer += dt
		if in.timer >= posePause {
			w := in.g.world
			in.floor = w.Ground - t.Rows()
			in.peak = in.floor - (w.Height - 2 - t.Rows())
			in.y = in.floor
			in.vy = -3.8
			in.rising = true
			in.timer = 0
			in.phase = introJump
		}

	case introJump:
		in.timer += dt
		for in.timer >= jumpStep && in.phase == introJump {
			in.timer -= jumpStep
			in.stepJump()
		}
		t.Top = in.y

	case introLand:
		in.timer += dt
		if in.timer >= landPause {
			in.timer = 0
			in.phase = introWalk
		}

	case introWalk:
		in.timer += dt
		for in.timer >= walkStep && in.walked < trexPadding {
			in.timer -= walkStep
			if in.walked%2 == 0 {
				t.SetAsset(in.g.theme.Trex.Run1)
			} else {
				t.SetAsset(in.g.theme.Trex.Run2)
			}
			t.MoveBy(0, 1)
			in.walked++
		}
		if in.walked >= trexPadding {
			in.phase = introDone
		}
	}
}

func (in *Intro) stepJump() {
	if in.rising {
		in.y += int(in.vy)
		in.vy += 0.15
		if in.y <= in.peak || in.vy >= 0 {
			in.y = in.peak
			in.rising = false
			in.vy = 0
		}
		return
	}
	in.vy += 0.45
	in.y += int(in.vy)
	if in.y >= in.floor {
		in.y = in.floor
		in.phase = introLand
	}
}

func (in *Intro) Draw(w io.Writer) error {
	g := in.g
	world := g.world
	banner := g.theme.IntroBanner
	trex := g.trex

	if err := g.drawBox(w); err != nil {
		return err
	}
	g.text(w, world.TopLeft.X+1, world.Ground-2, dim, introGround[0])
	g.text(w, world.TopLeft.X+1, world.Ground-1, dim, introGround[1])

	if err := grid.RenderFull(w, banner.Grid(), world.TopLeft.Y+1, world.TopLeft.X+(world.Width-banner.Cols)/2); err != nil {
		return err
	}
	if err := trex.Render(w, world.Left(), world.Right()); err != nil {
		return err
	}

	if in.phase == introWaiting || in.phase == introPose {
		in.z.draw(w, world.TopLeft.X+trex.Cols()-3, world.Ground-g.theme.Trex.Height()-1)

		menuX := world.TopLeft.X + trex.Cols() + (world.Width-trex.Cols()-helpScrollWidth)/2 - 5
		menuY := world.TopLeft.Y + banner.Rows - 3 + (world.Height-banner.Rows)/2 - 3
		for i, line := range helpScroll {
			g.text(w, menuX, menuY+i, "", line)
		}
		style := grid.ResetStyle
		if in.blink {
			style = bold
		}
		g.text(w, menuX+15, menuY+len(helpScroll)+1, style+yellow, startPrompt)
		g.text(w, menuX+12, world.BottomRight.Y-2, dim, footer(g.settings.Version))
	}
	return nil
}

func footer(version string) string {
	var sb strings.Builder
	if version != "" {
		sb.WriteString("v")
		sb.WriteString(strings.TrimPrefix(version, "v"))
		sb.WriteString(" - ")
	}
	sb.WriteString("termrex, a terminal T-rex runner")
	return sb.String()
}

type zElement struct {
	dx, dy int
	ch     byte
	style  string
}

// zFrames is the sleeping animation: letters drift up and to the right,
// fading as they go.
var zFrames = [][]zElement{
	{{0, 0, 'z', bold}},
	{{1, 0, 'z', bold}},
	{{2, -1, 'Z', ""}},
	{{3, -1, 'Z', ""}, {0, 0, 'z', bold}},
	{{4, -2, 'Z', ""}, {1, 0, 'z', bold}},
	{{5, -2, 'Z', dim}, {2, -1, 'Z', ""}},
	{{6, -3, 'Z', dim}, {3, -1, 'Z', ""}, {0, 0, 'z', bold}},
	{{7, -3, 'Z', dim}, {4, -2, 'Z', ""}, {1, 0, 'z', bold}},
	{{8, -4, 'Z', dim}, {5, -2, 'Z', dim}, {2, -1, 'Z', ""}},
	{{6, -3, 'Z', dim}, {3, -1, 'Z', ""}},
	{{7, -3, 'Z', dim}, {4, -2, 'Z', ""}},
	{{8, -4, 'Z', dim}, {5, -2, 'Z', dim}},
	{{6, -3, 'Z', dim}},
	{{7, -3, 'Z', dim}},
	{{8, -4, 'Z', dim}},
	{},
}

type zAnimation struct {
	frame int
	timer float64
}

func (z *zAnimation) update(dt float64) {
	z.timer += dt
	if z.timer >= zFrameInterval {
		z.timer = 0
		z.frame = (z.frame + 1) % len(zFrames)
	}
}

func (z *zAnimation) draw(w io.Writer, x, y int) {
	var buf []byte
	for _, e := range zFrames[z.frame] {
		row, col := y+e.dy, x+e.dx
		if row < 1 || col < 1 {
			continue
		}
		buf = append(buf, grid.MoveTo(row, col)...)
		buf = append(buf, grid.ResetStyle...)
		buf = append(buf, e.style...)
		buf = append(buf, e.ch)
	}
	buf = append(buf, grid.ResetStyle...)
	_, _ = w.Write(buf)
}
