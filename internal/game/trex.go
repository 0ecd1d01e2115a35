package game

import (
	"io"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/grid"
	"github.com/shvbsle/termrex/internal/sprite"
)

type TrexState int

const (
	Running TrexState = iota
	Jumping
	Ducking
)

func (s TrexState) String() string {
	switch s {
	case Jumping:
		return "jumping"
	case Ducking:
		return "ducking"
	default:
		return "running"
	}
}

const (
	legSwitchInterval = 0.2
	// trexPadding is how far the T-rex runs in from the left border.
	trexPadding = 4
)

// Trex is the player. Frames of different heights are anchored at the
// bottom row, so ducking keeps the feet on the ground.
type Trex struct {
	*sprite.Sprite

	pack    assets.TrexPack
	canDuck bool

	state     TrexState
	y         float64
	vy        float64
	legTimer  float64
	legChange bool
	// dunk is how long the T-rex has been ducking without the down key.
	dunk float64
}

func NewTrex(pack assets.TrexPack, canDuck bool) *Trex {
	return &Trex{
		Sprite:    sprite.New(pack.Idle, sprite.Unset, sprite.Unset),
		pack:      pack,
		canDuck:   canDuck,
		legChange: true,
	}
}

func (t *Trex) State() TrexState {
	return t.state
}

// Height is the standing height.
func (t *Trex) Height() int {
	return t.pack.Height()
}

// SetFrame swaps the art, keeping the bottom row in place.
func (t *Trex) SetFrame(a *sprite.Asset) {
	if t.Asset() == a {
		return
	}
	if t.Asset() != nil && t.Positioned() {
		t.Top = t.Bottom() + 1 - a.Rows
		t.y = float64(t.Top)
	}
	t.SetAsset(a)
}

// Place puts the T-rex on the ground with its left edge at left.
func (t *Trex) Place(ground, left int) {
	t.Top = ground - t.Rows()
	t.Left = left
	t.y = float64(t.Top)
}

// Shift moves the T-rex along with the play field.
func (t *Trex) Shift(dx, dy int) {
	t.MoveBy(dy, dx)
	t.y += float64(dy)
}

func (t *Trex) PressJump() {
	if t.state == Jumping {
		return
	}
	t.vy = t.pack.Physics.JumpImpulse
	t.state = Jumping
	t.SetFrame(t.pack.Jump)
}

// FallFast pulls a jumping T-rex down quicker.
func (t *Trex) FallFast() {
	if t.state != Jumping {
		return
	}
	if t.vy <= 0 {
		t.vy = t.pack.Physics.JumpImpulse * 0.5
	}
	t.vy += t.pack.Physics.Gravity * 3.5
}

func (t *Trex) Crouch() {
	switch {
	case t.state == Running && t.canDuck:
		t.state = Ducking
		t.SetFrame(t.pack.Down1)
	case t.state == Ducking:
		t.dunk = 0
	}
}

func (t *Trex) StandUp() {
	t.state = Running
	t.dunk = 0
	t.SetFrame(t.runFrame())
}

// Dunk accumulates time spent ducking without the down key and returns the
// total in seconds.
func (t *Trex) Dunk(dt float64) float64 {
	t.dunk += dt
	return t.dunk
}

// Update advances the jump or the running animation by dt seconds. top is
// the highest row the T-rex may reach and ground the row below its feet.
func (t *Trex) Update(dt float64, top, ground int, downHeld bool) {
	if t.state != Jumping {
		t.updateLegs(dt)
		return
	}

	p := t.pack.Physics
	t.vy = min(t.vy+p.Gravity*dt, p.MaxFall)
	t.y += t.vy * dt

	if t.y < float64(top) {
		t.y = float64(top)
		t.vy = 0
	}
	floor := float64(ground - t.Rows())
	if t.y >= floor {
		t.y = floor
		t.vy = 0
		t.state = Running
		t.Top = int(t.y)
		t.SetFrame(t.runFrame())
		if downHeld {
			t.Crouch()
		}
		return
	}
	t.Top = int(t.y)
}

func (t *Trex) updateLegs(dt float64) {
	t.legTimer += dt
	if t.legTimer >= legSwitchInterval {
		t.legTimer = 0
		t.legChange = !t.legChange
	}
	switch t.state {
	case Running:
		t.SetFrame(t.runFrame())
	case Ducking:
		if t.legChange {
			t.SetFrame(t.pack.Down1)
		} else {
			t.SetFrame(t.pack.Down2)
		}
	}
}

func (t *Trex) runFrame() *sprite.Asset {
	if t.legChange {
		return t.pack.Run1
	}
	return t.pack.Run2
}

// Reset stands the T-rex on the ground at the start position.
func (t *Trex) Reset(w World) {
	t.state = Running
	t.legChange = true
	t.legTimer = 0
	t.vy = 0
	t.dunk = 0
	t.SetAsset(t.pack.Run1)
	t.Place(w.Ground, w.TopLeft.X+1+trexPadding)
}

// DrawDeadFace paints crossed-out eyes and a gaping mouth over the current
// frame.
func (t *Trex) DrawDeadFace(w io.Writer) error {
	if !t.Positioned() {
		return nil
	}
	f := t.pack.Face
	eye, mouth := f.Eye, f.Mouth
	if t.state == Ducking {
		eye, mouth = f.EyeDown, f.MouthDown
	}

	buf := make([]byte, 0, 64)
	buf = append(buf, grid.MoveTo(t.Top+eye.Row, t.Left+eye.Col)...)
	buf = append(buf, "\x1b[1m"...)
	buf = append(buf, f.EyeGlyph...)
	for i, line := range f.MouthLines {
		buf = append(buf, grid.MoveTo(t.Top+mouth.Row+i, t.Left+mouth.Col)...)
		buf = append(buf, line...)
	}
	buf = append(buf, grid.ResetStyle...)
	_, err := w.Write(buf)
	return err
}
