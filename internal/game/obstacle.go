package game

import (
	"github.com/shvbsle/termrex/internal/sprite"
)

type Kind int

const (
	Cactus Kind = iota
	Pterodactyl
)

func (k Kind) String() string {
	if k == Pterodactyl {
		return "pterodactyl"
	}
	return "cactus"
}

// Altitude is how high a pterodactyl flies relative to the T-rex.
type Altitude int

const (
	// Low birds must be jumped over.
	Low Altitude = iota
	// Mid birds can be ducked under.
	Mid
)

const flapInterval = 0.2

// Obstacle is a cactus or a pterodactyl sliding in from the right border.
type Obstacle struct {
	*sprite.Sprite
	Kind Kind

	// Moved is how many columns the obstacle has travelled since it spawned.
	Moved  float64
	active bool

	// pterodactyl only
	frames   [2]*sprite.Asset
	up       bool
	altitude Altitude
	flap     float64
	frozen   bool
}

func NewCactus(a *sprite.Asset) *Obstacle {
	return &Obstacle{
		Sprite: sprite.New(a, sprite.Unset, sprite.Unset),
		Kind:   Cactus,
		active: true,
	}
}

func NewPterodactyl(frames [2]*sprite.Asset, alt Altitude) *Obstacle {
	return &Obstacle{
		Sprite:   sprite.New(frames[0], sprite.Unset, sprite.Unset),
		Kind:     Pterodactyl,
		active:   true,
		frames:   frames,
		up:       true,
		altitude: alt,
	}
}

func (o *Obstacle) Active() bool {
	return o.active
}

func (o *Obstacle) Altitude() Altitude {
	return o.altitude
}

// Freeze stops a pterodactyl where it is.
func (o *Obstacle) Freeze() {
	o.frozen = true
}

// Field is what an obstacle needs to know about the play field to move.
type Field struct {
	World      World
	Speed      float64
	TrexHeight int
	// Lift lowers pterodactyls, tuned per theme so a ducking T-rex clears
	// mid birds.
	Lift int
}

// Update moves the obstacle dt seconds further left.
func (o *Obstacle) Update(dt float64, f Field) {
	if !o.active {
		return
	}

	switch o.Kind {
	case Cactus:
		o.Top = f.World.Ground - o.Rows()
	case Pterodactyl:
		if o.frozen {
			return
		}
		top := f.World.Ground - f.TrexHeight - o.Rows() + f.Lift
		if o.altitude == Mid {
			top -= 2
		}
		o.Top = top

		o.flap += dt
		if o.flap > flapInterval {
			o.flap = 0
			o.up = !o.up
			if o.up {
				o.SetAsset(o.frames[0])
			} else {
				o.SetAsset(o.frames[1])
			}
		}
	}

	o.Moved += f.Speed * dt
	o.Left = f.World.BottomRight.X - 1 - int(o.Moved)
	if o.Right() < 0 {
		o.active = false
	}
}
