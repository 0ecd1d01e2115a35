package game

import (
	"io"
	"math/rand/v2"
	"slices"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/sprite"
)

const (
	MinGap       = 50.0
	MaxGap       = 200.0
	MaxObstacles = 10
)

const (
	// BirdChance is the percentage of spawns that are pterodactyls once
	// the game has sped up by birdSpeedUp.
	BirdChance  = 10
	birdSpeedUp = 10.0
)

// Spawner owns the live obstacles. A new obstacle spawns once the previous
// one has travelled a random gap.
type Spawner struct {
	MinGap       float64
	MaxGap       float64
	MaxObstacles int

	theme     *assets.Theme
	birds     bool
	rng       *rand.Rand
	obstacles []*Obstacle
	next      float64
}

// NewSpawner spawns cacti from theme, and pterodactyls too when birds is
// set.
func NewSpawner(theme *assets.Theme, birds bool, rng *rand.Rand) *Spawner {
	return &Spawner{
		MinGap:       MinGap,
		MaxGap:       MaxGap,
		MaxObstacles: MaxObstacles,
		theme:        theme,
		birds:        birds && len(theme.Pterodactyls) > 0,
		rng:          rng,
	}
}

func (s *Spawner) Obstacles() []*Obstacle {
	return s.obstacles
}

// Update spawns when due, moves every obstacle and drops the ones that left
// the field.
func (s *Spawner) Update(dt float64, f Field, speed Speed) {
	due := len(s.obstacles) == 0 || s.obstacles[len(s.obstacles)-1].Moved >= s.next
	if due && len(s.obstacles) < s.MaxObstacles {
		s.obstacles = append(s.obstacles, s.spawn(speed))
		s.next = s.MinGap + s.rng.Float64()*(s.MaxGap-s.MinGap)
	}

	for _, o := range s.obstacles {
		o.Update(dt, f)
	}
	s.obstacles = slices.DeleteFunc(s.obstacles, func(o *Obstacle) bool {
		return !o.Active()
	})
}

func (s *Spawner) spawn(speed Speed) *Obstacle {
	chance := 0
	if s.birds && speed.Current >= speed.Start+birdSpeedUp {
		chance = BirdChance
	}
	if s.rng.IntN(101) < chance {
		pair := s.theme.Pterodactyls[s.rng.IntN(len(s.theme.Pterodactyls))]
		alt := Low
		if s.rng.IntN(2) == 1 {
			alt = Mid
		}
		return NewPterodactyl(pair, alt)
	}
	return NewCactus(s.theme.Cacti[s.rng.IntN(len(s.theme.Cacti))])
}

// Collides reports whether any obstacle touches t.
func (s *Spawner) Collides(t *sprite.Sprite) bool {
	for _, o := range s.obstacles {
		if sprite.Collide(o.Sprite, t) {
			return true
		}
	}
	return false
}

// Freeze stops every pterodactyl, for the game over screen.
func (s *Spawner) Freeze() {
	for _, o := range s.obstacles {
		o.Freeze()
	}
}

// Shift moves every obstacle along with the play field.
func (s *Spawner) Shift(dx, dy int) {
	for _, o := range s.obstacles {
		o.MoveBy(dy, dx)
	}
}

func (s *Spawner) Render(w io.Writer, world World) error {
	for _, o := range s.obstacles {
		if err := o.Render(w, world.Left(), world.Right()); err != nil {
			return err
		}
	}
	return nil
}

func (s *Spawner) Reset() {
	s.obstacles = nil
	s.next = 0
}
