package game

import (
	"math/rand/v2"
)

var terrainChunks = []string{
	"__,-.", "___.__", "__.-.__", "______________", "__.,.__",
	"___,~.____", "_,---._", "____________", "__,-.__", "__.-._____", "______",
}

var subterrainSymbols = []byte{'-', '_', '.'}

// Terrain is the scrolling ground line and the sparse pebbles below it.
// It moves one column every 1/speed seconds.
type Terrain struct {
	width  int
	ground []byte
	sub    []byte
	timer  float64
	rng    *rand.Rand
}

func NewTerrain(width int, rng *rand.Rand) *Terrain {
	t := &Terrain{width: max(width, 0), rng: rng}
	t.fill()
	return t
}

func (t *Terrain) fill() {
	for len(t.ground) < t.width {
		t.ground = append(t.ground, terrainChunks[t.rng.IntN(len(terrainChunks))]...)
	}
	for len(t.sub) < t.width {
		ch := byte(' ')
		if t.rng.Float64() < 0.1 {
			ch = subterrainSymbols[t.rng.IntN(len(subterrainSymbols))]
		}
		t.sub = append(t.sub, ch)
	}
}

func (t *Terrain) Update(dt, speed float64) {
	if speed <= 0 || t.width == 0 {
		return
	}
	t.timer += dt
	step := 1 / speed
	for t.timer >= step {
		t.ground = t.ground[1:]
		t.sub = t.sub[1:]
		t.fill()
		t.timer -= step
	}
}

// Ground is the visible ground line, Width columns wide.
func (t *Terrain) Ground() string {
	return string(t.ground[:t.width])
}

// Subterrain is the visible row below the ground line.
func (t *Terrain) Subterrain() string {
	return string(t.sub[:t.width])
}

func (t *Terrain) Width() int {
	return t.width
}

func (t *Terrain) Reset() {
	t.ground = t.ground[:0]
	t.sub = t.sub[:0]
	t.timer = 0
	t.fill()
}
