package game

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/shvbsle/termrex/internal/assets"
	"github.com/shvbsle/termrex/internal/config"
	"github.com/shvbsle/termrex/internal/grid"
	"github.com/shvbsle/termrex/internal/input"
	"github.com/shvbsle/termrex/internal/log"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/terminal"
)

// maxStep caps the time a single frame may simulate, so a stalled terminal
// does not teleport the T-rex through an obstacle.
const maxStep = 0.25

type Status int

const (
	StatusIntro Status = iota
	StatusRunning
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusGameOver:
		return "game over"
	default:
		return "intro"
	}
}

type Settings struct {
	ASCIIOnly    bool
	ObstacleDino bool
	SkipIntro    bool
	KeyRepeat    time.Duration
	FPS          int

	// Player is stored with high scores.
	Player  string
	Version string
	// Seed fixes the obstacle and terrain sequence; 0 picks a random one.
	Seed uint64
}

func SettingsFrom(cfg config.GameConfig) Settings {
	return Settings{
		ASCIIOnly:    cfg.ASCIIOnly,
		ObstacleDino: cfg.ObstacleDino,
		SkipIntro:    cfg.SkipIntro,
		KeyRepeat:    time.Duration(cfg.KeyRepeatMs) * time.Millisecond,
		FPS:          cfg.FPS,
	}
}

// Game is one play session on one terminal. It is driven by a single
// goroutine: Run, or Step in tests.
type Game struct {
	settings Settings
	theme    *assets.Theme
	term     *terminal.Terminal
	keys     *input.Handler
	logger   *slog.Logger

	world   World
	speed   Speed
	trex    *Trex
	spawner *Spawner
	terrain *Terrain
	score   *Score
	intro   *Intro
	over    *GameOver

	status Status
	last   time.Time
	box    []string
}

func New(term *terminal.Terminal, store *scores.Store, s Settings) *Game {
	if s.FPS <= 0 {
		s.FPS = config.DefaultFPS
	}
	if s.KeyRepeat <= 0 {
		s.KeyRepeat = config.DefaultKeyRepeatMs * time.Millisecond
	}
	if s.Player == "" {
		s.Player = scores.Player()
	}
	seed := s.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed>>1|1))

	theme := assets.For(s.ASCIIOnly)
	g := &Game{
		settings: s,
		theme:    theme,
		term:     term,
		keys:     input.NewHandler(s.KeyRepeat),
		logger:   log.Game().With("player", s.Player, "theme", theme.Name),
		world:    NewWorld(theme.Trex.Height()),
		speed:    NewSpeed(),
		trex:     NewTrex(theme.Trex, s.ObstacleDino),
		spawner:  NewSpawner(theme, s.ObstacleDino, rng),
		score:    NewScore(theme.Font, store),
	}
	g.terrain = NewTerrain(g.world.Width-2, rng)
	g.intro = newIntro(g)
	g.over = newGameOver(g)
	g.box = boxLines(g.world.Width, g.world.Height)

	size := term.Size()
	g.world.Center(size.Cols, size.Rows)
	term.SetMinSize(g.world.Width, g.world.Height)
	term.OnResize = g.relayout

	if s.SkipIntro {
		g.start()
	} else {
		g.intro.place()
	}
	return g
}

func (g *Game) Status() Status {
	return g.status
}

// Run plays until the player quits, the input ends or ctx is done.
func (g *Game) Run(ctx context.Context) error {
	if err := g.term.Enter(); err != nil {
		return fmt.Errorf("entering game screen: %w", err)
	}
	defer func() {
		if err := g.term.Leave(); err != nil {
			g.logger.Debug("leaving game screen", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	keys := input.Read(ctx, g.term.Input())

	ticker := time.NewTicker(time.Second / time.Duration(g.settings.FPS))
	defer ticker.Stop()

	g.logger.Info("session started", "fps", g.settings.FPS, "kitty", g.term.KittyKeyboard)
	var pending []input.Key
	for {
		select {
		case <-ctx.Done():
			return nil
		case s := <-g.term.Resizes():
			g.term.Resize(s.Cols, s.Rows)
			if err := g.term.Flush(); err != nil {
				return err
			}
		case k, ok := <-keys:
			if !ok {
				g.logger.Info("input closed")
				return nil
			}
			pending = append(pending, k)
		case now := <-ticker.C:
			quit := g.Step(now, pending)
			pending = pending[:0]
			if err := g.term.Flush(); err != nil {
				return err
			}
			if quit {
				g.logger.Info("player quit", "best", int(g.score.High))
				return nil
			}
		}
	}
}

// Step advances the game to now, applying the keys received since the last
// step, and draws the frame. It reports whether the player quit.
func (g *Game) Step(now time.Time, keys []input.Key) bool {
	dt := 0.0
	if !g.last.IsZero() {
		dt = min(now.Sub(g.last).Seconds(), maxStep)
	}
	g.last = now

	for _, k := range keys {
		if k == input.KeyQuit {
			return true
		}
	}
	if !g.term.BigEnough() {
		return false
	}

	switch g.status {
	case StatusIntro:
		g.intro.Update(dt, keys)
		if g.intro.Done() {
			g.start()
		}
	case StatusRunning:
		g.update(dt, now, keys)
	case StatusGameOver:
		g.over.Update(dt)
		if !g.over.Animating() && pressed(keys, input.KeySpace) {
			g.reset()
		}
	}

	if err := g.draw(g.term); err != nil {
		g.logger.Debug("drawing frame", "error", err)
	}
	return false
}

func pressed(keys []input.Key, want input.Key) bool {
	for _, k := range keys {
		if k == want {
			return true
		}
	}
	return false
}

func (g *Game) update(dt float64, now time.Time, keys []input.Key) {
	for _, k := range keys {
		g.keys.Feed(k, now)
	}
	g.keys.Tick(now)

	if pressed(keys, input.KeySpace) {
		g.trex.PressJump()
	}
	switch {
	case g.keys.DownActive():
		switch g.trex.State() {
		case Jumping:
			g.trex.FallFast()
		case Running:
			g.trex.Crouch()
		}
	case g.trex.State() == Ducking:
		dunk := time.Duration(g.trex.Dunk(dt) * float64(time.Second))
		if (dunk > g.settings.KeyRepeat && !g.term.KittyKeyboard) || pressed(keys, input.KeyDownRelease) {
			g.trex.StandUp()
		}
	}

	g.trex.Update(dt, g.world.TopLeft.Y+1, g.world.Ground, g.keys.DownActive())
	g.spawner.Update(dt, g.field(), g.speed)
	g.score.Update(dt, g.speed.Current)
	g.terrain.Update(dt, g.speed.Current)
	g.speed.Update(dt)

	if g.spawner.Collides(g.trex.Sprite) {
		g.die()
	}
}

func (g *Game) field() Field {
	return Field{
		World:      g.world,
		Speed:      g.speed.Current,
		TrexHeight: g.trex.Height(),
		Lift:       g.theme.PteroLift,
	}
}

func (g *Game) start() {
	g.status = StatusRunning
	g.trex.Reset(g.world)
	g.logger.Info("run started")
}

func (g *Game) die() {
	g.spawner.Freeze()
	g.status = StatusGameOver
	g.over.Reset()

	points := g.score.Points()
	made, err := g.score.Record(g.settings.Player)
	if err != nil {
		g.logger.Warn("could not save high score", "error", err)
	}
	g.logger.Info("game over", "score", points, "high_score_table", made, "speed", g.speed.Current)
}

func (g *Game) reset() {
	g.keys.Reset()
	g.terrain.Reset()
	g.spawner.Reset()
	g.score.Reset()
	g.speed.Reset()
	g.over.Reset()
	g.start()
}

// relayout re-centres the play field after a resize and carries everything
// on it along.
func (g *Game) relayout() {
	if !g.term.BigEnough() {
		return
	}
	size := g.term.Size()
	dx, dy := g.world.Center(size.Cols, size.Rows)
	if g.status == StatusIntro {
		g.intro.relayout(dx, dy)
	} else {
		g.trex.Shift(dx, dy)
	}
	g.spawner.Shift(dx, dy)
	g.logger.Debug("resized", "cols", size.Cols, "rows", size.Rows)
}

func (g *Game) draw(w io.Writer) error {
	switch g.status {
	case StatusIntro:
		return g.intro.Draw(w)
	case StatusGameOver:
		return g.over.Draw(w)
	default:
		return g.drawScene(w)
	}
}

// drawScene paints the play field back to front.
func (g *Game) drawScene(w io.Writer) error {
	if err := g.drawBox(w); err != nil {
		return err
	}
	x := g.world.TopLeft.X + 1
	g.text(w, x, g.world.Ground-2, dim, g.terrain.Ground())
	g.text(w, x, g.world.Ground-1, dim, g.terrain.Subterrain())

	if err := g.spawner.Render(w, g.world); err != nil {
		return err
	}
	if err := g.trex.Render(w, g.world.Left(), g.world.Right()); err != nil {
		return err
	}
	return g.score.Draw(w, g.world)
}

// boxLines builds the rounded frame with a blank interior.
func boxLines(width, height int) []string {
	inner := max(width-2, 0)
	lines := make([]string, 0, height)
	lines = append(lines, "╭"+strings.Repeat("─", inner)+"╮")
	middle := "│" + strings.Repeat(" ", inner) + "│"
	for i := 1; i < height-1; i++ {
		lines = append(lines, middle)
	}
	return append(lines, "╰"+strings.Repeat("─", inner)+"╯")
}

func (g *Game) drawBox(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString(grid.ResetStyle)
	for i, line := range g.box {
		sb.WriteString(grid.MoveTo(g.world.TopLeft.Y+i, g.world.TopLeft.X))
		sb.WriteString(line)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// text writes s at column x, row y in style. Writes go to the frame buffer,
// whose errors surface on Flush.
func (g *Game) text(w io.Writer, x, y int, style, s string) {
	_, _ = io.WriteString(w, grid.MoveTo(y, x)+style+s+grid.ResetStyle)
}
