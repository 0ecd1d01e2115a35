package game

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/shvbsle/termrex/internal/input"
	"github.com/shvbsle/termrex/internal/scores"
	"github.com/shvbsle/termrex/internal/terminal"
)

const frame = time.Second / 45

func newTestGame(t *testing.T, cols, rows int, s Settings) (*Game, *bytes.Buffer, *scores.Store) {
	t.Helper()
	var out bytes.Buffer
	term := terminal.New(strings.NewReader(""), &out, cols, rows)
	store := scores.Memory()
	if s.Seed == 0 {
		s.Seed = 7
	}
	s.Player = "tester"
	return New(term, store, s), &out, store
}

// run steps the game n frames from start and returns the time reached.
func run(g *Game, start time.Time, n int, keys ...input.Key) time.Time {
	now := start
	for i := 0; i < n; i++ {
		var k []input.Key
		if i == 0 {
			k = keys
		}
		g.Step(now, k)
		now = now.Add(frame)
	}
	return now
}

func TestSkipIntroStartsRunning(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, ObstacleDino: true, SkipIntro: true})

	if g.Status() != StatusRunning {
		t.Fatalf("Expected running, got %v", g.Status())
	}
	if g.trex.Left != g.world.TopLeft.X+1+trexPadding {
		t.Errorf("Expected T-rex at padding, got left %d", g.trex.Left)
	}
	if g.trex.Bottom() != g.world.Ground-1 {
		t.Errorf("Expected T-rex on the ground, bottom %d ground %d", g.trex.Bottom(), g.world.Ground)
	}
}

func TestStepAdvancesAndDraws(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, ObstacleDino: true, SkipIntro: true})

	start := time.Unix(1000, 0)
	run(g, start, 46)

	if g.score.Current <= 0 {
		t.Error("Expected score to grow while running")
	}
	if g.speed.Current <= StartSpeed {
		t.Error("Expected speed to grow while running")
	}
	if len(g.spawner.Obstacles()) == 0 {
		t.Error("Expected an obstacle to spawn")
	}

	_ = g.term.Flush()
}

func TestQuitKey(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, SkipIntro: true})
	if !g.Step(time.Now(), []input.Key{input.KeyQuit}) {
		t.Error("Expected quit")
	}
	if g.Step(time.Now(), []input.Key{input.KeySpace}) {
		t.Error("Expected space not to quit")
	}
}

func TestCollisionEndsRunAndRecordsScore(t *testing.T) {
	g, _, store := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, ObstacleDino: true, SkipIntro: true})
	start := time.Unix(1000, 0)
	g.Step(start, nil)

	g.score.Current = 42
	cactus := NewCactus(g.theme.Cacti[0])
	cactus.Moved = float64(g.world.BottomRight.X - 1 - g.trex.Left)
	g.spawner.obstacles = []*Obstacle{cactus}
	g.spawner.next = 1e9

	g.Step(start.Add(time.Millisecond), nil)
	if g.Status() != StatusGameOver {
		t.Fatalf("Expected game over, got %v", g.Status())
	}
	if store.Best() != 42 {
		t.Errorf("Expected recorded score 42, got %d", store.Best())
	}

	now := start.Add(2 * time.Millisecond)
	g.Step(now, []input.Key{input.KeySpace})
	if g.Status() != StatusGameOver {
		t.Error("Expected space to be ignored while the retry icon animates")
	}

	now = run(g, now, 150)
	g.Step(now, []input.Key{input.KeySpace})
	if g.Status() != StatusRunning {
		t.Fatalf("Expected space to restart, got %v", g.Status())
	}
	if g.score.Current != 0 || g.score.High != 42 {
		t.Errorf("Expected fresh score with high 42, got %v / %v", g.score.Current, g.score.High)
	}
	if len(g.spawner.Obstacles()) > 1 {
		t.Error("Expected obstacles to be cleared on restart")
	}
}

func TestGameOverScreen(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, SkipIntro: true})
	g.die()

	var buf bytes.Buffer
	g.over.elapsed = retryDone
	if err := g.draw(&buf); err != nil {
		t.Fatal(err)
	}
	plain := ansi.Strip(buf.String())
	if !strings.Contains(plain, retryPrompt) {
		t.Error("Expected retry prompt once the animation settled")
	}
	if !strings.Contains(plain, g.theme.Trex.Face.EyeGlyph) {
		t.Error("Expected dead eye")
	}
}

func TestIntroPlaysThenRuns(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, ObstacleDino: true})
	if g.Status() != StatusIntro {
		t.Fatalf("Expected intro, got %v", g.Status())
	}
	idleLeft := g.trex.Left
	if idleLeft != g.world.TopLeft.X+1 {
		t.Errorf("Expected idle T-rex at the border, got %d", idleLeft)
	}

	start := time.Unix(1000, 0)
	now := run(g, start, 100)
	if g.Status() != StatusIntro {
		t.Fatal("Expected intro to wait for space")
	}

	var buf bytes.Buffer
	if err := g.draw(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(ansi.Strip(buf.String()), "QUIT GAME") {
		t.Error("Expected help menu on the intro screen")
	}

	g.Step(now, []input.Key{input.KeySpace})
	for i := 0; i < 400 && g.Status() == StatusIntro; i++ {
		now = now.Add(frame)
		g.Step(now, nil)
	}
	if g.Status() != StatusRunning {
		t.Fatalf("Expected the intro to hand over to the run, got %v", g.Status())
	}
	if g.trex.Left != idleLeft+trexPadding {
		t.Errorf("Expected T-rex to walk %d columns, got left %d", trexPadding, g.trex.Left)
	}
	if g.trex.Bottom() != g.world.Ground-1 {
		t.Error("Expected T-rex back on the ground")
	}
}

func TestPausedWhileTooSmall(t *testing.T) {
	g, out, _ := newTestGame(t, 60, 20, Settings{ASCIIOnly: true, SkipIntro: true})
	run(g, time.Unix(1000, 0), 45)

	if g.score.Current != 0 {
		t.Error("Expected no progress while the terminal is too small")
	}
	_ = g.term.Flush()
	if !strings.Contains(ansi.Strip(out.String()), "Minimum: 140 x 28") {
		t.Errorf("Expected resize warning, got %q", ansi.Strip(out.String()))
	}
}

func TestResizeShiftsScene(t *testing.T) {
	g, _, _ := newTestGame(t, 200, 60, Settings{ASCIIOnly: true, SkipIntro: true})
	start := time.Unix(1000, 0)
	run(g, start, 5)

	left, bottom := g.trex.Left, g.trex.Bottom()
	g.term.Resize(220, 70)

	if g.trex.Left != left+10 || g.trex.Bottom() != bottom+5 {
		t.Errorf("Expected T-rex shifted by 10,5; got %d,%d from %d,%d", g.trex.Left, g.trex.Bottom(), left, bottom)
	}
	if g.world.TopLeft != (Point{X: 41, Y: 22}) {
		t.Errorf("Unexpected top left %+v", g.world.TopLeft)
	}

	g.term.Resize(100, 20)
	if g.world.TopLeft != (Point{X: 41, Y: 22}) {
		t.Error("Expected no relayout while too small")
	}
}

func TestRunQuits(t *testing.T) {
	var out bytes.Buffer
	term := terminal.New(strings.NewReader("q"), &out, 200, 60)
	g := New(term, scores.Memory(), Settings{ASCIIOnly: true, SkipIntro: true, Seed: 3, Player: "tester"})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := g.Run(ctx); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if ctx.Err() != nil {
		t.Error("Expected Run to return before the deadline")
	}
	if !strings.HasSuffix(out.String(), ansi.ResetAltScreenSaveCursorMode) {
		t.Error("Expected Run to leave the alternate screen")
	}
}
