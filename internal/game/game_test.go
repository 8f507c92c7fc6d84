package game

import (
	"strings"
	"testing"
	"time"

	"github.com/retroarcade/snake/internal/config"
	"github.com/retroarcade/snake/internal/core"
)

func newTestGame(t *testing.T) (*Game, *fakeTime) {
	t.Helper()
	ft := newFakeTime()
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW: 80,
		ScreenH: 40,
		Seed:    42,
		Now:     ft.now,
	})
	return g, ft
}

func input(a core.Action) core.InputFrame {
	f := core.NewInputFrame()
	f.Set(a)
	return f
}

// tick advances the fake clock by one gate interval and runs a step.
func tick(g *Game, ft *fakeTime, in core.InputFrame) core.StepResult {
	ft.advance(g.clock.Interval())
	return g.Step(in)
}

func hasEvent(events []core.Event, kind core.EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestStepGatedByClock(t *testing.T) {
	g, ft := newTestGame(t)
	start := g.Snapshot()

	// Frames without an elapsed interval must not move the snake.
	for i := 0; i < 5; i++ {
		ft.advance(10 * time.Millisecond)
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot(); got.HeadX != start.HeadX || got.Ticks != 0 {
		t.Errorf("snake moved without the interval elapsing: %+v", got)
	}

	ft.advance(150 * time.Millisecond) // total 200ms since reset
	g.Step(core.NewInputFrame())
	if got := g.Snapshot(); got.HeadX != start.HeadX+1 || got.Ticks != 1 {
		t.Errorf("snake did not move on the gated tick: %+v", got)
	}
}

func TestBoundaryCollision(t *testing.T) {
	tests := []struct {
		name  string
		body  []Cell
		dir   Cell
		crash bool
	}{
		{"right edge crossed", []Cell{{24, 5}, {23, 5}, {22, 5}}, DirRight, true},
		{"left edge crossed", []Cell{{0, 5}, {1, 5}, {2, 5}}, DirLeft, true},
		{"top edge crossed", []Cell{{5, 0}, {5, 1}, {5, 2}}, DirUp, true},
		{"bottom edge crossed", []Cell{{5, 24}, {5, 23}, {5, 22}}, DirDown, true},
		{"last column is playable", []Cell{{23, 5}, {22, 5}, {21, 5}}, DirRight, false},
		{"first column is playable", []Cell{{1, 5}, {2, 5}, {3, 5}}, DirLeft, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, ft := newTestGame(t)
			g.snake.body = tc.body
			g.snake.dir = tc.dir
			g.food.pos = Cell{X: 12, Y: 12}

			res := tick(g, ft, core.NewInputFrame())

			if got := hasEvent(res.Events, core.EventWall); got != tc.crash {
				t.Errorf("wall event = %v, expected %v", got, tc.crash)
			}
			if res.State.Running == tc.crash {
				t.Errorf("running = %v after move, expected %v", res.State.Running, !tc.crash)
			}
		})
	}
}

func TestSelfCollision(t *testing.T) {
	g, ft := newTestGame(t)
	// Moving left from (5,5) lands on (4,5), still occupied after the
	// tail at (3,5) pops.
	g.snake.body = []Cell{{5, 5}, {5, 4}, {4, 4}, {4, 5}, {3, 5}}
	g.snake.dir = DirLeft
	g.food.pos = Cell{X: 12, Y: 12}

	res := tick(g, ft, core.NewInputFrame())

	if !hasEvent(res.Events, core.EventWall) {
		t.Error("expected a crash event on self collision")
	}
	if res.State.Running {
		t.Error("game should freeze after self collision")
	}
}

func TestTailVacatedBeforeCollision(t *testing.T) {
	g, ft := newTestGame(t)
	// Moving left from (5,5) enters (4,5), the tail cell, which pops on
	// the same tick. The cell counts as vacated, so this is not a crash.
	g.snake.body = []Cell{{5, 5}, {5, 4}, {4, 4}, {4, 5}}
	g.snake.dir = DirLeft
	g.food.pos = Cell{X: 12, Y: 12}

	res := tick(g, ft, core.NewInputFrame())

	if hasEvent(res.Events, core.EventWall) {
		t.Error("moving into the departing tail cell must not crash")
	}
	if !res.State.Running {
		t.Error("game should keep running")
	}
}

func TestEatGrowsAndScores(t *testing.T) {
	g, ft := newTestGame(t)
	g.food.pos = Cell{X: 7, Y: 9} // directly ahead of the head at (6,9)

	res := tick(g, ft, core.NewInputFrame())

	if !hasEvent(res.Events, core.EventEat) {
		t.Fatal("expected an eat event")
	}
	if res.State.Score != 1 {
		t.Errorf("score = %d, expected 1", res.State.Score)
	}
	if g.snake.Len() != 3 {
		t.Errorf("length grew on the eat tick itself: %d", g.snake.Len())
	}
	if !g.snake.GrowthPending() {
		t.Error("growth should be pending after eating")
	}
	if g.food.Pos() == (Cell{X: 7, Y: 9}) {
		t.Error("food should respawn elsewhere after being eaten")
	}
	if g.snake.Occupies(g.food.Pos()) {
		t.Error("respawned food landed on the snake")
	}

	// The next move realizes the growth. Pin the food away from the path
	// so the seeded respawn cannot feed the snake again.
	g.food.pos = Cell{X: 20, Y: 20}
	res = tick(g, ft, core.NewInputFrame())
	if g.snake.Len() != 4 {
		t.Errorf("length after the following move = %d, expected 4", g.snake.Len())
	}
	if res.State.Score != 1 {
		t.Errorf("score changed without eating: %d", res.State.Score)
	}
}

func TestFoodNeverOnSnake(t *testing.T) {
	g, _ := newTestGame(t)

	for i := 0; i < 500; i++ {
		g.food.Respawn(g.rng, g.grid, g.snake.Occupies)
		if g.snake.Occupies(g.food.Pos()) {
			t.Fatalf("respawn %d landed on the snake at %v", i, g.food.Pos())
		}
	}
}

func TestFoodRespawnLastFreeCell(t *testing.T) {
	g, _ := newTestGame(t)
	grid := Grid{Size: 3}
	free := Cell{X: 2, Y: 2}
	occupied := func(c Cell) bool { return c != free }

	var f Food
	f.Respawn(g.rng, grid, occupied)
	if f.Pos() != free {
		t.Errorf("Respawn = %v, expected the only free cell %v", f.Pos(), free)
	}
}

func TestCrashResetsInPlace(t *testing.T) {
	g, ft := newTestGame(t)

	// Score, grow and ramp first so the reset is observable.
	g.food.pos = Cell{X: 7, Y: 9}
	tick(g, ft, core.NewInputFrame())
	tick(g, ft, core.NewInputFrame())
	ft.advance(10 * time.Second)
	g.Step(core.NewInputFrame())
	if g.clock.Interval() != 180*time.Millisecond {
		t.Fatalf("expected ramped interval before the crash, got %v", g.clock.Interval())
	}

	g.snake.body = []Cell{{24, 5}, {23, 5}, {22, 5}}
	g.snake.dir = DirRight
	res := tick(g, ft, core.NewInputFrame())

	if !hasEvent(res.Events, core.EventWall) {
		t.Fatal("expected a crash")
	}
	snap := g.Snapshot()
	if snap.Running {
		t.Error("game should be frozen after the crash")
	}
	if snap.Score != 0 {
		t.Errorf("score after crash = %d, expected 0", snap.Score)
	}
	if snap.SnakeLen != 3 {
		t.Errorf("length after crash = %d, expected 3", snap.SnakeLen)
	}
	if snap.HeadX != 6 || snap.HeadY != 9 {
		t.Errorf("head after crash = (%d,%d), expected (6,9)", snap.HeadX, snap.HeadY)
	}
	if snap.DirX != 1 || snap.DirY != 0 {
		t.Errorf("direction after crash = (%d,%d), expected (1,0)", snap.DirX, snap.DirY)
	}
	if snap.Interval != 200*time.Millisecond {
		t.Errorf("interval after crash = %v, expected the initial 200ms", snap.Interval)
	}
	if g.snake.Occupies(Cell{X: snap.FoodX, Y: snap.FoodY}) {
		t.Error("food respawned on the reset snake")
	}
}

func TestWallEventCarriesRunStats(t *testing.T) {
	g, ft := newTestGame(t)

	g.food.pos = Cell{X: 7, Y: 9}
	tick(g, ft, core.NewInputFrame())
	g.food.pos = Cell{X: 20, Y: 20}
	tick(g, ft, core.NewInputFrame()) // growth realized, length 4

	g.snake.body = []Cell{{24, 5}, {23, 5}, {22, 5}, {21, 5}}
	g.snake.dir = DirRight
	res := tick(g, ft, core.NewInputFrame())

	var wall core.Event
	for _, ev := range res.Events {
		if ev.Kind == core.EventWall {
			wall = ev
		}
	}
	if wall.Kind != core.EventWall {
		t.Fatal("expected a wall event")
	}
	if wall.FinalScore != 1 {
		t.Errorf("FinalScore = %d, expected 1", wall.FinalScore)
	}
	if wall.PeakLength != 4 {
		t.Errorf("PeakLength = %d, expected 4", wall.PeakLength)
	}
	if wall.Duration != 600*time.Millisecond {
		t.Errorf("Duration = %v, expected 600ms", wall.Duration)
	}
}

func TestFrozenUntilDirectionalInput(t *testing.T) {
	g, ft := newTestGame(t)
	g.snake.body = []Cell{{24, 5}, {23, 5}, {22, 5}}
	g.snake.dir = DirRight
	tick(g, ft, core.NewInputFrame())
	if g.State().Running {
		t.Fatal("expected the game to be frozen")
	}

	// Empty frames keep the simulation frozen.
	for i := 0; i < 5; i++ {
		tick(g, ft, core.NewInputFrame())
	}
	snap := g.Snapshot()
	if snap.HeadX != 6 || snap.HeadY != 9 {
		t.Errorf("snake moved while frozen: head (%d,%d)", snap.HeadX, snap.HeadY)
	}

	// A reversing input is rejected and must not resume the game.
	tick(g, ft, input(core.ActionLeft))
	if g.State().Running {
		t.Error("a rejected reversal must not resume the game")
	}

	// An accepted direction resumes; the snake moves on the next tick.
	tick(g, ft, input(core.ActionUp))
	if !g.State().Running {
		t.Fatal("accepted input should resume the game")
	}
	tick(g, ft, core.NewInputFrame())
	snap = g.Snapshot()
	if snap.HeadX != 6 || snap.HeadY != 8 {
		t.Errorf("head after resuming = (%d,%d), expected (6,8)", snap.HeadX, snap.HeadY)
	}
}

func TestOneDirectionChangePerTick(t *testing.T) {
	g, ft := newTestGame(t)

	// First gated tick arms input; the down turn is accepted.
	tick(g, ft, input(core.ActionDown))
	if g.snake.Direction() != DirDown {
		t.Fatalf("direction = %v, expected down", g.snake.Direction())
	}

	// A second input in the same tick window is ignored.
	g.Step(input(core.ActionLeft))
	if g.snake.Direction() != DirDown {
		t.Errorf("second input in the same tick was applied: %v", g.snake.Direction())
	}

	// The next tick accepts a new change.
	tick(g, ft, input(core.ActionLeft))
	if g.snake.Direction() != DirLeft {
		t.Errorf("direction = %v, expected left on the next tick", g.snake.Direction())
	}
}

func TestSpeedRampDuringPlay(t *testing.T) {
	g, ft := newTestGame(t)

	ft.advance(10 * time.Second)
	g.Step(core.NewInputFrame())
	if g.clock.Interval() != 180*time.Millisecond {
		t.Errorf("interval after 10s = %v, expected 180ms", g.clock.Interval())
	}

	ft.advance(10 * time.Second)
	g.Step(core.NewInputFrame())
	if g.clock.Interval() != 162*time.Millisecond {
		t.Errorf("interval after 20s = %v, expected 162ms", g.clock.Interval())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		ft := newFakeTime()
		g := New(config.DefaultSnakeConfig())
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 40, Seed: 7, Now: ft.now})

		script := []core.Action{
			core.ActionNone, core.ActionDown, core.ActionNone, core.ActionLeft,
			core.ActionNone, core.ActionUp, core.ActionNone, core.ActionRight,
			core.ActionNone, core.ActionDown, core.ActionNone, core.ActionNone,
		}
		for _, a := range script {
			ft.advance(g.clock.Interval())
			in := core.NewInputFrame()
			if a != core.ActionNone {
				in.Set(a)
			}
			g.Step(in)
		}
		return g.Snapshot()
	}

	first := run()
	second := run()
	if first != second {
		t.Errorf("identical seeds and inputs diverged:\n  %+v\n  %+v", first, second)
	}
}

func TestTooSmallScreenFreezes(t *testing.T) {
	ft := newFakeTime()
	g := New(config.DefaultSnakeConfig())
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 1, Now: ft.now})

	ft.advance(time.Second)
	res := g.Step(core.NewInputFrame())
	snap := g.Snapshot()
	if snap.Ticks != 0 || snap.HeadX != 6 {
		t.Errorf("simulation advanced on a too-small screen: %+v", snap)
	}
	if len(res.Events) != 0 {
		t.Errorf("unexpected events on a too-small screen: %v", res.Events)
	}

	s := core.NewScreen(20, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Error("expected the too-small overlay in the rendered output")
	}
}

func TestRender(t *testing.T) {
	g, ft := newTestGame(t)
	s := core.NewScreen(80, 40)

	g.Render(s)
	if !strings.Contains(s.Row(0), "Retro Snake") {
		t.Errorf("HUD missing from row 0: %q", s.Row(0))
	}
	if !strings.Contains(s.String(), "O") {
		t.Error("snake head missing from the rendered board")
	}
	if !strings.Contains(s.String(), "*") {
		t.Error("food missing from the rendered board")
	}

	// Crash and check the overlay.
	g.snake.body = []Cell{{24, 5}, {23, 5}, {22, 5}}
	g.snake.dir = DirRight
	tick(g, ft, core.NewInputFrame())
	g.Render(s)
	if !strings.Contains(s.String(), "Crashed!") {
		t.Error("expected the crash overlay in the rendered output")
	}
}
