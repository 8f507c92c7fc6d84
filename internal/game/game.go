package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/retroarcade/snake/internal/config"
	"github.com/retroarcade/snake/internal/core"
)

const hudHeight = 2 // Top HUD lines above the board

// Game is the controller. It owns the entities and advances the simulation
// once per render frame, gated by the clock.
//
// After a crash the simulation freezes (running=false) and stays frozen
// until the next accepted directional input. Resuming via any non-reversing
// arrow key is the game's only un-pause mechanism.
type Game struct {
	cfg config.SnakeConfig

	rng   *rand.Rand
	clock *Clock
	grid  Grid
	snake *Snake
	food  Food

	running bool
	score   int

	// moveAllowed arms on every gated tick and is consumed by the first
	// accepted direction change, limiting input to one change per tick.
	moveAllowed bool

	// Run stats carried on the wall event, since score resets on crash.
	peakLen  int
	runStart time.Time

	frames uint64
	ticks  uint64

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given configuration. Reset must be called
// before the first Step.
func New(cfg config.SnakeConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier used for score storage.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Retro Snake"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.clock = NewClock(rt.Now,
		g.cfg.Speed.InitialInterval(),
		g.cfg.Speed.SpeedUpInterval(),
		g.cfg.Speed.SpeedMultiplier)

	g.grid = Grid{Size: g.cfg.Grid.CellCount}
	g.snake = NewSnake(Cell{X: g.cfg.Snake.StartX, Y: g.cfg.Snake.StartY}, g.cfg.Snake.Length)
	g.food.Respawn(g.rng, g.grid, g.snake.Occupies)

	g.running = true
	g.score = 0
	g.moveAllowed = false
	g.peakLen = g.snake.Len()
	g.runStart = g.clock.Now()
	g.frames = 0
	g.ticks = 0

	g.screenW = rt.ScreenW
	g.screenH = rt.ScreenH
	requiredW := g.grid.Size + 2
	requiredH := g.grid.Size + 2 + hudHeight
	g.tooSmall = g.screenW < requiredW || g.screenH < requiredH
}

// Step advances the game by one render frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.frames++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	var events []core.Event
	if g.clock.ShouldAdvance() {
		g.moveAllowed = true
		if g.running {
			g.ticks++
			events = g.advance(events)
		}
	}

	// The speed ramp runs every update, independent of the gate and of
	// whether the simulation is frozen.
	g.clock.Ramp()

	g.applyInput(in)

	return core.StepResult{State: g.State(), Events: events}
}

// advance runs one simulation tick. The order is fixed: move, food, bounds,
// self. Later checks depend on the effects of earlier ones.
func (g *Game) advance(events []core.Event) []core.Event {
	g.snake.Move()
	if g.snake.Len() > g.peakLen {
		g.peakLen = g.snake.Len()
	}

	head := g.snake.Head()

	if head == g.food.Pos() {
		g.food.Respawn(g.rng, g.grid, g.snake.Occupies)
		g.snake.RequestGrowth()
		g.score++
		events = append(events, core.Event{Kind: core.EventEat})
	}

	if !g.grid.InBounds(head) {
		return append(events, g.crash())
	}
	if g.snake.HitsSelf() {
		return append(events, g.crash())
	}
	return events
}

// crash ends the run: entities reset in place, the simulation freezes, and
// the speed curve restarts. The returned event carries the run's final
// numbers, which are gone from the game state after this call.
func (g *Game) crash() core.Event {
	ev := core.Event{
		Kind:       core.EventWall,
		FinalScore: g.score,
		PeakLength: g.peakLen,
		Duration:   g.clock.Now().Sub(g.runStart),
	}

	g.snake.Reset()
	g.food.Respawn(g.rng, g.grid, g.snake.Occupies)
	g.running = false
	g.score = 0
	g.peakLen = g.snake.Len()
	g.clock.ResetSpeed()

	return ev
}

// applyInput applies at most one direction change per simulation tick.
// An accepted input also re-arms the simulation after a crash; the run
// timer restarts at that moment.
func (g *Game) applyInput(in core.InputFrame) {
	if !g.moveAllowed {
		return
	}

	var dir Cell
	switch {
	case in.Has(core.ActionUp):
		dir = DirUp
	case in.Has(core.ActionDown):
		dir = DirDown
	case in.Has(core.ActionLeft):
		dir = DirLeft
	case in.Has(core.ActionRight):
		dir = DirRight
	default:
		return
	}

	if !g.snake.SetDirection(dir) {
		return
	}
	if !g.running {
		g.running = true
		g.runStart = g.clock.Now()
	}
	g.moveAllowed = false
}

// State returns the externally observable game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:   g.score,
		Running: g.running,
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Board border, centered horizontally below the HUD.
	boardX := (dst.Width() - (g.grid.Size + 2)) / 2
	boardY := hudHeight
	dst.DrawBox(core.NewRect(boardX, boardY, g.grid.Size+2, g.grid.Size+2), core.ColorDarkGreen)

	// Food
	food := g.food.Pos()
	dst.SetCell(boardX+1+food.X, boardY+1+food.Y, '*', core.ColorRed)

	// Snake
	for i, seg := range g.snake.Body() {
		if !g.grid.InBounds(seg) {
			continue
		}
		r, c := 'o', core.ColorGreen
		if i == 0 {
			r, c = 'O', core.ColorBrightGreen
		}
		dst.SetCell(boardX+1+seg.X, boardY+1+seg.Y, r, c)
	}

	if !g.running {
		g.renderOverlay(dst, "Crashed!", "Press an arrow key to play again")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Retro Snake | Score: %d | Tick: %dms", g.score, g.clock.Interval().Milliseconds())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Max(len(line1), len(line2)) + 4
	h := 5
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	dst.DrawRect(core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2), ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
