package game

import "time"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Frames   uint64
	Ticks    uint64
	Score    int
	SnakeLen int
	HeadX    int
	HeadY    int
	DirX     int
	DirY     int
	FoodX    int
	FoodY    int
	Running  bool
	Interval time.Duration
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	dir := g.snake.Direction()
	food := g.food.Pos()

	return Snapshot{
		Frames:   g.frames,
		Ticks:    g.ticks,
		Score:    g.score,
		SnakeLen: g.snake.Len(),
		HeadX:    head.X,
		HeadY:    head.Y,
		DirX:     dir.X,
		DirY:     dir.Y,
		FoodX:    food.X,
		FoodY:    food.Y,
		Running:  g.running,
		Interval: g.clock.Interval(),
	}
}
