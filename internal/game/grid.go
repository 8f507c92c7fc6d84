// Package game implements the snake simulation: a fixed square grid, the
// snake itself, food spawning, and the wall-clock timing gate that drives
// ticks. All state lives in explicit objects and is mutated only through
// the Game controller, from a single goroutine.
package game

import "math/rand"

// Cell is one grid-aligned integer coordinate. It doubles as a 2D vector
// when used as a movement direction.
type Cell struct {
	X, Y int
}

// Add returns the cell translated by the given vector.
func (c Cell) Add(v Cell) Cell {
	return Cell{X: c.X + v.X, Y: c.Y + v.Y}
}

// Neg returns the negated vector.
func (c Cell) Neg() Cell {
	return Cell{X: -c.X, Y: -c.Y}
}

// Movement directions as unit vectors. Y grows downward, matching screen
// coordinates.
var (
	DirUp    = Cell{X: 0, Y: -1}
	DirDown  = Cell{X: 0, Y: 1}
	DirLeft  = Cell{X: -1, Y: 0}
	DirRight = Cell{X: 1, Y: 0}
)

// Grid is the square playing field. Pure geometry, no mutable state.
type Grid struct {
	Size int // Side length in cells
}

// InBounds reports whether the cell lies inside the grid.
func (g Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Size && c.Y >= 0 && c.Y < g.Size
}

// RandomCell returns a uniformly random cell of the grid.
func (g Grid) RandomCell(rng *rand.Rand) Cell {
	return Cell{X: rng.Intn(g.Size), Y: rng.Intn(g.Size)}
}
