package game

import "math/rand"

// Food occupies a single cell, never one covered by the snake.
type Food struct {
	pos Cell
}

// Respawn samples uniformly random grid cells until one is free, and moves
// the food there. No retry bound is imposed: termination is probabilistic,
// and with the body a small fraction of the grid (625 cells by default) the
// loop ends almost immediately. Should the snake ever fill nearly the whole
// grid, this degenerates into a long spin.
func (f *Food) Respawn(rng *rand.Rand, g Grid, occupied func(Cell) bool) {
	for {
		c := g.RandomCell(rng)
		if !occupied(c) {
			f.pos = c
			return
		}
	}
}

// Pos returns the food's current cell.
func (f *Food) Pos() Cell {
	return f.pos
}
