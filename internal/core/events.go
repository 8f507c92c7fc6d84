package core

import "time"

// EventKind identifies the kind of a game event.
type EventKind int

const (
	// EventEat fires when the snake eats food.
	EventEat EventKind = iota
	// EventWall fires when a run ends, on wall or self collision.
	EventWall
)

// Event is emitted by the game during a Step. The platform reacts to events
// (sound effects, score persistence) without inspecting game internals.
//
// Score inside the game resets to zero the instant a run ends, so the wall
// event carries the finished run's final numbers for the platform to persist.
type Event struct {
	Kind EventKind

	// Final run stats, set on EventWall only.
	FinalScore int
	PeakLength int
	Duration   time.Duration
}
