// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import "time"

// SnakeConfig contains all configuration for the snake game.
type SnakeConfig struct {
	Grid  GridConfig  `yaml:"grid"`
	Speed SpeedConfig `yaml:"speed"`
	Snake SnakeStart  `yaml:"snake"`
}

// GridConfig defines the playing field.
type GridConfig struct {
	// CellCount is the side length of the square grid, in cells.
	CellCount int `yaml:"cell_count"`
}

// SpeedConfig defines the tick interval and its ramp over a run.
type SpeedConfig struct {
	InitialIntervalMS   int     `yaml:"initial_interval_ms"`
	SpeedUpIntervalSecs int     `yaml:"speed_up_interval_secs"`
	SpeedMultiplier     float64 `yaml:"speed_multiplier"`
}

// SnakeStart defines the initial snake placement.
type SnakeStart struct {
	StartX int `yaml:"start_x"` // Head x at spawn
	StartY int `yaml:"start_y"` // Head y at spawn
	Length int `yaml:"length"`  // Initial body length, tail extends left
}

// InitialInterval returns the starting simulation tick interval.
func (s SpeedConfig) InitialInterval() time.Duration {
	return time.Duration(s.InitialIntervalMS) * time.Millisecond
}

// SpeedUpInterval returns how often the tick interval is multiplied
// by SpeedMultiplier.
func (s SpeedConfig) SpeedUpInterval() time.Duration {
	return time.Duration(s.SpeedUpIntervalSecs) * time.Second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)
