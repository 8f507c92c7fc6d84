package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			CellCount: 25,
		},
		Speed: SpeedConfig{
			InitialIntervalMS:   200,
			SpeedUpIntervalSecs: 10,
			SpeedMultiplier:     0.9,
		},
		Snake: SnakeStart{
			StartX: 6,
			StartY: 9,
			Length: 3,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
