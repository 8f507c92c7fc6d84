package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/retroarcade/snake/internal/audio"
	"github.com/retroarcade/snake/internal/config"
	"github.com/retroarcade/snake/internal/core"
	"github.com/retroarcade/snake/internal/game"
	"github.com/retroarcade/snake/internal/platform/tui"
	"github.com/retroarcade/snake/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start the game in the current terminal.

Controls:
  Arrows/WASD/HJKL - Steer the snake
  Ctrl+S           - Save a screenshot
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower start, gentler speed-up
  normal - Classic pacing
  hard   - Faster start, steeper speed-up
  fixed  - No speed-up, constant pace

Examples:
  snake play
  snake play --difficulty hard
  snake play --config ./my-snake.yaml
  snake play --seed 42 --mute`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if flagDifficulty != "" {
		config.ApplySnakePreset(&gameCfg, config.DifficultyPreset(flagDifficulty))
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	sounds := audio.NewSoundManager()
	if initErr := sounds.Initialize(); initErr != nil {
		// No audio device; play silently
		sounds = nil
	} else {
		sounds.SetMuted(flagMute)
	}

	runErr := tui.Run(game.New(gameCfg), store, sounds, rt)

	if sounds != nil {
		sounds.Cleanup()
	}
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
