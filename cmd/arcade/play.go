package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  W/S, Up/Down     - Move paddle or shooter
  A/D, Left/Right  - Move shooter (Gun Fight)
  Space            - Fire (Gun Fight)
  P                - Pause
  R                - Restart
  Esc/B            - Back
  Q/Ctrl+C         - Quit
  Ctrl+S           - Save a text screenshot

Difficulty options:
  easy   - Slower ball, bullets and obstacles
  normal - Speeds as configured
  hard   - Faster everything
  fixed  - No speed ramps after hits or shots

Examples:
  arcade play pong
  arcade play gunfight --difficulty hard
  arcade play pong --config ./my-pong.yaml --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		return fmt.Errorf("unknown game %q", gameID)
	}

	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	result, err := s.play(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Final score: %d\n", result.State.Score)
	return nil
}
