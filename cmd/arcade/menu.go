package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-duel/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
Press Esc in a game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Q/Esc        - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --difficulty easy --mute`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := openSession()
	if err != nil {
		return err
	}
	defer s.Close()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(s.runtime, s.theme)
		if err != nil {
			return err
		}

		// Update config with any size changes
		s.runtime = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return nil
		}

		// Each match from the menu gets a fresh seed unless one was pinned
		if flagSeed == 0 {
			s.runtime.Seed = time.Now().UnixNano()
		}

		result, err := s.play(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if !result.BackToMenu {
			return nil
		}
	}
}
