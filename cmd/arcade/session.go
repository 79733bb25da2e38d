package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-duel/internal/audio"
	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/platform/tui"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// session holds everything shared by the games played in one invocation.
type session struct {
	runtime core.RuntimeConfig
	game    registry.Options
	theme   tui.Theme
	audio   audio.Player
	log     *log.Logger
	closer  io.Closer
}

// openSession reads the global flags, the terminal size and opens the
// logger and the audio device.
func openSession() (*session, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	logger, closer, err := tui.NewLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	// Get terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	s := &session{
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		game:   registry.Options{ConfigPath: flagConfig, Difficulty: preset},
		theme:  tui.DefaultTheme(),
		log:    logger,
		closer: closer,
	}
	if flagMono {
		s.theme = tui.MonochromeTheme()
	}

	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = !flagMute
	s.audio, err = audio.Open(audioCfg)
	if err != nil {
		// Continue without sound - game still works
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		logger.Warn("audio disabled", "error", err)
	}
	return s, nil
}

// play runs one game until the player quits or goes back to the menu.
func (s *session) play(gameID string) (tui.Result, error) {
	game, err := registry.Create(gameID, s.game)
	if err != nil {
		return tui.Result{}, err
	}

	return tui.Run(game, tui.Options{
		Runtime: s.runtime,
		Audio:   s.audio,
		Logger:  s.log,
		Theme:   &s.theme,
	})
}

func (s *session) Close() {
	s.audio.Close()
	//nolint:errcheck // Nothing left to report to
	s.closer.Close()
}
