package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-duel/internal/core"
)

// NewLogger creates the session logger. The terminal belongs to the game,
// so log lines go to a file; an empty path discards them. The returned
// closer releases the file.
func NewLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl := log.InfoLevel
	if level != "" {
		parsed, err := log.ParseLevel(level)
		if err != nil {
			return nil, nil, fmt.Errorf("tui: invalid log level %q: %w", level, err)
		}
		lvl = parsed
	}

	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "" {
		//nolint:errcheck // Best-effort directory creation, OpenFile reports the real error
		os.MkdirAll(dir, 0o755)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: failed to open log file %s: %w", path, err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           lvl,
	})
	return logger, f, nil
}

// logEvent writes one game event to the session log.
func logEvent(l *log.Logger, matchID string, ev core.Event) {
	switch ev.Kind {
	case core.EventWallBounce, core.EventPaddleHit, core.EventShotFired, core.EventBulletMissed, core.EventBulletBlocked:
		l.Debug(ev.Kind.String(), "match", matchID, "side", ev.Side)
	case core.EventGameOver:
		winner := ev.Side.String()
		if ev.Side == core.SideNone {
			winner = "draw"
		}
		l.Info("game over", "match", matchID, "winner", winner)
	default:
		l.Info(ev.Kind.String(), "match", matchID, "side", ev.Side)
	}
}
