package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-duel/internal/audio"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// holdWindow is how long a movement key counts as held after its last key
// event. Terminals only report presses and auto-repeats, never releases.
const holdWindow = 150 * time.Millisecond

var screenshotKey = key.NewBinding(key.WithKeys("ctrl+s"))

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Audio   audio.Player // nil plays nothing
	Logger  *log.Logger  // nil discards
	Theme   *Theme       // nil uses DefaultTheme
}

// Model is the Bubble Tea model for running arcade games.
type Model struct {
	game    registry.Game
	screen  *core.Screen
	runtime core.RuntimeConfig
	keys    GameKeyMap
	help    help.Model
	theme   Theme
	audio   audio.Player
	log     *log.Logger
	matchID string

	edge core.InputFrame           // one-shot actions since the last tick
	held map[core.Action]time.Time // last key event per movement action
	now  func() time.Time

	state    core.GameState
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game and starts
// its first match.
func NewModel(game registry.Game, opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		runtime: cfg,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		theme:   DefaultTheme(),
		audio:   opts.Audio,
		log:     opts.Logger,
		edge:    core.NewInputFrame(),
		held:    make(map[core.Action]time.Time),
		now:     time.Now,
	}
	if opts.Theme != nil {
		m.theme = *opts.Theme
	}
	if m.audio == nil {
		m.audio = audio.Silent{}
	}
	if m.log == nil {
		m.log = log.New(io.Discard)
	}
	m.help.Width = cfg.ScreenW

	game.Reset(cfg)
	m.state = game.State()
	m.startMatch()
	return m
}

func (m *Model) startMatch() {
	m.matchID = uuid.NewString()
	m.log.Info("match started",
		"match", m.matchID,
		"game", m.game.ID(),
		"seed", m.runtime.Seed,
		"tick_rate", m.runtime.TickRate,
	)
}

// Init starts the background music and the tick loop.
func (m Model) Init() tea.Cmd {
	m.audio.StartMusic()
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Movement keys refresh their hold
// window; every other action is delivered once on the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, screenshotKey) {
		m.saveScreenshot()
		return m, nil
	}

	a := m.keys.Action(msg)
	switch {
	case a == core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case a == core.ActionBack:
		m.back = true
		return m, tea.Quit
	case a.IsHeld():
		m.held[a] = m.now()
		delete(m.held, opposite(a))
	case a != core.ActionNone:
		m.edge.Set(a)
	}

	return m, nil
}

// handleResize processes window resize events. Games draw in world units
// through a viewport, so a resize never resets the match.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step with the actions collected since the
// previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	frame := m.edge.Clone()
	for a, last := range m.held {
		if now.Sub(last) > holdWindow {
			delete(m.held, a)
			continue
		}
		frame.Set(a)
	}

	result := m.game.Step(frame)
	m.state = result.State
	m.handleEvents(result.Events)
	m.audio.Update()

	// Clear input for next frame
	m.edge.Clear()

	return m, tickCmd(m.runtime.TickRate)
}

func (m *Model) handleEvents(events []core.Event) {
	for _, ev := range events {
		logEvent(m.log, m.matchID, ev)
		if cue, ok := audio.CueForEvent(ev); ok {
			m.audio.Play(cue)
		}
		if ev.Kind == core.EventRestart {
			m.startMatch()
		}
	}
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("could not save screenshot", "error", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen, m.theme) + "\n" + m.theme.Status.Render(m.help.View(m.keys))
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// MatchID identifies the current match in log lines.
func (m Model) MatchID() string {
	return m.matchID
}

// Result reports how a game session ended.
type Result struct {
	BackToMenu bool
	State      core.GameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts Options) (Result, error) {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, nil
	}
	m.log.Info("session ended", "match", m.matchID, "score", m.state.Score, "back", m.back)
	return Result{BackToMenu: m.back, State: m.state}, nil
}
