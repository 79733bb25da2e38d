// Package pong implements the rally game: the player controls the left
// paddle, a reactive CPU controls the right one. Scoring happens when the
// ball touches a side edge; the ball is then served again from the center.
package pong

import (
	"fmt"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '╎'
)

// Game implements the rally game logic on top of the physics kernel.
type Game struct {
	cfg     config.PongConfig
	runtime core.RuntimeConfig

	ball   *physics.Entity
	player *physics.Entity
	cpu    *physics.Entity

	playerScore int
	cpuScore    int

	phase  core.Phase
	paused bool
	tick   uint64

	events []core.Event
}

// New creates a rally game from a loaded configuration.
func New(cfg config.PongConfig) *Game {
	g := &Game{cfg: cfg, runtime: core.DefaultConfig()}
	g.Restart()
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Reset initializes the match for a new session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.Restart()
}

// Restart puts every entity back to its starting state and zeroes the
// scores. It works from any phase.
func (g *Game) Restart() {
	c := g.cfg
	d := c.Difficulty
	w, h := c.World.Width, c.World.Height

	g.ball = physics.NewCircle(physics.KindBall,
		physics.V(w/2, h/2),
		c.Ball.Radius,
		colorOf(c.Ball.Color, core.ColorWhite),
		d.Speed(c.Ball.Speed),
		d.Accel(c.Ball.Accel),
	)

	paddleY := h/2 - c.Paddles.Height/2
	paddleColor := colorOf(c.Paddles.Color, core.ColorWhite)
	g.player = physics.NewRect(physics.KindPaddle,
		physics.V(c.Paddles.Offset, paddleY),
		c.Paddles.Width, c.Paddles.Height,
		paddleColor, d.Speed(c.Paddles.Speed), 0,
	)
	g.cpu = physics.NewRect(physics.KindPaddle,
		physics.V(w-c.Paddles.Offset-c.Paddles.Width, paddleY),
		c.Paddles.Width, c.Paddles.Height,
		paddleColor, d.Speed(c.Paddles.CPUSpeed), 0,
	)

	g.playerScore = 0
	g.cpuScore = 0
	g.phase = core.PhasePlaying
	g.paused = false
	g.tick = 0
}

func (g *Game) frame() physics.Frame {
	return physics.Frame{
		DT: g.runtime.DeltaTime(),
		W:  g.cfg.World.Width,
		H:  g.cfg.World.Height,
	}
}

func (g *Game) emit(kind core.EventKind, side core.Side) {
	g.events = append(g.events, core.Event{Kind: kind, Side: side})
}

// Step advances the game by one tick: paddles first, then the ball.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if in.Has(core.ActionRestart) {
		g.Restart()
		g.emit(core.EventRestart, core.SideNone)
		return g.result()
	}

	if g.phase == core.PhaseGameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	f := g.frame()

	physics.MovePaddle(g.player, in.Axis(core.ActionUp, core.ActionDown), f)
	physics.MovePaddle(g.cpu, physics.DecideDirection(g.cpu, g.ball.Pos.Y).Y, f)

	g.resolveBall(f)

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	w := dst.Width()
	dst.DrawTextColor(1, 0, "P1", core.ColorCyan)
	dst.DrawTextColor(w-4, 0, "CPU", core.ColorRed)
	dst.DrawTextCentered(0, fmt.Sprintf("%d  :  %d", g.playerScore, g.cpuScore))

	arena := core.NewRect(0, 1, w, dst.Height()-1)
	dst.DrawBox(arena, core.ColorGray)
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, arena.Inset(1))

	netX := g.cfg.World.Width / 2
	for y := 0; y < vp.Area.H; y += 2 {
		cx, _ := vp.ToCell(netX, 0)
		dst.SetColor(cx, vp.Area.Y+y, NetChar, core.ColorGray)
	}

	for _, p := range []*physics.Entity{g.player, g.cpu} {
		if !p.Active {
			continue
		}
		vp.FillRect(dst, p.Pos.X, p.Pos.Y, p.Shape.W, p.Shape.H, PaddleChar, p.Color)
	}
	if g.ball.Active {
		vp.FillCircle(dst, g.ball.Pos.X, g.ball.Pos.Y, g.ball.Radius(), BallChar, g.ball.Color)
	}

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume", core.ColorYellow)
	}

	if g.phase == core.PhaseGameOver {
		msg, c := "YOU WIN!", core.ColorGreen
		if g.cpuScore > g.playerScore {
			msg, c = "CPU WINS!", core.ColorRed
		}
		dst.DrawMessage(msg, fmt.Sprintf("%d - %d  |  Press R to restart", g.playerScore, g.cpuScore), c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.playerScore,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Scores returns the player and CPU scores.
func (g *Game) Scores() (player, cpu int) {
	return g.playerScore, g.cpuScore
}

func colorOf(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Register the game with the registry
func init() {
	registry.Register("pong", "Pong", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadPong(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyPongPreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}
