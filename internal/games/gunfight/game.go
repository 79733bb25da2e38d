// Package gunfight implements the duel game. The player moves inside a
// fenced area on the left and fires to the right; the CPU patrols the right
// side and fires on a random timer. Patrolling obstacles in the middle lane
// block bullets and speed up with every shot fired. The match ends when both
// sides are out of ammunition; the side with more lives wins.
package gunfight

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
	"github.com/vovakirdan/tui-duel/internal/registry"
)

// Visual characters for rendering
const (
	ShooterChar  = '●'
	BulletChar   = '•'
	ObstacleChar = '▓'
	FenceChar    = '┊'
)

// Game implements the duel game logic on top of the physics kernel.
type Game struct {
	cfg     config.GunfightConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player    *physics.Shooter
	cpu       *physics.Shooter
	obstacles []*physics.Entity
	bullets   *physics.Pool

	playerArea physics.Rect
	cpuTimer   float64 // seconds until the CPU tries to fire
	playerHits int

	phase  core.Phase
	paused bool
	tick   uint64

	events []core.Event
}

// New creates a duel game from a loaded configuration.
func New(cfg config.GunfightConfig) *Game {
	g := &Game{cfg: cfg}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "gunfight"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Gun Fight"
}

// Reset reseeds the random source and starts a new match.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //nolint:gosec // gameplay randomness, not security
	g.Restart()
}

// Restart re-creates every entity with its starting position, speed, ammo
// and lives and clears the bullet pool. It works from any phase.
func (g *Game) Restart() {
	c := g.cfg
	d := c.Difficulty
	w, h := c.World.Width, c.World.Height

	pc := c.Player
	g.playerArea = physics.Rect{
		X: pc.AreaX,
		Y: pc.AreaMargin,
		W: w * pc.AreaWidth,
		H: h - 2*pc.AreaMargin,
	}
	g.player = physics.NewShooter(physics.KindPlayerShooter,
		physics.V(g.playerArea.X+pc.Radius+pc.StartInset, g.playerArea.Y+g.playerArea.H/2),
		pc.Radius,
		colorOf(pc.Color, core.ColorBlue),
		d.Speed(pc.Speed),
		c.Ammo.StartBullets, c.Ammo.StartLives,
	)
	g.player.Bounds = g.playerArea

	cc := c.CPU
	cpuAreaX := w * cc.AreaX
	g.cpu = physics.NewShooter(physics.KindCPUShooter,
		physics.V(w-cc.EdgeOffset-cc.Radius, h/2),
		cc.Radius,
		colorOf(cc.Color, core.ColorRed),
		d.Speed(cc.Speed),
		c.Ammo.StartBullets, c.Ammo.StartLives,
	)
	g.cpu.Bounds = physics.Rect{X: cpuAreaX, Y: cc.AreaMargin, W: w - cpuAreaX, H: h - 2*cc.AreaMargin}
	g.cpu.SetDirection(physics.V(0, 1))

	oc := c.Obstacles
	g.obstacles = make([]*physics.Entity, oc.Count)
	for i := range g.obstacles {
		fi := float64(i)
		cx := w*oc.CenterX + oc.Spacing*(2*fi-float64(oc.Count-1))
		o := physics.NewRect(physics.KindObstacle,
			physics.V(cx-oc.Width/2, h/2-oc.Height/2),
			oc.Width, oc.Height,
			colorOf(oc.Color, core.ColorGray),
			d.Speed(oc.Speed+fi*oc.SpeedStep),
			d.Accel(oc.Accel+fi*oc.AccelStep),
		)
		o.Bounds = physics.Rect{X: o.Pos.X, Y: oc.Margin, W: oc.Width, H: h - 2*oc.Margin}
		if i%2 == 0 {
			o.SetDirection(physics.V(0, 1))
		} else {
			o.SetDirection(physics.V(0, -1))
		}
		g.obstacles[i] = o
	}

	if g.bullets == nil || g.bullets.Cap() != c.Ammo.MaxBullets {
		g.bullets = physics.NewPool(c.Ammo.MaxBullets)
	}
	g.bullets.Clear()

	g.cpuTimer = g.fireDelay()
	g.playerHits = 0
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

// Step advances the duel by one tick in a fixed order: player shot, player,
// CPU, obstacles, bullets, then the game-over check.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil

	if g.phase == core.PhaseGameOver {
		if in.Has(core.ActionRestart) {
			g.Restart()
			g.emit(core.EventRestart, core.SideNone)
		}
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

	if in.Has(core.ActionFire) {
		g.fire(g.player)
	}

	input := physics.V(in.Axis(core.ActionLeft, core.ActionRight), in.Axis(core.ActionUp, core.ActionDown))
	physics.MoveShooter(&g.player.Entity, input, f)

	g.updateCPU(f)

	for _, o := range g.obstacles {
		physics.Patrol(o, f)
	}

	g.resolveBullets(f)
	g.checkGameOver()

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) updateCPU(f physics.Frame) {
	physics.Patrol(&g.cpu.Entity, f)

	g.cpuTimer -= f.DT
	if g.cpuTimer <= 0 {
		if g.cpu.HasAmmo() {
			g.fire(g.cpu)
		}
		g.cpuTimer = g.fireDelay()
	}
}

// fireDelay draws the next CPU shot delay, uniform in whole milliseconds.
func (g *Game) fireDelay() float64 {
	lo := int(math.Round(g.cfg.CPU.FireMin * 1000))
	hi := int(math.Round(g.cfg.CPU.FireMax * 1000))
	if hi <= lo {
		return float64(lo) / 1000
	}
	return float64(lo+g.rng.Intn(hi-lo+1)) / 1000
}

// State returns the current game state. Score counts the player's hits.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.playerHits,
		GameOver: g.phase == core.PhaseGameOver,
		Paused:   g.paused,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < 4 || dst.Height() < 4 {
		return
	}

	w := dst.Width()
	left := fmt.Sprintf("Player  bullets %d  lives %d", g.player.BulletsLeft, g.player.Lives)
	right := fmt.Sprintf("CPU  bullets %d  lives %d", g.cpu.BulletsLeft, g.cpu.Lives)
	dst.DrawTextColor(1, 0, left, g.player.Color)
	dst.DrawTextColor(w-len(right)-1, 0, right, g.cpu.Color)

	arena := core.NewRect(0, 1, w, dst.Height()-1)
	dst.DrawBox(arena, core.ColorGray)
	vp := core.NewViewport(g.cfg.World.Width, g.cfg.World.Height, arena.Inset(1))

	fence := g.playerArea.Right()
	vp.Line(dst, fence, g.playerArea.Y, fence, g.playerArea.Bottom(), FenceChar, core.ColorGray)

	for _, o := range g.obstacles {
		vp.FillRect(dst, o.Pos.X, o.Pos.Y, o.Shape.W, o.Shape.H, ObstacleChar, o.Color)
	}
	for _, s := range []*physics.Shooter{g.player, g.cpu} {
		if !s.Active {
			continue
		}
		vp.FillCircle(dst, s.Pos.X, s.Pos.Y, s.Radius(), ShooterChar, s.Color)
	}
	g.bullets.Each(func(_ int, b *physics.Bullet) {
		vp.FillCircle(dst, b.Pos.X, b.Pos.Y, b.Radius(), BulletChar, b.Color)
	})

	if g.paused {
		dst.DrawMessage("PAUSED", "Press P to resume", core.ColorYellow)
	}

	if g.phase == core.PhaseGameOver {
		msg, c := "DRAW!", core.ColorYellow
		switch g.Winner() {
		case core.SidePlayer:
			msg, c = "PLAYER WINS!", core.ColorGreen
		case core.SideCPU:
			msg, c = "CPU WINS!", core.ColorRed
		}
		dst.DrawMessage(msg, fmt.Sprintf("Lives %d - %d  |  Press R to restart", g.player.Lives, g.cpu.Lives), c)
	}
}

func colorOf(name string, fallback core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return fallback
}

// Register the game with the registry
func init() {
	registry.Register("gunfight", "Gun Fight", func(opts registry.Options) (registry.Game, error) {
		cfg, err := config.LoadGunfight(opts.ConfigPath)
		if err != nil {
			return nil, err
		}
		config.ApplyGunfightPreset(&cfg, opts.Difficulty)
		return New(cfg), nil
	})
}
