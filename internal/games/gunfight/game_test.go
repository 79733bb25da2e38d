package gunfight

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
)

func newTestGame(t *testing.T, seed int64, edit func(*config.GunfightConfig)) *Game {
	t.Helper()
	cfg := config.DefaultGunfightConfig()
	if edit != nil {
		edit(&cfg)
	}
	g := New(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func noObstacles(c *config.GunfightConfig) { c.Obstacles.Count = 0 }

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func countEvents(events []core.Event, kind core.EventKind, side core.Side) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == kind && ev.Side == side {
			n++
		}
	}
	return n
}

func TestAmmoExhaustionEndsMatch(t *testing.T) {
	g := newTestGame(t, 7, func(c *config.GunfightConfig) {
		noObstacles(c)
		c.CPU.FireMin, c.CPU.FireMax = 0.5, 0.5
	})
	// Inactive shooters cannot be hit, so every shot misses.
	g.player.Active = false
	g.cpu.Active = false

	var missed int
	for range 5 {
		res := g.Step(input(core.ActionFire))
		missed += countEvents(res.Events, core.EventBulletMissed, core.SidePlayer)
	}
	if g.player.BulletsLeft != 0 {
		t.Fatalf("player bullets = %d, expected 0", g.player.BulletsLeft)
	}
	if g.Phase() != core.PhasePlaying {
		t.Fatal("match must continue while the CPU still has ammo")
	}

	var over []core.Event
	for i := 0; i < 600 && g.Phase() == core.PhasePlaying; i++ {
		res := g.Step(core.NewInputFrame())
		missed += countEvents(res.Events, core.EventBulletMissed, core.SidePlayer)
		over = res.Events
	}

	if g.Phase() != core.PhaseGameOver {
		t.Fatalf("phase = %v after CPU emptied its ammo, expected game over", g.Phase())
	}
	if g.cpu.BulletsLeft != 0 {
		t.Errorf("cpu bullets = %d, expected 0", g.cpu.BulletsLeft)
	}
	if missed != 5 {
		t.Errorf("player misses = %d, expected 5", missed)
	}
	if g.Winner() != core.SideNone || countEvents(over, core.EventGameOver, core.SideNone) != 1 {
		t.Errorf("equal lives should be a draw, winner = %v, events = %v", g.Winner(), over)
	}
}

func TestZeroLivesKeepsPlaying(t *testing.T) {
	g := newTestGame(t, 1, noObstacles)

	g.bullets.Spawn(physics.KindCPUShooter, g.player.Pos, physics.V(-1, 0), 9, 420, core.ColorWhite)
	res := g.Step(core.NewInputFrame())

	if g.player.Lives != 0 || g.cpu.Lives != 1 {
		t.Fatalf("lives = %d/%d, expected 0/1", g.player.Lives, g.cpu.Lives)
	}
	if countEvents(res.Events, core.EventTargetHit, core.SidePlayer) != 1 {
		t.Errorf("events = %v, expected a hit on the player", res.Events)
	}
	if g.Phase() != core.PhasePlaying {
		t.Error("losing all lives must not end the match while ammo remains")
	}
	if g.bullets.Active() != 0 {
		t.Error("hitting bullet should be retired")
	}

	// A second hit floors lives at zero.
	g.bullets.Spawn(physics.KindCPUShooter, g.player.Pos, physics.V(-1, 0), 9, 420, core.ColorWhite)
	g.Step(core.NewInputFrame())
	if g.player.Lives != 0 {
		t.Errorf("lives = %d, expected floored at 0", g.player.Lives)
	}
}

func TestPlayerHitsCPU(t *testing.T) {
	g := newTestGame(t, 1, noObstacles)

	g.bullets.Spawn(physics.KindPlayerShooter, g.cpu.Pos, physics.V(1, 0), 8, 450, core.ColorWhite)
	res := g.Step(core.NewInputFrame())

	if g.cpu.Lives != 0 || res.State.Score != 1 {
		t.Errorf("cpu lives = %d, score = %d; expected 0 and 1", g.cpu.Lives, res.State.Score)
	}
	if countEvents(res.Events, core.EventTargetHit, core.SideCPU) != 1 {
		t.Errorf("events = %v, expected a hit on the CPU", res.Events)
	}
}

func TestPoolSaturationKeepsAmmo(t *testing.T) {
	g := newTestGame(t, 1, func(c *config.GunfightConfig) {
		noObstacles(c)
		c.Ammo.MaxBullets = 2
	})

	var shots int
	for range 3 {
		res := g.Step(input(core.ActionFire))
		shots += countEvents(res.Events, core.EventShotFired, core.SidePlayer)
	}

	if shots != 2 || g.player.BulletsLeft != 3 {
		t.Errorf("shots = %d, bullets left = %d; expected 2 and 3", shots, g.player.BulletsLeft)
	}
	if g.bullets.Active() != 2 {
		t.Errorf("active bullets = %d, expected 2", g.bullets.Active())
	}
}

func TestShotRampsObstacles(t *testing.T) {
	g := newTestGame(t, 1, nil)
	if len(g.obstacles) != 2 {
		t.Fatalf("obstacles = %d, expected 2", len(g.obstacles))
	}

	g.Step(input(core.ActionFire))

	want := []float64{88, 130}
	for i, o := range g.obstacles {
		if o.Speed != want[i] {
			t.Errorf("obstacle %d speed = %v, expected %v", i, o.Speed, want[i])
		}
	}
}

func TestObstacleBlocksBullet(t *testing.T) {
	g := newTestGame(t, 1, nil)
	o := g.obstacles[0]

	g.bullets.Spawn(physics.KindPlayerShooter, o.Center(), physics.V(1, 0), 8, 450, core.ColorWhite)
	res := g.Step(core.NewInputFrame())

	if g.bullets.Active() != 0 {
		t.Error("blocked bullet should be retired")
	}
	if countEvents(res.Events, core.EventBulletBlocked, core.SidePlayer) != 1 {
		t.Errorf("events = %v, expected a blocked bullet", res.Events)
	}
	if g.cpu.Lives != 1 {
		t.Error("blocked bullet must not reach the target")
	}
}

func TestObstaclesPatrolOpposite(t *testing.T) {
	g := newTestGame(t, 1, nil)
	y0, y1 := g.obstacles[0].Pos.Y, g.obstacles[1].Pos.Y

	g.Step(core.NewInputFrame())

	if g.obstacles[0].Pos.Y <= y0 || g.obstacles[1].Pos.Y >= y1 {
		t.Errorf("obstacles moved to %v/%v from %v/%v, expected down/up",
			g.obstacles[0].Pos.Y, g.obstacles[1].Pos.Y, y0, y1)
	}
}

func TestRestart(t *testing.T) {
	g := newTestGame(t, 3, nil)
	fresh := newTestGame(t, 3, nil).Snapshot()

	for i := range 400 {
		in := input(core.ActionDown, core.ActionRight)
		if i%20 == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(in)
	}

	// Restart input only applies once the match is over.
	wasOver := g.Phase() == core.PhaseGameOver
	g.Step(input(core.ActionRestart))
	if !wasOver && g.Snapshot().Tick == 0 {
		t.Fatal("restart input applied while playing")
	}

	g.Restart()
	got := g.Snapshot()
	if got.Tick != 0 || got.GameOver {
		t.Errorf("tick = %d, game over = %v after restart", got.Tick, got.GameOver)
	}
	if got.Player != fresh.Player || got.CPU != fresh.CPU {
		t.Errorf("shooters = %+v/%+v, expected %+v/%+v", got.Player, got.CPU, fresh.Player, fresh.CPU)
	}
	for i := range fresh.Obstacles {
		if got.Obstacles[i] != fresh.Obstacles[i] {
			t.Errorf("obstacle state %d = %d, expected %d", i, got.Obstacles[i], fresh.Obstacles[i])
		}
	}
	if len(got.Bullets) != 0 || g.bullets.Active() != 0 {
		t.Error("restart must clear the bullet pool")
	}
	if g.cpu.Dir != g.cpu.InitDir {
		t.Error("cpu patrol direction not reset")
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.player.BulletsLeft = 0
	g.cpu.BulletsLeft = 0

	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver {
		t.Fatal("empty magazines should end the match")
	}

	before := g.Snapshot()
	g.Step(input(core.ActionFire, core.ActionUp))
	if g.Snapshot().Tick != before.Tick {
		t.Error("game over must freeze the simulation")
	}

	res = g.Step(input(core.ActionRestart))
	if res.State.GameOver || g.player.BulletsLeft != 5 || g.cpu.BulletsLeft != 5 {
		t.Errorf("after restart game over = %v, bullets = %d/%d", res.State.GameOver, g.player.BulletsLeft, g.cpu.BulletsLeft)
	}
	if countEvents(res.Events, core.EventRestart, core.SideNone) != 1 {
		t.Error("restart event missing")
	}
}

func TestWinner(t *testing.T) {
	tests := []struct {
		player, cpu int
		want        core.Side
	}{
		{1, 0, core.SidePlayer},
		{0, 1, core.SideCPU},
		{1, 1, core.SideNone},
		{0, 0, core.SideNone},
	}

	g := newTestGame(t, 1, nil)
	for _, tt := range tests {
		g.player.Lives, g.cpu.Lives = tt.player, tt.cpu
		if got := g.Winner(); got != tt.want {
			t.Errorf("Winner(%d, %d) = %v, expected %v", tt.player, tt.cpu, got, tt.want)
		}
	}
}

func TestEntitiesStayInBounds(t *testing.T) {
	g := newTestGame(t, 11, nil)
	moves := [][]core.Action{
		{core.ActionUp, core.ActionLeft},
		{core.ActionDown, core.ActionRight},
		{core.ActionRight},
		{core.ActionUp},
	}

	for i := range 3000 {
		in := input(moves[(i/90)%len(moves)]...)
		if i%25 == 0 {
			in.Set(core.ActionFire)
		}
		g.Step(in)
		if g.Phase() == core.PhaseGameOver {
			g.Restart()
		}

		for _, e := range []*physics.Entity{&g.player.Entity, &g.cpu.Entity} {
			if !e.InBounds() {
				t.Fatalf("tick %d: %v at %v outside %+v", i, e.Kind, e.Pos, e.Bounds)
			}
		}
		for _, o := range g.obstacles {
			if !o.InBounds() {
				t.Fatalf("tick %d: obstacle at %v outside %+v", i, o.Pos, o.Bounds)
			}
		}
		g.bullets.Each(func(_ int, b *physics.Bullet) {
			if r := b.Radius(); b.Pos.Y < r || b.Pos.Y > g.cfg.World.Height-r {
				t.Fatalf("tick %d: bullet y = %v outside the arena", i, b.Pos.Y)
			}
		})
	}
}

func TestDeterministic(t *testing.T) {
	run := func() uint64 {
		g := newTestGame(t, 42, nil)
		for i := range 900 {
			in := core.NewInputFrame()
			if i%30 == 0 {
				in.Set(core.ActionFire)
			}
			if i%120 < 60 {
				in.Set(core.ActionDown)
			}
			g.Step(in)
		}
		return g.Snapshot().Hash()
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and inputs produced different hashes: %x vs %x", a, b)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 1, nil)
	g.Step(input(core.ActionFire))

	s := core.NewScreen(100, 30)
	g.Render(s)
	out := s.String()
	for _, r := range []rune{ShooterChar, ObstacleChar, FenceChar, BulletChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("render missing %q", r)
		}
	}
	if !strings.Contains(s.Row(0), "bullets 4") {
		t.Errorf("HUD row = %q", s.Row(0))
	}

	g.player.BulletsLeft, g.cpu.BulletsLeft = 0, 0
	g.Step(core.NewInputFrame())
	g.Render(s)
	if !strings.Contains(s.String(), "DRAW!") {
		t.Error("draw banner missing")
	}
}

func TestRenderSkipsInactive(t *testing.T) {
	g := newTestGame(t, 1, noObstacles)
	g.player.Active = false
	g.cpu.Active = false

	s := core.NewScreen(100, 30)
	g.Render(s)
	if strings.ContainsRune(s.String(), ShooterChar) {
		t.Error("inactive shooter drawn")
	}
}
