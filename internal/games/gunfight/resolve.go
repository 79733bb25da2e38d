package gunfight

import (
	"math"

	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
)

func sideOf(k physics.Kind) core.Side {
	switch k {
	case physics.KindPlayerShooter:
		return core.SidePlayer
	case physics.KindCPUShooter:
		return core.SideCPU
	default:
		return core.SideNone
	}
}

// fire spawns a shot from s toward the opponent with a random vertical
// spread. Ammo is spent and the obstacles ramp only when the pool had a
// free slot.
func (g *Game) fire(s *physics.Shooter) {
	if !s.HasAmmo() {
		return
	}

	dirX, bc := 1.0, g.cfg.Player
	speed, radius := bc.BulletSpeed, bc.BulletRadius
	if s.Kind == physics.KindCPUShooter {
		dirX = -1
		speed, radius = g.cfg.CPU.BulletSpeed, g.cfg.CPU.BulletRadius
	}

	k := int(math.Round(g.cfg.Ammo.Spread * 100))
	dy := float64(g.rng.Intn(2*k+1)-k) / 100

	muzzle := physics.V(s.Pos.X+dirX*(s.Radius()+g.cfg.Ammo.MuzzleGap), s.Pos.Y)
	idx := g.bullets.Spawn(s.Kind, muzzle, physics.V(dirX, dy),
		s.Radius()*radius,
		g.cfg.Difficulty.Speed(speed),
		core.ColorWhite,
	)
	if idx < 0 {
		return
	}

	s.SpendBullet()
	for _, o := range g.obstacles {
		physics.Ramp(o)
	}
	g.emit(core.EventShotFired, sideOf(s.Kind))
}

// resolveBullets moves every live bullet in pool order and applies the
// first matching outcome: blocked by an obstacle, gone past a side edge,
// or hitting the opposing shooter.
func (g *Game) resolveBullets(f physics.Frame) {
	g.bullets.Each(func(_ int, b *physics.Bullet) {
		physics.StepProjectile(&b.Entity, f)

		for _, o := range g.obstacles {
			if physics.Overlaps(&b.Entity, o) {
				b.Active = false
				g.emit(core.EventBulletBlocked, sideOf(b.Owner))
				return
			}
		}

		if physics.LateralExit(&b.Entity, f, physics.ExitWhenGone) != physics.EdgeNone {
			b.Active = false
			g.emit(core.EventBulletMissed, sideOf(b.Owner))
			return
		}

		target := g.cpu
		if b.Owner == physics.KindCPUShooter {
			target = g.player
		}
		if physics.Overlaps(&b.Entity, &target.Entity) && physics.HitTarget(b, target) {
			if target == g.cpu {
				g.playerHits++
			}
			g.emit(core.EventTargetHit, sideOf(target.Kind))
		}
	})
}

// checkGameOver ends the match once both sides are out of ammunition.
// Lives only decide the winner.
func (g *Game) checkGameOver() {
	if g.player.HasAmmo() || g.cpu.HasAmmo() {
		return
	}
	g.phase = core.PhaseGameOver
	g.emit(core.EventGameOver, g.Winner())
}

// Winner compares lives: more lives wins, equal lives is a draw
// (SideNone).
func (g *Game) Winner() core.Side {
	switch {
	case g.player.Lives > g.cpu.Lives:
		return core.SidePlayer
	case g.player.Lives < g.cpu.Lives:
		return core.SideCPU
	default:
		return core.SideNone
	}
}

// Shooters returns the player and CPU shooters.
func (g *Game) Shooters() (player, cpu *physics.Shooter) {
	return g.player, g.cpu
}
