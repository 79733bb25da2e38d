package pong

import (
	"github.com/vovakirdan/tui-duel/internal/core"
	"github.com/vovakirdan/tui-duel/internal/physics"
)

// resolveBall moves the ball and applies, in order: wall bounce, lateral
// scoring, paddle bounce. A scored rally serves the ball again and skips
// the paddle check for this tick.
func (g *Game) resolveBall(f physics.Frame) {
	if physics.StepProjectile(g.ball, f) {
		g.emit(core.EventWallBounce, core.SideNone)
	}

	switch physics.LateralExit(g.ball, f, physics.ExitOnTouch) {
	case physics.EdgeRight:
		g.score(core.SidePlayer)
		return
	case physics.EdgeLeft:
		g.score(core.SideCPU)
		return
	}

	paddles := []struct {
		e    *physics.Entity
		side core.Side
	}{
		{g.player, core.SidePlayer},
		{g.cpu, core.SideCPU},
	}
	for _, p := range paddles {
		if physics.Overlaps(g.ball, p.e) {
			physics.BounceOffPaddle(g.ball, p.e)
			// the push-out must not carry the ball past a side wall
			r := g.ball.Radius()
			g.ball.Pos.X = min(max(g.ball.Pos.X, r), f.W-r)
			g.emit(core.EventPaddleHit, p.side)
			break
		}
	}
}

// score credits a point, serves the ball again and ends the match when a
// win score is configured and reached.
func (g *Game) score(side core.Side) {
	points := &g.playerScore
	if side == core.SideCPU {
		points = &g.cpuScore
	}
	*points++
	g.emit(core.EventScored, side)

	g.ball.ResetToInitial()

	if win := g.cfg.Gameplay.WinScore; win > 0 && *points >= win {
		g.phase = core.PhaseGameOver
		g.emit(core.EventGameOver, side)
	}
}
