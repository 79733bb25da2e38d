package physics

// HitOffset returns where the ball struck the paddle, from -1 (top edge) to
// +1 (bottom edge), measured from the paddle center in half-heights.
func HitOffset(ball, paddle *Entity) float64 {
	half := paddle.Shape.H / 2
	if half <= 0 {
		return 0
	}
	return clamp((ball.Center().Y-paddle.Center().Y)/half, -1, 1)
}

// BounceOffPaddle reflects the ball horizontally, replaces its vertical
// direction with the hit offset, ramps its speed by its acceleration and
// renormalizes. The ball is then pushed clear of the paddle face on its own
// side of the paddle center.
func BounceOffPaddle(ball, paddle *Entity) {
	ball.Dir.X = -ball.Dir.X
	ball.Dir.Y = HitOffset(ball, paddle)
	ball.Speed += ball.Accel
	ball.Dir = ball.Dir.Normalize()

	r := ball.Radius()
	if ball.Center().X >= paddle.Center().X {
		ball.Pos.X = max(ball.Pos.X, paddle.Pos.X+paddle.Shape.W+r)
	} else {
		ball.Pos.X = min(ball.Pos.X, paddle.Pos.X-r)
	}
}

// Ramp permanently adds the entity's acceleration to its speed.
func Ramp(e *Entity) {
	e.Speed += e.Accel
}

// HitTarget resolves a bullet striking a shooter: the bullet is retired and
// the target loses a life, floored at zero. An inactive bullet is a no-op
// and reports false.
func HitTarget(b *Bullet, target *Shooter) bool {
	if !b.Active {
		return false
	}
	b.Active = false
	target.LoseLife()
	return true
}
