package physics

// DecideDirection is the CPU paddle rule: head toward the ball's current Y.
// There is no prediction and no dead zone, so the paddle visibly jitters
// around the ball; it is called once per tick before integration.
func DecideDirection(paddle *Entity, ballY float64) Vec2 {
	return Vec2{0, Sign(ballY - paddle.Center().Y)}
}
