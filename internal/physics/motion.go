package physics

import "math"

// Frame carries the per-tick inputs from the loop driver: the elapsed time
// and the current world size.
type Frame struct {
	DT float64
	W  float64
	H  float64
}

// Arena returns the full playfield rectangle.
func (f Frame) Arena() Rect {
	return Rect{W: f.W, H: f.H}
}

// Edge identifies a lateral side of the arena.
type Edge int

const (
	EdgeNone Edge = iota
	EdgeLeft
	EdgeRight
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	default:
		return "none"
	}
}

// ExitPolicy decides when a projectile counts as having left the arena sideways.
type ExitPolicy int

const (
	// ExitOnTouch fires as soon as the circle touches the lateral edge (rally scoring).
	ExitOnTouch ExitPolicy = iota
	// ExitWhenGone fires once the circle is fully past the edge (duel misses).
	ExitWhenGone
)

// MovePaddle steers a paddle vertically by dirY ∈ {-1, 0, +1}, integrates it and
// clamps it to the arena height. Bounds are rebuilt from the frame every
// tick so a resized arena is honored.
func MovePaddle(p *Entity, dirY float64, f Frame) {
	p.Dir = Vec2{0, Sign(dirY)}
	p.Integrate(f.DT)
	p.Bounds = Rect{X: p.Pos.X, Y: 0, W: p.Shape.W, H: f.H}
	p.Clamp()
}

// MoveShooter steers an entity on both axes from an input axis pair and
// clamps it to its movement area. The input is normalized, so diagonal
// movement is no faster than straight movement.
func MoveShooter(e *Entity, input Vec2, f Frame) {
	e.Dir = input.Normalize()
	e.Integrate(f.DT)
	e.Clamp()
}

// Patrol moves an entity along its direction and bounces it between the
// edges of its Bounds: on reaching either edge it is clamped and the
// matching direction component is reversed to point back inside.
func Patrol(e *Entity, f Frame) {
	if !e.Active {
		return
	}
	e.Integrate(f.DT)
	if e.Bounds.Empty() {
		return
	}
	lo, hi := e.posRange(e.Bounds)
	if e.Pos.X <= lo.X {
		e.Pos.X = lo.X
		e.Dir.X = math.Abs(e.Dir.X)
	} else if e.Pos.X >= hi.X {
		e.Pos.X = hi.X
		e.Dir.X = -math.Abs(e.Dir.X)
	}
	if e.Pos.Y <= lo.Y {
		e.Pos.Y = lo.Y
		e.Dir.Y = math.Abs(e.Dir.Y)
	} else if e.Pos.Y >= hi.Y {
		e.Pos.Y = hi.Y
		e.Dir.Y = -math.Abs(e.Dir.Y)
	}
}

// StepProjectile integrates a ball or bullet and reflects it off the top
// and bottom of the arena, regardless of its horizontal position. The
// center is clamped to [radius, H-radius]. It reports whether a wall
// bounce happened. Inactive projectiles are left untouched.
func StepProjectile(e *Entity, f Frame) (bounced bool) {
	if !e.Active {
		return false
	}
	e.Integrate(f.DT)

	r := e.Radius()
	switch {
	case e.Pos.Y-r <= 0:
		e.Pos.Y = r
		e.Dir.Y = math.Abs(e.Dir.Y)
		bounced = true
	case e.Pos.Y+r >= f.H:
		e.Pos.Y = f.H - r
		e.Dir.Y = -math.Abs(e.Dir.Y)
		bounced = true
	}
	return bounced
}

// LateralExit reports which side edge, if any, an active projectile has left by.
func LateralExit(e *Entity, f Frame, policy ExitPolicy) Edge {
	if !e.Active {
		return EdgeNone
	}
	r := e.Radius()
	switch policy {
	case ExitOnTouch:
		if e.Pos.X+r >= f.W {
			return EdgeRight
		}
		if e.Pos.X-r <= 0 {
			return EdgeLeft
		}
	case ExitWhenGone:
		if e.Pos.X+r < 0 {
			return EdgeLeft
		}
		if e.Pos.X-r > f.W {
			return EdgeRight
		}
	}
	return EdgeNone
}
