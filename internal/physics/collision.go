package physics

// CircleRect reports whether a circle overlaps a rectangle.
// The circle center is clamped onto the rectangle to find the closest point;
// they collide iff that point is within the radius. This rejects the false
// positives an expanded-AABB test gives near corners. A circle without area
// never collides.
func CircleRect(center Vec2, radius float64, r Rect) bool {
	if radius <= 0 {
		return false
	}
	closest := Vec2{
		X: clamp(center.X, r.X, r.Right()),
		Y: clamp(center.Y, r.Y, r.Bottom()),
	}
	return center.Sub(closest).LenSq() <= radius*radius
}

// CircleCircle reports whether two circles overlap.
func CircleCircle(a Vec2, ra float64, b Vec2, rb float64) bool {
	sum := ra + rb
	return a.Sub(b).LenSq() <= sum*sum
}

// RectRect reports whether two rectangles overlap (touching edges count).
func RectRect(a, b Rect) bool {
	return a.X <= b.Right() && b.X <= a.Right() &&
		a.Y <= b.Bottom() && b.Y <= a.Bottom()
}

// Collide dispatches to the predicate matching both shapes.
func Collide(a, b Body) bool {
	switch {
	case a.Shape.Kind == ShapeCircle && b.Shape.Kind == ShapeCircle:
		return CircleCircle(a.Pos, a.Shape.Radius, b.Pos, b.Shape.Radius)
	case a.Shape.Kind == ShapeCircle:
		return CircleRect(a.Pos, a.Shape.Radius, b.rect())
	case b.Shape.Kind == ShapeCircle:
		return CircleRect(b.Pos, b.Shape.Radius, a.rect())
	default:
		return RectRect(a.rect(), b.rect())
	}
}

// Overlaps reports whether two collidables touch. Inactive entities never do.
func Overlaps(a, b Collidable) bool {
	if !a.IsActive() || !b.IsActive() {
		return false
	}
	return Collide(a.Body(), b.Body())
}

func (b Body) rect() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.Shape.W, H: b.Shape.H}
}
