package physics

import (
	"github.com/vovakirdan/tui-duel/internal/core"
)

// Kind tags what role an entity plays in a match.
type Kind int

const (
	KindBall Kind = iota
	KindPaddle
	KindBullet
	KindObstacle
	KindPlayerShooter
	KindCPUShooter
)

func (k Kind) String() string {
	switch k {
	case KindBall:
		return "ball"
	case KindPaddle:
		return "paddle"
	case KindBullet:
		return "bullet"
	case KindObstacle:
		return "obstacle"
	case KindPlayerShooter:
		return "player"
	case KindCPUShooter:
		return "cpu"
	default:
		return "unknown"
	}
}

// directional kinds travel along Dir without steering input.
func (k Kind) directional() bool {
	return k == KindBall || k == KindBullet
}

// ShapeKind selects which fields of Shape are meaningful.
type ShapeKind int

const (
	ShapeCircle ShapeKind = iota
	ShapeRect
)

// Shape is a circle (Radius) or a rectangle (W, H). Never both.
type Shape struct {
	Kind   ShapeKind
	Radius float64
	W, H   float64
}

// Circle returns a circle shape.
func Circle(r float64) Shape {
	return Shape{Kind: ShapeCircle, Radius: r}
}

// Box returns a rectangle shape.
func Box(w, h float64) Shape {
	return Shape{Kind: ShapeRect, W: w, H: h}
}

// Extent returns the half-size of the shape's bounding box.
func (s Shape) Extent() (float64, float64) {
	if s.Kind == ShapeCircle {
		return s.Radius, s.Radius
	}
	return s.W / 2, s.H / 2
}

// Rect is an axis-aligned rectangle in world units, top-left anchored.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the middle of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Entity is any simulated object: ball, paddle, bullet, obstacle or shooter.
// Pos is the center for circles and the top-left corner for rectangles.
type Entity struct {
	Kind  Kind
	Shape Shape

	Pos     Vec2
	InitPos Vec2
	Dir     Vec2
	InitDir Vec2

	Speed     float64 // current
	BaseSpeed float64
	Accel     float64 // added to Speed on each ramp event

	Color  core.Color
	Active bool

	// Bounds constrains the whole shape. An empty rect means unconstrained.
	Bounds Rect
}

func newEntity(kind Kind, pos Vec2, shape Shape, color core.Color, speed, accel float64) *Entity {
	e := &Entity{
		Kind:      kind,
		Shape:     shape,
		Pos:       pos,
		InitPos:   pos,
		Speed:     speed,
		BaseSpeed: speed,
		Accel:     accel,
		Color:     color,
		Active:    true,
	}
	if kind.directional() {
		e.SetDirection(Vec2{1, 1})
	}
	return e
}

// NewCircle creates a circle entity centered at pos. Balls and bullets start
// moving along normalize(1, 1); everything else starts at rest.
func NewCircle(kind Kind, pos Vec2, radius float64, color core.Color, speed, accel float64) *Entity {
	return newEntity(kind, pos, Circle(radius), color, speed, accel)
}

// NewRect creates a rectangle entity with its top-left corner at pos.
func NewRect(kind Kind, pos Vec2, w, h float64, color core.Color, speed, accel float64) *Entity {
	return newEntity(kind, pos, Box(w, h), color, speed, accel)
}

// SetDirection assigns a normalized direction and records it as the initial one.
func (e *Entity) SetDirection(d Vec2) {
	e.Dir = d.Normalize()
	e.InitDir = e.Dir
}

// Radius returns the circle radius, or zero for rectangles.
func (e *Entity) Radius() float64 {
	if e.Shape.Kind != ShapeCircle {
		return 0
	}
	return e.Shape.Radius
}

// Center returns the geometric center of the entity.
func (e *Entity) Center() Vec2 {
	if e.Shape.Kind == ShapeCircle {
		return e.Pos
	}
	return Vec2{e.Pos.X + e.Shape.W/2, e.Pos.Y + e.Shape.H/2}
}

// AABB returns the bounding rectangle of the entity in world space.
func (e *Entity) AABB() Rect {
	if e.Shape.Kind == ShapeCircle {
		r := e.Shape.Radius
		return Rect{e.Pos.X - r, e.Pos.Y - r, 2 * r, 2 * r}
	}
	return Rect{e.Pos.X, e.Pos.Y, e.Shape.W, e.Shape.H}
}

// Velocity returns Dir * Speed.
func (e *Entity) Velocity() Vec2 {
	return e.Dir.Scale(e.Speed)
}

// ResetToInitial serves the entity again: position and speed return to their
// starting values and the horizontal direction is flipped, so the next serve
// travels away from the side that just scored.
func (e *Entity) ResetToInitial() {
	e.Pos = e.InitPos
	e.Speed = e.BaseSpeed
	e.Dir.X = -e.Dir.X
	e.Dir = e.Dir.Normalize()
}

// Integrate advances an active entity by Dir*Speed*dt.
func (e *Entity) Integrate(dt float64) {
	if !e.Active {
		return
	}
	e.Pos = e.Pos.Add(e.Velocity().Scale(dt))
}

// Clamp keeps the whole shape inside Bounds and reports which axes were
// clamped. Unconstrained entities are never clamped.
func (e *Entity) Clamp() (clampedX, clampedY bool) {
	if e.Bounds.Empty() {
		return false, false
	}
	lo, hi := e.posRange(e.Bounds)
	nx := clamp(e.Pos.X, lo.X, hi.X)
	ny := clamp(e.Pos.Y, lo.Y, hi.Y)
	clampedX, clampedY = nx != e.Pos.X, ny != e.Pos.Y
	e.Pos = Vec2{nx, ny}
	return clampedX, clampedY
}

// InBounds reports whether the shape lies fully inside Bounds.
func (e *Entity) InBounds() bool {
	if e.Bounds.Empty() {
		return true
	}
	lo, hi := e.posRange(e.Bounds)
	return e.Pos.X >= lo.X && e.Pos.X <= hi.X && e.Pos.Y >= lo.Y && e.Pos.Y <= hi.Y
}

// posRange returns the legal min and max of Pos for the shape inside b.
func (e *Entity) posRange(b Rect) (Vec2, Vec2) {
	var lo, hi Vec2
	if e.Shape.Kind == ShapeCircle {
		r := e.Shape.Radius
		lo, hi = Vec2{b.X + r, b.Y + r}, Vec2{b.Right() - r, b.Bottom() - r}
	} else {
		lo, hi = Vec2{b.X, b.Y}, Vec2{b.Right() - e.Shape.W, b.Bottom() - e.Shape.H}
	}
	// A shape exactly as wide as its bounds may round hi below lo.
	return lo, Vec2{max(hi.X, lo.X), max(hi.Y, lo.Y)}
}

// Body is a shape placed in the world.
type Body struct {
	Shape Shape
	Pos   Vec2
}

// Body returns the collision body of the entity.
func (e *Entity) Body() Body {
	return Body{Shape: e.Shape, Pos: e.Pos}
}

// IsActive reports whether the entity takes part in the simulation.
func (e *Entity) IsActive() bool {
	return e.Active
}

// Movable is anything the integration step can advance and constrain.
type Movable interface {
	Integrate(dt float64)
	Clamp() (bool, bool)
}

// Collidable is anything that can be tested for overlap.
type Collidable interface {
	Body() Body
	IsActive() bool
}

var (
	_ Movable    = (*Entity)(nil)
	_ Collidable = (*Entity)(nil)
)

// Shooter is an entity that carries ammunition and lives.
type Shooter struct {
	Entity
	BulletsLeft int
	Lives       int
}

// NewShooter creates a circular shooter with starting ammo and lives.
func NewShooter(kind Kind, pos Vec2, radius float64, color core.Color, speed float64, bullets, lives int) *Shooter {
	return &Shooter{
		Entity:      *NewCircle(kind, pos, radius, color, speed, 0),
		BulletsLeft: max(bullets, 0),
		Lives:       max(lives, 0),
	}
}

// SpendBullet decrements ammo, floored at zero.
func (s *Shooter) SpendBullet() {
	if s.BulletsLeft > 0 {
		s.BulletsLeft--
	}
}

// HasAmmo reports whether the shooter may still fire.
func (s *Shooter) HasAmmo() bool {
	return s.BulletsLeft > 0
}

// LoseLife decrements lives, floored at zero.
func (s *Shooter) LoseLife() {
	if s.Lives > 0 {
		s.Lives--
	}
}
