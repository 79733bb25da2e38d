package physics

import "github.com/vovakirdan/tui-duel/internal/core"

// Bullet is a pooled projectile tagged with the kind of shooter that fired it.
type Bullet struct {
	Entity
	Owner Kind
}

// Pool is a fixed-capacity arena of bullets. Slots are reused, never
// allocated per shot. Spawn scans for the first inactive slot, so spawn
// order is stable and deterministic.
type Pool struct {
	slots []Bullet
}

// NewPool creates a pool with capacity inactive slots.
func NewPool(capacity int) *Pool {
	return &Pool{slots: make([]Bullet, max(capacity, 0))}
}

// Cap returns the number of slots.
func (p *Pool) Cap() int {
	return len(p.slots)
}

// Spawn activates the first free slot as a bullet. It returns the slot
// index, or -1 when the pool is saturated; callers treat spawning as
// best-effort.
func (p *Pool) Spawn(owner Kind, pos, dir Vec2, radius, speed float64, color core.Color) int {
	for i := range p.slots {
		if p.slots[i].Active {
			continue
		}
		b := &p.slots[i]
		b.Entity = *NewCircle(KindBullet, pos, radius, color, speed, 0)
		b.SetDirection(dir)
		b.Owner = owner
		return i
	}
	return -1
}

// At returns the slot at index i.
func (p *Pool) At(i int) *Bullet {
	return &p.slots[i]
}

// Active returns the number of live bullets.
func (p *Pool) Active() int {
	n := 0
	for i := range p.slots {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Each calls fn for every active bullet in slot order. fn may deactivate
// the bullet it is given; later bullets are still visited.
func (p *Pool) Each(fn func(i int, b *Bullet)) {
	for i := range p.slots {
		if p.slots[i].Active {
			fn(i, &p.slots[i])
		}
	}
}

// Clear deactivates every slot.
func (p *Pool) Clear() {
	for i := range p.slots {
		p.slots[i] = Bullet{}
	}
}
