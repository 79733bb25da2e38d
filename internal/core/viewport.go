package core

import "math"

// Viewport maps a continuous world rectangle (0..WorldW, 0..WorldH) onto a
// cell rectangle of the screen. Shapes always cover at least one cell so
// small projectiles stay visible on coarse terminals.
type Viewport struct {
	WorldW, WorldH float64
	Area           Rect
}

// NewViewport creates a viewport for a world of the given size drawn into area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{WorldW: worldW, WorldH: worldH, Area: area}
}

func (v Viewport) scale() (float64, float64) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	return float64(v.Area.W) / v.WorldW, float64(v.Area.H) / v.WorldH
}

// ToCell converts a world point to a screen cell, clamped to the area.
func (v Viewport) ToCell(x, y float64) (int, int) {
	sx, sy := v.scale()
	cx := v.Area.X + int(math.Floor(x*sx))
	cy := v.Area.Y + int(math.Floor(y*sy))
	return Clamp(cx, v.Area.X, Max(v.Area.Right()-1, v.Area.X)),
		Clamp(cy, v.Area.Y, Max(v.Area.Bottom()-1, v.Area.Y))
}

// cellSpan converts a world interval [lo, hi] on one axis to an inclusive cell range.
func cellSpan(lo, hi, scale float64, origin, size int) (int, int) {
	a := origin + int(math.Floor(lo*scale))
	b := origin + int(math.Ceil(hi*scale)) - 1
	if b < a {
		b = a
	}
	a = Clamp(a, origin, origin+size-1)
	b = Clamp(b, origin, origin+size-1)
	return a, b
}

// FillRect draws a world-space rectangle with top-left (x, y).
func (v Viewport) FillRect(s *Screen, x, y, w, h float64, r rune, c Color) {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return
	}
	sx, sy := v.scale()
	x0, x1 := cellSpan(x, x+w, sx, v.Area.X, v.Area.W)
	y0, y1 := cellSpan(y, y+h, sy, v.Area.Y, v.Area.H)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.SetColor(cx, cy, r, c)
		}
	}
}

// FillCircle draws a world-space circle. Cells whose centers fall inside
// the circle are filled; the center cell is always drawn.
func (v Viewport) FillCircle(s *Screen, x, y, radius float64, r rune, c Color) {
	if v.Area.W <= 0 || v.Area.H <= 0 {
		return
	}
	sx, sy := v.scale()
	if sx == 0 || sy == 0 {
		return
	}
	x0, x1 := cellSpan(x-radius, x+radius, sx, v.Area.X, v.Area.W)
	y0, y1 := cellSpan(y-radius, y+radius, sy, v.Area.Y, v.Area.H)
	for cy := y0; cy <= y1; cy++ {
		wy := (float64(cy-v.Area.Y) + 0.5) / sy
		for cx := x0; cx <= x1; cx++ {
			wx := (float64(cx-v.Area.X) + 0.5) / sx
			dx, dy := wx-x, wy-y
			if dx*dx+dy*dy <= radius*radius {
				s.SetColor(cx, cy, r, c)
			}
		}
	}
	cx, cy := v.ToCell(x, y)
	s.SetColor(cx, cy, r, c)
}

// Line draws a world-space line segment.
func (v Viewport) Line(s *Screen, x0, y0, x1, y1 float64, r rune, c Color) {
	ax, ay := v.ToCell(x0, y0)
	bx, by := v.ToCell(x1, y1)
	s.DrawLine(ax, ay, bx, by, r, c)
}
