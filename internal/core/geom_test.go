package core

import "testing"

func TestRectInset(t *testing.T) {
	r := NewRect(0, 0, 10, 6).Inset(1)
	if r != NewRect(1, 1, 8, 4) {
		t.Errorf("Inset(1) = %+v", r)
	}

	tiny := NewRect(0, 0, 1, 1).Inset(2)
	if tiny.W != 0 || tiny.H != 0 {
		t.Errorf("Inset on tiny rect = %+v, expected zero size", tiny)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, lo, hi, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tt := range tests {
		if got := Clamp(tt.val, tt.lo, tt.hi); got != tt.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tt.val, tt.lo, tt.hi, got, tt.expected)
		}
	}
}

func TestViewportToCell(t *testing.T) {
	v := NewViewport(100, 50, NewRect(1, 1, 10, 5))

	tests := []struct {
		x, y   float64
		cx, cy int
	}{
		{0, 0, 1, 1},
		{99.9, 49.9, 10, 5},
		{50, 25, 6, 3},
		{-20, 500, 1, 5}, // clamped into the area
	}

	for _, tt := range tests {
		cx, cy := v.ToCell(tt.x, tt.y)
		if cx != tt.cx || cy != tt.cy {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
		}
	}
}

func TestViewportSmallShapesVisible(t *testing.T) {
	s := NewScreen(20, 10)
	v := NewViewport(1000, 500, NewRect(0, 0, 20, 10))

	v.FillCircle(s, 500, 250, 1, 'o', ColorWhite)
	if s.Get(10, 5) != 'o' {
		t.Errorf("tiny circle not drawn, screen:\n%s", s.String())
	}

	v.FillRect(s, 0, 0, 2, 2, '#', ColorWhite)
	if s.Get(0, 0) != '#' {
		t.Error("tiny rect not drawn")
	}
}

func TestViewportFillRectSpan(t *testing.T) {
	s := NewScreen(10, 10)
	v := NewViewport(10, 10, NewRect(0, 0, 10, 10))

	v.FillRect(s, 2, 3, 2, 4, '#', ColorWhite)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			inside := x >= 2 && x < 4 && y >= 3 && y < 7
			if (s.Get(x, y) == '#') != inside {
				t.Fatalf("cell (%d, %d) filled=%v, expected %v", x, y, !inside, inside)
			}
		}
	}
}
