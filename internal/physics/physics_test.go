package physics

import (
	"math"
	"testing"
)

func TestRectOverlaps(t *testing.T) {
	player := Rect{X: 100, Y: 500, W: 40, H: 40}
	tests := []struct {
		name string
		o    Rect
		want bool
	}{
		{"inside", Rect{X: 110, Y: 510, W: 4, H: 10}, true},
		{"partial", Rect{X: 130, Y: 490, W: 30, H: 30}, true},
		{"touching right edge", Rect{X: 140, Y: 500, W: 10, H: 10}, false},
		{"touching top edge", Rect{X: 100, Y: 490, W: 10, H: 10}, false},
		{"far", Rect{X: 400, Y: 100, W: 30, H: 30}, false},
		{"enclosing", Rect{X: 0, Y: 0, W: 800, H: 600}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := player.Overlaps(tt.o); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.o.Overlaps(player); got != tt.want {
				t.Errorf("Overlaps is not symmetric")
			}
		})
	}
}

func TestRectCenterAndClamp(t *testing.T) {
	r := Rect{X: 10, Y: 20, W: 30, H: 40}
	if x, y := r.Center(); x != 25 || y != 40 {
		t.Errorf("Center = (%v,%v)", x, y)
	}
	if got := (Rect{X: -5, W: 40}).ClampX(800).X; got != 0 {
		t.Errorf("left clamp = %v", got)
	}
	if got := (Rect{X: 790, W: 40}).ClampX(800).X; got != 760 {
		t.Errorf("right clamp = %v", got)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		angle  float64
		wx, wy float64
	}{
		{0, 20, 10},
		{math.Pi / 2, 10, 20},
		{math.Pi, 0, 10},
		{2 * math.Pi, 20, 10},
	}
	for _, tt := range tests {
		x, y := Rotate(20, 10, 10, 10, tt.angle)
		if math.Abs(x-tt.wx) > 1e-9 || math.Abs(y-tt.wy) > 1e-9 {
			t.Errorf("Rotate(%v) = (%v,%v), want (%v,%v)", tt.angle, x, y, tt.wx, tt.wy)
		}
	}
}

func TestRotatePreservesDistance(t *testing.T) {
	for k := 0; k < 12; k++ {
		x, y := Rotate(37, -4, 80, 60, float64(k)*0.7)
		if d := Distance(x, y, 80, 60); math.Abs(d-Distance(37, -4, 80, 60)) > 1e-9 {
			t.Errorf("distance changed at step %d: %v", k, d)
		}
	}
}

func TestReflectY(t *testing.T) {
	x, y := ReflectY(5, 10, 60)
	if x != 5 || y != 110 {
		t.Errorf("ReflectY = (%v,%v)", x, y)
	}
	x, y = ReflectY(x, y, 60)
	if x != 5 || y != 10 {
		t.Errorf("double reflection = (%v,%v)", x, y)
	}
}
