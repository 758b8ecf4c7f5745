// Package physics provides collision detection and plane geometry utilities.
package physics

import "math"

// Rect is an axis-aligned box with its top-left corner at (X, Y).
type Rect struct {
	X, Y, W, H float64
}

// Overlaps reports whether r and o intersect. Boxes that only share an edge do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the middle of the box.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClampX keeps the box horizontally inside [0, width].
func (r Rect) ClampX(width float64) Rect {
	r.X = Clamp(r.X, 0, width-r.W)
	return r
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance calculates the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// Rotate turns (x, y) by angle radians around (cx, cy).
func Rotate(x, y, cx, cy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx := x - cx
	dy := y - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}

// ReflectY mirrors (x, y) across the horizontal line through cy.
func ReflectY(x, y, cy float64) (float64, float64) {
	return x, 2*cy - y
}
