package kaleido

import (
	"math"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

// Symmetry maps one point to all of its kaleidoscope images.
// Image k is the point rotated by 2πk/Segments around the center. With Mirror set,
// the point reflected across the horizontal line through the center is rotated the same way,
// doubling the number of images.
type Symmetry struct {
	Segments int
	Mirror   bool
	Center   draw.Point
}

// Count returns the number of images of each point.
func (s Symmetry) Count() int {
	if s.Mirror {
		return 2 * s.Segments
	}
	return s.Segments
}

// Angle returns the rotation of segment k in radians.
func (s Symmetry) Angle(k int) float64 {
	return 2 * math.Pi * float64(k) / float64(s.Segments)
}

// Images appends the images of p to dst and returns it. For each segment the rotated
// point comes first, followed by its mirror image when Mirror is set.
func (s Symmetry) Images(dst []draw.Point, p draw.Point) []draw.Point {
	c := s.Center
	mx, my := physics.ReflectY(p.X, p.Y, c.Y)
	for k := 0; k < s.Segments; k++ {
		a := s.Angle(k)
		x, y := physics.Rotate(p.X, p.Y, c.X, c.Y, a)
		dst = append(dst, draw.Point{X: x, Y: y})
		if s.Mirror {
			x, y = physics.Rotate(mx, my, c.X, c.Y, a)
			dst = append(dst, draw.Point{X: x, Y: y})
		}
	}
	return dst
}
