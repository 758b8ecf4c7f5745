package object

import (
	"math"

	"github.com/tomz197/arcade/internal/draw"
)

// StarCount is the number of background stars.
const StarCount = 50

// StarField is the fixed backdrop of stars.
type StarField struct {
	Stars []draw.Point
}

// NewStarField lays out stars on a fixed lattice so the backdrop never changes between frames.
func NewStarField(screen Screen) *StarField {
	stars := make([]draw.Point, 0, StarCount)
	for i := 0; i < StarCount; i++ {
		stars = append(stars, draw.Point{
			X: math.Mod(float64(i*37), screen.Width),
			Y: math.Mod(float64(i*73), screen.Height),
		})
	}
	return &StarField{Stars: stars}
}

// Update is a no-op; stars do not move.
func (s *StarField) Update(_ UpdateContext) (bool, error) {
	return false, nil
}

// Draw renders each star as a single point.
func (s *StarField) Draw(ctx DrawContext) error {
	for _, st := range s.Stars {
		ctx.Canvas.FillRect(st.X, st.Y, 1, 1, draw.ColorWhite)
	}
	return nil
}
