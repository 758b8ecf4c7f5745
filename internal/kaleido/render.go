package kaleido

import (
	"fmt"
	"math"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/physics"
)

var (
	hudStyle = draw.TextStyle{Fg: draw.ColorDimGray, Bg: draw.ColorBlack}
	penColor = draw.ColorWhite
)

// Draw paints the guides, the picture, the pen and the status line.
func (b *Board) Draw(canvas *draw.Canvas, text draw.TextSink) error {
	if b.ShowGuides {
		b.drawGuides(canvas)
	}
	b.history.each(func(s Segment) {
		canvas.DrawThickLine(s.A, s.B, s.Width, s.Color)
	})
	if b.penVisible {
		b.drawPen(canvas)
	}
	if text != nil {
		row := canvas.TerminalHeight()
		if status := canvas.FitText(1, row, b.Status()); status != "" {
			text.WriteStyledAt(1, row, status, hudStyle)
			canvas.MarkTextDirty(1, row, len(status))
		}
	}
	return nil
}

// drawGuides draws the boundaries between rotated copies as faint spokes.
func (b *Board) drawGuides(canvas *draw.Canvas) {
	c := b.Symmetry.Center
	radius := math.Hypot(b.Width, b.Height)
	for k := 0; k < b.Symmetry.Segments; k++ {
		x, y := physics.Rotate(c.X+radius, c.Y, c.X, c.Y, b.Symmetry.Angle(k))
		canvas.DrawLine(c, draw.Point{X: x, Y: y}, draw.ColorGuide)
	}
}

// drawPen marks the keyboard pen with a small cross, filled when the pen is down.
func (b *Board) drawPen(canvas *draw.Canvas) {
	p := b.pen
	const arm = 2.0
	canvas.DrawLine(draw.Point{X: p.X - arm, Y: p.Y}, draw.Point{X: p.X + arm, Y: p.Y}, penColor)
	canvas.DrawLine(draw.Point{X: p.X, Y: p.Y - arm}, draw.Point{X: p.X, Y: p.Y + arm}, penColor)
	if b.penDown {
		canvas.DrawThickLine(p, p, b.BrushSize, b.Color())
	}
}

// Status returns the one-line summary of the current settings and hotkeys.
func (b *Board) Status() string {
	mirror := "off"
	if b.Symmetry.Mirror {
		mirror = "on"
	}
	mode := "fixed"
	if b.CycleHue {
		mode = "cycling"
	}
	return fmt.Sprintf(" segments %d  mirror %s  brush %.0f  color %s | +/- [ ] m h g c, arrows+space pen, q quit",
		b.Symmetry.Segments, mirror, b.BrushSize, mode)
}
