// Package kaleido implements the kaleidoscope drawing toy: every stroke is repeated
// around the center of the board in rotated and mirrored copies.
package kaleido

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/loop/config"
	"github.com/tomz197/arcade/internal/physics"
)

// Segment is one painted line of the picture.
type Segment struct {
	A, B  draw.Point
	Width float64
	Color draw.Color
}

// Board is the drawing surface together with the brush and symmetry settings.
type Board struct {
	Width  float64
	Height float64

	Symmetry   Symmetry
	BrushSize  float64
	CycleHue   bool
	ShowGuides bool

	hue      float64
	history  history // Replicated segments
	scratchA []draw.Point
	scratchB []draw.Point

	drawing bool       // A pointer or pen stroke is in progress
	last    draw.Point // End of the stroke so far

	pen        draw.Point
	penDown    bool
	penVisible bool

	quit   bool
	logger *log.Logger
}

// NewBoard creates an empty board with the default brush and symmetry. logger may be nil.
func NewBoard(logger *log.Logger) *Board {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w, h := float64(config.BoardWidth), float64(config.BoardHeight)
	center := draw.Point{X: w / 2, Y: h / 2}
	return &Board{
		Width:  w,
		Height: h,
		Symmetry: Symmetry{
			Segments: config.DefaultSegments,
			Mirror:   true,
			Center:   center,
		},
		BrushSize: config.DefaultBrushSize,
		CycleHue:  true,
		pen:       center,
		logger:    logger,
	}
}

// Segments returns a copy of the painted history, oldest first.
func (b *Board) Segments() []Segment {
	return b.history.ordered()
}

// Color returns the color the next segment will be painted with.
func (b *Board) Color() draw.Color {
	return draw.HSV(b.hue, config.BrushSaturation, config.BrushValue)
}

// Pen returns the keyboard pen position and whether it is down.
func (b *Board) Pen() (draw.Point, bool) {
	return b.pen, b.penDown
}

// Clear erases the picture.
func (b *Board) Clear() {
	b.history.reset()
	b.logger.Debug("board cleared")
}

// SetSegments changes the number of rotated copies, clamped to the allowed range.
// Strokes already painted keep their symmetry.
func (b *Board) SetSegments(n int) {
	b.Symmetry.Segments = min(max(n, config.MinSegments), config.MaxSegments)
}

// SetBrushSize changes the line width, clamped to the allowed range.
func (b *Board) SetBrushSize(size float64) {
	b.BrushSize = physics.Clamp(size, config.MinBrushSize, config.MaxBrushSize)
}

// BeginStroke starts a stroke at p and paints a dot there.
func (b *Board) BeginStroke(p draw.Point) {
	b.drawing = true
	b.last = p
	b.paint(p, p)
}

// ExtendStroke paints from the end of the current stroke to p.
func (b *Board) ExtendStroke(p draw.Point) {
	if !b.drawing || p == b.last {
		return
	}
	b.paint(b.last, p)
	b.last = p
}

// EndStroke finishes the current stroke.
func (b *Board) EndStroke() {
	b.drawing = false
}

// paint replicates the segment a-b to every image and records the copies.
func (b *Board) paint(a, p draw.Point) {
	b.scratchA = b.Symmetry.Images(b.scratchA[:0], a)
	b.scratchB = b.Symmetry.Images(b.scratchB[:0], p)
	col := b.Color()
	for i := range b.scratchA {
		b.history.push(Segment{
			A:     b.scratchA[i],
			B:     b.scratchB[i],
			Width: b.BrushSize,
			Color: col,
		}, config.MaxStrokeSegments)
	}
	if b.CycleHue {
		b.hue += config.HueStep
		if b.hue >= 360 {
			b.hue -= 360
		}
	}
}

// Update applies one frame of pointer and keyboard input.
func (b *Board) Update(in input.Input, delta time.Duration) error {
	if in.Quit {
		b.quit = true
		return nil
	}

	for _, ev := range in.Pointer {
		p := draw.Point{X: ev.X, Y: ev.Y}
		switch ev.Action {
		case input.PointerDown:
			b.BeginStroke(p)
		case input.PointerMove:
			b.ExtendStroke(p)
		case input.PointerUp:
			b.ExtendStroke(p)
			b.EndStroke()
		}
	}

	for _, key := range in.Typed {
		b.handleKey(key)
	}

	b.movePen(in, delta)
	return nil
}

// handleKey applies a hotkey.
func (b *Board) handleKey(key byte) {
	switch key {
	case 'c', 'C':
		b.Clear()
	case 'm', 'M':
		b.Symmetry.Mirror = !b.Symmetry.Mirror
	case '+', '=':
		b.SetSegments(b.Symmetry.Segments + 1)
	case '-', '_':
		b.SetSegments(b.Symmetry.Segments - 1)
	case ']':
		b.SetBrushSize(b.BrushSize + 1)
	case '[':
		b.SetBrushSize(b.BrushSize - 1)
	case 'h', 'H':
		b.CycleHue = !b.CycleHue
	case 'g', 'G':
		b.ShowGuides = !b.ShowGuides
	case ' ':
		b.togglePen()
	default:
		return
	}
	b.logger.Debug("hotkey", "key", string(key), "segments", b.Symmetry.Segments,
		"mirror", b.Symmetry.Mirror, "brush", b.BrushSize)
}

// togglePen lifts or lowers the keyboard pen.
func (b *Board) togglePen() {
	b.penVisible = true
	b.penDown = !b.penDown
	if b.penDown {
		b.BeginStroke(b.pen)
	} else {
		b.EndStroke()
	}
}

// movePen moves the keyboard pen with the arrow keys, painting when it is down.
func (b *Board) movePen(in input.Input, delta time.Duration) {
	var dx, dy float64
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if dx == 0 && dy == 0 {
		return
	}
	b.penVisible = true
	step := config.PenSpeed * delta.Seconds()
	b.pen.X = physics.Clamp(b.pen.X+dx*step, 0, b.Width)
	b.pen.Y = physics.Clamp(b.pen.Y+dy*step, 0, b.Height)
	if b.penDown {
		if !b.drawing {
			b.BeginStroke(b.pen)
		}
		b.ExtendStroke(b.pen)
	}
}

// LogicalSize returns the board size.
func (b *Board) LogicalSize() (float64, float64) {
	return b.Width, b.Height
}

// Background returns the board color.
func (b *Board) Background() draw.Color {
	return draw.ColorBlack
}

// Done reports whether the user asked to quit.
func (b *Board) Done() bool {
	return b.quit
}
