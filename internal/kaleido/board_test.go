package kaleido

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/tomz197/arcade/internal/draw"
	"github.com/tomz197/arcade/internal/input"
	"github.com/tomz197/arcade/internal/loop/config"
)

func near(a, b draw.Point) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestSymmetryImages(t *testing.T) {
	center := draw.Point{X: 80, Y: 60}
	p := draw.Point{X: 90, Y: 50} // (+10, -10) from the center

	tests := []struct {
		name string
		sym  Symmetry
		want []draw.Point
	}{
		{
			name: "single segment",
			sym:  Symmetry{Segments: 1, Center: center},
			want: []draw.Point{p},
		},
		{
			name: "four segments",
			sym:  Symmetry{Segments: 4, Center: center},
			want: []draw.Point{{X: 90, Y: 50}, {X: 90, Y: 70}, {X: 70, Y: 70}, {X: 70, Y: 50}},
		},
		{
			name: "two segments mirrored",
			sym:  Symmetry{Segments: 2, Mirror: true, Center: center},
			want: []draw.Point{{X: 90, Y: 50}, {X: 90, Y: 70}, {X: 70, Y: 70}, {X: 70, Y: 50}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.sym.Images(nil, p)
			if len(got) != tt.sym.Count() {
				t.Fatalf("%d images, Count() = %d", len(got), tt.sym.Count())
			}
			if len(got) != len(tt.want) {
				t.Fatalf("%d images, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if !near(got[i], tt.want[i]) {
					t.Errorf("image %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSymmetryKeepsDistanceFromCenter(t *testing.T) {
	sym := Symmetry{Segments: 7, Mirror: true, Center: draw.Point{X: 80, Y: 60}}
	p := draw.Point{X: 13, Y: 101}
	want := math.Hypot(p.X-80, p.Y-60)
	for i, q := range sym.Images(nil, p) {
		if d := math.Hypot(q.X-80, q.Y-60); math.Abs(d-want) > 1e-9 {
			t.Errorf("image %d at distance %v, want %v", i, d, want)
		}
	}
}

func TestStrokeReplicates(t *testing.T) {
	b := NewBoard(nil)
	b.BeginStroke(draw.Point{X: 100, Y: 60})
	if got, want := len(b.Segments()), 2*config.DefaultSegments; got != want {
		t.Fatalf("dot produced %d segments, want %d", got, want)
	}
	b.ExtendStroke(draw.Point{X: 110, Y: 60})
	b.ExtendStroke(draw.Point{X: 110, Y: 60}) // no movement
	b.EndStroke()
	b.ExtendStroke(draw.Point{X: 120, Y: 60}) // not drawing
	if got, want := len(b.Segments()), 4*config.DefaultSegments; got != want {
		t.Errorf("stroke produced %d segments, want %d", got, want)
	}
}

func TestSymmetryChangeAffectsOnlyNewStrokes(t *testing.T) {
	b := NewBoard(nil)
	b.BeginStroke(draw.Point{X: 100, Y: 60})
	before := append([]Segment(nil), b.Segments()...)

	b.SetSegments(3)
	b.Symmetry.Mirror = false
	b.BeginStroke(draw.Point{X: 90, Y: 60})

	segs := b.Segments()
	if len(segs) != len(before)+3 {
		t.Fatalf("%d segments, want %d", len(segs), len(before)+3)
	}
	for i := range before {
		if segs[i] != before[i] {
			t.Fatalf("segment %d changed after symmetry change", i)
		}
	}
}

func TestHueCycling(t *testing.T) {
	b := NewBoard(nil)
	first := b.Color()
	b.BeginStroke(draw.Point{X: 90, Y: 60})
	if b.Color() == first {
		t.Error("hue did not advance while cycling")
	}

	b.CycleHue = false
	fixed := b.Color()
	b.ExtendStroke(draw.Point{X: 95, Y: 60})
	if b.Color() != fixed {
		t.Error("hue advanced with cycling off")
	}
}

func TestHistoryCap(t *testing.T) {
	b := NewBoard(nil)
	b.SetSegments(config.MaxSegments)

	b.BeginStroke(draw.Point{X: 1, Y: 1})
	oldest := b.Segments()[0]
	for i := 0; b.history.len() < config.MaxStrokeSegments; i++ {
		b.ExtendStroke(draw.Point{X: float64(i%100 + 2), Y: float64(i/100 + 2)})
	}
	b.ExtendStroke(draw.Point{X: 150, Y: 110})

	segs := b.Segments()
	if got := len(segs); got != config.MaxStrokeSegments {
		t.Fatalf("history = %d segments, want %d", got, config.MaxStrokeSegments)
	}
	if segs[0] == oldest {
		t.Error("oldest segments were not dropped")
	}
	last := segs[len(segs)-1]
	if last.B.X == 0 && last.B.Y == 0 {
		t.Error("newest segment missing")
	}
}

func TestHotkeys(t *testing.T) {
	b := NewBoard(nil)
	b.BeginStroke(draw.Point{X: 90, Y: 60})

	b.Update(input.Input{Typed: []byte("++m]]]hg")}, 0)
	if b.Symmetry.Segments != config.DefaultSegments+2 {
		t.Errorf("segments = %d", b.Symmetry.Segments)
	}
	if b.Symmetry.Mirror {
		t.Error("mirror not toggled")
	}
	if b.BrushSize != config.DefaultBrushSize+3 {
		t.Errorf("brush = %v", b.BrushSize)
	}
	if b.CycleHue || !b.ShowGuides {
		t.Errorf("cycle=%v guides=%v", b.CycleHue, b.ShowGuides)
	}

	b.Update(input.Input{Typed: []byte("c")}, 0)
	if len(b.Segments()) != 0 {
		t.Error("clear kept segments")
	}
}

func TestSettingsClamp(t *testing.T) {
	b := NewBoard(nil)
	b.Update(input.Input{Typed: []byte(strings.Repeat("-", 40))}, 0)
	if b.Symmetry.Segments != config.MinSegments {
		t.Errorf("segments = %d, want %d", b.Symmetry.Segments, config.MinSegments)
	}
	b.Update(input.Input{Typed: []byte(strings.Repeat("+", 40))}, 0)
	if b.Symmetry.Segments != config.MaxSegments {
		t.Errorf("segments = %d, want %d", b.Symmetry.Segments, config.MaxSegments)
	}
	b.Update(input.Input{Typed: []byte(strings.Repeat("]", 20))}, 0)
	if b.BrushSize != config.MaxBrushSize {
		t.Errorf("brush = %v", b.BrushSize)
	}
	b.Update(input.Input{Typed: []byte(strings.Repeat("[", 20))}, 0)
	if b.BrushSize != config.MinBrushSize {
		t.Errorf("brush = %v", b.BrushSize)
	}
}

func TestPointerEvents(t *testing.T) {
	b := NewBoard(nil)
	b.Symmetry.Mirror = false
	b.SetSegments(2)

	b.Update(input.Input{Pointer: []input.PointerEvent{
		{X: 90, Y: 60, Action: input.PointerDown},
		{X: 95, Y: 60, Action: input.PointerMove},
		{X: 100, Y: 65, Action: input.PointerUp},
	}}, 0)
	// Dot, move and release each paint two copies.
	if got := len(b.Segments()); got != 6 {
		t.Fatalf("%d segments, want 6", got)
	}
	s := b.Segments()[4]
	if !near(s.A, draw.Point{X: 95, Y: 60}) || !near(s.B, draw.Point{X: 100, Y: 65}) {
		t.Errorf("last primary segment = %+v", s)
	}

	b.Update(input.Input{Pointer: []input.PointerEvent{{X: 10, Y: 10, Action: input.PointerMove}}}, 0)
	if len(b.Segments()) != 6 {
		t.Error("move without a press painted")
	}
}

func TestKeyboardPen(t *testing.T) {
	b := NewBoard(nil)
	b.Symmetry.Mirror = false
	b.SetSegments(1)

	b.Update(input.Input{Right: true}, time.Second/2)
	if p, down := b.Pen(); p.X != 80+config.PenSpeed/2 || down {
		t.Errorf("pen = %+v down=%v", p, down)
	}
	if len(b.Segments()) != 0 {
		t.Error("pen painted while up")
	}

	b.Update(input.Input{Typed: []byte(" ")}, 0)
	b.Update(input.Input{Down: true}, time.Second/4)
	if _, down := b.Pen(); !down {
		t.Fatal("pen not down")
	}
	if got := len(b.Segments()); got != 2 {
		t.Errorf("%d segments after pen dot and move, want 2", got)
	}

	b.Update(input.Input{Left: true}, time.Hour)
	if p, _ := b.Pen(); p.X != 0 {
		t.Errorf("pen not clamped: %+v", p)
	}
}

type textRecorder struct{ last string }

func (r *textRecorder) WriteAt(_, _ int, s string) {
	r.last = s
}

func (r *textRecorder) WriteStyledAt(_, _ int, s string, _ draw.TextStyle) {
	r.last = s
}

func TestDrawPaintsStrokesAndStatus(t *testing.T) {
	b := NewBoard(nil)
	b.ShowGuides = true
	b.BeginStroke(draw.Point{X: 100, Y: 60})
	b.EndStroke()

	canvas := draw.NewScaledCanvas(160, 60, b.Width, b.Height)
	canvas.SetBackground(b.Background())
	canvas.Clear()
	rec := &textRecorder{}
	if err := b.Draw(canvas, rec); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(rec.last, "segments 8") || !strings.Contains(rec.last, "mirror on") {
		t.Errorf("status = %q", rec.last)
	}

	rgba := canvas.RGBA(nil)
	painted := 0
	for i := 0; i < len(rgba); i += 4 {
		if rgba[i] != 0 || rgba[i+1] != 0 || rgba[i+2] != 0 {
			painted++
		}
	}
	if painted < 16 {
		t.Errorf("only %d pixels painted", painted)
	}
}

func TestQuit(t *testing.T) {
	b := NewBoard(nil)
	b.Update(input.Input{Quit: true}, 0)
	if !b.Done() {
		t.Error("quit not honored")
	}
}

func TestStatusFitsNarrowTerminal(t *testing.T) {
	b := NewBoard(nil)
	canvas := draw.NewScaledCanvas(80, 24, b.Width, b.Height)
	rec := &textRecorder{}
	if err := b.Draw(canvas, rec); err != nil {
		t.Fatal(err)
	}
	if len(b.Status()) <= 80 {
		t.Fatalf("status is only %d long; test needs a line wider than the terminal", len(b.Status()))
	}
	// The last cell of the last row stays free so the terminal does not scroll.
	if got := len(rec.last); got != 79 {
		t.Errorf("status written with %d cells on an 80 column terminal, want 79", got)
	}
}
