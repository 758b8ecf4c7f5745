package draw

import (
	"bytes"
	"io"
	"math"
	"strings"
	"testing"
)

func pixelAt(c *Canvas, x, y int) Color {
	return c.pixels[y*c.termWidth+x]
}

func countPixels(c *Canvas, col Color) int {
	n := 0
	for _, p := range c.pixels {
		if p == col {
			n++
		}
	}
	return n
}

func TestCanvasUniformScaleAndLetterbox(t *testing.T) {
	// 40 cols x 10 rows = 40x20 pixels; logical 100x100 fits to 20x20 pixels, centered.
	c := NewScaledCanvas(40, 10, 100, 100)
	c.SetBackground(ColorNight)
	c.Clear()

	if got := c.Scale(); math.Abs(got-0.2) > 1e-9 {
		t.Fatalf("Scale = %v, want 0.2", got)
	}
	if got := countPixels(c, ColorNight); got != 20*20 {
		t.Errorf("background pixels = %d, want %d", got, 20*20)
	}
	if pixelAt(c, 0, 0) != ColorBlack {
		t.Errorf("letterbox pixel should stay black")
	}
	if pixelAt(c, 10, 0) != ColorNight {
		t.Errorf("first column of logical area should be background")
	}
}

func TestFillRectCoversAtLeastOnePixel(t *testing.T) {
	c := NewScaledCanvas(20, 10, 800, 600)
	c.Clear()

	// A 4x10 bullet is well below one pixel at this scale.
	c.FillRect(400, 300, 4, 10, ColorGreen)
	if got := countPixels(c, ColorGreen); got != 1 {
		t.Errorf("tiny rect painted %d pixels, want 1", got)
	}
}

func TestFillRectClipsToLogicalArea(t *testing.T) {
	c := NewScaledCanvas(40, 10, 100, 100)
	c.Clear()

	// Enemy spawning above the field must not bleed into the letterbox.
	c.FillRect(0, -50, 100, 60, ColorRed)
	for x := 0; x < 10; x++ {
		if pixelAt(c, x, 0) == ColorRed {
			t.Fatalf("pixel %d in letterbox painted", x)
		}
	}
	if pixelAt(c, 10, 0) != ColorRed {
		t.Errorf("visible part of rect not painted")
	}
	if pixelAt(c, 10, 5) == ColorRed {
		t.Errorf("rect painted below its bottom edge")
	}
}

func TestDrawThickLineDot(t *testing.T) {
	c := NewScaledCanvas(40, 20, 40, 40)
	c.Clear()

	p := Point{X: 20, Y: 20}
	c.DrawThickLine(p, p, 4, ColorCyan)
	n := countPixels(c, ColorCyan)
	if n < 9 || n > 16 {
		t.Errorf("dot of width 4 painted %d pixels, want a small disc", n)
	}
	if pixelAt(c, 20, 20) != ColorCyan {
		t.Errorf("dot center not painted")
	}
}

func TestRenderOnlyWritesChanges(t *testing.T) {
	c := NewScaledCanvas(8, 4, 8, 8)
	c.SetBackground(ColorNight)
	c.Clear()

	var first bytes.Buffer
	c.Render(&first)
	if first.Len() == 0 {
		t.Fatal("first render wrote nothing")
	}

	var second bytes.Buffer
	c.Clear()
	c.Render(&second)
	if second.Len() != 0 {
		t.Errorf("unchanged frame wrote %d bytes", second.Len())
	}

	var third bytes.Buffer
	c.Clear()
	c.SetFloat(1, 1, ColorRed)
	c.Render(&third)
	out := third.String()
	// Pixel (1,1) is the lower half of cell (2,1): night on top, red below.
	if !strings.Contains(out, "\033[1;2H") {
		t.Errorf("cursor move to changed cell missing: %q", out)
	}
	if !strings.Contains(out, string(BlockUpperHalf)) {
		t.Errorf("changed cell not written: %q", out)
	}
	if !strings.Contains(out, "48;2;255;0;0") {
		t.Errorf("expected red truecolor background in %q", out)
	}

	c.ForceRedraw()
	var fourth bytes.Buffer
	c.Render(&fourth)
	if fourth.Len() <= third.Len() {
		t.Errorf("ForceRedraw should repaint every cell")
	}
}

func TestTextCellsRepaintedAfterTextGoes(t *testing.T) {
	c := NewScaledCanvas(8, 4, 8, 8)
	c.Clear()
	c.Render(io.Discard)

	// Frame 1: text over cells 1..5 of row 1.
	c.Clear()
	c.MarkTextDirty(1, 1, 5)
	var withText bytes.Buffer
	c.Render(&withText)
	if !strings.Contains(withText.String(), "\033[1;1H") {
		t.Errorf("cells under text not repainted: %q", withText.String())
	}

	// Frame 2: the text is gone, so its cells are repainted to erase it.
	c.Clear()
	var erased bytes.Buffer
	c.Render(&erased)
	out := erased.String()
	if !strings.Contains(out, "\033[1;1H") || strings.Count(out, string(BlockEmpty)) != 5 {
		t.Errorf("old text not erased: %q", out)
	}

	// Frame 3: nothing changed and no text, nothing written.
	c.Clear()
	var idle bytes.Buffer
	c.Render(&idle)
	if idle.Len() != 0 {
		t.Errorf("idle frame wrote %q", idle.String())
	}
}

func TestFitText(t *testing.T) {
	c := NewScaledCanvas(10, 4, 10, 8)
	tests := []struct {
		name     string
		col, row int
		s        string
		want     string
	}{
		{"fits", 1, 1, "hello", "hello"},
		{"clipped at right edge", 8, 1, "hello", "hel"},
		{"last row keeps last cell free", 1, 4, "0123456789", "012345678"},
		{"full width on other rows", 1, 3, "0123456789xyz", "0123456789"},
		{"row below canvas", 1, 5, "hello", ""},
		{"row zero", 1, 0, "hello", ""},
		{"starts past edge", 11, 1, "hello", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FitText(tt.col, tt.row, tt.s); got != tt.want {
				t.Errorf("FitText(%d, %d, %q) = %q, want %q", tt.col, tt.row, tt.s, got, tt.want)
			}
		})
	}
}

func TestTerminalToLogicalRoundTrip(t *testing.T) {
	c := NewScaledCanvas(80, 40, 160, 120)
	c.SetOffset(3, 2)

	col, row := c.LogicalToTerminal(80, 60)
	x, y := c.TerminalToLogical(col+3, row+2)
	if math.Abs(x-80) > 2 || math.Abs(y-60) > 2 {
		t.Errorf("round trip (80,60) -> (%v,%v)", x, y)
	}
}

func TestRGBAExport(t *testing.T) {
	c := NewScaledCanvas(4, 2, 4, 4)
	c.SetBackground(ColorWhite)
	c.Clear()

	buf := c.RGBA(nil)
	if len(buf) != 4*4*4 {
		t.Fatalf("len = %d, want %d", len(buf), 64)
	}
	for i := 0; i < len(buf); i += 4 {
		if buf[i] != 0xff || buf[i+3] != 0xff {
			t.Fatalf("pixel %d = %v, want opaque white", i/4, buf[i:i+4])
		}
	}
}

func TestRenderBorderOnlyWithOffset(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)

	var none bytes.Buffer
	c.RenderBorder(&none)
	if none.Len() != 0 {
		t.Errorf("border drawn without offset")
	}

	c.SetOffset(2, 1)
	var framed bytes.Buffer
	c.RenderBorder(&framed)
	for _, corner := range []string{"┌", "┐", "└", "┘", "│"} {
		if !strings.Contains(framed.String(), corner) {
			t.Errorf("border missing %q", corner)
		}
	}
}
