package draw

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// Canvas is a color drawing buffer with 2x vertical resolution using half-block characters.
// Logical coordinates are scaled uniformly to fit the terminal; the unused margin
// (letterbox) stays black and drawing is clipped to the logical area.
type Canvas struct {
	termWidth      int     // Actual terminal columns
	termHeight     int     // Actual terminal rows
	subPixelHeight int     // termHeight * 2
	pixels         []Color // Flat slice: [y * termWidth + x]
	background     Color   // Fill color of the logical area

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scale         float64 // Pixels per logical unit (same on both axes)
	originX       float64 // Pixel position of logical (0, 0)
	originY       float64

	// Logical area in pixels, [clipX0, clipX1) x [clipY0, clipY1)
	clipX0, clipY0 int
	clipX1, clipY1 int

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Last rendered frame; only changed cells are written.
	prev      []cell
	renderBuf []byte

	// Cells covered by overlay text in this frame and in the previous one.
	// Both are repainted, so text that moved or vanished is erased.
	textNow  []bool
	textPrev []bool
}

// cell is one rendered terminal cell.
type cell struct {
	ch    rune
	fg    Color
	bg    Color
	drawn bool
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
		background:    ColorBlack,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	// Reallocate if size changed
	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Color, subPixelHeight*termWidth)
		c.prev = make([]cell, termWidth*termHeight)
		c.textNow = make([]bool, termWidth*termHeight)
		c.textPrev = make([]bool, termWidth*termHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	if c.logicalWidth <= 0 || c.logicalHeight <= 0 {
		c.scale = 1
	} else {
		c.scale = math.Min(float64(termWidth)/c.logicalWidth, float64(subPixelHeight)/c.logicalHeight)
	}
	c.originX = (float64(termWidth) - c.logicalWidth*c.scale) / 2
	c.originY = (float64(subPixelHeight) - c.logicalHeight*c.scale) / 2

	c.clipX0 = clampInt(int(math.Floor(c.originX)), 0, termWidth)
	c.clipY0 = clampInt(int(math.Floor(c.originY)), 0, subPixelHeight)
	c.clipX1 = clampInt(int(math.Ceil(c.originX+c.logicalWidth*c.scale)), 0, termWidth)
	c.clipY1 = clampInt(int(math.Ceil(c.originY+c.logicalHeight*c.scale)), 0, subPixelHeight)
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// SetBackground sets the fill color of the logical area used by Clear.
func (c *Canvas) SetBackground(bg Color) {
	c.background = bg
}

// Background returns the fill color of the logical area.
func (c *Canvas) Background() Color {
	return c.background
}

// Clear fills the logical area with the background color and the letterbox with black.
func (c *Canvas) Clear() {
	for y := 0; y < c.subPixelHeight; y++ {
		row := c.pixels[y*c.termWidth : (y+1)*c.termWidth]
		inside := y >= c.clipY0 && y < c.clipY1
		for x := range row {
			if inside && x >= c.clipX0 && x < c.clipX1 {
				row[x] = c.background
			} else {
				row[x] = ColorBlack
			}
		}
	}
}

// ForceRedraw makes the next Render write every cell, e.g. after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.prev)
}

// MarkTextDirty marks n cells starting at 1-based canvas position (col, row) as covered
// by text this frame. Render repaints them now and again on the following frame.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	r := row - 1
	if r < 0 || r >= c.termHeight {
		return
	}
	for i := 0; i < n; i++ {
		x := col - 1 + i
		if x >= 0 && x < c.termWidth {
			c.textNow[r*c.termWidth+x] = true
		}
	}
}

// FitText truncates s so that, written at 1-based (col, row), it stays inside the canvas.
// The last cell of the last row is left free so the terminal never scrolls.
// Text on a row outside the canvas comes back empty.
func (c *Canvas) FitText(col, row int, s string) string {
	if row < 1 || row > c.termHeight || col > c.termWidth {
		return ""
	}
	room := c.termWidth - max(col, 1) + 1
	if row == c.termHeight {
		room--
	}
	if room <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= room {
		return s
	}
	return string([]rune(s)[:room])
}

// setPixel sets a pixel at actual pixel coordinates, clipped to the logical area.
func (c *Canvas) setPixel(x, y int, col Color) {
	if x >= c.clipX0 && x < c.clipX1 && y >= c.clipY0 && y < c.clipY1 {
		c.pixels[y*c.termWidth+x] = col
	}
}

// toPixel maps a logical coordinate to its pixel.
func (c *Canvas) toPixel(x, y float64) (int, int) {
	return int(math.Floor(x*c.scale + c.originX)), int(math.Floor(y*c.scale + c.originY))
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, col Color) {
	px, py := c.toPixel(x, y)
	c.setPixel(px, py, col)
}

// FillRect fills an axis-aligned logical rectangle. Any non-empty rectangle covers at
// least one pixel, so small objects never vanish at low resolutions.
func (c *Canvas) FillRect(x, y, w, h float64, col Color) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x*c.scale + c.originX))
	y0 := int(math.Floor(y*c.scale + c.originY))
	x1 := int(math.Ceil((x+w)*c.scale + c.originX))
	y1 := int(math.Ceil((y+h)*c.scale + c.originY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	x0 = clampInt(x0, c.clipX0, c.clipX1)
	x1 = clampInt(x1, c.clipX0, c.clipX1)
	y0 = clampInt(y0, c.clipY0, c.clipY1)
	y1 = clampInt(y1, c.clipY0, c.clipY1)

	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = col
		}
	}
}

// DrawLine draws a one pixel wide line on the canvas.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, col Color) {
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)
	bresenham(x1, y1, x2, y2, func(x, y int) {
		c.setPixel(x, y, col)
	})
}

// DrawThickLine draws a line with round caps; width is in logical units.
// A zero-length line paints a single dot.
func (c *Canvas) DrawThickLine(p1, p2 Point, width float64, col Color) {
	r := width * c.scale / 2
	if r < 0.75 {
		c.DrawLine(p1, p2, col)
		return
	}
	x1, y1 := c.toPixel(p1.X, p1.Y)
	x2, y2 := c.toPixel(p2.X, p2.Y)
	ri := int(math.Ceil(r))
	r2 := r * r
	bresenham(x1, y1, x2, y2, func(x, y int) {
		for dy := -ri; dy <= ri; dy++ {
			for dx := -ri; dx <= ri; dx++ {
				if float64(dx*dx+dy*dy) <= r2 {
					c.setPixel(x+dx, y+dy, col)
				}
			}
		}
	})
}

// bresenham visits every pixel on the line from (x1,y1) to (x2,y2).
func bresenham(x1, y1, x2, y2 int, plot func(x, y int)) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		plot(x1, y1)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1500 bytes matches typical MTU size for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render writes the cells that changed since the previous Render using half-block
// characters with truecolor foreground (upper pixel) and background (lower pixel).
func (c *Canvas) Render(w io.Writer) {
	buf := c.renderBuf[:0]
	lastRow, lastCol := -1, -1
	var cur cell
	haveSGR := false

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := topOffset + c.termWidth

		for col := 0; col < c.termWidth; col++ {
			next := makeCell(c.pixels[topOffset+col], c.pixels[bottomOffset+col])
			idx := row*c.termWidth + col
			if c.prev[idx] == next && !c.textNow[idx] && !c.textPrev[idx] {
				continue
			}
			c.prev[idx] = next

			if row != lastRow || col != lastCol+1 {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row+1+c.offsetRow), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(col+1+c.offsetCol), 10)
				buf = append(buf, 'H')
			}
			if !haveSGR || next.fg != cur.fg || next.bg != cur.bg {
				buf = append(buf, "\033["...)
				buf = next.fg.appendFg(buf)
				buf = append(buf, ';')
				buf = next.bg.appendBg(buf)
				buf = append(buf, 'm')
				cur = next
				haveSGR = true
			}
			buf = utf8.AppendRune(buf, next.ch)
			lastRow, lastCol = row, col
		}
	}
	if haveSGR {
		buf = append(buf, ColorReset...)
	}
	c.renderBuf = buf
	c.textPrev, c.textNow = c.textNow, c.textPrev
	clear(c.textNow)

	// Write output in chunks for optimal network flow
	for len(buf) > 0 {
		chunk := buf
		if len(chunk) > maxChunkSize {
			chunk = buf[:maxChunkSize]
		}
		w.Write(chunk)
		buf = buf[len(chunk):]
	}
}

// makeCell picks the half-block glyph and colors for a pair of vertical pixels.
func makeCell(top, bottom Color) cell {
	if top == bottom {
		return cell{ch: BlockEmpty, fg: top, bg: top, drawn: true}
	}
	return cell{ch: BlockUpperHalf, fg: top, bg: bottom, drawn: true}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf []byte
	horizontal := func(row int, l, r string) {
		buf = append(buf, "\033["...)
		buf = strconv.AppendInt(buf, int64(row), 10)
		buf = append(buf, ';')
		if hasH {
			buf = strconv.AppendInt(buf, int64(left), 10)
			buf = append(buf, 'H')
			buf = append(buf, l...)
		} else {
			buf = strconv.AppendInt(buf, int64(c.offsetCol+1), 10)
			buf = append(buf, 'H')
		}
		for i := 0; i < c.termWidth; i++ {
			buf = append(buf, "─"...)
		}
		if hasH {
			buf = append(buf, r...)
		}
	}

	if hasV {
		horizontal(top, "┌", "┐")
		horizontal(bottom, "└", "┘")
	}

	if hasH {
		for row := c.offsetRow + 1; row <= c.offsetRow+c.termHeight; row++ {
			for _, colPos := range [2]int{left, right} {
				buf = append(buf, "\033["...)
				buf = strconv.AppendInt(buf, int64(row), 10)
				buf = append(buf, ';')
				buf = strconv.AppendInt(buf, int64(colPos), 10)
				buf = append(buf, 'H')
				buf = append(buf, "│"...)
			}
		}
	}

	w.Write(buf)
}

// LogicalWidth returns the logical width (target resolution).
func (c *Canvas) LogicalWidth() float64 {
	return c.logicalWidth
}

// LogicalHeight returns the logical height (target resolution).
func (c *Canvas) LogicalHeight() float64 {
	return c.logicalHeight
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// PixelHeight returns the number of pixel rows (two per terminal row).
func (c *Canvas) PixelHeight() int {
	return c.subPixelHeight
}

// Scale returns the number of pixels per logical unit.
func (c *Canvas) Scale() float64 {
	return c.scale
}

// LogicalToTerminal converts logical coordinates to 1-based canvas cell position (col, row).
// This is useful for placing text overlays at positions matching canvas-drawn objects.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px, py := c.toPixel(x, y)
	return px + 1, py/2 + 1
}

// TerminalToLogical converts a 1-based absolute terminal position (as reported by
// mouse events) to logical coordinates at the center of that cell.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64) {
	px := float64(col-1-c.offsetCol) + 0.5
	py := float64((row-1-c.offsetRow)*2) + 1
	return c.PixelToLogical(px, py)
}

// PixelToLogical converts pixel coordinates to logical coordinates.
func (c *Canvas) PixelToLogical(px, py float64) (x, y float64) {
	if c.scale == 0 {
		return 0, 0
	}
	return (px - c.originX) / c.scale, (py - c.originY) / c.scale
}

// RGBA writes the canvas pixels as 8-bit RGBA into dst, growing it when needed.
// The image is TerminalWidth() x PixelHeight().
func (c *Canvas) RGBA(dst []byte) []byte {
	n := len(c.pixels) * 4
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i, p := range c.pixels {
		j := i * 4
		dst[j+0] = p.R
		dst[j+1] = p.G
		dst[j+2] = p.B
		dst[j+3] = 0xFF
	}
	return dst
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
