// Package draw renders to terminals using half-block characters and ANSI sequences.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// TextStyle describes colored overlay text.
type TextStyle struct {
	Fg   Color
	Bg   Color
	Bold bool
}

// TextSink receives overlay text positioned in 1-based canvas cells.
// ChunkWriter implements it for terminals; the desktop window has its own.
type TextSink interface {
	WriteAt(col, row int, s string)
	WriteStyledAt(col, row int, s string, style TextStyle)
}

// CenteredCol returns the 1-based column that centers s in a row of the given width.
func CenteredCol(width int, s string) int {
	col := (width-len([]rune(s)))/2 + 1
	if col < 1 {
		col = 1
	}
	return col
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
