package object

import (
	"github.com/tomz197/arcade/internal/draw"
)

// Label is a line of overlay text. Coordinates are 1-based terminal cells.
// A zero Col centers the text on the canvas.
type Label struct {
	Col   int
	Row   int
	Value string
	Style *draw.TextStyle
}

// Draw writes the label, cut to the canvas width, and marks the cells it covers so the canvas repaints them later.
func (l Label) Draw(ctx DrawContext) error {
	if l.Value == "" || ctx.Text == nil {
		return nil
	}
	col := l.Col
	if col == 0 {
		col = draw.CenteredCol(ctx.Canvas.TerminalWidth(), l.Value)
	}
	row := l.Row
	if row < 1 {
		row = 1
	}
	value := ctx.Canvas.FitText(col, row, l.Value)
	if value == "" {
		return nil
	}
	if l.Style != nil {
		ctx.Text.WriteStyledAt(col, row, value, *l.Style)
	} else {
		ctx.Text.WriteAt(col, row, value)
	}
	ctx.Canvas.MarkTextDirty(col, row, len([]rune(value)))
	return nil
}

// Update is a no-op for static text.
func (l Label) Update(_ UpdateContext) (bool, error) {
	return false, nil
}
