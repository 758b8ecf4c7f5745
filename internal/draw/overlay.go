package draw

// TextBuffer collects overlay text during a frame so it can be written after the canvas.
// Text written before Render would be painted over by the cells it covers.
type TextBuffer struct {
	ops []textOp
}

type textOp struct {
	col, row int
	s        string
	style    TextStyle
	styled   bool
}

func (b *TextBuffer) WriteAt(col, row int, s string) {
	b.ops = append(b.ops, textOp{col: col, row: row, s: s})
}

func (b *TextBuffer) WriteStyledAt(col, row int, s string, style TextStyle) {
	b.ops = append(b.ops, textOp{col: col, row: row, s: s, style: style, styled: true})
}

// Len returns the number of buffered writes.
func (b *TextBuffer) Len() int {
	return len(b.ops)
}

// FlushTo replays the buffered writes into dst in order and empties the buffer.
func (b *TextBuffer) FlushTo(dst TextSink) {
	for _, op := range b.ops {
		if op.styled {
			dst.WriteStyledAt(op.col, op.row, op.s, op.style)
		} else {
			dst.WriteAt(op.col, op.row, op.s)
		}
	}
	clear(b.ops)
	b.ops = b.ops[:0]
}

var _ TextSink = (*TextBuffer)(nil)
