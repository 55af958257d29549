package viewport

// Painter is the character-cell grid a viewport draws into. Painting must
// not fail from the viewport's point of view.
type Painter interface {
	PaintCell(ch rune, col, row int)
	PaintHighlightedCell(ch rune, col, row int)
}

// SourcePainter is a Painter that also wants the buffer position of each
// painted character, e.g. to colour it. Render calls PaintSource in place
// of PaintCell when the painter implements it.
type SourcePainter interface {
	Painter
	PaintSource(ch rune, col, row int, pos Pos)
}

// Render draws the visible part of the document. Only cells holding a
// character are painted; the caller clears the grid beforehand.
func (v *Viewport) Render(p Painter) {
	emit := func(ch rune, col, row int, _ Pos) { p.PaintCell(ch, col, row) }
	if sp, ok := p.(SourcePainter); ok {
		emit = sp.PaintSource
	}
	switch v.mode {
	case Wrap:
		v.renderWrap(emit)
	default:
		v.renderNoWrap(emit)
	}
}

// Highlight paints the selected character inverted at its cell.
func (v *Viewport) Highlight(p Painter, sel Selection) {
	p.PaintHighlightedCell(sel.Char, sel.Cell.Col, sel.Cell.Row)
}

type emitFunc func(ch rune, col, row int, pos Pos)

// renderNoWrap maps line ScrollY+row to row, starting at column ScrollX.
func (v *Viewport) renderNoWrap(emit emitFunc) {
	for row := range v.geom.Rows {
		line := v.scroll.Y + row
		if line >= v.doc.Len() {
			return
		}
		text := v.doc.Line(line)
		for col := range v.geom.Columns {
			idx := v.scroll.X + col
			if idx >= len(text) {
				break
			}
			emit(text[idx], col, row, Pos{Line: line, Col: idx})
		}
	}
}

// renderWrap starts at the position Resolve gives for ScrollY and walks
// forward, breaking rows every Columns characters of a line.
func (v *Viewport) renderWrap(emit emitFunc) {
	start, ok := v.Resolve(v.scroll.Y, 0)
	if !ok {
		return
	}
	rows, cols := v.geom.Rows, v.geom.Columns
	row := 0
	for line := start.Line; line < v.doc.Len() && row < rows; line++ {
		text := v.doc.Line(line)
		idx := 0
		if line == start.Line {
			idx = start.Col
		}
		col := 0
		onBoundary := false
		for idx < len(text) {
			emit(text[idx], col, row, Pos{Line: line, Col: idx})
			idx++
			col++
			onBoundary = idx%cols == 0
			if onBoundary {
				row++
				col = 0
				if row >= rows {
					return
				}
			}
		}
		// A line ending exactly on a wrap boundary already advanced.
		if !onBoundary {
			row++
		}
	}
}
