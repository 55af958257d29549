package viewport

// Selection is the result of a hit test.
type Selection struct {
	Cell Cell // clicked cell, viewport-relative
	Pos  Pos  // buffer position under the cell
	Char rune // character at Pos, or the sentinel when Empty
	// Empty reports a valid cell with no character, i.e. past the end of
	// its line.
	Empty bool
}

// HitTest resolves a pixel coordinate to the character under it. ok is
// false when the coordinate is negative or below the end of the document.
func (v *Viewport) HitTest(px, py int) (sel Selection, ok bool) {
	cell, ok := v.geom.CellAt(px, py)
	if !ok {
		return Selection{}, false
	}
	return v.SelectCell(cell)
}

// SelectCell is HitTest for a cell coordinate.
func (v *Viewport) SelectCell(cell Cell) (Selection, bool) {
	if cell.Col < 0 || cell.Row < 0 {
		return Selection{}, false
	}
	var pos Pos
	if v.mode == Wrap {
		p, ok := v.Resolve(cell.Row+v.scroll.Y, cell.Col)
		if !ok {
			return Selection{}, false
		}
		pos = p
	} else {
		pos = Pos{Line: cell.Row + v.scroll.Y, Col: cell.Col + v.scroll.X}
		if pos.Line >= v.doc.Len() {
			return Selection{}, false
		}
	}

	sel := Selection{Cell: cell, Pos: pos}
	if r, ok := v.doc.Rune(pos.Line, pos.Col); ok {
		sel.Char = r
	} else {
		sel.Char = v.Sentinel
		sel.Empty = true
	}
	return sel, true
}
