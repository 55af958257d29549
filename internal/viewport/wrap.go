package viewport

// RowsFor returns how many visual rows a line of lineLen characters takes
// when wrapped at cols columns. An empty line still takes one row.
func RowsFor(lineLen, cols int) int {
	if lineLen < 1 {
		lineLen = 1
	}
	return (lineLen + cols - 1) / cols
}

// TotalRows returns the height of the whole document in visual rows under
// the current mode.
func (v *Viewport) TotalRows() int {
	if v.mode != Wrap {
		return v.doc.Len()
	}
	total := 0
	for _, l := range v.doc.Lines() {
		total += RowsFor(len(l), v.geom.Columns)
	}
	return total
}

// Resolve finds the buffer position shown at column colOffset of absolute
// visual row target in wrap layout. Render uses it with colOffset 0 to find
// the top-left character; hit testing passes the clicked column so that a
// click lands mid-row. ok is false when target is past the end of the
// document.
func (v *Viewport) Resolve(target, colOffset int) (pos Pos, ok bool) {
	if target < 0 {
		return Pos{}, false
	}
	cols := v.geom.Columns
	row := 0 // first visual row of the current line
	for line, text := range v.doc.Lines() {
		next := row + RowsFor(len(text), cols)
		switch {
		case next == target:
			// Target row is the first row of the following line.
			if line+1 >= v.doc.Len() {
				return Pos{}, false
			}
			return Pos{Line: line + 1, Col: colOffset}, true
		case next > target:
			return Pos{Line: line, Col: colOffset + (target-row)*cols}, true
		}
		row = next
	}
	return Pos{}, false
}

// Locate is the inverse of Resolve: it returns the absolute visual row and
// the column within that row where pos is drawn in wrap layout. ok is false
// for positions outside the document or past a line's last row.
func (v *Viewport) Locate(pos Pos) (row, col int, ok bool) {
	if pos.Line < 0 || pos.Line >= v.doc.Len() || pos.Col < 0 {
		return 0, 0, false
	}
	cols := v.geom.Columns
	sub := pos.Col / cols
	if sub >= RowsFor(v.doc.LineLen(pos.Line), cols) {
		return 0, 0, false
	}
	for line, text := range v.doc.Lines() {
		if line == pos.Line {
			break
		}
		row += RowsFor(len(text), cols)
	}
	return row + sub, pos.Col % cols, true
}
