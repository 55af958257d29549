package viewport

// MaxScrollY is the largest vertical offset; the last visual row may
// scroll up to the top of the viewport but no further.
func (v *Viewport) MaxScrollY() int {
	return max(0, v.TotalRows()-1)
}

// MaxScrollX is the largest horizontal offset. It is always 0 in wrap mode.
func (v *Viewport) MaxScrollX() int {
	if v.mode == Wrap {
		return 0
	}
	return max(0, v.doc.MaxLineLen()-1)
}

// Bottom returns the vertical offset that shows the last page.
func (v *Viewport) Bottom() int {
	return max(0, v.TotalRows()-v.geom.Rows)
}

// SetScrollY sets the vertical offset, clamped to [0, MaxScrollY].
func (v *Viewport) SetScrollY(y int) {
	v.scroll.Y = clamp(y, 0, v.MaxScrollY())
}

// SetScrollX sets the horizontal offset, clamped to [0, MaxScrollX]. In
// wrap mode any non-zero offset is rejected with ErrWrapScrollX.
func (v *Viewport) SetScrollX(x int) error {
	if v.mode == Wrap && x != 0 {
		return ErrWrapScrollX
	}
	v.scroll.X = clamp(x, 0, v.MaxScrollX())
	return nil
}

// ScrollBy moves both offsets by a delta. A horizontal delta in wrap mode
// returns ErrWrapScrollX and leaves the state unchanged.
func (v *Viewport) ScrollBy(dy, dx int) error {
	if v.mode == Wrap && dx != 0 {
		return ErrWrapScrollX
	}
	v.SetScrollY(v.scroll.Y + dy)
	return v.SetScrollX(v.scroll.X + dx)
}

// SetMode switches the layout. The character at the top-left stays at the
// top of the viewport; switching to wrap mode drops the horizontal offset.
func (v *Viewport) SetMode(m Mode) {
	if m == v.mode {
		return
	}
	top, ok := v.topPos()
	v.mode = m
	if m == Wrap {
		v.scroll.X = 0
	}
	v.reanchor(top, ok)
}

// SetGeometry applies a resize. In wrap mode the top line stays at the top
// even though the row count of every line may change.
func (v *Viewport) SetGeometry(g Geometry) error {
	if err := g.validate(); err != nil {
		return err
	}
	top, ok := v.topPos()
	v.geom = g
	v.reanchor(top, ok)
	return nil
}

// topPos returns the buffer position drawn at the top-left cell.
func (v *Viewport) topPos() (Pos, bool) {
	if v.mode == Wrap {
		return v.Resolve(v.scroll.Y, 0)
	}
	if v.scroll.Y >= v.doc.Len() {
		return Pos{}, false
	}
	return Pos{Line: v.scroll.Y, Col: 0}, true
}

func (v *Viewport) reanchor(top Pos, ok bool) {
	if !ok {
		v.SetScrollY(v.scroll.Y)
		v.scroll.X = clamp(v.scroll.X, 0, v.MaxScrollX())
		return
	}
	y := top.Line
	if v.mode == Wrap {
		// The anchor column may not start a row under the new width;
		// use the row that contains it.
		if row, _, found := v.Locate(top); found {
			y = row
		}
	}
	v.SetScrollY(y)
	v.scroll.X = clamp(v.scroll.X, 0, v.MaxScrollX())
}

func clamp(n, lo, hi int) int {
	return max(lo, min(n, hi))
}
