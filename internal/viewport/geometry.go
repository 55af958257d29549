package viewport

import (
	"errors"
	"fmt"
)

// ErrDegenerateViewport is returned when the viewport cannot hold a single
// cell in either axis.
var ErrDegenerateViewport = errors.New("viewport smaller than one cell")

// Geometry is the cell grid derived from a viewport's pixel size. It is
// recomputed on resize and carries no other state.
type Geometry struct {
	CellWidth  int // pixels per cell, horizontally
	CellHeight int // pixels per cell, vertically
	Rows       int // visible rows
	Columns    int // visible columns
}

// ComputeGeometry derives the visible grid for a viewport of widthPx by
// heightPx pixels and cells of cellWidthPx by cellHeightPx pixels.
func ComputeGeometry(widthPx, heightPx, cellWidthPx, cellHeightPx int) (Geometry, error) {
	if cellWidthPx <= 0 || cellHeightPx <= 0 {
		return Geometry{}, fmt.Errorf("cell size %dx%d: %w", cellWidthPx, cellHeightPx, ErrDegenerateViewport)
	}
	g := Geometry{
		CellWidth:  cellWidthPx,
		CellHeight: cellHeightPx,
		Rows:       heightPx / cellHeightPx,
		Columns:    widthPx / cellWidthPx,
	}
	if err := g.validate(); err != nil {
		return Geometry{}, fmt.Errorf("viewport %dx%d px: %w", widthPx, heightPx, err)
	}
	return g, nil
}

func (g Geometry) validate() error {
	if g.CellWidth <= 0 || g.CellHeight <= 0 || g.Rows < 1 || g.Columns < 1 {
		return ErrDegenerateViewport
	}
	return nil
}

// CellAt converts a pixel coordinate to the cell containing it. The result
// is not bounded by the visible grid; negative coordinates miss.
func (g Geometry) CellAt(px, py int) (Cell, bool) {
	if px < 0 || py < 0 || g.CellWidth <= 0 || g.CellHeight <= 0 {
		return Cell{}, false
	}
	return Cell{Col: px / g.CellWidth, Row: py / g.CellHeight}, true
}
