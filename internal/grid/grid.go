// Package grid is an in-memory character-cell surface that viewports paint
// into. Hosts turn it into terminal output.
package grid

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/glance/internal/viewport"
)

// Cell is one character cell.
type Cell struct {
	Rune        rune // 0 when nothing was painted
	Highlighted bool
	Source      viewport.Pos // buffer position of Rune
	HasSource   bool
}

// Grid is a cols by rows surface. Paints outside the surface are dropped.
type Grid struct {
	cols, rows int
	cells      []Cell
}

// New returns a blank grid.
func New(cols, rows int) *Grid {
	g := &Grid{}
	g.Resize(cols, rows)
	return g
}

// Resize changes the surface size and clears it.
func (g *Grid) Resize(cols, rows int) {
	g.cols, g.rows = max(cols, 0), max(rows, 0)
	g.cells = make([]Cell, g.cols*g.rows)
}

// Clear blanks every cell.
func (g *Grid) Clear() {
	clear(g.cells)
}

func (g *Grid) Cols() int { return g.cols }
func (g *Grid) Rows() int { return g.rows }

// At returns the cell at (col, row), or a blank cell when out of range.
func (g *Grid) At(col, row int) Cell {
	if !g.inside(col, row) {
		return Cell{}
	}
	return g.cells[row*g.cols+col]
}

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && row >= 0 && col < g.cols && row < g.rows
}

// PaintCell implements viewport.Painter.
func (g *Grid) PaintCell(ch rune, col, row int) {
	if g.inside(col, row) {
		g.cells[row*g.cols+col] = Cell{Rune: ch}
	}
}

// PaintHighlightedCell implements viewport.Painter. The buffer position
// of an already painted cell is kept.
func (g *Grid) PaintHighlightedCell(ch rune, col, row int) {
	if !g.inside(col, row) {
		return
	}
	c := &g.cells[row*g.cols+col]
	c.Rune = ch
	c.Highlighted = true
}

// PaintSource implements viewport.SourcePainter.
func (g *Grid) PaintSource(ch rune, col, row int, pos viewport.Pos) {
	if g.inside(col, row) {
		g.cells[row*g.cols+col] = Cell{Rune: ch, Source: pos, HasSource: true}
	}
}

// Row returns row as plain text, blank cells as spaces.
func (g *Grid) Row(row int) string {
	var b strings.Builder
	for col := range g.cols {
		b.WriteRune(Printable(g.At(col, row).Rune))
	}
	return b.String()
}

// String returns the grid as plain text, one line per row.
func (g *Grid) String() string {
	lines := make([]string, g.rows)
	for row := range g.rows {
		lines[row] = g.Row(row)
	}
	return strings.Join(lines, "\n")
}

// WidePlaceholder is drawn for runes that do not take exactly one
// terminal cell (CJK, emoji, combining marks), keeping every later cell on
// the row in the column the viewport painted it.
const WidePlaceholder = '?'

// Printable maps a cell rune to something safe to put on a terminal:
// blanks and control characters become spaces, runes wider or narrower
// than one cell become WidePlaceholder.
func Printable(r rune) rune {
	if r < ' ' || r == 0x7f {
		return ' '
	}
	if r < utf8.RuneSelf {
		return r
	}
	if ansi.StringWidth(string(r)) != 1 {
		return WidePlaceholder
	}
	return r
}
