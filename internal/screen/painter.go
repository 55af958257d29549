package screen

import (
	"github.com/gdamore/tcell/v2"

	"github.com/xonecas/glance/internal/grid"
	"github.com/xonecas/glance/internal/highlight"
	"github.com/xonecas/glance/internal/viewport"
)

type styles struct {
	text   tcell.Style
	sel    tcell.Style
	status tcell.Style
	err    tcell.Style
}

func newStyles(p highlight.Palette) styles {
	if p == (highlight.Palette{}) {
		return styles{
			text:   tcell.StyleDefault,
			sel:    tcell.StyleDefault.Reverse(true),
			status: tcell.StyleDefault.Reverse(true),
			err:    tcell.StyleDefault.Foreground(tcell.ColorRed),
		}
	}
	base := tcell.StyleDefault.
		Background(tcell.GetColor(p.Bg)).
		Foreground(tcell.GetColor(p.Fg))
	return styles{
		text:   base,
		sel:    base.Background(tcell.GetColor(p.Select)),
		status: tcell.StyleDefault.Background(tcell.GetColor(p.StatusBg)).Foreground(tcell.GetColor(p.StatusFg)),
		err:    base.Foreground(tcell.GetColor(p.Error)),
	}
}

// painter adapts a tcell.Screen to viewport.SourcePainter.
type painter struct {
	screen tcell.Screen
	styles styles
	colors highlight.Colors
}

func (p *painter) PaintCell(ch rune, col, row int) {
	p.screen.SetContent(col, row, grid.Printable(ch), nil, p.styles.text)
}

func (p *painter) PaintHighlightedCell(ch rune, col, row int) {
	p.screen.SetContent(col, row, grid.Printable(ch), nil, p.styles.sel)
}

func (p *painter) PaintSource(ch rune, col, row int, pos viewport.Pos) {
	style := p.styles.text
	if hex := p.colors.At(pos.Line, pos.Col); hex != "" {
		style = style.Foreground(tcell.GetColor(hex))
	}
	p.screen.SetContent(col, row, grid.Printable(ch), nil, style)
}
