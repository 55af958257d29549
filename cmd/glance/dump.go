package main

import (
	"fmt"
	"io"

	"github.com/xonecas/glance/internal/config"
	"github.com/xonecas/glance/internal/document"
	"github.com/xonecas/glance/internal/grid"
	"github.com/xonecas/glance/internal/viewport"
)

// dump renders one frame of doc on the configured pixel canvas and writes
// it as plain text. With a click position it also hit-tests that pixel,
// highlights the cell and reports the selection on the last line.
func dump(w io.Writer, doc *document.Document, cfg *config.Config, mode viewport.Mode, clickX, clickY int) error {
	vc := cfg.Viewport
	geom, err := viewport.ComputeGeometry(vc.WidthPx, vc.HeightPx, vc.CellWidth(), vc.CellHeight())
	if err != nil {
		return err
	}
	vp, err := viewport.New(doc, geom, mode)
	if err != nil {
		return err
	}
	vp.Sentinel = vc.SentinelRune()
	vp.SetScrollY(vc.ScrollY)
	if err := vp.SetScrollX(vc.ScrollX); err != nil {
		return err
	}

	g := grid.New(geom.Columns, geom.Rows)
	vp.Render(g)

	report := ""
	if clickX >= 0 && clickY >= 0 {
		sel, ok := vp.HitTest(clickX, clickY)
		if ok {
			vp.Highlight(g, sel)
			report = fmt.Sprintf("(%d,%d) px -> cell %d,%d -> %s", clickX, clickY, sel.Cell.Col, sel.Cell.Row, describe(sel))
		} else {
			report = fmt.Sprintf("(%d,%d) px -> no character", clickX, clickY)
		}
	}

	if _, err := fmt.Fprintln(w, g.String()); err != nil {
		return err
	}
	if report != "" {
		if _, err := fmt.Fprintln(w, report); err != nil {
			return err
		}
	}
	return nil
}

func describe(sel viewport.Selection) string {
	if sel.Empty {
		return fmt.Sprintf("line %d col %d, past end of line (%q)", sel.Pos.Line+1, sel.Pos.Col+1, sel.Char)
	}
	return fmt.Sprintf("line %d col %d %q", sel.Pos.Line+1, sel.Pos.Col+1, sel.Char)
}
