package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/constants"
	"github.com/xonecas/glance/internal/viewport"
)

// handleResize recomputes the geometry for the new window size. A window
// too small for one cell keeps the error for View to show.
func (m *Model) handleResize(msg tea.WindowSizeMsg) {
	m.width, m.height = msg.Width, msg.Height
	m.sel = nil

	geom, err := viewport.ComputeGeometry(m.width, m.height-constants.StatusRows, 1, 1)
	if err != nil {
		log.Warn().Err(err).Int("width", m.width).Int("height", m.height).Msg("window too small")
		m.err = err
		return
	}
	m.err = nil
	m.grid.Resize(geom.Columns, geom.Rows)

	if m.vp != nil {
		if err := m.vp.SetGeometry(geom); err != nil {
			m.err = err
		}
		return
	}

	vp, err := viewport.New(m.doc, geom, m.opts.Mode)
	if err != nil {
		m.err = err
		return
	}
	vp.Sentinel = m.opts.Sentinel
	vp.SetScrollY(m.opts.ScrollY)
	if err := vp.SetScrollX(m.opts.ScrollX); err != nil {
		log.Warn().Err(err).Int("scroll_x", m.opts.ScrollX).Msg("initial horizontal scroll ignored")
	}
	m.vp = vp
	log.Debug().
		Int("rows", geom.Rows).
		Int("cols", geom.Columns).
		Stringer("mode", vp.Mode()).
		Msg("viewport created")
}
