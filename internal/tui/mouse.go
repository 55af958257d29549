package tui

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/constants"
)

// ---------------------------------------------------------------------------
// Mouse filter: throttle high-frequency events at program level.
// ---------------------------------------------------------------------------

var lastMouseEvent time.Time

// MouseEventFilter rate-limits wheel and motion events (15 ms).
// Pass to tea.WithFilter. Never drops clicks or releases.
func MouseEventFilter(_ tea.Model, msg tea.Msg) tea.Msg {
	switch msg.(type) {
	case tea.MouseWheelMsg, tea.MouseMotionMsg:
		now := time.Now()
		if now.Sub(lastMouseEvent) < 15*time.Millisecond {
			return nil
		}
		lastMouseEvent = now
	}
	return msg
}

// ---------------------------------------------------------------------------
// Mouse handling. Terminal coordinates are cells, and the viewport uses
// one pixel per cell, so they go to the hit test unchanged.
// ---------------------------------------------------------------------------

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.vp == nil {
		return
	}
	switch ev := msg.(type) {
	case tea.MouseClickMsg:
		if ev.Button == tea.MouseLeft {
			m.handleClick(ev.X, ev.Y)
		}
	case tea.MouseWheelMsg:
		switch ev.Button {
		case tea.MouseWheelUp:
			m.scroll(-constants.WheelStep, 0)
		case tea.MouseWheelDown:
			m.scroll(constants.WheelStep, 0)
		case tea.MouseWheelLeft:
			m.scroll(0, -constants.WheelStep)
		case tea.MouseWheelRight:
			m.scroll(0, constants.WheelStep)
		}
	}
}

// handleClick hit-tests a click inside the text area. Clicks on the status
// bar or below the document clear the selection.
func (m *Model) handleClick(x, y int) {
	g := m.vp.Geometry()
	if x >= g.Columns*g.CellWidth || y >= g.Rows*g.CellHeight {
		m.sel = nil
		return
	}
	sel, ok := m.vp.HitTest(x, y)
	if !ok {
		log.Debug().Int("x", x).Int("y", y).Msg("click below document")
		m.sel = nil
		return
	}
	m.sel = &sel
	log.Debug().
		Int("line", sel.Pos.Line).
		Int("col", sel.Pos.Col).
		Bool("empty", sel.Empty).
		Msg("selected")
}
