package tui

import (
	"errors"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/viewport"
)

// ---------------------------------------------------------------------------
// Update
// ---------------------------------------------------------------------------

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// -- Window resize -------------------------------------------------------
	case tea.WindowSizeMsg:
		m.handleResize(msg)

	// -- Mouse ---------------------------------------------------------------
	case tea.MouseMsg:
		m.handleMouse(msg)

	// -- Keyboard ------------------------------------------------------------
	case tea.KeyPressMsg:
		return m.handleKeyPress(msg)
	}
	return m, nil
}

// scroll moves the viewport and drops the selection, whose cell no longer
// shows the same character.
func (m *Model) scroll(dy, dx int) {
	if m.vp == nil {
		return
	}
	before := m.vp.Scroll()
	if err := m.vp.ScrollBy(dy, dx); err != nil {
		if !errors.Is(err, viewport.ErrWrapScrollX) {
			log.Error().Err(err).Msg("scroll")
		}
		return
	}
	if m.vp.Scroll() != before {
		m.sel = nil
	}
}
