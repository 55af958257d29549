package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/viewport"
)

func (m Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.vp == nil {
		return m, nil
	}
	if key.Matches(msg, m.keys.Copy) {
		return m, m.copySelection()
	}
	rows := m.vp.Geometry().Rows
	switch {
	case key.Matches(msg, m.keys.Wrap):
		m.toggleWrap()
	case key.Matches(msg, m.keys.Up):
		m.scroll(-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.scroll(1, 0)
	case key.Matches(msg, m.keys.Left):
		m.scroll(0, -1)
	case key.Matches(msg, m.keys.Right):
		m.scroll(0, 1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-rows, 0)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(rows, 0)
	case key.Matches(msg, m.keys.Top):
		m.scroll(-m.vp.Scroll().Y, 0)
	case key.Matches(msg, m.keys.Bottom):
		m.scroll(m.vp.Bottom()-m.vp.Scroll().Y, 0)
	}
	return m, nil
}

func (m *Model) toggleWrap() {
	next := viewport.Wrap
	if m.vp.Mode() == viewport.Wrap {
		next = viewport.NoWrap
	}
	m.vp.SetMode(next)
	m.sel = nil
	log.Debug().Stringer("mode", next).Int("scroll_y", m.vp.Scroll().Y).Msg("layout mode changed")
}
