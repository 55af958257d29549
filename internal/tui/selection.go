package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
)

// ---------------------------------------------------------------------------
// Selection and clipboard
// ---------------------------------------------------------------------------

// copySelection copies the line under the selection to the clipboard via
// OSC 52, which works through SSH and tmux.
func (m *Model) copySelection() tea.Cmd {
	text, ok := m.selectedLine()
	if !ok {
		return nil
	}
	log.Debug().Int("line", m.sel.Pos.Line).Int("len", len(text)).Msg("copied line")
	return tea.SetClipboard(text)
}

// selectedLine returns the text of the selected line.
func (m *Model) selectedLine() (string, bool) {
	if m.sel == nil || m.sel.Pos.Line >= m.doc.Len() {
		return "", false
	}
	return string(m.doc.Line(m.sel.Pos.Line)), true
}
