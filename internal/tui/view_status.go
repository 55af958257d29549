package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// renderStatus builds the status bar: file, mode and position on the left,
// the selection on the right.
func (m Model) renderStatus() string {
	left := m.vp.StatusLine(m.opts.Name)
	right := ""
	if m.sel != nil {
		right = m.sel.Label() + " "
	}

	pad := m.width - ansi.StringWidth(left) - ansi.StringWidth(right)
	line := left + strings.Repeat(" ", max(pad, 1)) + right
	line = ansi.Truncate(line, m.width, "…")
	if w := ansi.StringWidth(line); w < m.width {
		line += strings.Repeat(" ", m.width-w)
	}
	return m.styles.Status.Render(line)
}
