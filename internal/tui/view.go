package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/glance/internal/grid"
)

// ---------------------------------------------------------------------------
// View
// ---------------------------------------------------------------------------

func (m Model) View() tea.View {
	v := tea.NewView(m.renderContent())
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	return v
}

// renderContent produces the string content for the view: the text rows
// followed by the status bar, without a trailing newline.
func (m Model) renderContent() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.err != nil {
		return m.renderError()
	}
	if m.vp == nil {
		return ""
	}

	m.grid.Clear()
	m.vp.Render(m.grid)
	if m.sel != nil {
		m.vp.Highlight(m.grid, *m.sel)
	}

	var b strings.Builder
	for row := range m.grid.Rows() {
		m.renderRow(&b, row)
		b.WriteByte('\n')
	}
	b.WriteString(m.renderStatus())
	return b.String()
}

// renderRow writes one grid row, grouping runs of cells with the same
// style into a single Render call.
func (m Model) renderRow(b *strings.Builder, row int) {
	var run strings.Builder
	var runStyle lipgloss.Style
	runKey := ""
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(runStyle.Render(run.String()))
			run.Reset()
		}
	}
	for col := range m.grid.Cols() {
		c := m.grid.At(col, row)
		k, st := m.cellStyle(c)
		if k != runKey {
			flush()
			runKey, runStyle = k, st
		}
		run.WriteRune(grid.Printable(c.Rune))
	}
	flush()
}

// cellStyle returns a style key and style for a painted cell.
func (m Model) cellStyle(c grid.Cell) (string, lipgloss.Style) {
	if c.Highlighted {
		return "sel", m.styles.Selection
	}
	if !c.HasSource {
		return "", m.styles.Text
	}
	hex := m.colors.At(c.Source.Line, c.Source.Col)
	return hex, m.styles.textWith(hex)
}

// renderError fills the window with the geometry error.
func (m Model) renderError() string {
	msg := ansi.Truncate(m.err.Error(), m.width, "…")
	lines := make([]string, m.height)
	lines[0] = m.styles.Error.Render(msg)
	return strings.Join(lines, "\n")
}
