package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/xonecas/glance/internal/highlight"
)

// Styles are the lipgloss styles derived from the theme palette.
type Styles struct {
	Text      lipgloss.Style
	Selection lipgloss.Style
	Status    lipgloss.Style
	Error     lipgloss.Style

	fg map[string]lipgloss.Style // Text with a token foreground, by hex
}

func newStyles(p highlight.Palette) Styles {
	bg := lipgloss.Color(p.Bg)
	return Styles{
		Text:      lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Fg)),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color(p.Select)).Foreground(bg),
		Status:    lipgloss.NewStyle().Background(lipgloss.Color(p.StatusBg)).Foreground(lipgloss.Color(p.StatusFg)),
		Error:     lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color(p.Error)).Bold(true),
		fg:        make(map[string]lipgloss.Style),
	}
}

// textWith returns the text style with a token foreground.
func (s Styles) textWith(hex string) lipgloss.Style {
	if hex == "" {
		return s.Text
	}
	if st, ok := s.fg[hex]; ok {
		return st
	}
	st := s.Text.Foreground(lipgloss.Color(hex))
	s.fg[hex] = st
	return st
}
