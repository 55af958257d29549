// Package tui is the bubbletea front end: it owns one viewport, paints it
// into a character grid every frame and turns mouse and key events into
// scroll changes and hit tests.
package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/xonecas/glance/internal/document"
	"github.com/xonecas/glance/internal/grid"
	"github.com/xonecas/glance/internal/highlight"
	"github.com/xonecas/glance/internal/viewport"
)

// Options configures a Model.
type Options struct {
	Name     string // shown in the status bar
	Mode     viewport.Mode
	ScrollY  int
	ScrollX  int
	Sentinel rune
	Language string // Chroma lexer; "" disables colouring
	Theme    string // Chroma style
}

// Model is the application model
type Model struct {
	opts   Options
	doc    *document.Document
	vp     *viewport.Viewport // nil until the first WindowSizeMsg
	grid   *grid.Grid
	colors highlight.Colors
	styles Styles
	keys   keyMap

	width  int
	height int

	sel *viewport.Selection // last hit, cleared when the layout moves
	err error               // geometry error for the current window size
}

// New creates a model for doc. The viewport is built on the first resize,
// when the terminal size is known.
func New(doc *document.Document, opts Options) Model {
	if opts.Sentinel == 0 {
		opts.Sentinel = viewport.DefaultSentinel
	}
	var colors highlight.Colors
	if opts.Language != "" {
		colors = highlight.Colorize(doc, opts.Language, opts.Theme)
	}
	return Model{
		opts:   opts,
		doc:    doc,
		grid:   grid.New(0, 0),
		colors: colors,
		styles: newStyles(highlight.ThemePalette(opts.Theme)),
		keys:   defaultKeyMap(),
	}
}

// Init initializes the TUI (required by BubbleTea)
func (m Model) Init() tea.Cmd {
	return nil
}

// Viewport exposes the current viewport, nil before the first resize.
func (m Model) Viewport() *viewport.Viewport { return m.vp }

// Selection returns the last hit-test result, if any.
func (m Model) Selection() (viewport.Selection, bool) {
	if m.sel == nil {
		return viewport.Selection{}, false
	}
	return *m.sel, true
}
