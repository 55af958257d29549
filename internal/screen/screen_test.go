package screen

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xonecas/glance/internal/constants"
	"github.com/xonecas/glance/internal/document"
	"github.com/xonecas/glance/internal/highlight"
	"github.com/xonecas/glance/internal/viewport"
)

const foxText = "The quick brown fox jumps over the lazy dog\n\nend"

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	t.Cleanup(s.Fini)
	s.SetSize(w, h)
	return s
}

func newHost(t *testing.T, s tcell.Screen, text string, opts Options) *Host {
	t.Helper()
	g, err := viewport.ComputeGeometry(1, 1, 1, 1)
	require.NoError(t, err)
	vp, err := viewport.New(document.Load(text), g, opts.Mode)
	require.NoError(t, err)
	return New(s, vp, opts)
}

func readScreenLine(s tcell.Screen, y int) string {
	w, _ := s.Size()
	runes := make([]rune, w)
	for x := range w {
		ch, _, _, _ := s.GetContent(x, y)
		if ch == 0 {
			ch = ' '
		}
		runes[x] = ch
	}
	return strings.TrimRight(string(runes), " ")
}

func click(x, y int) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestNewSizesViewportToScreen(t *testing.T) {
	s := newSimScreen(t, 30, 5)
	h := newHost(t, s, foxText, Options{Name: "fox", Mode: viewport.Wrap})

	g := h.Viewport().Geometry()
	assert.Equal(t, 30, g.Columns)
	assert.Equal(t, 4, g.Rows)
}

func TestDrawWrap(t *testing.T) {
	s := newSimScreen(t, 30, 5)
	h := newHost(t, s, foxText, Options{Name: "fox", Mode: viewport.Wrap})
	h.Draw()

	assert.Equal(t, "The quick brown fox jumps over", readScreenLine(s, 0))
	assert.Equal(t, " the lazy dog", readScreenLine(s, 1))
	assert.Equal(t, "", readScreenLine(s, 2))
	assert.Equal(t, "end", readScreenLine(s, 3))
	assert.Equal(t, " fox | wrap | 1/4", readScreenLine(s, 4))
}

func TestDrawNoWrapWithScroll(t *testing.T) {
	s := newSimScreen(t, 5, 3)
	text := strings.Repeat("0123456789\n", 5)
	h := newHost(t, s, text, Options{Name: "x", ScrollY: 2, ScrollX: 3})
	h.Draw()

	assert.Equal(t, viewport.ScrollState{Y: 2, X: 3}, h.Viewport().Scroll())
	assert.Equal(t, "34567", readScreenLine(s, 0))
	assert.Equal(t, "34567", readScreenLine(s, 1))
}

func TestClickHighlightsCharacter(t *testing.T) {
	s := newSimScreen(t, 30, 5)
	h := newHost(t, s, foxText, Options{Name: "fox", Mode: viewport.Wrap})

	assert.False(t, h.HandleEvent(click(4, 0)))
	sel, ok := h.Selection()
	require.True(t, ok)
	assert.Equal(t, 'q', sel.Char)
	assert.Equal(t, viewport.Pos{Line: 0, Col: 4}, sel.Pos)

	h.Draw()
	ch, _, style, _ := s.GetContent(4, 0)
	assert.Equal(t, 'q', ch)
	assert.Equal(t, h.styles.sel, style)
	assert.True(t, strings.HasSuffix(readScreenLine(s, 4), "1:5 'q'"))
}

func TestClickPastLineEndDrawsSentinel(t *testing.T) {
	s := newSimScreen(t, 30, 5)
	h := newHost(t, s, foxText, Options{Name: "fox", Mode: viewport.Wrap, Sentinel: '~'})

	h.HandleEvent(click(20, 2))
	sel, ok := h.Selection()
	require.True(t, ok)
	assert.True(t, sel.Empty)

	h.Draw()
	ch, _, _, _ := s.GetContent(20, 2)
	assert.Equal(t, '~', ch)
	assert.Contains(t, readScreenLine(s, 4), "2:21 eol")
}

func TestDrawWideRunesOneCellEach(t *testing.T) {
	s := newSimScreen(t, 10, 3)
	h := newHost(t, s, "中ab😀c", Options{Name: "wide"})
	h.Draw()

	assert.Equal(t, "?ab?c", readScreenLine(s, 0))
	h.HandleEvent(click(4, 0))
	sel, ok := h.Selection()
	require.True(t, ok)
	assert.Equal(t, 'c', sel.Char)
}

func TestClickBelowDocumentClearsSelection(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	h := newHost(t, s, "one\ntwo", Options{Name: "x"})

	h.HandleEvent(click(0, 0))
	_, ok := h.Selection()
	require.True(t, ok)

	h.HandleEvent(click(0, 3))
	_, ok = h.Selection()
	assert.False(t, ok)
}

func TestKeysAndWheel(t *testing.T) {
	s := newSimScreen(t, 10, 6)
	h := newHost(t, s, strings.Repeat("line\n", 20), Options{Name: "x"})

	h.HandleEvent(tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone))
	h.HandleEvent(runeKey('j'))
	assert.Equal(t, 2, h.Viewport().Scroll().Y)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone))
	assert.Equal(t, 7, h.Viewport().Scroll().Y)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyEnd, 0, tcell.ModNone))
	assert.Equal(t, 15, h.Viewport().Scroll().Y)

	h.HandleEvent(tcell.NewEventMouse(0, 0, tcell.WheelUp, tcell.ModNone))
	assert.Equal(t, 15-constants.WheelStep, h.Viewport().Scroll().Y)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyHome, 0, tcell.ModNone))
	assert.Equal(t, 0, h.Viewport().Scroll().Y)
}

func TestWrapToggleRejectsHorizontalScroll(t *testing.T) {
	s := newSimScreen(t, 20, 5)
	h := newHost(t, s, foxText, Options{Name: "fox"})

	h.HandleEvent(runeKey('l'))
	assert.Equal(t, 1, h.Viewport().Scroll().X)

	h.HandleEvent(runeKey('w'))
	assert.Equal(t, viewport.Wrap, h.Viewport().Mode())
	assert.Equal(t, 0, h.Viewport().Scroll().X)

	h.HandleEvent(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
	assert.Equal(t, 0, h.Viewport().Scroll().X)
}

func TestResizeRecomputesGeometry(t *testing.T) {
	s := newSimScreen(t, 10, 5)
	h := newHost(t, s, foxText, Options{Name: "fox", Mode: viewport.Wrap})
	for range 5 {
		h.HandleEvent(runeKey('j'))
	}

	s.SetSize(30, 5)
	h.HandleEvent(tcell.NewEventResize(30, 5))
	assert.Equal(t, 30, h.Viewport().Geometry().Columns)
	assert.Equal(t, 2, h.Viewport().Scroll().Y)
}

func TestDegenerateScreen(t *testing.T) {
	s := newSimScreen(t, 60, 1)
	h := newHost(t, s, "x", Options{Name: "x"})
	h.Draw()
	assert.Contains(t, readScreenLine(s, 0), "viewport smaller than one cell")

	// Events are ignored until the screen grows.
	assert.False(t, h.HandleEvent(click(0, 0)))
	_, ok := h.Selection()
	assert.False(t, ok)
}

func TestQuitKeys(t *testing.T) {
	s := newSimScreen(t, 10, 3)
	h := newHost(t, s, "x", Options{})
	assert.True(t, h.HandleEvent(runeKey('q')))
	assert.True(t, h.HandleEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)))
	assert.False(t, h.HandleEvent(runeKey('x')))
}

func TestPainterColours(t *testing.T) {
	s := newSimScreen(t, 20, 2)
	doc := document.Load("package main")
	g, err := viewport.ComputeGeometry(20, 1, 1, 1)
	require.NoError(t, err)
	vp, err := viewport.New(doc, g, viewport.NoWrap)
	require.NoError(t, err)

	colors := highlight.Colorize(doc, "go", "github-dark")
	require.NotEmpty(t, colors.At(0, 0))
	h := New(s, vp, Options{Colors: colors, Palette: highlight.ThemePalette("github-dark")})
	h.Draw()

	assert.Equal(t, "package main", readScreenLine(s, 0))
	_, _, style, _ := s.GetContent(0, 0)
	fg, _, _ := style.Decompose()
	assert.Equal(t, tcell.GetColor(colors.At(0, 0)), fg)
}

func TestRunQuitsOnKey(t *testing.T) {
	s := newSimScreen(t, 20, 4)
	g, err := viewport.ComputeGeometry(20, 3, 1, 1)
	require.NoError(t, err)
	vp, err := viewport.New(document.Load(foxText), g, viewport.Wrap)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- Run(context.Background(), s, vp, Options{Name: "fox"}) }()
	s.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	s := newSimScreen(t, 20, 4)
	g, err := viewport.ComputeGeometry(20, 3, 1, 1)
	require.NoError(t, err)
	vp, err := viewport.New(document.Load(foxText), g, viewport.NoWrap)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, s, vp, Options{}) }()
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
