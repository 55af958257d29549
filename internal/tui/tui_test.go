package tui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/xonecas/glance/internal/constants"
	"github.com/xonecas/glance/internal/document"
	"github.com/xonecas/glance/internal/viewport"
)

const foxText = "The quick brown fox jumps over the lazy dog\n\nend"

func sized(t *testing.T, m Model, w, h int) Model {
	t.Helper()
	updated, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return updated.(Model)
}

func send(m Model, msg tea.Msg) Model {
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func char(ch rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: ch, Text: string(ch)}
}

func statusLine(m Model) string {
	lines := strings.Split(ansi.Strip(m.renderContent()), "\n")
	return lines[len(lines)-1]
}

func TestViewportCreatedOnResize(t *testing.T) {
	m := New(document.Load(foxText), Options{Name: "fox", Mode: viewport.Wrap})
	if m.Viewport() != nil {
		t.Fatal("viewport should not exist before the first resize")
	}
	if m.renderContent() != "" {
		t.Error("expected empty content before resize")
	}
	m = sized(t, m, 30, 5)
	g := m.Viewport().Geometry()
	if g.Columns != 30 || g.Rows != 4 {
		t.Errorf("geometry = %+v, want 30x4", g)
	}
}

func TestClickSelectsCharacter(t *testing.T) {
	m := sized(t, New(document.Load(foxText), Options{Name: "fox", Mode: viewport.Wrap}), 30, 5)

	m = send(m, tea.MouseClickMsg{X: 4, Y: 0, Button: tea.MouseLeft})
	sel, ok := m.Selection()
	if !ok || sel.Char != 'q' || sel.Pos != (viewport.Pos{Line: 0, Col: 4}) {
		t.Fatalf("selection = %+v, %v", sel, ok)
	}
	if got := statusLine(m); !strings.HasSuffix(got, "1:5 'q' ") {
		t.Errorf("status = %q", got)
	}
	if c := m.grid.At(4, 0); !c.Highlighted || c.Rune != 'q' {
		t.Errorf("cell (4,0) = %+v", c)
	}

	// Second visual row of a wrapped line.
	m = send(m, tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft})
	if sel, _ := m.Selection(); sel.Pos != (viewport.Pos{Line: 0, Col: 31}) || sel.Char != 't' {
		t.Errorf("wrapped click = %+v", sel)
	}
}

func TestClickPastLineEndShowsSentinel(t *testing.T) {
	m := sized(t, New(document.Load(foxText), Options{Name: "fox", Mode: viewport.Wrap, Sentinel: '~'}), 30, 5)

	m = send(m, tea.MouseClickMsg{X: 20, Y: 2, Button: tea.MouseLeft})
	sel, ok := m.Selection()
	if !ok || !sel.Empty || sel.Char != '~' {
		t.Fatalf("selection = %+v, %v", sel, ok)
	}
	if got := statusLine(m); !strings.Contains(got, "2:21 eol") {
		t.Errorf("status = %q", got)
	}
	if c := m.grid.At(20, 2); !c.Highlighted || c.Rune != '~' {
		t.Errorf("cell (20,2) = %+v", c)
	}
}

func TestClickOutsideTextClearsSelection(t *testing.T) {
	m := sized(t, New(document.Load("one\ntwo"), Options{Name: "x"}), 10, 5)
	m = send(m, tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	if _, ok := m.Selection(); !ok {
		t.Fatal("expected a selection")
	}

	// Below the document.
	m = send(m, tea.MouseClickMsg{X: 0, Y: 3, Button: tea.MouseLeft})
	if _, ok := m.Selection(); ok {
		t.Error("click below the document should clear the selection")
	}

	// Status bar row.
	m = send(m, tea.MouseClickMsg{X: 0, Y: 0, Button: tea.MouseLeft})
	m = send(m, tea.MouseClickMsg{X: 0, Y: 4, Button: tea.MouseLeft})
	if _, ok := m.Selection(); ok {
		t.Error("click on the status bar should clear the selection")
	}
}

func TestKeysScroll(t *testing.T) {
	text := strings.Repeat("line\n", 20)
	m := sized(t, New(document.Load(text), Options{Name: "x"}), 10, 6)

	m = send(m, tea.KeyPressMsg{Code: tea.KeyDown})
	m = send(m, char('j'))
	if y := m.Viewport().Scroll().Y; y != 2 {
		t.Errorf("after two downs Y = %d", y)
	}
	m = send(m, tea.KeyPressMsg{Code: tea.KeyPgDown})
	if y := m.Viewport().Scroll().Y; y != 7 {
		t.Errorf("after pgdown Y = %d", y)
	}
	m = send(m, char('G'))
	if y := m.Viewport().Scroll().Y; y != 15 {
		t.Errorf("after G Y = %d", y)
	}
	m = send(m, char('g'))
	if y := m.Viewport().Scroll().Y; y != 0 {
		t.Errorf("after g Y = %d", y)
	}
	m = send(m, tea.KeyPressMsg{Code: tea.KeyUp})
	if y := m.Viewport().Scroll().Y; y != 0 {
		t.Errorf("scrolled above top: Y = %d", y)
	}
}

func TestToggleWrapDropsHorizontalScroll(t *testing.T) {
	m := sized(t, New(document.Load(foxText), Options{Name: "fox"}), 20, 5)
	m = send(m, char('l'))
	m = send(m, char('l'))
	if x := m.Viewport().Scroll().X; x != 2 {
		t.Fatalf("X = %d, want 2", x)
	}

	m = send(m, char('w'))
	vp := m.Viewport()
	if vp.Mode() != viewport.Wrap || vp.Scroll().X != 0 {
		t.Fatalf("after w: mode=%v scroll=%+v", vp.Mode(), vp.Scroll())
	}

	m = send(m, char('l'))
	if x := m.Viewport().Scroll().X; x != 0 {
		t.Errorf("horizontal scroll in wrap mode: X = %d", x)
	}
	if got := statusLine(m); !strings.Contains(got, "| wrap |") {
		t.Errorf("status = %q", got)
	}
}

func TestWheelScrollClearsSelection(t *testing.T) {
	text := strings.Repeat("abc\n", 10)
	m := sized(t, New(document.Load(text), Options{Name: "x"}), 10, 4)
	m = send(m, tea.MouseClickMsg{X: 1, Y: 1, Button: tea.MouseLeft})
	m = send(m, tea.MouseWheelMsg{Button: tea.MouseWheelDown})
	if y := m.Viewport().Scroll().Y; y != constants.WheelStep {
		t.Errorf("Y = %d, want %d", y, constants.WheelStep)
	}
	if _, ok := m.Selection(); ok {
		t.Error("scrolling should clear the selection")
	}
	m = send(m, tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	m = send(m, tea.MouseWheelMsg{Button: tea.MouseWheelUp})
	if y := m.Viewport().Scroll().Y; y != 0 {
		t.Errorf("Y = %d, want 0", y)
	}
}

func TestResizeKeepsTopLine(t *testing.T) {
	m := sized(t, New(document.Load(foxText), Options{Name: "fox", Mode: viewport.Wrap}), 10, 5)
	// Rows at width 10: line 0 takes 5, so row 5 is the blank line.
	for range 5 {
		m = send(m, char('j'))
	}
	m = sized(t, m, 30, 5)
	if y := m.Viewport().Scroll().Y; y != 2 {
		t.Errorf("Y after widening = %d, want 2", y)
	}
}

func TestDegenerateWindow(t *testing.T) {
	m := sized(t, New(document.Load("x"), Options{Name: "x"}), 80, 1)
	out := ansi.Strip(m.renderContent())
	if !strings.Contains(out, "viewport smaller than one cell") {
		t.Errorf("content = %q", out)
	}

	// Recovers on the next usable size.
	m = sized(t, m, 80, 3)
	if m.Viewport() == nil || strings.Contains(ansi.Strip(m.renderContent()), "smaller") {
		t.Error("model did not recover from a degenerate size")
	}
}

func TestInitialScrollFromOptions(t *testing.T) {
	text := strings.Repeat("0123456789\n", 5)
	m := sized(t, New(document.Load(text), Options{Name: "x", ScrollY: 2, ScrollX: 3}), 5, 3)
	if s := m.Viewport().Scroll(); s != (viewport.ScrollState{Y: 2, X: 3}) {
		t.Errorf("scroll = %+v", s)
	}
	if first := strings.Split(ansi.Strip(m.renderContent()), "\n")[0]; first != "34567" {
		t.Errorf("first row = %q", first)
	}
}

func TestQuit(t *testing.T) {
	m := New(document.Load("x"), Options{})
	_, cmd := m.Update(char('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestColorizedCellsRender(t *testing.T) {
	m := sized(t, New(document.Load("package main"), Options{Name: "main.go", Language: "go", Theme: "github-dark"}), 20, 2)
	out := m.renderContent()
	if ansi.Strip(out) == out {
		t.Error("expected styled output")
	}
	if !strings.HasPrefix(ansi.Strip(out), "package main") {
		t.Errorf("stripped = %q", ansi.Strip(out))
	}
}

func TestCopySelectedLine(t *testing.T) {
	m := sized(t, New(document.Load("first\nsecond"), Options{Name: "x"}), 20, 4)

	_, cmd := m.Update(char('y'))
	if cmd != nil {
		t.Error("copy without a selection should do nothing")
	}

	m = send(m, tea.MouseClickMsg{X: 2, Y: 1, Button: tea.MouseLeft})
	if text, ok := m.selectedLine(); !ok || text != "second" {
		t.Fatalf("selected line = %q, %v", text, ok)
	}
	if _, cmd := m.Update(char('y')); cmd == nil {
		t.Error("expected a clipboard command")
	}
}

func TestWideRunesKeepRowWidth(t *testing.T) {
	m := sized(t, New(document.Load("中ab😀c"), Options{Name: "wide"}), 10, 3)

	first := strings.Split(ansi.Strip(m.renderContent()), "\n")[0]
	if w := ansi.StringWidth(first); w != 10 {
		t.Errorf("row width = %d, want 10: %q", w, first)
	}
	if !strings.HasPrefix(first, "?ab?c") {
		t.Errorf("row = %q", first)
	}

	m = send(m, tea.MouseClickMsg{X: 4, Y: 0, Button: tea.MouseLeft})
	if sel, ok := m.Selection(); !ok || sel.Char != 'c' {
		t.Errorf("selection = %+v, %v", sel, ok)
	}
}
