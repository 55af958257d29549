// Package screen hosts a viewport directly on a tcell.Screen. It is the
// second front end next to the bubbletea model in internal/tui and shares
// the same viewport core.
package screen

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"github.com/xonecas/glance/internal/constants"
	"github.com/xonecas/glance/internal/highlight"
	"github.com/xonecas/glance/internal/viewport"
)

// Options configures a Host.
type Options struct {
	Name     string
	Mode     viewport.Mode
	ScrollY  int
	ScrollX  int
	Sentinel rune
	Colors   highlight.Colors
	Palette  highlight.Palette
}

// Host draws one viewport on a tcell screen and handles its events.
type Host struct {
	screen tcell.Screen
	vp     *viewport.Viewport
	opts   Options
	styles styles
	sel    *viewport.Selection
	err    error
}

// New builds a host for vp on an initialized screen and sizes the
// viewport to the screen.
func New(s tcell.Screen, vp *viewport.Viewport, opts Options) *Host {
	h := &Host{screen: s, vp: vp, opts: opts, styles: newStyles(opts.Palette)}
	if opts.Sentinel != 0 {
		vp.Sentinel = opts.Sentinel
	}
	h.resize()
	if h.err == nil {
		vp.SetScrollY(opts.ScrollY)
		if err := vp.SetScrollX(opts.ScrollX); err != nil {
			log.Warn().Err(err).Int("scroll_x", opts.ScrollX).Msg("initial horizontal scroll ignored")
		}
	}
	return h
}

// Viewport returns the hosted viewport.
func (h *Host) Viewport() *viewport.Viewport { return h.vp }

// Selection returns the last hit-test result, if any.
func (h *Host) Selection() (viewport.Selection, bool) {
	if h.sel == nil {
		return viewport.Selection{}, false
	}
	return *h.sel, true
}

// ---------------------------------------------------------------------------
// Event loop
// ---------------------------------------------------------------------------

// Run polls events until the user quits, the screen is finalized or ctx
// is cancelled. The caller owns Init and Fini.
func Run(ctx context.Context, s tcell.Screen, vp *viewport.Viewport, opts Options) error {
	s.EnableMouse()
	s.HideCursor()
	h := New(s, vp, opts)

	events := make(chan tcell.Event, 10)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				return nil
			}
			h.Draw()
		}
	}
}

// HandleEvent applies one event and reports whether the host should quit.
func (h *Host) HandleEvent(ev tcell.Event) (quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		h.screen.Sync()
		h.resize()
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventKey:
		return h.handleKey(ev)
	}
	return false
}

func (h *Host) resize() {
	w, ht := h.screen.Size()
	h.sel = nil
	geom, err := viewport.ComputeGeometry(w, ht-constants.StatusRows, 1, 1)
	if err != nil {
		log.Warn().Err(err).Int("width", w).Int("height", ht).Msg("screen too small")
		h.err = err
		return
	}
	h.err = h.vp.SetGeometry(geom)
}

func (h *Host) handleMouse(ev *tcell.EventMouse) {
	if h.err != nil {
		return
	}
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.Button1 != 0:
		x, y := ev.Position()
		h.click(x, y)
	case buttons&tcell.WheelUp != 0:
		h.scroll(-constants.WheelStep, 0)
	case buttons&tcell.WheelDown != 0:
		h.scroll(constants.WheelStep, 0)
	case buttons&tcell.WheelLeft != 0:
		h.scroll(0, -constants.WheelStep)
	case buttons&tcell.WheelRight != 0:
		h.scroll(0, constants.WheelStep)
	}
}

func (h *Host) click(x, y int) {
	g := h.vp.Geometry()
	if x >= g.Columns*g.CellWidth || y >= g.Rows*g.CellHeight {
		h.sel = nil
		return
	}
	sel, ok := h.vp.HitTest(x, y)
	if !ok {
		h.sel = nil
		return
	}
	h.sel = &sel
}

func (h *Host) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		h.scroll(-1, 0)
	case tcell.KeyDown:
		h.scroll(1, 0)
	case tcell.KeyLeft:
		h.scroll(0, -1)
	case tcell.KeyRight:
		h.scroll(0, 1)
	case tcell.KeyPgUp:
		h.scroll(-h.vp.Geometry().Rows, 0)
	case tcell.KeyPgDn:
		h.scroll(h.vp.Geometry().Rows, 0)
	case tcell.KeyHome:
		h.scroll(-h.vp.Scroll().Y, 0)
	case tcell.KeyEnd:
		h.scroll(h.vp.Bottom()-h.vp.Scroll().Y, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case 'w':
			h.toggleWrap()
		case 'k':
			h.scroll(-1, 0)
		case 'j':
			h.scroll(1, 0)
		case 'h':
			h.scroll(0, -1)
		case 'l':
			h.scroll(0, 1)
		}
	}
	return false
}

func (h *Host) scroll(dy, dx int) {
	if h.err != nil {
		return
	}
	before := h.vp.Scroll()
	if err := h.vp.ScrollBy(dy, dx); err != nil {
		if !errors.Is(err, viewport.ErrWrapScrollX) {
			log.Error().Err(err).Msg("scroll")
		}
		return
	}
	if h.vp.Scroll() != before {
		h.sel = nil
	}
}

func (h *Host) toggleWrap() {
	next := viewport.Wrap
	if h.vp.Mode() == viewport.Wrap {
		next = viewport.NoWrap
	}
	h.vp.SetMode(next)
	h.sel = nil
}

// ---------------------------------------------------------------------------
// Drawing
// ---------------------------------------------------------------------------

// Draw repaints the whole screen and shows it.
func (h *Host) Draw() {
	h.screen.SetStyle(h.styles.text)
	h.screen.Clear()
	if h.err != nil {
		h.drawString(0, 0, h.err.Error(), h.styles.err)
		h.screen.Show()
		return
	}
	p := &painter{screen: h.screen, styles: h.styles, colors: h.opts.Colors}
	h.vp.Render(p)
	if h.sel != nil {
		h.vp.Highlight(p, *h.sel)
	}
	h.drawStatus()
	h.screen.Show()
}

func (h *Host) drawStatus() {
	w, ht := h.screen.Size()
	row := ht - constants.StatusRows
	for x := range w {
		h.screen.SetContent(x, row, ' ', nil, h.styles.status)
	}
	h.drawString(0, row, h.vp.StatusLine(h.opts.Name), h.styles.status)
	if h.sel != nil {
		right := []rune(h.sel.Label() + " ")
		h.drawString(w-len(right), row, string(right), h.styles.status)
	}
}

func (h *Host) drawString(x, y int, s string, style tcell.Style) {
	w, _ := h.screen.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		if x >= 0 {
			h.screen.SetContent(x, y, r, nil, style)
		}
		x++
	}
}
