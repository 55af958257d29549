// Package viewport renders a fixed-size window onto a document and maps
// pointer positions back to the characters under them.
//
// Two layout modes exist. In NoWrap mode every buffer line is one visual
// row and a horizontal offset picks the visible columns. In Wrap mode long
// lines continue on following rows, Columns cells at a time, and there is
// no horizontal offset. The vertical offset always counts visual rows.
//
// A Viewport is not safe for concurrent use. Scroll state and geometry
// must only change between frames.
package viewport

import (
	"errors"
	"fmt"

	"github.com/xonecas/glance/internal/document"
)

// ErrWrapScrollX is returned when a horizontal offset is requested in
// wrap mode.
var ErrWrapScrollX = errors.New("horizontal scroll is disabled in wrap mode")

// DefaultSentinel is returned by hit tests on a cell that lies inside a
// line's rows but past its last character.
const DefaultSentinel = '_'

// Mode selects the layout policy.
type Mode int

const (
	NoWrap Mode = iota
	Wrap
)

func (m Mode) String() string {
	switch m {
	case NoWrap:
		return "nowrap"
	case Wrap:
		return "wrap"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Pos is a buffer position. Col may equal the line length, meaning just
// past the last character.
type Pos struct {
	Line int
	Col  int
}

// Cell is a visual position relative to the viewport's top-left cell.
type Cell struct {
	Col int
	Row int
}

// ScrollState holds the scroll offsets. Y counts visual rows, X counts
// columns and is only used in NoWrap mode. Both are never negative.
type ScrollState struct {
	Y int
	X int
}

// Viewport is the owned state threaded through render and hit test.
type Viewport struct {
	doc    *document.Document
	geom   Geometry
	mode   Mode
	scroll ScrollState

	// Sentinel is the character reported for a valid cell with no
	// character in it.
	Sentinel rune
}

// New creates a viewport at the top of doc.
func New(doc *document.Document, geom Geometry, mode Mode) (*Viewport, error) {
	if doc == nil {
		doc = document.Load("")
	}
	if err := geom.validate(); err != nil {
		return nil, err
	}
	return &Viewport{
		doc:      doc,
		geom:     geom,
		mode:     mode,
		Sentinel: DefaultSentinel,
	}, nil
}

func (v *Viewport) Document() *document.Document { return v.doc }
func (v *Viewport) Geometry() Geometry           { return v.geom }
func (v *Viewport) Mode() Mode                   { return v.mode }
func (v *Viewport) Scroll() ScrollState          { return v.scroll }
