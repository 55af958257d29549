// Package document holds the immutable line store behind a viewport.
// Text is split once at load time; one rune is one display cell.
package document

import (
	"fmt"
	"iter"
	"os"
)

// Document is an ordered, read-only sequence of lines. It is safe to share
// between viewports.
type Document struct {
	lines      [][]rune
	maxLineLen int
}

// Load splits text on '\n'. A trailing terminator closes the last line
// without opening a new one, so "a\nb\n" has two lines and "a\n\n" has
// two ("a" and ""). A '\r' directly before '\n' is dropped. The empty
// string yields a document with no lines.
func Load(text string) *Document {
	d := &Document{}
	runes := []rune(text)
	start := 0
	for i, r := range runes {
		if r != '\n' {
			continue
		}
		end := i
		if end > start && runes[end-1] == '\r' {
			end--
		}
		d.push(runes[start:end:end])
		start = i + 1
	}
	if start < len(runes) {
		d.push(runes[start:len(runes):len(runes)])
	}
	return d
}

// LoadFile reads path and loads its contents.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	return Load(string(data)), nil
}

func (d *Document) push(line []rune) {
	d.lines = append(d.lines, line)
	if len(line) > d.maxLineLen {
		d.maxLineLen = len(line)
	}
}

// Len returns the number of lines.
func (d *Document) Len() int { return len(d.lines) }

// Line returns line i. The slice must not be modified.
func (d *Document) Line(i int) []rune { return d.lines[i] }

// LineLen returns the rune count of line i.
func (d *Document) LineLen(i int) int { return len(d.lines[i]) }

// MaxLineLen returns the length of the longest line.
func (d *Document) MaxLineLen() int { return d.maxLineLen }

// Rune returns the character at (line, col). ok is false when the position
// is outside the document or at/after the end of the line.
func (d *Document) Rune(line, col int) (r rune, ok bool) {
	if line < 0 || line >= len(d.lines) {
		return 0, false
	}
	l := d.lines[line]
	if col < 0 || col >= len(l) {
		return 0, false
	}
	return l[col], true
}

// Lines iterates over line index and content.
func (d *Document) Lines() iter.Seq2[int, []rune] {
	return func(yield func(int, []rune) bool) {
		for i, l := range d.lines {
			if !yield(i, l) {
				return
			}
		}
	}
}

// String joins the lines back with '\n'.
func (d *Document) String() string {
	n := 0
	for _, l := range d.lines {
		n += len(l) + 1
	}
	out := make([]rune, 0, n)
	for i, l := range d.lines {
		if i > 0 {
			out = append(out, '\n')
		}
		out = append(out, l...)
	}
	return string(out)
}
