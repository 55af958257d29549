package viewport

import "fmt"

// Label formats the selection as 1-based line:col and the character, or
// "eol" for a cell past the end of its line.
func (s Selection) Label() string {
	if s.Empty {
		return fmt.Sprintf("%d:%d eol", s.Pos.Line+1, s.Pos.Col+1)
	}
	return fmt.Sprintf("%d:%d %q", s.Pos.Line+1, s.Pos.Col+1, s.Char)
}

// StatusLine is the left-hand side of a host's status bar: document name,
// mode, top visual row out of the total and, in NoWrap, the first visible
// column.
func (v *Viewport) StatusLine(name string) string {
	line := fmt.Sprintf(" %s | %s | %d/%d", name, v.mode, v.scroll.Y+1, max(v.TotalRows(), 1))
	if v.mode == NoWrap {
		line += fmt.Sprintf(" | col %d", v.scroll.X+1)
	}
	return line
}
