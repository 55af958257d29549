// Package highlight provides syntax colouring via Chroma, decoupled from any
// specific front end. Colours are resolved per rune so that a character
// grid can colour each cell by its buffer position.
package highlight

import (
	"fmt"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/xonecas/glance/internal/document"
)

// Colors holds a "#rrggbb" foreground per rune of a document, indexed
// [line][col]. An empty string means the theme default.
type Colors [][]string

// At returns the colour at (line, col), or "" when out of range.
func (c Colors) At(line, col int) string {
	if line < 0 || line >= len(c) || col < 0 || col >= len(c[line]) {
		return ""
	}
	return c[line][col]
}

// Colorize tokenises doc with the given Chroma language and resolves each
// token's foreground in theme. It returns nil for unknown languages.
func Colorize(doc *document.Document, language, theme string) Colors {
	lex := lexers.Get(language)
	if lex == nil || doc.Len() == 0 {
		return nil
	}
	lex = chroma.Coalesce(lex)
	sty := styles.Get(theme)
	it, err := lex.Tokenise(nil, doc.String())
	if err != nil {
		return nil
	}

	out := make(Colors, doc.Len())
	for i, l := range doc.Lines() {
		out[i] = make([]string, len(l))
	}
	line, col := 0, 0
	for tok := it(); tok != chroma.EOF; tok = it() {
		colour := ""
		if e := sty.Get(tok.Type); e.Colour.IsSet() {
			colour = e.Colour.String()
		}
		for _, r := range tok.Value {
			if r == '\n' {
				line++
				col = 0
				continue
			}
			if line < len(out) && col < len(out[line]) {
				out[line][col] = colour
			}
			col++
		}
	}
	return out
}

// ThemeBg extracts the background hex color from a Chroma style.
// Returns "" if no background is set.
func ThemeBg(theme string) string {
	sty := styles.Get(theme)
	if sty == nil {
		return ""
	}
	bg := sty.Get(chroma.Background).Background
	if !bg.IsSet() {
		return ""
	}
	return bg.String() // "#rrggbb"
}

// Palette holds viewer colours derived from a Chroma theme. Status colours
// sit on a ramp from bg to fg; Select is the most saturated token colour.
type Palette struct {
	Bg       string // text background
	Fg       string // default text
	StatusBg string // 10% bg→fg
	StatusFg string // 60% bg→fg
	Select   string // selection inversion background
	Error    string // degenerate viewport message
}

// ThemePalette derives a Palette from a Chroma theme name. Same theme,
// same output.
func ThemePalette(theme string) Palette {
	sty := styles.Get(theme)
	if sty == nil {
		return defaultPalette()
	}
	bg := ThemeBg(theme)
	if bg == "" {
		bg = "#000000"
	}
	fg := "#c8c8c8"
	if c := sty.Get(chroma.Background).Colour; c.IsSet() {
		fg = c.String()
	}
	errColour := lerpHex(bg, fg, 0.45)
	if e := sty.Get(chroma.Error); e.Colour.IsSet() {
		errColour = e.Colour.String()
	}
	return Palette{
		Bg:       bg,
		Fg:       fg,
		StatusBg: lerpHex(bg, fg, 0.10),
		StatusFg: lerpHex(bg, fg, 0.60),
		Select:   mostSaturated(sty, fg),
		Error:    errColour,
	}
}

func defaultPalette() Palette {
	return Palette{
		Bg: "#000000", Fg: "#c8c8c8",
		StatusBg: "#141414", StatusFg: "#787878",
		Select: "#00dfff", Error: "#932e2e",
	}
}

// mostSaturated returns the most saturated foreground across all tokens.
func mostSaturated(sty *chroma.Style, fallback string) string {
	best := fallback
	bestSat := 0.0
	for _, tt := range sty.Types() {
		e := sty.Get(tt)
		if !e.Colour.IsSet() {
			continue
		}
		hex := e.Colour.String()
		r, g, b := hexToRGBf(hex)
		hi := max(r, g, b)
		if hi == 0 {
			continue
		}
		if sat := (hi - min(r, g, b)) / hi; sat > bestSat {
			bestSat = sat
			best = hex
		}
	}
	return best
}

// lerpHex linearly interpolates between two hex colors at fraction t.
func lerpHex(a, b string, t float64) string {
	ar, ag, ab := hexToRGBf(a)
	br, bg, bb := hexToRGBf(b)
	return fmt.Sprintf("#%02x%02x%02x",
		clampByte(ar+(br-ar)*t),
		clampByte(ag+(bg-ag)*t),
		clampByte(ab+(bb-ab)*t),
	)
}

func hexToRGBf(hex string) (float64, float64, float64) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0
	}
	return float64(hexByte(hex[1], hex[2])),
		float64(hexByte(hex[3], hex[4])),
		float64(hexByte(hex[5], hex[6]))
}

func hexByte(hi, lo byte) int {
	return hexNibble(hi)<<4 | hexNibble(lo)
}

func hexNibble(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return 0
}

func clampByte(v float64) int {
	return int(max(0, min(255, v)) + 0.5)
}
