package ui

import "strings"

// The display value is drawn as block glyphs so the font size setting has a
// real effect in a cell grid. Each glyph is 5 rows tall; the user's font
// size maps to a scale factor that multiplies both glyph dimensions.

// glyphRows is the height of the base font.
const glyphRows = 5

// blankGlyph stands in for runes outside the font, digit-wide so layout
// stays stable.
var blankGlyph = []string{"   ", "   ", "   ", "   ", "   "}

// glyphs holds the base font: digits plus the characters DisplayValue can
// produce. Rows within one glyph share a width.
var glyphs = map[rune][]string{
	'0': {"███", "█ █", "█ █", "█ █", "███"},
	'1': {" █ ", "██ ", " █ ", " █ ", "███"},
	'2': {"███", "  █", "███", "█  ", "███"},
	'3': {"███", "  █", "███", "  █", "███"},
	'4': {"█ █", "█ █", "███", "  █", "  █"},
	'5': {"███", "█  ", "███", "  █", "███"},
	'6': {"███", "█  ", "███", "█ █", "███"},
	'7': {"███", "  █", "  █", "  █", "  █"},
	'8': {"███", "█ █", "███", "█ █", "███"},
	'9': {"███", "█ █", "███", "  █", "███"},
	'-': {"   ", "   ", "███", "   ", "   "},
	'.': {" ", " ", " ", " ", "█"},
	' ': {" ", " ", " ", " ", " "},
}

// glyphScale maps a font size to the block scale factor. Size 10, the
// default, renders two cells per glyph cell.
func glyphScale(fontSize int) int {
	scale := fontSize / glyphRows
	if scale < 1 {
		scale = 1
	}
	return scale
}

// renderBigText draws text as block glyphs at the given scale and returns
// one string of scale*glyphRows lines. Runes outside the font render as
// blanks of digit width.
func renderBigText(text string, scale int) string {
	if scale < 1 {
		scale = 1
	}

	var rows []strings.Builder
	rows = make([]strings.Builder, glyphRows*scale)

	for i, r := range text {
		glyph, ok := glyphs[r]
		if !ok {
			glyph = blankGlyph
		}
		for out := range rows {
			src := glyph[out/scale]
			if i > 0 {
				rows[out].WriteString(strings.Repeat(" ", scale))
			}
			for _, cell := range src {
				rows[out].WriteString(strings.Repeat(string(cell), scale))
			}
		}
	}

	lines := make([]string, len(rows))
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}

// bigTextWidth is the cell width renderBigText would produce for text at the
// given scale, including the one-glyph-cell gaps between characters.
func bigTextWidth(text string, scale int) int {
	if scale < 1 {
		scale = 1
	}
	width := 0
	for i, r := range text {
		glyph, ok := glyphs[r]
		if !ok {
			glyph = blankGlyph
		}
		if i > 0 {
			width += scale
		}
		width += len([]rune(glyph[0])) * scale
	}
	return width
}

// fitScale shrinks scale until the rendered text fits within maxWidth and
// maxHeight, but never below 1: a tiny terminal clips rather than hiding
// the reading entirely.
func fitScale(text string, scale, maxWidth, maxHeight int) int {
	if scale < 1 {
		return 1
	}
	for scale > 1 {
		if glyphRows*scale <= maxHeight && bigTextWidth(text, scale) <= maxWidth {
			break
		}
		scale--
	}
	return scale
}
