package bitboard

import (
	"fmt"
	"io"
	"strings"
)

const (
	setGlyph   = "xx"
	unsetGlyph = "oo"
	cellGap    = "  "
	indent     = "  "
	keyGap     = "\t\t"
)

// Highlighter styles a piece of board output depending on whether
// the square it belongs to is set.
type Highlighter interface {
	Highlight(text string, set bool) string
}

type HighlighterFunc func(text string, set bool) string

func (f HighlighterFunc) Highlight(text string, set bool) string {
	return f(text, set)
}

// Plain leaves text untouched.
var Plain Highlighter = HighlighterFunc(func(text string, _ bool) string { return text })

// Format renders the board as 8 rows of 4 glyphs followed by a key of square
// indices. Even rows are indented so the rows form a staggered pattern.
func (b Board) Format(h Highlighter) string {
	if h == nil {
		h = Plain
	}

	var sb strings.Builder
	for row := uint(0); row < Rows; row++ {
		indented := row%2 == 0
		if indented {
			sb.WriteString(indent)
		}

		for col := uint(0); col < Cols; col++ {
			set := b.IsSet(row*Cols + col)
			glyph := unsetGlyph
			if set {
				glyph = setGlyph
			}
			sb.WriteString(h.Highlight(glyph, set))
			sb.WriteString(cellGap)
		}

		// align the right edge of the glyphs
		if !indented {
			sb.WriteString(indent)
		}

		sb.WriteString(keyGap)

		if indented {
			sb.WriteString(indent)
		}

		for col := uint(0); col < Cols; col++ {
			square := row*Cols + col
			set := b.IsSet(square)
			sb.WriteString(h.Highlight(fmt.Sprintf("%02d", square), set))
			sb.WriteString(cellGap)
		}

		sb.WriteString("\n")
	}
	return sb.String()
}

func Render(w io.Writer, b Board, h Highlighter) error {
	_, err := io.WriteString(w, b.Format(h))
	return err
}
