package vt

// Cell is one character position on a Buffer: a single Unicode scalar
// value plus the Style it was written with. The core never clusters
// graphemes; a Cell always holds exactly one code point.
type Cell struct {
	Char  rune
	Style Style
}

// EmptyCell is the canonical blank cell: a space with the default style.
var EmptyCell = Cell{Char: ' '}

// blankWith returns an empty cell carrying st as its style, used by erase
// and scroll operations that fill with the current background.
func blankWith(st Style) Cell {
	return Cell{Char: ' ', Style: st}
}
