package vt

// Charset identifies one of the designations a G-slot can hold.
type Charset uint8

const (
	CharsetASCII Charset = iota
	CharsetUK
	CharsetDECSpecialGraphics
)

// CharsetState tracks the four G-slots, the GL/GR pointers that select
// which slot is active for the lower/upper half of the byte range, and
// the SS2/SS3 single-shift latches, which apply to exactly one character
// and are then cleared regardless of whether that character was
// translated.
type CharsetState struct {
	G        [4]Charset // G0..G3
	GL       int        // index into G, active for 0x20-0x7F
	GR       int        // index into G, active for 0xA0-0xFF
	ss2, ss3 bool
}

// NewCharsetState returns the power-on default: all slots ASCII, GL=G0,
// GR=G2 (the conventional VT220 default; unused here since the core only
// ever writes 7-bit printables through GL, but kept for completeness).
func NewCharsetState() CharsetState {
	return CharsetState{GL: 0, GR: 2}
}

// Designate sets slot g (0-3) to cs.
func (c *CharsetState) Designate(g int, cs Charset) {
	if g < 0 || g > 3 {
		return
	}
	c.G[g] = cs
}

// SingleShift2 / SingleShift3 latch SS2/SS3 for exactly the next
// translated character.
func (c *CharsetState) SingleShift2() { c.ss2 = true }
func (c *CharsetState) SingleShift3() { c.ss3 = true }

// Translate maps r through the currently active character set, consuming
// any pending single shift. Only the GL-selected set actually affects
// plain ASCII-range input in this implementation, matching how the
// writing path in screen_write.go calls it.
func (c *CharsetState) Translate(r rune) rune {
	slot := c.GL
	if c.ss2 {
		slot = 2
		c.ss2 = false
	} else if c.ss3 {
		slot = 3
		c.ss3 = false
	}
	switch c.G[slot] {
	case CharsetDECSpecialGraphics:
		if t, ok := decSpecialGraphics[r]; ok {
			return t
		}
	case CharsetUK:
		if r == '#' {
			return '£'
		}
	}
	return r
}

// decSpecialGraphics is the VT100 DEC Special Graphics / line-drawing
// table, designated via "ESC ( 0" into G0 (or "ESC ) 0" into G1, etc.).
var decSpecialGraphics = map[rune]rune{
	'`': '◆', // diamond
	'a': '▒', // checkerboard
	'b': '␉', // HT symbol
	'c': '␌', // FF symbol
	'd': '␍', // CR symbol
	'e': '␊', // LF symbol
	'f': '°', // degree
	'g': '±', // plus/minus
	'h': '␤', // NL symbol
	'i': '␋', // VT symbol
	'j': '┘', // bottom-right corner
	'k': '┐', // top-right corner
	'l': '┌', // top-left corner
	'm': '└', // bottom-left corner
	'n': '┼', // crossing lines
	'o': '⎺', // scan line 1
	'p': '⎻', // scan line 3
	'q': '─', // horizontal line
	'r': '⎼', // scan line 7
	's': '⎽', // scan line 9
	't': '├', // left T
	'u': '┤', // right T
	'v': '┴', // bottom T
	'w': '┬', // top T
	'x': '│', // vertical line
	'y': '≤', // less-or-equal
	'z': '≥', // greater-or-equal
	'{': 'π', // pi
	'|': '≠', // not-equal
	'}': '£', // pound sterling
	'~': '·', // centered dot
}

// charsetIDFor maps the final byte of an "ESC ( X" / "ESC ) X" / ...
// designation sequence to a Charset. Unrecognized IDs fall back to ASCII,
// which is harmless since the table only ever narrows substitutions.
func charsetIDFor(b byte) Charset {
	switch b {
	case '0':
		return CharsetDECSpecialGraphics
	case 'A':
		return CharsetUK
	case 'B':
		return CharsetASCII
	default:
		return CharsetASCII
	}
}
