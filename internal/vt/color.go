// Package vt implements the core ANSI/ECMA-48 terminal engine: a byte-stream
// parser, a two-buffer screen model, and an SGR-aware style value, as
// described by the terminal-emulator-core specification this module
// implements. The package has no knowledge of PTYs, rendering, or input
// translation; it only transforms bytes into grid state and, optionally,
// reply bytes.
package vt

// ColorKind discriminates the three shapes a Color can take.
type ColorKind uint8

const (
	// ColorDefault means "the terminal's default foreground/background",
	// i.e. no explicit color has been selected.
	ColorDefault ColorKind = iota
	// ColorIndexed selects one of the 256 palette entries.
	ColorIndexed
	// ColorRGB is a direct 24-bit truecolor value.
	ColorRGB
)

// Color is a tagged union: Default, Indexed(0..255), or Rgb(r,g,b).
type Color struct {
	Kind ColorKind
	Idx  uint8 // valid when Kind == ColorIndexed
	R    uint8 // valid when Kind == ColorRGB
	G    uint8
	B    uint8
}

// DefaultColor is the zero value; it is also Color{}.
var DefaultColor = Color{Kind: ColorDefault}

// Indexed builds a palette color.
func Indexed(n uint8) Color { return Color{Kind: ColorIndexed, Idx: n} }

// RGB builds a truecolor value.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }
