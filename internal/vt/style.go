package vt

import (
	"fmt"
	"strings"
)

// Attr is a bitset of SGR text attributes.
type Attr uint16

const (
	AttrBold Attr = 1 << iota
	AttrDim
	AttrItalic
	AttrUnderline
	AttrBlink
	AttrReverse
	AttrConceal
	AttrStrike
	AttrDoubleUnderline
	// AttrOverline corresponds to SGR 53. spec.md §3 enumerates the
	// attribute bitset without overline but §4.1's merge_sgr contract
	// explicitly lists "53" among the codes that must flip a bit; this
	// resolves that gap by carrying the bit spec.md's SGR table requires.
	AttrOverline
)

// Style is an immutable text-attribute value: two colors plus an
// attribute bitset. The zero value is the default style.
type Style struct {
	FG    Color
	BG    Color
	Attrs Attr
}

// Has reports whether a is set on s.
func (s Style) Has(a Attr) bool { return s.Attrs&a != 0 }

func (s Style) set(a Attr) Style { s.Attrs |= a; return s }
func (s Style) clear(a Attr) Style { s.Attrs &^= a; return s }

// MergeSGR applies one SGR command's parameter list to s and returns the
// updated Style. params follow the CSI parameter model: each element may
// be "empty" (a None slot, equivalent to 0) and may carry colon-separated
// sub-parameters. Unknown codes are ignored; malformed 38/48 truncations
// leave the color unchanged and stop only that subcommand, not the whole
// list.
func MergeSGR(s Style, params []Param) Style {
	if len(params) == 0 {
		return Style{}
	}
	i := 0
	for i < len(params) {
		v := params[i].Int()
		switch {
		case v == 0:
			s = Style{}
		case v >= 1 && v <= 9:
			s = setBasicAttr(s, v, true)
		case v == 21:
			s = s.set(AttrDoubleUnderline)
		case v >= 22 && v <= 29:
			s = setBasicAttr(s, v, false)
		case v == 53:
			s = s.set(AttrOverline)
		case v == 55:
			s = s.clear(AttrOverline)
		case v >= 30 && v <= 37:
			s.FG = Indexed(uint8(v - 30))
		case v >= 90 && v <= 97:
			s.FG = Indexed(uint8(v-90) + 8)
		case v == 38:
			i = mergeExtendedColor(params, i, &s.FG)
		case v == 39:
			s.FG = DefaultColor
		case v >= 40 && v <= 47:
			s.BG = Indexed(uint8(v - 40))
		case v >= 100 && v <= 107:
			s.BG = Indexed(uint8(v-100) + 8)
		case v == 48:
			i = mergeExtendedColor(params, i, &s.BG)
		case v == 49:
			s.BG = DefaultColor
		}
		i++
	}
	return s
}

// setBasicAttr maps SGR 1-9 (on) / 22-29 (off) to the matching bit. 26 is
// unassigned in ECMA-48 and is a no-op.
func setBasicAttr(s Style, v int, on bool) Style {
	var a Attr
	switch v {
	case 1, 22:
		a = AttrBold
		if v == 22 {
			// 22 clears both bold and dim per ECMA-48.
			s = s.clear(AttrDim)
		}
	case 2:
		a = AttrDim
	case 3, 23:
		a = AttrItalic
	case 4, 24:
		a = AttrUnderline
		if v == 24 {
			s = s.clear(AttrDoubleUnderline)
		}
	case 5, 6, 25:
		a = AttrBlink
	case 7, 27:
		a = AttrReverse
	case 8, 28:
		a = AttrConceal
	case 9, 29:
		a = AttrStrike
	default:
		return s
	}
	if on {
		return s.set(a)
	}
	return s.clear(a)
}

// mergeExtendedColor handles "38"/"48" in both sub-parameter forms:
// colon ("38:5:N", "38:2:R:G:B") and semicolon ("38;5;N", "38;2;R;G;B").
// Returns the index of the last top-level parameter consumed; the caller's
// loop advances one past it as usual.
func mergeExtendedColor(params []Param, i int, dst *Color) int {
	if len(params[i].Subs) > 0 {
		subs := params[i].Subs
		switch subs[0] {
		case 5:
			if len(subs) >= 2 {
				*dst = Indexed(uint8(clampByte(subs[1])))
			}
		case 2:
			if len(subs) >= 4 {
				r, g, b := subs[len(subs)-3], subs[len(subs)-2], subs[len(subs)-1]
				*dst = RGB(uint8(clampByte(r)), uint8(clampByte(g)), uint8(clampByte(b)))
			}
		}
		return i
	}

	if i+1 >= len(params) {
		return i
	}
	switch params[i+1].Int() {
	case 5:
		if i+2 < len(params) {
			*dst = Indexed(uint8(clampByte(params[i+2].Int())))
			return i + 2
		}
		return len(params) - 1
	case 2:
		if i+4 < len(params) {
			r := params[i+2].Int()
			g := params[i+3].Int()
			b := params[i+4].Int()
			*dst = RGB(uint8(clampByte(r)), uint8(clampByte(g)), uint8(clampByte(b)))
			return i + 4
		}
		return len(params) - 1
	}
	return i
}

func clampByte(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Diff returns the SGR parameter list that, applied to any style starting
// point via MergeSGR, produces b. It always resets first and rebuilds
// (mirroring how real terminals re-render a style run), which makes it
// correct regardless of the starting style, not just from default.
func Diff(a, b Style) []int {
	if b == (Style{}) {
		return []int{0}
	}
	out := []int{0}
	if b.Has(AttrBold) {
		out = append(out, 1)
	}
	if b.Has(AttrDim) {
		out = append(out, 2)
	}
	if b.Has(AttrItalic) {
		out = append(out, 3)
	}
	if b.Has(AttrUnderline) {
		out = append(out, 4)
	}
	if b.Has(AttrBlink) {
		out = append(out, 5)
	}
	if b.Has(AttrReverse) {
		out = append(out, 7)
	}
	if b.Has(AttrConceal) {
		out = append(out, 8)
	}
	if b.Has(AttrStrike) {
		out = append(out, 9)
	}
	if b.Has(AttrDoubleUnderline) {
		out = append(out, 21)
	}
	if b.Has(AttrOverline) {
		out = append(out, 53)
	}
	out = append(out, colorSGR(b.FG, true)...)
	out = append(out, colorSGR(b.BG, false)...)
	return out
}

func colorSGR(c Color, fg bool) []int {
	switch c.Kind {
	case ColorIndexed:
		if c.Idx < 8 {
			if fg {
				return []int{30 + int(c.Idx)}
			}
			return []int{40 + int(c.Idx)}
		}
		if c.Idx < 16 {
			if fg {
				return []int{90 + int(c.Idx) - 8}
			}
			return []int{100 + int(c.Idx) - 8}
		}
		if fg {
			return []int{38, 5, int(c.Idx)}
		}
		return []int{48, 5, int(c.Idx)}
	case ColorRGB:
		if fg {
			return []int{38, 2, int(c.R), int(c.G), int(c.B)}
		}
		return []int{48, 2, int(c.R), int(c.G), int(c.B)}
	default:
		return nil
	}
}

// DiffString renders Diff's parameter list as a single CSI ... m sequence,
// the form external renderers actually compare.
func DiffString(a, b Style) string {
	parts := Diff(a, b)
	strs := make([]string, len(parts))
	for i, p := range parts {
		strs[i] = fmt.Sprintf("%d", p)
	}
	return "\x1b[" + strings.Join(strs, ";") + "m"
}
