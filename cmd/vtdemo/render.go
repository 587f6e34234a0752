package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/patrick-goecommerce/termcore/internal/vt"
)

// renderScreen walks a Screen's active buffer and turns it into a string
// lipgloss can print, one styled run per contiguous span of cells sharing
// a Style so the output doesn't emit a fresh escape sequence per glyph.
func renderScreen(s *vt.Screen) string {
	buf := s.Buffer()
	h := buf.Height()
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		lines[y] = renderRow(buf.Row(y))
	}
	return strings.Join(lines, "\n")
}

// renderRow walks one grid row and emits it as styled runs. The core
// stores exactly one code point per Cell and does no width accounting
// (spec §3), so a double-width glyph (CJK, most emoji) would otherwise
// print immediately followed by the next cell's content and visually
// overlap it in a real terminal. When a cell's rune is double-width,
// the following grid cell is treated as its occupied second column and
// dropped from the rendered line, the way a real terminal's own
// wide-character continuation cell would be skipped.
func renderRow(row []vt.Cell) string {
	if len(row) == 0 {
		return ""
	}
	var b strings.Builder
	runStyle := row[0].Style
	runStart := 0
	flush := func(end int) {
		if end <= runStart {
			return
		}
		b.WriteString(styleRun(row[runStart:end], runStyle))
	}
	x := 0
	for x < len(row) {
		if row[x].Style != runStyle {
			flush(x)
			runStyle = row[x].Style
			runStart = x
		}
		if runewidth.RuneWidth(row[x].Char) >= 2 && x+1 < len(row) {
			flush(x + 1)
			x += 2
			runStart = x
			if x < len(row) {
				runStyle = row[x].Style
			}
			continue
		}
		x++
	}
	flush(len(row))
	return b.String()
}

func styleRun(cells []vt.Cell, st vt.Style) string {
	var text strings.Builder
	for _, c := range cells {
		r := c.Char
		if r == 0 {
			r = ' '
		}
		text.WriteRune(r)
	}
	return lipglossStyle(st).Render(text.String())
}

// lipglossStyle translates a vt.Style into the lipgloss equivalent: SGR
// attributes map onto lipgloss's bool toggles, and colors map onto
// lipgloss's ANSI/ANSI256/TrueColor color types depending on vt.ColorKind.
func lipglossStyle(st vt.Style) lipgloss.Style {
	out := lipgloss.NewStyle()
	if st.Has(vt.AttrBold) {
		out = out.Bold(true)
	}
	if st.Has(vt.AttrDim) {
		out = out.Faint(true)
	}
	if st.Has(vt.AttrItalic) {
		out = out.Italic(true)
	}
	if st.Has(vt.AttrUnderline) || st.Has(vt.AttrDoubleUnderline) {
		out = out.Underline(true)
	}
	if st.Has(vt.AttrBlink) {
		out = out.Blink(true)
	}
	if st.Has(vt.AttrStrike) {
		out = out.Strikethrough(true)
	}
	if st.Has(vt.AttrConceal) {
		out = out.Foreground(out.GetBackground())
	}

	fg, bg := st.FG, st.BG
	if st.Has(vt.AttrReverse) {
		fg, bg = bg, fg
	}
	if c, ok := lipglossColor(fg); ok {
		out = out.Foreground(c)
	}
	if c, ok := lipglossColor(bg); ok {
		out = out.Background(c)
	}
	return out
}

func lipglossColor(c vt.Color) (lipgloss.Color, bool) {
	switch c.Kind {
	case vt.ColorIndexed:
		return lipgloss.Color(itoa(int(c.Idx))), true
	case vt.ColorRGB:
		return lipgloss.Color(rgbHex(c.R, c.G, c.B)), true
	default:
		return "", false
	}
}

func rgbHex(r, g, b uint8) string {
	const hex = "0123456789abcdef"
	buf := [7]byte{'#'}
	buf[1], buf[2] = hex[r>>4], hex[r&0xf]
	buf[3], buf[4] = hex[g>>4], hex[g&0xf]
	buf[5], buf[6] = hex[b>>4], hex[b&0xf]
	return string(buf[:])
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// cursorPosition returns the 1-based (row, col) of the screen cursor,
// the coordinates the caller overlays with lipgloss.Place or a terminal
// cursor-positioning escape after drawing the frame.
func cursorPosition(s *vt.Screen) (row, col int) {
	c := s.Cursor()
	return c.Y + 1, c.X + 1
}
