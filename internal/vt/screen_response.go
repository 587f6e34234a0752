package vt

import "fmt"

// deviceStatusReport implements DSR (CSI Ps n). Ps=5 reports "terminal
// OK" (CSI 0 n); Ps=6 reports the cursor position (CSI row;col R),
// 1-based and origin-relative under DECOM per spec.md §4.3.
func (s *Screen) deviceStatusReport(ps int) {
	switch ps {
	case 5:
		s.writeReply([]byte("\x1b[0n"))
	case 6:
		row := s.cursorOriginY() + 1
		col := s.cursor.X + 1
		s.writeReply([]byte(fmt.Sprintf("\x1b[%d;%dR", row, col)))
	}
}

// primaryDeviceAttributes replies to "CSI c" / "CSI 0 c" with a
// VT102-compatible identification, per spec.md §4.3.
func (s *Screen) primaryDeviceAttributes() {
	s.writeReply([]byte("\x1b[?6c"))
}

// secondaryDeviceAttributes replies to "CSI > c" identifying terminal
// type/firmware/keyboard, matching the format spec.md §6 names.
func (s *Screen) secondaryDeviceAttributes() {
	s.writeReply([]byte("\x1b[>1;10;0c"))
}

// decrqm implements DECRQM ("CSI Ps $ p" / "CSI ? Ps $ p"), replying
// with "CSI ? Ps ; Pm $ y" (or without "?" for ANSI-mode queries), where
// Pm is 0 (not recognized), 1 (set), 2 (reset), 3 (permanently set) or 4
// (permanently reset). This core never treats a mode as permanent, so
// the reply is always 0/1/2.
func (s *Screen) decrqm(cmd CSICommand) {
	n := IntOr(cmd.Params, 0, 0)
	var pm int
	var known bool
	if cmd.Private == '?' {
		known = isKnownPrivateMode(n)
		if s.modes.GetPrivate(n) {
			pm = 1
		} else {
			pm = 2
		}
	} else {
		known = n == ModeIRM || n == ModeLNM
		if s.modes.GetANSI(n) {
			pm = 1
		} else {
			pm = 2
		}
	}
	if !known {
		pm = 0
	}
	marker := ""
	if cmd.Private == '?' {
		marker = "?"
	}
	s.writeReply([]byte(fmt.Sprintf("\x1b[%s%d;%d$y", marker, n, pm)))
}

func isKnownPrivateMode(n int) bool {
	switch n {
	case ModeDECCKM, ModeDECCOLM, ModeDECSCNM, ModeDECOM, ModeDECAWM, ModeDECTCEM,
		ModeMouseX10, ModeMouseVT200, ModeMouseBtnEvent, ModeMouseAnyEvent,
		ModeFocusReport, ModeMouseUTF8, ModeMouseSGR,
		ModeAltScreen47, ModeAltScreen1047, ModeSaveCursor1048, ModeAltScreen1049,
		ModeBracketedPaste:
		return true
	}
	return false
}

// MouseButton/MouseAction identify the event ReportMouse encodes.
type MouseButton int

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonNone
	MouseButtonWheelUp
	MouseButtonWheelDown
)

type MouseAction int

const (
	MouseActionPress MouseAction = iota
	MouseActionRelease
	MouseActionMotion
)

// MouseModifiers is a bitset matching the shift/meta/ctrl bits of the
// classic mouse-report Cb byte.
type MouseModifiers int

const (
	ModShift MouseModifiers = 1 << iota
	ModMeta
	ModCtrl
)

// ReportMouse encodes a mouse event per whichever tracking/encoding
// modes are currently active and writes it to the reply sink. It is a
// no-op if no mouse tracking mode (9/1000/1002/1003) is enabled. x,y are
// 0-based grid coordinates.
func (s *Screen) ReportMouse(x, y int, btn MouseButton, action MouseAction, mods MouseModifiers) {
	if !s.mouseTracking {
		return
	}
	if action == MouseActionMotion && !s.modes.GetPrivate(ModeMouseAnyEvent) && !s.modes.GetPrivate(ModeMouseBtnEvent) {
		return
	}

	cb := mouseCb(btn, action, mods)

	switch {
	case s.modes.GetPrivate(ModeMouseSGR):
		final := byte('M')
		if action == MouseActionRelease {
			final = 'm'
		}
		s.writeReply([]byte(fmt.Sprintf("\x1b[<%d;%d;%d%c", cb, x+1, y+1, final)))
	case s.modes.GetPrivate(ModeMouseUTF8):
		x = clampCoord(x, 0, s.active.Width()-1)
		y = clampCoord(y, 0, s.active.Height()-1)
		var buf []byte
		buf = append(buf, "\x1b[M"...)
		buf = append(buf, byte(cb+32))
		buf = appendUTF8Coord(buf, x+1+32)
		buf = appendUTF8Coord(buf, y+1+32)
		s.writeReply(buf)
	default:
		cx := clampByte(x + 1 + 32)
		cy := clampByte(y + 1 + 32)
		s.writeReply([]byte{0x1b, '[', 'M', byte(cb + 32), byte(cx), byte(cy)})
	}
}

func mouseCb(btn MouseButton, action MouseAction, mods MouseModifiers) int {
	cb := 0
	switch btn {
	case MouseButtonLeft:
		cb = 0
	case MouseButtonMiddle:
		cb = 1
	case MouseButtonRight:
		cb = 2
	case MouseButtonNone:
		cb = 3
	case MouseButtonWheelUp:
		cb = 64
	case MouseButtonWheelDown:
		cb = 65
	}
	if action == MouseActionRelease && btn < MouseButtonNone {
		cb = 3
	}
	if action == MouseActionMotion {
		cb |= 32
	}
	cb |= int(mods)
	return cb
}

// appendUTF8Coord appends one mouse coordinate encoded as UTF-8, per
// mode 1005's rule ("like default but coordinates as UTF-8") — values
// above 127 are encoded as a two-byte UTF-8 sequence instead of being
// truncated to one byte.
func appendUTF8Coord(buf []byte, v int) []byte {
	if v < 0 {
		v = 0
	}
	if v < 128 {
		return append(buf, byte(v))
	}
	if v > 0x7ff {
		v = 0x7ff
	}
	r := rune(v)
	tmp := make([]byte, 4)
	n := encodeRuneUTF8(tmp, r)
	return append(buf, tmp[:n]...)
}

func encodeRuneUTF8(buf []byte, r rune) int {
	if r < 0x80 {
		buf[0] = byte(r)
		return 1
	}
	buf[0] = byte(0xc0 | (r >> 6))
	buf[1] = byte(0x80 | (r & 0x3f))
	return 2
}

// BracketedPaste wraps text in the CSI 200~/201~ delimiters if mode 2004
// is active, otherwise returns it unchanged. This is the inverse
// direction from replies — the embedder calls it on pasted input before
// writing the result into the child process's stdin, per spec.md §6.
func (s *Screen) BracketedPaste(text []byte) []byte {
	if !s.modes.GetPrivate(ModeBracketedPaste) {
		return text
	}
	out := make([]byte, 0, len(text)+12)
	out = append(out, "\x1b[200~"...)
	out = append(out, text...)
	out = append(out, "\x1b[201~"...)
	return out
}

// FocusReport returns the focus in/out escape sequence for the given
// state, if mode 1004 is active; nil otherwise.
func (s *Screen) FocusReport(focused bool) []byte {
	if !s.modes.GetPrivate(ModeFocusReport) {
		return nil
	}
	if focused {
		return []byte("\x1b[I")
	}
	return []byte("\x1b[O")
}
