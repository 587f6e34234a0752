package vt

// Print implements Handler.Print: the writing algorithm of spec.md §4.3
// steps 1-4 (char-set translation, pending-wrap latch, write, advance or
// latch again).
func (s *Screen) Print(r rune) {
	r = s.charset.Translate(r)

	if s.cursor.PendingWrap && s.modes.GetPrivate(ModeDECAWM) {
		s.lineFeed()
		s.cursor.X = 0
		s.cursor.PendingWrap = false
	}

	s.active.Set(s.cursor.X, s.cursor.Y, Cell{Char: r, Style: s.cursor.Style})

	if s.cursor.X == s.active.Width()-1 {
		s.cursor.PendingWrap = true
	} else {
		s.cursor.X++
		s.cursor.PendingWrap = false
	}
}

// Execute implements Handler.Execute: C0 controls that act immediately
// rather than through CSI/ESC dispatch. 8-bit C1 controls do not arrive
// here; the Parser routes them through ESC dispatch.
func (s *Screen) Execute(b byte) {
	switch b {
	case '\r':
		s.carriageReturn()
	case '\n', '\v', '\f':
		s.lineFeed()
	case '\t':
		s.horizontalTab()
	case 0x08: // BS
		s.backspace()
	case 0x07: // BEL
		// No-op at the core level; an embedder may observe this via a
		// higher-level hook if one is added later.
	}
}

func (s *Screen) carriageReturn() {
	s.cursor.X = 0
	s.cursor.PendingWrap = false
}

func (s *Screen) horizontalTab() {
	s.cursor.X = s.tabs.Next(s.cursor.X)
	s.cursor.PendingWrap = false
}

func (s *Screen) backspace() {
	if s.cursor.X > 0 {
		s.cursor.X--
	}
	s.cursor.PendingWrap = false
}

// lineFeed implements LF/IND: scroll at the scroll region's bottom edge,
// otherwise move down one row.
func (s *Screen) lineFeed() {
	if s.cursor.Y == s.scrollBottom {
		s.active.ScrollUp(s.scrollTop, s.scrollBottom, 1, s.effectiveFillStyle())
		return
	}
	if s.cursor.Y < s.active.Height()-1 {
		s.cursor.Y++
	}
}

// reverseIndex implements RI: symmetric to lineFeed at the top edge.
func (s *Screen) reverseIndex() {
	if s.cursor.Y == s.scrollTop {
		s.active.ScrollDown(s.scrollTop, s.scrollBottom, 1, s.effectiveFillStyle())
		return
	}
	if s.cursor.Y > 0 {
		s.cursor.Y--
	}
}

// nextLine implements NEL (CR + LF combined).
func (s *Screen) nextLine() {
	s.carriageReturn()
	s.lineFeed()
}

// --- cursor motion -------------------------------------------------

// vClamp returns the valid vertical range for the cursor: the scroll
// region when DECOM is on, the whole grid otherwise.
func (s *Screen) vClamp() (lo, hi int) {
	if s.modes.GetPrivate(ModeDECOM) {
		return s.scrollTop, s.scrollBottom
	}
	return 0, s.active.Height() - 1
}

func (s *Screen) moveCursorAbs(x, y int) {
	lo, hi := s.vClamp()
	s.cursor.Y = clampCoord(y, lo, hi)
	s.cursor.X = clampCoord(x, 0, s.active.Width()-1)
	s.cursor.PendingWrap = false
}

// cursorOriginY returns the row the cursor logically sits on: relative
// to the scroll region top under DECOM, absolute otherwise. Used to
// report DSR 6.
func (s *Screen) cursorOriginY() int {
	if s.modes.GetPrivate(ModeDECOM) {
		return s.cursor.Y - s.scrollTop
	}
	return s.cursor.Y
}

func (s *Screen) cursorUp(n int) {
	lo, _ := s.vClamp()
	s.cursor.Y = clampCoord(s.cursor.Y-n, lo, s.active.Height()-1)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorDown(n int) {
	_, hi := s.vClamp()
	s.cursor.Y = clampCoord(s.cursor.Y+n, 0, hi)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorForward(n int) {
	s.cursor.X = clampCoord(s.cursor.X+n, 0, s.active.Width()-1)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorBackward(n int) {
	s.cursor.X = clampCoord(s.cursor.X-n, 0, s.active.Width()-1)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorNextLine(n int) {
	s.cursorDown(n)
	s.cursor.X = 0
}

func (s *Screen) cursorPrevLine(n int) {
	s.cursorUp(n)
	s.cursor.X = 0
}

func (s *Screen) cursorColumn(x int) {
	s.cursor.X = clampCoord(x, 0, s.active.Width()-1)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorLine(y int) {
	lo, hi := s.vClamp()
	s.cursor.Y = clampCoord(lo+y, lo, hi)
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorTabForward(n int) {
	for i := 0; i < n; i++ {
		s.cursor.X = s.tabs.Next(s.cursor.X)
	}
	s.cursor.PendingWrap = false
}

func (s *Screen) cursorTabBackward(n int) {
	for i := 0; i < n; i++ {
		s.cursor.X = s.tabs.Prev(s.cursor.X)
	}
	s.cursor.PendingWrap = false
}

// --- scroll region / erase / insert-delete --------------------------

// setScrollRegion implements DECSTBM per spec.md §4.3: 1-based inclusive
// params; invalid params reset to the full screen. Cursor homes to the
// region origin afterward.
func (s *Screen) setScrollRegion(top, bottom int) {
	t, b := top-1, bottom-1
	if t < 0 || b >= s.active.Height() || t >= b {
		t, b = 0, s.active.Height()-1
	}
	s.scrollTop, s.scrollBottom = t, b
	s.moveCursorAbs(0, t)
}

// eraseDisplay implements ED. Modes: 0 cursor..end, 1 start..cursor,
// 2/3 whole display (scrollback is not modeled, so 3 behaves like 2).
func (s *Screen) eraseDisplay(mode int) {
	fill := s.effectiveFillStyle()
	w, h := s.active.Width(), s.active.Height()
	switch mode {
	case 0:
		s.active.ClearRegion(s.cursor.X, s.cursor.Y, w-1, s.cursor.Y, fill)
		if s.cursor.Y+1 <= h-1 {
			s.active.ClearRegion(0, s.cursor.Y+1, w-1, h-1, fill)
		}
	case 1:
		if s.cursor.Y > 0 {
			s.active.ClearRegion(0, 0, w-1, s.cursor.Y-1, fill)
		}
		s.active.ClearRegion(0, s.cursor.Y, s.cursor.X, s.cursor.Y, fill)
	case 2, 3:
		s.active.ClearRegion(0, 0, w-1, h-1, fill)
	}
}

// eraseLine implements EL.
func (s *Screen) eraseLine(mode int) {
	fill := s.effectiveFillStyle()
	w := s.active.Width()
	switch mode {
	case 0:
		s.active.ClearRegion(s.cursor.X, s.cursor.Y, w-1, s.cursor.Y, fill)
	case 1:
		s.active.ClearRegion(0, s.cursor.Y, s.cursor.X, s.cursor.Y, fill)
	case 2:
		s.active.ClearRegion(0, s.cursor.Y, w-1, s.cursor.Y, fill)
	}
}

func (s *Screen) insertChars(n int) {
	s.active.InsertCells(s.cursor.X, s.cursor.Y, n, s.effectiveFillStyle())
}

func (s *Screen) deleteChars(n int) {
	s.active.DeleteCells(s.cursor.X, s.cursor.Y, n, s.effectiveFillStyle())
}

// insertLines/deleteLines are no-ops when the cursor sits outside the
// scroll region, per spec.md §4.3's "IL/DL operate on the scroll region
// if cursor is inside it, otherwise they are no-ops."
func (s *Screen) insertLines(n int) {
	if s.cursor.Y < s.scrollTop || s.cursor.Y > s.scrollBottom {
		return
	}
	s.active.InsertLines(s.cursor.Y, n, s.scrollTop, s.scrollBottom, s.effectiveFillStyle())
}

func (s *Screen) deleteLines(n int) {
	if s.cursor.Y < s.scrollTop || s.cursor.Y > s.scrollBottom {
		return
	}
	s.active.DeleteLines(s.cursor.Y, n, s.scrollTop, s.scrollBottom, s.effectiveFillStyle())
}

func (s *Screen) scrollUp(n int) {
	s.active.ScrollUp(s.scrollTop, s.scrollBottom, n, s.effectiveFillStyle())
}

func (s *Screen) scrollDown(n int) {
	s.active.ScrollDown(s.scrollTop, s.scrollBottom, n, s.effectiveFillStyle())
}

// --- save/restore cursor, alternate buffer ---------------------------

// decsc implements DECSC (ESC 7): snapshot the cursor and charset state
// into whichever buffer is currently active. DECOM lives in the mode
// table rather than on Cursor day to day, so it's copied onto the cursor
// here purely for the save.
func (s *Screen) decsc() {
	s.cursor.OriginMode = s.modes.GetPrivate(ModeDECOM)
	s.savedCursorSlot().Save(s.cursor, s.charset)
}

// decrc implements DECRC (ESC 8): restore from the active buffer's slot,
// clamping to the current dimensions.
func (s *Screen) decrc() {
	c, cs := s.savedCursorSlot().Restore()
	s.charset = cs
	s.cursor = c
	s.modes.SetPrivate(ModeDECOM, c.OriginMode)
	s.clampCursor()
}

func (s *Screen) savedCursorSlot() *SavedCursor {
	if s.onAltScreen {
		return &s.savedAlt
	}
	return &s.savedPrimary
}

// enterAltScreen switches the active buffer to alt; clear selects
// whether the alternate buffer is cleared on entry (true for 1049, false
// for bare 47/1047 per most terminals' documented behavior — spec.md
// only requires 1049 to clear, so 47/1047 here preserve alt content,
// matching xterm's actual distinction between the two mode families).
func (s *Screen) enterAltScreen(clear bool) {
	if s.onAltScreen {
		return
	}
	s.onAltScreen = true
	s.active = s.alt
	if clear {
		s.active.ClearRegion(0, 0, s.active.Width()-1, s.active.Height()-1, Style{})
	}
}

func (s *Screen) exitAltScreen() {
	if !s.onAltScreen {
		return
	}
	s.onAltScreen = false
	s.active = s.primary
}
