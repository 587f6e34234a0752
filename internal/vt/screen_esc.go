package vt

// ESCDispatch implements Handler.ESCDispatch for two-character escape
// sequences: charset designation ("ESC ( X" etc.) when intermediates is
// non-empty, and the bare single-final-byte sequences (DECSC/DECRC, IND,
// NEL, RI, RIS, HTS) otherwise.
func (s *Screen) ESCDispatch(intermediates []byte, final byte) {
	if len(intermediates) == 1 {
		switch intermediates[0] {
		case '(':
			s.charset.Designate(0, charsetIDFor(final))
		case ')':
			s.charset.Designate(1, charsetIDFor(final))
		case '*':
			s.charset.Designate(2, charsetIDFor(final))
		case '+':
			s.charset.Designate(3, charsetIDFor(final))
		}
		return
	}

	switch final {
	case '7':
		s.decsc()
	case '8':
		s.decrc()
	case 'D':
		s.lineFeed()
	case 'E':
		s.nextLine()
	case 'M':
		s.reverseIndex()
	case 'H':
		s.tabs.Set(s.cursor.X)
	case 'c':
		s.fullReset()
	case 'N':
		s.charset.SingleShift2()
	case 'O':
		s.charset.SingleShift3()
	}
}

// fullReset implements RIS (ESC c): reinitialize every piece of state a
// real terminal resets on a hard reset, equivalent to power-on.
func (s *Screen) fullReset() {
	w, h := s.active.Width(), s.active.Height()
	s.primary = NewBuffer(w, h)
	s.alt = NewBuffer(w, h)
	s.active = s.primary
	s.onAltScreen = false
	s.cursor = Cursor{}
	s.savedPrimary = SavedCursor{}
	s.savedAlt = SavedCursor{}
	s.scrollTop, s.scrollBottom = 0, h-1
	s.tabs = NewTabStops(w)
	s.modes = NewModes()
	s.modes.SetPrivate(ModeDECAWM, true)
	s.modes.SetPrivate(ModeDECTCEM, true)
	s.charset = NewCharsetState()
	s.title = ""
	s.mouseTracking = false
}
