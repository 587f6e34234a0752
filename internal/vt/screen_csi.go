package vt

// CSIDispatch implements Handler.CSIDispatch: the (intermediate, final,
// private) → operation jump table spec.md §4.4 calls for. Unknown
// combinations are silently dropped per §7 ("Unknown but well-formed
// CSI/OSC: Dispatch produces no effect").
func (s *Screen) CSIDispatch(cmd CSICommand) {
	if len(cmd.Params) > MaxParams {
		cmd.Params = cmd.Params[:MaxParams]
	}

	if len(cmd.Intermediates) > 0 {
		s.csiWithIntermediate(cmd)
		return
	}

	switch cmd.Private {
	case '?':
		s.csiPrivate(cmd)
		return
	case '>':
		s.csiSecondary(cmd)
		return
	}

	switch cmd.Final {
	case 'A':
		s.cursorUp(IntOr(cmd.Params, 0, 1))
	case 'B':
		s.cursorDown(IntOr(cmd.Params, 0, 1))
	case 'C':
		s.cursorForward(IntOr(cmd.Params, 0, 1))
	case 'D':
		s.cursorBackward(IntOr(cmd.Params, 0, 1))
	case 'E':
		s.cursorNextLine(IntOr(cmd.Params, 0, 1))
	case 'F':
		s.cursorPrevLine(IntOr(cmd.Params, 0, 1))
	case 'G', '`':
		s.cursorColumn(IntOr(cmd.Params, 0, 1) - 1)
	case 'd':
		s.cursorLine(IntOr(cmd.Params, 0, 1) - 1)
	case 'H', 'f':
		row := IntOr(cmd.Params, 0, 1)
		col := IntOr(cmd.Params, 1, 1)
		lo, _ := s.vClamp()
		s.moveCursorAbs(col-1, lo+row-1)
	case 'I':
		s.cursorTabForward(IntOr(cmd.Params, 0, 1))
	case 'Z':
		s.cursorTabBackward(IntOr(cmd.Params, 0, 1))
	case 'J':
		s.eraseDisplay(RawIntOr(cmd.Params, 0, 0))
	case 'K':
		s.eraseLine(RawIntOr(cmd.Params, 0, 0))
	case 'L':
		s.insertLines(IntOr(cmd.Params, 0, 1))
	case 'M':
		s.deleteLines(IntOr(cmd.Params, 0, 1))
	case 'P':
		s.deleteChars(IntOr(cmd.Params, 0, 1))
	case '@':
		s.insertChars(IntOr(cmd.Params, 0, 1))
	case 'X':
		s.eraseChars(IntOr(cmd.Params, 0, 1))
	case 'S':
		s.scrollUp(IntOr(cmd.Params, 0, 1))
	case 'T':
		s.scrollDown(IntOr(cmd.Params, 0, 1))
	case 'g':
		s.tabClear(RawIntOr(cmd.Params, 0, 0))
	case 'm':
		s.cursor.Style = MergeSGR(s.cursor.Style, cmd.Params)
	case 'r':
		top := IntOr(cmd.Params, 0, 1)
		bottom := IntOr(cmd.Params, 1, s.active.Height())
		s.setScrollRegion(top, bottom)
	case 's':
		s.decsc()
	case 'u':
		s.decrc()
	case 'n':
		s.deviceStatusReport(IntOr(cmd.Params, 0, 0))
	case 'c':
		if IntOr(cmd.Params, 0, 0) == 0 {
			s.primaryDeviceAttributes()
		}
	case 'h':
		s.setANSIModes(cmd.Params, true)
	case 'l':
		s.setANSIModes(cmd.Params, false)
	}
}

// csiWithIntermediate handles the small set of operations that carry a
// single intermediate byte, currently only DECRQM ('$' 'p').
func (s *Screen) csiWithIntermediate(cmd CSICommand) {
	if len(cmd.Intermediates) == 1 && cmd.Intermediates[0] == '$' && cmd.Final == 'p' {
		s.decrqm(cmd)
	}
}

func (s *Screen) eraseChars(n int) {
	s.active.ClearRegion(s.cursor.X, s.cursor.Y, clampCoord(s.cursor.X+n-1, s.cursor.X, s.active.Width()-1), s.cursor.Y, s.effectiveFillStyle())
}

func (s *Screen) tabClear(mode int) {
	switch mode {
	case 0:
		s.tabs.Clear(s.cursor.X)
	case 3:
		s.tabs.ClearAll()
	}
}

func (s *Screen) setANSIModes(params []Param, on bool) {
	for _, p := range params {
		s.modes.SetANSI(p.Int(), on)
	}
}

// csiSecondary handles CSI > ... c, the secondary Device Attributes
// query; every other "CSI > ..." combination is a well-formed-but-
// unknown sequence and is dropped.
func (s *Screen) csiSecondary(cmd CSICommand) {
	if cmd.Final == 'c' {
		s.secondaryDeviceAttributes()
	}
}

// csiPrivate handles the "CSI ? ..." family: DECSET/DECRST (h/l) and,
// for completeness, DECSTBM-adjacent private forms some terminals accept
// with a '?' marker are intentionally not implemented since spec.md §4.3
// only documents the private mode table below.
func (s *Screen) csiPrivate(cmd CSICommand) {
	switch cmd.Final {
	case 'h':
		s.setPrivateModes(cmd.Params, true)
	case 'l':
		s.setPrivateModes(cmd.Params, false)
	}
}

func (s *Screen) setPrivateModes(params []Param, on bool) {
	for _, p := range params {
		n := p.Int()
		s.modes.SetPrivate(n, on)
		s.enactPrivateMode(n, on)
	}
}

// enactPrivateMode runs the side effect for the documented DEC-private
// mode subset of spec.md §4.3's table. Modes outside that subset are
// still recorded in the mode map by setPrivateModes above but have no
// enactment function, matching "unsupported modes update the mode map
// only."
func (s *Screen) enactPrivateMode(n int, on bool) {
	switch n {
	case ModeDECCOLM:
		cols := 80
		if on {
			cols = 132
		}
		s.Resize(cols, s.active.Height())
		s.primary.ClearRegion(0, 0, s.primary.Width()-1, s.primary.Height()-1, Style{})
		s.alt.ClearRegion(0, 0, s.alt.Width()-1, s.alt.Height()-1, Style{})
		s.moveCursorAbs(0, 0)
	case ModeAltScreen47, ModeAltScreen1047:
		if on {
			s.enterAltScreen(false)
		} else {
			s.exitAltScreen()
		}
	case ModeSaveCursor1048:
		if on {
			s.decsc()
		} else {
			s.decrc()
		}
	case ModeAltScreen1049:
		if on {
			s.decsc()
			s.enterAltScreen(true)
		} else {
			s.exitAltScreen()
			s.decrc()
		}
	case ModeMouseVT200, ModeMouseBtnEvent, ModeMouseAnyEvent, ModeMouseX10:
		s.mouseTracking = s.modes.GetPrivate(ModeMouseVT200) || s.modes.GetPrivate(ModeMouseBtnEvent) ||
			s.modes.GetPrivate(ModeMouseAnyEvent) || s.modes.GetPrivate(ModeMouseX10)
	}
}
