package vt

// ResponseWriter is the byte sink a Screen writes replies to: DSR, DA,
// mouse reports, bracketed-paste delimiters. The core never writes to a
// PTY directly; it only ever calls this interface. Per spec.md §4.5, if
// the sink is momentarily unable to accept bytes it may drop them —
// Screen never blocks and never retries.
type ResponseWriter interface {
	WriteResponse(p []byte)
}

// NopResponseWriter discards everything written to it. Useful for tests
// and embedders that don't care about replies.
type NopResponseWriter struct{}

func (NopResponseWriter) WriteResponse([]byte) {}

// Screen is the terminal's grid-level state machine: it owns both the
// primary and alternate Buffers, the cursor, scroll region, tab stops,
// mode table and character-set state, and implements Handler so a Parser
// can drive it directly. Screen never touches a byte stream itself; all
// input arrives pre-parsed via the Handler methods, and all replies leave
// through reply.
type Screen struct {
	primary *Buffer
	alt     *Buffer
	active  *Buffer // points at primary or alt

	cursor Cursor

	savedPrimary SavedCursor
	savedAlt     SavedCursor

	scrollTop    int
	scrollBottom int

	tabs    *TabStops
	modes   *Modes
	charset CharsetState

	title string

	// clipboard holds the last OSC 52 payload set. Stubbed per spec.md
	// §4.3 ("clipboard set, may be stubbed"): no host clipboard exists at
	// this layer, so the value is only exposed for an embedder to read.
	clipboard []byte

	onAltScreen bool

	reply ResponseWriter

	// mouseTracking caches whether any of the 9/1000/1002/1003 tracking
	// modes is set, used only to decide whether ReportMouse should emit
	// anything at all.
	mouseTracking bool
}

// NewScreen builds a Screen with the given grid dimensions, replying
// through reply (pass NopResponseWriter{} if replies are not wanted).
func NewScreen(cols, rows int, reply ResponseWriter) *Screen {
	if cols <= 0 {
		cols = 80
	}
	if rows <= 0 {
		rows = 24
	}
	s := &Screen{
		primary:      NewBuffer(cols, rows),
		alt:          NewBuffer(cols, rows),
		scrollTop:    0,
		scrollBottom: rows - 1,
		tabs:         NewTabStops(cols),
		modes:        NewModes(),
		charset:      NewCharsetState(),
		reply:        reply,
	}
	s.active = s.primary
	s.modes.SetPrivate(ModeDECAWM, true)
	s.modes.SetPrivate(ModeDECTCEM, true)
	return s
}

// Resize changes the live grid dimensions of both buffers. Per spec.md
// §7 ("Resize to zero dimension: Reject; keep previous dimensions"), a
// non-positive width or height is rejected outright.
func (s *Screen) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	st := Style{}
	s.primary.Resize(cols, rows, st)
	s.alt.Resize(cols, rows, st)
	s.tabs.ResetDefault(cols)
	s.scrollTop = 0
	s.scrollBottom = rows - 1
	s.clampCursor()
}

// Width and Height report the active buffer's current dimensions.
func (s *Screen) Width() int  { return s.active.Width() }
func (s *Screen) Height() int { return s.active.Height() }

// Cursor returns the current cursor state by value.
func (s *Screen) Cursor() Cursor { return s.cursor }

// Title returns the current window title set via OSC 0/2.
func (s *Screen) Title() string { return s.title }

// Clipboard returns the last payload set via OSC 52, or nil if none.
func (s *Screen) Clipboard() []byte { return s.clipboard }

// Buffer returns the currently active Buffer (primary, unless the
// alternate-screen mode is engaged) for read access by a renderer.
func (s *Screen) Buffer() *Buffer { return s.active }

// OnAltScreen reports whether the alternate buffer is currently active.
func (s *Screen) OnAltScreen() bool { return s.onAltScreen }

// ModeEnabled reports a DEC-private mode's current state, for renderers
// that need to observe e.g. DECSCNM or DECTCEM.
func (s *Screen) ModeEnabled(n int) bool { return s.modes.GetPrivate(n) }

func (s *Screen) clampCursor() {
	s.cursor.X = clampCoord(s.cursor.X, 0, s.active.Width()-1)
	s.cursor.Y = clampCoord(s.cursor.Y, 0, s.active.Height()-1)
	s.cursor.PendingWrap = false
}

// effectiveFillStyle is the background-only style erase/scroll fills
// use: spec.md §4.3 says fills use "current Style's background-only
// Style" — i.e. foreground/attributes dropped, background preserved.
func (s *Screen) effectiveFillStyle() Style {
	return Style{BG: s.cursor.Style.BG}
}

func (s *Screen) writeReply(p []byte) {
	if s.reply == nil || len(p) == 0 {
		return
	}
	s.reply.WriteResponse(p)
}
