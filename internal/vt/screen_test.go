package vt

import (
	"bytes"
	"testing"
)

// recordingReply captures every WriteResponse call in order.
type recordingReply struct {
	buf bytes.Buffer
}

func (r *recordingReply) WriteResponse(p []byte) { r.buf.Write(p) }

func newTestScreen(cols, rows int) (*Screen, *recordingReply) {
	reply := &recordingReply{}
	return NewScreen(cols, rows, reply), reply
}

func feedString(s *Screen, input string) {
	p := NewParser(s)
	p.Feed([]byte(input))
}

func rowText(s *Screen, y int) string {
	row := s.Buffer().Row(y)
	out := make([]rune, len(row))
	for i, c := range row {
		out[i] = c.Char
	}
	return string(out)
}

// Scenario 1: "ABC\r\nDE" on a 5x2 grid.
func TestScenarioBasicWriteAndLineFeed(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	feedString(s, "ABC\r\nDE")

	if got := rowText(s, 0); got != "ABC  " {
		t.Fatalf("row 0 = %q, want %q", got, "ABC  ")
	}
	if got := rowText(s, 1); got != "DE   " {
		t.Fatalf("row 1 = %q, want %q", got, "DE   ")
	}
	c := s.Cursor()
	if c.X != 2 || c.Y != 1 {
		t.Fatalf("cursor = (%d,%d), want (2,1)", c.X, c.Y)
	}
}

// Scenario 2: ED 2J, cursor home, SGR 31, 'X'.
func TestScenarioEraseDisplayHomeAndSGR(t *testing.T) {
	s, _ := newTestScreen(10, 5)
	// Dirty the screen first so ED 2 is observable.
	feedString(s, "hello world, this fills more than one row of junk text")
	feedString(s, "\x1b[2J\x1b[H\x1b[31mX")

	c := s.Cursor()
	if c.X != 1 || c.Y != 0 {
		t.Fatalf("cursor = (%d,%d), want (1,0)", c.X, c.Y)
	}
	cell := s.Buffer().Get(0, 0)
	if cell.Char != 'X' {
		t.Fatalf("cell(0,0).Char = %q, want 'X'", cell.Char)
	}
	if cell.Style.FG != Indexed(1) {
		t.Fatalf("cell(0,0).Style.FG = %+v, want Indexed(1)", cell.Style.FG)
	}
	// Everything else on the screen must have been cleared.
	if s.Buffer().Get(5, 3).Char != ' ' {
		t.Fatalf("expected (5,3) cleared by ED 2, got %q", s.Buffer().Get(5, 3).Char)
	}
}

// Scenario 3: CUP to row 5, col 10 on an 80x24 grid, DECOM off.
func TestScenarioCursorPosition(t *testing.T) {
	s, _ := newTestScreen(80, 24)
	feedString(s, "\x1b[5;10H")
	c := s.Cursor()
	if c.X != 9 || c.Y != 4 {
		t.Fatalf("cursor = (%d,%d), want (9,4)", c.X, c.Y)
	}
}

// Scenario 4: alt-screen round trip via 1049 leaves primary untouched.
func TestScenarioAltScreenRoundTrip(t *testing.T) {
	s, _ := newTestScreen(20, 5)
	feedString(s, "primary content")
	before := s.Cursor()

	feedString(s, "\x1b[?1049h\x1b[2J\x1b[?1049l")

	after := s.Cursor()
	if after != before {
		t.Fatalf("cursor after alt-screen round trip = %+v, want %+v", after, before)
	}
	if s.OnAltScreen() {
		t.Fatalf("should be back on primary buffer")
	}
	if got := rowText(s, 0); got[:15] != "primary content" {
		t.Fatalf("primary buffer content lost: %q", got)
	}
}

// Scenario 5: DSR 6 on an 80x24 grid at (0,0).
func TestScenarioDeviceStatusReport(t *testing.T) {
	s, reply := newTestScreen(80, 24)
	feedString(s, "\x1b[6n")
	if got := reply.buf.String(); got != "\x1b[1;1R" {
		t.Fatalf("DSR 6 reply = %q, want %q", got, "\x1b[1;1R")
	}
}

// Scenario 6: truecolor SGR sets an RGB foreground.
func TestScenarioTruecolorSGR(t *testing.T) {
	s, _ := newTestScreen(10, 2)
	feedString(s, "\x1b[38;2;255;128;0mZ")
	cell := s.Buffer().Get(0, 0)
	if cell.Char != 'Z' || cell.Style.FG != RGB(255, 128, 0) {
		t.Fatalf("cell = %+v, want Z with Rgb(255,128,0)", cell)
	}
}

func TestPendingWrapWithAutowrapOn(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	s.modes.SetPrivate(ModeDECAWM, true)
	feedString(s, "ABCDE")
	c := s.Cursor()
	if c.X != 4 || !c.PendingWrap {
		t.Fatalf("after filling the row, expected x=W-1 with PendingWrap set, got %+v", c)
	}
	feedString(s, "F")
	c = s.Cursor()
	if c.Y != 1 || c.X != 1 {
		t.Fatalf("next printable after a latched wrap should land at (1,1), got (%d,%d)", c.X, c.Y)
	}
	if s.Buffer().Get(0, 1).Char != 'F' {
		t.Fatalf("'F' should have wrapped onto row 1 col 0")
	}
}

func TestNoWrapWithAutowrapOff(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	s.modes.SetPrivate(ModeDECAWM, false)
	feedString(s, "ABCDEF")
	c := s.Cursor()
	if c.X != 4 || c.Y != 0 {
		t.Fatalf("with autowrap off, cursor should stay at (4,0), got (%d,%d)", c.X, c.Y)
	}
	if s.Buffer().Get(4, 0).Char != 'F' {
		t.Fatalf("last printable should overwrite the final column in place")
	}
}

func TestLineFeedScrollsOnlyAtScrollRegionBottom(t *testing.T) {
	s, _ := newTestScreen(3, 4)
	feedString(s, "\x1b[2;3r") // scroll region rows 2..3 (1-based) -> 1..2 zero-based
	s.cursor.Y = 1             // inside region, not at its bottom
	s.Execute('\n')
	if s.Cursor().Y != 2 {
		t.Fatalf("LF inside region but not at bottom should just move down, got y=%d", s.Cursor().Y)
	}

	s2, _ := newTestScreen(3, 4)
	feedString(s2, "\x1b[2;3r")
	s2.active.Set(0, 2, Cell{Char: 'Z'})
	s2.cursor.Y = 2 // region bottom (0-based)
	s2.Execute('\n')
	if s2.Cursor().Y != 2 {
		t.Fatalf("LF at region bottom should scroll, not move cursor, got y=%d", s2.Cursor().Y)
	}
	if s2.Buffer().Get(0, 2).Char != ' ' {
		t.Fatalf("row at region bottom should now be blank after scroll")
	}
}

func TestDECSTBMInvalidResetsToFullScreen(t *testing.T) {
	s, _ := newTestScreen(10, 10)
	feedString(s, "\x1b[5;3r") // top >= bottom: invalid
	if s.scrollTop != 0 || s.scrollBottom != 9 {
		t.Fatalf("invalid DECSTBM should reset to full screen, got top=%d bottom=%d", s.scrollTop, s.scrollBottom)
	}
}

func TestCSIWith20ParamsUsesFirst16(t *testing.T) {
	s, _ := newTestScreen(10, 2)
	params := make([]Param, 20)
	for i := range params {
		params[i] = Param{Value: 1} // bold, repeated; harmless semantically
	}
	for i := MaxParams; i < len(params); i++ {
		params[i] = Param{Value: 31} // past the cap: must not turn fg red
	}
	cmd := CSICommand{Final: 'm', Params: params}
	s.CSIDispatch(cmd) // must not panic, and must not use more than 16
	if len(cmd.Params) != 20 {
		t.Fatalf("test setup invariant broken")
	}
	if !s.Cursor().Style.Has(AttrBold) {
		t.Fatalf("the first 16 params (bold) should have been applied")
	}
	if s.Cursor().Style.FG != DefaultColor {
		t.Fatalf("params past the 16th must be ignored, got fg %+v", s.Cursor().Style.FG)
	}
}

func TestRegionOperationsPreserveOutsideCells(t *testing.T) {
	s, _ := newTestScreen(5, 5)
	for y := 0; y < 5; y++ {
		s.active.Set(0, y, Cell{Char: rune('0' + y)})
	}
	feedString(s, "\x1b[2;4r") // region rows 2..4 (1-based) = 1..3 zero-based
	s.cursor.Y = 2
	s.scrollUp(1)
	if s.Buffer().Get(0, 0).Char != '0' {
		t.Fatalf("row 0 outside region must survive scroll")
	}
	if s.Buffer().Get(0, 4).Char != '4' {
		t.Fatalf("row 4 outside region must survive scroll")
	}
}

func TestChunkIndependence(t *testing.T) {
	whole := "\x1b[31mhello\x1b[0m\x1b[5;5H\x1b[38;2;1;2;3mX"
	s1, _ := newTestScreen(20, 10)
	feedString(s1, whole)

	s2, _ := newTestScreen(20, 10)
	p2 := NewParser(s2)
	data := []byte(whole)
	for i := 0; i < len(data); i++ {
		p2.Feed(data[i : i+1])
	}

	for y := 0; y < 10; y++ {
		if rowText(s1, y) != rowText(s2, y) {
			t.Fatalf("chunked feed diverged at row %d: %q vs %q", y, rowText(s2, y), rowText(s1, y))
		}
	}
	if s1.Cursor() != s2.Cursor() {
		t.Fatalf("chunked feed produced a different cursor: %+v vs %+v", s2.Cursor(), s1.Cursor())
	}
}

func TestResizeRejectsZeroDimension(t *testing.T) {
	s, _ := newTestScreen(10, 10)
	s.Resize(0, 5)
	if s.Width() != 10 || s.Height() != 10 {
		t.Fatalf("resize to zero width should be rejected, got %dx%d", s.Width(), s.Height())
	}
}

func TestBackspaceAndHorizontalTab(t *testing.T) {
	s, _ := newTestScreen(20, 2)
	feedString(s, "abc\b\b")
	if s.Cursor().X != 1 {
		t.Fatalf("two backspaces from x=3 should land at x=1, got %d", s.Cursor().X)
	}
	feedString(s, "\t")
	if s.Cursor().X != 8 {
		t.Fatalf("HT from x=1 should land at the next stop (8), got %d", s.Cursor().X)
	}
}

func TestDECCOLMClearsScreenAndHomesCursor(t *testing.T) {
	s, _ := newTestScreen(80, 24)
	feedString(s, "junk before the column switch")
	feedString(s, "\x1b[?3h") // DECCOLM set: switch to 132 columns
	if s.Width() != 132 {
		t.Fatalf("DECCOLM set should widen to 132 columns, got %d", s.Width())
	}
	c := s.Cursor()
	if c.X != 0 || c.Y != 0 {
		t.Fatalf("DECCOLM should home the cursor, got (%d,%d)", c.X, c.Y)
	}
	if got := s.Buffer().Get(0, 0).Char; got != ' ' {
		t.Fatalf("DECCOLM should clear the screen, found %q at (0,0)", got)
	}
}

func TestAutowrapAndCursorVisibleDefaultOn(t *testing.T) {
	s, _ := newTestScreen(5, 2)
	if !s.ModeEnabled(ModeDECAWM) {
		t.Fatalf("DECAWM should default to on")
	}
	if !s.ModeEnabled(ModeDECTCEM) {
		t.Fatalf("DECTCEM should default to on")
	}
	feedString(s, "ABCDEF")
	c := s.Cursor()
	if c.Y != 1 || c.X != 1 {
		t.Fatalf("default autowrap should have wrapped 'F' onto row 1, got (%d,%d)", c.X, c.Y)
	}
}

func TestDECRCRestoresOriginMode(t *testing.T) {
	s, _ := newTestScreen(10, 10)
	feedString(s, "\x1b[?6h") // DECOM on
	feedString(s, "\x1b7")    // DECSC: save with DECOM on
	feedString(s, "\x1b[?6l") // DECOM off
	feedString(s, "\x1b8")    // DECRC: restore
	if !s.ModeEnabled(ModeDECOM) {
		t.Fatalf("DECRC should have restored DECOM to its saved (on) state")
	}
}

func TestCarriageReturnClearsPendingWrap(t *testing.T) {
	s, _ := newTestScreen(3, 2)
	s.modes.SetPrivate(ModeDECAWM, true)
	feedString(s, "ABC")
	if !s.Cursor().PendingWrap {
		t.Fatalf("expected pending wrap after filling the row")
	}
	s.Execute('\r')
	if s.Cursor().PendingWrap {
		t.Fatalf("CR must clear pending wrap")
	}
}
