package vt

import "testing"

func TestSavedCursorRoundTrip(t *testing.T) {
	var sc SavedCursor
	c := Cursor{X: 3, Y: 4, Style: Style{FG: Indexed(2)}, PendingWrap: true, OriginMode: true}
	cs := NewCharsetState()
	cs.Designate(0, CharsetDECSpecialGraphics)
	sc.Save(c, cs)

	gotC, gotCS := sc.Restore()
	if gotC != c {
		t.Fatalf("Restore() cursor = %+v, want %+v", gotC, c)
	}
	if gotCS != cs {
		t.Fatalf("Restore() charset = %+v, want %+v", gotCS, cs)
	}
}

func TestSavedCursorRestoreWithoutSaveReturnsHome(t *testing.T) {
	var sc SavedCursor
	c, _ := sc.Restore()
	if c != (Cursor{}) {
		t.Fatalf("unprimed Restore() = %+v, want zero value", c)
	}
}
