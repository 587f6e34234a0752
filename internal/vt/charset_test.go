package vt

import "testing"

func TestCharsetTranslateDECSpecialGraphics(t *testing.T) {
	cs := NewCharsetState()
	cs.Designate(0, CharsetDECSpecialGraphics)
	if got := cs.Translate('q'); got != '─' {
		t.Fatalf("translate 'q' under DEC special graphics = %q, want '─'", got)
	}
}

func TestCharsetTranslateASCIIPassthrough(t *testing.T) {
	cs := NewCharsetState()
	if got := cs.Translate('q'); got != 'q' {
		t.Fatalf("translate under default ASCII charset should be identity, got %q", got)
	}
}

func TestCharsetSingleShiftAppliesOnce(t *testing.T) {
	cs := NewCharsetState()
	cs.Designate(2, CharsetDECSpecialGraphics)
	cs.SingleShift2()
	if got := cs.Translate('q'); got != '─' {
		t.Fatalf("SS2 should route through G2, got %q", got)
	}
	if got := cs.Translate('q'); got != 'q' {
		t.Fatalf("single shift must not persist past one character, got %q", got)
	}
}

func TestCharsetIDForUnknownFallsBackToASCII(t *testing.T) {
	if charsetIDFor('Z') != CharsetASCII {
		t.Fatalf("unrecognized designation final byte should fall back to ASCII")
	}
}
