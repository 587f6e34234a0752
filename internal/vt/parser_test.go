package vt

import "testing"

type recordedCall struct {
	kind string
	arg  interface{}
}

type fakeHandler struct {
	calls []recordedCall
}

func (f *fakeHandler) Print(r rune)            { f.calls = append(f.calls, recordedCall{"print", r}) }
func (f *fakeHandler) Execute(b byte)          { f.calls = append(f.calls, recordedCall{"execute", b}) }
func (f *fakeHandler) CSIDispatch(c CSICommand) { f.calls = append(f.calls, recordedCall{"csi", c}) }
func (f *fakeHandler) ESCDispatch(im []byte, b byte) {
	f.calls = append(f.calls, recordedCall{"esc", b})
}
func (f *fakeHandler) OSCDispatch(d []byte) { f.calls = append(f.calls, recordedCall{"osc", string(d)}) }
func (f *fakeHandler) DCSHook(c CSICommand) { f.calls = append(f.calls, recordedCall{"hook", c}) }
func (f *fakeHandler) DCSPut(b byte)        { f.calls = append(f.calls, recordedCall{"put", b}) }
func (f *fakeHandler) DCSUnhook()           { f.calls = append(f.calls, recordedCall{"unhook", nil}) }

func (f *fakeHandler) last() recordedCall {
	if len(f.calls) == 0 {
		return recordedCall{}
	}
	return f.calls[len(f.calls)-1]
}

func TestParserPrintASCII(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("A"))
	if h.last().kind != "print" || h.last().arg != rune('A') {
		t.Fatalf("expected print('A'), got %+v", h.last())
	}
}

func TestParserUTF8MultiByte(t *testing.T) {
	h := &fakeHandler{}
	// "é" = U+00E9 = 0xC3 0xA9
	NewParser(h).Feed([]byte{0xc3, 0xa9})
	if h.last().kind != "print" || h.last().arg != rune(0xe9) {
		t.Fatalf("expected print(U+00E9), got %+v", h.last())
	}
}

func TestParserInvalidUTF8ProducesReplacement(t *testing.T) {
	h := &fakeHandler{}
	// 0xC3 is a valid 2-byte lead, but follow it with an ASCII byte
	// instead of a continuation byte.
	NewParser(h).Feed([]byte{0xc3, 'A'})
	if len(h.calls) != 2 {
		t.Fatalf("expected 2 prints (replacement + 'A'), got %d: %+v", len(h.calls), h.calls)
	}
	if h.calls[0].arg != rune(0xfffd) {
		t.Fatalf("first print should be U+FFFD, got %+v", h.calls[0])
	}
	if h.calls[1].arg != rune('A') {
		t.Fatalf("second print should be the reprocessed 'A', got %+v", h.calls[1])
	}
}

func TestParserCSIDispatchBasic(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1b[31m"))
	c := h.last().arg.(CSICommand)
	if c.Final != 'm' || len(c.Params) != 1 || c.Params[0].Value != 31 {
		t.Fatalf("unexpected CSI command: %+v", c)
	}
}

func TestParserCSIPrivateMarker(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1b[?1049h"))
	c := h.last().arg.(CSICommand)
	if c.Private != '?' || c.Final != 'h' || c.Params[0].Value != 1049 {
		t.Fatalf("unexpected CSI command: %+v", c)
	}
}

func TestParserCSISubParameters(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1b[38:2:255:128:0m"))
	c := h.last().arg.(CSICommand)
	if len(c.Params) != 1 || c.Params[0].Value != 38 {
		t.Fatalf("expected a single top-level param 38, got %+v", c.Params)
	}
	want := []int{2, 255, 128, 0}
	if len(c.Params[0].Subs) != len(want) {
		t.Fatalf("subs = %v, want %v", c.Params[0].Subs, want)
	}
	for i, v := range want {
		if c.Params[0].Subs[i] != v {
			t.Fatalf("subs[%d] = %d, want %d", i, c.Params[0].Subs[i], v)
		}
	}
}

func TestParserC1EquivalentToESCPlus0x40(t *testing.T) {
	h1 := &fakeHandler{}
	NewParser(h1).Feed([]byte{0x9b, '3', '1', 'm'}) // 0x9b = CSI as C1
	h2 := &fakeHandler{}
	NewParser(h2).Feed([]byte("\x1b[31m"))

	c1 := h1.last().arg.(CSICommand)
	c2 := h2.last().arg.(CSICommand)
	if c1.Final != c2.Final || c1.Params[0].Value != c2.Params[0].Value {
		t.Fatalf("C1 CSI (0x9b) should dispatch identically to ESC [, got %+v vs %+v", c1, c2)
	}
}

func TestParserOSCDispatchBEL(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1b]0;my title\x07"))
	if h.last().kind != "osc" || h.last().arg != "0;my title" {
		t.Fatalf("unexpected OSC dispatch: %+v", h.last())
	}
}

func TestParserOSCDispatchST(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1b]2;other\x1b\\"))
	if h.last().kind != "osc" || h.last().arg != "2;other" {
		t.Fatalf("unexpected OSC dispatch via ST: %+v", h.last())
	}
}

func TestParserESCAbortsOSCWithoutBackslash(t *testing.T) {
	h := &fakeHandler{}
	// ESC inside an OSC string, followed by something other than '\',
	// must abandon the OSC (no dispatch) and start a fresh escape.
	NewParser(h).Feed([]byte("\x1b]0;abandoned\x1bA"))
	for _, c := range h.calls {
		if c.kind == "osc" {
			t.Fatalf("abandoned OSC string must never dispatch, got %+v", c)
		}
	}
}

func TestParserOSCOverflowSuppressesDispatch(t *testing.T) {
	h := &fakeHandler{}
	payload := make([]byte, maxStringPayload+100)
	for i := range payload {
		payload[i] = 'x'
	}
	data := append([]byte("\x1b]52;"), payload...)
	data = append(data, 0x07)
	NewParser(h).Feed(data)
	for _, c := range h.calls {
		if c.kind == "osc" {
			t.Fatalf("overflowing OSC payload must not dispatch, got len=%d", len(c.arg.(string)))
		}
	}
}

func TestParserCANAbortsSequence(t *testing.T) {
	h := &fakeHandler{}
	p := NewParser(h)
	p.Feed([]byte("\x1b[31"))
	p.Feed([]byte{0x18}) // CAN
	p.Feed([]byte("A"))
	if h.last().kind != "print" || h.last().arg != rune('A') {
		t.Fatalf("after CAN, next byte should print normally, got %+v", h.last())
	}
	for _, c := range h.calls {
		if c.kind == "csi" {
			t.Fatalf("aborted CSI must never dispatch, got %+v", c)
		}
	}
}

func TestParserDCSHookPutUnhookBalanced(t *testing.T) {
	h := &fakeHandler{}
	NewParser(h).Feed([]byte("\x1bPq1;2;3\x1b\\"))
	var hooks, unhooks, puts int
	for _, c := range h.calls {
		switch c.kind {
		case "hook":
			hooks++
		case "unhook":
			unhooks++
		case "put":
			puts++
		}
	}
	if hooks != 1 || unhooks != 1 {
		t.Fatalf("expected exactly one hook/unhook pair, got hooks=%d unhooks=%d", hooks, unhooks)
	}
	if puts == 0 {
		t.Fatalf("expected DCS payload bytes to be Put")
	}
}

func TestParserChunkedFeedEquivalence(t *testing.T) {
	input := []byte("\x1b[1;31;4m\x1b]0;title\x07hello\x1b[2;3H")
	h1 := &fakeHandler{}
	NewParser(h1).Feed(input)

	h2 := &fakeHandler{}
	p2 := NewParser(h2)
	for i := range input {
		p2.Feed(input[i : i+1])
	}

	if len(h1.calls) != len(h2.calls) {
		t.Fatalf("call count diverged: %d vs %d", len(h1.calls), len(h2.calls))
	}
	for i := range h1.calls {
		if h1.calls[i].kind != h2.calls[i].kind {
			t.Fatalf("call %d kind diverged: %s vs %s", i, h1.calls[i].kind, h2.calls[i].kind)
		}
	}
}
