package vt

import "unicode/utf8"

// state names the Parser's position in the Paul Williams DEC-compatible
// VT state machine named in spec.md §4.4.
type state uint8

const (
	stateGround state = iota
	stateEscape
	stateEscapeIntermediate
	stateCSIEntry
	stateCSIParam
	stateCSIIntermediate
	stateCSIIgnore
	stateDCSEntry
	stateDCSParam
	stateDCSIntermediate
	stateDCSPassthrough
	stateDCSIgnore
	stateOSCString
	stateSOSPMAPCString
)

// stringKind records which string-accumulating sequence produced a
// pending-ST transition into stateEscape, so that a following '\' can be
// routed back to the right terminator action (see feedByte's handling of
// stateEscape/afterString).
type stringKind uint8

const (
	stringNone stringKind = iota
	stringOSC
	stringDCS
	stringSOSPMAPC
)

// maxIntermediates caps the collected intermediate-byte buffer per
// spec.md §4.4 ("Intermediate buffer capped at 2 bytes").
const maxIntermediates = 2

// maxStringPayload caps OSC/DCS payload accumulation per spec.md §4.4
// ("OSC/DCS payload capped at 4096 bytes"). SOS/PM/APC payloads are
// discarded byte by byte and never accumulated.
const maxStringPayload = 4096

// CSICommand is the fully-parsed shape of one CSI (or DCS-entry) sequence:
// an optional private marker byte ('?', '>', '=', '<'), the parameter
// list, any collected intermediate bytes, and the final byte.
type CSICommand struct {
	Private       byte
	Params        []Param
	Intermediates []byte
	Final         byte
}

// Handler receives the Parser's dispatch actions. Screen is the only
// implementation in this module; the Parser never touches a Buffer or any
// other state directly.
type Handler interface {
	Print(r rune)
	Execute(b byte)
	CSIDispatch(cmd CSICommand)
	ESCDispatch(intermediates []byte, final byte)
	OSCDispatch(data []byte)
	DCSHook(cmd CSICommand)
	DCSPut(b byte)
	DCSUnhook()
}

// Parser is a byte-driven state machine decoding ANSI/ECMA-48 escape
// sequences and C0/C1 controls, dispatching semantic actions into a
// Handler. It holds no grid state itself and never blocks; Feed is
// synchronous and total over any byte sequence, including sequences split
// across chunk boundaries (the entire parse state lives in this struct).
type Parser struct {
	h Handler

	st state

	// CSI/DCS parameter accumulation. curVal/curEmpty track whatever
	// number is currently being typed; once a ':' is seen within one
	// top-level parameter, curHasMain latches and curMainVal/curMainEmpty
	// hold the value before that colon, while curSubs accumulates every
	// number after it except the one still being typed.
	params       []Param
	curVal       int
	curEmpty     bool
	curHasMain   bool
	curMainVal   int
	curMainEmpty bool
	curSubs      []int
	private      byte
	intermed     []byte

	// OSC/DCS payload accumulation.
	strBuf      []byte
	strOverflow bool

	// Tracks which string state ESC interrupted, to distinguish a real
	// string terminator (ESC \) from an abort-and-start-new-sequence.
	afterString stringKind

	// UTF-8 assembly, used only while consuming GROUND's printable range.
	utf8Buf [4]byte
	utf8Len int
	utf8Got int
}

// NewParser returns a Parser in the GROUND state, dispatching into h.
func NewParser(h Handler) *Parser {
	p := &Parser{h: h, params: make([]Param, 0, MaxParams)}
	return p
}

// Feed processes every byte of data in order. Feeding B1 then B2 is
// observationally equivalent to feeding B1∥B2 in one call, since all
// parser state is held in the struct and nothing is buffered outside it
// across calls other than that state.
func (p *Parser) Feed(data []byte) {
	for _, b := range data {
		p.feedByte(b)
	}
}

func (p *Parser) feedByte(b byte) {
	// CAN/SUB abort any sequence in progress, unconditionally.
	if b == 0x18 || b == 0x1a {
		p.abortUnhook()
		p.toGround()
		return
	}

	// C1 controls (0x80-0x9F) are accepted as 8-bit codes identical to
	// "ESC (b-0x40)"; route them through the same entry point used for
	// the 7-bit escape so both forms dispatch identically. This must be
	// checked before UTF-8 continuation handling below would otherwise
	// claim these bytes: per spec.md §4.4 printable ranges exclude
	// 0x80-0x9F entirely, so there is no ambiguity with an in-progress
	// multi-byte sequence — an 8-bit C1 byte can never be a legal UTF-8
	// continuation byte of a sequence *we* started, because continuation
	// bytes are only consumed while utf8Len>0, checked first in ground.
	if p.st == stateGround && p.utf8Len == 0 && b >= 0x80 && b <= 0x9f {
		p.processEscapeByte(b - 0x40)
		return
	}

	switch p.st {
	case stateGround:
		p.processGround(b)
	case stateEscape, stateEscapeIntermediate:
		p.processEscapeByte(b)
	case stateCSIEntry, stateCSIParam, stateCSIIntermediate, stateCSIIgnore:
		p.processCSIByte(b)
	case stateDCSEntry, stateDCSParam, stateDCSIntermediate:
		p.processDCSHeaderByte(b)
	case stateDCSPassthrough:
		p.processDCSPassthroughByte(b)
	case stateDCSIgnore:
		p.processDCSIgnoreByte(b)
	case stateOSCString:
		p.processOSCByte(b)
	case stateSOSPMAPCString:
		p.processSOSPMAPCByte(b)
	}
}

func (p *Parser) toGround() {
	p.st = stateGround
	p.clearCollected()
	p.afterString = stringNone
}

func (p *Parser) clearCollected() {
	p.params = p.params[:0]
	p.resetCurParam()
	p.private = 0
	p.intermed = p.intermed[:0]
	p.strBuf = p.strBuf[:0]
	p.strOverflow = false
}

// abortUnhook closes out a DCS hook if CAN/SUB arrives mid-passthrough,
// so the Handler's Hook/Unhook calls stay balanced.
func (p *Parser) abortUnhook() {
	if p.st == stateDCSPassthrough {
		p.h.DCSUnhook()
	}
}

// ---------------------------------------------------------------------
// GROUND
// ---------------------------------------------------------------------

func (p *Parser) processGround(b byte) {
	if p.utf8Len > 0 {
		if b >= 0x80 && b <= 0xbf {
			p.utf8Buf[p.utf8Got] = b
			p.utf8Got++
			if p.utf8Got == p.utf8Len {
				r, size := utf8.DecodeRune(p.utf8Buf[:p.utf8Len])
				if r == utf8.RuneError && size <= 1 {
					r = utf8.RuneError
				}
				p.h.Print(r)
				p.utf8Len, p.utf8Got = 0, 0
			}
			return
		}
		// Invalid continuation: the partial sequence is replaced and b is
		// reprocessed fresh below.
		p.h.Print(utf8.RuneError)
		p.utf8Len, p.utf8Got = 0, 0
	}

	switch {
	case b == 0x1b:
		p.st = stateEscape
		p.intermed = p.intermed[:0]
	case b < 0x20 || b == 0x7f:
		p.h.Execute(b)
	case b >= 0x20 && b <= 0x7e:
		p.h.Print(rune(b))
	case b >= 0xc2 && b <= 0xdf:
		p.utf8Buf[0], p.utf8Got, p.utf8Len = b, 1, 2
	case b >= 0xe0 && b <= 0xef:
		p.utf8Buf[0], p.utf8Got, p.utf8Len = b, 1, 3
	case b >= 0xf0 && b <= 0xf4:
		p.utf8Buf[0], p.utf8Got, p.utf8Len = b, 1, 4
	case b >= 0xa0:
		// Lone high byte with no valid UTF-8 continuation role: print it
		// as a Latin-1-range scalar per spec.md's printable-range rule.
		p.h.Print(rune(b))
	default:
		// 0x80-0x9f never reach this switch: the C1 branch in feedByte
		// claims them; nothing falls through here in practice.
	}
}

// ---------------------------------------------------------------------
// ESCAPE / ESCAPE_INTERMEDIATE
// ---------------------------------------------------------------------

func (p *Parser) processEscapeByte(b byte) {
	// A pending string terminator: ESC was seen inside an OSC/DCS/SOS-PM-
	// APC string. '\' confirms ST; anything else abandons the string
	// (dropped, no dispatch) and this byte starts a fresh escape sequence.
	if p.afterString != stringNone {
		kind := p.afterString
		p.afterString = stringNone
		if b == '\\' {
			switch kind {
			case stringOSC:
				if !p.strOverflow {
					p.h.OSCDispatch(append([]byte(nil), p.strBuf...))
				}
			case stringDCS:
				p.h.DCSUnhook()
			}
			p.toGround()
			return
		}
		// Fall through: string abandoned, b re-enters ESCAPE dispatch.
	}

	switch {
	case b >= 0x20 && b <= 0x2f:
		if len(p.intermed) < maxIntermediates {
			p.intermed = append(p.intermed, b)
		}
		p.st = stateEscapeIntermediate
		return
	case b == '[':
		p.st = stateCSIEntry
		p.clearCollected()
		return
	case b == ']':
		p.st = stateOSCString
		p.strBuf = p.strBuf[:0]
		p.strOverflow = false
		return
	case b == 'P':
		p.st = stateDCSEntry
		p.clearCollected()
		return
	case b == 'X' || b == '^' || b == '_':
		p.st = stateSOSPMAPCString
		return
	}

	// Final byte of a two-character escape (with or without a collected
	// intermediate, e.g. "ESC ( 0" for G0 charset designation).
	if len(p.intermed) > 0 {
		p.h.ESCDispatch(append([]byte(nil), p.intermed...), b)
	} else {
		p.h.ESCDispatch(nil, b)
	}
	p.toGround()
}

// ---------------------------------------------------------------------
// CSI_ENTRY / CSI_PARAM / CSI_INTERMEDIATE / CSI_IGNORE
// ---------------------------------------------------------------------

func (p *Parser) processCSIByte(b byte) {
	switch {
	case b == 0x1b:
		p.st = stateEscape
		p.intermed = p.intermed[:0]
		return
	case b < 0x20:
		p.h.Execute(b)
		return
	case p.st != stateCSIIgnore && b >= '0' && b <= '9':
		if p.curVal > MaxParamValue/10 {
			p.curVal = MaxParamValue
		} else {
			p.curVal = p.curVal*10 + int(b-'0')
			if p.curVal > MaxParamValue {
				p.curVal = MaxParamValue
			}
		}
		p.curEmpty = false
		p.st = stateCSIParam
		return
	case p.st != stateCSIIgnore && b == ';':
		p.pushParam()
		p.st = stateCSIParam
		return
	case p.st != stateCSIIgnore && b == ':':
		p.pushSub()
		p.st = stateCSIParam
		return
	case p.st == stateCSIEntry && isPrivateMarker(b):
		p.private = b
		p.st = stateCSIParam
		return
	case b >= 0x20 && b <= 0x2f:
		if len(p.intermed) < maxIntermediates {
			p.intermed = append(p.intermed, b)
		}
		p.st = stateCSIIntermediate
		return
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		if p.st != stateCSIIgnore {
			p.h.CSIDispatch(CSICommand{
				Private:       p.private,
				Params:        append([]Param(nil), p.params...),
				Intermediates: append([]byte(nil), p.intermed...),
				Final:         b,
			})
		}
		p.toGround()
		return
	default:
		p.st = stateCSIIgnore
	}
}

func isPrivateMarker(b byte) bool {
	return b == '?' || b == '>' || b == '=' || b == '<'
}

// pushParam closes out the top-level parameter currently being
// accumulated (on ';' or on the CSI/DCS final byte). The first number of
// a colon-chain is the parameter's Value; pushSub has already routed any
// number after the first colon into curSubs, so here we only need to
// flush whatever is still being typed (curVal) as the final sub segment.
func (p *Parser) pushParam() {
	if len(p.params) >= MaxParams {
		p.resetCurParam()
		return
	}
	var param Param
	if p.curHasMain {
		param.Value, param.Empty = p.curMainVal, p.curMainEmpty
		v := p.curVal
		if p.curEmpty {
			v = 0
		}
		if len(p.curSubs) < MaxSubParams {
			param.Subs = append(append([]int(nil), p.curSubs...), v)
		} else {
			param.Subs = append([]int(nil), p.curSubs...)
		}
	} else {
		param.Value, param.Empty = p.curVal, p.curEmpty
	}
	p.params = append(p.params, param)
	p.resetCurParam()
}

// pushSub handles a ':' within a parameter. The first ':' promotes the
// number typed so far into the parameter's main Value; every later ':'
// appends the number since the previous separator into curSubs.
func (p *Parser) pushSub() {
	if !p.curHasMain {
		p.curMainVal, p.curMainEmpty = p.curVal, p.curEmpty
		p.curHasMain = true
	} else if len(p.curSubs) < MaxSubParams {
		v := p.curVal
		if p.curEmpty {
			v = 0
		}
		p.curSubs = append(p.curSubs, v)
	}
	p.curVal, p.curEmpty = 0, true
}

func (p *Parser) resetCurParam() {
	p.curVal, p.curEmpty = 0, true
	p.curSubs = p.curSubs[:0]
	p.curHasMain = false
}

// ---------------------------------------------------------------------
// DCS_ENTRY / DCS_PARAM / DCS_INTERMEDIATE -> DCS_PASSTHROUGH / DCS_IGNORE
// ---------------------------------------------------------------------

func (p *Parser) processDCSHeaderByte(b byte) {
	switch {
	case b == 0x1b:
		p.st = stateEscape
		p.intermed = p.intermed[:0]
		return
	case b < 0x20:
		// C0 controls are not meaningful inside a DCS header; ignored.
		return
	case b >= '0' && b <= '9':
		if p.curVal > MaxParamValue/10 {
			p.curVal = MaxParamValue
		} else {
			p.curVal = p.curVal*10 + int(b-'0')
			if p.curVal > MaxParamValue {
				p.curVal = MaxParamValue
			}
		}
		p.curEmpty = false
		p.st = stateDCSParam
		return
	case b == ';':
		p.pushParam()
		p.st = stateDCSParam
		return
	case b == ':':
		p.pushSub()
		p.st = stateDCSParam
		return
	case p.st == stateDCSEntry && isPrivateMarker(b):
		p.private = b
		p.st = stateDCSParam
		return
	case b >= 0x20 && b <= 0x2f:
		if len(p.intermed) < maxIntermediates {
			p.intermed = append(p.intermed, b)
		}
		p.st = stateDCSIntermediate
		return
	case b >= 0x40 && b <= 0x7e:
		p.pushParam()
		p.h.DCSHook(CSICommand{
			Private:       p.private,
			Params:        append([]Param(nil), p.params...),
			Intermediates: append([]byte(nil), p.intermed...),
			Final:         b,
		})
		p.strBuf = p.strBuf[:0]
		p.strOverflow = false
		p.st = stateDCSPassthrough
		return
	default:
		p.st = stateDCSIgnore
	}
}

func (p *Parser) processDCSPassthroughByte(b byte) {
	if b == 0x1b {
		p.afterString = stringDCS
		p.st = stateEscape
		return
	}
	if len(p.strBuf) >= maxStringPayload {
		p.st = stateDCSIgnore
		return
	}
	p.strBuf = append(p.strBuf, b)
	p.h.DCSPut(b)
}

func (p *Parser) processDCSIgnoreByte(b byte) {
	if b == 0x1b {
		p.afterString = stringDCS
		p.st = stateEscape
		return
	}
}

// ---------------------------------------------------------------------
// OSC_STRING
// ---------------------------------------------------------------------

func (p *Parser) processOSCByte(b byte) {
	switch {
	case b == 0x07:
		if !p.strOverflow {
			p.h.OSCDispatch(append([]byte(nil), p.strBuf...))
		}
		p.toGround()
	case b == 0x1b:
		p.afterString = stringOSC
		p.st = stateEscape
	case b < 0x20:
		// ignore stray C0 controls inside the OSC payload
	default:
		if len(p.strBuf) >= maxStringPayload {
			p.strOverflow = true
			return
		}
		p.strBuf = append(p.strBuf, b)
	}
}

// ---------------------------------------------------------------------
// SOS_PM_APC_STRING — accepted and discarded per spec.md §9.
// ---------------------------------------------------------------------

func (p *Parser) processSOSPMAPCByte(b byte) {
	switch b {
	case 0x07:
		p.toGround()
	case 0x1b:
		p.afterString = stringSOSPMAPC
		p.st = stateEscape
	}
}
