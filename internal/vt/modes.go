package vt

// ANSI (non-private) mode numbers understood by SM/RM (CSI Ps h / CSI Ps l).
const (
	ModeIRM = 4 // Insert/Replace mode
	ModeLNM = 20
)

// DEC-private mode numbers understood by DECSET/DECRST (CSI ? Ps h / l).
// This is the documented subset spec.md §4.3 requires; any other number
// is still accepted into the map (see Modes.Set) but has no enactment
// function attached.
const (
	ModeDECCKM   = 1
	ModeDECCOLM  = 3
	ModeDECSCNM  = 5
	ModeDECOM    = 6
	ModeDECAWM   = 7
	ModeDECTCEM  = 25
	ModeMouseX10 = 9
	ModeMouseVT200 = 1000
	ModeMouseBtnEvent = 1002
	ModeMouseAnyEvent = 1003
	ModeFocusReport   = 1004
	ModeMouseUTF8  = 1005
	ModeMouseSGR   = 1006
	ModeAltScreen47   = 47
	ModeAltScreen1047 = 1047
	ModeSaveCursor1048 = 1048
	ModeAltScreen1049 = 1049
	ModeBracketedPaste = 2004
)

// Modes is a sparse mode table: a number present and true means "set".
// Numbers never written are implicitly false/unset. Per spec.md §3,
// unknown modes are accepted and stored without effect, so this type
// never rejects a Set call.
type Modes struct {
	private map[int]bool // DEC-private (CSI ?)
	ansi    map[int]bool // plain SM/RM
}

// NewModes returns an empty mode table (all modes unset).
func NewModes() *Modes {
	return &Modes{private: make(map[int]bool), ansi: make(map[int]bool)}
}

func (m *Modes) SetPrivate(n int, v bool) { m.private[n] = v }
func (m *Modes) GetPrivate(n int) bool    { return m.private[n] }
func (m *Modes) SetANSI(n int, v bool)    { m.ansi[n] = v }
func (m *Modes) GetANSI(n int) bool       { return m.ansi[n] }
