package vt

// Cursor is the screen's write position plus the state that travels with
// it: the current drawing style, the autowrap latch, and origin mode.
type Cursor struct {
	X, Y        int
	Style       Style
	PendingWrap bool
	OriginMode  bool
}

// SavedCursor is the snapshot DECSC/DECRC and mode 1049/1048 save/restore
// operate on. Each Buffer (primary and alternate) owns one.
type SavedCursor struct {
	X, Y        int
	Style       Style
	Charset     CharsetState
	OriginMode  bool
	PendingWrap bool
	valid       bool
}

// Save captures the given cursor and charset state.
func (sc *SavedCursor) Save(c Cursor, cs CharsetState) {
	sc.X, sc.Y = c.X, c.Y
	sc.Style = c.Style
	sc.Charset = cs
	sc.OriginMode = c.OriginMode
	sc.PendingWrap = c.PendingWrap
	sc.valid = true
}

// Restore returns the saved cursor and charset state. If nothing was ever
// saved, it returns the home position with a default style, matching
// real terminals' behavior for an unprimed DECRC.
func (sc *SavedCursor) Restore() (Cursor, CharsetState) {
	if !sc.valid {
		return Cursor{}, NewCharsetState()
	}
	return Cursor{
		X: sc.X, Y: sc.Y,
		Style:       sc.Style,
		OriginMode:  sc.OriginMode,
		PendingWrap: sc.PendingWrap,
	}, sc.Charset
}
