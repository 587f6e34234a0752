package vt

// MaxParams is the cap on top-level CSI/DCS parameters per spec §4.4.
// Extra parameters beyond this are accepted by the parser but not stored.
const MaxParams = 16

// MaxSubParams is the cap on colon-separated sub-parameters of a single
// top-level parameter.
const MaxSubParams = 16

// MaxParamValue is the clamp applied to any individual numeric value.
const MaxParamValue = 65535

// Param is one top-level CSI/DCS parameter. Empty reports whether the
// field was left blank (e.g. the first field of "CSI ;1m"), which is
// semantically equivalent to a value of 0 ("None" in spec.md's wording)
// but is tracked separately so callers that care about explicit-vs-default
// can distinguish them. Subs holds any colon-separated sub-parameters
// attached to this token (e.g. "38:2:255:0:0" yields Value=38,
// Subs=[2,255,0,0]).
type Param struct {
	Value int
	Empty bool
	Subs  []int
}

// Int returns the effective integer value: 0 for an empty field, the
// clamped value otherwise.
func (p Param) Int() int {
	if p.Empty {
		return 0
	}
	return p.Value
}

// paramAt returns params[idx] if present, otherwise a synthetic empty
// Param and false, so that IntOr/RawIntOr fall back to their default.
func paramAt(params []Param, idx int) (Param, bool) {
	if idx < 0 || idx >= len(params) {
		return Param{Empty: true}, false
	}
	return params[idx], true
}

// IntOr returns params[idx].Int() if present, non-empty and non-zero, else def. This
// is the common "parameter defaults to N if absent or zero" rule used by
// nearly every CSI cursor/erase command in ECMA-48.
func IntOr(params []Param, idx, def int) int {
	p, ok := paramAt(params, idx)
	if !ok || p.Empty || p.Value == 0 {
		return def
	}
	return p.Value
}

// RawIntOr is like IntOr but treats an explicit 0 as significant (used by
// selectors like ED/EL erase modes and TBC where 0 is a real, distinct
// value from "absent").
func RawIntOr(params []Param, idx, def int) int {
	p, ok := paramAt(params, idx)
	if !ok || p.Empty {
		return def
	}
	return p.Value
}
