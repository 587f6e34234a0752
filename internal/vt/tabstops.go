package vt

// TabStops is the set of columns a horizontal tab should stop at. The
// zero value is not usable; construct with NewTabStops.
type TabStops struct {
	set map[int]bool
	w   int
}

// NewTabStops builds the default set: every 8th column starting at 0, up
// to width w (exclusive of w itself).
func NewTabStops(w int) *TabStops {
	t := &TabStops{set: make(map[int]bool), w: w}
	t.ResetDefault(w)
	return t
}

// ResetDefault clears all stops and reinstates the every-8th-column
// default for the given width. Used on resize per spec.md §9's chosen
// resolution ("reset tab stops to defaults").
func (t *TabStops) ResetDefault(w int) {
	t.w = w
	t.set = make(map[int]bool, w/8+1)
	for x := 0; x < w; x += 8 {
		t.set[x] = true
	}
}

// Set installs a stop at column x (HTS).
func (t *TabStops) Set(x int) {
	if x < 0 || x >= t.w {
		return
	}
	t.set[x] = true
}

// Clear removes the stop at column x.
func (t *TabStops) Clear(x int) {
	delete(t.set, x)
}

// ClearAll removes every stop (TBC with parameter 3).
func (t *TabStops) ClearAll() {
	t.set = make(map[int]bool)
}

// Next returns the first stop strictly greater than x, or w-1 if none.
func (t *TabStops) Next(x int) int {
	best := t.w - 1
	found := false
	for stop := range t.set {
		if stop > x && (!found || stop < best) {
			best, found = stop, true
		}
	}
	if !found {
		return t.w - 1
	}
	return best
}

// Prev returns the last stop strictly less than x, or 0 if none.
func (t *TabStops) Prev(x int) int {
	best := 0
	found := false
	for stop := range t.set {
		if stop < x && (!found || stop > best) {
			best, found = stop, true
		}
	}
	return best
}
