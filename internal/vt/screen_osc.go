package vt

import "bytes"

// OSCDispatch implements Handler.OSCDispatch. Per spec.md §4.3's
// "minimum": OSC 0/2 set the window title; OSC 52 is a clipboard-set
// stub (recorded but not wired to a real clipboard, since this core has
// no host-OS access); any other OSC code is accepted and dropped.
func (s *Screen) OSCDispatch(data []byte) {
	code, rest, ok := splitOSC(data)
	if !ok {
		return
	}
	switch code {
	case "0", "2":
		s.title = string(rest)
	case "52":
		s.clipboard = append([]byte(nil), rest...)
	}
}

// splitOSC separates the numeric OSC code from its ';'-delimited payload.
func splitOSC(data []byte) (code string, rest []byte, ok bool) {
	i := bytes.IndexByte(data, ';')
	if i < 0 {
		return string(data), nil, len(data) > 0
	}
	return string(data[:i]), data[i+1:], true
}
