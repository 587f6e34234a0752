package vt

// DCSHook/DCSPut/DCSUnhook implement Handler's DCS trio. Per spec.md §9's
// chosen minimum, DCS is accepted and discarded: no DECRQSS or other DCS
// sub-protocol is interpreted. The hooks still exist so the Parser's
// DCS_PASSTHROUGH state has somewhere to route bytes, keeping the state
// machine's invariant that hook/put/unhook stay balanced.
func (s *Screen) DCSHook(cmd CSICommand) {}

func (s *Screen) DCSPut(b byte) {}

func (s *Screen) DCSUnhook() {}
