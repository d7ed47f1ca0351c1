package tui

// autosaveFailedMsg surfaces a persistence failure as a transient notice.
// The editing session keeps going; the record stays dirty.
type autosaveFailedMsg struct {
	err error
}
