package vterm

// Callbacks are the hooks an embedder wires to receive output from a Screen:
// state-change notifications and reply bytes destined back to the PTY.
// Screen owns none of these concerns itself (no PTY, no rendering, no input
// generation) — every field is optional.
type Callbacks struct {
	// OnDirty fires after any command that changes visible grid content,
	// cursor position, or mode state.
	OnDirty func()

	// OnReply is called with bytes that must be written back to the host
	// program (DSR/CPR/DA responses, DECRQM and DECRQTAB reports,
	// dynamic-color query replies). DECRQSS requests get no reply.
	OnReply func(data []byte)

	OnTitleChange      func(title string)
	OnIconNameChange   func(name string)
	OnBell             func()
	OnModeChange       func(number int, private, on bool)
	OnHyperlink        func(link *Hyperlink)
	OnNotify           func(text string)

	// OnKeypadModeChange fires on DECKPAM/DECKPNM (ESC = / ESC >), so an
	// embedder can switch how it encodes the numeric keypad.
	OnKeypadModeChange func(application bool)

	// OnResizeRequest is not invoked by Screen: no sequence it handles leads
	// here (CSI t is handled only for title push/pop, Ps 22 and 23; other
	// window operations are logged and ignored). Embedders wire actual
	// window-size changes to Screen.Resize.
	OnResizeRequest func(cols, rows int)
}
