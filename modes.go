package vterm

// DEC private mode numbers (CSI ? ... h/l) the engine recognizes. ANSI modes
// (CSI ... h/l, no '?') only define IRM (4) in this engine's scope.
const (
	modeAppCursorKeys    = 1    // DECCKM
	modeOriginMode       = 6    // DECOM
	modeAutoWrap         = 7    // DECAWM
	modeMouseX10         = 9
	modeReverseVideo     = 5    // DECSCNM
	modeTextCursorVisible = 25  // DECTCEM
	modeMouseNormal      = 1000
	modeMouseButtonEvent = 1002
	modeMouseAnyEvent    = 1003
	modeMouseUTF8        = 1005
	modeMouseSGR         = 1006
	modeFocusTracking    = 1004
	modeAltScreen47      = 47
	modeAltScreen1047    = 1047
	modeAltScreen1049    = 1049
	modeBracketedPaste   = 2004
	modeMarginMode       = 69 // DECLRMM
)

const modeInsert = 4 // IRM, ANSI (not DEC-private)

// setMode applies a mode set/reset, whether DEC-private or ANSI.
func (s *Screen) setMode(number int, private, on bool) {
	if !private {
		if number == modeInsert {
			s.active.SetInsertMode(on)
		}
		return
	}
	switch number {
	case modeAppCursorKeys:
		s.appCursorKeys = on
	case modeOriginMode:
		s.active.SetOriginMode(on)
	case modeAutoWrap:
		s.active.SetAutoWrap(on)
	case modeReverseVideo:
		s.reverseVideo = on
		s.markDirty()
	case modeTextCursorVisible:
		s.cursorVisible = on
		s.markDirty()
	case modeMouseX10:
		s.setMouseMode(on, 9)
	case modeMouseNormal:
		s.setMouseMode(on, 1000)
	case modeMouseButtonEvent:
		s.setMouseMode(on, 1002)
	case modeMouseAnyEvent:
		s.setMouseMode(on, 1003)
	case modeMouseUTF8:
		s.mouseUTF8 = on
	case modeMouseSGR:
		s.mouseSGR = on
	case modeFocusTracking:
		s.focusTracking = on
	case modeAltScreen47:
		s.setAlternateScreen(on, false, false, false)
	case modeAltScreen1047:
		s.setAlternateScreen(on, false, false, true)
	case modeAltScreen1049:
		s.setAlternateScreen(on, true, true, true)
	case modeBracketedPaste:
		s.bracketedPaste = on
	case modeMarginMode:
		s.primary.SetMarginModeEnabled(on)
		s.alternate.SetMarginModeEnabled(on)
	}
	if s.Callbacks.OnModeChange != nil {
		s.Callbacks.OnModeChange(number, private, on)
	}
}

func (s *Screen) setMouseMode(on bool, mode int) {
	if on {
		s.mouseMode = mode
	} else if s.mouseMode == mode {
		s.mouseMode = 0
	}
}

// setAlternateScreen implements the three alt-screen conventions: bare 47
// (no cursor save, no clear either way), 1047 (no clear on entry, clears the
// alternate screen only once left), and 1049 (save/restore cursor, clearing
// on both entry and exit — xterm's recommended form).
func (s *Screen) setAlternateScreen(on, saveCursor, clearOnEnter, clearOnLeave bool) {
	if on == s.usingAlternate {
		return
	}
	if on {
		if saveCursor {
			s.primary.SaveCursorState()
		}
		s.usingAlternate = true
		s.active = s.alternate
		if clearOnEnter {
			s.active.EraseInDisplay(EraseAll)
			s.active.SetCursor(0, 0)
		}
	} else {
		if clearOnLeave {
			s.alternate.EraseInDisplay(EraseAll)
		}
		s.usingAlternate = false
		s.active = s.primary
		if saveCursor {
			s.primary.RestoreCursorState()
		}
	}
	s.markDirty()
}

// requestMode reports a mode's current setting via DECRQM (CSI ? Ps $ p).
func (s *Screen) requestMode(number int, private bool) int {
	const (
		notRecognized = 0
		set           = 1
		reset         = 2
	)
	on := false
	switch {
	case !private && number == modeInsert:
		on = s.active.insertMode
	case private && number == modeAppCursorKeys:
		on = s.appCursorKeys
	case private && number == modeOriginMode:
		on = s.active.originMode
	case private && number == modeAutoWrap:
		on = s.active.autoWrap
	case private && number == modeReverseVideo:
		on = s.reverseVideo
	case private && number == modeTextCursorVisible:
		on = s.cursorVisible
	case private && number == modeBracketedPaste:
		on = s.bracketedPaste
	case private && number == modeFocusTracking:
		on = s.focusTracking
	case private && (number == modeAltScreen47 || number == modeAltScreen1047 || number == modeAltScreen1049):
		on = s.usingAlternate
	case private && number == modeMarginMode:
		on = s.active.marginMode
	default:
		return notRecognized
	}
	if on {
		return set
	}
	return reset
}
