package vterm

// softReset implements DECSTR: clears margins, origin mode, and the pen,
// without touching screen content or the alternate-screen selection.
func (s *Screen) softReset() {
	s.active.SetScrollingRegion(0, 0)
	s.active.SetMarginModeEnabled(false)
	s.active.SetOriginMode(false)
	s.active.SetAutoWrap(true)
	s.active.SetInsertMode(false)
	s.active.ApplySGR([]SGRAttribute{{Code: 0}})
	s.active.SetCursor(0, 0)
	s.cursorVisible = true
	s.markDirty()
}

// hardReset implements RIS: both buffers are recreated from scratch, modes
// return to their power-on defaults, and the primary screen is selected.
func (s *Screen) hardReset() {
	cols, rows := s.cols, s.rows
	s.primary = NewBuffer(cols, rows, false)
	s.alternate = NewBuffer(cols, rows, true)
	s.primary.onDirty = s.markDirty
	s.alternate.onDirty = s.markDirty
	s.active = s.primary
	s.usingAlternate = false

	s.appCursorKeys = false
	s.appKeypadMode = false
	s.reverseVideo = false
	s.cursorVisible = true
	s.bracketedPaste = false
	s.focusTracking = false
	s.mouseMode = 0
	s.mouseUTF8 = false
	s.mouseSGR = false
	s.cursorShape, s.cursorBlink = 0, 0

	s.title = ""
	s.iconName = ""
	s.titleStack = nil
	s.dynamicColors = make(map[int]Color)
	s.viewportOffset = 0
	s.selector = newSelector(s)

	s.markDirty()
}
