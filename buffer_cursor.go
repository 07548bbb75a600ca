package vterm

// GetCursor returns the current cursor position.
func (b *Buffer) GetCursor() (x, y int) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.cursorX, b.cursorY
}

// SetCursor sets the cursor position, clamped to the buffer (or, under
// DECOM, taken relative to the margins' top-left and clamped to them).
func (b *Buffer) SetCursor(x, y int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.setCursorInternal(x, y)
}

func (b *Buffer) setCursorInternal(x, y int) {
	minX, maxX, minY, maxY := 0, b.cols-1, 0, b.rows-1
	if b.originMode {
		minX, maxX, minY, maxY = b.left, b.right, b.top, b.bottom
		x += b.left
		y += b.top
	}
	b.cursorX = clamp(x, minX, maxX)
	b.cursorY = clamp(y, minY, maxY)
	b.wrapPending = false
}

// MoveCursorUp moves the cursor up n rows, stopping at the top margin when
// the cursor started at or below it, or row 0 otherwise.
func (b *Buffer) MoveCursorUp(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lo := 0
	if b.cursorY >= b.top {
		lo = b.top
	}
	b.cursorY = clamp(b.cursorY-n, lo, b.rows-1)
	b.wrapPending = false
	b.markDirty()
}

// MoveCursorDown moves the cursor down n rows, stopping at the bottom
// margin when the cursor started at or above it, or the last row otherwise.
func (b *Buffer) MoveCursorDown(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hi := b.rows - 1
	if b.cursorY <= b.bottom {
		hi = b.bottom
	}
	b.cursorY = clamp(b.cursorY+n, 0, hi)
	b.wrapPending = false
	b.markDirty()
}

// MoveCursorForward moves the cursor right n columns (CSI C).
func (b *Buffer) MoveCursorForward(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = clamp(b.cursorX+n, 0, b.cols-1)
	b.wrapPending = false
	b.markDirty()
}

// MoveCursorBackward moves the cursor left n columns (CSI D).
func (b *Buffer) MoveCursorBackward(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = clamp(b.cursorX-n, 0, b.cols-1)
	b.wrapPending = false
	b.markDirty()
}

// CursorNextLine moves to column 0 of the nth following line (CSI E).
func (b *Buffer) CursorNextLine(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	hi := b.rows - 1
	if b.cursorY <= b.bottom {
		hi = b.bottom
	}
	b.cursorY = clamp(b.cursorY+n, 0, hi)
	b.cursorX = 0
	b.wrapPending = false
	b.markDirty()
}

// CursorPrevLine moves to column 0 of the nth preceding line (CSI F).
func (b *Buffer) CursorPrevLine(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	lo := 0
	if b.cursorY >= b.top {
		lo = b.top
	}
	b.cursorY = clamp(b.cursorY-n, lo, b.rows-1)
	b.cursorX = 0
	b.wrapPending = false
	b.markDirty()
}

// SetCursorColumn moves to column n (1-based, CSI G).
func (b *Buffer) SetCursorColumn(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.cursorX = clamp(n-1, 0, b.cols-1)
	b.wrapPending = false
	b.markDirty()
}

// SetCursorRow moves to row n (1-based, CSI d), honoring DECOM.
func (b *Buffer) SetCursorRow(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	row := n - 1
	if b.originMode {
		row += b.top
		row = clamp(row, b.top, b.bottom)
	} else {
		row = clamp(row, 0, b.rows-1)
	}
	b.cursorY = row
	b.wrapPending = false
	b.markDirty()
}

// SaveCursorState snapshots position, pen, origin mode, charset state, and
// wrap-pending into the DECSC slot.
func (b *Buffer) SaveCursorState() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.saved = savedState{
		x: b.cursorX, y: b.cursorY,
		pen:         b.pen,
		originMode:  b.originMode,
		wrapPending: b.wrapPending,
		charsets:    b.charsets,
		activeGSet:  b.activeGSet,
	}
}

// RestoreCursorState restores the DECSC slot saved by SaveCursorState, or a
// sane default if nothing was ever saved.
func (b *Buffer) RestoreCursorState() {
	b.mu.Lock()
	defer b.mu.Unlock()
	s := b.saved
	b.cursorX, b.cursorY = clamp(s.x, 0, b.cols-1), clamp(s.y, 0, b.rows-1)
	b.pen = s.pen
	b.originMode = s.originMode
	b.wrapPending = s.wrapPending
	b.charsets = s.charsets
	b.activeGSet = s.activeGSet
	b.markDirty()
}

// SetOriginMode sets DECOM. Switching it moves the cursor to the home
// position of the (possibly now different) addressing scheme.
func (b *Buffer) SetOriginMode(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.originMode = on
	if on {
		b.cursorX, b.cursorY = b.left, b.top
	} else {
		b.cursorX, b.cursorY = 0, 0
	}
	b.wrapPending = false
	b.markDirty()
}
