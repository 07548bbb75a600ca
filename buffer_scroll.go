package vterm

// SetScrollingRegion sets DECSTBM's top/bottom margins (1-based, inclusive).
// top==0 && bottom==0 resets to the full screen. The cursor moves to the
// region's home position, per DEC convention.
func (b *Buffer) SetScrollingRegion(top, bottom int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if bottom == 0 {
		bottom = b.rows
	}
	t, bo := top-1, bottom-1
	if t < 0 {
		t = 0
	}
	if bo > b.rows-1 {
		bo = b.rows - 1
	}
	if t >= bo {
		t, bo = 0, b.rows-1
	}
	b.top, b.bottom = t, bo
	if b.originMode {
		b.cursorX, b.cursorY = b.left, b.top
	} else {
		b.cursorX, b.cursorY = 0, 0
	}
	b.wrapPending = false
	b.markDirty()
}

// SetLeftRightMargin sets DECSLRM's left/right margins (1-based, inclusive).
// Has no effect unless DECLRMM (mode 69) is enabled.
func (b *Buffer) SetLeftRightMargin(left, right int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.marginMode {
		return
	}
	if right == 0 {
		right = b.cols
	}
	l, r := left-1, right-1
	if l < 0 {
		l = 0
	}
	if r > b.cols-1 {
		r = b.cols - 1
	}
	if l >= r {
		l, r = 0, b.cols-1
	}
	b.left, b.right = l, r
	if b.originMode {
		b.cursorX, b.cursorY = b.left, b.top
	} else {
		b.cursorX, b.cursorY = 0, 0
	}
	b.wrapPending = false
	b.markDirty()
}

// SetMarginModeEnabled toggles DECLRMM (mode 69); disabling it resets the
// margins to the full width.
func (b *Buffer) SetMarginModeEnabled(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.marginMode = on
	if !on {
		b.left, b.right = 0, b.cols-1
	}
}

// fullWidthScrollRegion reports whether the current scrolling region spans
// the entire screen — full width and full height — the only configuration
// from which a scroll-up is allowed to feed scrollback.
func (b *Buffer) fullWidthScrollRegion() bool {
	return b.left == 0 && b.right == b.cols-1 && b.top == 0 && b.bottom == b.rows-1
}

// ScrollRegionUp scrolls the scrolling region up by n lines, the way a
// line feed at the bottom margin does. Lines scrolled off the top of a
// full-width region on the primary screen are pushed to scrollback;
// anything else (a margin-restricted region, or the alternate screen)
// discards them instead.
func (b *Buffer) ScrollRegionUp(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrollRegionUpInternal(n, true)
	b.markDirty()
}

func (b *Buffer) scrollRegionUpInternal(n int, allowScrollback bool) {
	if n <= 0 {
		return
	}
	height := b.bottom - b.top + 1
	if n > height {
		n = height
	}
	full := allowScrollback && !b.isAlternate && b.fullWidthScrollRegion()
	for i := 0; i < n; i++ {
		if full {
			b.pushScrollback(b.cells[b.top], b.lineWrapped[b.top], b.lineMarked[b.top])
		}
		copy(b.cells[b.top:b.bottom], b.cells[b.top+1:b.bottom+1])
		copy(b.lineAttr[b.top:b.bottom], b.lineAttr[b.top+1:b.bottom+1])
		copy(b.lineWrapped[b.top:b.bottom], b.lineWrapped[b.top+1:b.bottom+1])
		copy(b.lineMarked[b.top:b.bottom], b.lineMarked[b.top+1:b.bottom+1])
		b.cells[b.bottom] = blankLine(b.cols, b.pen)
		b.lineAttr[b.bottom] = LineAttrNormal
		b.lineWrapped[b.bottom] = false
		b.lineMarked[b.bottom] = false
	}
}

// ScrollRegionDown scrolls the scrolling region down by n lines (CSI T);
// never produces scrollback.
func (b *Buffer) ScrollRegionDown(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrollRegionDownInternal(n)
	b.markDirty()
}

// InsertLines inserts n blank lines at the cursor's row (CSI L), shifting
// lines below down within the scrolling region; only valid when the cursor
// is inside the region.
func (b *Buffer) InsertLines(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorY < b.top || b.cursorY > b.bottom {
		return
	}
	height := b.bottom - b.cursorY + 1
	if n > height {
		n = height
	}
	for i := 0; i < n; i++ {
		copy(b.cells[b.cursorY+1:b.bottom+1], b.cells[b.cursorY:b.bottom])
		b.cells[b.cursorY] = blankLine(b.cols, b.pen)
		copy(b.lineAttr[b.cursorY+1:b.bottom+1], b.lineAttr[b.cursorY:b.bottom])
		b.lineAttr[b.cursorY] = LineAttrNormal
	}
	b.markDirty()
}

// DeleteLines deletes n lines at the cursor's row (CSI M), pulling lines
// below up within the scrolling region.
func (b *Buffer) DeleteLines(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorY < b.top || b.cursorY > b.bottom {
		return
	}
	height := b.bottom - b.cursorY + 1
	if n > height {
		n = height
	}
	for i := 0; i < n; i++ {
		copy(b.cells[b.cursorY:b.bottom], b.cells[b.cursorY+1:b.bottom+1])
		b.cells[b.bottom] = blankLine(b.cols, b.pen)
		copy(b.lineAttr[b.cursorY:b.bottom], b.lineAttr[b.cursorY+1:b.bottom+1])
		b.lineAttr[b.bottom] = LineAttrNormal
	}
	b.markDirty()
}
