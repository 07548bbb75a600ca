package vterm

// pushScrollback appends line to scrollback; oldest lines are evicted once
// maxScrollback is exceeded. Must be called with the lock held.
func (b *Buffer) pushScrollback(line []Cell, wrapped, marked bool) {
	cp := make([]Cell, len(line))
	copy(cp, line)
	b.scrollback = append(b.scrollback, ScrollbackLine{Cells: cp, Wrapped: wrapped, Marked: marked})
	if len(b.scrollback) > b.maxScrollback {
		drop := len(b.scrollback) - b.maxScrollback
		b.scrollback = b.scrollback[drop:]
	}
}

// SetMaxScrollback sets the retention cap, trimming existing scrollback if
// the new cap is smaller.
func (b *Buffer) SetMaxScrollback(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if n < 0 {
		n = 0
	}
	b.maxScrollback = n
	if len(b.scrollback) > n {
		b.scrollback = b.scrollback[len(b.scrollback)-n:]
	}
}

// ClearScrollback discards all retained scrollback lines.
func (b *Buffer) ClearScrollback() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.scrollback = nil
	b.markDirty()
}

// SetMark marks the line the cursor is currently on, for later navigation
// with FindPreviousMark/FindNextMark (supplemented from the original
// terminal's line-marker feature).
func (b *Buffer) SetMark() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorY >= 0 && b.cursorY < len(b.lineMarked) {
		b.lineMarked[b.cursorY] = true
	}
}

// FindPreviousMark returns the buffer-absolute line index (0 = oldest
// scrollback line) of the nearest mark at or above fromAbsolute, or -1.
func (b *Buffer) FindPreviousMark(fromAbsolute int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for i := fromAbsolute; i >= 0; i-- {
		if i < len(b.scrollback) {
			if b.scrollback[i].Marked {
				return i
			}
		} else if row := i - len(b.scrollback); row < len(b.lineMarked) && b.lineMarked[row] {
			return i
		}
	}
	return -1
}

// FindNextMark returns the buffer-absolute line index of the nearest mark
// at or below fromAbsolute, or -1.
func (b *Buffer) FindNextMark(fromAbsolute int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	total := len(b.scrollback) + b.rows
	for i := fromAbsolute; i < total; i++ {
		if i < len(b.scrollback) {
			if b.scrollback[i].Marked {
				return i
			}
		} else if row := i - len(b.scrollback); row < len(b.lineMarked) && b.lineMarked[row] {
			return i
		}
	}
	return -1
}
