package vterm

// LineFeed advances the cursor to the next line, scrolling the region if
// the cursor is on the bottom margin. It does not touch the column (use
// CarriageReturn for that), matching LF's own semantics; embedders wanting
// CRLF-on-LF behavior configure it at the Screen/mode level.
func (b *Buffer) LineFeed() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lineFeedInternal(false)
	b.markDirty()
}

func (b *Buffer) lineFeedInternal(wrapped bool) {
	if wrapped && b.cursorY < len(b.lineWrapped) {
		b.lineWrapped[b.cursorY] = true
	}
	if b.cursorY == b.bottom {
		b.scrollRegionUpInternal(1, true)
	} else if b.cursorY < b.rows-1 {
		b.cursorY++
	}
	b.wrapPending = false
}

// ReverseLineFeed moves the cursor up one line, scrolling the region down
// if the cursor is on the top margin (ESC M).
func (b *Buffer) ReverseLineFeed() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorY == b.top {
		b.scrollRegionDownInternal(1)
	} else if b.cursorY > 0 {
		b.cursorY--
	}
	b.wrapPending = false
	b.markDirty()
}

func (b *Buffer) scrollRegionDownInternal(n int) {
	height := b.bottom - b.top + 1
	if n > height {
		n = height
	}
	for i := 0; i < n; i++ {
		copy(b.cells[b.top+1:b.bottom+1], b.cells[b.top:b.bottom])
		copy(b.lineAttr[b.top+1:b.bottom+1], b.lineAttr[b.top:b.bottom])
		copy(b.lineWrapped[b.top+1:b.bottom+1], b.lineWrapped[b.top:b.bottom])
		b.cells[b.top] = blankLine(b.cols, b.pen)
		b.lineAttr[b.top] = LineAttrNormal
		b.lineWrapped[b.top] = false
	}
}

// CarriageReturn moves the cursor to the left margin (column left when
// inside the margins, column 0 otherwise, matching xterm).
func (b *Buffer) CarriageReturn() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorX >= b.left {
		b.cursorX = b.left
	} else {
		b.cursorX = 0
	}
	b.wrapPending = false
	b.markDirty()
}

// Backspace moves the cursor left one column, stopping at column 0 (never
// wraps to the previous line).
func (b *Buffer) Backspace() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.cursorX > 0 {
		b.cursorX--
	}
	b.wrapPending = false
	b.markDirty()
}

// SetInsertMode toggles IRM.
func (b *Buffer) SetInsertMode(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.insertMode = on
}

// SetAutoWrap toggles DECAWM.
func (b *Buffer) SetAutoWrap(on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.autoWrap = on
	b.wrapPending = false
}

// WriteGraphemes writes a run of decoded grapheme clusters at the cursor,
// applying the current pen, honoring IRM/DECAWM/margins, and pairing wide
// clusters with a zero-width continuation cell.
func (b *Buffer) WriteGraphemes(gs []grapheme) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, g := range gs {
		b.writeOne(g)
	}
	b.markDirty()
}

func (b *Buffer) writeOne(g grapheme) {
	width := int(g.Width)
	if width == 0 {
		width = 1 // a combining mark with no preceding base rune still occupies a column
	}

	if b.wrapPending {
		if b.autoWrap {
			b.lineFeedInternal(true)
			b.cursorX = b.left
		}
		b.wrapPending = false
	}

	if b.cursorX+width-1 > b.right {
		if b.autoWrap {
			b.lineFeedInternal(true)
			b.cursorX = b.left
		} else {
			b.cursorX = b.right - width + 1
			if b.cursorX < b.left {
				b.cursorX = b.left
			}
		}
	}

	slot := b.activeGSet
	if b.singleShift != 0 {
		slot = b.singleShift
		b.singleShift = 0
	}
	r := translateCharset(g.Rune, b.charsets[slot])
	cell := Cell{Rune: r, Combining: g.Combining, Width: int8(width), Pen: b.pen}

	if b.insertMode {
		b.insertCellsInternal(width)
	}

	b.cells[b.cursorY][b.cursorX] = cell
	for i := 1; i < width; i++ {
		if b.cursorX+i <= b.right {
			b.cells[b.cursorY][b.cursorX+i] = Cell{Width: 0, Pen: b.pen}
		}
	}

	if b.cursorX+width > b.right {
		b.cursorX = b.right
		b.wrapPending = true
	} else {
		b.cursorX += width
	}
}

// insertCellsInternal shifts n cells right from the cursor within
// [left,right], discarding what falls off the right margin (IRM). Must be
// called with the lock held.
func (b *Buffer) insertCellsInternal(n int) {
	line := b.cells[b.cursorY]
	for i := b.right; i >= b.cursorX+n; i-- {
		if i-n >= b.left {
			line[i] = line[i-n]
		}
	}
	for i := b.cursorX; i < b.cursorX+n && i <= b.right; i++ {
		line[i] = BlankCell(b.pen)
	}
}

// InsertCharacters inserts n blank cells at the cursor (CSI @), shifting the
// rest of the line right and clipping at the right margin.
func (b *Buffer) InsertCharacters(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.insertCellsInternal(n)
	b.markDirty()
}

// DeleteCharacters deletes n cells at the cursor (CSI P), pulling the rest
// of the line left and blanking the vacated cells at the right margin.
func (b *Buffer) DeleteCharacters(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	line := b.cells[b.cursorY]
	for i := b.cursorX; i <= b.right; i++ {
		if i+n <= b.right {
			line[i] = line[i+n]
		} else {
			line[i] = BlankCell(b.pen)
		}
	}
	b.markDirty()
}

// EraseCharacters overwrites n cells starting at the cursor with the
// current pen's background (CSI X), without moving the cursor or shifting
// content.
func (b *Buffer) EraseCharacters(n int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	line := b.cells[b.cursorY]
	end := b.cursorX + n
	if end > b.cols {
		end = b.cols
	}
	for i := b.cursorX; i < end; i++ {
		line[i] = BlankCell(b.pen)
	}
	b.markDirty()
}

// EraseInLine implements CSI K.
func (b *Buffer) EraseInLine(mode EraseMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	line := b.cells[b.cursorY]
	switch mode {
	case EraseToEnd:
		for i := b.cursorX; i < b.cols; i++ {
			line[i] = BlankCell(b.pen)
		}
	case EraseToStart:
		for i := 0; i <= b.cursorX && i < b.cols; i++ {
			line[i] = BlankCell(b.pen)
		}
	case EraseAll:
		b.cells[b.cursorY] = blankLine(b.cols, b.pen)
	}
	b.markDirty()
}

// EraseInDisplay implements CSI J, including ED 3 (erase scrollback).
func (b *Buffer) EraseInDisplay(mode EraseMode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch mode {
	case EraseToEnd:
		eraseLineFrom(b.cells[b.cursorY], b.cursorX, b.cols, b.pen)
		for y := b.cursorY + 1; y < b.rows; y++ {
			b.cells[y] = blankLine(b.cols, b.pen)
		}
	case EraseToStart:
		for y := 0; y < b.cursorY; y++ {
			b.cells[y] = blankLine(b.cols, b.pen)
		}
		eraseLineFrom(b.cells[b.cursorY], 0, b.cursorX+1, b.pen)
	case EraseAll:
		for y := 0; y < b.rows; y++ {
			b.cells[y] = blankLine(b.cols, b.pen)
		}
	case EraseScrollback:
		b.scrollback = nil
	}
	b.markDirty()
}

func eraseLineFrom(line []Cell, from, to int, pen Pen) {
	if to > len(line) {
		to = len(line)
	}
	for i := from; i < to; i++ {
		line[i] = BlankCell(pen)
	}
}

// ScreenAlignmentPattern implements DECALN: fills the screen with 'E' at
// default attributes, for margin/alignment calibration.
func (b *Buffer) ScreenAlignmentPattern() {
	b.mu.Lock()
	defer b.mu.Unlock()
	pen := DefaultPen()
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			b.cells[y][x] = Cell{Rune: 'E', Width: 1, Pen: pen}
		}
	}
	b.cursorX, b.cursorY = 0, 0
	b.top, b.bottom = 0, b.rows-1
	b.left, b.right = 0, b.cols-1
	b.markDirty()
}
