package vterm

// DesignateCharset assigns a charset code (e.g. 'B' for US-ASCII, '0' for DEC
// Special Graphics) to one of the G0-G3 slots.
func (b *Buffer) DesignateCharset(slot int, charset byte) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if slot >= 0 && slot < len(b.charsets) {
		b.charsets[slot] = charset
	}
}

// InvokeCharset switches GL to one of G0-G3 (SI/SO/LS2/LS3).
func (b *Buffer) InvokeCharset(slot int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.activeGSet = slot
}

// SingleShift arms a one-character shift to G2 or G3 (SS2/SS3); the next
// printed grapheme uses that set, then GL reverts automatically.
func (b *Buffer) SingleShift(slot int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.singleShift = slot
}

// translateCharset maps r through the designated charset's substitution
// table. Only DEC Special Graphics ('0') has one; every other designation
// the engine claims to support (ASCII 'B', UK 'A', ...) is visually an
// identity mapping at the single-width-cell granularity this engine works
// at.
func translateCharset(r rune, charset byte) rune {
	if charset != '0' {
		return r
	}
	if repl, ok := decSpecialGraphics[r]; ok {
		return repl
	}
	return r
}

// decSpecialGraphics is the VT100 DEC Special Graphics character set,
// mapped from the ASCII codes it overlays (0x5f-0x7e) to the box-drawing and
// symbol runes it draws.
var decSpecialGraphics = map[rune]rune{
	'_': ' ',
	'`': '♦',
	'a': '▒',
	'b': '␉',
	'c': '␌',
	'd': '␍',
	'e': '␊',
	'f': '°',
	'g': '±',
	'h': '␤',
	'i': '␋',
	'j': '┘',
	'k': '┐',
	'l': '┌',
	'm': '└',
	'n': '┼',
	'o': '⎺',
	'p': '⎻',
	'q': '─',
	'r': '⎼',
	's': '⎽',
	't': '├',
	'u': '┤',
	'v': '┴',
	'w': '┬',
	'x': '│',
	'y': '≤',
	'z': '≥',
	'{': 'π',
	'|': '≠',
	'}': '£',
	'~': '·',
}
