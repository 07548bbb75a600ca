package vterm

// UnderlineStyle distinguishes the VTE/kitty extended underline styles from
// plain SGR 4.
type UnderlineStyle int

const (
	UnderlineNone UnderlineStyle = iota
	UnderlineSingle
	UnderlineDouble
	UnderlineCurly
	UnderlineDotted
	UnderlineDashed
)

// Hyperlink is the deduplicated target of an OSC 8 hyperlink, referenced by
// Cell.Hyperlink. Buffer owns the table; cells only hold a pointer into it so
// that reflow and scrollback never copy the URI text.
type Hyperlink struct {
	URI string
	ID  string // optional explicit id= parameter, empty if none was given
}

// Pen holds the graphic-rendition state that SGR accumulates and that gets
// stamped onto every cell written from then on.
type Pen struct {
	Foreground       Color
	Background       Color
	Bold             bool
	Faint            bool
	Italic           bool
	Underline        bool
	UnderlineStyle   UnderlineStyle
	UnderlineColor   Color
	HasUnderlineColor bool
	Blink            bool
	RapidBlink       bool
	Reverse          bool
	Conceal          bool
	Strikethrough    bool
	Hyperlink        *Hyperlink
}

// DefaultPen is the pen in effect after a hard or soft reset.
func DefaultPen() Pen {
	return Pen{Foreground: DefaultForeground, Background: DefaultBackground}
}

// Cell is a single grid position. Width is 1 for ordinary characters, 2 for
// the leading column of a wide (East Asian Wide / emoji) grapheme, and 0 for
// the continuation column trailing a wide cell — the continuation cell
// always carries Rune == 0 and mirrors its leader's Pen.
type Cell struct {
	Rune      rune
	Combining string // additional combining marks belonging to the same grapheme cluster
	Width     int8
	Pen
}

// BlankCell returns the erase cell used by ED/EL and line-clear operations:
// a space painted with pen's background.
func BlankCell(pen Pen) Cell {
	return Cell{Rune: ' ', Width: 1, Pen: pen}
}

// IsContinuation reports whether this cell is the zero-width trailer of a
// wide cell to its left.
func (c Cell) IsContinuation() bool {
	return c.Width == 0
}

// String returns the full grapheme cluster text, including combining marks.
func (c Cell) String() string {
	if c.Combining == "" {
		return string(c.Rune)
	}
	return string(c.Rune) + c.Combining
}
