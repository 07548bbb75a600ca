package vterm

import (
	"strconv"
	"sync"
)

// deviceAttributesReply is the DA1 response this engine claims: a VT525-class
// terminal supporting 132 columns (1), printer port (2), selective erase (6),
// UDK (8), national replacement charsets (9), technical characters (15),
// windowing (18), horizontal scrolling (21), and ANSI color (22).
const deviceAttributesReply = "\x1b[?65;1;2;6;8;9;15;18;21;22c"

// Screen is the top-level embedder-facing type: it owns the primary and
// alternate ScreenBuffers, DEC private mode state, the title stack, and
// dispatches the Command stream a Parser/CommandBuilder pair produces. It
// never touches a PTY or renders pixels; Write accepts already-read host
// output and Callbacks.OnReply is the only channel back to the host.
type Screen struct {
	mu sync.Mutex

	primary   *Buffer
	alternate *Buffer
	active    *Buffer
	usingAlternate bool

	cols, rows int

	appCursorKeys  bool
	appKeypadMode  bool
	reverseVideo   bool
	cursorVisible  bool
	bracketedPaste bool
	focusTracking  bool
	mouseMode      int
	mouseUTF8      bool
	mouseSGR       bool

	cursorShape int
	cursorBlink int

	title      string
	iconName   string
	titleStack []string

	dynamicColors map[int]Color

	viewportOffset int

	selector *Selector

	parser  *Parser
	builder *CommandBuilder

	Callbacks Callbacks
}

// NewScreen constructs a Screen sized cols x rows with the given callbacks
// wired in.
func NewScreen(cols, rows int, cb Callbacks) *Screen {
	s := &Screen{
		primary:       NewBuffer(cols, rows, false),
		alternate:     NewBuffer(cols, rows, true),
		cols:          cols,
		rows:          rows,
		cursorVisible: true,
		dynamicColors: make(map[int]Color),
		Callbacks:     cb,
	}
	s.active = s.primary
	s.primary.onDirty = s.markDirty
	s.alternate.onDirty = s.markDirty
	s.selector = newSelector(s)
	s.builder = NewCommandBuilder(s.dispatch)
	s.parser = NewParser(AmbiguousWidthNarrow, s.builder.Handle)
	return s
}

func (s *Screen) markDirty() {
	if s.Callbacks.OnDirty != nil {
		s.Callbacks.OnDirty()
	}
}

func (s *Screen) reply(data string) {
	if s.Callbacks.OnReply != nil {
		s.Callbacks.OnReply([]byte(data))
	}
}

// SetLogger wires a shared structured logger into the parser and builder.
func (s *Screen) SetLogger(fn func(msg string, args ...any)) {
	s.parser.SetLogger(fn)
	s.builder.SetLogger(fn)
}

// SetMaxStringLength bounds OSC/DCS/APC/PM/SOS string accumulation.
func (s *Screen) SetMaxStringLength(n int) { s.parser.SetMaxStringLength(n) }

// Write feeds raw host output (already read off the PTY) through the parser.
func (s *Screen) Write(data []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parser.Feed(data)
	return len(data), nil
}

// Resize changes both buffers' dimensions.
func (s *Screen) Resize(cols, rows int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.primary.Resize(cols, rows); err != nil {
		return err
	}
	if err := s.alternate.Resize(cols, rows); err != nil {
		return err
	}
	s.cols, s.rows = cols, rows
	return nil
}

// Size returns the screen's current dimensions.
func (s *Screen) Size() (cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cols, s.rows
}

// Active returns the buffer currently being displayed (primary or
// alternate).
func (s *Screen) Active() *Buffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// UsingAlternate reports whether the alternate screen is current.
func (s *Screen) UsingAlternate() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.usingAlternate
}

// CursorVisible reports DECTCEM state.
func (s *Screen) CursorVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorVisible
}

// AppCursorKeysMode reports DECCKM state, which embedders use to choose
// between the normal (CSI) and application (SS3) cursor-key encodings.
func (s *Screen) AppCursorKeysMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appCursorKeys
}

// CursorStyle reports the DECSCUSR shape (0 = block, 1 = underline, 2 = bar)
// and whether it blinks, for embedders that render their own cursor.
func (s *Screen) CursorStyle() (shape int, blink bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursorShape, s.cursorBlink == 1
}

// ReverseVideo reports DECSCNM state.
func (s *Screen) ReverseVideo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reverseVideo
}

// AppKeypadMode reports DECKPAM/DECKPNM state, which embedders use to choose
// how numeric-keypad keys are encoded.
func (s *Screen) AppKeypadMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appKeypadMode
}

// MouseMode reports the currently active mouse-tracking protocol (0 = off,
// 9 = X10, 1000 = normal, 1002 = button-event, 1003 = any-event).
func (s *Screen) MouseMode() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseMode
}

// MouseTransport reports the wire-encoding extensions layered on top of
// MouseMode: UTF-8 (mode 1005) and SGR (mode 1006) coordinate encodings.
func (s *Screen) MouseTransport() (utf8, sgr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mouseUTF8, s.mouseSGR
}

// BracketedPaste reports mode 2004 state.
func (s *Screen) BracketedPaste() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bracketedPaste
}

// FocusTracking reports mode 1004 state.
func (s *Screen) FocusTracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.focusTracking
}

// Title returns the current window title.
func (s *Screen) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SelectionActive reports whether a selection is currently in progress or
// holds a non-empty range (collapses HasSelection/IsSelecting into the one
// predicate embedders need to decide whether to highlight anything).
func (s *Screen) SelectionActive() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selector.active()
}

// ViewportOffset returns how many lines above the bottom of scrollback the
// view is currently scrolled (0 = live bottom).
func (s *Screen) ViewportOffset() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewportOffset
}

// ScrollViewport moves the scrollback view by delta lines (positive = back
// into history), clamped to the available range. Only meaningful on the
// primary screen; a no-op while the alternate screen is active.
func (s *Screen) ScrollViewport(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.usingAlternate {
		return
	}
	max := s.primary.ScrollbackLen()
	s.viewportOffset = clamp(s.viewportOffset+delta, 0, max)
	s.markDirty()
}

// ResetViewport snaps the scrollback view back to the live bottom.
func (s *Screen) ResetViewport() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.viewportOffset = 0
}

func formatCSI(params ...int) string {
	out := "\x1b["
	for i, p := range params {
		if i > 0 {
			out += ";"
		}
		out += strconv.Itoa(p)
	}
	return out
}
