package vterm

import "testing"

func TestScreenModeSetResetRoundTrip(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("\x1b[?25l"))
	if s.CursorVisible() {
		t.Fatal("expected DECTCEM off after CSI ?25l")
	}
	s.Write([]byte("\x1b[?25h"))
	if !s.CursorVisible() {
		t.Fatal("expected DECTCEM on after CSI ?25h")
	}
}

func TestScreenApplicationKeypadMode(t *testing.T) {
	var states []bool
	s := NewScreen(10, 5, Callbacks{OnKeypadModeChange: func(app bool) { states = append(states, app) }})
	s.Write([]byte("\x1b="))
	if !s.AppKeypadMode() {
		t.Fatal("expected DECKPAM to enable application keypad mode")
	}
	s.Write([]byte("\x1b>"))
	if s.AppKeypadMode() {
		t.Fatal("expected DECKPNM to restore numeric keypad mode")
	}
	if len(states) != 2 || states[0] != true || states[1] != false {
		t.Fatalf("unexpected keypad-mode callback sequence: %v", states)
	}
}

func TestScreenAlternateScreenSwitch(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("hello"))
	s.Write([]byte("\x1b[?1049h"))
	if !s.UsingAlternate() {
		t.Fatal("expected alternate screen active after CSI ?1049h")
	}
	if s.Active().Cell(0, 0).Rune != 0 && s.Active().Cell(0, 0).Rune != ' ' {
		t.Fatalf("expected alternate screen to start cleared, got %q", s.Active().Cell(0, 0).Rune)
	}
	s.Write([]byte("\x1b[?1049l"))
	if s.UsingAlternate() {
		t.Fatal("expected primary screen restored after CSI ?1049l")
	}
	if s.Active().Cell(0, 0).Rune != 'h' {
		t.Fatalf("expected primary screen content preserved across alt-screen round trip, got %q", s.Active().Cell(0, 0).Rune)
	}
}

func TestScreenSoftResetRestoresDefaults(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("\x1b[?25l"))
	s.Write([]byte("\x1b[31m"))
	s.Write([]byte("\x1b[!p"))
	if !s.CursorVisible() {
		t.Fatal("expected DECSTR to restore cursor visibility")
	}
	if s.Active().pen.Foreground.Type != ColorTypeDefault {
		t.Fatalf("expected DECSTR to reset SGR pen, got %+v", s.Active().pen.Foreground)
	}
}

func TestScreenHardResetClearsScrollback(t *testing.T) {
	s := NewScreen(5, 2, Callbacks{})
	s.Write([]byte("first\r\nsecnd\r\n"))
	if s.primary.ScrollbackLen() == 0 {
		t.Fatal("expected scrollback to accrue before reset")
	}
	s.Write([]byte("\x1bc"))
	if s.primary.ScrollbackLen() != 0 {
		t.Fatalf("expected RIS to clear scrollback, got %d lines", s.primary.ScrollbackLen())
	}
}

func TestScreenCursorPositionReport(t *testing.T) {
	var replies [][]byte
	s := NewScreen(10, 5, Callbacks{OnReply: func(data []byte) { replies = append(replies, data) }})
	s.Write([]byte("\x1b[3;4H"))
	s.Write([]byte("\x1b[6n"))
	if len(replies) != 1 {
		t.Fatalf("expected one reply, got %d", len(replies))
	}
	if string(replies[0]) != "\x1b[3;4R" {
		t.Fatalf("expected CPR \\x1b[3;4R, got %q", replies[0])
	}
}

func TestScreenRequestModeReply(t *testing.T) {
	var replies [][]byte
	s := NewScreen(10, 5, Callbacks{OnReply: func(data []byte) { replies = append(replies, data) }})
	s.Write([]byte("\x1b[?25$p"))
	if len(replies) != 1 {
		t.Fatalf("expected one DECRQM reply, got %d", len(replies))
	}
	if string(replies[0]) != "\x1b[?25;1$y" {
		t.Fatalf("expected DECTCEM reported set, got %q", replies[0])
	}
}

func TestScreenTitlePushPop(t *testing.T) {
	var titles []string
	s := NewScreen(10, 5, Callbacks{OnTitleChange: func(title string) { titles = append(titles, title) }})
	s.Write([]byte("\x1b]2;first\x07"))
	s.Write([]byte("\x1b[22t"))
	s.Write([]byte("\x1b]2;second\x07"))
	s.Write([]byte("\x1b[23t"))
	if s.Title() != "first" {
		t.Fatalf("expected title popped back to 'first', got %q", s.Title())
	}
	if len(titles) != 3 {
		t.Fatalf("expected 3 title-change callbacks, got %d", len(titles))
	}
}

func TestScreenDynamicColorSetAndRequest(t *testing.T) {
	var replies [][]byte
	s := NewScreen(10, 5, Callbacks{OnReply: func(data []byte) { replies = append(replies, data) }})
	s.Write([]byte("\x1b]10;rgb:ff/00/00\x07"))
	s.Write([]byte("\x1b]10;?\x07"))
	if len(replies) != 1 {
		t.Fatalf("expected one dynamic-color reply, got %d", len(replies))
	}
	if string(replies[0]) != "\x1b]10;rgb:ffff/0000/0000\x1b\\" {
		t.Fatalf("unexpected dynamic color reply: %q", replies[0])
	}
}

func TestScreenAmbiguousSSavesCursorWithoutMarginMode(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("\x1b[3;4H"))
	s.Write([]byte("\x1b[s"))
	s.Write([]byte("\x1b[1;1H"))
	s.Write([]byte("\x1b[u"))
	x, y := s.active.GetCursor()
	if x != 3 || y != 2 {
		t.Fatalf("expected CSI s/u to save and restore the cursor at (3,2), got (%d,%d)", x, y)
	}
}

func TestScreenAmbiguousSSetsMarginsUnderDECLRMM(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("\x1b[?69h"))
	s.Write([]byte("\x1b[3;8s"))
	if s.active.left != 2 || s.active.right != 7 {
		t.Fatalf("expected DECLRMM-enabled CSI s to set margins (2,7), got (%d,%d)", s.active.left, s.active.right)
	}
}

func TestScreenAlternateScreen1047ClearsOnlyOnLeave(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("hello"))
	s.Write([]byte("\x1b[?1047h"))
	s.Write([]byte("\x1b[H"))
	s.Write([]byte("x"))
	s.Write([]byte("\x1b[?1047l"))
	if s.alternate.Cell(0, 0).Rune != 0 && s.alternate.Cell(0, 0).Rune != ' ' {
		t.Fatalf("expected the alternate screen to have been cleared on leaving 1047, got %q", s.alternate.Cell(0, 0).Rune)
	}
	if s.primary.Cell(0, 0).Rune != 'h' {
		t.Fatalf("expected primary screen content preserved under 1047, got %q", s.primary.Cell(0, 0).Rune)
	}
}

func TestScreenRequestTabStopsReply(t *testing.T) {
	var replies [][]byte
	s := NewScreen(20, 5, Callbacks{OnReply: func(data []byte) { replies = append(replies, data) }})
	s.Write([]byte("\x1b[$w"))
	if len(replies) != 1 {
		t.Fatalf("expected one DECRQTAB reply, got %d", len(replies))
	}
	if string(replies[0]) != "\x1bP2$u1/9/17\x1b\\" {
		t.Fatalf("unexpected tab-stop reply: %q", replies[0])
	}
}

func TestScreenShiftInShiftOutInvokesCharset(t *testing.T) {
	s := NewScreen(10, 5, Callbacks{})
	s.Write([]byte("\x1b)0")) // designate DEC special graphics into G1
	s.Write([]byte("\x0e"))   // SO: invoke G1
	s.Write([]byte("q"))
	if s.active.Cell(0, 0).Rune != '─' {
		t.Fatalf("expected SO to invoke G1's DEC special graphics, got %q", s.active.Cell(0, 0).Rune)
	}
	s.Write([]byte("\x0f")) // SI: back to G0
	s.Write([]byte("q"))
	if s.active.Cell(1, 0).Rune != 'q' {
		t.Fatalf("expected SI to restore G0 (plain ASCII), got %q", s.active.Cell(1, 0).Rune)
	}
}

func TestScreenDeviceAttributesReply(t *testing.T) {
	var replies [][]byte
	s := NewScreen(10, 5, Callbacks{OnReply: func(data []byte) { replies = append(replies, data) }})
	s.Write([]byte("\x1b[c"))
	if len(replies) != 1 || string(replies[0]) != deviceAttributesReply {
		t.Fatalf("unexpected DA1 reply: %q", replies)
	}
}
