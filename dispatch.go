package vterm

import "strconv"

// dispatch is the CommandBuilder.onCommand sink: it routes each Command to
// the active buffer or to screen-level state (modes, titles, reports).
func (s *Screen) dispatch(c Command) {
	if mutatesGrid(c.Kind) {
		s.selector.collapseToWaiting()
	}
	switch c.Kind {
	case CmdPrint:
		s.active.WriteGraphemes(c.Graphemes)

	case CmdLineFeed:
		s.active.LineFeed()
	case CmdReverseLineFeed:
		s.active.ReverseLineFeed()
	case CmdCarriageReturn:
		s.active.CarriageReturn()
	case CmdBackspace:
		s.active.Backspace()
	case CmdTab:
		for i := 0; i < maxInt(c.N, 1); i++ {
			s.active.Tab()
		}
	case CmdBackTab:
		for i := 0; i < maxInt(c.N, 1); i++ {
			s.active.BackTab()
		}
	case CmdBell:
		if s.Callbacks.OnBell != nil {
			s.Callbacks.OnBell()
		}

	case CmdCursorUp:
		s.active.MoveCursorUp(c.N)
	case CmdCursorDown:
		s.active.MoveCursorDown(c.N)
	case CmdCursorForward:
		s.active.MoveCursorForward(c.N)
	case CmdCursorBackward:
		s.active.MoveCursorBackward(c.N)
	case CmdCursorNextLine:
		s.active.CursorNextLine(c.N)
	case CmdCursorPrevLine:
		s.active.CursorPrevLine(c.N)
	case CmdCursorHorizontalAbsolute:
		s.active.SetCursorColumn(c.N)
	case CmdCursorVerticalAbsolute:
		s.active.SetCursorRow(c.N)
	case CmdCursorPosition:
		s.active.SetCursor(c.M-1, c.N-1)
	case CmdSaveCursor:
		s.active.SaveCursorState()
	case CmdRestoreCursor:
		s.active.RestoreCursorState()
	case CmdSetCursorStyle:
		s.cursorShape, s.cursorBlink = c.CursorShape, c.CursorBlink
		s.markDirty()

	case CmdEraseInDisplay:
		s.active.EraseInDisplay(c.EraseMode)
	case CmdEraseInLine:
		s.active.EraseInLine(c.EraseMode)
	case CmdEraseCharacters:
		s.active.EraseCharacters(c.N)
	case CmdInsertCharacters:
		s.active.InsertCharacters(c.N)
	case CmdDeleteCharacters:
		s.active.DeleteCharacters(c.N)
	case CmdInsertLines:
		s.active.InsertLines(c.N)
	case CmdDeleteLines:
		s.active.DeleteLines(c.N)
	case CmdScrollUp:
		s.active.ScrollRegionUp(c.N)
	case CmdScrollDown:
		s.active.ScrollRegionDown(c.N)

	case CmdSetScrollingRegion:
		s.active.SetScrollingRegion(c.Top, c.Bottom)
	case CmdAmbiguousMarginOrSaveCursor:
		// CSI Ps;Ps s is DECSLRM when DECLRMM (mode 69) is enabled, and plain
		// save-cursor otherwise; the builder can't tell these apart since it
		// never sees margin-mode state, so Screen resolves it here.
		if s.active.marginMode {
			s.active.SetLeftRightMargin(c.Left, c.Right)
		} else {
			s.active.SaveCursorState()
		}
	case CmdSetTabStop:
		s.active.SetTabStop()
	case CmdClearTabStop:
		s.active.ClearTabStop(c.N)
	case CmdRequestTabStops:
		s.replyTabStops()

	case CmdSelectGraphicRendition:
		s.active.ApplySGR(c.SGR)
	case CmdSetMode:
		s.setMode(c.ModeNumber, c.ModePrivate, true)
	case CmdResetMode:
		s.setMode(c.ModeNumber, c.ModePrivate, false)
	case CmdRequestMode:
		s.replyRequestMode(c.ModeNumber, c.ModePrivate)
	case CmdSoftReset:
		s.softReset()
	case CmdHardReset:
		s.hardReset()
	case CmdScreenAlignmentPattern:
		s.active.ScreenAlignmentPattern()

	case CmdDesignateCharset:
		s.active.DesignateCharset(c.CharsetSlot, c.Charset)
	case CmdInvokeCharset:
		s.active.InvokeCharset(c.CharsetSlot)
	case CmdSingleShiftSelect:
		s.active.SingleShift(c.ShiftSlot)
	case CmdLineAttribute:
		s.active.SetLineAttribute(c.LineAttr)
	case CmdSetKeypadMode:
		s.appKeypadMode = c.N == 1
		if s.Callbacks.OnKeypadModeChange != nil {
			s.Callbacks.OnKeypadModeChange(s.appKeypadMode)
		}

	case CmdDeviceStatusReport:
		if c.ReportParam == 5 {
			s.reply("\x1b[0n")
		}
	case CmdCursorPositionReport:
		s.replyCursorPosition()
	case CmdDeviceAttributes:
		if c.ReportParam == 0 {
			s.reply(deviceAttributesReply)
		}

	case CmdSetWindowTitle:
		s.title = c.Text
		if s.Callbacks.OnTitleChange != nil {
			s.Callbacks.OnTitleChange(c.Text)
		}
	case CmdSetIconName:
		s.iconName = c.Text
		if s.Callbacks.OnIconNameChange != nil {
			s.Callbacks.OnIconNameChange(c.Text)
		}
	case CmdPushTitle:
		s.titleStack = append(s.titleStack, s.title)
	case CmdPopTitle:
		if n := len(s.titleStack); n > 0 {
			s.title = s.titleStack[n-1]
			s.titleStack = s.titleStack[:n-1]
			if s.Callbacks.OnTitleChange != nil {
				s.Callbacks.OnTitleChange(s.title)
			}
		}

	case CmdSetDynamicColor:
		s.dynamicColors[c.DynamicColorTarget] = c.DynamicColor
	case CmdRequestDynamicColor:
		s.replyDynamicColor(c.DynamicColorTarget)
	case CmdResetDynamicColor:
		delete(s.dynamicColors, c.DynamicColorTarget)

	case CmdHyperlinkOpen:
		s.active.SetHyperlink(c.Text, c.HyperlinkID)
		if s.Callbacks.OnHyperlink != nil {
			s.Callbacks.OnHyperlink(&Hyperlink{URI: c.Text, ID: c.HyperlinkID})
		}
	case CmdHyperlinkClose:
		s.active.ClearHyperlink()
	case CmdNotify:
		if s.Callbacks.OnNotify != nil {
			s.Callbacks.OnNotify(c.Text)
		}

	case CmdSetMark:
		s.active.SetMark()
	}
}

// mutatesGrid reports whether a command changes visible content, cursor
// position, or scrollback in a way that should drop a pending selection
// (xterm and most terminals clear selection on any screen write).
func mutatesGrid(k CommandKind) bool {
	switch k {
	case CmdPrint, CmdLineFeed, CmdReverseLineFeed, CmdCarriageReturn, CmdBackspace,
		CmdTab, CmdBackTab,
		CmdCursorUp, CmdCursorDown, CmdCursorForward, CmdCursorBackward,
		CmdCursorNextLine, CmdCursorPrevLine, CmdCursorHorizontalAbsolute,
		CmdCursorVerticalAbsolute, CmdCursorPosition, CmdSaveCursor, CmdRestoreCursor,
		CmdEraseInDisplay, CmdEraseInLine, CmdEraseCharacters,
		CmdInsertCharacters, CmdDeleteCharacters, CmdInsertLines, CmdDeleteLines,
		CmdScrollUp, CmdScrollDown, CmdSetScrollingRegion,
		CmdAmbiguousMarginOrSaveCursor,
		CmdSoftReset, CmdHardReset, CmdScreenAlignmentPattern, CmdLineAttribute,
		CmdSetMode, CmdResetMode:
		return true
	default:
		return false
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (s *Screen) replyCursorPosition() {
	x, y := s.active.GetCursor()
	row, col := y+1, x+1
	if s.active.originMode {
		row -= s.active.top
		col -= s.active.left
	}
	s.reply(formatCSI(row, col) + "R")
}

func (s *Screen) replyRequestMode(number int, private bool) {
	status := s.requestMode(number, private)
	if private {
		s.reply("\x1b[?" + strconv.Itoa(number) + ";" + strconv.Itoa(status) + "$y")
	} else {
		s.reply("\x1b[" + strconv.Itoa(number) + ";" + strconv.Itoa(status) + "$y")
	}
}

func (s *Screen) replyTabStops() {
	stops := s.active.TabStops()
	out := "\x1bP2$u"
	for i, col := range stops {
		if i > 0 {
			out += "/"
		}
		out += strconv.Itoa(col + 1)
	}
	out += "\x1b\\"
	s.reply(out)
}

func (s *Screen) replyDynamicColor(target int) {
	c, ok := s.dynamicColors[target]
	if !ok {
		c = DefaultForeground
		if target == 11 {
			c = DefaultBackground
		}
	}
	hex := func(v uint8) string {
		// expand 8-bit to 16-bit component per xterm's rgb: reply convention
		wide := uint16(v) * 257
		s := strconv.FormatUint(uint64(wide), 16)
		for len(s) < 4 {
			s = "0" + s
		}
		return s
	}
	s.reply("\x1b]" + strconv.Itoa(target) + ";rgb:" + hex(c.R) + "/" + hex(c.G) + "/" + hex(c.B) + "\x1b\\")
}
