package vterm

import "strconv"

// CommandBuilder consumes the raw ParserEvent stream and resolves it into
// the typed Command algebra. It owns no screen state; it only tracks the
// handful of multi-event pieces of context a single command may need (e.g.
// an in-progress DCS payload).
type CommandBuilder struct {
	onCommand func(Command)
	onLog     func(msg string, args ...any)

	dcsActive bool
	dcsFinal  byte
	dcsPrivate byte
	dcsParams []int
}

// NewCommandBuilder returns a CommandBuilder that feeds onCommand. Wire its
// Handle method as the onEvent callback of a Parser.
func NewCommandBuilder(onCommand func(Command)) *CommandBuilder {
	return &CommandBuilder{onCommand: onCommand}
}

func (cb *CommandBuilder) SetLogger(fn func(msg string, args ...any)) { cb.onLog = fn }

func (cb *CommandBuilder) logf(msg string, args ...any) {
	if cb.onLog != nil {
		cb.onLog(msg, args...)
	}
}

func (cb *CommandBuilder) emit(c Command) { cb.onCommand(c) }

// Handle is the Parser.onEvent sink.
func (cb *CommandBuilder) Handle(ev ParserEvent) {
	switch ev.Kind {
	case EventPrint:
		cb.emit(Command{Kind: CmdPrint, Graphemes: ev.Graphemes})
	case EventExecute:
		cb.handleControl(ev.Control)
	case EventEscDispatch:
		cb.handleEsc(ev)
	case EventCsiDispatch:
		cb.handleCsi(ev)
	case EventOscDispatch:
		cb.handleOsc(ev.OscParams)
	case EventDcsHook:
		cb.dcsActive = true
		cb.dcsFinal = ev.Final
		cb.dcsPrivate = ev.Private
		cb.dcsParams = firstParams(ev.Params)
	case EventDcsUnhook:
		cb.handleDcs(ev.Data)
		cb.dcsActive = false
	case EventApcString, EventPmString, EventSosString:
		// No APC/PM/SOS command is in scope; logged for visibility only.
		cb.logf("vterm: ignoring string", "kind", ev.Kind, "len", len(ev.Data))
	}
}

func (cb *CommandBuilder) handleControl(b byte) {
	switch b {
	case 0x0a, 0x0b, 0x0c: // LF, VT, FF all act as line feed
		cb.emit(Command{Kind: CmdLineFeed})
	case 0x0d:
		cb.emit(Command{Kind: CmdCarriageReturn})
	case 0x08:
		cb.emit(Command{Kind: CmdBackspace})
	case 0x09:
		cb.emit(Command{Kind: CmdTab})
	case 0x07:
		cb.emit(Command{Kind: CmdBell})
	case 0x0e: // SO: lock GL to G1
		cb.emit(Command{Kind: CmdInvokeCharset, CharsetSlot: 1})
	case 0x0f: // SI: lock GL to G0
		cb.emit(Command{Kind: CmdInvokeCharset, CharsetSlot: 0})
	default:
		cb.logf("vterm: ignoring C0 control", "byte", b)
	}
}

func (cb *CommandBuilder) handleEsc(ev ParserEvent) {
	if len(ev.Intermediates) > 0 {
		switch ev.Intermediates[0] {
		case '(', ')', '*', '+': // designate G0-G3 94-charset
			slot := map[byte]int{'(': 0, ')': 1, '*': 2, '+': 3}[ev.Intermediates[0]]
			cb.emit(Command{Kind: CmdDesignateCharset, CharsetSlot: slot, Charset: ev.Final})
			return
		case '#':
			if ev.Final == '8' {
				cb.emit(Command{Kind: CmdScreenAlignmentPattern})
				return
			}
			var attr LineAttribute
			switch ev.Final {
			case '3':
				attr = LineAttrDoubleTop
			case '4':
				attr = LineAttrDoubleBottom
			case '5':
				attr = LineAttrNormal
			case '6':
				attr = LineAttrDoubleWidth
			default:
				return
			}
			cb.emit(Command{Kind: CmdLineAttribute, LineAttr: attr})
			return
		}
	}
	switch ev.Final {
	case 'D':
		cb.emit(Command{Kind: CmdLineFeed})
	case 'M':
		cb.emit(Command{Kind: CmdReverseLineFeed})
	case 'E':
		cb.emit(Command{Kind: CmdCursorNextLine, N: 1})
	case 'H':
		cb.emit(Command{Kind: CmdSetTabStop})
	case '7':
		cb.emit(Command{Kind: CmdSaveCursor})
	case '8':
		cb.emit(Command{Kind: CmdRestoreCursor})
	case 'c':
		cb.emit(Command{Kind: CmdHardReset})
	case '=':
		cb.emit(Command{Kind: CmdSetKeypadMode, N: 1})
	case '>':
		cb.emit(Command{Kind: CmdSetKeypadMode, N: 0})
	case 'N': // SS2
		cb.emit(Command{Kind: CmdSingleShiftSelect, ShiftSlot: 2})
	case 'O': // SS3
		cb.emit(Command{Kind: CmdSingleShiftSelect, ShiftSlot: 3})
	case 'n': // LS2: lock GL to G2
		cb.emit(Command{Kind: CmdInvokeCharset, CharsetSlot: 2})
	case 'o': // LS3: lock GL to G3
		cb.emit(Command{Kind: CmdInvokeCharset, CharsetSlot: 3})
	default:
		cb.logf("vterm: ignoring ESC sequence", "final", string(ev.Final))
	}
}

func firstParams(params [][]int) []int {
	out := make([]int, len(params))
	for i, p := range params {
		if len(p) > 0 {
			out[i] = p[0]
		}
	}
	return out
}

// param returns params[i] with defaultVal substituted for an omitted (-1 or
// absent) parameter.
func param(params []int, i, defaultVal int) int {
	if i >= len(params) || params[i] <= 0 {
		if i < len(params) && params[i] == 0 {
			return 0
		}
		return defaultVal
	}
	return params[i]
}

func (cb *CommandBuilder) handleCsi(ev ParserEvent) {
	p := firstParams(ev.Params)
	priv := ev.Private == '?'

	if len(ev.Intermediates) > 0 {
		// intermediate-qualified finals: DECSCUSR (SP q), DECRQM ($ p),
		// DECRQTAB ($ w) and DECSTR (! p).
		switch {
		case ev.Intermediates[0] == ' ' && ev.Final == 'q':
			// Ps 0/1 blinking block, 2 steady block, 3/4 underline, 5/6 bar.
			shape := param(p, 0, 0)
			style, blink := 0, 1
			if shape > 0 {
				style, blink = (shape-1)/2, shape%2
			}
			cb.emit(Command{Kind: CmdSetCursorStyle, CursorShape: style, CursorBlink: blink})
			return
		case ev.Intermediates[0] == '!' && ev.Final == 'p':
			cb.emit(Command{Kind: CmdSoftReset})
			return
		case ev.Intermediates[0] == '$' && ev.Final == 'p':
			cb.emit(Command{Kind: CmdRequestMode, ModeNumber: param(p, 0, 0), ModePrivate: priv})
			return
		case ev.Intermediates[0] == '$' && ev.Final == 'w':
			cb.emit(Command{Kind: CmdRequestTabStops})
			return
		}
	}

	switch ev.Final {
	case 'A':
		cb.emit(Command{Kind: CmdCursorUp, N: param(p, 0, 1)})
	case 'B':
		cb.emit(Command{Kind: CmdCursorDown, N: param(p, 0, 1)})
	case 'C':
		cb.emit(Command{Kind: CmdCursorForward, N: param(p, 0, 1)})
	case 'D':
		cb.emit(Command{Kind: CmdCursorBackward, N: param(p, 0, 1)})
	case 'E':
		cb.emit(Command{Kind: CmdCursorNextLine, N: param(p, 0, 1)})
	case 'F':
		cb.emit(Command{Kind: CmdCursorPrevLine, N: param(p, 0, 1)})
	case 'G', '`':
		cb.emit(Command{Kind: CmdCursorHorizontalAbsolute, N: param(p, 0, 1)})
	case 'd':
		cb.emit(Command{Kind: CmdCursorVerticalAbsolute, N: param(p, 0, 1)})
	case 'H', 'f':
		cb.emit(Command{Kind: CmdCursorPosition, N: param(p, 0, 1), M: param(p, 1, 1)})
	case 'I':
		cb.emit(Command{Kind: CmdTab, N: param(p, 0, 1)})
	case 'Z':
		cb.emit(Command{Kind: CmdBackTab, N: param(p, 0, 1)})
	case 'J':
		cb.emit(Command{Kind: CmdEraseInDisplay, EraseMode: eraseMode(param(p, 0, 0))})
	case 'K':
		cb.emit(Command{Kind: CmdEraseInLine, EraseMode: eraseMode(param(p, 0, 0))})
	case 'X':
		cb.emit(Command{Kind: CmdEraseCharacters, N: param(p, 0, 1)})
	case '@':
		cb.emit(Command{Kind: CmdInsertCharacters, N: param(p, 0, 1)})
	case 'P':
		cb.emit(Command{Kind: CmdDeleteCharacters, N: param(p, 0, 1)})
	case 'L':
		cb.emit(Command{Kind: CmdInsertLines, N: param(p, 0, 1)})
	case 'M':
		cb.emit(Command{Kind: CmdDeleteLines, N: param(p, 0, 1)})
	case 'S':
		cb.emit(Command{Kind: CmdScrollUp, N: param(p, 0, 1)})
	case 'T':
		cb.emit(Command{Kind: CmdScrollDown, N: param(p, 0, 1)})
	case 'r':
		cb.emit(Command{Kind: CmdSetScrollingRegion, Top: param(p, 0, 1), Bottom: param(p, 1, 0)})
	case 's':
		// CSI Ps;Ps s never carries a '?' private marker for real DECSLRM; it
		// is ambiguous with plain save-cursor independent of priv, resolved by
		// Screen against DECLRMM (mode 69) state the builder doesn't track.
		cb.emit(Command{Kind: CmdAmbiguousMarginOrSaveCursor, Left: param(p, 0, 1), Right: param(p, 1, 0)})
	case 'u':
		cb.emit(Command{Kind: CmdRestoreCursor})
	case 'g':
		cb.emit(Command{Kind: CmdClearTabStop, N: param(p, 0, 0)})
	case 'm':
		cb.emit(Command{Kind: CmdSelectGraphicRendition, SGR: parseSGR(ev.Params)})
	case 'h':
		for _, m := range p {
			cb.emit(Command{Kind: CmdSetMode, ModeNumber: m, ModePrivate: priv})
		}
	case 'l':
		for _, m := range p {
			cb.emit(Command{Kind: CmdResetMode, ModeNumber: m, ModePrivate: priv})
		}
	case 'n':
		switch param(p, 0, 0) {
		case 5:
			cb.emit(Command{Kind: CmdDeviceStatusReport, ReportParam: 5})
		case 6:
			cb.emit(Command{Kind: CmdCursorPositionReport})
		}
	case 'c':
		cb.emit(Command{Kind: CmdDeviceAttributes, ReportParam: param(p, 0, 0)})
	case 't':
		switch param(p, 0, 0) {
		case 22:
			cb.emit(Command{Kind: CmdPushTitle})
		case 23:
			cb.emit(Command{Kind: CmdPopTitle})
		default:
			cb.logf("vterm: ignoring window-op", "ps", param(p, 0, 0))
		}
	default:
		cb.logf("vterm: ignoring CSI sequence", "final", string(ev.Final))
	}
}

func eraseMode(n int) EraseMode {
	switch n {
	case 1:
		return EraseToStart
	case 2:
		return EraseAll
	case 3:
		return EraseScrollback
	default:
		return EraseToEnd
	}
}

// parseSGR expands raw CSI params (with colon subparameters) into the SGR
// attribute list, resolving the 38/48/58 extended-color forms in both their
// semicolon (`38;2;r;g;b`) and colon (`38:2::r:g:b`) spellings.
func parseSGR(params [][]int) []SGRAttribute {
	if len(params) == 0 {
		return []SGRAttribute{{Code: 0}}
	}
	var out []SGRAttribute
	for i := 0; i < len(params); i++ {
		group := params[i]
		code := 0
		if len(group) > 0 && group[0] > 0 {
			code = group[0]
		}
		switch code {
		case 38, 48, 58:
			var color Color
			var consumed int
			if len(group) > 1 {
				color, consumed = colorFromSubParams(group[1:])
				out = append(out, SGRAttribute{Code: code, Color: color})
				_ = consumed
				continue
			}
			// Semicolon form: following top-level params carry the selector
			// and components.
			rest := flattenFrom(params, i+1)
			color, used := colorFromSubParams(rest)
			out = append(out, SGRAttribute{Code: code, Color: color})
			i += used
		default:
			out = append(out, SGRAttribute{Code: code})
		}
	}
	return out
}

func flattenFrom(params [][]int, start int) []int {
	var out []int
	for i := start; i < len(params); i++ {
		if len(params[i]) > 0 {
			out = append(out, params[i][0])
		} else {
			out = append(out, -1)
		}
	}
	return out
}

// colorFromSubParams parses the selector+components that follow a 38/48/58
// code, returning the resolved color and how many top-level params it used
// (for the semicolon form).
func colorFromSubParams(vals []int) (Color, int) {
	if len(vals) == 0 {
		return Color{}, 0
	}
	switch vals[0] {
	case 5: // indexed
		if len(vals) >= 2 {
			return PaletteColor(vals[1]), 2
		}
	case 2: // true color; some encoders include a colorspace id as vals[1]
		if len(vals) >= 5 && vals[1] == -1 {
			return TrueColor(u8(vals[2]), u8(vals[3]), u8(vals[4])), 5
		}
		if len(vals) >= 4 {
			return TrueColor(u8(vals[1]), u8(vals[2]), u8(vals[3])), 4
		}
	}
	return Color{}, 1
}

func u8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func (cb *CommandBuilder) handleOsc(fields [][]byte) {
	if len(fields) == 0 {
		return
	}
	n, err := strconv.Atoi(string(fields[0]))
	if err != nil {
		cb.logf("vterm: ignoring malformed OSC", "field0", string(fields[0]))
		return
	}
	rest := func(i int) string {
		if i < len(fields) {
			return string(fields[i])
		}
		return ""
	}
	switch n {
	case 0:
		cb.emit(Command{Kind: CmdSetWindowTitle, Text: rest(1)})
		cb.emit(Command{Kind: CmdSetIconName, Text: rest(1)})
	case 1:
		cb.emit(Command{Kind: CmdSetIconName, Text: rest(1)})
	case 2:
		cb.emit(Command{Kind: CmdSetWindowTitle, Text: rest(1)})
	case 8:
		// OSC 8 ; params ; URI ST  — params is a key=value:key=value list, we
		// only recognize id=.
		id := extractOscParam(rest(1), "id")
		uri := rest(2)
		if uri == "" {
			cb.emit(Command{Kind: CmdHyperlinkClose})
		} else {
			cb.emit(Command{Kind: CmdHyperlinkOpen, Text: uri, HyperlinkID: id})
		}
	case 9, 777:
		cb.emit(Command{Kind: CmdNotify, Text: rest(1)})
	case 10, 11, 12, 13, 14, 17, 19:
		val := rest(1)
		if val == "?" {
			cb.emit(Command{Kind: CmdRequestDynamicColor, DynamicColorTarget: n})
			return
		}
		cb.emit(Command{Kind: CmdSetDynamicColor, DynamicColorTarget: n, DynamicColor: parseXParseColor(val)})
	case 110, 111, 112, 113, 114, 117, 119:
		cb.emit(Command{Kind: CmdResetDynamicColor, DynamicColorTarget: n - 100})
	case 22:
		cb.emit(Command{Kind: CmdSetMark, Text: rest(1)})
	default:
		cb.logf("vterm: ignoring OSC sequence", "code", n)
	}
}

func extractOscParam(kv, key string) string {
	start := 0
	for start < len(kv) {
		end := start
		for end < len(kv) && kv[end] != ':' {
			end++
		}
		pair := kv[start:end]
		if len(pair) > len(key)+1 && pair[:len(key)] == key && pair[len(key)] == '=' {
			return pair[len(key)+1:]
		}
		start = end + 1
	}
	return ""
}

// parseXParseColor decodes the subset of X11 rgb: color syntax that OSC
// 10/11/12 replies and requests use: "rgb:RRRR/GGGG/BBBB" or "#RRGGBB".
func parseXParseColor(s string) Color {
	if len(s) == 7 && s[0] == '#' {
		r, _ := strconv.ParseUint(s[1:3], 16, 8)
		g, _ := strconv.ParseUint(s[3:5], 16, 8)
		b, _ := strconv.ParseUint(s[5:7], 16, 8)
		return TrueColor(uint8(r), uint8(g), uint8(b))
	}
	if len(s) >= 10 && s[:4] == "rgb:" {
		parts := s[4:]
		var comp [3]uint8
		idx := 0
		start := 0
		for i := 0; i <= len(parts) && idx < 3; i++ {
			if i == len(parts) || parts[i] == '/' {
				hex := parts[start:i]
				if len(hex) >= 2 {
					v, _ := strconv.ParseUint(hex[:2], 16, 8)
					comp[idx] = uint8(v)
				}
				idx++
				start = i + 1
			}
		}
		return TrueColor(comp[0], comp[1], comp[2])
	}
	return Color{}
}

// handleDcs only recognizes DECRQSS, and only logs it: the queried setting
// is not decoded and no reply is sent. Every other DCS payload is dropped.
func (cb *CommandBuilder) handleDcs(data []byte) {
	if cb.dcsFinal == '|' && cb.dcsPrivate == 0 && len(data) > 0 && data[0] == '$' {
		cb.logf("vterm: DECRQSS acknowledged without decode", "query", string(data))
	}
}
