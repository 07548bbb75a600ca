package vterm

// CommandKind enumerates the closed set of operations the screen engine
// accepts from CommandBuilder. Every sequence the parser recognizes resolves
// to one or more of these (OSC 0 sets both title and icon name; CSI h/l emits
// one per listed mode), or is dropped as unrecognized/out of scope.
type CommandKind int

const (
	CmdPrint CommandKind = iota
	CmdLineFeed
	CmdReverseLineFeed
	CmdCarriageReturn
	CmdBackspace
	CmdTab
	CmdBackTab
	CmdBell

	CmdCursorUp
	CmdCursorDown
	CmdCursorForward
	CmdCursorBackward
	CmdCursorNextLine
	CmdCursorPrevLine
	CmdCursorHorizontalAbsolute
	CmdCursorVerticalAbsolute
	CmdCursorPosition
	CmdSaveCursor
	CmdRestoreCursor
	CmdSetCursorStyle

	CmdEraseInDisplay
	CmdEraseInLine
	CmdEraseCharacters
	CmdInsertCharacters
	CmdDeleteCharacters
	CmdInsertLines
	CmdDeleteLines
	CmdScrollUp
	CmdScrollDown

	CmdSetScrollingRegion  // DECSTBM
	CmdAmbiguousMarginOrSaveCursor // CSI Ps;Ps s: DECSLRM if DECLRMM is set, else save cursor
	CmdSetTabStop          // HTS
	CmdClearTabStop        // TBC
	CmdRequestTabStops

	CmdSelectGraphicRendition
	CmdSetMode
	CmdResetMode
	CmdRequestMode
	CmdSoftReset  // DECSTR
	CmdHardReset  // RIS
	CmdScreenAlignmentPattern

	CmdDesignateCharset
	CmdInvokeCharset // SI/SO (C0 0x0F/0x0E), LS2/LS3 (ESC n/o): lock GL to G0/G1/G2/G3
	CmdSingleShiftSelect
	CmdLineAttribute   // DECDWL/DECDHL/DECSWL
	CmdSetKeypadMode   // DECKPAM/DECKPNM; N=1 application, N=0 numeric

	CmdDeviceStatusReport
	CmdCursorPositionReport
	CmdDeviceAttributes

	CmdSetWindowTitle
	CmdSetIconName
	CmdPushTitle
	CmdPopTitle
	CmdSetDynamicColor
	CmdRequestDynamicColor
	CmdResetDynamicColor
	CmdHyperlinkOpen
	CmdHyperlinkClose
	CmdNotify // OSC 777 / OSC 9

	CmdSetMark

	CmdUnknown
)

// EraseMode is the shared argument of EraseInDisplay/EraseInLine.
type EraseMode int

const (
	EraseToEnd EraseMode = iota
	EraseToStart
	EraseAll
	EraseScrollback // ED 3
)

// Command is the typed, closed algebra that CommandBuilder emits and Screen
// consumes. Only the fields relevant to Kind are populated.
type Command struct {
	Kind CommandKind

	Graphemes []grapheme // CmdPrint

	N int // generic repeat count / row / column argument
	M int // generic second argument (e.g. CursorPosition column)

	EraseMode EraseMode

	Top, Bottom int // CmdSetScrollingRegion
	Left, Right int // CmdAmbiguousMarginOrSaveCursor

	SGR []SGRAttribute // CmdSelectGraphicRendition

	ModeNumber  int  // Cmd{Set,Reset,Request}Mode
	ModePrivate bool // DEC private (CSI ?) vs ANSI mode (CSI)

	CursorShape int // CmdSetCursorStyle
	CursorBlink int

	Charset    byte // CmdDesignateCharset: the charset code (e.g. '0', 'B')
	CharsetSlot int // 0..3 for G0..G3
	ShiftSlot   int // CmdSingleShiftSelect: 2 or 3

	LineAttr LineAttribute // CmdLineAttribute

	Text string // window title / icon name / hyperlink URI / notify payload
	HyperlinkID string

	DynamicColorTarget int // OSC color number (10=fg, 11=bg, 12=cursor, ...)
	DynamicColor       Color

	ReportParam int // DSR/DA parameter (CmdRequestMode uses ModeNumber)
}

// SGRAttribute is one parsed element of a Select Graphic Rendition sequence.
type SGRAttribute struct {
	Code  int // the base SGR code, e.g. 1 (bold), 38 (set fg)
	Color Color
}

// LineAttribute mirrors DECDWL/DECDHL/DECSWL line-doubling state.
type LineAttribute int

const (
	LineAttrNormal LineAttribute = iota
	LineAttrDoubleWidth
	LineAttrDoubleTop
	LineAttrDoubleBottom
)
