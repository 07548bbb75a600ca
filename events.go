package vterm

// EventKind tags the variant of ParserEvent carried in Kind.
type EventKind int

const (
	EventPrint EventKind = iota
	EventExecute
	EventCsiDispatch
	EventEscDispatch
	EventOscDispatch
	EventDcsHook
	EventDcsPut
	EventDcsUnhook
	EventApcString
	EventPmString
	EventSosString
)

// ParserEvent is the raw, un-interpreted output of Parser.Feed. CommandBuilder
// consumes a stream of these and turns them into the typed Command algebra;
// nothing downstream of the parser ever inspects control bytes directly.
type ParserEvent struct {
	Kind EventKind

	// EventPrint: the decoded grapheme clusters of a run of printable text.
	Graphemes []grapheme

	// EventExecute: a single C0 control code (e.g. 0x0A, 0x0D, 0x08). 8-bit
	// C1 codes arrive as the EventEscDispatch of their ESC-prefixed form.
	Control byte

	// EventCsiDispatch / EventEscDispatch: the final byte that terminated the
	// sequence.
	Final byte
	// Intermediate bytes (0x20-0x2F), in order, e.g. ' ' for "CSI ... SP q".
	Intermediates []byte
	// Private marker byte, e.g. '?' for DEC private mode sequences, 0 if none.
	Private byte
	// Parsed numeric parameters; an omitted parameter is stored as the single
	// entry -1, meaning "default". Colon-separated subparameters (used by SGR
	// 38/48/58) are preserved as additional entries within Params[i], an
	// empty subparameter again as -1.
	Params [][]int

	// EventOscDispatch: the raw, semicolon-split OSC parameter fields.
	OscParams [][]byte

	// EventDcsHook: like EventCsiDispatch's header but for a DCS introducer.
	// EventDcsPut: declared for chunked payloads; Parser never emits it.
	// EventDcsUnhook: terminates the current DCS string and carries its whole
	// accumulated payload in Data.
	Data []byte

	// EventApcString / EventPmString / EventSosString: the full accumulated
	// payload of an APC/PM/SOS string, delivered on its ST terminator. A CAN
	// or SUB inside the string cancels it and nothing is delivered.
}
