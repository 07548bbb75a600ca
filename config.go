package vterm

// Config holds the construction-time parameters of a Screen. It is a plain
// struct (no file/env loading lives in this package — embedders own their
// own configuration layer and translate into this type), adapted from the
// capability-detection struct the host terminal used.
type Config struct {
	Cols, Rows int

	// TermType names the terminal type, e.g. "xterm-256color". Screen does
	// not read it: NewScreenFromConfig ignores it and the DA reply is fixed.
	TermType string

	AmbiguousWidth AmbiguousWidthMode

	MaxScrollback int
	MaxStringLength int // OSC/DCS/APC/PM/SOS accumulation cap, 0 = default (4096)
}

// DefaultConfig returns sane defaults: 80x24, narrow ambiguous-width, 10000
// lines of scrollback.
func DefaultConfig() Config {
	return Config{
		Cols: 80, Rows: 24,
		TermType:       "xterm-256color",
		AmbiguousWidth: AmbiguousWidthNarrow,
		MaxScrollback:  defaultMaxScrollback,
	}
}

// NewScreenFromConfig constructs a Screen per cfg, wiring cfg's knobs through
// to the parser and buffers.
func NewScreenFromConfig(cfg Config, cb Callbacks) (*Screen, error) {
	if cfg.Cols <= 0 || cfg.Rows <= 0 {
		return nil, errInvalidSize
	}
	s := NewScreen(cfg.Cols, cfg.Rows, cb)
	s.parser.decoder.ambiguous = cfg.AmbiguousWidth
	if cfg.MaxScrollback > 0 {
		s.primary.SetMaxScrollback(cfg.MaxScrollback)
	}
	if cfg.MaxStringLength > 0 {
		s.SetMaxStringLength(cfg.MaxStringLength)
	}
	return s, nil
}
