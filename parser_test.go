package vterm

import "testing"

func collectEvents(t *testing.T, input []byte) []ParserEvent {
	t.Helper()
	var events []ParserEvent
	p := NewParser(AmbiguousWidthNarrow, func(ev ParserEvent) { events = append(events, ev) })
	p.Feed(input)
	return events
}

func TestParserPlainText(t *testing.T) {
	events := collectEvents(t, []byte("hi"))
	if len(events) != 1 || events[0].Kind != EventPrint {
		t.Fatalf("expected a single print event, got %+v", events)
	}
	if len(events[0].Graphemes) != 2 {
		t.Fatalf("expected 2 graphemes, got %d", len(events[0].Graphemes))
	}
}

func TestParserCSIFinalAndParams(t *testing.T) {
	events := collectEvents(t, []byte("\x1b[12;34H"))
	var got *ParserEvent
	for i := range events {
		if events[i].Kind == EventCsiDispatch {
			got = &events[i]
		}
	}
	if got == nil {
		t.Fatal("expected a CSI dispatch event")
	}
	if got.Final != 'H' {
		t.Fatalf("expected final 'H', got %q", got.Final)
	}
	if len(got.Params) != 2 || got.Params[0][0] != 12 || got.Params[1][0] != 34 {
		t.Fatalf("unexpected params: %v", got.Params)
	}
}

func TestParserCSIPrivateMarker(t *testing.T) {
	events := collectEvents(t, []byte("\x1b[?25h"))
	var got *ParserEvent
	for i := range events {
		if events[i].Kind == EventCsiDispatch {
			got = &events[i]
		}
	}
	if got == nil || got.Private != '?' {
		t.Fatalf("expected a private-marked CSI event, got %+v", got)
	}
}

func TestParserOSCDispatch(t *testing.T) {
	events := collectEvents(t, []byte("\x1b]0;hello\x07"))
	var got *ParserEvent
	for i := range events {
		if events[i].Kind == EventOscDispatch {
			got = &events[i]
		}
	}
	if got == nil {
		t.Fatal("expected an OSC dispatch event")
	}
	if len(got.OscParams) != 2 || string(got.OscParams[1]) != "hello" {
		t.Fatalf("unexpected OSC params: %v", got.OscParams)
	}
}

func TestParserSGRColonSubparams(t *testing.T) {
	events := collectEvents(t, []byte("\x1b[38:2:0:255:128:0m"))
	var got *ParserEvent
	for i := range events {
		if events[i].Kind == EventCsiDispatch {
			got = &events[i]
		}
	}
	if got == nil || got.Final != 'm' {
		t.Fatalf("expected an SGR CSI event, got %+v", got)
	}
	if len(got.Params) == 0 || got.Params[0][0] != 38 {
		t.Fatalf("expected first param 38, got %v", got.Params)
	}
}

func TestParserSplitAcrossFeeds(t *testing.T) {
	var events []ParserEvent
	p := NewParser(AmbiguousWidthNarrow, func(ev ParserEvent) { events = append(events, ev) })
	p.Feed([]byte("\x1b["))
	p.Feed([]byte("31m"))
	var got *ParserEvent
	for i := range events {
		if events[i].Kind == EventCsiDispatch {
			got = &events[i]
		}
	}
	if got == nil || got.Final != 'm' {
		t.Fatalf("expected the CSI sequence to resolve once completed across feeds, got %+v", events)
	}
}

func TestParserMaxStringLengthTruncates(t *testing.T) {
	events := collectEvents(t, []byte("\x1b]0;hello\x07"))
	_ = events
	var truncated []ParserEvent
	p := NewParser(AmbiguousWidthNarrow, func(ev ParserEvent) { truncated = append(truncated, ev) })
	p.SetMaxStringLength(4)
	p.Feed([]byte("\x1b]0;abcdefgh\x07"))
	var got *ParserEvent
	for i := range truncated {
		if truncated[i].Kind == EventOscDispatch {
			got = &truncated[i]
		}
	}
	if got == nil {
		t.Fatal("expected an OSC dispatch event even when truncated")
	}
}
