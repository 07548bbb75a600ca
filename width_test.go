package vterm

import (
	"testing"
	"unicode/utf8"
)

func TestDecoderFeedASCII(t *testing.T) {
	d := newDecoder(AmbiguousWidthNarrow)
	gs := d.Feed([]byte("ab"))
	if len(gs) != 2 {
		t.Fatalf("expected 2 graphemes, got %d", len(gs))
	}
	if gs[0].Rune != 'a' || gs[0].Width != 1 {
		t.Errorf("unexpected first grapheme: %+v", gs[0])
	}
}

func TestDecoderFeedWideRune(t *testing.T) {
	d := newDecoder(AmbiguousWidthNarrow)
	gs := d.Feed([]byte("中"))
	if len(gs) != 1 {
		t.Fatalf("expected 1 grapheme, got %d", len(gs))
	}
	if gs[0].Width != 2 {
		t.Errorf("expected width 2 for wide rune, got %d", gs[0].Width)
	}
}

func TestDecoderFeedSplitMultibyte(t *testing.T) {
	d := newDecoder(AmbiguousWidthNarrow)
	full := []byte("中")
	gs := d.Feed(full[:1])
	if len(gs) != 0 {
		t.Fatalf("expected no graphemes from a truncated UTF-8 sequence, got %d", len(gs))
	}
	gs = d.Feed(full[1:])
	if len(gs) != 1 || gs[0].Rune != '中' {
		t.Fatalf("expected the rune to complete once fed the rest, got %+v", gs)
	}
}

func TestTailIsIncompleteRune(t *testing.T) {
	if !tailIsIncompleteRune([]byte("中")[:1]) {
		t.Error("expected a truncated multi-byte rune to be reported incomplete")
	}
	if tailIsIncompleteRune([]byte("a")) {
		t.Error("a complete ASCII byte should not be reported incomplete")
	}
}

// 0xC3 is a valid UTF-8 lead byte but 0x28 ('(') is not a valid continuation
// byte for it, so 0xC3 alone is an ill-formed maximal subpart (one byte, per
// the Unicode replacement-character rule utf8.DecodeRune also follows) and
// 0x28 decodes on its own right after it.
func TestDecoderMalformedLeadByteToleratesFollowingASCII(t *testing.T) {
	d := newDecoder(AmbiguousWidthNarrow)
	gs := d.Feed([]byte{0xC3, 0x28, 'A'})
	if len(gs) != 3 {
		t.Fatalf("expected 3 graphemes (replacement, '(', 'A'), got %d: %+v", len(gs), gs)
	}
	if gs[0].Rune != utf8.RuneError {
		t.Fatalf("expected the ill-formed lead byte to decode as U+FFFD, got %q", gs[0].Rune)
	}
	if gs[1].Rune != '(' || gs[2].Rune != 'A' {
		t.Fatalf("expected '(' then 'A' to decode as standalone ASCII, got %q %q", gs[1].Rune, gs[2].Rune)
	}
}
