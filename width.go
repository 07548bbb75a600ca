package vterm

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// AmbiguousWidthMode controls how East Asian "ambiguous width" characters
// (box drawing, Greek, Cyrillic, various symbols) are measured, mirroring the
// xterm/DEC knob of the same name.
type AmbiguousWidthMode int

const (
	AmbiguousWidthNarrow AmbiguousWidthMode = iota
	AmbiguousWidthWide
)

// decoder turns a byte stream into grapheme clusters with a resolved cell
// width, decoding invalid UTF-8 to U+FFFD one rune per maximal subsequence
// and grouping combining marks into the base rune's cluster.
type decoder struct {
	ambiguous AmbiguousWidthMode
	buf       []byte
	state     int
}

func newDecoder(ambiguous AmbiguousWidthMode) *decoder {
	return &decoder{ambiguous: ambiguous, state: -1}
}

// grapheme is one decoded cluster ready to become a Cell.
type grapheme struct {
	Rune      rune
	Combining string
	Width     int8
}

// Feed appends raw bytes and returns every complete grapheme cluster that can
// now be extracted, retaining any trailing incomplete UTF-8 sequence for the
// next call so a multi-byte rune split across two writes decodes correctly.
func (d *decoder) Feed(p []byte) []grapheme {
	d.buf = append(d.buf, p...)
	var out []grapheme
	for len(d.buf) > 0 {
		if tailIsIncompleteRune(d.buf) {
			break
		}
		cluster, rest, _, newState := uniseg.FirstGraphemeCluster(d.buf, d.state)
		d.state = newState
		out = append(out, d.classify(cluster))
		d.buf = rest
	}
	return out
}

// tailIsIncompleteRune reports whether b ends in the middle of a multi-byte
// UTF-8 sequence that more bytes could still complete.
func tailIsIncompleteRune(b []byte) bool {
	n := len(b)
	if n == 0 {
		return false
	}
	start := n - 4
	if start < 0 {
		start = 0
	}
	for i := start; i < n; i++ {
		if b[i] < 0x80 || b[i] >= 0xC0 {
			// start of a new (possibly final) sequence
			if !utf8.FullRune(b[i:]) && b[i] != 0 {
				return true
			}
		}
	}
	return false
}

func (d *decoder) classify(cluster []byte) grapheme {
	runes := []rune(string(cluster))
	if len(runes) == 0 {
		return grapheme{Rune: utf8.RuneError, Width: 1}
	}
	base := runes[0]
	var combining string
	if len(runes) > 1 {
		combining = string(runes[1:])
	}
	return grapheme{Rune: base, Combining: combining, Width: int8(d.runeWidth(base))}
}

// runeWidth resolves a base rune to its column width: 0 for combining
// marks and zero-width joiners, 2 for East Asian wide/fullwidth (and
// ambiguous, under AmbiguousWidthWide), 1 otherwise.
func (d *decoder) runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = d.ambiguous == AmbiguousWidthWide
	switch w := cond.RuneWidth(r); {
	case w <= 0:
		return 0
	case w == 1:
		return 1
	default:
		return 2
	}
}
