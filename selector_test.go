package vterm

import "testing"

func TestSelectorLinearTextAcrossLines(t *testing.T) {
	s := NewScreen(5, 3, Callbacks{})
	s.Write([]byte("hello\r\nworld"))
	s.selector.Start(1, 0, SelectionLinear)
	s.selector.Extend(3, 1)
	if !s.SelectionActive() {
		t.Fatal("expected selection to be active")
	}
	got := s.selector.Text()
	if got != "ello\nworl" {
		t.Fatalf("unexpected selection text: %q", got)
	}
}

func TestSelectorRectangularText(t *testing.T) {
	s := NewScreen(5, 3, Callbacks{})
	s.Write([]byte("abcde\r\nfghij"))
	s.selector.Start(1, 0, SelectionRectangular)
	s.selector.Extend(2, 1)
	got := s.selector.Text()
	if got != "bc\ngh" {
		t.Fatalf("unexpected rectangular selection text: %q", got)
	}
}

func TestSelectorClear(t *testing.T) {
	s := NewScreen(5, 3, Callbacks{})
	s.selector.Start(0, 0, SelectionLinear)
	s.selector.Clear()
	if s.SelectionActive() {
		t.Fatal("expected selection cleared")
	}
	if s.selector.Contains(0, 0) {
		t.Fatal("expected Contains to report false once cleared")
	}
}

func TestSelectorSpansScrollback(t *testing.T) {
	s := NewScreen(5, 2, Callbacks{})
	s.Write([]byte("first\r\nsecnd\r\nthird"))
	if s.primary.ScrollbackLen() == 0 {
		t.Fatal("expected scrollback to have accrued")
	}
	s.selector.Start(0, 0, SelectionLinear)
	s.selector.Extend(4, s.selector.absoluteHeight()-1)
	got := s.selector.Text()
	if len(got) == 0 {
		t.Fatal("expected non-empty selection spanning scrollback and screen")
	}
	if got[0] != 'f' {
		t.Fatalf("expected selection to start at the oldest scrollback line, got %q", got)
	}
}

func TestSelectorContainsRectangular(t *testing.T) {
	s := NewScreen(5, 3, Callbacks{})
	s.selector.Start(1, 0, SelectionRectangular)
	s.selector.Extend(3, 2)
	if s.selector.Contains(0, 1) {
		t.Fatal("expected column 0 to fall outside the rectangular selection")
	}
	if !s.selector.Contains(2, 1) {
		t.Fatal("expected column 2 to fall inside the rectangular selection")
	}
}

func TestSelectorWordSnap(t *testing.T) {
	s := NewScreen(10, 1, Callbacks{})
	s.Write([]byte("foo bar"))
	s.selector.StartUnit(5, 0, SelectionLinear, UnitWord)
	if got := s.selector.Text(); got != "bar" {
		t.Fatalf("expected double-click word snap to select %q, got %q", "bar", got)
	}
}

func TestSelectorLineSnap(t *testing.T) {
	s := NewScreen(5, 1, Callbacks{})
	s.Write([]byte("hi"))
	s.selector.StartUnit(3, 0, SelectionLinear, UnitLine)
	if got := s.selector.Text(); got != "hi" {
		t.Fatalf("expected triple-click line snap to select the whole trimmed line, got %q", got)
	}
}

func TestSelectorMutationCollapsesSelection(t *testing.T) {
	s := NewScreen(10, 3, Callbacks{})
	s.Write([]byte("hello"))
	s.selector.Start(0, 0, SelectionLinear)
	s.selector.Extend(4, 0)
	if !s.SelectionActive() {
		t.Fatal("expected selection active before further writes")
	}
	s.Write([]byte("!"))
	if s.SelectionActive() {
		t.Fatal("expected a grid-mutating write to collapse the selection")
	}
}
