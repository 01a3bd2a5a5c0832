package parashape

import "testing"

func TestSpanLen(t *testing.T) {
	sp := Span{Start: 4, End: 9}
	if sp.Len() != 5 {
		t.Errorf("expected span length 5, have %d", sp.Len())
	}
}

func TestRuneCount(t *testing.T) {
	if w := RuneCount("abc"); w != 3 {
		t.Errorf("expected width 3, have %g", w)
	}
	if w := RuneCount("שלום"); w != 4 {
		t.Errorf("multi-byte runes count as one unit each, have %g", w)
	}
	if w := RuneCount(""); w != 0 {
		t.Errorf("empty text has width 0, have %g", w)
	}
}
