package para

import (
	"strings"
	"testing"

	"github.com/npillmayer/parashape/bidi"
	"github.com/npillmayer/parashape/knuth"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/language"
)

func TestShapeSimple(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := ShapeParagraph("the quick brown fox", Params{
		Breaker: knuth.Config{LineWidth: 100},
	})
	if r.Text != "the quick brown fox" {
		t.Errorf("pure L2R text must pass through, got %q", r.Text)
	}
	if len(r.Linebreaks) != 1 || r.Linebreaks[0] != 19 {
		t.Errorf("a fitting paragraph is a single line, got %v", r.Linebreaks)
	}
	if len(r.Words) != 4 {
		t.Errorf("expected 4 words, got %v", r.Words)
	}
}

func TestShapeHebrew(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := ShapeParagraph("שלום 123", Params{
		BaseDirection: bidi.RightToLeft,
		Breaker:       knuth.Config{LineWidth: 100},
	})
	if r.Text != "123 םולש" {
		t.Errorf("expected visual order '123 םולש', got %q", r.Text)
	}
}

func TestShapeAutoDirection(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	auto := ShapeParagraph("שלום 123", Params{
		BaseDirection: bidi.Auto,
		Breaker:       knuth.Config{LineWidth: 100},
	})
	rtl := ShapeParagraph("שלום 123", Params{
		BaseDirection: bidi.RightToLeft,
		Breaker:       knuth.Config{LineWidth: 100},
	})
	if auto.Text != rtl.Text {
		t.Errorf("auto direction should detect R2L, got %q", auto.Text)
	}
}

func TestShapeHyphenated(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := ShapeParagraph("some words on hyphenation", Params{
		Hyphenate:      true,
		HyphenLanguage: language.AmericanEnglish,
		Breaker:        knuth.Config{LineWidth: 15},
	})
	if !strings.ContainsRune(r.Text, softHyphen) {
		t.Errorf("expected soft hyphens in %q", r.Text)
	}
	n := len([]rune(r.Text))
	if last := r.Linebreaks[len(r.Linebreaks)-1]; last != n {
		t.Errorf("last break must equal the text length %d, got %v", n, r.Linebreaks)
	}
	for i := 1; i < len(r.Linebreaks); i++ {
		if r.Linebreaks[i] <= r.Linebreaks[i-1] {
			t.Fatalf("breaks must be strictly ascending, got %v", r.Linebreaks)
		}
	}
}

func TestLines(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := ShapeParagraph("the quick brown fox jumps over the lazy dog", Params{
		Breaker: knuth.Config{LineWidth: 12},
	})
	lines := r.Lines()
	if len(lines) != len(r.Linebreaks) {
		t.Fatalf("expected %d lines, got %d", len(r.Linebreaks), len(lines))
	}
	for _, line := range lines {
		t.Logf("line: %q", line)
		if line == "" {
			t.Error("shaped lines must not be empty")
		}
		if strings.ContainsRune(line, softHyphen) {
			t.Errorf("soft hyphens must not leak into rendered lines: %q", line)
		}
	}
}

func TestLinesTabSeparator(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	r := ShapeParagraph("ab cd\tef gh", Params{
		Breaker: knuth.Config{LineWidth: 5},
	})
	lines := r.Lines()
	if len(lines) != 2 || lines[0] != "ab cd" || lines[1] != "ef gh" {
		t.Fatalf("expected lines [ab cd, ef gh], got %q", lines)
	}
	for _, line := range lines {
		if strings.ContainsAny(line[:1], " \t\n") {
			t.Errorf("continuation lines must not start with a separator: %q", line)
		}
	}
}
