package bidi

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReorderLatin(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "Hello World"
	if out := ReorderText(input, LeftToRight); out != input {
		t.Errorf("L2R text must pass through unchanged, got %q", out)
	}
}

func TestReorderHebrew(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := ReorderText("שלום", RightToLeft)
	if out != "םולש" {
		t.Errorf("expected reversed Hebrew, got %q", out)
	}
}

func TestReorderHebrewWithNumber(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := ReorderText("שלום 123", RightToLeft)
	if out != "123 םולש" {
		t.Errorf("digits must stay L2R inside reversed text, got %q", out)
	}
}

func TestReorderMixed(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := ReorderText("abc שלום def", LeftToRight)
	if out != "abc םולש def" {
		t.Errorf("expected embedded Hebrew reversed in place, got %q", out)
	}
}

func TestReorderNeutralBetweenHebrew(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// the space joins its R2L neighbors, so both words reverse as one block
	out := ReorderText("שלום עליכם", LeftToRight)
	if out != "םכילע םולש" {
		t.Errorf("expected both words reversed with word order swapped, got %q", out)
	}
}

func TestReorderBrackets(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	out := ReorderText("(שלום)", RightToLeft)
	if out != "(םולש)" {
		t.Errorf("brackets must be mirrored when reversed, got %q", out)
	}
}

func TestReorderAuto(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := ReorderText("שלום 123", Auto); out != ReorderText("שלום 123", RightToLeft) {
		t.Errorf("auto base should detect R2L here, got %q", out)
	}
	if out := ReorderText("abc", Auto); out != "abc" {
		t.Errorf("auto base should detect L2R here, got %q", out)
	}
	if out := ReorderText("123", Auto); out != "123" {
		t.Errorf("text without strong characters should default to L2R, got %q", out)
	}
}

func TestReorderEmpty(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	if out := ReorderText("", RightToLeft); out != "" {
		t.Errorf("empty input must yield empty output, got %q", out)
	}
}

func TestReorderKeepsFormattingCodes(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "ש\u202aab\u202cל"
	out := ReorderText(input, RightToLeft)
	if strings.Count(out, "\u202a") != 1 || strings.Count(out, "\u202c") != 1 {
		t.Errorf("formatting codes must be carried through, got %q", out)
	}
}

func TestReorderPreservesCharacters(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	inputs := []string{
		"Hello World",
		"שלום עליכם",
		"abc שלום 123 def",
		"ש\u202aab\u202cל",
		"(שלום) [abc]",
	}
	for _, input := range inputs {
		for _, base := range []Direction{LeftToRight, RightToLeft, Auto} {
			out := ReorderText(input, base)
			if sortRunes(out) != sortRunes(input) {
				t.Errorf("ReorderText(%q, %s) changed the character multiset: %q",
					input, base, out)
			}
		}
	}
}

func sortRunes(s string) string {
	r := []rune(s)
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return string(r)
}

func ExampleReorderText() {
	visual := ReorderText("שלום 123", RightToLeft)
	fmt.Println(visual)
	// Output: 123 םולש
}
