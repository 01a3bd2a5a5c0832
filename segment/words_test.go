package segment

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestWords(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, spans := Words("Hello World, how are you?")
	if len(words) != 5 || len(spans) != 5 {
		t.Fatalf("expected 5 words, have %d", len(words))
	}
	if words[1] != "World," || spans[1].Start != 6 || spans[1].End != 12 {
		t.Errorf("expected 'World,' at 6..12, have '%s' at %v", words[1], spans[1])
	}
}

func TestWordsWhitespace(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, spans := Words("  padded \t text  ")
	if len(words) != 2 {
		t.Fatalf("expected 2 words, have %d: %v", len(words), words)
	}
	if spans[0].Start != 2 || spans[1].End != 15 {
		t.Errorf("unexpected spans %v", spans)
	}
	if words, _ := Words(""); len(words) != 0 {
		t.Errorf("empty text must yield no words, have %v", words)
	}
}

func TestWordsKeepSoftHyphens(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	words, spans := Words("lime\u00adtree grove")
	if len(words) != 2 {
		t.Fatalf("a soft hyphen must not split its word, have %v", words)
	}
	if spans[0].Len() != 9 {
		t.Errorf("expected a 9-rune first word, have %v", spans[0])
	}
}

func TestWordScanner(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	seg := NewWordScanner(strings.NewReader("Hello World "))
	n := 0
	for seg.Next() {
		t.Logf("word = '%s' at %v", seg.Text(), seg.Span())
		n++
	}
	if n != 2 {
		t.Errorf("expected 2 words, have %d", n)
	}
	if err := seg.Err(); err != nil {
		t.Errorf("unexpected scanner error %v", err)
	}
}

func ExampleWords() {
	words, spans := Words("the quick fox")
	for i, word := range words {
		fmt.Printf("%s %d..%d\n", word, spans[i].Start, spans[i].End)
	}
	// Output:
	// the 0..3
	// quick 4..9
	// fox 10..13
}
