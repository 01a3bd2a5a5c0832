package bidi

import (
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr/scanner"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/text/unicode/bidi"
)

func drain(sc *Scanner) []Run {
	var runs []Run
	for {
		tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		runs = append(runs, token.(Run))
	}
	return runs
}

func TestScannerRuns(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := NewScanner(strings.NewReader("hello WORLD 123"), Testing(true))
	runs := drain(sc)
	for _, run := range runs {
		t.Logf("run = %v", run)
	}
	if len(runs) != 5 {
		t.Fatalf("expected 5 runs, have %d", len(runs))
	}
	if runs[0].cat != catL || runs[2].cat != catR {
		t.Errorf("expected runs L and R, have %s and %s", runs[0].cat, runs[2].cat)
	}
	if !runs[4].IsNumber() {
		t.Errorf("expected run %v to be a number run", runs[4])
	}
	if runs[4].L != 12 || runs[4].R != 15 {
		t.Errorf("expected digit run at 12..15, have %v", runs[4])
	}
}

func TestScannerPartition(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	input := "a BC, d 42 EF"
	sc := NewScanner(strings.NewReader(input), Testing(true))
	runs := drain(sc)
	pos := 0
	for _, run := range runs {
		if run.L != pos {
			t.Errorf("run %v does not start at %d; runs must partition the input", run, pos)
		}
		pos = run.R
	}
	if pos != len([]rune(input)) {
		t.Errorf("runs cover %d runes, expected %d", pos, len([]rune(input)))
	}
}

func TestScannerEmbedding(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := NewScanner(strings.NewReader("ab\u202aCD\u202c"), Testing(true))
	runs := drain(sc)
	if len(runs) != 4 {
		t.Fatalf("expected 4 runs, have %d", len(runs))
	}
	if runs[0].Level != 0 {
		t.Errorf("outermost run should have level 0, has %d", runs[0].Level)
	}
	embedded := runs[2]
	if embedded.Level != 1 || embedded.Dir != LeftToRight {
		t.Errorf("embedded run should be level 1 L2R, is level %d %s",
			embedded.Level, embedded.Dir)
	}
}

func TestScannerOverride(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := NewScanner(strings.NewReader("\u202eab\u202c"), Testing(true))
	runs := drain(sc)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, have %d", len(runs))
	}
	if !runs[1].Override || runs[1].Dir != RightToLeft {
		t.Errorf("overridden run should carry the R2L override, is %v", runs[1])
	}
}

func TestScannerStrongContext(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	sc := NewScanner(strings.NewReader("WORLD 123"), Testing(true))
	runs := drain(sc)
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, have %d", len(runs))
	}
	if runs[2].Strong != bidi.R {
		t.Errorf("digit run after R2L text should see strong context R, sees %v",
			runs[2].Strong)
	}
	sc = NewScanner(strings.NewReader("123"), Testing(true))
	runs = drain(sc)
	if runs[0].Strong != noStrong {
		t.Errorf("leading digit run should see no strong context, sees %v", runs[0].Strong)
	}
}
