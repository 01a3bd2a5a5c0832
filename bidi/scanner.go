package bidi

// The scanner reads runs of text as units, as long as all runes
// therein share a character category and embedding state. It feeds the
// reordering in this package, but is public API: the layout engine
// uses it to inspect run boundaries for styling and cursor movement.

import (
	"bufio"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr/scanner"
	"golang.org/x/text/unicode/bidi"
)

// MaxNesting is the maximum depth of the directional embedding stack.
// Explicit embedding codes beyond this depth are ignored (the
// characters are still carried through to the output).
const MaxNesting = 63

// A Run is a maximal contiguous span of input text whose characters
// share one directional classification and one embedding state. Runs
// partition the input: no gaps, no overlaps, produced in source order.
// A Run holds rune positions, not the characters themselves.
type Run struct {
	L, R     int        // left and right rune position, R exclusive
	Dir      Direction  // embedding direction in effect (Neutral = paragraph base)
	Override bool       // directional override (LRO/RLO) in effect
	Level    int        // embedding nesting depth, 0 = outermost
	Strong   bidi.Class // strong directional context at run start
	cat      category
}

func (run Run) String() string {
	return fmt.Sprintf("[%d-%s-%d]", run.L, run.cat, run.R)
}

// Len returns the length of the run in runes.
func (run Run) Len() int {
	return run.R - run.L
}

// IsNumber reports whether the run is a digit sequence (class EN/AN).
// Digit runs keep their internal left-to-right order even when
// surrounded by right-to-left text.
func (run Run) IsNumber() bool {
	return run.cat == catNum
}

// noStrong marks "no strong character seen yet" in Run.Strong.
const noStrong bidi.Class = 999

type embedding struct {
	dir      Direction
	override bool
}

// Scanner tokenizes text into directional runs. It follows the
// gorgo scanner protocol (NextToken/SetErrorHandler), so it can be
// plugged into parser machinery, but is just as usable stand-alone.
type Scanner struct {
	runeScanner *bufio.Scanner // embedded rune reader
	mode        uint           // scanner modes, set by options
	pos         int            // rune position ahead of current run
	stack       []embedding    // directional embedding stack
	strong      bidi.Class     // most recent strong class (L or R)
	current     Run            // run under construction
	pending     rune           // lookahead rune not yet part of a run
	pendingCat  category
	hasPending  bool
	atEOF       bool
	errh        func(error)
}

// NewScanner creates a scanner for directional runs. Clients provide a
// reader and zero or more options. Runes are read from the reader and
// concatenated to runs of identical classification.
func NewScanner(input io.Reader, opts ...Option) *Scanner {
	sc := &Scanner{}
	sc.runeScanner = bufio.NewScanner(input)
	sc.runeScanner.Split(bufio.ScanRunes)
	sc.stack = make([]embedding, 0, MaxNesting)
	sc.strong = noStrong
	sc.current.cat = catEOF
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// NextToken returns the next directional run. The token value is the
// category of the run, the token itself a Run. Positions are rune
// positions. At the end of input, scanner.EOF is returned.
//
// The scanner should operate on one paragraph at a time, as required
// by UAX#9; embedding state does not reset mid-input.
func (sc *Scanner) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	for {
		r, cat, ok := sc.read()
		if !ok {
			if sc.current.cat != catEOF {
				run := sc.closeRun()
				return int(run.cat), run, uint64(run.L), uint64(run.Len())
			}
			return scanner.EOF, nil, uint64(sc.pos), 0
		}
		if cat == catFormat {
			// a format code is always a run of its own, with the
			// embedding state it establishes
			if sc.current.cat != catEOF {
				run := sc.closeRun()
				sc.pushBack(r, cat)
				return int(run.cat), run, uint64(run.L), uint64(run.Len())
			}
			sc.applyFormat(r)
			run := sc.formatRun()
			sc.pos++
			return int(run.cat), run, uint64(run.L), uint64(run.Len())
		}
		if sc.current.cat == catEOF {
			sc.openRun(cat)
			sc.pos++
			sc.noteStrong(r, cat)
			continue
		}
		if cat == sc.current.cat {
			sc.pos++
			sc.noteStrong(r, cat)
			continue
		}
		run := sc.closeRun()
		sc.pushBack(r, cat)
		T().Debugf("bidi scanner sends run %v", run)
		return int(run.cat), run, uint64(run.L), uint64(run.Len())
	}
}

// SetErrorHandler sets an error handler function, which receives an
// error and may try some repair strategy. The directional scanner
// cannot fail on any input, so the handler is never called; the method
// exists to satisfy the tokenizer protocol.
func (sc *Scanner) SetErrorHandler(h func(error)) {
	sc.errh = h
}

func (sc *Scanner) read() (rune, category, bool) {
	if sc.hasPending {
		sc.hasPending = false
		return sc.pending, sc.pendingCat, true
	}
	if sc.atEOF {
		return 0, catEOF, false
	}
	if !sc.runeScanner.Scan() {
		sc.atEOF = true
		return 0, catEOF, false
	}
	b := sc.runeScanner.Bytes()
	r, _ := utf8.DecodeRune(b)
	cat := categorize(sc.classify(r), sc.current.cat)
	return r, cat, true
}

func (sc *Scanner) pushBack(r rune, cat category) {
	sc.pending, sc.pendingCat = r, cat
	sc.hasPending = true
}

// classify returns the bidi class of a rune, honoring test mode.
func (sc *Scanner) classify(r rune) bidi.Class {
	if sc.hasMode(optionTesting) && r >= 'A' && r <= 'Z' {
		return bidi.R // during testing, UPPERCASE is R2L
	}
	return ClassForRune(r)
}

func (sc *Scanner) openRun(cat category) {
	sc.current = Run{
		L:      sc.pos,
		cat:    cat,
		Strong: sc.strong,
	}
	sc.current.Dir, sc.current.Override, sc.current.Level = sc.embeddingState()
}

func (sc *Scanner) closeRun() Run {
	run := sc.current
	run.R = sc.pos
	sc.current.cat = catEOF
	return run
}

// formatRun wraps the single format code at the current position.
func (sc *Scanner) formatRun() Run {
	run := Run{
		L:      sc.pos,
		R:      sc.pos + 1,
		cat:    catFormat,
		Strong: sc.strong,
	}
	run.Dir, run.Override, run.Level = sc.embeddingState()
	return run
}

func (sc *Scanner) embeddingState() (Direction, bool, int) {
	if len(sc.stack) == 0 {
		return Neutral, false, 0
	}
	top := sc.stack[len(sc.stack)-1]
	return top.dir, top.override, len(sc.stack)
}

// applyFormat maintains the directional embedding stack: entering an
// embedding or override code increases nesting depth, PDF pops.
func (sc *Scanner) applyFormat(r rune) {
	switch r {
	case runeLRE:
		sc.push(embedding{dir: LeftToRight})
	case runeRLE:
		sc.push(embedding{dir: RightToLeft})
	case runeLRO:
		sc.push(embedding{dir: LeftToRight, override: true})
	case runeRLO:
		sc.push(embedding{dir: RightToLeft, override: true})
	case runePDF:
		if len(sc.stack) > 0 {
			sc.stack = sc.stack[:len(sc.stack)-1]
		}
	}
}

func (sc *Scanner) push(e embedding) {
	if len(sc.stack) == MaxNesting { // skip on overflow, as UAX#9 does
		T().Errorf("bidi embedding stack overflow, ignoring code at %d", sc.pos)
		return
	}
	sc.stack = append(sc.stack, e)
}

func (sc *Scanner) noteStrong(r rune, cat category) {
	switch cat {
	case catL:
		sc.strong = bidi.L
	case catR:
		sc.strong = bidi.R
	}
}

// --- Scanner options -------------------------------------------------------

// Option configures a directional run scanner.
type Option func(sc *Scanner)

const (
	optionTesting uint = 1 << 1 // test mode: uppercase ASCII has class R
)

// Testing sets up the scanner to recognize UPPERCASE letters as having
// R2L class. This is a common pattern in bidi algorithm development.
func Testing(b bool) Option {
	return func(sc *Scanner) {
		if b {
			sc.mode |= optionTesting
		} else {
			sc.mode &^= optionTesting
		}
	}
}

func (sc *Scanner) hasMode(m uint) bool {
	return sc.mode&m > 0
}
