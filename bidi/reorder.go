package bidi

import (
	"strings"

	"github.com/npillmayer/gorgo/lr/scanner"
	"golang.org/x/text/unicode/bidi"
)

// ReorderText brings a paragraph of text from logical order into
// visual order:
//
// ▪︎ characters are classified and grouped into directional runs,
// honoring explicit embedding/override codes (LRE, RLE, LRO, RLO, PDF);
//
// ▪︎ right-to-left runs are reversed in place, except for embedded
// digit sequences and explicitly LTR-embedded text, which keep their
// internal order and move as single units;
//
// ▪︎ mirrored bracket characters inside reversed runs are replaced by
// their counterparts;
//
// ▪︎ runs are concatenated in their resolved visual order (for a
// right-to-left base direction the run order is reversed).
//
// Base direction Auto is resolved by scanning for the first strong
// directional character, defaulting to left-to-right. ReorderText is a
// pure function and never fails: unknown code points are treated as
// left-to-right letters, and the output always contains exactly the
// characters of the input (formatting codes included; they are
// zero-width for rendering).
func ReorderText(text string, base Direction) string {
	if text == "" {
		return text
	}
	switch base {
	case Auto, Neutral:
		if DetectDirection(text) == RightToLeft {
			base = RightToLeft
		} else {
			base = LeftToRight
		}
	}
	runes := []rune(text)
	runs := collectRuns(text)
	segs := resolveSegs(runs, base)
	return render(runes, segs, base)
}

// collectRuns drains the run scanner for a complete paragraph.
func collectRuns(text string) []Run {
	sc := NewScanner(strings.NewReader(text))
	runs := make([]Run, 0, 8)
	for {
		tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
		if tokval == scanner.EOF {
			break
		}
		runs = append(runs, token.(Run))
	}
	return runs
}

// --- Resolving visual segments ---------------------------------------------

// A visual segment is a run with a resolved output direction. Unit
// segments are emitted verbatim even when they sit inside reversed
// right-to-left context (digit sequences, LTR-embedded islands,
// formatting codes).
type viseg struct {
	l, r int
	dir  Direction
	unit bool
}

// dirPending marks segments whose direction is derived from their
// neighbors in a second pass (neutrals and unit islands).
const dirPending Direction = -2

// resolveSegs assigns each run its resolved output direction.
func resolveSegs(runs []Run, base Direction) []viseg {
	segs := make([]viseg, len(runs))
	for i, run := range runs {
		seg := viseg{l: run.L, r: run.R}
		switch run.cat {
		case catL:
			if run.Override {
				seg.dir = run.Dir // LRO/RLO forces the embedding direction
			} else if run.Level > 0 && run.Dir == LeftToRight {
				// explicitly LTR-embedded text: an island that keeps
				// its order and flows with the surrounding context
				seg.dir, seg.unit = dirPending, true
			} else {
				seg.dir = LeftToRight
			}
		case catR:
			if run.Override {
				seg.dir = run.Dir
			} else {
				seg.dir = RightToLeft
			}
		case catNum:
			seg.unit = true
			seg.dir = numberDir(run, base)
		case catNeutral, catFormat:
			seg.dir = dirPending
			seg.unit = run.cat == catFormat
		}
		segs[i] = seg
	}
	resolvePending(segs, base)
	return segs
}

// numberDir decides which directional flow a digit run belongs to.
// Digits keep internal left-to-right order in any case (the run is a
// unit); the question is only which side of the paragraph they travel
// with.
func numberDir(run Run, base Direction) Direction {
	if run.Override {
		return run.Dir
	}
	if run.Level > 0 && run.Dir == LeftToRight {
		return LeftToRight
	}
	switch run.Strong {
	case bidi.R:
		return RightToLeft
	case bidi.L:
		return LeftToRight
	}
	// no strong context yet: the paragraph direction decides
	if run.Level > 0 {
		return run.Dir
	}
	return base
}

// resolvePending resolves neutral segments: a neutral between two
// segments of equal direction joins them; between differing directions
// (or at the paragraph edge) it takes the base direction.
func resolvePending(segs []viseg, base Direction) {
	for i := range segs {
		if segs[i].dir != dirPending {
			continue
		}
		prev, next := Neutral, Neutral
		for j := i - 1; j >= 0; j-- {
			if segs[j].dir != dirPending {
				prev = segs[j].dir
				break
			}
		}
		for j := i + 1; j < len(segs); j++ {
			if segs[j].dir != dirPending {
				next = segs[j].dir
				break
			}
		}
		if prev == next && prev != Neutral {
			segs[i].dir = prev
		} else {
			segs[i].dir = base
		}
	}
}

// --- Rendering -------------------------------------------------------------

// render emits the visual segments in display order. Segments are
// grouped into maximal blocks of equal direction; left-to-right blocks
// are emitted verbatim, right-to-left blocks are emitted with their
// segment order and (non-unit) segment contents reversed. For a
// right-to-left base direction the block order is reversed as well.
func render(runes []rune, segs []viseg, base Direction) string {
	type block struct {
		dir  Direction
		segs []viseg
	}
	var blocks []block
	for _, seg := range segs {
		if n := len(blocks); n > 0 && blocks[n-1].dir == seg.dir {
			blocks[n-1].segs = append(blocks[n-1].segs, seg)
		} else {
			blocks = append(blocks, block{dir: seg.dir, segs: []viseg{seg}})
		}
	}
	var b strings.Builder
	b.Grow(len(runes) * 2)
	emit := func(blk block) {
		if blk.dir == LeftToRight {
			for _, seg := range blk.segs {
				b.WriteString(string(runes[seg.l:seg.r]))
			}
			return
		}
		for i := len(blk.segs) - 1; i >= 0; i-- {
			seg := blk.segs[i]
			if seg.unit {
				b.WriteString(string(runes[seg.l:seg.r]))
				continue
			}
			for j := seg.r - 1; j >= seg.l; j-- {
				m, _ := Mirrored(runes[j])
				b.WriteRune(m)
			}
		}
	}
	if base == RightToLeft {
		for i := len(blocks) - 1; i >= 0; i-- {
			emit(blocks[i])
		}
	} else {
		for _, blk := range blocks {
			emit(blk)
		}
	}
	return b.String()
}
