package bidi

import (
	"strconv"

	"golang.org/x/text/unicode/bidi"
)

// Direction denotes a writing direction.
type Direction int8

// Base directions for a paragraph. Auto lets ReorderText scan the text
// for the first strong directional character (LTR wins if there is
// none); Neutral is returned by DetectDirection for text without any
// strong character.
const (
	LeftToRight Direction = iota
	RightToLeft
	Neutral
	Auto
)

func (dir Direction) String() string {
	switch dir {
	case LeftToRight:
		return "L2R"
	case RightToLeft:
		return "R2L"
	case Neutral:
		return "neutral"
	case Auto:
		return "auto"
	}
	return "direction(" + strconv.Itoa(int(dir)) + ")"
}

// ClassForRune returns the Bidi_Class for a rune, as defined by the
// Unicode character database. The mapping is backed by a flat range
// table lookup (package x/text); it is a pure function, total over all
// of Unicode. Unassigned code points end up with class L, following
// the conservative default of this package: worst case is a visually
// imperfect, never a malformed, result.
func ClassForRune(r rune) bidi.Class {
	props, sz := bidi.LookupRune(r)
	if sz == 0 {
		return bidi.L
	}
	return props.Class()
}

// DetectDirection scans text for the first strong directional
// character (class L, R or AL) and returns the direction it indicates.
// Text without any strong character is Neutral.
func DetectDirection(text string) Direction {
	for _, r := range text {
		switch ClassForRune(r) {
		case bidi.L:
			return LeftToRight
		case bidi.R, bidi.AL:
			return RightToLeft
		}
	}
	return Neutral
}

// --- Character categories --------------------------------------------------

// For run building we collapse the ~20 UAX#9 classes into a handful of
// categories. This is the "single-level run classification" of this
// package: strong types, numbers, formatting codes, and everything
// else, which attaches to neighboring runs.
type category int8

const (
	catL       category = iota // strong left-to-right
	catR                       // strong right-to-left (R and AL)
	catNum                     // EN and AN digit sequences
	catNeutral                 // whitespace, separators, other neutrals
	catFormat                  // LRE, RLE, LRO, RLO, PDF
	catEOF     category = -1   // scanner-internal stopper
)

func (cat category) String() string {
	switch cat {
	case catL:
		return "L"
	case catR:
		return "R"
	case catNum:
		return "NUM"
	case catNeutral:
		return "NI"
	case catFormat:
		return "FMT"
	case catEOF:
		return "EOF"
	}
	return "category(" + strconv.Itoa(int(cat)) + ")"
}

// categorize collapses a bidi class into a category. NSM (non-spacing
// marks) take the category of the character they follow, a pragmatic
// reading of rule W1; prev is that preceding category.
func categorize(clz bidi.Class, prev category) category {
	switch clz {
	case bidi.L:
		return catL
	case bidi.R, bidi.AL:
		return catR
	case bidi.EN, bidi.AN:
		return catNum
	case bidi.LRE, bidi.RLE, bidi.LRO, bidi.RLO, bidi.PDF:
		return catFormat
	case bidi.NSM:
		if prev == catL || prev == catR || prev == catNum {
			return prev
		}
		return catNeutral
	}
	// WS, S, B, CS, ES, ET, ON, BN, and anything exotic
	return catNeutral
}

// Explicit directional formatting code points recognized by the
// embedding stack.
const (
	runeLRE = '\u202a'
	runeRLE = '\u202b'
	runePDF = '\u202c'
	runeLRO = '\u202d'
	runeRLO = '\u202e'
)
