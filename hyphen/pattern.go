package hyphen

import (
	"strings"
	"unicode"

	"github.com/emirpasic/gods/lists/arraylist"
)

// A patternTable is the compiled hyphenation knowledge for one
// language: Liang patterns keyed by their letter sequence, exception
// words with fixed break points, and the longest key length for
// bounding the substring search. Tables are immutable once compiled.
type patternTable struct {
	patterns   map[string][]int8
	exceptions map[string][]int
	maxLen     int // longest pattern key, in runes
}

// compileTable builds a pattern table from whitespace-separated
// pattern and exception sources in the notation of Liang's patterns
// file: digits between letters are scores ("hy3ph"), a leading or
// trailing dot anchors the pattern at a word boundary, exceptions
// spell their break points with dashes ("ta-ble").
func compileTable(patternSrc, exceptionSrc string) *patternTable {
	raw := arraylist.New()
	for _, p := range strings.Fields(patternSrc) {
		raw.Add(p)
	}
	t := &patternTable{
		patterns:   make(map[string][]int8, raw.Size()),
		exceptions: make(map[string][]int),
	}
	it := raw.Iterator()
	for it.Next() {
		key, scores := compilePattern(it.Value().(string))
		t.patterns[key] = scores
		if n := len([]rune(key)); n > t.maxLen {
			t.maxLen = n
		}
	}
	for _, x := range strings.Fields(exceptionSrc) {
		word, points := compileException(x)
		t.exceptions[word] = points
	}
	return t
}

// compilePattern splits a pattern like "hy3ph" into its letter key
// "hyph" and the score vector [0 0 3 0 0]: score i sits before
// letter i of the key.
func compilePattern(p string) (string, []int8) {
	var letters []rune
	scores := []int8{0}
	for _, r := range p {
		if unicode.IsDigit(r) {
			scores[len(scores)-1] = int8(r - '0')
		} else {
			letters = append(letters, r)
			scores = append(scores, 0)
		}
	}
	return string(letters), scores
}

// compileException turns "ta-ble" into the word "table" with break
// point list [2].
func compileException(x string) (string, []int) {
	var letters []rune
	var points []int
	for _, r := range x {
		if r == '-' {
			points = append(points, len(letters))
		} else {
			letters = append(letters, r)
		}
	}
	return string(letters), points
}

// applyPatterns overlays all patterns matching substrings of the
// dot-wrapped word onto a score vector, keeping the maximum score per
// inter-letter position.
func (t *patternTable) applyPatterns(work []rune) []int8 {
	scores := make([]int8, len(work)+1)
	for i := range work {
		limit := i + t.maxLen
		if limit > len(work) {
			limit = len(work)
		}
		for j := i + 1; j <= limit; j++ {
			v, ok := t.patterns[string(work[i:j])]
			if !ok {
				continue
			}
			for k, s := range v {
				if s > scores[i+k] {
					scores[i+k] = s
				}
			}
		}
	}
	return scores
}
