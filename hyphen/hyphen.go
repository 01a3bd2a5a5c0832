package hyphen

import (
	"strings"
	"unicode"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"
)

// Defaults for hyphenators created without options: do not touch
// words shorter than 4 letters, and keep at least 2 letters on either
// side of a hyphen.
const (
	defaultMinWordLength = 4
	defaultMinLeft       = 2
	defaultMinRight      = 2
)

// A Hyphenator finds the legal hyphenation points of single words for
// one language. It is immutable after construction and safe for
// concurrent use.
type Hyphenator struct {
	tag      language.Tag
	table    *patternTable
	minWord  int
	minLeft  int
	minRight int
}

// Option configures a Hyphenator.
type Option func(h *Hyphenator)

// Language selects the pattern table. Tags are matched against the
// supported languages, so e.g. en-GB resolves to the American English
// table; a language with no table at all disables hyphenation (see
// Enabled).
func Language(tag language.Tag) Option {
	return func(h *Hyphenator) {
		h.tag = tag
	}
}

// MinWordLength sets the minimum word length, in runes, below which
// no hyphenation is attempted.
func MinWordLength(n int) Option {
	return func(h *Hyphenator) {
		if n > 0 {
			h.minWord = n
		}
	}
}

// MinLeftChars sets how many runes must remain before the first
// hyphenation point.
func MinLeftChars(n int) Option {
	return func(h *Hyphenator) {
		if n > 0 {
			h.minLeft = n
		}
	}
}

// MinRightChars sets how many runes must remain after the last
// hyphenation point.
func MinRightChars(n int) Option {
	return func(h *Hyphenator) {
		if n > 0 {
			h.minRight = n
		}
	}
}

// NewHyphenator creates a hyphenator for American English, modified
// by zero or more options.
func NewHyphenator(opts ...Option) *Hyphenator {
	h := &Hyphenator{
		tag:      language.AmericanEnglish,
		minWord:  defaultMinWordLength,
		minLeft:  defaultMinLeft,
		minRight: defaultMinRight,
	}
	for _, opt := range opts {
		opt(h)
	}
	h.table = tableFor(h.tag)
	if h.table == nil {
		T().Infof("no hyphenation patterns for %s, hyphenation disabled", h.tag)
	}
	return h
}

// Enabled reports whether the hyphenator has a pattern table for its
// language. A disabled hyphenator finds no break points, which is a
// valid degraded result, not an error.
func (h *Hyphenator) Enabled() bool {
	return h.table != nil
}

// FindHyphenationPoints returns the legal break points of a word as
// ascending rune offsets: point p splits the word into word[:p] and
// word[p:]. Words containing non-letters, words shorter than the
// minimum length, and words of an uncovered language yield no points.
// Matching is case-insensitive. The result is deterministic for a
// given hyphenator and word.
func (h *Hyphenator) FindHyphenationPoints(word string) []int {
	if h.table == nil {
		return nil
	}
	runes := []rune(word)
	n := len(runes)
	if n < h.minWord {
		return nil
	}
	lower := make([]rune, n)
	for i, r := range runes {
		if !unicode.IsLetter(r) {
			return nil
		}
		lower[i] = unicode.ToLower(r)
	}
	if points, ok := h.table.exceptions[string(lower)]; ok {
		return h.filterPoints(points, n)
	}
	work := make([]rune, 0, n+2)
	work = append(work, '.')
	work = append(work, lower...)
	work = append(work, '.')
	scores := h.table.applyPatterns(work)
	var points []int
	for p := 1; p < n; p++ {
		// scores index p+1 sits between word runes p-1 and p
		if scores[p+1]%2 == 1 {
			points = append(points, p)
		}
	}
	T().Debugf("hyphenation points of '%s' = %v", word, points)
	return h.filterPoints(points, n)
}

// filterPoints drops points violating the left/right margins.
func (h *Hyphenator) filterPoints(points []int, n int) []int {
	var out []int
	for _, p := range points {
		if p >= h.minLeft && n-p >= h.minRight {
			out = append(out, p)
		}
	}
	return out
}

// Hyphenate returns the word with hyphenChar inserted at every legal
// hyphenation point, e.g. "hy-phen-ation". Words without points pass
// through unchanged.
func (h *Hyphenator) Hyphenate(word string, hyphenChar rune) string {
	points := h.FindHyphenationPoints(word)
	if len(points) == 0 {
		return word
	}
	runes := []rune(word)
	var b strings.Builder
	b.Grow(len(word) + len(points))
	prev := 0
	for _, p := range points {
		b.WriteString(string(runes[prev:p]))
		b.WriteRune(hyphenChar)
		prev = p
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}

// LanguageFromEnvironment detects the user's locale and returns it as
// a language tag suitable for the Language option. Detection failure
// falls back to en-US.
func LanguageFromEnvironment() language.Tag {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		T().Errorf(err.Error())
		userLocale = "en-US"
		T().Infof("hyphenation falls back to locale %v", userLocale)
	} else {
		T().Infof("hyphenation detected user locale %v", userLocale)
	}
	return language.Make(userLocale)
}
