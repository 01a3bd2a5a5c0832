package para

import (
	"strings"

	"github.com/npillmayer/parashape"
	"github.com/npillmayer/parashape/bidi"
	"github.com/npillmayer/parashape/hyphen"
	"github.com/npillmayer/parashape/knuth"
	"github.com/npillmayer/parashape/segment"
	"golang.org/x/text/language"
)

const softHyphen = '\u00ad'

// Params configures a paragraph-shaping call.
type Params struct {
	BaseDirection  bidi.Direction // paragraph base direction, Auto detects
	Hyphenate      bool           // annotate words with hyphenation opportunities
	HyphenLanguage language.Tag   // zero value: detect from the environment
	Breaker        knuth.Config   // line breaker knobs; LineWidth is mandatory
}

// Result is the outcome of shaping one paragraph.
type Result struct {
	Text       string           // visual-order text, soft-hyphen annotated
	Words      []string         // word tokens of Text
	Spans      []parashape.Span // their rune spans
	Linebreaks []int            // ascending rune offsets into Text at which lines end
}

// ShapeParagraph runs the full shaping pipeline over one paragraph:
// the text is brought into visual order, segmented into words,
// annotated with hyphenation opportunities, and broken into lines.
// All offsets of the result refer to Result.Text, which may be longer
// than the input when hyphenation inserted soft hyphens.
func ShapeParagraph(text string, params Params) *Result {
	visual := bidi.ReorderText(text, params.BaseDirection)
	if params.Hyphenate {
		visual = annotate(visual, params.HyphenLanguage)
	}
	words, spans := segment.Words(visual)
	lb := knuth.NewLinebreaker(params.Breaker)
	breaks := lb.FindOptimalBreakpoints(visual, words, spans)
	T().Debugf("paragraph shaped into %d lines", len(breaks))
	return &Result{Text: visual, Words: words, Spans: spans, Linebreaks: breaks}
}

// annotate inserts soft hyphens at the legal hyphenation points of
// every word. A language without a pattern table leaves the text
// unchanged.
func annotate(text string, tag language.Tag) string {
	if tag == (language.Tag{}) {
		tag = hyphen.LanguageFromEnvironment()
	}
	h := hyphen.NewHyphenator(hyphen.Language(tag))
	if !h.Enabled() {
		return text
	}
	words, spans := segment.Words(text)
	runes := []rune(text)
	var b strings.Builder
	b.Grow(len(text) + len(words))
	prev := 0
	for i, sp := range spans {
		b.WriteString(string(runes[prev:sp.Start]))
		b.WriteString(h.Hyphenate(words[i], softHyphen))
		prev = sp.End
	}
	b.WriteString(string(runes[prev:]))
	return b.String()
}

// Lines splits the shaped text at the computed breakpoints. Leading
// word separators of continuation lines are dropped, trailing soft
// hyphens are turned into visible hyphens.
func (r *Result) Lines() []string {
	runes := []rune(r.Text)
	lines := make([]string, 0, len(r.Linebreaks))
	prev := 0
	for _, end := range r.Linebreaks {
		for prev < end && segment.IsWordSpace(runes[prev]) {
			prev++
		}
		line := string(runes[prev:end])
		if strings.HasSuffix(line, string(softHyphen)) {
			line = strings.TrimSuffix(line, string(softHyphen)) + "-"
		}
		lines = append(lines, strings.ReplaceAll(line, string(softHyphen), ""))
		prev = end
	}
	return lines
}
