package segment

import (
	"bufio"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/parashape"
)

// IsWordSpace decides which characters separate words. Soft hyphens
// and no-break spaces stay inside their word.
func IsWordSpace(r rune) bool {
	switch r {
	case '\u00a0', '\u00ad', '\u202f', '\ufeff':
		return false
	}
	return unicode.IsSpace(r)
}

// Words tokenizes a paragraph into words and their rune spans. Words
// are maximal runs of non-space characters; spans are ascending and
// non-overlapping. Leading, trailing and repeated spaces produce no
// empty words.
func Words(text string) ([]string, []parashape.Span) {
	var words []string
	var spans []parashape.Span
	runes := []rune(text)
	start := -1
	for i, r := range runes {
		if IsWordSpace(r) {
			if start >= 0 {
				words = append(words, string(runes[start:i]))
				spans = append(spans, parashape.Span{Start: start, End: i})
				start = -1
			}
		} else if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, string(runes[start:]))
		spans = append(spans, parashape.Span{Start: start, End: len(runes)})
	}
	return words, spans
}

// A WordScanner splits the text of a reader into words, one Next call
// at a time, in the manner of bufio.Scanner.
type WordScanner struct {
	runeScanner *bufio.Scanner
	word        []rune
	span        parashape.Span
	pos         int // rune position behind everything read so far
	atEOF       bool
}

// NewWordScanner creates a word scanner reading from input.
func NewWordScanner(input io.Reader) *WordScanner {
	seg := &WordScanner{}
	seg.runeScanner = bufio.NewScanner(input)
	seg.runeScanner.Split(bufio.ScanRunes)
	return seg
}

// Next advances the scanner to the next word. It returns false when
// the input is exhausted.
func (seg *WordScanner) Next() bool {
	seg.word = seg.word[:0]
	for {
		r, ok := seg.read()
		if !ok {
			break
		}
		if IsWordSpace(r) {
			if len(seg.word) > 0 {
				seg.pos++
				break
			}
			seg.pos++
			continue
		}
		if len(seg.word) == 0 {
			seg.span.Start = seg.pos
		}
		seg.word = append(seg.word, r)
		seg.pos++
	}
	seg.span.End = seg.span.Start + len(seg.word)
	if len(seg.word) > 0 {
		T().Debugf("word segment '%s' at %v", string(seg.word), seg.span)
		return true
	}
	return false
}

// Text returns the current word.
func (seg *WordScanner) Text() string {
	return string(seg.word)
}

// Span returns the rune span of the current word.
func (seg *WordScanner) Span() parashape.Span {
	return seg.span
}

// Err returns the first error encountered while reading the input.
func (seg *WordScanner) Err() error {
	return seg.runeScanner.Err()
}

func (seg *WordScanner) read() (rune, bool) {
	if seg.atEOF || !seg.runeScanner.Scan() {
		seg.atEOF = true
		return 0, false
	}
	r, _ := utf8.DecodeRune(seg.runeScanner.Bytes())
	return r, true
}
