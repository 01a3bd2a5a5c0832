package parashape

import "unicode/utf8"

// A Span marks the position of a word within a paragraph, measured in
// runes (not bytes). End is exclusive. Spans produced for a paragraph
// partition the non-whitespace portions of the text: no overlaps, in
// ascending order.
type Span struct {
	Start, End int
}

// Len returns the length of a span in runes.
func (sp Span) Len() int {
	return sp.End - sp.Start
}

// MeasureFunc abstracts text measurement. The layout engine will
// provide an implementation backed by font metrics; the algorithms in
// this module treat widths as opaque numeric values.
//
// Implementations must be pure: identical input must yield identical
// width for the duration of a paragraph-layout call.
type MeasureFunc func(text string) float64

// RuneCount is the fallback MeasureFunc: every rune is one unit wide.
// It is used whenever a client does not supply a measurer, e.g. for
// monospaced output or for tests.
func RuneCount(text string) float64 {
	return float64(utf8.RuneCountInString(text))
}
