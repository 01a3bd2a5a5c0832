package hyphen

import (
	"sync"

	"golang.org/x/text/language"
)

// The languages we carry pattern tables for. A request for a tag with
// any other base language yields a hyphenator that finds no break
// points; see tableFor.
var supportedLanguages = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.French,
	language.Spanish,
}

var langMatch = language.NewMatcher(supportedLanguages)

var tablesOnce sync.Once
var tables []*patternTable

// Table compilation is deferred until the first hyphenation request
// and happens exactly once per process. The tables are never written
// afterwards, so no further synchronization is needed for lookup.
func loadTables() {
	tables = []*patternTable{
		compileTable(patternsEnUS, exceptionsEnUS),
		compileTable(patternsDeDE, exceptionsDeDE),
		compileTable(patternsFrFR, exceptionsFrFR),
		compileTable(patternsEsES, exceptionsEsES),
	}
	T().Infof("compiled hyphenation patterns for %d languages", len(tables))
}

// tableFor resolves a language tag to its pattern table, or nil if
// the base language is not covered. The matcher only narrows region
// and script variants (en-GB resolves to the en-US table); its CLDR
// intelligibility data would also map unrelated languages onto a
// "closest" supported one, so we require the matched base language to
// equal the requested one. We intentionally do not fall back to a
// table of a different language: foreign patterns produce
// plausible-looking but wrong break points, whereas no hyphenation
// merely leaves a line ragged.
func tableFor(tag language.Tag) *patternTable {
	tablesOnce.Do(loadTables)
	_, index, confidence := langMatch.Match(tag)
	if confidence == language.No {
		return nil
	}
	reqBase, _ := tag.Base()
	matchBase, _ := supportedLanguages[index].Base()
	if reqBase != matchBase {
		T().Debugf("no hyphenation patterns for language %s", tag)
		return nil
	}
	return tables[index]
}
