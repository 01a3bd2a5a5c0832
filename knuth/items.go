package knuth

// Break candidates correspond to the glue and penalty items of the
// Knuth-Plass paper. We do not materialize box items: boxes only ever
// contribute their width, so cumulative totals per candidate suffice.

import (
	"github.com/npillmayer/parashape"
)

// softHyphen marks a discretionary break within a word; the
// hyphenation engine inserts it, we consume it.
const softHyphen = '\u00ad'

type breakKind int8

const (
	spaceBreak  breakKind = iota // inter-word space
	hyphenBreak                  // discretionary break at a soft hyphen
	finalBreak                   // end of paragraph
)

func (k breakKind) String() string {
	switch k {
	case spaceBreak:
		return "space"
	case hyphenBreak:
		return "hyphen"
	case finalBreak:
		return "final"
	}
	return "?"
}

// A candidate is a legal break position together with the cumulative
// line metrics of everything preceding it. Candidates are generated
// left to right and never retracted.
type candidate struct {
	pos     int // rune offset at which a line ending here ends
	kind    breakKind
	flagged bool // hyphen breaks are flagged; see Config.FlaggedDemerit
	// cumulative natural width, stretchability and shrinkability up to
	// the break, excluding the glue that disappears when breaking here
	w, y, z float64
	// the same, including the break's own glue; the totals a line
	// starting after this candidate has to subtract
	aw, ay, az float64
	// extra width a line ending here picks up (the visible hyphen)
	penaltyWidth float64
}

// buildCandidates walks the paragraph left to right and collects all
// break candidates with their cumulative totals. Word spans are
// boxes, the gaps between them glue. Soft hyphens inside words become
// flagged discretionary candidates; the soft hyphen itself is zero
// width, a break there pays for the visible hyphen instead.
func (lb *Linebreaker) buildCandidates(sc *scratch, text string, spans []parashape.Span) []candidate {
	runes := []rune(text)
	cands := sc.cands[:0]
	measure := lb.cfg.Measure
	hyphenWidth := measure("-")
	var w, y, z float64

	if len(spans) > 0 && spans[0].Start > 0 {
		w += measure(string(runes[:spans[0].Start])) // leading material, unbreakable
	}
	for k, sp := range spans {
		fragStart := sp.Start
		for i := sp.Start; i < sp.End && i < len(runes); i++ {
			if runes[i] != softHyphen {
				continue
			}
			frag := string(runes[fragStart:i])
			w += measure(frag)
			if frag != "" && i+1 < sp.End {
				cands = append(cands, candidate{
					pos: i + 1, kind: hyphenBreak, flagged: true,
					w: w, y: y, z: z, aw: w, ay: y, az: z,
					penaltyWidth: hyphenWidth,
				})
			}
			fragStart = i + 1
		}
		if fragStart < sp.End && sp.End <= len(runes) {
			w += measure(string(runes[fragStart:sp.End]))
		}
		if k+1 < len(spans) && sp.End < spans[k+1].Start {
			gap := string(runes[sp.End:spans[k+1].Start])
			gw := measure(gap)
			c := candidate{pos: sp.End, kind: spaceBreak, w: w, y: y, z: z}
			w += gw
			y += gw * lb.cfg.SpaceStretchRatio
			z += gw * lb.cfg.SpaceShrinkRatio
			c.aw, c.ay, c.az = w, y, z
			cands = append(cands, c)
		}
	}
	if len(spans) > 0 {
		if last := spans[len(spans)-1].End; last < len(runes) {
			w += measure(string(runes[last:])) // trailing material
		}
	} else {
		w = measure(text)
	}
	cands = append(cands, candidate{
		pos: len(runes), kind: finalBreak,
		w: w, y: y, z: z, aw: w, ay: y, az: z,
	})
	sc.cands = cands
	return cands
}
