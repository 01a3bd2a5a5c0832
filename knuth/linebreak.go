package knuth

import (
	"math"
	"unicode/utf8"

	"github.com/npillmayer/parashape"
)

// infinity caps adjustment ratios (and thereby badness) to keep the
// arithmetic finite, as TeX does.
var infinity = float64(parashape.InfinitePenalty)

// Defaults for configuration values left zero by the client. Stretch
// and shrink ratios are the classic TeX values for inter-word glue.
const (
	defaultTolerance      = 2.0
	defaultSpaceStretch   = 0.5
	defaultSpaceShrink    = 1.0 / 3.0
	defaultLinePenalty    = 10.0
	defaultFlaggedDemerit = 100.0
	defaultFitnessDemerit = 100.0
)

// Config holds the knobs of the paragraph breaker. The zero value of
// every field but LineWidth is replaced by a sensible default;
// LineWidth is mandatory, without it no wrapping takes place.
type Config struct {
	LineWidth         float64 // target line width, in measurement units
	Tolerance         float64 // maximum acceptable adjustment ratio
	SpaceStretchRatio float64 // fraction of a space's width it may grow
	SpaceShrinkRatio  float64 // fraction of a space's width it may give up
	LinePenalty       float64 // demerit base cost per line
	FlaggedDemerit    float64 // extra demerits for consecutive hyphenated lines
	FitnessDemerit    float64 // demerit weight for fitness jumps between lines
	Measure           parashape.MeasureFunc
}

// A Linebreaker breaks paragraphs into lines with minimal total
// demerits. It is immutable after construction and may be shared
// between goroutines.
type Linebreaker struct {
	cfg Config
}

// NewLinebreaker creates a paragraph breaker from a configuration,
// filling in defaults for zero fields.
func NewLinebreaker(cfg Config) *Linebreaker {
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = defaultTolerance
	}
	if cfg.SpaceStretchRatio <= 0 {
		cfg.SpaceStretchRatio = defaultSpaceStretch
	}
	if cfg.SpaceShrinkRatio <= 0 {
		cfg.SpaceShrinkRatio = defaultSpaceShrink
	}
	if cfg.LinePenalty <= 0 {
		cfg.LinePenalty = defaultLinePenalty
	}
	if cfg.FlaggedDemerit <= 0 {
		cfg.FlaggedDemerit = defaultFlaggedDemerit
	}
	if cfg.FitnessDemerit <= 0 {
		cfg.FitnessDemerit = defaultFitnessDemerit
	}
	if cfg.Measure == nil {
		cfg.Measure = parashape.RuneCount
	}
	return &Linebreaker{cfg: cfg}
}

// Fitness classes rate how much a line's spacing deviates from its
// natural width. Adjacent lines of wildly different fitness look
// uneven, which FitnessDemerit penalizes.
const (
	fitTight = iota // spaces shrunk considerably
	fitDecent
	fitLoose
	fitVeryLoose // spaces stretched beyond their nominal maximum
)

func fitnessClass(r float64) int {
	switch {
	case r < -0.5:
		return fitTight
	case r <= 0.5:
		return fitDecent
	case r <= 1.0:
		return fitLoose
	}
	return fitVeryLoose
}

// A node is a partial-paragraph state of the dynamic program: the
// candidate it breaks at, the line count and fitness of the line
// ending there, accumulated demerits, and the arena index of its
// predecessor. Indices instead of pointers keep the arena poolable
// and make the chosen chain trivially replayable.
type node struct {
	cand     int // candidate index, -1 for the paragraph start
	line     int
	fitness  int
	demerits float64
	prev     int // arena index of the predecessor, -1 at the start
	active   bool
}

// FindOptimalBreakpoints breaks a paragraph into lines. The text is
// expected in visual order with hyphenation opportunities marked by
// soft hyphens; words and their rune spans come from the caller's
// tokenization (see package segment).
//
// The result is the ascending list of rune offsets at which lines
// end, always closing with the text length. A paragraph that fits its
// line width yields exactly one offset. The call cannot fail: when no
// feasible break sequence exists, first the tolerance is relaxed, and
// as a last resort a break with maximal badness is forced, so the
// result is complete and deterministic even for hopeless input.
func (lb *Linebreaker) FindOptimalBreakpoints(text string, words []string, spans []parashape.Span) []int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return []int{0}
	}
	sc := borrowScratch()
	defer sc.releaseIntoPool()
	T().Debugf("breaking a paragraph of %d words, %d runes", len(words), n)
	cands := lb.buildCandidates(sc, text, spans)
	if lb.cfg.LineWidth <= 0 || len(cands) == 1 {
		return []int{n}
	}
	tolerance := lb.cfg.Tolerance
	for {
		best, nextTol := lb.optimize(sc, cands, tolerance)
		if best >= 0 {
			return lb.breakpoints(sc, best)
		}
		T().Debugf("no feasible breaks at tolerance %.3g, relaxing to %.3g", tolerance, nextTol)
		tolerance = nextTol
	}
}

// optimize runs the active-node dynamic program over the candidate
// list at a given tolerance. It returns the arena index of the best
// final node, or -1 together with the smallest tolerance that would
// admit at least one more break (the relax-and-retry protocol).
func (lb *Linebreaker) optimize(sc *scratch, cands []candidate, tolerance float64) (int, float64) {
	nodes := sc.nodes[:0]
	actives := sc.actives[:0]
	nodes = append(nodes, node{cand: -1, fitness: fitDecent, prev: -1, active: true})
	actives = append(actives, 0)
	nextTol := math.Inf(1)

	for b, cand := range cands {
		dmin := math.Inf(1)
		var D [4]float64
		var P [4]int
		var R [4]float64
		for c := range D {
			D[c] = math.Inf(1)
		}
		keep := actives[:0]
		for _, ai := range actives {
			a := &nodes[ai]
			r := lb.ratio(cands, a, cand)
			if r < -1 || cand.kind == finalBreak {
				a.active = false // no later line can start here either
			} else {
				keep = append(keep, ai)
			}
			feasible := -1 <= r && (r <= tolerance || cand.kind == finalBreak)
			if feasible {
				d, c := lb.lineDemerits(cands, a, cand, r)
				if d < D[c] {
					D[c], P[c], R[c] = d, ai, r
					if d < dmin {
						dmin = d
					}
				}
			} else if r > tolerance && cand.kind != finalBreak {
				if r < nextTol {
					nextTol = r
				}
			}
		}
		actives = keep
		if !math.IsInf(dmin, 1) {
			// keep the best predecessor per fitness class, unless it
			// is hopeless compared to the overall best
			for c := 0; c < len(D); c++ {
				if D[c] <= dmin+lb.cfg.FitnessDemerit {
					T().Debugf("feasible %s break at %d, class %d, ratio %.3g",
						cand.kind, cand.pos, c, R[c])
					nodes = append(nodes, node{
						cand: b, line: nodes[P[c]].line + 1, fitness: c,
						demerits: D[c], prev: P[c], active: true,
					})
					actives = append(actives, len(nodes)-1)
				}
			}
		} else if len(actives) == 0 {
			if nextTol > tolerance && !math.IsInf(nextTol, 1) {
				sc.nodes, sc.actives = nodes, actives
				return -1, nextTol
			}
			nodes, actives = lb.forceBreak(cands, nodes, actives, b)
		}
	}

	best, bestD := -1, math.Inf(1)
	for i := range nodes {
		if nodes[i].cand >= 0 && cands[nodes[i].cand].kind == finalBreak &&
			nodes[i].demerits < bestD {
			best, bestD = i, nodes[i].demerits
		}
	}
	sc.nodes, sc.actives = nodes, actives
	return best, nextTol
}

// forceBreak handles paragraphs without any feasible break sequence
// (a lone word wider than the line, say): break at the current
// candidate anyway, from the predecessor sticking out the least, with
// maximal badness. This guarantees termination and a complete,
// monotonic breakpoint list.
func (lb *Linebreaker) forceBreak(cands []candidate, nodes []node, actives []int, b int) ([]node, []int) {
	cand := cands[b]
	bestPrev, minOver := 0, math.Inf(1)
	for i := range nodes {
		if over := cand.w - startTotals(cands, nodes[i]); over < minOver {
			minOver, bestPrev = over, i
		}
	}
	T().Infof("forcing an overfull break at position %d", cand.pos)
	badness := 100 * infinity * infinity * infinity
	d := lb.cfg.LinePenalty + badness
	nodes = append(nodes, node{
		cand: b, line: nodes[bestPrev].line + 1, fitness: fitDecent,
		demerits: nodes[bestPrev].demerits + d*d, prev: bestPrev, active: true,
	})
	return nodes, append(actives, len(nodes)-1)
}

// ratio computes the adjustment ratio of a line from node a to the
// given candidate: 0 for a line at its natural width, positive when
// the spaces stretch, negative when they shrink, -1 and 1 marking the
// nominal limits.
func (lb *Linebreaker) ratio(cands []candidate, a *node, cand candidate) float64 {
	var aw, ay, az float64
	if a.cand >= 0 {
		p := cands[a.cand]
		aw, ay, az = p.aw, p.ay, p.az
	}
	natural := cand.w - aw + cand.penaltyWidth
	stretch := cand.y - ay
	shrink := cand.z - az
	width := lb.cfg.LineWidth
	switch {
	case cand.kind == finalBreak && natural <= width:
		return 0 // the last line of a paragraph may run short
	case natural < width:
		if stretch <= 0 {
			// an unstretchable short line; grade it by how short it
			// is, so relaxation prefers the least-bad one
			return infinity * (1 + (width-natural)/width)
		}
		return math.Min((width-natural)/stretch, infinity)
	case natural > width:
		if shrink <= 0 {
			return -infinity
		}
		return (width - natural) / shrink
	}
	return 0
}

// lineDemerits rates a line from node a to the given candidate and
// returns the total demerits up to that break, together with the
// line's fitness class.
func (lb *Linebreaker) lineDemerits(cands []candidate, a *node, cand candidate, r float64) (float64, int) {
	badness := 100 * math.Pow(math.Abs(r), 3)
	d := lb.cfg.LinePenalty + badness
	d *= d
	if a.cand >= 0 && cands[a.cand].flagged && cand.flagged {
		d += lb.cfg.FlaggedDemerit // consecutive hyphenated lines
	}
	c := fitnessClass(r)
	diff := float64(c - a.fitness)
	d += lb.cfg.FitnessDemerit * diff * diff
	return d + a.demerits, c
}

// startTotals returns the cumulative width a line starting after node
// n has to subtract.
func startTotals(cands []candidate, n node) float64 {
	if n.cand < 0 {
		return 0
	}
	return cands[n.cand].aw
}

// breakpoints replays the chain of a final node into the ascending
// list of line-end offsets.
func (lb *Linebreaker) breakpoints(sc *scratch, best int) []int {
	count := sc.nodes[best].line
	out := make([]int, count)
	i := count - 1
	for n := best; n >= 0 && sc.nodes[n].cand >= 0; n = sc.nodes[n].prev {
		out[i] = sc.cands[sc.nodes[n].cand].pos
		i--
	}
	return out
}
