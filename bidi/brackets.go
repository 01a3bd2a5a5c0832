package bidi

// Mirrored bracket pairs. When a run is output in reversed order, an
// opening bracket would visually point the wrong way; UAX#9 requires
// substituting the character by its Bidi_Mirroring_Glyph counterpart.
// The mapping is static, bijective and total over its domain.

type bracketPair struct {
	o rune // opening bracket
	c rune // closing bracket
}

// The subset of the Unicode BidiBrackets.txt pairs that occurs in
// ordinary text. Exotic pairs degrade gracefully: an unlisted bracket
// is simply not swapped.
var mirroredPairs = []bracketPair{
	{'(', ')'},
	{'[', ']'},
	{'{', '}'},
	{'‹', '›'}, // single guillemets
	{'«', '»'}, // double guillemets
	{'〈', '〉'}, // angle brackets
	{'〈', '〉'}, // CJK angle brackets
	{'《', '》'}, // CJK double angle brackets
	{'⌈', '⌉'}, // ceiling
	{'⌊', '⌋'}, // floor
	{'⁅', '⁆'}, // square brackets with quill
	{'⟨', '⟩'}, // mathematical angle brackets
}

var mirror map[rune]rune

func init() {
	mirror = make(map[rune]rune, 2*len(mirroredPairs))
	for _, pair := range mirroredPairs {
		mirror[pair.o] = pair.c
		mirror[pair.c] = pair.o
	}
}

// Mirrored returns the mirror counterpart of a bracket character, and
// a flag indicating whether r is a mirrored bracket at all.
func Mirrored(r rune) (rune, bool) {
	m, ok := mirror[r]
	if !ok {
		return r, false
	}
	return m, true
}
