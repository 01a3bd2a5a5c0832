/*
Package knuth implements optimal paragraph breaking after the
algorithm by Donald E. Knuth and Michael F. Plass, "Breaking
Paragraphs into Lines" (1981).

Instead of filling lines greedily, the algorithm considers the
paragraph as a whole: every set of feasible break points is rated with
demerits, derived from how much the inter-word spaces of each line
have to stretch or shrink, and a dynamic program selects the break
sequence with minimal total demerits.

	lb := knuth.NewLinebreaker(knuth.Config{LineWidth: 60})
	words, spans := segment.Words(text)
	breaks := lb.FindOptimalBreakpoints(text, words, spans)

The returned break positions are rune offsets at which lines end,
ascending, the last one always being the text length. Break candidates
are the inter-word spaces, soft hyphens (U+00AD) within words, and the
end of the paragraph. Width measurement is delegated to a caller
supplied callback, so the algorithm is independent of any particular
font machinery.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE. */
package knuth

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
