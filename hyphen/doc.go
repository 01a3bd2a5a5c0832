/*
Package hyphen finds the legal hyphenation points within words, using
the pattern-matching technique of Frank Liang's thesis "Word
Hy-phen-a-tion by Com-put-er" (1983), known from TeX.

Patterns carry inter-letter scores; all patterns matching a substring
of the word are overlaid, keeping the maximum score per position, and
odd final scores mark legal break points. A small list of exception
words overrides the patterns entirely.

	h := hyphen.NewHyphenator(hyphen.Language(language.AmericanEnglish))
	points := h.FindHyphenationPoints("hyphenation")   // [2 6]
	broken := h.Hyphenate("hyphenation", '-')          // "hy-phen-ation"

Pattern tables for the supported languages are compiled into the
package and built once, on first use; afterwards they are read-only,
so hyphenators are safe for concurrent use. A language without a
table yields a hyphenator that finds no points at all; we never fall
back to patterns of a different language, since those would produce
plausible-looking but wrong break points.

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
package hyphen

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}
