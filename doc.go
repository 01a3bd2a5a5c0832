/*
Package parashape is the text-shaping core of a paragraph layout engine.

Description

Laying out a paragraph of styled text involves three hard sub-problems,
which this module implements as independent, composable algorithms:

▪︎ Reordering bidirectional text (package bidi): mixed left-to-right and
right-to-left scripts have to be brought from logical order into visual
order before glyphs can be positioned. We implement a single-level
variant of the UAX#9 bidi algorithm, honoring explicit
embedding/override formatting codes and mirrored bracket pairs.

▪︎ Hyphenation (package hyphen): finding the legal break points within
words, using Frank Liang's pattern-matching technique known from TeX.
Pattern tables for a fixed set of languages are built once and are
read-only for the lifetime of the process.

▪︎ Optimal line breaking (package knuth): selecting the break points that
minimize total demerits over a whole paragraph, using the Knuth-Plass
dynamic programming algorithm from "Breaking Paragraphs into Lines"
(1981).

Package segment contributes a small word tokenizer which produces the
word/span input the line breaker expects, and package para wires all of
the above into a one-call paragraph pipeline.

All components are pure functions over their inputs (apart from the
load-once hyphenation tables) and therefore safe for concurrent use
without locking. The surrounding layout engine—document model, font
metrics, page composition, output writing—is not part of this module;
it communicates through plain strings, integer rune offsets and a
width-measurement callback.

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
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package parashape

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}

// We define constants for flagging break points as infinitely bad and
// infinitely good, respectively.
const (
	InfinitePenalty = 1000
	InfiniteMerits  = -1000
)
