/*
Package bidi implements a single-level variant of the Unicode UAX#9
Bidirectional Algorithm.

It is not fully standards-conforming: full multi-level embedding
resolution and the complete paired-bracket algorithm of UAX#9 are out
of scope. What it does implement—classification of characters into
directional runs, explicit embedding/override formatting codes,
directionally stable digit runs and mirrored bracket pairs—is good
enough for typesetting mixed-script paragraphs.

The central entry point is ReorderText, which transforms a paragraph
from logical order into visual order:

	visual := bidi.ReorderText("שלום 123", bidi.RightToLeft)

Clients interested in the run structure itself (e.g. for styling runs
separately) can use the run scanner directly:

	sc := bidi.NewScanner(strings.NewReader(input))
	for {
	    tokval, token, _, _ := sc.NextToken(scanner.AnyToken)
	    if tokval == scanner.EOF {
	        break
	    }
	    run := token.(bidi.Run)
	    … // inspect run
	}

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
package bidi

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the global core tracer
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the UAX#9 version this implementation follows.
const UnicodeVersion = "13.0.0"
