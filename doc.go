/*
Package kophon is about the pronunciation of Korean text.

Description

Korean orthography is morphophonemic: Hangul spells the underlying form of
a word, not what a speaker says. 국물 is spelled with a ㄱ, but is pronounced
[궁물]; 같이 is pronounced [가치]. The Standard Pronunciation Regulations
(표준 발음법) of the National Institute of Korean Language list the
rules which take a spelled form to its pronunciation.

The packages of this module operate on jamo, the letters of Hangul, instead
of on whole syllables. Syllables are split into their jamo, a fixed sequence
of rewrite rules is applied, and the result is joined back into syllables.

Contents

Package jamo implements the algorithmic conversion between syllables and
jamo. Package g2p implements the rule pipeline ("grapheme to phoneme"),
package romanize a transliteration into Latin script. Packages numerals,
cmudict and loanword provide collaborators to the pipeline, which deal with
digits and with English words inside Korean text.

The top-level package contains the rewrite machinery shared by the rule
sets: recognizers driven by state functions, and patterns over finite
classes of runes.

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
package kophon

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
