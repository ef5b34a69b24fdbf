/*
Package g2p converts Korean text to its pronunciation ("grapheme to phoneme").

The pronunciation is written in Hangul as well, following the Standard
Pronunciation Regulations (표준 발음법):

   G2P("같이 먹고", false)   →   "가치 먹꼬"

Conversion runs as a pipeline:

   idioms → English words → tagger → numbers → jamo → rules → syllables

Rules operate on conjoining jamo. Some of them need morphological
information, which is given by annotations directly following the jamo
they qualify:

   /P   end of a predicate stem
   /E   adnominal ending
   /J   particle
   /B   bound noun (counter) after a number

Annotations are removed after the rules which read them have run. A
morphological analyzer is not part of this package; clients may plug one
in as a Tagger.

Descriptive mode

Some rules have a colloquial variant which the regulations permit, but do
not prescribe. Rules 5.2 (ㅖ→ㅔ) and 5.4.1 (non-initial 의→이) apply in
descriptive mode only. Rule 5.4.2 pronounces the particle 의 as 에 in
descriptive mode, and otherwise just removes the /J annotation.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package g2p

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
