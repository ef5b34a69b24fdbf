/*
Package jamo converts between Hangul syllables and their jamo.

Hangul syllables U+AC00…U+D7A3 are laid out algorithmically: every syllable
is the combination of a leading consonant (19 choices), a vowel (21 choices)
and an optional trailing consonant (27 choices plus “none”):

   code = 0xAC00 + (lead*21 + vowel)*28 + tail

Package jamo uses this arithmetic for composing and decomposing syllables,
instead of tables. Jamo come in several flavours, each in its own Unicode
block:

   U+1100…U+11FF   Hangul Jamo (conjoining, with separate lead/vowel/tail forms)
   U+3131…U+318E   Hangul Compatibility Jamo (HCJ), one form per letter
   U+A960…U+A97C   Hangul Jamo Extended-A (archaic leads)
   U+D7B0…U+D7FB   Hangul Jamo Extended-B (archaic vowels and tails)

Clients should note that every operation validates block membership before
doing any arithmetic. Invalid input results in an error of type *Error,
never in silently computed garbage.

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package jamo

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
