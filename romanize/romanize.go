/*
Package romanize transliterates Hangul to latin script.

Transliteration runs over a stream of runes, looking at one rune at a time
together with its predecessor and successor. Hangul syllables are spelled
by a Rule, every other rune is copied unchanged.

The Academic rule implements the academic variant of the Revised
Romanization of Korean: every jamo has exactly one spelling, and syllable
boundaries which would otherwise be ambiguous are marked by a hyphen.

   Romanize("안녕하세요")   →   "annyeonghase-yo"

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package romanize

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/kophon/jamo"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// Syllable is a precomposed Hangul syllable.
type Syllable struct {
	char rune
	jamo jamo.Triple
}

// NewSyllable creates a syllable from a rune in U+AC00…U+D7A3.
func NewSyllable(r rune) (Syllable, error) {
	t, err := jamo.DecomposeSyllable(r)
	if err != nil {
		return Syllable{}, err
	}
	return Syllable{char: r, jamo: t}, nil
}

// Initial returns the index of the leading consonant, 0…18.
func (s Syllable) Initial() int { return s.jamo.Lead }

// Vowel returns the index of the vowel, 0…20.
func (s Syllable) Vowel() int { return s.jamo.Vowel }

// Final returns the index of the trailing consonant, 0…27.
// 0 denotes an open syllable.
func (s Syllable) Final() int { return s.jamo.Tail }

// Char returns the syllable as a rune.
func (s Syllable) Char() rune { return s.char }

func (s Syllable) String() string { return string(s.char) }

// Token is a rune of the input. If the rune is a Hangul syllable,
// IsSyllable is set and Syllable holds its jamo.
// At the start and at the end of input, the window contains the zero Token.
type Token struct {
	Char       rune
	Syllable   Syllable
	IsSyllable bool
}

func token(r rune) Token {
	if s, err := NewSyllable(r); err == nil {
		return Token{Char: r, Syllable: s, IsSyllable: true}
	}
	return Token{Char: r}
}

// Rule spells the token now, given its neighbours. If a rule returns false,
// the token produces no output.
type Rule func(now, prev, next Token) (string, bool)

// Transliter transliterates text by a rule.
type Transliter struct {
	Rule Rule
}

// Translit reads runes from r until io.EOF and returns the transliterated
// text. Read errors other than io.EOF are returned together with the
// output produced so far.
func (t Transliter) Translit(r io.RuneReader) (string, error) {
	var out strings.Builder
	var prev, now Token
	started := false
	emit := func(next Token) {
		if s, ok := t.Rule(now, prev, next); ok {
			out.WriteString(s)
		}
	}
	for {
		c, _, err := r.ReadRune()
		if err != nil {
			if started {
				emit(Token{})
			}
			if errors.Is(err, io.EOF) {
				return out.String(), nil
			}
			T().Errorf("romanize: %v", err)
			return out.String(), err
		}
		next := token(c)
		if started {
			emit(next)
		}
		prev, now, started = now, next, true
	}
}

// TranslitString transliterates a string.
func (t Transliter) TranslitString(s string) string {
	out, _ := t.Translit(strings.NewReader(s))
	return out
}

// Romanize transliterates text with the Academic rule.
func Romanize(text string) string {
	return Transliter{Rule: Academic}.TranslitString(text)
}
