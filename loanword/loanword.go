/*
Package loanword spells English words in Hangul, given their pronunciation.

Input is a pronunciation as found in the CMU Pronouncing Dictionary, i.e. a
string of ARPAbet phones with optional stress digits:

   Adapt("G EY1 M")   →   "게임"

Spelling follows a simplified version of the Korean loanword orthography
(외래어 표기법): consonants before a vowel become onsets, nasals and
liquids after a vowel become codas, stops after a short vowel become codas,
and every other consonant gets the epenthetic vowel ㅡ. Post-vocalic R is
not pronounced.
*/
package loanword

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/kophon/jamo"
)

// ErrUnknownPhone is returned for phones outside the ARPAbet.
var ErrUnknownPhone = errors.New("unknown phone")

// Vowels, diphthongs spelled as two syllables.
var vowels = map[string][]rune{
	"AA": {'ᅡ'}, "AE": {'ᅢ'}, "AH": {'ᅥ'}, "AO": {'ᅩ'}, "EH": {'ᅦ'},
	"ER": {'ᅥ'}, "IH": {'ᅵ'}, "IY": {'ᅵ'}, "OW": {'ᅩ'}, "UH": {'ᅮ'},
	"UW": {'ᅮ'},
	"AW": {'ᅡ', 'ᄋ', 'ᅮ'}, "AY": {'ᅡ', 'ᄋ', 'ᅵ'}, "EY": {'ᅦ', 'ᄋ', 'ᅵ'},
	"OY": {'ᅩ', 'ᄋ', 'ᅵ'},
}

// Vowels after which a stop is not a coda.
var long = map[string]bool{"AW": true, "AY": true, "EY": true, "OY": true, "OW": true}

var onsets = map[string]rune{
	"B": 'ᄇ', "CH": 'ᄎ', "D": 'ᄃ', "DH": 'ᄃ', "F": 'ᄑ', "G": 'ᄀ',
	"HH": 'ᄒ', "JH": 'ᄌ', "K": 'ᄏ', "L": 'ᄅ', "M": 'ᄆ', "N": 'ᄂ',
	"NG": 'ᄋ', "P": 'ᄑ', "R": 'ᄅ', "S": 'ᄉ', "SH": 'ᄉ', "T": 'ᄐ',
	"TH": 'ᄊ', "V": 'ᄇ', "Z": 'ᄌ', "ZH": 'ᄌ',
}

var codas = map[string]rune{
	"M": 'ᆷ', "N": 'ᆫ', "NG": 'ᆼ', "L": 'ᆯ', "P": 'ᆸ', "T": 'ᆺ', "K": 'ᆨ',
}

var glides = map[rune]map[rune]rune{
	'Y': {'ᅡ': 'ᅣ', 'ᅢ': 'ᅤ', 'ᅥ': 'ᅧ', 'ᅦ': 'ᅨ', 'ᅩ': 'ᅭ', 'ᅮ': 'ᅲ', 'ᅵ': 'ᅵ'},
	'W': {'ᅡ': 'ᅪ', 'ᅢ': 'ᅫ', 'ᅥ': 'ᅯ', 'ᅦ': 'ᅰ', 'ᅩ': 'ᅯ', 'ᅮ': 'ᅮ', 'ᅵ': 'ᅱ'},
}

type phone struct {
	sym   string
	vowel bool
	glide bool
}

func parse(phones string) ([]phone, error) {
	var ps []phone
	for _, f := range strings.Fields(phones) {
		sym := strings.ToUpper(strings.TrimRight(f, "012"))
		p := phone{sym: sym}
		if _, ok := vowels[sym]; ok {
			p.vowel = true
		} else if sym == "W" || sym == "Y" {
			p.glide = true
		} else if _, ok := onsets[sym]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownPhone, f)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// Adapt spells a pronunciation, given as ARPAbet phones, in Hangul.
func Adapt(phones string) (string, error) {
	ps, err := parse(phones)
	if err != nil {
		return "", err
	}
	at := func(i int) phone {
		if i < len(ps) {
			return ps[i]
		}
		return phone{}
	}
	var out []rune
	var onset, glide rune
	for i, p := range ps {
		next := at(i + 1)
		switch {
		case p.vowel:
			v := vowels[p.sym]
			if onset == 0 {
				onset = 'ᄋ'
			}
			first := v[0]
			if g, ok := glides[glide][first]; ok {
				first = g
			}
			out = append(out, onset, first)
			out = append(out, v[1:]...)
			onset, glide = 0, 0
		case p.glide:
			if next.vowel {
				glide = rune(p.sym[0])
				continue
			}
			if p.sym == "W" {
				out = append(out, 'ᄋ', 'ᅮ')
			} else {
				out = append(out, 'ᄋ', 'ᅵ')
			}
		case next.vowel || next.glide && at(i+2).vowel:
			if p.sym == "L" && open(out) {
				out = append(out, 'ᆯ')
			}
			onset = onsets[p.sym]
			if p.sym == "SH" {
				glide = 'Y'
			}
		default:
			out = append(out, coda(p.sym, i > 0 && ps[i-1].vowel && !long[ps[i-1].sym], out)...)
		}
	}
	return jamo.Compose(string(out)), nil
}

// open is true if the last syllable of out has no coda yet.
func open(out []rune) bool {
	return len(out) > 0 && jamo.IsVowel(out[len(out)-1])
}

// coda spells a consonant which is not followed by a vowel.
func coda(sym string, afterShortVowel bool, out []rune) []rune {
	switch sym {
	case "R":
		return nil
	case "M", "N", "NG", "L":
		if open(out) {
			return []rune{codas[sym]}
		}
	case "P", "T", "K":
		if open(out) && afterShortVowel {
			return []rune{codas[sym]}
		}
	case "CH", "JH", "SH", "ZH":
		return []rune{onsets[sym], 'ᅵ'}
	}
	if sym == "NG" {
		return []rune{'ᄋ', 'ᅳ', 'ᆼ'}
	}
	return []rune{onsets[sym], 'ᅳ'}
}

// English names of the digits 0…9.
var digitNames = [...]string{"제로", "원", "투", "쓰리", "포", "파이브", "식스", "세븐", "에잇", "나인"}

// SpellDigits spells ASCII digits one by one, as read in English, e.g. the
// 3 of "mp3". Other characters are copied.
func SpellDigits(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		if r >= '0' && r <= '9' {
			b.WriteString(digitNames[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
