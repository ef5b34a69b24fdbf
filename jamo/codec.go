package jamo

import (
	"strings"
	"unicode/utf8"
)

const (
	syllableBase rune = 0xAC00
	syllableLast rune = 0xD7A3
	leadBase     rune = 0x1100
	vowelBase    rune = 0x1161
	tailBase     rune = 0x11A7 // tail index 0 is "no tail"

	leadCount  = 19
	vowelCount = 21
	tailCount  = 28

	// NoTail is the tail index of open syllables.
	NoTail = 0

	nullOnset rune = 0x110B // ᄋ
)

// Triple holds the jamo indices of a syllable.
type Triple struct {
	Lead  int // 0…18
	Vowel int // 0…20
	Tail  int // 0…27, NoTail for open syllables
}

// Jamo returns the conjoining jamo of a syllable triple. For open syllables
// the tail is 0.
func (t Triple) Jamo() (lead, vowel, tail rune) {
	lead, vowel = leadBase+rune(t.Lead), vowelBase+rune(t.Vowel)
	if t.Tail != NoTail {
		tail = tailBase + rune(t.Tail)
	}
	return
}

// DecomposeSyllable splits a precomposed syllable into its jamo indices.
func DecomposeSyllable(cp rune) (Triple, error) {
	if !IsSyllable(cp) {
		return Triple{}, failure("DecomposeSyllable", cp, ErrInvalidSyllable)
	}
	index := int(cp - syllableBase)
	return Triple{
		Lead:  index / (vowelCount * tailCount),
		Vowel: (index / tailCount) % vowelCount,
		Tail:  index % tailCount,
	}, nil
}

// ComposeSyllable computes a syllable from jamo indices.
func ComposeSyllable(lead, vowel, tail int) (rune, error) {
	if lead < 0 || lead >= leadCount || vowel < 0 || vowel >= vowelCount ||
		tail < 0 || tail >= tailCount {
		return 0, &Error{Op: "ComposeSyllable", Err: ErrInvalidJamoIndex}
	}
	return compose(lead, vowel, tail), nil
}

// ComposeSyllable2 computes an open syllable from jamo indices.
func ComposeSyllable2(lead, vowel int) (rune, error) {
	return ComposeSyllable(lead, vowel, NoTail)
}

func compose(lead, vowel, tail int) rune {
	return syllableBase + rune((lead*vowelCount+vowel)*tailCount+tail)
}

// ToHCJ returns the compatibility form of a conjoining jamo. Characters
// without a compatibility form are returned unchanged.
func ToHCJ(r rune) rune {
	setupTables()
	if hcj, ok := tables.toHCJ[r]; ok {
		return hcj
	}
	return r
}

// StringToHCJ converts every conjoining jamo of s to its compatibility form.
func StringToHCJ(s string) string {
	return strings.Map(ToHCJ, s)
}

// FromHCJ returns the conjoining jamo of class for a compatibility jamo.
func FromHCJ(hcj rune, class Class) (rune, error) {
	setupTables()
	if !IsHCJ(hcj) {
		return 0, failure("FromHCJ", hcj, ErrInvalidCodePoint)
	}
	if r, ok := tables.fromHCJ[class][hcj]; ok {
		return r, nil
	}
	return 0, failure("FromHCJ", hcj, ErrInvalidCodePoint)
}

// JoinSyllable composes a syllable from jamo characters. Lead, vowel and tail
// may be conjoining jamo or HCJ; a tail of 0 stands for an open syllable.
func JoinSyllable(lead, vowel, tail rune) (rune, error) {
	l, ok := asClass(lead, Lead)
	if !ok || !IsLead(l) {
		return 0, failure("JoinSyllable", lead, ErrInvalidCombination)
	}
	v, ok := asClass(vowel, Vowel)
	if !ok || !IsVowel(v) {
		return 0, failure("JoinSyllable", vowel, ErrInvalidCombination)
	}
	t := NoTail
	if tail != 0 {
		tl, ok := asClass(tail, Tail)
		if !ok || !IsTail(tl) {
			return 0, failure("JoinSyllable", tail, ErrInvalidCombination)
		}
		t = int(tl - tailBase)
	}
	return compose(int(l-leadBase), int(v-vowelBase), t), nil
}

func asClass(r rune, class Class) (rune, bool) {
	if IsHCJ(r) {
		j, err := FromHCJ(r, class)
		return j, err == nil
	}
	return r, IsJamo(r)
}

// Decompose splits every syllable of s into conjoining jamo. Other characters
// pass through. Invalid UTF-8 and unassigned code points inside the Hangul
// blocks are reported as ErrInvalidCodePoint.
func Decompose(s string) (string, error) {
	var b strings.Builder
	b.Grow(len(s) * 2)
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return "", failure("Decompose", r, ErrInvalidCodePoint)
		}
		i += size
		switch {
		case IsSyllable(r):
			index := int(r - syllableBase)
			b.WriteRune(leadBase + rune(index/(vowelCount*tailCount)))
			b.WriteRune(vowelBase + rune((index/tailCount)%vowelCount))
			if t := index % tailCount; t != NoTail {
				b.WriteRune(tailBase + rune(t))
			}
		case isUnassigned(r):
			return "", failure("Decompose", r, ErrInvalidCodePoint)
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), nil
}

// Compose joins runs of modern conjoining lead, vowel and optional tail into
// syllables. A vowel without a lead gets the null onset ᄋ. All other
// characters, including stray leads and tails, are left untouched.
func Compose(s string) string {
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(rs); {
		r := rs[i]
		lead := -1
		if IsLead(r) && i+1 < len(rs) && IsVowel(rs[i+1]) {
			lead = int(r - leadBase)
			i++
		} else if IsVowel(r) {
			lead = int(nullOnset - leadBase)
		}
		if lead < 0 {
			b.WriteRune(r)
			i++
			continue
		}
		vowel := int(rs[i] - vowelBase)
		i++
		tail := NoTail
		if i < len(rs) && IsTail(rs[i]) {
			tail = int(rs[i] - tailBase)
			i++
		}
		b.WriteRune(compose(lead, vowel, tail))
	}
	return b.String()
}
