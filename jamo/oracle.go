package jamo

import (
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Kind is the coarse classification of a character with respect to Hangul.
type Kind int8

// Kinds of characters, as returned by Classify.
const (
	None        Kind = iota // not Hangul
	ModernJamo                // modern conjoining jamo U+1100…U+11C2
	ArchaicJamo               // other conjoining jamo and Jamo Extended-A/B
	HCJ                       // Hangul Compatibility Jamo
	Syllable                  // precomposed Hangul syllable
)

func (k Kind) String() string {
	switch k {
	case ModernJamo:
		return "ModernJamo"
	case ArchaicJamo:
		return "ArchaicJamo"
	case HCJ:
		return "HCJ"
	case Syllable:
		return "Syllable"
	}
	return "None"
}

// Class is the position class of a conjoining jamo.
type Class int8

// Jamo classes.
const (
	Lead Class = iota
	Vowel
	Tail
)

func (c Class) String() string {
	return [...]string{"lead", "vowel", "tail"}[c]
}

var (
	syllableTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0xAC00, 0xD7A3, 1}},
	}
	modernLeadTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x1100, 0x1112, 1}},
	}
	modernVowelTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x1161, 0x1175, 1}},
	}
	modernTailTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x11A8, 0x11C2, 1}},
	}
	hcjModernTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x3131, 0x3163, 1}},
	}
	hcjTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x3131, 0x3163, 1}, {0x3165, 0x318E, 1}},
	}
	leadTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x1100, 0x115F, 1}, {0xA960, 0xA97C, 1}},
	}
	vowelTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x1160, 0x11A7, 1}, {0xD7B0, 0xD7C6, 1}},
	}
	tailTable = &unicode.RangeTable{
		R16: []unicode.Range16{{0x11A8, 0x11FF, 1}, {0xD7CB, 0xD7FB, 1}},
	}
	conjoiningTable = rangetable.Merge(leadTable, vowelTable, tailTable)
	jamoTable       = rangetable.Merge(conjoiningTable, hcjTable)
	modernTable     = rangetable.Merge(modernLeadTable, modernVowelTable,
		modernTailTable, hcjModernTable)

	// code points inside the Hangul blocks which are not assigned
	unassignedTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x3130, 0x3130, 1}, {0x318F, 0x318F, 1}, {0xA97D, 0xA97F, 1},
			{0xD7A4, 0xD7AF, 1}, {0xD7C7, 0xD7CA, 1}, {0xD7FC, 0xD7FF, 1},
		},
	}

	compoundTable = &unicode.RangeTable{
		R16: []unicode.Range16{
			{0x1101, 0x1104, 3}, {0x1108, 0x110A, 2}, {0x110D, 0x110D, 1},
			{0x1113, 0x113B, 1}, {0x113D, 0x1141, 2}, {0x1142, 0x114B, 1},
			{0x114D, 0x1151, 2}, {0x1152, 0x1153, 1}, {0x1156, 0x1158, 1},
			{0x115A, 0x115E, 1}, {0x1162, 0x1168, 2}, {0x116A, 0x116C, 1},
			{0x116F, 0x1171, 1}, {0x1174, 0x1176, 2}, {0x1177, 0x119D, 1},
			{0x119F, 0x11A7, 1}, {0x11A9, 0x11AA, 1}, {0x11AC, 0x11AD, 1},
			{0x11B0, 0x11B6, 1}, {0x11B9, 0x11BB, 2}, {0x11C3, 0x11EA, 1},
			{0x11EC, 0x11EF, 1}, {0x11F1, 0x11F8, 1}, {0x11FA, 0x11FF, 1},
			{0x3132, 0x3133, 1}, {0x3135, 0x3136, 1}, {0x3138, 0x3138, 1},
			{0x313A, 0x3140, 1}, {0x3143, 0x3144, 1}, {0x3146, 0x3149, 3},
			{0x3150, 0x3158, 2}, {0x3159, 0x315A, 1}, {0x315D, 0x315F, 1},
			{0x3162, 0x3162, 1}, {0x3165, 0x317E, 1}, {0x3180, 0x3180, 1},
			{0x3182, 0x3185, 1}, {0x3187, 0x318C, 1}, {0x318E, 0x318E, 1},
			{0xA960, 0xA97C, 1}, {0xD7B0, 0xD7C6, 1}, {0xD7CB, 0xD7FB, 1},
		},
	}
)

// Classify returns the kind of character r.
func Classify(r rune) Kind {
	switch {
	case unicode.Is(syllableTable, r):
		return Syllable
	case unicode.Is(hcjTable, r):
		return HCJ
	case unicode.In(r, modernLeadTable, modernVowelTable, modernTailTable):
		return ModernJamo
	case unicode.Is(conjoiningTable, r):
		return ArchaicJamo
	}
	return None
}

// IsSyllable is true for precomposed Hangul syllables U+AC00…U+D7A3.
func IsSyllable(r rune) bool {
	return unicode.Is(syllableTable, r)
}

// IsJamo is true for any jamo, conjoining, compatibility or extended.
func IsJamo(r rune) bool {
	return unicode.Is(jamoTable, r)
}

// IsJamoModern is true for jamo of modern orthography, conjoining or HCJ.
func IsJamoModern(r rune) bool {
	return unicode.Is(modernTable, r)
}

// IsHCJ is true for Hangul Compatibility Jamo, excluding the Hangul filler U+3164.
func IsHCJ(r rune) bool {
	return unicode.Is(hcjTable, r)
}

// IsHCJModern is true for modern compatibility jamo U+3131…U+3163.
func IsHCJModern(r rune) bool {
	return unicode.Is(hcjModernTable, r)
}

// IsCompound is true for jamo which fuse two or three simple jamo.
func IsCompound(r rune) bool {
	return unicode.Is(compoundTable, r)
}

// IsLead is true for modern conjoining leading consonants.
func IsLead(r rune) bool {
	return unicode.Is(modernLeadTable, r)
}

// IsVowel is true for modern conjoining vowels.
func IsVowel(r rune) bool {
	return unicode.Is(modernVowelTable, r)
}

// IsTail is true for modern conjoining trailing consonants.
func IsTail(r rune) bool {
	return unicode.Is(modernTailTable, r)
}

// ClassOf returns the position class of a conjoining jamo. Filler U+115F
// counts as a lead, filler U+1160 as a vowel. HCJ do not have a class.
func ClassOf(r rune) (Class, error) {
	switch {
	case unicode.Is(leadTable, r):
		return Lead, nil
	case unicode.Is(vowelTable, r):
		return Vowel, nil
	case unicode.Is(tailTable, r):
		return Tail, nil
	}
	return Lead, failure("ClassOf", r, ErrInvalidCodePoint)
}

func isUnassigned(r rune) bool {
	return unicode.Is(unassignedTable, r)
}
