package jamo

import "sync"

// Modern HCJ letters in conjoining index order.
var (
	hcjLeads = []rune("ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ")
	hcjTails = []rune("ㄱㄲㄳㄴㄵㄶㄷㄹㄺㄻㄼㄽㄾㄿㅀㅁㅂㅄㅅㅆㅇㅈㅊㅋㅌㅍㅎ") // tail index 1…27
)

type hcjPair struct {
	jamo, hcj rune
}

// Archaic conjoining jamo which have a compatibility counterpart.
var archaicLeads = []hcjPair{
	{0x1114, 0x3165}, {0x1115, 0x3166}, {0x111A, 0x3140}, {0x111C, 0x316E},
	{0x111D, 0x3171}, {0x111E, 0x3172}, {0x1120, 0x3173}, {0x1121, 0x3144},
	{0x1122, 0x3174}, {0x1123, 0x3175}, {0x1127, 0x3176}, {0x1129, 0x3177},
	{0x112B, 0x3178}, {0x112C, 0x3179}, {0x112D, 0x317A}, {0x112E, 0x317B},
	{0x112F, 0x317C}, {0x1132, 0x317D}, {0x1136, 0x317E}, {0x1140, 0x317F},
	{0x1147, 0x3180}, {0x114C, 0x3181}, {0x1157, 0x3184}, {0x1158, 0x3185},
	{0x1159, 0x3186},
}

var archaicVowels = []hcjPair{
	{0x1184, 0x3187}, {0x1185, 0x3188}, {0x1188, 0x3189}, {0x1191, 0x318A},
	{0x1192, 0x318B}, {0x1194, 0x318C}, {0x119E, 0x318D}, {0x11A1, 0x318E},
}

var archaicTails = []hcjPair{
	{0x11C6, 0x3166}, {0x11C7, 0x3167}, {0x11C8, 0x3168}, {0x11CC, 0x3169},
	{0x11CE, 0x316A}, {0x11D3, 0x316B}, {0x11D7, 0x316C}, {0x11D9, 0x316D},
	{0x11DC, 0x316E}, {0x11DD, 0x316F}, {0x11DF, 0x3170}, {0x11E2, 0x3171},
	{0x11E6, 0x3178}, {0x11EB, 0x317F}, {0x11F0, 0x3181}, {0x11F1, 0x3182},
	{0x11F2, 0x3183}, {0x11F4, 0x3184}, {0x11F9, 0x3186}, {0x11FF, 0x3165},
}

// hcjCompounds lists compound compatibility jamo with their (one level) parts.
var hcjCompounds = map[rune]string{
	// modern
	'ㄲ': "ㄱㄱ", 'ㄳ': "ㄱㅅ", 'ㄵ': "ㄴㅈ", 'ㄶ': "ㄴㅎ", 'ㄸ': "ㄷㄷ",
	'ㄺ': "ㄹㄱ", 'ㄻ': "ㄹㅁ", 'ㄼ': "ㄹㅂ", 'ㄽ': "ㄹㅅ", 'ㄾ': "ㄹㅌ",
	'ㄿ': "ㄹㅍ", 'ㅀ': "ㄹㅎ", 'ㅃ': "ㅂㅂ", 'ㅄ': "ㅂㅅ", 'ㅆ': "ㅅㅅ",
	'ㅉ': "ㅈㅈ", 'ㅐ': "ㅏㅣ", 'ㅒ': "ㅑㅣ", 'ㅔ': "ㅓㅣ", 'ㅖ': "ㅕㅣ",
	'ㅘ': "ㅗㅏ", 'ㅙ': "ㅗㅐ", 'ㅚ': "ㅗㅣ", 'ㅝ': "ㅜㅓ", 'ㅞ': "ㅜㅔ",
	'ㅟ': "ㅜㅣ", 'ㅢ': "ㅡㅣ",
	// archaic
	'ㅥ': "ㄴㄴ", 'ㅦ': "ㄴㄷ", 'ㅧ': "ㄴㅅ", 'ㅨ': "ㄴㅿ", 'ㅩ': "ㄹㄱㅅ",
	'ㅪ': "ㄹㄷ", 'ㅫ': "ㄹㅂㅅ", 'ㅬ': "ㄹㅿ", 'ㅭ': "ㄹㆆ", 'ㅮ': "ㅁㅂ",
	'ㅯ': "ㅁㅅ", 'ㅰ': "ㅁㅿ", 'ㅱ': "ㅁㅇ", 'ㅲ': "ㅂㄱ", 'ㅳ': "ㅂㄷ",
	'ㅴ': "ㅂㅅㄱ", 'ㅵ': "ㅂㅅㄷ", 'ㅶ': "ㅂㅈ", 'ㅷ': "ㅂㅌ", 'ㅸ': "ㅂㅇ",
	'ㅹ': "ㅃㅇ", 'ㅺ': "ㅅㄱ", 'ㅻ': "ㅅㄴ", 'ㅼ': "ㅅㄷ", 'ㅽ': "ㅅㅂ",
	'ㅾ': "ㅅㅈ", 'ㆀ': "ㅇㅇ", 'ㆂ': "ㆁㅅ", 'ㆃ': "ㆁㅿ", 'ㆄ': "ㅍㅇ",
	'ㆅ': "ㅎㅎ", 'ㆇ': "ㅛㅑ", 'ㆈ': "ㅛㅒ", 'ㆉ': "ㅛㅣ", 'ㆊ': "ㅠㅕ",
	'ㆋ': "ㅠㅖ", 'ㆌ': "ㅠㅣ", 'ㆎ': "ㆍㅣ",
}

// Combinations which form an archaic conjoining compound without a
// compatibility counterpart. Composing them is not supported.
var unsupportedCompounds = map[string]rune{
	"ㄴㄱ": 0x1113, "ㄴㅂ": 0x1116, "ㄷㄱ": 0x1117, "ㄹㄴ": 0x1118,
	"ㄹㄹ": 0x1119, "ㄹㅇ": 0x111B, "ㅂㄴ": 0x111F, "ㅂㅅㅂ": 0x1124,
	"ㅂㅊ": 0x1128, "ㅂㅍ": 0x112A, "ㅅㄹ": 0x1130, "ㅅㅁ": 0x1131,
	"ㅅㅇ": 0x1135, "ㄱㄹ": 0x11C3, "ㄱㅅㄱ": 0x11C4, "ㄴㅌ": 0x11C9,
	"ㄷㄹ": 0x11CB, "ㄹㄷㅎ": 0x11CF, "ㄹㅁㄱ": 0x11D1, "ㄹㅁㅅ": 0x11D2,
}

// Lookup tables derived from the lists above, built once.
var tables struct {
	sync.Once
	toHCJ     map[rune]rune
	fromHCJ   [3]map[rune]rune // per Class
	compounds map[string]rune  // parts (flat or one level) → HCJ compound
}

func setupTables() {
	tables.Do(func() {
		T().Infof("jamo: setting up conversion tables")
		tables.toHCJ = make(map[rune]rune, 160)
		for i := range tables.fromHCJ {
			tables.fromHCJ[i] = make(map[rune]rune, 64)
		}
		register := func(class Class, jamo, hcj rune) {
			tables.toHCJ[jamo] = hcj
			if _, ok := tables.fromHCJ[class][hcj]; !ok {
				tables.fromHCJ[class][hcj] = jamo
			}
		}
		for i, hcj := range hcjLeads {
			register(Lead, leadBase+rune(i), hcj)
		}
		for i := 0; i < vowelCount; i++ {
			register(Vowel, vowelBase+rune(i), 0x314F+rune(i))
		}
		for i, hcj := range hcjTails {
			register(Tail, tailBase+rune(i)+1, hcj)
		}
		for _, p := range archaicLeads {
			register(Lead, p.jamo, p.hcj)
		}
		for _, p := range archaicVowels {
			register(Vowel, p.jamo, p.hcj)
		}
		for _, p := range archaicTails {
			register(Tail, p.jamo, p.hcj)
		}
		tables.compounds = make(map[string]rune, 2*len(hcjCompounds))
		for c, parts := range hcjCompounds {
			tables.compounds[parts] = c
			if flat := flatten([]rune(parts)); string(flat) != parts {
				tables.compounds[string(flat)] = c
			}
		}
	})
}

// flatten recursively replaces compound HCJ parts by their components.
func flatten(parts []rune) []rune {
	flat := make([]rune, 0, 3)
	for _, p := range parts {
		if sub, ok := hcjCompounds[p]; ok {
			flat = append(flat, flatten([]rune(sub))...)
		} else {
			flat = append(flat, p)
		}
	}
	return flat
}
